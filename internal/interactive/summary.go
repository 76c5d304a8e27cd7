package interactive

import (
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"golang.org/x/text/cases"
	textlanguage "golang.org/x/text/language"

	"github.com/VikumKarunathilake/video-downloader-cli/internal/config"
	"github.com/VikumKarunathilake/video-downloader-cli/internal/language"
	"github.com/VikumKarunathilake/video-downloader-cli/internal/ytdlp"
)

// renderSummary shows the settings the confirm prompt is about to commit.
func renderSummary(req ytdlp.Request, cfg *config.Config) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Setting", "Value"})

	tw.AppendRow(table.Row{"URLs", strings.Join(req.URLs, "\n")})
	tw.AppendRow(table.Row{"Type", typeLabel(req, cfg)})
	tw.AppendRow(table.Row{"Output template", req.OutputTemplate})

	switch {
	case req.CookiesFile != "":
		tw.AppendRow(table.Row{"Authentication", "cookies file " + req.CookiesFile})
	case req.CookiesFromBrowser != "":
		tw.AppendRow(table.Row{"Authentication", browserLabel(req.CookiesFromBrowser) + " cookies"})
	default:
		tw.AppendRow(table.Row{"Authentication", "none"})
	}

	if req.Subtitles {
		names := make([]string, 0, len(req.SubtitleLangs))
		for _, code := range req.SubtitleLangs {
			names = append(names, language.DisplayName(code))
		}
		tw.AppendRow(table.Row{"Subtitles", strings.Join(names, ", ")})
	}
	tw.AppendRow(table.Row{"Playlist", yesNo(req.Playlist)})
	tw.AppendRow(table.Row{"Metadata", yesNo(req.Metadata)})
	tw.AppendRow(table.Row{"Thumbnail", yesNo(req.Thumbnail)})
	tw.AppendRow(table.Row{"SponsorBlock", yesNo(req.SponsorBlock)})

	return tw.Render()
}

func typeLabel(req ytdlp.Request, cfg *config.Config) string {
	switch req.Type {
	case ytdlp.TypeAudio:
		return "Audio only (" + strings.ToUpper(cfg.YTDLP.AudioFormat) + ")"
	case ytdlp.TypeCustom:
		return "Custom format: " + req.Format
	default:
		return "Video (best quality)"
	}
}

func browserLabel(browser string) string {
	return cases.Title(textlanguage.Und).String(browser)
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}
