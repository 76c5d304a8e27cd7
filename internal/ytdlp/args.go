package ytdlp

import (
	"strings"
)

// BuildOptions captures the config-level knobs that shape every invocation.
type BuildOptions struct {
	// VideoFormat is the selector used for TypeVideo requests.
	VideoFormat string
	// AudioFormat is the container passed to --audio-format for TypeAudio.
	AudioFormat string
	// DownloadDir, when set, is passed as the -P download path.
	DownloadDir string
	// ExtraArgs are appended verbatim before the URLs.
	ExtraArgs []string
}

// BuildArgs maps a request onto the yt-dlp argument list. The request must
// already be validated.
func BuildArgs(req Request, opts BuildOptions) []string {
	args := make([]string, 0, 16+len(req.URLs))

	if file := strings.TrimSpace(req.CookiesFile); file != "" {
		args = append(args, "--cookies", file)
	} else if browser := strings.TrimSpace(req.CookiesFromBrowser); browser != "" {
		args = append(args, "--cookies-from-browser", browser)
	}

	switch {
	case strings.TrimSpace(req.Format) != "":
		args = append(args, "-f", strings.TrimSpace(req.Format))
	case req.Type == TypeAudio:
		args = append(args, "--extract-audio", "--audio-format", opts.AudioFormat)
	default:
		if selector := strings.TrimSpace(opts.VideoFormat); selector != "" {
			args = append(args, "-f", selector)
		}
	}

	if template := strings.TrimSpace(req.OutputTemplate); template != "" {
		args = append(args, "-o", template)
	}
	if dir := strings.TrimSpace(opts.DownloadDir); dir != "" {
		args = append(args, "-P", dir)
	}

	if req.Subtitles {
		langs := strings.Join(req.SubtitleLangs, ",")
		if langs == "" {
			langs = "en"
		}
		args = append(args, "--write-subs", "--sub-langs", langs)
	}

	if !req.Playlist {
		args = append(args, "--no-playlist")
	}
	if req.Metadata {
		args = append(args, "--add-metadata")
	}
	if req.Thumbnail {
		args = append(args, "--embed-thumbnail")
	}
	if req.SponsorBlock {
		// yt-dlp requires a category list; "default" matches the sponsor
		// segment set users expect from plain SponsorBlock removal.
		args = append(args, "--sponsorblock-remove", "default")
	}

	args = append(args, opts.ExtraArgs...)

	for _, url := range req.URLs {
		if trimmed := strings.TrimSpace(url); trimmed != "" {
			args = append(args, trimmed)
		}
	}
	return args
}

// BuildFormatListArgs maps a format listing onto yt-dlp -F.
func BuildFormatListArgs(url, cookiesFile string) []string {
	args := []string{"-F"}
	if file := strings.TrimSpace(cookiesFile); file != "" {
		args = append(args, "--cookies", file)
	}
	return append(args, strings.TrimSpace(url))
}
