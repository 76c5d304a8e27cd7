package ytdlp

import (
	"errors"
	"fmt"
	"strings"

	"github.com/VikumKarunathilake/video-downloader-cli/internal/cookies"
)

// Type selects how yt-dlp picks formats for a request.
type Type string

const (
	// TypeVideo downloads best-quality video using the configured selector.
	TypeVideo Type = "video"
	// TypeAudio extracts audio into the configured container.
	TypeAudio Type = "audio"
	// TypeCustom uses a caller-supplied format selector verbatim.
	TypeCustom Type = "custom"
)

// Request describes one download invocation. Zero values mean "do not pass
// the corresponding flag"; BuildArgs maps the populated fields onto the
// yt-dlp command line.
type Request struct {
	URLs []string
	Type Type

	// Format is a yt-dlp format selector. Required for TypeCustom; when set
	// it also overrides the TypeVideo selector.
	Format string

	OutputTemplate string
	Subtitles      bool
	SubtitleLangs  []string
	Playlist       bool
	Metadata       bool
	Thumbnail      bool
	SponsorBlock   bool

	// CookiesFile and CookiesFromBrowser are mutually exclusive.
	CookiesFile        string
	CookiesFromBrowser string
}

// Validate reports whether the request can be turned into a command line.
func (r *Request) Validate() error {
	urls := 0
	for _, url := range r.URLs {
		if strings.TrimSpace(url) != "" {
			urls++
		}
	}
	if urls == 0 {
		return errors.New("at least one URL is required")
	}

	switch r.Type {
	case TypeVideo, TypeAudio, "":
	case TypeCustom:
		if strings.TrimSpace(r.Format) == "" {
			return errors.New("custom download type requires a format selector")
		}
	default:
		return fmt.Errorf("unknown download type %q", r.Type)
	}

	if strings.TrimSpace(r.CookiesFile) != "" && strings.TrimSpace(r.CookiesFromBrowser) != "" {
		return errors.New("specify either a cookies file or a browser, not both")
	}
	if browser := strings.TrimSpace(r.CookiesFromBrowser); browser != "" && !cookies.SupportedBrowser(browser) {
		return fmt.Errorf("unsupported browser %q for cookie extraction", browser)
	}
	return nil
}
