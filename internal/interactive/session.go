package interactive

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/VikumKarunathilake/video-downloader-cli/internal/config"
	"github.com/VikumKarunathilake/video-downloader-cli/internal/cookies"
	"github.com/VikumKarunathilake/video-downloader-cli/internal/language"
	"github.com/VikumKarunathilake/video-downloader-cli/internal/logging"
	"github.com/VikumKarunathilake/video-downloader-cli/internal/ytdlp"
)

const (
	choiceVideo       = "video"
	choiceAudio       = "audio"
	choiceCustom      = "custom"
	choiceListFormats = "list"

	extraSubtitles    = "subtitles"
	extraPlaylist     = "playlist"
	extraMetadata     = "metadata"
	extraThumbnail    = "thumbnail"
	extraSponsorBlock = "sponsorblock"
)

// Session drives the interactive download flow: prompt for every option the
// non-interactive command takes as flags, confirm, then download.
type Session struct {
	cfg      *config.Config
	client   ytdlp.Client
	prompter Prompter
	logger   *slog.Logger
	out      io.Writer
}

// Option configures a Session.
type Option func(*Session)

// WithPrompter overrides the terminal prompter.
func WithPrompter(p Prompter) Option {
	return func(s *Session) {
		if p != nil {
			s.prompter = p
		}
	}
}

// WithOutput overrides where banners and summaries are written.
func WithOutput(w io.Writer) Option {
	return func(s *Session) {
		if w != nil {
			s.out = w
		}
	}
}

// NewSession constructs the interactive flow.
func NewSession(cfg *config.Config, client ytdlp.Client, logger *slog.Logger, opts ...Option) *Session {
	s := &Session{
		cfg:      cfg,
		client:   client,
		prompter: TerminalPrompter{},
		logger:   logging.NewComponentLogger(logger, "interactive"),
		out:      os.Stdout,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run walks the prompt sequence and performs the download. Returns ErrAborted
// when the user backs out at any point.
func (s *Session) Run(ctx context.Context) error {
	req, err := s.buildRequest(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintln(s.out, renderSummary(*req, s.cfg))
	confirmed, err := s.prompter.Confirm("Start download with these settings?", true)
	if err != nil {
		return err
	}
	if !confirmed {
		return ErrAborted
	}

	s.logger.Info("download starting",
		logging.Int("url_count", len(req.URLs)),
		logging.String("type", string(req.Type)),
	)
	return s.client.Download(ctx, *req)
}

func (s *Session) buildRequest(ctx context.Context) (*ytdlp.Request, error) {
	urls, err := s.promptURLs()
	if err != nil {
		return nil, err
	}

	downloadType, err := s.promptType()
	if err != nil {
		return nil, err
	}
	if downloadType == choiceListFormats {
		if err := s.listFormats(ctx, urls[0]); err != nil {
			if errors.Is(err, ErrAborted) {
				return nil, err
			}
			fmt.Fprintf(s.out, "Could not list formats: %v\n", err)
		}
		if downloadType, err = s.promptType(); err != nil {
			return nil, err
		}
		if downloadType == choiceListFormats {
			return nil, ErrAborted
		}
	}

	req := ytdlp.Request{URLs: urls}
	switch downloadType {
	case choiceAudio:
		req.Type = ytdlp.TypeAudio
	case choiceCustom:
		req.Type = ytdlp.TypeCustom
		selector, err := s.prompter.Input(
			"Enter format selector (e.g. 'bestvideo+bestaudio', '22+bestaudio'):",
			"bestvideo+bestaudio",
			notEmpty("a format selector is required"),
		)
		if err != nil {
			return nil, err
		}
		req.Format = strings.TrimSpace(selector)
	default:
		req.Type = ytdlp.TypeVideo
	}

	if err := s.promptCookies(&req); err != nil {
		return nil, err
	}

	template, err := s.prompter.Input("Output filename template:", s.cfg.Defaults.OutputTemplate, nil)
	if err != nil {
		return nil, err
	}
	req.OutputTemplate = strings.TrimSpace(template)

	extras, err := s.prompter.MultiSelect("Select additional options:", []Choice{
		{Label: "Download subtitles", Value: extraSubtitles},
		{Label: "Download entire playlist", Value: extraPlaylist},
		{Label: "Add metadata", Value: extraMetadata},
		{Label: "Embed thumbnail", Value: extraThumbnail},
		{Label: "Remove sponsor segments (SponsorBlock)", Value: extraSponsorBlock},
	})
	if err != nil {
		return nil, err
	}
	for _, extra := range extras {
		switch extra {
		case extraSubtitles:
			req.Subtitles = true
		case extraPlaylist:
			req.Playlist = true
		case extraMetadata:
			req.Metadata = true
		case extraThumbnail:
			req.Thumbnail = true
		case extraSponsorBlock:
			req.SponsorBlock = true
		}
	}

	req.SubtitleLangs = s.cfg.Defaults.SubtitleLangs
	if req.Subtitles {
		langs, err := s.prompter.Input(
			"Enter subtitle languages (comma separated, e.g. 'en,es'):",
			strings.Join(s.cfg.Defaults.SubtitleLangs, ","),
			validLanguages,
		)
		if err != nil {
			return nil, err
		}
		req.SubtitleLangs = language.ParseCSV(langs)
	}

	if err := req.Validate(); err != nil {
		return nil, err
	}
	return &req, nil
}

func (s *Session) promptURLs() ([]string, error) {
	raw, err := s.prompter.Input(
		"Enter video URL(s), separate multiple URLs with spaces:",
		"",
		notEmpty("at least one URL is required"),
	)
	if err != nil {
		return nil, err
	}
	return strings.Fields(raw), nil
}

func (s *Session) promptType() (string, error) {
	return s.prompter.Select("What would you like to download?", []Choice{
		{Label: "Video (best quality)", Value: choiceVideo},
		{Label: fmt.Sprintf("Audio only (%s)", strings.ToUpper(s.cfg.YTDLP.AudioFormat)), Value: choiceAudio},
		{Label: "Custom format selection", Value: choiceCustom},
		{Label: "List available formats first", Value: choiceListFormats},
	})
}

func (s *Session) promptCookies(req *ytdlp.Request) error {
	if found := s.discoverCookies(); found != "" {
		use, err := s.prompter.Confirm(
			fmt.Sprintf("Found cookies file at %q. Use it for authentication?", found),
			true,
		)
		if err != nil {
			return err
		}
		if use {
			req.CookiesFile = found
			return nil
		}
	}

	useBrowser, err := s.prompter.Confirm("Do you want to use browser cookies instead?", false)
	if err != nil {
		return err
	}
	if !useBrowser {
		return nil
	}

	choices := make([]Choice, 0, len(cookies.Browsers()))
	for _, browser := range cookies.Browsers() {
		choices = append(choices, Choice{Label: browserLabel(browser), Value: browser})
	}
	browser, err := s.prompter.Select("Select browser to extract cookies from:", choices)
	if err != nil {
		return err
	}
	req.CookiesFromBrowser = browser
	return nil
}

// discoverCookies probes the working directory, then the configured cookie
// directory, for a known cookie file.
func (s *Session) discoverCookies() string {
	workDir, err := os.Getwd()
	if err != nil {
		workDir = "."
	}
	return cookies.Discover(workDir, s.cfg.Paths.CookieDir)
}

func (s *Session) listFormats(ctx context.Context, url string) error {
	var cookiesFile string
	if found := s.discoverCookies(); found != "" {
		use, err := s.prompter.Confirm(
			fmt.Sprintf("Found cookies file at %q. Use it for the format listing?", found),
			true,
		)
		if err != nil {
			return err
		}
		if use {
			cookiesFile = found
		}
	}
	fmt.Fprintf(s.out, "Available formats for %s:\n", url)
	return s.client.ListFormats(ctx, url, cookiesFile)
}

func notEmpty(message string) func(string) error {
	return func(value string) error {
		if strings.TrimSpace(value) == "" {
			return errors.New(message)
		}
		return nil
	}
}

func validLanguages(value string) error {
	if len(language.ParseCSV(value)) == 0 {
		return errors.New("enter at least one recognizable language code")
	}
	return nil
}
