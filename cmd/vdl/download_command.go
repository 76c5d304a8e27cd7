package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/VikumKarunathilake/video-downloader-cli/internal/config"
	"github.com/VikumKarunathilake/video-downloader-cli/internal/cookies"
	"github.com/VikumKarunathilake/video-downloader-cli/internal/language"
	"github.com/VikumKarunathilake/video-downloader-cli/internal/logging"
	"github.com/VikumKarunathilake/video-downloader-cli/internal/ytdlp"
)

func newDownloadCommand(ctx *commandContext) *cobra.Command {
	var (
		format       string
		audioOnly    bool
		output       string
		subs         bool
		subLangs     string
		playlist     bool
		metadata     bool
		thumbnail    bool
		sponsorblock bool
		cookiesFile  string
		browser      string
	)

	cmd := &cobra.Command{
		Use:     "download URL...",
		Aliases: []string{"dl"},
		Short:   "Download one or more URLs with yt-dlp",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}

			if cookiesFile != "" && browser != "" {
				return errors.New("specify either --cookies or --browser, not both")
			}
			if cookiesFile != "" {
				expanded, err := config.ExpandPath(cookiesFile)
				if err != nil {
					return err
				}
				if _, statErr := os.Stat(expanded); statErr != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "Warning: cookies file %s not found. Proceeding without cookies.\n", expanded)
					cookiesFile = ""
				} else {
					cookiesFile = expanded
					if !cookies.LooksNetscape(expanded) {
						fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %s does not look like a Netscape cookie export.\n", expanded)
					}
				}
			}

			boolSetting := func(name string, flagValue, cfgValue bool) bool {
				if cmd.Flags().Changed(name) {
					return flagValue
				}
				return cfgValue
			}

			req := ytdlp.Request{
				URLs:               args,
				Type:               ytdlp.TypeVideo,
				OutputTemplate:     output,
				Subtitles:          subs,
				Playlist:           boolSetting("playlist", playlist, cfg.Defaults.Playlist),
				Metadata:           boolSetting("metadata", metadata, cfg.Defaults.Metadata),
				Thumbnail:          boolSetting("thumbnail", thumbnail, cfg.Defaults.Thumbnail),
				SponsorBlock:       boolSetting("sponsorblock", sponsorblock, cfg.Defaults.SponsorBlock),
				CookiesFile:        cookiesFile,
				CookiesFromBrowser: browser,
			}
			if format != "" {
				req.Type = ytdlp.TypeCustom
				req.Format = format
			} else if audioOnly {
				req.Type = ytdlp.TypeAudio
			}
			if req.OutputTemplate == "" {
				req.OutputTemplate = cfg.Defaults.OutputTemplate
			}
			req.SubtitleLangs = cfg.Defaults.SubtitleLangs
			if subLangs != "" {
				parsed := language.ParseCSV(subLangs)
				if len(parsed) == 0 {
					return fmt.Errorf("no recognizable subtitle languages in %q", subLangs)
				}
				req.SubtitleLangs = parsed
			}
			if err := req.Validate(); err != nil {
				return err
			}

			client, err := ctx.newClient(ytdlp.WithOutput(cmd.OutOrStdout(), cmd.ErrOrStderr()))
			if err != nil {
				return err
			}
			if err := ensureDownloader(cmd.Context(), client); err != nil {
				return err
			}

			runID := uuid.NewString()
			runLogger := logger.With(logging.String(logging.FieldRunID, runID))
			runLogger.Info("download starting",
				logging.Int("url_count", len(req.URLs)),
				logging.String("type", string(req.Type)),
			)

			started := time.Now()
			downloadErr := client.Download(cmd.Context(), req)
			took := time.Since(started)

			recordRun(cmd, cfg, runLogger, runID, req, started, took, downloadErr)

			if downloadErr != nil {
				runLogger.Error("download failed",
					logging.Duration("took", took),
					logging.Int(logging.FieldExitCode, ytdlp.ExitCode(downloadErr)),
					logging.Error(downloadErr),
				)
				return downloadErr
			}
			runLogger.Info("download finished", logging.Duration("took", took))
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "yt-dlp format selector (e.g. 'bestvideo+bestaudio')")
	cmd.Flags().BoolVarP(&audioOnly, "audio-only", "a", false, "Extract audio only")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output filename template")
	cmd.Flags().BoolVar(&subs, "subs", false, "Download subtitles")
	cmd.Flags().StringVar(&subLangs, "sub-langs", "", "Subtitle languages, comma separated")
	cmd.Flags().BoolVar(&playlist, "playlist", false, "Download the entire playlist")
	cmd.Flags().BoolVar(&metadata, "metadata", false, "Embed metadata")
	cmd.Flags().BoolVar(&thumbnail, "thumbnail", false, "Embed thumbnail")
	cmd.Flags().BoolVar(&sponsorblock, "sponsorblock", false, "Remove sponsor segments (SponsorBlock)")
	cmd.Flags().StringVar(&cookiesFile, "cookies", "", "Path to a Netscape format cookies file")
	cmd.Flags().StringVar(&browser, "browser", "", "Browser to extract cookies from (e.g. 'chrome', 'firefox')")

	return cmd
}
