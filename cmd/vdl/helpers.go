package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/VikumKarunathilake/video-downloader-cli/internal/config"
	"github.com/VikumKarunathilake/video-downloader-cli/internal/deps"
	"github.com/VikumKarunathilake/video-downloader-cli/internal/history"
	"github.com/VikumKarunathilake/video-downloader-cli/internal/logging"
	"github.com/VikumKarunathilake/video-downloader-cli/internal/ytdlp"
)

// ensureDownloader probes yt-dlp before a run so missing installs surface as a
// clear instruction instead of a mid-run exec failure.
func ensureDownloader(ctx context.Context, client *ytdlp.CLI) error {
	if _, err := client.Version(ctx); err != nil {
		if errors.Is(err, deps.ErrMissingBinary) {
			return fmt.Errorf("yt-dlp is not installed or not on PATH.\nInstall it with 'pip install yt-dlp' or see https://github.com/yt-dlp/yt-dlp#installation")
		}
		return fmt.Errorf("probe yt-dlp: %w", err)
	}
	return nil
}

// recordRun appends the run to the history database. History failures are
// logged but never fail the command; the download already happened.
func recordRun(cmd *cobra.Command, cfg *config.Config, logger *slog.Logger, runID string, req ytdlp.Request, started time.Time, took time.Duration, runErr error) {
	if cfg == nil || !cfg.History.Enabled {
		return
	}

	store, err := history.Open(cfg.HistoryPath())
	if err != nil {
		logger.Warn("history unavailable", logging.Error(err))
		return
	}
	defer store.Close()

	ctx := cmd.Context()
	if ctx.Err() != nil {
		// The run context is gone after Ctrl-C; record with a fresh one.
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
	}

	record := history.Record{
		RunID:     runID,
		StartedAt: started,
		Duration:  took,
		Kind:      string(req.Type),
		URLs:      req.URLs,
		ExitCode:  ytdlp.ExitCode(runErr),
	}
	if _, err := store.Add(ctx, record); err != nil {
		logger.Warn("history record failed", logging.Error(err))
		return
	}
	if err := store.Prune(ctx, cfg.History.MaxEntries); err != nil {
		logger.Warn("history prune failed", logging.Error(err))
	}
}
