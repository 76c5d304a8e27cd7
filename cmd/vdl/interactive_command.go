package main

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/VikumKarunathilake/video-downloader-cli/internal/config"
	"github.com/VikumKarunathilake/video-downloader-cli/internal/interactive"
	"github.com/VikumKarunathilake/video-downloader-cli/internal/logging"
	"github.com/VikumKarunathilake/video-downloader-cli/internal/ytdlp"
)

func newInteractiveCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:     "interactive",
		Aliases: []string{"i"},
		Short:   "Walk through download options with prompts",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInteractive(cmd, ctx)
		},
	}
}

func runInteractive(cmd *cobra.Command, ctx *commandContext) error {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return err
	}
	logger, err := ctx.ensureLogger()
	if err != nil {
		return err
	}

	client, err := ctx.newClient(ytdlp.WithOutput(cmd.OutOrStdout(), cmd.ErrOrStderr()))
	if err != nil {
		return err
	}
	if err := ensureDownloader(cmd.Context(), client); err != nil {
		return err
	}

	recorder := &recordingClient{
		Client: client,
		cmd:    cmd,
		cfg:    cfg,
		logger: logger,
	}
	session := interactive.NewSession(cfg, recorder, logger,
		interactive.WithOutput(cmd.OutOrStdout()),
	)
	return session.Run(cmd.Context())
}

// recordingClient wraps a client so interactive downloads get the same run IDs
// and history entries as the flag-driven command.
type recordingClient struct {
	ytdlp.Client
	cmd    *cobra.Command
	cfg    *config.Config
	logger *slog.Logger
}

func (r *recordingClient) Download(ctx context.Context, req ytdlp.Request) error {
	runID := uuid.NewString()
	logger := r.logger.With(logging.String(logging.FieldRunID, runID))

	started := time.Now()
	err := r.Client.Download(ctx, req)
	took := time.Since(started)

	recordRun(r.cmd, r.cfg, logger, runID, req, started, took, err)
	return err
}
