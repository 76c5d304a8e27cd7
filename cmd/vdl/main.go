package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/VikumKarunathilake/video-downloader-cli/internal/interactive"
	"github.com/VikumKarunathilake/video-downloader-cli/internal/ytdlp"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd := newRootCommand()
	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return
	}
	if errors.Is(err, interactive.ErrAborted) {
		fmt.Fprintln(os.Stderr, "Canceled.")
		return
	}
	if !errors.Is(err, context.Canceled) {
		fmt.Fprintln(os.Stderr, err)
	}
	os.Exit(ytdlp.ExitCode(err))
}
