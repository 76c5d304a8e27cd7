package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/VikumKarunathilake/video-downloader-cli/internal/config"
	"github.com/VikumKarunathilake/video-downloader-cli/internal/ytdlp"
)

func newFormatsCommand(ctx *commandContext) *cobra.Command {
	var cookiesFile string

	cmd := &cobra.Command{
		Use:     "formats URL...",
		Aliases: []string{"F"},
		Short:   "List the formats yt-dlp can download for a URL",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cookiesFile != "" {
				expanded, err := config.ExpandPath(cookiesFile)
				if err != nil {
					return err
				}
				if _, statErr := os.Stat(expanded); statErr != nil {
					return fmt.Errorf("cookies file %s not found", expanded)
				}
				cookiesFile = expanded
			}

			client, err := ctx.newClient(ytdlp.WithOutput(cmd.OutOrStdout(), cmd.ErrOrStderr()))
			if err != nil {
				return err
			}
			if err := ensureDownloader(cmd.Context(), client); err != nil {
				return err
			}

			for _, url := range args {
				fmt.Fprintf(cmd.OutOrStdout(), "Available formats for %s:\n", url)
				if err := client.ListFormats(cmd.Context(), url, cookiesFile); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&cookiesFile, "cookies", "", "Path to a Netscape format cookies file")

	return cmd
}
