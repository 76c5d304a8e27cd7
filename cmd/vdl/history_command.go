package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/VikumKarunathilake/video-downloader-cli/internal/history"
)

func newHistoryCommand(ctx *commandContext) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent download runs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			path := cfg.HistoryPath()
			if _, err := os.Stat(path); err != nil {
				fmt.Fprintln(cmd.OutOrStdout(), "No download history recorded yet.")
				return nil
			}

			store, err := history.Open(path)
			if err != nil {
				return err
			}
			defer store.Close()

			records, err := store.List(cmd.Context(), limit)
			if err != nil {
				return err
			}
			if len(records) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No download history recorded yet.")
				return nil
			}

			rows := make([][]string, 0, len(records))
			for _, record := range records {
				rows = append(rows, []string{
					strconv.FormatInt(record.ID, 10),
					record.StartedAt.Local().Format("2006-01-02 15:04"),
					record.Kind,
					summarizeURLs(record.URLs),
					record.Duration.Round(time.Second).String(),
					strconv.Itoa(record.ExitCode),
				})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"ID", "Started", "Kind", "URLs", "Took", "Exit"},
				rows, 0, 5,
			))
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum number of runs to show (0 for all)")

	cmd.AddCommand(newHistoryClearCommand(ctx))

	return cmd
}

func newHistoryClearCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Delete all recorded download runs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			path := cfg.HistoryPath()
			if _, err := os.Stat(path); err != nil {
				fmt.Fprintln(cmd.OutOrStdout(), "No download history recorded yet.")
				return nil
			}

			store, err := history.Open(path)
			if err != nil {
				// A schema mismatch still clears cleanly by removing the file.
				if removeErr := os.Remove(path); removeErr != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "History database removed.")
				return nil
			}
			defer store.Close()

			removed, err := store.Clear(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Cleared %d recorded run(s).\n", removed)
			return nil
		},
	}
}

// summarizeURLs keeps the table readable for multi-URL runs.
func summarizeURLs(urls []string) string {
	const maxShown = 2
	if len(urls) <= maxShown {
		return strings.Join(urls, " ")
	}
	return fmt.Sprintf("%s (+%d more)", strings.Join(urls[:maxShown], " "), len(urls)-maxShown)
}
