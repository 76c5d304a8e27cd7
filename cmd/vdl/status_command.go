package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/VikumKarunathilake/video-downloader-cli/internal/preflight"
)

func newStatusCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Check external dependencies and the download environment",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			statuses := preflight.CheckSystemDeps(cmd.Context(), cfg)
			depRows := make([][]string, 0, len(statuses))
			missingRequired := false
			for _, status := range statuses {
				state := "ok"
				if !status.Available {
					if status.Optional {
						state = "missing (optional)"
					} else {
						state = "missing"
						missingRequired = true
					}
				}
				detail := status.Version
				if detail == "" {
					detail = status.Detail
				}
				depRows = append(depRows, []string{status.Name, state, detail, status.Description})
			}
			fmt.Fprintln(out, "Dependencies:")
			fmt.Fprintln(out, renderTable([]string{"Name", "State", "Version / Detail", "Purpose"}, depRows))

			checks := []preflight.Result{
				preflight.CheckDownloadDir(cfg),
				preflight.CheckCookies(cfg),
			}
			checkRows := make([][]string, 0, len(checks))
			failures := false
			for _, check := range checks {
				state := "ok"
				if !check.Passed {
					state = "warning"
					failures = true
				}
				checkRows = append(checkRows, []string{check.Name, state, check.Detail})
			}
			fmt.Fprintln(out, "Environment:")
			fmt.Fprintln(out, renderTable([]string{"Check", "State", "Detail"}, checkRows))

			if missingRequired {
				return fmt.Errorf("required dependencies are missing")
			}
			if failures {
				fmt.Fprintln(out, "Some checks reported warnings; downloads may still work.")
			}
			return nil
		},
	}
}
