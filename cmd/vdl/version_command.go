package main

import (
	"errors"
	"fmt"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/VikumKarunathilake/video-downloader-cli/internal/deps"
)

// version is stamped at release time via -ldflags "-X main.version=...".
var version = ""

func newVersionCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:         "version",
		Short:       "Print vdl and yt-dlp versions",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "vdl %s\n", resolveVersion())

			binary := "yt-dlp"
			if cfg, err := ctx.ensureConfig(); err == nil {
				binary = cfg.Binary()
			}
			probed, err := deps.Version(cmd.Context(), binary)
			switch {
			case errors.Is(err, deps.ErrMissingBinary):
				fmt.Fprintf(out, "%s: not installed\n", binary)
			case err != nil:
				fmt.Fprintf(out, "%s: version unavailable (%v)\n", binary, err)
			default:
				fmt.Fprintf(out, "%s %s\n", binary, probed)
			}
			return nil
		},
	}
}

func resolveVersion() string {
	if version != "" {
		return version
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return "dev"
}
