package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/hoppxi/shades/internal/watchers"
	"github.com/hoppxi/shades/pkg/backlight"
)

func newWatchCmd(a *app) *cobra.Command {
	watchCmd := &cobra.Command{
		Use:   "watch",
		Short: "Print the brightness every time it changes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := a.devicePath(cmd)
			if err != nil {
				return err
			}
			format, err := a.outputFormat(cmd)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			out := cmd.OutOrStdout()
			first := true
			return watchers.WatchBacklight(ctx, a.fs, path, func(s *backlight.Status) {
				if !first && format == backlight.FormatText {
					fmt.Fprintln(out)
				}
				first = false
				if err := s.Encode(out, format); err != nil {
					log.Error().Err(err).Msg("failed to print backlight status")
				}
			})
		},
	}

	addPathFlag(watchCmd)
	watchCmd.Flags().StringP("output", "o", "", "Output format: text, json or yaml")
	return watchCmd
}
