package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"artgallery/internal/logging"
	"artgallery/internal/logs"
)

func newLogsCommand(ctx *commandContext) *cobra.Command {
	var lines int
	var follow bool

	cmd := &cobra.Command{
		Use:   "logs",
		Short: "Print the newest session log",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			path, err := logs.Latest(cfg.Logging.Dir, logging.LogFilePattern)
			if errors.Is(err, logs.ErrNoLogs) {
				fmt.Fprintln(out, "No log entries available")
				return nil
			}
			if err != nil {
				return err
			}

			tail, offset, err := logs.Last(path, max(lines, 0))
			if err != nil {
				return fmt.Errorf("tail logs: %w", err)
			}
			for _, line := range tail {
				fmt.Fprintln(out, line)
			}
			if !follow {
				if len(tail) == 0 {
					fmt.Fprintln(out, "No log entries available")
				}
				return nil
			}
			return logs.Follow(cmd.Context(), path, offset, func(line string) {
				fmt.Fprintln(out, line)
			})
		},
	}

	cmd.Flags().IntVarP(&lines, "lines", "n", 50, "Number of trailing lines to print")
	cmd.Flags().BoolVarP(&follow, "follow", "f", false, "Keep printing lines as they are written")
	return cmd
}
