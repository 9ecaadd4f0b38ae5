package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"slurmtail/internal/marker"
)

func newResumeCommand(cctx *commandContext) *cobra.Command {
	var timeoutSeconds int
	var noFileTimeout bool

	cmd := &cobra.Command{
		Use:     "resume",
		Aliases: []string{"r"},
		Short:   "Resume monitoring a previously started job",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := cctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := cctx.ensureLogger()
			if err != nil {
				return err
			}

			cwd, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("determine working directory: %w", err)
			}

			logPath, err := marker.Load(cwd)
			if err != nil {
				return err
			}

			logger.Info("resuming monitoring", "path", logPath)
			return monitorLog(cmd, cfg, logger, logPath, timeoutSeconds, noFileTimeout)
		},
	}

	cmd.Flags().IntVarP(&timeoutSeconds, "timeout", "t", 0, "Timeout in seconds for file appearance and stalls (default 120)")
	cmd.Flags().BoolVarP(&noFileTimeout, "no-file-timeout", "n", false, "Wait indefinitely for the log file to appear")

	return cmd
}
