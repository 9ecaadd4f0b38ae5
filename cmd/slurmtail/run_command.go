package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"slurmtail/internal/history"
	"slurmtail/internal/marker"
	"slurmtail/internal/sbatch"
)

func newRunCommand(cctx *commandContext) *cobra.Command {
	var timeoutSeconds int
	var noFileTimeout bool

	cmd := &cobra.Command{
		Use:   "run <script>",
		Short: "Submit a batch script and follow its log output",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := cctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := cctx.ensureLogger()
			if err != nil {
				return err
			}

			scriptPath := args[0]
			if _, err := os.Stat(scriptPath); err != nil {
				return fmt.Errorf("batch script %s: %w", scriptPath, err)
			}

			directives, err := sbatch.ParseScript(scriptPath)
			if err != nil {
				return err
			}

			client := sbatch.NewCLI(sbatch.WithBinary(cfg.Scheduler.SubmitBinary))
			logger.Info("submitting job", "script", scriptPath)
			jobID, err := client.Submit(cmd.Context(), scriptPath)
			if err != nil {
				return err
			}
			logger.Info("job submitted", "job_id", jobID)

			filename := sbatch.ExpandPattern(directives.OutputPattern, jobID, directives.JobName)
			logPath, err := sbatch.ResolveLogPath(scriptPath, filename, true, logger)
			if err != nil {
				return err
			}
			logger.Debug("resolved log path", "path", logPath)

			cwd, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("determine working directory: %w", err)
			}
			if err := marker.Save(cwd, logPath); err != nil {
				return err
			}

			recordSubmission(cmd.Context(), cfg, logger, history.Submission{
				JobID:      jobID,
				JobName:    directives.JobName,
				ScriptPath: scriptPath,
				LogPath:    logPath,
			})

			logger.Info("monitoring log file", "path", logPath)
			return monitorLog(cmd, cfg, logger, logPath, timeoutSeconds, noFileTimeout)
		},
	}

	cmd.Flags().IntVarP(&timeoutSeconds, "timeout", "t", 0, "Timeout in seconds for file appearance and stalls (default 120)")
	cmd.Flags().BoolVarP(&noFileTimeout, "no-file-timeout", "n", false, "Wait indefinitely for the log file to appear")

	return cmd
}
