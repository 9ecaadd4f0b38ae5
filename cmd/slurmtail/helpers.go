package main

import (
	"context"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"slurmtail/internal/config"
	"slurmtail/internal/history"
	"slurmtail/internal/tailer"
)

// monitorLog runs one follow session against logPath. A positive
// timeoutSeconds from the command line overrides both configured
// timeouts, mirroring the single -t flag; noFileTimeout switches the
// appearance wait into its unbounded state.
func monitorLog(cmd *cobra.Command, cfg *config.Config, logger *slog.Logger, logPath string, timeoutSeconds int, noFileTimeout bool) error {
	appearance := cfg.AppearanceTimeout()
	stall := cfg.StallTimeout()
	if timeoutSeconds > 0 {
		appearance = time.Duration(timeoutSeconds) * time.Second
		stall = appearance
	}

	return tailer.Monitor(cmd.Context(), logPath, cmd.OutOrStdout(), tailer.MonitorOptions{
		AppearanceTimeout:   appearance,
		UnboundedAppearance: noFileTimeout,
		StallTimeout:        stall,
		WindowLines:         cfg.Tail.WindowLines,
	}, logger)
}

// recordSubmission appends to the history store on a best-effort basis;
// a broken history database must not block monitoring a job that was
// already submitted.
func recordSubmission(ctx context.Context, cfg *config.Config, logger *slog.Logger, sub history.Submission) {
	if !cfg.History.Enabled {
		return
	}

	store, err := history.Open(ctx, cfg.History.Path)
	if err != nil {
		logger.Warn("history unavailable", "error", err)
		return
	}
	defer store.Close()

	if err := store.Record(ctx, sub); err != nil {
		logger.Warn("recording submission failed", "error", err)
	}
}
