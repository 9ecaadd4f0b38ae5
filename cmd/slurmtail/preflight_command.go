package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"slurmtail/internal/preflight"
)

func newPreflightCommand(cctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preflight",
		Short: "Check the scheduler binary and working directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := cctx.ensureConfig()
			if err != nil {
				return err
			}

			cwd, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("determine working directory: %w", err)
			}

			results := preflight.Run(cfg.Scheduler.SubmitBinary, cwd)

			rows := make([][]string, 0, len(results))
			failed := 0
			for _, r := range results {
				status := "PASS"
				if !r.Passed {
					status = "FAIL"
					failed++
				}
				rows = append(rows, []string{r.Name, status, r.Detail})
			}

			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"Check", "Status", "Detail"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignLeft},
			))

			if failed > 0 {
				return errors.New("preflight checks failed")
			}
			return nil
		},
	}

	return cmd
}
