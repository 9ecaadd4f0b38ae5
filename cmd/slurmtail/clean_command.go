package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"slurmtail/internal/marker"
)

func newCleanCommand(cctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "clean",
		Aliases: []string{"c"},
		Short:   "Remove any existing resume marker",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cwd, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("determine working directory: %w", err)
			}

			removed, err := marker.Clear(cwd)
			if err != nil {
				return err
			}
			if removed {
				fmt.Fprintf(cmd.OutOrStdout(), "Removed resume marker: %s\n", filepath.Join(cwd, marker.Filename))
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), "No resume marker found to clean")
			}
			return nil
		},
	}

	return cmd
}
