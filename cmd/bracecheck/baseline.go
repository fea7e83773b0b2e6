package bracecheck

import (
	"context"
	"fmt"

	"github.com/bracecheck/bracecheck/internal/engine"
	"github.com/bracecheck/bracecheck/internal/report"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "baseline",
		Short: "Manage baselines",
	}

	var output string
	update := &cobra.Command{
		Use:   "update",
		Short: "Record current violations so later checks only report new ones",
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := resolveSettings(cmd)
			if err != nil {
				return err
			}
			s.engine.NoCache = true
			res, err := engine.Run(context.Background(), s.engine)
			if err != nil {
				return err
			}
			if err := report.SaveBaseline(inRoot(s.engine.Root, output), res.Violations); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Baseline updated (%d violations).\n", len(res.Violations))
			return nil
		},
	}
	addSelectionFlags(update)
	update.Flags().StringVar(&output, "output", baselineFile, "baseline file to write (relative to --path)")

	rootCmd.AddCommand(cmd)
	cmd.AddCommand(update)
}
