package bracecheck

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/bracecheck/bracecheck/internal/audit"
	"github.com/bracecheck/bracecheck/internal/engine"
	"github.com/bracecheck/bracecheck/internal/report"
	"github.com/bracecheck/bracecheck/internal/types"
	"github.com/spf13/cobra"
)

func init() {
	var dryRun bool
	var summary string
	cmd := &cobra.Command{
		Use:   "fix",
		Short: "Rewrite misplaced else/catch keywords in place",
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := resolveSettings(cmd)
			if err != nil {
				return err
			}
			s.engine.Fix = true
			s.engine.DryRun = dryRun
			done := withProgress(&s.engine)
			res, err := engine.Run(context.Background(), s.engine)
			done()
			if err != nil {
				return fmt.Errorf("fix error: %w", err)
			}
			for _, e := range res.Errors {
				_, _ = fmt.Fprintln(cmd.ErrOrStderr(), "warning:", e)
			}

			out := cmd.OutOrStdout()
			if flagJSON {
				if err := writeCorrectionsJSON(out, res); err != nil {
					return err
				}
			} else {
				report.PrintCorrections(out, res.Corrections, dryRun, report.PrintOptions{
					NoColor:    s.noColor,
					Duration:   res.Duration,
					FilesFixed: res.FilesFixed,
				})
			}
			if flagAudit && !dryRun {
				rec := audit.NewRunRecord("fix", s.engine.Root, string(s.engine.Mode), res.Violations, res.Violations, res.FilesScanned, res.Duration)
				rec.FilesFixed = res.FilesFixed
				rec.Corrections = len(res.Corrections)
				if err := audit.NewLog(s.engine.Root).LogRun(rec); err != nil {
					_, _ = fmt.Fprintln(cmd.ErrOrStderr(), "audit warning:", err)
				}
			}
			if summary != "" {
				if err := writeFixSummary(summary, res, dryRun); err != nil {
					return fmt.Errorf("write summary: %w", err)
				}
			}
			if len(res.Errors) > 0 {
				return fmt.Errorf("%d file(s) could not be processed", len(res.Errors))
			}
			return nil
		},
	}
	addSelectionFlags(cmd)
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "report corrections without writing files")
	cmd.Flags().StringVar(&summary, "summary", "", "write a fix summary JSON to this path")
	rootCmd.AddCommand(cmd)
}

func writeCorrectionsJSON(w io.Writer, res engine.Result) error {
	cs := res.Corrections
	if cs == nil {
		cs = []types.Correction{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(cs)
}
