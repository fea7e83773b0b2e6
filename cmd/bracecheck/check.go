package bracecheck

import (
	"context"
	"fmt"
	"strings"

	"github.com/bracecheck/bracecheck/internal/audit"
	"github.com/bracecheck/bracecheck/internal/engine"
	"github.com/bracecheck/bracecheck/internal/report"
	"github.com/spf13/cobra"
)

var flagBaseline string

func init() {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Report misplaced else/catch keywords",
		RunE:  runCheck,
	}
	rootCmd.AddCommand(cmd)
	addSelectionFlags(cmd)
	cmd.Flags().StringVar(&flagBaseline, "baseline", baselineFile, "ignore violations recorded in this baseline file (relative to --path)")
}

func runCheck(cmd *cobra.Command, _ []string) error {
	s, err := resolveSettings(cmd)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if !flagJSON && !flagSARIF {
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Checking %s (%s style)...\n", s.engine.Root, s.engine.Mode)
	}
	done := withProgress(&s.engine)
	res, err := engine.Run(context.Background(), s.engine)
	done()
	if err != nil {
		return fmt.Errorf("check error: %w", err)
	}
	for _, e := range res.Errors {
		_, _ = fmt.Fprintln(cmd.ErrOrStderr(), "warning:", e)
	}

	base, _ := report.LoadBaseline(inRoot(s.engine.Root, flagBaseline))
	violations := report.FilterNew(res.Violations, base)

	opts := report.PrintOptions{NoColor: s.noColor, Duration: res.Duration, FilesScanned: res.FilesScanned}
	switch {
	case flagSARIF:
		stats := map[string]int{"filesScanned": res.FilesScanned, "durationMs": int(res.Duration.Milliseconds())}
		if err := report.WriteSARIFWithStats(out, violations, stats); err != nil {
			return fmt.Errorf("sarif error: %w", err)
		}
	case flagJSON:
		if err := report.WriteJSON(out, violations); err != nil {
			return err
		}
	case flagTable:
		if err := report.PrintTable(out, violations, opts); err != nil {
			return err
		}
	default:
		report.PrintText(out, violations, opts)
	}

	if flagAudit {
		rec := audit.NewRunRecord("check", s.engine.Root, string(s.engine.Mode), res.Violations, violations, res.FilesScanned, res.Duration)
		if err := audit.NewLog(s.engine.Root).LogRun(rec); err != nil {
			_, _ = fmt.Fprintln(cmd.ErrOrStderr(), "audit warning:", err)
		}
	}
	if cmd.Flags().Changed("enable") || cmd.Flags().Changed("disable") {
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "rules active: %s\n", activeSetSummary(s.engine))
	}
	if report.ShouldFail(violations, s.failOn) {
		exit(1)
	}
	return nil
}

// activeSetSummary lists the rule IDs a run with cfg uses.
func activeSetSummary(cfg engine.Config) string {
	rs, err := buildRules(cfg)
	if err != nil {
		return err.Error()
	}
	if len(rs) == 0 {
		return "(none)"
	}
	ids := make([]string, 0, len(rs))
	for _, r := range rs {
		ids = append(ids, r.ID())
	}
	return strings.Join(ids, ",")
}
