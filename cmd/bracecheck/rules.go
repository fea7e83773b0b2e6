package bracecheck

import (
	"fmt"

	"github.com/bracecheck/bracecheck/internal/engine"
	"github.com/bracecheck/bracecheck/internal/rules"
	"github.com/spf13/cobra"
)

func init() {
	var mode string
	cmd := &cobra.Command{
		Use:   "rules",
		Short: "List available rules",
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, err := rules.ParseMode(mode)
			if err != nil {
				return err
			}
			rs, err := rules.Build(rules.Config{Mode: m}, "", "")
			if err != nil {
				return err
			}
			for _, r := range rs {
				fmt.Fprintf(cmd.OutOrStdout(), "%-20s %s\n", r.ID(), r.Description())
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&mode, "mode", "", "describe rules for this style: cuddled | uncuddled")
	rootCmd.AddCommand(cmd)
}

func buildRules(cfg engine.Config) ([]rules.Rule, error) {
	return rules.Build(rules.Config{Mode: cfg.Mode, Severity: cfg.Severity}, cfg.EnableRules, cfg.DisableRules)
}
