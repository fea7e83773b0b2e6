package bracecheck

import (
	"fmt"
	"os"
	"strings"

	"github.com/bracecheck/bracecheck/internal/config"
	"github.com/bracecheck/bracecheck/internal/rules"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	cfgOutput          string
	cfgMode            string
	cfgSeverity        string
	cfgEnable          string
	cfgDisable         string
	cfgThreads         int
	cfgMaxBytes        int64
	cfgNoColor         bool
	cfgDefaultExcludes bool
	cfgLanguage        string
	cfgForce           bool
)

func init() {
	cfgCmd := &cobra.Command{Use: "config", Short: "Configuration helpers"}
	rootCmd.AddCommand(cfgCmd)

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Generate a .bracecheck.yml with the selected style and options",
		RunE:  runConfigInit,
	}
	cfgCmd.AddCommand(initCmd)

	initCmd.Flags().StringVar(&cfgOutput, "output", ".bracecheck.yml", "output file path")
	initCmd.Flags().StringVar(&cfgMode, "mode", string(rules.Cuddled), "statement position style: cuddled | uncuddled")
	initCmd.Flags().StringVar(&cfgSeverity, "severity", "warning", "severity of violations: warning | error")
	initCmd.Flags().StringVar(&cfgEnable, "enable", "", "comma-separated rule IDs to enable")
	initCmd.Flags().StringVar(&cfgDisable, "disable", "", "comma-separated rule IDs to disable")
	initCmd.Flags().IntVar(&cfgThreads, "threads", 0, "worker threads (0=GOMAXPROCS)")
	initCmd.Flags().Int64Var(&cfgMaxBytes, "max-bytes", defaultMaxBytes, "skip files larger than this")
	initCmd.Flags().BoolVar(&cfgNoColor, "no-color", false, "disable color output by default")
	initCmd.Flags().BoolVar(&cfgDefaultExcludes, "default-excludes", true, "enable default ignore patterns")
	initCmd.Flags().StringVar(&cfgLanguage, "language", "", "lexer for files no lexer claims by name")
	initCmd.Flags().BoolVar(&cfgForce, "force", false, "overwrite an existing file")
}

func runConfigInit(cmd *cobra.Command, _ []string) error {
	mode, err := rules.ParseMode(cfgMode)
	if err != nil {
		return err
	}
	sev, err := rules.ParseSeverity(cfgSeverity)
	if err != nil {
		return err
	}
	if _, err := rules.Build(rules.Config{Mode: mode, Severity: sev}, cfgEnable, cfgDisable); err != nil {
		return err
	}
	if _, err := os.Stat(cfgOutput); err == nil && !cfgForce {
		return fmt.Errorf("%s already exists (use --force to overwrite)", cfgOutput)
	}

	fc := config.FileConfig{
		StatementMode:   strPtr(string(mode)),
		Severity:        strPtr(string(sev)),
		MaxBytes:        int64Ptr(cfgMaxBytes),
		Enable:          optStrPtr(cfgEnable),
		Disable:         optStrPtr(cfgDisable),
		Threads:         intPtr(cfgThreads),
		NoColor:         boolPtr(cfgNoColor),
		DefaultExcludes: boolPtr(cfgDefaultExcludes),
		Language:        optStrPtr(cfgLanguage),
	}

	b, err := yaml.Marshal(&fc)
	if err != nil {
		return err
	}
	if err := os.WriteFile(cfgOutput, b, 0644); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Wrote", cfgOutput)
	return nil
}

func strPtr(s string) *string { return &s }
func optStrPtr(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
func intPtr(v int) *int {
	if v == 0 {
		return nil
	}
	return &v
}
func int64Ptr(v int64) *int64 { return &v }
func boolPtr(v bool) *bool    { return &v }
