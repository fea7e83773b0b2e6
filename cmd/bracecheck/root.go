package bracecheck

import (
	"fmt"
	"os"

	"github.com/bracecheck/bracecheck/internal/report"
	"github.com/spf13/cobra"
)

var (
	flagJSON            bool
	flagSARIF           bool
	flagTable           bool
	flagThreads         int
	flagFailOn          string
	flagNoColor         bool
	flagNoCache         bool
	flagDefaultExcludes bool
	flagVerbose         bool
	flagAudit           bool

	version = "0.1.0"

	// exit is swapped out by tests that exercise failing runs.
	exit = os.Exit
)

// rootCmd is the base Cobra command for the bracecheck CLI.
var rootCmd = &cobra.Command{
	Use:           "bracecheck",
	Short:         "Check where else and catch sit after a closing brace",
	Long:          "bracecheck reports and fixes else/catch keywords that are not placed the way your style asks: cuddled (\"} else {\") or uncuddled (on the next line, aligned with the brace).",
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		report.ToolVersion = version
	},
}

// Execute runs the bracecheck CLI. It should be called by the main package.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		exit(2)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "emit JSON")
	rootCmd.PersistentFlags().BoolVar(&flagSARIF, "sarif", false, "emit SARIF 2.1.0")
	rootCmd.PersistentFlags().BoolVar(&flagTable, "table", false, "output in table format with borders")
	rootCmd.PersistentFlags().IntVar(&flagThreads, "threads", 0, "worker count (0 = GOMAXPROCS)")
	rootCmd.PersistentFlags().StringVar(&flagFailOn, "fail-on", "", "fail on warning|error (default warning)")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "disable colorized output")
	rootCmd.PersistentFlags().BoolVar(&flagNoCache, "no-cache", false, "disable incremental check cache")
	rootCmd.PersistentFlags().BoolVar(&flagDefaultExcludes, "default-excludes", true, "apply built-in exclude list (node_modules, Pods, build, images, etc.)")
	rootCmd.PersistentFlags().BoolVar(&flagAudit, "audit", false, "append a summary of check and fix runs to the audit history")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "log debug details to stderr")
}
