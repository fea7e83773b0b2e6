package bracecheck

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/bracecheck/bracecheck/internal/config"
	"github.com/bracecheck/bracecheck/internal/engine"
	"github.com/bracecheck/bracecheck/internal/rules"
	"github.com/bracecheck/bracecheck/internal/types"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

const (
	defaultMaxBytes = 1 << 20
	baselineFile    = "bracecheck.baseline.json"
)

// selection flags shared by check, fix and baseline update
var (
	flagPath     string
	flagMode     string
	flagSeverity string
	flagInclude  string
	flagExclude  string
	flagMaxBytes int64
	flagChanged  bool
	flagEnable   string
	flagDisable  string
	flagLanguage string
)

func addSelectionFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&flagPath, "path", "p", ".", "path to check")
	cmd.Flags().StringVar(&flagMode, "mode", "", "statement position style: cuddled | uncuddled (default cuddled)")
	cmd.Flags().StringVar(&flagSeverity, "severity", "", "severity of violations: warning | error (default warning)")
	cmd.Flags().StringVar(&flagInclude, "include", "", "comma-separated include globs")
	cmd.Flags().StringVar(&flagExclude, "exclude", "", "comma-separated exclude globs")
	cmd.Flags().Int64Var(&flagMaxBytes, "max-bytes", 0, "skip files larger than this (default 1 MiB)")
	cmd.Flags().BoolVar(&flagChanged, "changed", false, "only check files modified or untracked in the git worktree")
	cmd.Flags().StringVar(&flagEnable, "enable", "", "only run these rules (comma-separated IDs)")
	cmd.Flags().StringVar(&flagDisable, "disable", "", "disable these rules (comma-separated IDs)")
	cmd.Flags().StringVar(&flagLanguage, "language", "", "lexer for files no lexer claims by name (e.g. swift)")
}

// settings is everything a command needs after flags and config files are merged.
type settings struct {
	engine  engine.Config
	failOn  string
	noColor bool
}

// resolveSettings merges configuration with precedence CLI > local > global.
func resolveSettings(cmd *cobra.Command) (settings, error) {
	abs, err := filepath.Abs(flagPath)
	if err != nil {
		return settings{}, err
	}
	var gcfg, lcfg config.FileConfig
	if c, err := config.LoadGlobal(); err == nil {
		gcfg = c
	}
	if c, err := config.LoadLocal(abs); err == nil {
		lcfg = c
	} else if !errors.Is(err, config.ErrNoConfig) {
		return settings{}, err
	}

	mode, err := rules.ParseMode(pickString(flagMode, lcfg.StatementMode, gcfg.StatementMode))
	if err != nil {
		return settings{}, err
	}
	sev, err := rules.ParseSeverity(pickString(flagSeverity, lcfg.Severity, gcfg.Severity))
	if err != nil {
		return settings{}, err
	}
	failOn := pickString(flagFailOn, lcfg.FailOn, gcfg.FailOn)
	if failOn == "" {
		failOn = string(types.SevWarning)
	}
	if _, err := rules.ParseSeverity(failOn); err != nil {
		return settings{}, err
	}
	maxBytes := pickInt64(flagMaxBytes, lcfg.MaxBytes, gcfg.MaxBytes)
	if maxBytes == 0 {
		maxBytes = defaultMaxBytes
	}
	defaultExcludes := flagDefaultExcludes
	if !cmd.Flags().Changed("default-excludes") {
		if lcfg.DefaultExcludes != nil {
			defaultExcludes = *lcfg.DefaultExcludes
		} else if gcfg.DefaultExcludes != nil {
			defaultExcludes = *gcfg.DefaultExcludes
		}
	}
	noColor := pickBool(flagNoColor, lcfg.NoColor, gcfg.NoColor) || !isTerminal(os.Stdout)
	color.NoColor = noColor

	return settings{
		engine: engine.Config{
			Root:            abs,
			IncludeGlobs:    pickString(flagInclude, lcfg.Include, gcfg.Include),
			ExcludeGlobs:    pickString(flagExclude, lcfg.Exclude, gcfg.Exclude),
			MaxBytes:        maxBytes,
			Threads:         pickInt(flagThreads, lcfg.Threads, gcfg.Threads),
			EnableRules:     pickString(flagEnable, lcfg.Enable, gcfg.Enable),
			DisableRules:    pickString(flagDisable, lcfg.Disable, gcfg.Disable),
			Mode:            mode,
			Severity:        sev,
			Language:        pickString(flagLanguage, lcfg.Language, gcfg.Language),
			NoCache:         flagNoCache,
			DefaultExcludes: defaultExcludes,
			ChangedOnly:     flagChanged,
			Logger:          newLogger(os.Stderr),
		},
		failOn:  failOn,
		noColor: noColor,
	}, nil
}

// inRoot resolves a relative file name against the checked root.
func inRoot(root, name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(root, name)
}

func newLogger(w io.Writer) *slog.Logger {
	if !flagVerbose {
		return slog.New(slog.DiscardHandler)
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// withProgress installs a simple textual progress counter on stderr when
// stderr is an interactive terminal and output is meant for humans.
func withProgress(cfg *engine.Config) func() {
	if flagJSON || flagSARIF || !isTerminal(os.Stderr) {
		return func() {}
	}
	total, _ := engine.CountTargets(*cfg)
	if total == 0 {
		return func() {}
	}
	progressed := 0
	cfg.Progress = func() {
		progressed++
		if progressed%10 == 0 || progressed == total {
			pct := float64(progressed) / float64(total) * 100
			_, _ = fmt.Fprintf(os.Stderr, "\r[%d/%d] %.0f%%", progressed, total, pct)
		}
	}
	return func() { _, _ = fmt.Fprintln(os.Stderr) }
}

// writeFixSummary writes a JSON summary file for fix runs.
func writeFixSummary(path string, res engine.Result, dryRun bool) error {
	files := map[string]int{}
	for _, c := range res.Corrections {
		files[c.Location.Path]++
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(map[string]any{
		"action":      "fix",
		"dry_run":     dryRun,
		"files":       files,
		"corrections": len(res.Corrections),
		"files_fixed": res.FilesFixed,
		"errors":      len(res.Errors),
		"timestamp":   time.Now().Format(time.RFC3339),
	})
}

func pickString(cli string, local, global *string) string {
	if cli != "" {
		return cli
	}
	if local != nil && *local != "" {
		return *local
	}
	if global != nil && *global != "" {
		return *global
	}
	return ""
}

func pickInt(cli int, local, global *int) int {
	if cli != 0 {
		return cli
	}
	if local != nil && *local != 0 {
		return *local
	}
	if global != nil && *global != 0 {
		return *global
	}
	return 0
}

func pickInt64(cli int64, local, global *int64) int64 {
	if cli != 0 {
		return cli
	}
	if local != nil && *local != 0 {
		return *local
	}
	if global != nil && *global != 0 {
		return *global
	}
	return 0
}

func pickBool(cli bool, local, global *bool) bool {
	if cli {
		return true
	}
	if local != nil {
		return *local
	}
	if global != nil {
		return *global
	}
	return false
}
