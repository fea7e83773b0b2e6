package report

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/bracecheck/bracecheck/internal/types"
	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
	"github.com/olekukonko/tablewriter"
)

type PrintOptions struct {
	NoColor      bool
	Duration     time.Duration
	FilesScanned int
	FilesFixed   int
}

var (
	errorColor   = color.New(color.FgRed, color.Bold)
	warningColor = color.New(color.FgYellow)
	pathColor    = color.New(color.Bold)
	caretColor   = color.New(color.FgGreen, color.Bold)
)

// sortViolations orders by path, then position.
func sortViolations(vs []types.Violation) {
	sort.SliceStable(vs, func(i, j int) bool {
		a, b := vs[i].Location, vs[j].Location
		if a.Path != b.Path {
			return a.Path < b.Path
		}
		if a.Line != b.Line {
			return a.Line < b.Line
		}
		return a.Column < b.Column
	})
}

// PrintText writes one compiler-style line per violation followed by the
// source line and a caret under the offending brace.
func PrintText(w io.Writer, violations []types.Violation, opts PrintOptions) {
	sortViolations(violations)
	paint := func(c *color.Color, s string) string {
		if opts.NoColor {
			return s
		}
		return c.Sprint(s)
	}
	if len(violations) == 0 {
		fmt.Fprintln(w, "No violations found ✅")
	}
	for _, v := range violations {
		loc := fmt.Sprintf("%s:%d:%d:", v.Location.Path, v.Location.Line, v.Location.Column)
		fmt.Fprintf(w, "%s %s %s (%s)\n", paint(pathColor, loc), paint(severityColor(v.Severity), string(v.Severity)+":"), v.Message, v.RuleID)
		if v.Snippet == "" {
			continue
		}
		fmt.Fprintf(w, "    %s\n", v.Snippet)
		fmt.Fprintf(w, "    %s%s\n", caretPadding(v.Snippet, v.Location.Column), paint(caretColor, "^"))
	}
	printFooter(w, violations, opts)
}

// PrintTable renders violations as a bordered table.
func PrintTable(w io.Writer, violations []types.Violation, opts PrintOptions) error {
	sortViolations(violations)
	if len(violations) == 0 {
		fmt.Fprintln(w, "No violations found ✅")
	} else {
		table := tablewriter.NewWriter(w)
		table.Header("Severity", "Rule", "Location", "Message")
		for _, v := range violations {
			sev := string(v.Severity)
			if !opts.NoColor {
				sev = severityColor(v.Severity).Sprint(sev)
			}
			loc := fmt.Sprintf("%s:%d:%d", v.Location.Path, v.Location.Line, v.Location.Column)
			if err := table.Append([]string{sev, v.RuleID, loc, v.Message}); err != nil {
				return err
			}
		}
		if err := table.Render(); err != nil {
			return err
		}
	}
	printFooter(w, violations, opts)
	return nil
}

// PrintCorrections lists what fix changed, or would change with a dry run.
func PrintCorrections(w io.Writer, corrections []types.Correction, dryRun bool, opts PrintOptions) {
	verb := "fixed"
	if dryRun {
		verb = "would fix"
	}
	for _, c := range corrections {
		fmt.Fprintf(w, "%s:%d:%d: %s (%s)\n", c.Location.Path, c.Location.Line, c.Location.Column, verb, c.RuleID)
	}
	files := map[string]bool{}
	for _, c := range corrections {
		files[c.Location.Path] = true
	}
	if len(corrections) == 0 {
		fmt.Fprintln(w, "Nothing to fix ✅")
	} else if dryRun {
		fmt.Fprintf(w, "Would correct %d violation(s) in %d file(s)\n", len(corrections), len(files))
	} else {
		fmt.Fprintf(w, "Corrected %d violation(s) in %d file(s)\n", len(corrections), opts.FilesFixed)
	}
	if opts.Duration > 0 {
		fmt.Fprintf(w, "Duration: %.2fs\n", opts.Duration.Seconds())
	}
}

// WriteJSON writes violations as an indented JSON array; nil becomes [].
func WriteJSON(w io.Writer, violations []types.Violation) error {
	if violations == nil {
		violations = []types.Violation{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(violations)
}

func printFooter(w io.Writer, violations []types.Violation, opts PrintOptions) {
	if opts.Duration <= 0 && opts.FilesScanned <= 0 {
		return
	}
	errs, warns := 0, 0
	for _, v := range violations {
		if v.Severity == types.SevError {
			errs++
		} else {
			warns++
		}
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Violations: %d (errors: %d, warnings: %d)\n", len(violations), errs, warns)
	if opts.Duration > 0 {
		fmt.Fprintf(w, "Duration: %.2fs\n", opts.Duration.Seconds())
	}
	if opts.FilesScanned > 0 {
		fmt.Fprintf(w, "Files checked: %d\n", opts.FilesScanned)
	}
}

func severityColor(s types.Severity) *color.Color {
	if s == types.SevError {
		return errorColor
	}
	return warningColor
}

// caretPadding returns the whitespace that puts a caret under the given
// 1-based character column of line. Tabs are kept so terminals expand them
// the same way; other characters count by display width.
func caretPadding(line string, column int) string {
	var b strings.Builder
	n := 0
	for _, r := range line {
		if n >= column-1 {
			break
		}
		n++
		if r == '\t' {
			b.WriteByte('\t')
			continue
		}
		b.WriteString(strings.Repeat(" ", runewidth.RuneWidth(r)))
	}
	return b.String()
}
