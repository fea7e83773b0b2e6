package report

import (
	"encoding/json"
	"os"
	"strconv"
	"strings"

	"github.com/bracecheck/bracecheck/internal/types"
)

// Baseline records accepted violations so only new ones are reported.
type Baseline struct {
	Items map[string]bool `json:"items"`
}

func LoadBaseline(path string) (Baseline, error) {
	b := Baseline{Items: map[string]bool{}}
	f, err := os.ReadFile(path)
	if err != nil {
		return b, err
	}
	_ = json.Unmarshal(f, &b)
	if b.Items == nil {
		b.Items = map[string]bool{}
	}
	return b, nil
}

func SaveBaseline(path string, violations []types.Violation) error {
	b := Baseline{Items: map[string]bool{}}
	for _, k := range keys(violations) {
		b.Items[k] = true
	}
	buf, err := json.MarshalIndent(b, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, buf, 0644)
}

func FilterNew(violations []types.Violation, base Baseline) []types.Violation {
	var out []types.Violation
	for i, k := range keys(violations) {
		if !base.Items[k] {
			out = append(out, violations[i])
		}
	}
	return out
}

// keys ignores line numbers so edits elsewhere in a file keep entries valid.
// Repeats of the same snippet within a file get an occurrence suffix ("|#2",
// "|#3", ...) in input order, so one accepted "}else {" does not hide the rest.
func keys(violations []types.Violation) []string {
	seen := map[string]int{}
	out := make([]string, len(violations))
	for i, v := range violations {
		k := v.Location.Path + "|" + v.RuleID + "|" + strings.TrimSpace(v.Snippet)
		seen[k]++
		if n := seen[k]; n > 1 {
			k += "|#" + strconv.Itoa(n)
		}
		out[i] = k
	}
	return out
}

// ShouldFail reports whether any violation is at or above failOn
// ("warning" or "error"; anything else means "warning").
func ShouldFail(violations []types.Violation, failOn string) bool {
	level := map[string]int{string(types.SevWarning): 1, string(types.SevError): 2}
	th := level[failOn]
	if th == 0 {
		th = 1
	}
	for _, v := range violations {
		if level[string(v.Severity)] >= th {
			return true
		}
	}
	return false
}
