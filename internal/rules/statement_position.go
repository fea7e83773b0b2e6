package rules

import (
	"sort"

	"github.com/bracecheck/bracecheck/internal/syntax"
	"github.com/bracecheck/bracecheck/internal/types"
)

// StatementPositionID is the rule identifier reported on violations.
const StatementPositionID = "statement_position"

// Config is the per-rule configuration surface.
type Config struct {
	Mode     Mode
	Severity types.Severity
}

// StatementPosition checks else/catch placement after a closing brace. The
// layout policy is fixed when the rule is built.
type StatementPosition struct {
	severity types.Severity
	policy   policy
}

// New validates cfg and returns the rule for its mode. Zero values select
// the cuddled mode at warning severity.
func New(cfg Config) (*StatementPosition, error) {
	mode, err := ParseMode(string(cfg.Mode))
	if err != nil {
		return nil, err
	}
	sev, err := ParseSeverity(string(cfg.Severity))
	if err != nil {
		return nil, err
	}
	return &StatementPosition{severity: sev, policy: policyFor(mode)}, nil
}

func (r *StatementPosition) ID() string { return StatementPositionID }

func (r *StatementPosition) Description() string { return r.policy.message() }

// confirmed is a candidate that passed validation, located in the text.
type confirmed struct {
	cand Candidate
	loc  types.Location
	line int
}

func (r *StatementPosition) confirm(path, text string, cls syntax.Classifier) ([]confirmed, lineIndex) {
	li := newLineIndex(text)
	if cls == nil {
		return nil, li
	}
	sup := scanSuppressions(text)
	if sup.all {
		return nil, li
	}
	var out []confirmed
	for _, c := range r.policy.candidates(text) {
		if !r.policy.accept(c, cls) {
			continue
		}
		ln := li.line(c.Brace)
		if sup.suppressed(ln) {
			continue
		}
		out = append(out, confirmed{cand: c, loc: li.location(path, c.Brace), line: ln})
	}
	return out, li
}

// Validate reports violations in document order.
func (r *StatementPosition) Validate(path, text string, cls syntax.Classifier) []types.Violation {
	found, li := r.confirm(path, text, cls)
	if len(found) == 0 {
		return nil
	}
	out := make([]types.Violation, 0, len(found))
	for _, f := range found {
		out = append(out, types.Violation{
			Location: f.loc,
			RuleID:   StatementPositionID,
			Severity: r.severity,
			Message:  r.policy.message(),
			Snippet:  li.lineText(f.line),
		})
	}
	return out
}

// Correct rewrites every violation and returns the new text together with
// the corrections in document order. All ranges refer to the original text.
// When nothing needs fixing the input is returned as is.
func (r *StatementPosition) Correct(path, text string, cls syntax.Classifier) (string, []types.Correction) {
	found, _ := r.confirm(path, text, cls)
	if len(found) == 0 {
		return text, nil
	}
	out := make([]types.Correction, 0, len(found))
	for _, f := range found {
		rg, repl := r.policy.replacement(f.cand)
		out = append(out, types.Correction{
			Location:        f.loc,
			RuleID:          StatementPositionID,
			Replace:         rg,
			ReplacementText: repl,
		})
	}
	return Apply(text, out), out
}

// Apply splices corrections into text from the highest offset to the
// lowest, so each range is still valid when its turn comes. Ranges must not
// overlap; out-of-bounds ones are skipped.
func Apply(text string, corrections []types.Correction) string {
	if len(corrections) == 0 {
		return text
	}
	order := make([]types.Correction, len(corrections))
	copy(order, corrections)
	sort.SliceStable(order, func(i, j int) bool {
		return order[i].Replace.Start > order[j].Replace.Start
	})
	buf := []byte(text)
	for _, c := range order {
		start, end := c.Replace.Start, c.Replace.End
		if start < 0 || c.Replace.Len() < 0 || end > len(buf) {
			continue
		}
		suffix := append([]byte(nil), buf[end:]...)
		buf = append(append(buf[:start], c.ReplacementText...), suffix...)
	}
	return string(buf)
}

// Validate runs statement_position in mode over text at warning severity.
// An unknown mode falls back to cuddled.
func Validate(text string, cls syntax.Classifier, mode Mode) []types.Violation {
	return forMode(mode).Validate("", text, cls)
}

// Correct is the rewriting counterpart of Validate.
func Correct(text string, cls syntax.Classifier, mode Mode) (string, []types.Correction) {
	return forMode(mode).Correct("", text, cls)
}

func forMode(mode Mode) *StatementPosition {
	return &StatementPosition{severity: types.SevWarning, policy: policyFor(mode)}
}
