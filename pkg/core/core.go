package core

import (
	"context"
	"sync"

	"github.com/bracecheck/bracecheck/internal/engine"
	"github.com/bracecheck/bracecheck/internal/rules"
	"github.com/bracecheck/bracecheck/internal/syntax"
	"github.com/bracecheck/bracecheck/internal/types"
)

// Re-export selected internal types as a stable public API surface.
// These are type aliases so external consumers can depend on a stable path.
type Config = engine.Config
type Result = engine.Result
type Violation = types.Violation
type Correction = types.Correction
type Mode = rules.Mode
type Severity = types.Severity

const (
	Cuddled   = rules.Cuddled
	Uncuddled = rules.Uncuddled

	SevWarning = types.SevWarning
	SevError   = types.SevError
)

// Run checks (or, with cfg.Fix, fixes) the tree under cfg.Root.
func Run(ctx context.Context, cfg Config) (Result, error) {
	return engine.Run(ctx, cfg)
}

// Check runs a read-only pass and returns only the violations.
func Check(cfg Config) ([]Violation, error) {
	cfg.Fix = false
	res, err := engine.Run(context.Background(), cfg)
	if err != nil {
		return nil, err
	}
	return res.Violations, nil
}

// RuleIDs returns the identifiers of all built-in rules.
func RuleIDs() []string { return rules.IDs() }

var (
	registryOnce sync.Once
	registry     *syntax.Registry
	registryErr  error
)

func classifierFor(path, text string) (syntax.Classifier, error) {
	registryOnce.Do(func() { registry, registryErr = syntax.NewRegistry("") })
	if registryErr != nil {
		return nil, registryErr
	}
	return registry.Classifier(path, text)
}

// Validate checks text in memory. The lexer is picked from path, which
// does not need to exist; text in a language no lexer claims yields nothing.
func Validate(path, text string, mode Mode) ([]Violation, error) {
	cls, err := classifierFor(path, text)
	if err != nil {
		return nil, err
	}
	r, err := rules.New(rules.Config{Mode: mode})
	if err != nil {
		return nil, err
	}
	return r.Validate(path, text, cls), nil
}

// Correct rewrites text in memory and returns the new text along with the
// corrections applied, whose ranges refer to the input.
func Correct(path, text string, mode Mode) (string, []Correction, error) {
	cls, err := classifierFor(path, text)
	if err != nil {
		return text, nil, err
	}
	r, err := rules.New(rules.Config{Mode: mode})
	if err != nil {
		return text, nil, err
	}
	out, cs := r.Correct(path, text, cls)
	return out, cs, nil
}
