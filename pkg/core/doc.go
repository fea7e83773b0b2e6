// Package core provides a small, stable facade over bracecheck's internal
// engine for editor plugins, pre-commit hooks and other integrations. It
// re-exports a narrow API surface so callers can depend on a stable import
// path without reaching into internal packages.
//
// Example:
//
//	vs, err := core.Check(core.Config{Root: ".", Mode: core.Uncuddled})
//	if err != nil { /* handle */ }
//	_ = core.MarshalViolations(os.Stdout, vs)
package core
