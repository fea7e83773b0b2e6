package rules

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bracecheck/bracecheck/internal/types"
)

// Mode selects the layout policy enforced for else/catch.
type Mode string

const (
	// Cuddled wants "} else", one space after the brace on the same line.
	Cuddled Mode = "cuddled"
	// Uncuddled wants the keyword on the next line, indented like the brace.
	Uncuddled Mode = "uncuddled"
)

var (
	ErrUnknownMode     = errors.New("unknown statement mode")
	ErrUnknownSeverity = errors.New("unknown severity")
)

// ParseMode parses a configuration value. The empty string yields Cuddled.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case "", Cuddled:
		return Cuddled, nil
	case Uncuddled:
		return Uncuddled, nil
	default:
		return "", fmt.Errorf("%w: %q (want cuddled|uncuddled)", ErrUnknownMode, s)
	}
}

// ParseSeverity parses a configuration value. The empty string yields warning.
func ParseSeverity(s string) (types.Severity, error) {
	switch types.Severity(strings.ToLower(strings.TrimSpace(s))) {
	case "", types.SevWarning:
		return types.SevWarning, nil
	case types.SevError:
		return types.SevError, nil
	default:
		return "", fmt.Errorf("%w: %q (want warning|error)", ErrUnknownSeverity, s)
	}
}
