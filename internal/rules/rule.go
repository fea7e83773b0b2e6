package rules

import (
	"fmt"
	"strings"

	"github.com/bracecheck/bracecheck/internal/syntax"
	"github.com/bracecheck/bracecheck/internal/types"
)

// Rule is a single check that can also rewrite what it reports.
type Rule interface {
	ID() string
	Description() string
	Validate(path, text string, cls syntax.Classifier) []types.Violation
	Correct(path, text string, cls syntax.Classifier) (string, []types.Correction)
}

type builder func(Config) (Rule, error)

var builders = map[string]builder{
	StatementPositionID: func(cfg Config) (Rule, error) { return New(cfg) },
}

// IDs returns the identifiers of all built-in rules.
func IDs() []string {
	return []string{StatementPositionID}
}

// Build returns the rules selected by the comma-separated enable/disable
// lists, all configured with cfg. An empty enable list means every rule.
func Build(cfg Config, enable, disable string) ([]Rule, error) {
	allowed := idSet(enable)
	blocked := idSet(disable)
	for id := range allowed {
		if _, ok := builders[id]; !ok {
			return nil, fmt.Errorf("unknown rule %q", id)
		}
	}
	var out []Rule
	for _, id := range IDs() {
		if len(allowed) > 0 && !allowed[id] {
			continue
		}
		if blocked[id] {
			continue
		}
		r, err := builders[id](cfg)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", id, err)
		}
		out = append(out, r)
	}
	return out, nil
}

func idSet(list string) map[string]bool {
	set := map[string]bool{}
	for _, id := range strings.Split(list, ",") {
		if id = strings.TrimSpace(id); id != "" {
			set[id] = true
		}
	}
	return set
}
