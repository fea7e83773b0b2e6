package rules

import (
	"slices"
	"strings"

	"github.com/bracecheck/bracecheck/internal/syntax"
	"github.com/bracecheck/bracecheck/internal/types"
)

// policy is one layout convention: how candidates are found, which of them
// are real violations, and what each one is rewritten to.
type policy interface {
	candidates(text string) []Candidate
	accept(c Candidate, cls syntax.Classifier) bool
	replacement(c Candidate) (types.Range, string)
	message() string
}

func policyFor(m Mode) policy {
	if m == Uncuddled {
		return uncuddled{}
	}
	return cuddled{}
}

type cuddled struct{}

func (cuddled) candidates(text string) []Candidate { return cuddledCandidates(text) }

// accept only looks at the first kind reported for the keyword span; the
// pattern already excludes the correct single-space form.
func (cuddled) accept(c Candidate, cls syntax.Classifier) bool {
	toks := cls.Classify(c.KeywordRange)
	return len(toks) > 0 && toks[0].Kind == syntax.Keyword
}

func (cuddled) replacement(c Candidate) (types.Range, string) {
	return c.Full, "} " + c.Keyword
}

func (cuddled) message() string {
	return "Else and catch should be on the same line, one space after the previous declaration"
}

type uncuddled struct{}

func (uncuddled) candidates(text string) []Candidate { return uncuddledCandidates(text) }

// accept requires the keyword span to be exactly one keyword token, then
// flags a keyword on the brace's line or one indented differently from it.
func (uncuddled) accept(c Candidate, cls syntax.Classifier) bool {
	toks := cls.Classify(c.KeywordRange)
	if !syntax.Covers(toks, c.KeywordRange) || !slices.Equal(syntax.Kinds(toks), []syntax.Kind{syntax.Keyword}) {
		return false
	}
	if c.NewlineRun == "" {
		return true
	}
	return c.PreWhitespace != c.PostWhitespace
}

func (uncuddled) replacement(c Candidate) (types.Range, string) {
	ws := c.PreWhitespace
	if c.NewlineRun != "\n" && !strings.HasPrefix(ws, "\n") {
		ws = "\n" + ws
	}
	return c.PostRange, ws
}

func (uncuddled) message() string {
	return "Else and catch should be on the next line, with equal indentation to the previous declaration"
}
