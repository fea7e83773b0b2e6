package rules

import (
	"regexp"

	"github.com/bracecheck/bracecheck/internal/types"
)

// '}' followed by nothing, two or more whitespace characters, or a run of
// newlines/tabs, then else/catch. A single space is the accepted form and
// is never matched.
var reCuddled = regexp.MustCompile(`\}(?:\s{2,}|[\n\t\r]+)?\b(else|catch)\b`)

// (indent before '}') '}' (newlines)? (indent before keyword) keyword
var reUncuddled = regexp.MustCompile(`([ \t]*)\}(\n+)?([ \t]*)\b(else|catch)\b`)

// Candidate is a raw lexical match that has not been classified yet.
// Captures a policy does not use are left empty.
type Candidate struct {
	Full         types.Range
	Brace        int
	Keyword      string
	KeywordRange types.Range

	PreWhitespace  string
	NewlineRun     string
	PostWhitespace string
	PostRange      types.Range
}

func cuddledCandidates(text string) []Candidate {
	var out []Candidate
	for _, m := range reCuddled.FindAllStringSubmatchIndex(text, -1) {
		out = append(out, Candidate{
			Full:         types.Range{Start: m[0], End: m[1]},
			Brace:        m[0],
			Keyword:      text[m[2]:m[3]],
			KeywordRange: types.Range{Start: m[2], End: m[3]},
		})
	}
	return out
}

func uncuddledCandidates(text string) []Candidate {
	var out []Candidate
	for _, m := range reUncuddled.FindAllStringSubmatchIndex(text, -1) {
		c := Candidate{
			Full:           types.Range{Start: m[0], End: m[1]},
			Brace:          m[3],
			PreWhitespace:  text[m[2]:m[3]],
			PostWhitespace: text[m[6]:m[7]],
			PostRange:      types.Range{Start: m[6], End: m[7]},
			Keyword:        text[m[8]:m[9]],
			KeywordRange:   types.Range{Start: m[8], End: m[9]},
		}
		if m[4] >= 0 {
			c.NewlineRun = text[m[4]:m[5]]
		}
		out = append(out, c)
	}
	return out
}
