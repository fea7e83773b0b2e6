package syntax

import (
	"sort"

	"github.com/bracecheck/bracecheck/internal/types"
)

// Kind is a coarse classification label for a span of source text.
type Kind uint8

const (
	Other Kind = iota
	Keyword
	Identifier
	String
	Comment
	Number
	Operator
	Punctuation
	Text
)

var kindNames = [...]string{
	Other:       "other",
	Keyword:     "keyword",
	Identifier:  "identifier",
	String:      "string",
	Comment:     "comment",
	Number:      "number",
	Operator:    "operator",
	Punctuation: "punctuation",
	Text:        "text",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "other"
}

// Token is a classified byte range. Classifiers return tokens ordered by
// Range.Start and non-overlapping.
type Token struct {
	Kind  Kind
	Range types.Range
}

// Classifier answers "which tokens cover this byte range".
type Classifier interface {
	Classify(r types.Range) []Token
}

// Func adapts a plain function to the Classifier interface.
type Func func(r types.Range) []Token

// Classify calls f(r).
func (f Func) Classify(r types.Range) []Token { return f(r) }

// Kinds projects tokens to their ordered kind sequence.
func Kinds(toks []Token) []Kind {
	if len(toks) == 0 {
		return nil
	}
	out := make([]Kind, len(toks))
	for i, t := range toks {
		out[i] = t.Kind
	}
	return out
}

// Covers reports whether toks span r without gaps.
func Covers(toks []Token, r types.Range) bool {
	if len(toks) == 0 {
		return false
	}
	if toks[0].Range.Start > r.Start || toks[len(toks)-1].Range.End < r.End {
		return false
	}
	for i := 1; i < len(toks); i++ {
		if toks[i].Range.Start != toks[i-1].Range.End {
			return false
		}
	}
	return true
}

// Tokens is a pre-computed, ordered token stream that answers range queries
// by binary search.
type Tokens []Token

// Classify returns every token intersecting r.
func (ts Tokens) Classify(r types.Range) []Token {
	if r.End <= r.Start {
		return nil
	}
	i := sort.Search(len(ts), func(i int) bool { return ts[i].Range.End > r.Start })
	j := i
	for j < len(ts) && ts[j].Range.Start < r.End {
		j++
	}
	if i == j {
		return nil
	}
	return ts[i:j]
}
