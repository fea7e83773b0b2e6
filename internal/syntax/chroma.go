package syntax

import (
	"fmt"
	"strings"

	"github.com/alecthomas/chroma/v2"

	"github.com/bracecheck/bracecheck/internal/types"
)

// Tokenize runs lexer over text and returns the token stream with byte
// offsets into text. CRLF normalisation is disabled so that offsets stay
// valid against the original content. A keyword directly followed by a
// single ':' is an argument or parameter label and is reported as an
// Identifier.
func Tokenize(lexer chroma.Lexer, text string) (Tokens, error) {
	it, err := chroma.Coalesce(lexer).Tokenise(&chroma.TokeniseOptions{State: "root"}, text)
	if err != nil {
		return nil, fmt.Errorf("tokenise: %w", err)
	}
	var out Tokens
	off := 0
	for _, tok := range it.Tokens() {
		n := len(tok.Value)
		if n == 0 {
			continue
		}
		end := off + n
		// lexers configured with EnsureNL append a trailing newline
		if end > len(text) {
			end = len(text)
		}
		if end > off {
			kind := kindOf(tok.Type)
			if kind == Keyword && isLabel(text[end:]) {
				kind = Identifier
			}
			out = append(out, Token{Kind: kind, Range: types.Range{Start: off, End: end}})
		}
		off += n
	}
	return out, nil
}

// isLabel reports whether rest starts with a label colon; "::" is a scope
// operator, not a label.
func isLabel(rest string) bool {
	rest = strings.TrimLeft(rest, " \t")
	return strings.HasPrefix(rest, ":") && !strings.HasPrefix(rest, "::")
}

func kindOf(tt chroma.TokenType) Kind {
	switch {
	case tt.InCategory(chroma.Keyword):
		return Keyword
	case tt.InCategory(chroma.Name):
		return Identifier
	case tt.InSubCategory(chroma.LiteralString):
		return String
	case tt.InSubCategory(chroma.LiteralNumber):
		return Number
	case tt.InCategory(chroma.Comment):
		return Comment
	case tt.InCategory(chroma.Operator):
		return Operator
	case tt.InCategory(chroma.Punctuation):
		return Punctuation
	case tt.InCategory(chroma.Text):
		return Text
	default:
		return Other
	}
}
