package rules

import (
	"strings"

	"github.com/bracecheck/bracecheck/internal/syntax"
	"github.com/bracecheck/bracecheck/internal/types"
)

var stubKeywords = map[string]bool{
	"if": true, "else": true, "catch": true, "do": true, "try": true,
	"func": true, "let": true, "var": true, "return": true,
}

// stubClassifier is a tiny brace-language lexer: double-quoted strings,
// line and block comments, words (keywords unless used as a "label:"),
// whitespace, and single-character punctuation.
func stubClassifier(text string) syntax.Tokens {
	var ts syntax.Tokens
	emit := func(k syntax.Kind, s, e int) {
		ts = append(ts, syntax.Token{Kind: k, Range: types.Range{Start: s, End: e}})
	}
	isWord := func(b byte) bool {
		return b == '_' || b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z' || b >= '0' && b <= '9'
	}
	for i := 0; i < len(text); {
		c := text[i]
		switch {
		case c == '"':
			j := i + 1
			for j < len(text) && text[j] != '"' {
				if text[j] == '\\' {
					j++
				}
				j++
			}
			j = min(j+1, len(text))
			emit(syntax.String, i, j)
			i = j
		case strings.HasPrefix(text[i:], "//"):
			j := strings.IndexByte(text[i:], '\n')
			if j < 0 {
				j = len(text) - i
			}
			emit(syntax.Comment, i, i+j)
			i += j
		case strings.HasPrefix(text[i:], "/*"):
			j := strings.Index(text[i+2:], "*/")
			end := len(text)
			if j >= 0 {
				end = i + 2 + j + 2
			}
			emit(syntax.Comment, i, end)
			i = end
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			j := i
			for j < len(text) && strings.IndexByte(" \t\n\r", text[j]) >= 0 {
				j++
			}
			emit(syntax.Text, i, j)
			i = j
		case isWord(c):
			j := i
			for j < len(text) && isWord(text[j]) {
				j++
			}
			k := syntax.Identifier
			if stubKeywords[text[i:j]] && !strings.HasPrefix(strings.TrimLeft(text[j:], " \t"), ":") {
				k = syntax.Keyword
			}
			emit(k, i, j)
			i = j
		default:
			emit(syntax.Punctuation, i, i+1)
			i++
		}
	}
	return ts
}
