package rules

import "strings"

const (
	directiveFile     = "bracecheck:ignore-file"
	directiveNextLine = "bracecheck:ignore-next-line"
	directiveStart    = "bracecheck:ignore-start"
	directiveEnd      = "bracecheck:ignore-end"
)

// suppressions records which 0-based lines inline directives silence.
type suppressions struct {
	all   bool
	lines map[int]bool
}

// scanSuppressions reads ignore directives. Directive lines themselves are
// never suppressed, so a directive trailing a brace does not hide it.
func scanSuppressions(text string) suppressions {
	var s suppressions
	if !strings.Contains(text, "bracecheck:ignore") {
		return s
	}
	if strings.Contains(text, directiveFile) {
		s.all = true
		return s
	}
	s.lines = map[int]bool{}
	region := false
	for i, ln := range strings.Split(text, "\n") {
		switch {
		case strings.Contains(ln, directiveStart):
			region = true
		case strings.Contains(ln, directiveEnd):
			region = false
		case strings.Contains(ln, directiveNextLine):
			s.lines[i+1] = true
		case region:
			s.lines[i] = true
		}
	}
	return s
}

func (s suppressions) suppressed(line int) bool {
	return s.all || s.lines[line]
}
