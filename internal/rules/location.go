package rules

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/bracecheck/bracecheck/internal/types"
)

// lineIndex maps byte offsets to 1-based line and character columns.
type lineIndex struct {
	text   string
	starts []int
}

func newLineIndex(text string) lineIndex {
	starts := []int{0}
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			starts = append(starts, i+1)
		}
	}
	return lineIndex{text: text, starts: starts}
}

// line returns the 0-based line containing off.
func (li lineIndex) line(off int) int {
	return sort.Search(len(li.starts), func(i int) bool { return li.starts[i] > off }) - 1
}

func (li lineIndex) location(path string, off int) types.Location {
	ln := li.line(off)
	return types.Location{
		Path:   path,
		Offset: off,
		Line:   ln + 1,
		Column: utf8.RuneCountInString(li.text[li.starts[ln]:off]) + 1,
	}
}

// lineText returns the content of the 0-based line ln without its terminator.
func (li lineIndex) lineText(ln int) string {
	end := len(li.text)
	if ln+1 < len(li.starts) {
		end = li.starts[ln+1]
	}
	return strings.TrimRight(li.text[li.starts[ln]:end], "\r\n")
}
