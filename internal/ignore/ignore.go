// Package ignore reads .bracecheckignore files: one gitignore-style glob per
// line, '#' comments, a trailing '/' for directories and a leading '/' to
// anchor at the repository root.
package ignore

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"strings"

	doublestar "github.com/bmatcuk/doublestar/v4"
)

// FileName is the ignore file looked up at the scan root.
const FileName = ".bracecheckignore"

// Matcher reports whether a root-relative path is ignored.
type Matcher struct {
	globs []string
}

// Load reads patterns from path. A missing file yields an empty matcher and
// the open error, which callers usually discard.
func Load(path string) (Matcher, error) {
	f, err := os.Open(path)
	if err != nil {
		return Matcher{}, err
	}
	defer f.Close()
	return Parse(f)
}

// Parse reads patterns from r.
func Parse(r io.Reader) (Matcher, error) {
	var m Matcher
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		m.globs = append(m.globs, expand(line)...)
	}
	return m, sc.Err()
}

func expand(p string) []string {
	dir := strings.HasSuffix(p, "/")
	p = strings.TrimSuffix(p, "/")
	anchored := strings.HasPrefix(p, "/")
	p = strings.TrimPrefix(p, "/")

	var out []string
	if anchored || strings.Contains(p, "/") {
		out = append(out, p)
	} else {
		out = append(out, p, "**/"+p)
	}
	if dir {
		for i := range out {
			out[i] += "/**"
		}
		return out
	}
	// a plain name also ignores everything under a directory of that name
	for _, g := range out {
		out = append(out, g+"/**")
	}
	return out
}

// Match reports whether rel matches any pattern.
func (m Matcher) Match(rel string) bool {
	rel = filepath.ToSlash(rel)
	for _, g := range m.globs {
		if ok, _ := doublestar.Match(g, rel); ok {
			return true
		}
	}
	return false
}

// Empty reports whether m has no patterns.
func (m Matcher) Empty() bool { return len(m.globs) == 0 }
