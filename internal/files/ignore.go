// Package files edits the line-oriented pattern files bracecheck reads.
package files

import (
	"bufio"
	"bytes"
	"os"
	"strings"
)

// AppendPatterns adds each pattern missing from the file at path, one per
// line, creating the file if needed. It returns the number of lines added.
func AppendPatterns(path string, patterns ...string) (int, error) {
	existing := map[string]bool{}
	var tail []byte
	if b, err := os.ReadFile(path); err == nil {
		sc := bufio.NewScanner(bytes.NewReader(b))
		for sc.Scan() {
			existing[strings.TrimSpace(sc.Text())] = true
		}
		if len(b) > 0 && b[len(b)-1] != '\n' {
			tail = []byte{'\n'}
		}
	} else if !os.IsNotExist(err) {
		return 0, err
	}

	var buf bytes.Buffer
	buf.Write(tail)
	added := 0
	for _, p := range patterns {
		p = strings.TrimSpace(p)
		if p == "" || existing[p] {
			continue
		}
		existing[p] = true
		buf.WriteString(p + "\n")
		added++
	}
	if added == 0 {
		return 0, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return 0, err
	}
	defer f.Close()
	if _, err := f.Write(buf.Bytes()); err != nil {
		return 0, err
	}
	return added, nil
}

// DefaultGeneratedIgnores returns common generated-source patterns that are
// safe to leave unchecked.
func DefaultGeneratedIgnores() []string {
	return []string{
		"*.pb.go",
		"*.gen.*",
		"*.generated.*",
		"*.g.dart",
	}
}
