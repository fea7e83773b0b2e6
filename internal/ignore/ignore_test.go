package ignore

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestIgnoreMatch(t *testing.T) {
	dir := t.TempDir()
	ig := filepath.Join(dir, FileName)
	content := "vendor/\n*.generated.swift\n# comment\n\n/Legacy.java\nthird_party/old/*.js\n"
	if err := os.WriteFile(ig, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	m, err := Load(ig)
	if err != nil {
		t.Fatal(err)
	}
	cases := map[string]bool{
		"vendor/pkg/index.js":           true,
		"app/vendor/lib.swift":          true,
		"Sources/Model.generated.swift": true,
		"Legacy.java":                   true,
		"src/Legacy.java":               false,
		"third_party/old/a.js":          true,
		"third_party/new/a.js":          false,
		"Sources/App.swift":             false,
	}
	for p, want := range cases {
		if got := m.Match(p); got != want {
			t.Fatalf("Match(%q)=%v want %v", p, got, want)
		}
	}
}

func TestLoadMissing(t *testing.T) {
	m, err := Load(filepath.Join(t.TempDir(), FileName))
	if err == nil {
		t.Fatal("expected error for missing ignore file")
	}
	if !m.Empty() || m.Match("anything.go") {
		t.Fatal("missing ignore file must not ignore anything")
	}
}

func TestParseSkipsComments(t *testing.T) {
	m, err := Parse(strings.NewReader("# only comments\n\n   \n"))
	if err != nil {
		t.Fatal(err)
	}
	if !m.Empty() {
		t.Fatalf("expected no patterns, got %v", m.globs)
	}
}

func TestIgnoreMatchPlainNameCoversDirectory(t *testing.T) {
	m, err := Parse(strings.NewReader("Pods\n/Generated\n"))
	if err != nil {
		t.Fatal(err)
	}
	cases := map[string]bool{
		"Pods":                  true,
		"Pods/App.swift":        true,
		"ios/Pods/Lib/a.swift":  true,
		"Generated/Model.swift": true,
		"app/Generated/x.swift": false,
		"PodsExtra/App.swift":   false,
		"Sources/Pods.swift":    false,
	}
	for p, want := range cases {
		if got := m.Match(p); got != want {
			t.Fatalf("Match(%q)=%v want %v", p, got, want)
		}
	}
}
