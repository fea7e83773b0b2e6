package report

import (
	"path/filepath"
	"testing"

	"github.com/bracecheck/bracecheck/internal/types"
)

func TestBaselineRoundTrip(t *testing.T) {
	p := filepath.Join(t.TempDir(), "bracecheck.baseline.json")
	vs := sample()
	if err := SaveBaseline(p, vs[:1]); err != nil {
		t.Fatal(err)
	}
	b, err := LoadBaseline(p)
	if err != nil {
		t.Fatal(err)
	}
	// a baselined violation that moved lines stays known
	moved := vs[0]
	moved.Location.Line += 10
	got := FilterNew([]types.Violation{moved, vs[1]}, b)
	if len(got) != 1 || got[0].Location.Path != "a/App.swift" {
		t.Fatalf("expected only the new violation, got %+v", got)
	}
}

func TestLoadBaseline_Missing(t *testing.T) {
	b, err := LoadBaseline(filepath.Join(t.TempDir(), "none.json"))
	if err == nil {
		t.Fatal("expected error for missing baseline")
	}
	if b.Items == nil || len(FilterNew(sample(), b)) != 2 {
		t.Fatal("missing baseline should filter nothing")
	}
}

func TestShouldFail(t *testing.T) {
	warn := []types.Violation{{Severity: types.SevWarning}}
	errs := []types.Violation{{Severity: types.SevError}}
	if !ShouldFail(warn, "warning") || !ShouldFail(warn, "") {
		t.Fatal("warning should fail at warning threshold")
	}
	if ShouldFail(warn, "error") {
		t.Fatal("warning should not fail at error threshold")
	}
	if !ShouldFail(errs, "error") {
		t.Fatal("error should fail at error threshold")
	}
	if ShouldFail(nil, "warning") {
		t.Fatal("no violations never fail")
	}
}

func TestBaseline_RepeatedSnippetCountsOccurrences(t *testing.T) {
	p := filepath.Join(t.TempDir(), "bracecheck.baseline.json")
	v := sample()[0]
	if err := SaveBaseline(p, []types.Violation{v}); err != nil {
		t.Fatal(err)
	}
	b, err := LoadBaseline(p)
	if err != nil {
		t.Fatal(err)
	}
	second := v
	second.Location.Line += 4
	second.Location.Offset += 60
	got := FilterNew([]types.Violation{v, second}, b)
	if len(got) != 1 || got[0].Location.Line != second.Location.Line {
		t.Fatalf("expected only the second identical violation to be new, got %+v", got)
	}

	if err := SaveBaseline(p, []types.Violation{v, second}); err != nil {
		t.Fatal(err)
	}
	if b, err = LoadBaseline(p); err != nil {
		t.Fatal(err)
	}
	if got := FilterNew([]types.Violation{v, second}, b); len(got) != 0 {
		t.Fatalf("expected both occurrences baselined, got %+v", got)
	}
}
