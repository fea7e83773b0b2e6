package core

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
)

const src = "void f() {\n    try {\n    }\n    catch (Exception e) {\n    }\n}\n"

func TestCheck_Smoke(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "A.java"), []byte(src), 0644); err != nil {
		t.Fatal(err)
	}
	vs, err := Check(Config{Root: dir, NoCache: true})
	if err != nil {
		t.Fatalf("Check error: %v", err)
	}
	if len(vs) != 1 || vs[0].Location.Line != 3 {
		t.Fatalf("expected one violation on line 3, got %+v", vs)
	}
	if ids := RuleIDs(); len(ids) == 0 {
		t.Fatal("expected non-empty rule IDs")
	}
}

func TestRun_Fix(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "A.java")
	if err := os.WriteFile(p, []byte(src), 0644); err != nil {
		t.Fatal(err)
	}
	res, err := Run(context.Background(), Config{Root: dir, NoCache: true, Fix: true})
	if err != nil {
		t.Fatal(err)
	}
	if res.FilesFixed != 1 {
		t.Fatalf("FilesFixed = %d", res.FilesFixed)
	}
}

func TestValidateAndCorrect(t *testing.T) {
	vs, err := Validate("A.java", src, Cuddled)
	if err != nil {
		t.Fatal(err)
	}
	if len(vs) != 1 {
		t.Fatalf("expected 1 violation, got %d", len(vs))
	}
	out, cs, err := Correct("A.java", src, Cuddled)
	if err != nil {
		t.Fatal(err)
	}
	want := "void f() {\n    try {\n    } catch (Exception e) {\n    }\n}\n"
	if out != want || len(cs) != 1 {
		t.Fatalf("Correct = %q (%d corrections)", out, len(cs))
	}
	// the uncuddled style accepts the original layout
	if vs, _ := Validate("A.java", src, Uncuddled); len(vs) != 0 {
		t.Fatalf("expected no uncuddled violations, got %+v", vs)
	}
	if _, err := Validate("A.java", src, Mode("sideways")); err == nil {
		t.Fatal("expected unknown mode error")
	}
}

func TestMarshalViolations_RoundTrip(t *testing.T) {
	vs, _ := Validate("A.java", src, Cuddled)
	var buf bytes.Buffer
	if err := MarshalViolations(&buf, vs); err != nil {
		t.Fatal(err)
	}
	got, err := UnmarshalViolations(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].RuleID != vs[0].RuleID || got[0].Location != vs[0].Location {
		t.Fatalf("round trip mismatch: %+v", got)
	}
}
