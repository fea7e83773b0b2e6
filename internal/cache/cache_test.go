package cache

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadSave(t *testing.T) {
	dir := t.TempDir()
	// initial load should return empty DB and error
	db, err := Load(dir)
	if err == nil {
		t.Fatalf("expected error for missing cache")
	}
	if db.Entries == nil {
		t.Fatalf("expected entries map initialized")
	}
	db.Entries["a.swift"] = "deadbeef"
	if err := Save(dir, db); err != nil {
		t.Fatalf("save: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, ".bracecheck.cache")); err != nil {
		t.Fatalf("cache file not written: %v", err)
	}
	db2, err := Load(dir)
	if err != nil {
		t.Fatalf("load after save: %v", err)
	}
	if got := db2.Entries["a.swift"]; got != "deadbeef" {
		t.Fatalf("unexpected entry: %q", got)
	}
}

func TestSaveUnderGitDir(t *testing.T) {
	dir := t.TempDir()
	if err := os.Mkdir(filepath.Join(dir, ".git"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := Save(dir, DB{Entries: map[string]string{"x": "y"}}); err != nil {
		t.Fatalf("save: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, ".git", "bracecheck.cache")); err != nil {
		t.Fatalf("expected cache under .git: %v", err)
	}
}

func TestSaveRejectsNilMap(t *testing.T) {
	if err := Save(t.TempDir(), DB{}); err == nil {
		t.Fatal("expected error for nil entries")
	}
}

func TestSum(t *testing.T) {
	a := Sum("cuddled", []byte("} else {"))
	if len(a) != 16 {
		t.Fatalf("expected 16 hex chars, got %q", a)
	}
	if a != Sum("cuddled", []byte("} else {")) {
		t.Fatal("Sum must be deterministic")
	}
	if a == Sum("uncuddled", []byte("} else {")) {
		t.Fatal("fingerprint must change the sum")
	}
	if a == Sum("cuddled", []byte("}else {")) {
		t.Fatal("content must change the sum")
	}
}
