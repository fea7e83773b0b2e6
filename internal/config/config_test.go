package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeTemp(t *testing.T, dir, name, body string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte(body), 0o644); err != nil {
		t.Fatalf("write temp file: %v", err)
	}
	return p
}

func TestLoadFile_Basic(t *testing.T) {
	dir := t.TempDir()
	p := writeTemp(t, dir, "bracecheck.yaml", "statement_mode: uncuddled\nseverity: error\nthreads: 4\nmax_bytes: 123\nlanguage: swift\n")
	cfg, err := LoadFile(p)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if got := cfg.GetStatementMode(); got != "uncuddled" {
		t.Fatalf("expected statement_mode=uncuddled, got %q", got)
	}
	if got := cfg.GetSeverity(); got != "error" {
		t.Fatalf("expected severity=error, got %q", got)
	}
	if cfg.Threads == nil || *cfg.Threads != 4 {
		t.Fatalf("expected threads=4, got %#v", cfg.Threads)
	}
	if cfg.MaxBytes == nil || *cfg.MaxBytes != 123 {
		t.Fatalf("expected max_bytes=123, got %#v", cfg.MaxBytes)
	}
	if cfg.Language == nil || *cfg.Language != "swift" {
		t.Fatalf("expected language=swift, got %#v", cfg.Language)
	}
	if cfg.Include != nil {
		t.Fatalf("expected include unset, got %q", *cfg.Include)
	}
}

func TestLoadFile_TOML(t *testing.T) {
	dir := t.TempDir()
	p := writeTemp(t, dir, "bracecheck.toml", "statement_mode = \"uncuddled\"\nthreads = 2\ndefault_excludes = false\n")
	cfg, err := LoadFile(p)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if got := cfg.GetStatementMode(); got != "uncuddled" {
		t.Fatalf("expected statement_mode=uncuddled, got %q", got)
	}
	if cfg.Threads == nil || *cfg.Threads != 2 {
		t.Fatalf("expected threads=2, got %#v", cfg.Threads)
	}
	if cfg.DefaultExcludes == nil || *cfg.DefaultExcludes {
		t.Fatalf("expected default_excludes=false, got %#v", cfg.DefaultExcludes)
	}
}

func TestLoadFile_Malformed(t *testing.T) {
	dir := t.TempDir()
	p := writeTemp(t, dir, "bad.yml", "threads: [oops\n")
	if _, err := LoadFile(p); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestLoadLocal_PrefersDotfile(t *testing.T) {
	dir := t.TempDir()
	writeTemp(t, dir, "bracecheck.yaml", "threads: 1\n")
	writeTemp(t, dir, ".bracecheck.yaml", "threads: 7\n")
	cfg, err := LoadLocal(dir)
	if err != nil {
		t.Fatalf("LoadLocal: %v", err)
	}
	if cfg.Threads == nil || *cfg.Threads != 7 {
		t.Fatalf("expected threads=7 from .bracecheck.yaml, got %#v", cfg.Threads)
	}
}

func TestLoadLocal_NoConfig(t *testing.T) {
	dir := t.TempDir()
	if _, err := LoadLocal(dir); !errors.Is(err, ErrNoConfig) {
		t.Fatalf("expected ErrNoConfig, got %v", err)
	}
}

func TestLoadGlobal_XDG_Config(t *testing.T) {
	dir := t.TempDir()
	cfgDir := filepath.Join(dir, "bracecheck")
	if err := os.MkdirAll(cfgDir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	writeTemp(t, cfgDir, "config.yml", "statement_mode: uncuddled\n")
	t.Setenv("XDG_CONFIG_HOME", dir)
	cfg, err := LoadGlobal()
	if err != nil {
		t.Fatalf("LoadGlobal: %v", err)
	}
	if got := cfg.GetStatementMode(); got != "uncuddled" {
		t.Fatalf("expected statement_mode from global config, got %q", got)
	}
}

func TestLoadGlobal_NoConfig(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "")
	t.Setenv("HOME", "")
	if _, err := LoadGlobal(); err == nil {
		t.Fatal("expected error when no global config dir exists")
	}
}
