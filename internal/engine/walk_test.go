package engine

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/bracecheck/bracecheck/internal/ignore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustWrite(t *testing.T, dir, name, content string) {
	t.Helper()
	p := filepath.Join(dir, filepath.FromSlash(name))
	require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
}

func walkAll(t *testing.T, cfg Config) []string {
	t.Helper()
	ign, _ := ignore.Load(filepath.Join(cfg.Root, ignore.FileName))
	var got []string
	require.NoError(t, Walk(context.Background(), cfg, ign, func(rel string) { got = append(got, rel) }))
	return got
}

func TestWalk_WithIncludeExcludeGlobs(t *testing.T) {
	dir := t.TempDir()
	mustWrite(t, dir, "a.txt", "hello")
	mustWrite(t, dir, "src/B.java", "class B {}\n")
	mustWrite(t, dir, "c.md", "doc")

	got := walkAll(t, Config{Root: dir, IncludeGlobs: "**/*.java"})
	assert.Equal(t, []string{"src/B.java"}, got)

	got = walkAll(t, Config{Root: dir, ExcludeGlobs: "*.md"})
	assert.NotContains(t, got, "c.md")
	assert.Contains(t, got, "a.txt")
}

func TestWalk_DefaultExcludes(t *testing.T) {
	dir := t.TempDir()
	mustWrite(t, dir, "App.swift", "let a = 1\n")
	mustWrite(t, dir, "Pods/Lib/Lib.swift", "let b = 2\n")
	mustWrite(t, dir, "web/app.min.js", "x")
	mustWrite(t, dir, "Package.resolved.lock", "x")

	assert.Equal(t, []string{"App.swift"}, walkAll(t, Config{Root: dir, DefaultExcludes: true}))
	assert.Len(t, walkAll(t, Config{Root: dir}), 4)
}

func TestCountTargets_IgnoreFileAndMaxBytes(t *testing.T) {
	dir := t.TempDir()
	mustWrite(t, dir, "a.java", "ok")
	mustWrite(t, dir, "big.java", string(make([]byte, 2048)))
	mustWrite(t, dir, "gen/Skip.java", "class Skip {}")
	mustWrite(t, dir, ignore.FileName, "gen/\n")

	n, err := CountTargets(Config{Root: dir, MaxBytes: 1024})
	require.NoError(t, err)
	// the ignore file itself is never a target
	assert.Equal(t, 1, n)
}

func TestAllowedByGlobs(t *testing.T) {
	cfg := Config{IncludeGlobs: "./src/**/*.kt, *.java", ExcludeGlobs: "**/Test*.java"}
	assert.True(t, allowedByGlobs("src/a/Main.kt", cfg))
	assert.True(t, allowedByGlobs("deep/dir/Main.java", cfg))
	assert.False(t, allowedByGlobs("deep/dir/TestMain.java", cfg))
	assert.False(t, allowedByGlobs("README.md", cfg))
	assert.True(t, allowedByGlobs("anything", Config{}))
}

func TestSniffing(t *testing.T) {
	assert.True(t, looksBinary([]byte("ab\x00cd")))
	assert.False(t, looksBinary([]byte("plain text")))
	assert.True(t, looksNonTextMIME("logo.png", nil))
	assert.True(t, looksNonTextMIME("blob", []byte("PK\x03\x04rest")))
	assert.False(t, looksNonTextMIME("Main.java", []byte("class Main {}")))
}
