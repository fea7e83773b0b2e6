package engine

import (
	"context"
	"io/fs"
	"mime"
	"os"
	"path/filepath"
	"strings"

	doublestar "github.com/bmatcuk/doublestar/v4"
	"github.com/bracecheck/bracecheck/internal/git"
	"github.com/bracecheck/bracecheck/internal/ignore"
)

// Walk traverses the working tree and invokes handle with the slash-separated
// path, relative to cfg.Root, of each eligible file. Content checks happen
// later, when the file is read.
func Walk(ctx context.Context, cfg Config, ign ignore.Matcher, handle func(rel string)) error {
	return filepath.WalkDir(cfg.Root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if ctx != nil {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		if d.IsDir() {
			if p != cfg.Root && cfg.DefaultExcludes && isDefaultDirExcluded(d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		rel, _ := filepath.Rel(cfg.Root, p)
		rel = filepath.ToSlash(rel)
		var size int64 = -1
		if info, err := d.Info(); err == nil {
			size = info.Size()
		}
		if !selected(rel, size, cfg, ign) {
			return nil
		}
		handle(rel)
		return nil
	})
}

// Targets lists the files a run would check, in walk order. With
// cfg.ChangedOnly the list comes from the git worktree status instead.
func Targets(ctx context.Context, cfg Config) ([]string, error) {
	ign, _ := ignore.Load(filepath.Join(cfg.Root, ignore.FileName))
	if cfg.ChangedOnly {
		changed, err := git.ChangedFiles(cfg.Root)
		if err != nil {
			return nil, err
		}
		var out []string
		for _, rel := range changed {
			if cfg.DefaultExcludes && inDefaultExcludedDir(rel) {
				continue
			}
			info, err := os.Stat(filepath.Join(cfg.Root, filepath.FromSlash(rel)))
			if err != nil || !info.Mode().IsRegular() {
				continue
			}
			if selected(rel, info.Size(), cfg, ign) {
				out = append(out, rel)
			}
		}
		return out, nil
	}
	var out []string
	err := Walk(ctx, cfg, ign, func(rel string) { out = append(out, rel) })
	return out, err
}

// CountTargets returns the number of files a run would check.
func CountTargets(cfg Config) (int, error) {
	files, err := Targets(context.Background(), cfg)
	return len(files), err
}

func selected(rel string, size int64, cfg Config, ign ignore.Matcher) bool {
	// bracecheck's own config, ignore, cache and audit files
	if strings.HasPrefix(rel, ".bracecheck") {
		return false
	}
	if !allowedByGlobs(rel, cfg) {
		return false
	}
	if ign.Match(rel) {
		return false
	}
	if cfg.MaxBytes > 0 && size > cfg.MaxBytes {
		return false
	}
	if cfg.DefaultExcludes && isDefaultFileExcluded(strings.ToLower(rel)) {
		return false
	}
	return true
}

func inDefaultExcludedDir(rel string) bool {
	parts := strings.Split(rel, "/")
	for _, dir := range parts[:len(parts)-1] {
		if isDefaultDirExcluded(dir) {
			return true
		}
	}
	return false
}

// allowedByGlobs returns true if the given path is allowed by the include/exclude
// lists. Includes restrict the set when present; excludes always win.
func allowedByGlobs(relPath string, cfg Config) bool {
	rp := strings.ReplaceAll(relPath, "\\", "/")
	includes := parseGlobsList(cfg.IncludeGlobs)
	excludes := parseGlobsList(cfg.ExcludeGlobs)
	if len(includes) > 0 && !matchAnyGlob(rp, includes) {
		return false
	}
	if len(excludes) > 0 && matchAnyGlob(rp, excludes) {
		return false
	}
	return true
}

func parseGlobsList(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, p := range strings.Split(s, ",") {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p, trimGlobPrefix(p))
		}
	}
	return out
}

func matchAnyGlob(pathToMatch string, globs []string) bool {
	base := pathToMatch
	if i := strings.LastIndexByte(base, '/'); i >= 0 {
		base = base[i+1:]
	}
	for _, g := range globs {
		if ok, _ := doublestar.Match(g, pathToMatch); ok {
			return true
		}
		if ok, _ := doublestar.Match(g, base); ok {
			return true
		}
	}
	return false
}

func trimGlobPrefix(g string) string {
	s := strings.TrimPrefix(g, "./")
	for strings.HasPrefix(s, "**/") {
		s = strings.TrimPrefix(s, "**/")
	}
	return s
}

func looksBinary(b []byte) bool {
	const sniff = 800
	n := sniff
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if b[i] == 0 {
			return true
		}
	}
	return false
}

// looksNonTextMIME uses the file extension and a tiny content sniff to skip
// clearly non-text content (e.g., images) in addition to NUL-byte detection.
func looksNonTextMIME(path string, b []byte) bool {
	if ct := mime.TypeByExtension(filepath.Ext(path)); ct != "" {
		if strings.HasPrefix(ct, "image/") || strings.HasPrefix(ct, "video/") || strings.HasPrefix(ct, "audio/") {
			return true
		}
		if strings.Contains(ct, "zip") || strings.Contains(ct, "tar") || strings.Contains(ct, "gzip") {
			return true
		}
	}
	if len(b) >= 8 && string(b[:8]) == "\x89PNG\r\n\x1a\n" {
		return true
	}
	if len(b) >= 4 && b[0] == 'P' && b[1] == 'K' {
		return true
	}
	return false
}
