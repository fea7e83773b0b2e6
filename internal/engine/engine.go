package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/bracecheck/bracecheck/internal/cache"
	"github.com/bracecheck/bracecheck/internal/rules"
	"github.com/bracecheck/bracecheck/internal/syntax"
	"github.com/bracecheck/bracecheck/internal/types"
	"golang.org/x/sync/errgroup"
)

// Config controls file selection, rule settings and whether fixes are written.
type Config struct {
	Root            string
	IncludeGlobs    string
	ExcludeGlobs    string
	MaxBytes        int64
	Threads         int
	EnableRules     string
	DisableRules    string
	Mode            rules.Mode
	Severity        types.Severity
	Language        string // lexer for files no lexer claims by name
	Fix             bool
	DryRun          bool // with Fix: compute corrections but leave files untouched
	NoCache         bool
	DefaultExcludes bool
	ChangedOnly     bool
	Progress        func() // called once per processed file; calls are serialized
	Logger          *slog.Logger
}

// Result contains violations, corrections and basic run statistics.
type Result struct {
	Violations   []types.Violation
	Corrections  []types.Correction
	FilesScanned int
	FilesFixed   int
	Duration     time.Duration
	Errors       []error
}

// fileResult is the per-target slot filled by one worker.
type fileResult struct {
	scanned     bool
	fixed       bool
	violations  []types.Violation
	corrections []types.Correction
	cacheVal    string
	err         error
}

// Run checks every target file and, with cfg.Fix, rewrites the ones that
// have violations. Per-file failures are collected in Result.Errors; the
// returned error is reserved for configuration problems and cancellation.
func Run(ctx context.Context, cfg Config) (Result, error) {
	var result Result
	start := time.Now()
	if ctx == nil {
		ctx = context.Background()
	}
	log := cfg.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	if cfg.Root == "" {
		cfg.Root = "."
	}

	active, err := rules.Build(rules.Config{Mode: cfg.Mode, Severity: cfg.Severity}, cfg.EnableRules, cfg.DisableRules)
	if err != nil {
		return result, err
	}
	reg, err := syntax.NewRegistry(cfg.Language)
	if err != nil {
		return result, fmt.Errorf("lexer registry: %w", err)
	}

	targets, err := Targets(ctx, cfg)
	if err != nil {
		return result, fmt.Errorf("select files: %w", err)
	}
	log.Debug("selected targets", "root", cfg.Root, "count", len(targets), "changed_only", cfg.ChangedOnly)

	db := cache.DB{Entries: map[string]string{}}
	if !cfg.NoCache {
		if loaded, err := cache.Load(cfg.Root); err == nil {
			db = loaded
		} else if !errors.Is(err, os.ErrNotExist) {
			log.Debug("cache unreadable, starting fresh", "err", err)
		}
	}
	fingerprint := fingerprintOf(cfg, active)

	threads := cfg.Threads
	if threads <= 0 {
		threads = runtime.GOMAXPROCS(0)
	}
	slots := make([]fileResult, len(targets))
	var progressMu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(threads)
	for i, rel := range targets {
		i, rel := i, rel
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			slots[i] = processFile(cfg, rel, active, reg, db.Entries[rel], fingerprint, log)
			if cfg.Progress != nil {
				progressMu.Lock()
				cfg.Progress()
				progressMu.Unlock()
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return result, err
	}

	for i, s := range slots {
		if s.err != nil {
			result.Errors = append(result.Errors, s.err)
			delete(db.Entries, targets[i])
			continue
		}
		if !s.scanned {
			continue
		}
		result.FilesScanned++
		if s.fixed {
			result.FilesFixed++
		}
		result.Violations = append(result.Violations, s.violations...)
		result.Corrections = append(result.Corrections, s.corrections...)
		if s.cacheVal != "" {
			db.Entries[targets[i]] = s.cacheVal
		} else {
			delete(db.Entries, targets[i])
		}
	}

	if !cfg.NoCache {
		if err := cache.Save(cfg.Root, db); err != nil {
			log.Debug("cache not saved", "err", err)
		}
	}
	result.Duration = time.Since(start)
	log.Debug("run finished",
		"files", result.FilesScanned,
		"violations", len(result.Violations),
		"fixed", result.FilesFixed,
		"errors", len(result.Errors),
		"duration", result.Duration)
	return result, nil
}

// processFile checks one file. A cached hash equal to the content's hash
// means the file was clean under the same settings and is skipped.
func processFile(cfg Config, rel string, active []rules.Rule, reg *syntax.Registry, cached, fingerprint string, log *slog.Logger) fileResult {
	abs := filepath.Join(cfg.Root, filepath.FromSlash(rel))
	data, err := os.ReadFile(abs)
	if err != nil {
		return fileResult{err: fmt.Errorf("%s: %w", rel, err)}
	}
	if looksBinary(data) || looksNonTextMIME(rel, data) {
		return fileResult{}
	}
	res := fileResult{scanned: true}
	sum := cache.Sum(fingerprint, data)
	if !cfg.NoCache && cached == sum {
		res.cacheVal = sum
		return res
	}

	text := string(data)
	cls, err := reg.Classifier(rel, text)
	if err != nil {
		return fileResult{err: fmt.Errorf("%s: tokenize: %w", rel, err)}
	}
	if cls == nil {
		log.Debug("no lexer", "path", rel)
		res.cacheVal = sum
		return res
	}

	for _, r := range active {
		res.violations = append(res.violations, r.Validate(rel, text, cls)...)
	}
	if len(res.violations) == 0 {
		res.cacheVal = sum
		return res
	}
	if !cfg.Fix {
		return res
	}

	fixed := text
	for i, r := range active {
		out, cs := r.Correct(rel, fixed, cls)
		if len(cs) == 0 {
			continue
		}
		res.corrections = append(res.corrections, cs...)
		fixed = out
		if i < len(active)-1 {
			// later rules need offsets into the rewritten text
			if cls, err = reg.Classifier(rel, fixed); err != nil {
				return fileResult{err: fmt.Errorf("%s: tokenize: %w", rel, err)}
			}
		}
	}
	if fixed == text || cfg.DryRun {
		return res
	}
	if err := writeAtomic(abs, []byte(fixed)); err != nil {
		return fileResult{err: fmt.Errorf("%s: write: %w", rel, err)}
	}
	log.Debug("fixed", "path", rel, "corrections", len(res.corrections))
	res.fixed = true
	return res
}

// fingerprintOf identifies the settings a cache entry was produced under.
func fingerprintOf(cfg Config, active []rules.Rule) string {
	ids := make([]string, 0, len(active))
	for _, r := range active {
		ids = append(ids, r.ID())
	}
	mode, _ := rules.ParseMode(string(cfg.Mode))
	sev, _ := rules.ParseSeverity(string(cfg.Severity))
	return strings.Join([]string{string(mode), string(sev), cfg.Language, strings.Join(ids, ",")}, "|")
}

// writeAtomic replaces path with data through a temp file in the same
// directory, keeping the original permissions.
func writeAtomic(path string, data []byte) error {
	mode := os.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}
	f, err := os.CreateTemp(filepath.Dir(path), ".bracecheck-*")
	if err != nil {
		return err
	}
	tmp := f.Name()
	defer os.Remove(tmp)
	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Chmod(mode); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
