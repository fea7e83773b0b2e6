// Package cache remembers which files were clean the last time they were
// checked so unchanged files can be skipped on the next run.
package cache

import (
	"errors"
	"os"
	"path/filepath"

	xxhash "github.com/cespare/xxhash/v2"
	"github.com/vmihailenco/msgpack/v5"
)

// FileName is the cache file written at the root of trees without a .git
// directory.
const FileName = ".bracecheck.cache"

type DB struct {
	// Path relative to repo root -> Sum of (settings fingerprint, content)
	Entries map[string]string `msgpack:"entries"`
}

func defaultPath(root string) string {
	// Prefer storing the cache under .git to avoid accidental commits
	gitDir := filepath.Join(root, ".git")
	if st, err := os.Stat(gitDir); err == nil && st.IsDir() {
		return filepath.Join(gitDir, "bracecheck.cache")
	}
	return filepath.Join(root, FileName)
}

// Load reads the cache for root. The returned DB always has a usable map,
// even when the error is non-nil.
func Load(root string) (DB, error) {
	var db DB
	f, err := os.Open(defaultPath(root))
	if err != nil {
		return DB{Entries: map[string]string{}}, err
	}
	defer f.Close()
	if err := msgpack.NewDecoder(f).Decode(&db); err != nil {
		return DB{Entries: map[string]string{}}, err
	}
	if db.Entries == nil {
		db.Entries = map[string]string{}
	}
	return db, nil
}

// Save writes db atomically via a temp file and rename.
func Save(root string, db DB) error {
	if db.Entries == nil {
		return errors.New("empty cache")
	}
	p := defaultPath(root)
	f, err := os.CreateTemp(filepath.Dir(p), ".bracecheck-cache-*")
	if err != nil {
		return err
	}
	defer os.Remove(f.Name())
	if err := msgpack.NewEncoder(f).Encode(db); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(f.Name(), p)
}

// Sum hashes data together with a fingerprint of the settings it was checked
// under, so changing the mode invalidates earlier entries.
func Sum(fingerprint string, data []byte) string {
	d := xxhash.New()
	_, _ = d.WriteString(fingerprint)
	_, _ = d.Write([]byte{0})
	_, _ = d.Write(data)
	sum := d.Sum64()
	var buf [16]byte
	const hex = "0123456789abcdef"
	for i := 15; i >= 0; i-- {
		buf[i] = hex[sum&0xF]
		sum >>= 4
	}
	return string(buf[:])
}
