package git

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func write(t *testing.T, dir, rel, body string) {
	t.Helper()
	p := filepath.Join(dir, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
}

func TestChangedFiles(t *testing.T) {
	dir := t.TempDir()
	repo, err := gogit.PlainInit(dir, false)
	require.NoError(t, err)
	wt, err := repo.Worktree()
	require.NoError(t, err)

	write(t, dir, "src/Clean.java", "class Clean {}\n")
	write(t, dir, "src/Edited.java", "class Edited {}\n")
	_, err = wt.Add("src/Clean.java")
	require.NoError(t, err)
	_, err = wt.Add("src/Edited.java")
	require.NoError(t, err)
	_, err = wt.Commit("init", &gogit.CommitOptions{
		Author: &object.Signature{Name: "dev", Email: "dev@example.com", When: time.Now()},
	})
	require.NoError(t, err)

	write(t, dir, "src/Edited.java", "class Edited { void f() {} }\n")
	write(t, dir, "src/New.java", "class New {}\n")
	write(t, dir, "other/Top.java", "class Top {}\n")

	got, err := ChangedFiles(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"other/Top.java", "src/Edited.java", "src/New.java"}, got)

	sub, err := ChangedFiles(filepath.Join(dir, "src"))
	require.NoError(t, err)
	assert.Equal(t, []string{"Edited.java", "New.java"}, sub)
}

func TestChangedFiles_NotARepo(t *testing.T) {
	_, err := ChangedFiles(t.TempDir())
	assert.Error(t, err)
}

func TestValidateRoot(t *testing.T) {
	_, err := validateRoot("bad\x00path")
	assert.Error(t, err)

	f := filepath.Join(t.TempDir(), "file.txt")
	require.NoError(t, os.WriteFile(f, nil, 0o644))
	_, err = validateRoot(f)
	assert.Error(t, err)
}
