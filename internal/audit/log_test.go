package audit

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/bracecheck/bracecheck/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func violation(path string, line int, sev types.Severity) types.Violation {
	return types.Violation{
		Location: types.Location{Path: path, Line: line, Column: 1},
		RuleID:   "statement_position",
		Severity: sev,
	}
}

func TestLog_RoundTripNewestFirst(t *testing.T) {
	dir := t.TempDir()
	log := NewLog(dir)

	all := []types.Violation{violation("a.java", 1, types.SevWarning), violation("b.java", 2, types.SevError)}
	first := NewRunRecord("check", dir, "cuddled", all, all[1:], 3, time.Second)
	require.NoError(t, log.LogRun(first))
	second := NewRunRecord("fix", dir, "cuddled", nil, nil, 3, time.Millisecond)
	require.NoError(t, log.LogRun(second))

	assert.FileExists(t, filepath.Join(dir, ".bracecheck_audit.jsonl"))

	records, err := log.LoadHistory()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "fix", records[0].Command)
	assert.Equal(t, "check", records[1].Command)
	assert.Equal(t, 2, records[1].TotalViolations)
	assert.Equal(t, 1, records[1].BaselinedCount)
	assert.Equal(t, map[string]int{"warning": 1, "error": 1}, records[1].SeverityCounts)
	require.Len(t, records[1].TopViolations, 1)
	assert.Equal(t, "b.java", records[1].TopViolations[0].Path)
	assert.NotEmpty(t, records[1].RunID)
}

func TestLog_DeleteRecord(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, ".git"), 0o755))
	log := NewLog(dir)
	for _, cmd := range []string{"one", "two", "three"} {
		require.NoError(t, log.LogRun(RunRecord{Command: cmd}))
	}
	assert.FileExists(t, filepath.Join(dir, ".git", "bracecheck_audit.jsonl"))

	require.NoError(t, log.DeleteRecord(1))
	records, err := log.LoadHistory()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "three", records[0].Command)
	assert.Equal(t, "one", records[1].Command)

	assert.Error(t, log.DeleteRecord(5))
}

func TestLog_MissingFile(t *testing.T) {
	_, err := NewLog(t.TempDir()).LoadHistory()
	assert.Error(t, err)
}
