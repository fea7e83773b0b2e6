// Package audit keeps an append-only JSON Lines history of check and fix
// runs so trends can be reviewed later.
package audit

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/bracecheck/bracecheck/internal/types"
)

type RunRecord struct {
	Timestamp       time.Time          `json:"timestamp"`
	RunID           string             `json:"run_id"`
	Command         string             `json:"command"`
	Root            string             `json:"root"`
	Mode            string             `json:"mode"`
	TotalViolations int                `json:"total_violations"`
	NewViolations   int                `json:"new_violations"`
	BaselinedCount  int                `json:"baselined_count"`
	SeverityCounts  map[string]int     `json:"severity_counts"`
	FilesScanned    int                `json:"files_scanned"`
	FilesFixed      int                `json:"files_fixed,omitempty"`
	Corrections     int                `json:"corrections,omitempty"`
	Duration        string             `json:"duration"`
	TopViolations   []ViolationSummary `json:"top_violations,omitempty"`
}

type ViolationSummary struct {
	Path     string `json:"path"`
	Rule     string `json:"rule"`
	Severity string `json:"severity"`
	Line     int    `json:"line"`
}

type Log struct {
	logPath string
}

// NewLog returns the history for root, kept under .git when present.
func NewLog(root string) *Log {
	gitDir := filepath.Join(root, ".git")
	logPath := filepath.Join(root, ".bracecheck_audit.jsonl")
	if st, err := os.Stat(gitDir); err == nil && st.IsDir() {
		logPath = filepath.Join(gitDir, "bracecheck_audit.jsonl")
	}
	return &Log{logPath: logPath}
}

// LoadHistory returns records newest first. Reading stops at the first
// malformed record.
func (a *Log) LoadHistory() ([]RunRecord, error) {
	f, err := os.Open(a.logPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open audit log: %w", err)
	}
	defer f.Close()

	var records []RunRecord
	decoder := json.NewDecoder(f)
	for decoder.More() {
		var record RunRecord
		if err := decoder.Decode(&record); err != nil {
			break
		}
		records = append(records, record)
	}

	for i, j := 0, len(records)-1; i < j; i, j = i+1, j-1 {
		records[i], records[j] = records[j], records[i]
	}
	return records, nil
}

func (a *Log) LogRun(record RunRecord) error {
	if record.RunID == "" {
		record.RunID = fmt.Sprintf("run_%d", time.Now().UnixNano())
	}
	f, err := os.OpenFile(a.logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0600)
	if err != nil {
		return fmt.Errorf("failed to open audit log: %w", err)
	}
	defer f.Close()

	if err := json.NewEncoder(f).Encode(record); err != nil {
		return fmt.Errorf("failed to write audit record: %w", err)
	}
	return nil
}

// DeleteRecord removes the record at index in LoadHistory order.
func (a *Log) DeleteRecord(index int) error {
	records, err := a.LoadHistory()
	if err != nil {
		return err
	}
	if index < 0 || index >= len(records) {
		return fmt.Errorf("invalid index: %d", index)
	}
	records = append(records[:index], records[index+1:]...)

	for i, j := 0, len(records)-1; i < j; i, j = i+1, j-1 {
		records[i], records[j] = records[j], records[i]
	}

	f, err := os.Create(a.logPath)
	if err != nil {
		return fmt.Errorf("failed to create audit log: %w", err)
	}
	defer f.Close()

	encoder := json.NewEncoder(f)
	for _, record := range records {
		if err := encoder.Encode(record); err != nil {
			return fmt.Errorf("failed to write audit record: %w", err)
		}
	}
	return nil
}

// NewRunRecord summarizes one run. all holds every violation found, fresh
// the ones left after baseline filtering.
func NewRunRecord(command, root, mode string, all, fresh []types.Violation, filesScanned int, duration time.Duration) RunRecord {
	severityCounts := make(map[string]int)
	for _, v := range all {
		severityCounts[string(v.Severity)]++
	}

	top := make([]ViolationSummary, 0, 10)
	for i, v := range fresh {
		if i >= 10 {
			break
		}
		top = append(top, ViolationSummary{
			Path:     v.Location.Path,
			Rule:     v.RuleID,
			Severity: string(v.Severity),
			Line:     v.Location.Line,
		})
	}

	return RunRecord{
		Timestamp:       time.Now(),
		Command:         command,
		Root:            root,
		Mode:            mode,
		TotalViolations: len(all),
		NewViolations:   len(fresh),
		BaselinedCount:  len(all) - len(fresh),
		SeverityCounts:  severityCounts,
		FilesScanned:    filesScanned,
		Duration:        duration.String(),
		TopViolations:   top,
	}
}
