package report

import (
	"encoding/json"
	"io"

	"github.com/bracecheck/bracecheck/internal/types"
)

// ToolVersion is reported as the SARIF driver version.
var ToolVersion = "dev"

type sarif struct {
	Schema  string     `json:"$schema,omitempty"`
	Version string     `json:"version"`
	Runs    []sarifRun `json:"runs"`
}

type sarifRun struct {
	Tool       sarifTool      `json:"tool"`
	Results    []sarifResult  `json:"results"`
	Properties map[string]int `json:"properties,omitempty"`
}

type sarifTool struct {
	Driver sarifDriver `json:"driver"`
}

type sarifDriver struct {
	Name    string      `json:"name"`
	Version string      `json:"version"`
	Rules   []sarifRule `json:"rules,omitempty"`
}

type sarifRule struct {
	ID               string       `json:"id"`
	ShortDescription sarifMessage `json:"shortDescription"`
}

type sarifResult struct {
	RuleID    string       `json:"ruleId"`
	RuleIndex int          `json:"ruleIndex"`
	Level     string       `json:"level"`
	Message   sarifMessage `json:"message"`
	Locations []sarifLoc   `json:"locations"`
}

type sarifMessage struct {
	Text string `json:"text"`
}

type sarifLoc struct {
	PhysicalLocation sarifPhys `json:"physicalLocation"`
}

type sarifPhys struct {
	ArtifactLocation sarifArt    `json:"artifactLocation"`
	Region           sarifRegion `json:"region"`
}

type sarifArt struct {
	URI string `json:"uri"`
}

type sarifRegion struct {
	StartLine   int `json:"startLine"`
	StartColumn int `json:"startColumn,omitempty"`
}

func sevToLevel(s types.Severity) string {
	if s == types.SevError {
		return "error"
	}
	return "warning"
}

// WriteSARIF writes violations as SARIF 2.1.0 to the provided writer.
func WriteSARIF(w io.Writer, violations []types.Violation) error {
	return WriteSARIFWithStats(w, violations, nil)
}

// WriteSARIFWithStats is WriteSARIF with run-level counters attached as
// properties.
func WriteSARIFWithStats(w io.Writer, violations []types.Violation, stats map[string]int) error {
	run := sarifRun{
		Tool:       sarifTool{Driver: sarifDriver{Name: "bracecheck", Version: ToolVersion}},
		Results:    []sarifResult{},
		Properties: stats,
	}
	index := map[string]int{}
	for _, v := range violations {
		idx, ok := index[v.RuleID]
		if !ok {
			idx = len(run.Tool.Driver.Rules)
			index[v.RuleID] = idx
			run.Tool.Driver.Rules = append(run.Tool.Driver.Rules, sarifRule{
				ID:               v.RuleID,
				ShortDescription: sarifMessage{Text: v.Message},
			})
		}
		run.Results = append(run.Results, sarifResult{
			RuleID:    v.RuleID,
			RuleIndex: idx,
			Level:     sevToLevel(v.Severity),
			Message:   sarifMessage{Text: v.Message},
			Locations: []sarifLoc{{
				PhysicalLocation: sarifPhys{
					ArtifactLocation: sarifArt{URI: v.Location.Path},
					Region:           sarifRegion{StartLine: v.Location.Line, StartColumn: v.Location.Column},
				},
			}},
		})
	}
	doc := sarif{
		Schema:  "https://json.schemastore.org/sarif-2.1.0.json",
		Version: "2.1.0",
		Runs:    []sarifRun{run},
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}
