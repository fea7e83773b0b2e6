package core

import (
	"encoding/json"
	"io"
)

// MarshalViolations pretty-prints violations as JSON for humans or pipelines.
func MarshalViolations(w io.Writer, violations []Violation) error {
	if violations == nil {
		violations = []Violation{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(violations)
}

// UnmarshalViolations decodes violations JSON, useful for ingestion tests.
func UnmarshalViolations(r io.Reader) ([]Violation, error) {
	var vs []Violation
	if err := json.NewDecoder(r).Decode(&vs); err != nil {
		return nil, err
	}
	return vs, nil
}
