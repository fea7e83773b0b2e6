package types

// Severity is the level attached to a violation.
type Severity string

const (
	SevWarning Severity = "warning"
	SevError   Severity = "error"
)

// Location points at a byte offset in a file together with the 1-based line
// and character column derived from it for reporting.
type Location struct {
	Path   string `json:"path"`
	Offset int    `json:"offset"`
	Line   int    `json:"line"`
	Column int    `json:"column"`
}

// Range is a half-open byte range [Start, End) into the original content.
type Range struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Len returns the number of bytes covered by r.
func (r Range) Len() int { return r.End - r.Start }

// Violation describes a confirmed misplaced continuation keyword.
type Violation struct {
	Location Location `json:"location"`
	RuleID   string   `json:"rule"`
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
	Snippet  string   `json:"snippet,omitempty"` // source line containing the offending brace
}

// Correction is the rewrite instruction computed for one violation.
type Correction struct {
	Location        Location `json:"location"`
	RuleID          string   `json:"rule"`
	Replace         Range    `json:"replace"`
	ReplacementText string   `json:"replacement"`
}
