package report

import (
	"encoding/json"
	"io"

	"github.com/redhouse-labs/pygauge/internal/metrics"
)

// SchemaVersion identifies the JSON output structure.
const SchemaVersion = "1.0.0"

// CheckOutcome is the JSON form of one external check result.
type CheckOutcome struct {
	Passed bool   `json:"passed"`
	Errors int    `json:"errors,omitempty"`
	Output string `json:"output,omitempty"`
}

// Report is the machine-readable form of a full pygauge run.
// Sections for checks that were not requested are omitted.
type Report struct {
	Version  string           `json:"version"`
	Project  *metrics.Project `json:"project"`
	DeadCode []string         `json:"dead_code,omitempty"`
	Coverage *CheckOutcome    `json:"coverage,omitempty"`
	Ruff     *CheckOutcome    `json:"ruff,omitempty"`
	Mypy     *CheckOutcome    `json:"mypy,omitempty"`
}

// WriteJSON writes the report as indented JSON.
func WriteJSON(w io.Writer, r *Report) error {
	if r.Version == "" {
		r.Version = SchemaVersion
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}
