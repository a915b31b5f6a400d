package report

import (
	"encoding/json"
	"io"

	"github.com/yugabench/yugabench/internal/models"
)

// JSONSink renders the machine-readable report: the RunResult serialized as
// indented JSON. Parsing it back reproduces identical status counts and
// control ordering.
type JSONSink struct{}

func (JSONSink) Name() string { return "json" }

func (JSONSink) Render(w io.Writer, r *models.RunResult) error {
	if r.Truncated {
		return ErrTruncated
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

// Parse reads a JSON report back into a RunResult, for tooling that consumes
// prior runs.
func Parse(rd io.Reader) (*models.RunResult, error) {
	var r models.RunResult
	if err := json.NewDecoder(rd).Decode(&r); err != nil {
		return nil, err
	}
	return &r, nil
}
