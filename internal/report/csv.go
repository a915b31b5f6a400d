package report

import (
	"encoding/csv"
	"io"
	"strings"

	"github.com/yugabench/yugabench/internal/models"
)

// CSVSink renders one row per control, suitable for spreadsheets and diffing
// between runs.
type CSVSink struct{}

func (CSVSink) Name() string { return "csv" }

var csvHeader = []string{
	"control_id", "title", "section", "profile_level",
	"status", "severity", "expected", "observed", "message",
}

func (CSVSink) Render(w io.Writer, r *models.RunResult) error {
	if r.Truncated {
		return ErrTruncated
	}
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, cr := range r.Results {
		var expected, observed, messages []string
		for _, c := range cr.Checks {
			if c.Expected != "" {
				expected = append(expected, c.Expected)
			}
			if c.Evidence != "" {
				observed = append(observed, c.Evidence)
			}
			if c.Message != "" {
				messages = append(messages, c.Message)
			}
		}
		row := []string{
			cr.ControlID,
			cr.Title,
			cr.Section,
			cr.ProfileLevel.String(),
			string(cr.Status),
			string(cr.Severity),
			strings.Join(expected, "; "),
			strings.Join(observed, "; "),
			strings.Join(messages, "; "),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
