// Package report renders finalized run results. Sinks treat the RunResult as
// an immutable view: rendering is idempotent and never mutates shared state,
// so multiple sinks may render the same result concurrently.
package report

import (
	"errors"
	"io"

	"github.com/yugabench/yugabench/internal/models"
)

// ErrTruncated is returned by file-based sinks handed a run that was aborted
// before completion. Only the console renderer accepts partial runs.
var ErrTruncated = errors.New("report: refusing to render a truncated run")

// Sink renders a finalized RunResult to w.
type Sink interface {
	// Name returns the format identifier used by the --format flag.
	Name() string

	// Render writes the report. Implementations must not mutate r.
	Render(w io.Writer, r *models.RunResult) error
}

// ForFormat returns the sink for a format name, or false when unknown.
func ForFormat(format string) (Sink, bool) {
	switch format {
	case "json":
		return JSONSink{}, true
	case "csv":
		return CSVSink{}, true
	case "html":
		return HTMLSink{}, true
	default:
		return nil, false
	}
}
