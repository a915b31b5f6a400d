// Package output renders run results for the terminal. Unlike the file sinks
// in internal/report, the console renderer accepts truncated runs and labels
// them as partial.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/yugabench/yugabench/internal/models"
)

// ANSI color codes for status output (used when Colored=true).
const (
	ansiReset  = "\033[0m"
	ansiGreen  = "\033[0;32m"
	ansiRed    = "\033[0;31m"
	ansiYellow = "\033[0;33m"
	ansiBlue   = "\033[0;34m"
	ansiGray   = "\033[0;90m"
)

// Options controls console rendering.
type Options struct {
	// Colored wraps status labels with ANSI codes. Default false (CI-safe).
	Colored bool

	// Verbose includes per-check evidence lines under each control row.
	Verbose bool
}

// statusCell returns the status padded to width characters. When colored,
// ANSI codes wrap only the text; trailing padding spaces are plain so
// subsequent columns stay aligned regardless of terminal ANSI support.
func statusCell(s models.Status, width int, colored bool) string {
	text := string(s)
	if !colored {
		return fmt.Sprintf("%-*s", width, text)
	}
	var code string
	switch s {
	case models.StatusPass:
		code = ansiGreen
	case models.StatusFail:
		code = ansiRed
	case models.StatusError:
		code = ansiYellow
	case models.StatusManual:
		code = ansiBlue
	case models.StatusSkipped:
		code = ansiGray
	default:
		return fmt.Sprintf("%-*s", width, text)
	}
	spaces := width - len(text)
	if spaces < 0 {
		spaces = 0
	}
	return code + text + ansiReset + strings.Repeat(" ", spaces)
}

// truncateField shortens s to at most max bytes for label columns.
func truncateField(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}

// RenderTable writes the per-control results table to w, one row per control
// in catalogue order.
func RenderTable(w io.Writer, r *models.RunResult, opts Options) {
	const (
		wID     = 6
		wTitle  = 56
		wLevel  = 8
		wStatus = 8
		wSev    = 8
	)

	if r.Truncated {
		fmt.Fprintln(w, "PARTIAL RESULTS: run was aborted before completion")
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "%-*s  %-*s  %-*s  %-*s  %s\n",
		wID, "ID", wTitle, "TITLE", wLevel, "LEVEL", wStatus, "STATUS", "SEVERITY")
	fmt.Fprintln(w, strings.Repeat("-", wID+wTitle+wLevel+wStatus+wSev+8))

	for _, cr := range r.Results {
		fmt.Fprintf(w, "%-*s  %-*s  %-*s  %s  %s\n",
			wID, cr.ControlID,
			wTitle, truncateField(cr.Title, wTitle),
			wLevel, cr.ProfileLevel.String(),
			statusCell(cr.Status, wStatus, opts.Colored),
			string(cr.Severity),
		)
		if opts.Verbose {
			for _, c := range cr.Checks {
				fmt.Fprintf(w, "        - %s\n", c.Message)
			}
		}
	}
}

// RenderSummary writes the compact run summary: target header, verdict,
// per-status counts and per-section scores.
func RenderSummary(w io.Writer, r *models.RunResult, opts Options) {
	fmt.Fprintf(w, "Target:   %s:%d/%s (as %s)\n", r.Target.Host, r.Target.Port, r.Target.Database, r.Target.User)
	if v, ok := r.ClusterInfo["version"]; ok {
		fmt.Fprintf(w, "Version:  %s\n", truncateField(v, 80))
	}
	fmt.Fprintf(w, "Profile:  %s\n", r.ProfileLevel)
	fmt.Fprintln(w)

	s := r.Summary
	fmt.Fprintf(w, "Controls: %d total, %d passed, %d failed, %d errors, %d manual, %d skipped\n",
		s.Total, s.Passed, s.Failed, s.Errors, s.Manual, s.Skipped)
	if s.Score != nil {
		fmt.Fprintf(w, "Score:    %.1f%%\n", *s.Score)
	} else {
		fmt.Fprintf(w, "Score:    n/a (no scorable controls)\n")
	}
	fmt.Fprintf(w, "Verdict:  %s (fail threshold %d)\n", s.Verdict, s.FailThreshold)
	if s.Incomplete {
		fmt.Fprintf(w, "WARNING:  audit incomplete, %d control(s) could not be evaluated\n", s.Errors)
	}
	if r.Truncated {
		fmt.Fprintln(w, "WARNING:  run aborted before completion; results are partial")
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Section Scores")
	for _, sec := range r.Sections {
		score := "n/a"
		if sec.Score != nil {
			score = fmt.Sprintf("%.1f%%", *sec.Score)
		}
		fmt.Fprintf(w, "  %-46s  %6s  (%d/%d passed)\n",
			truncateField(sec.Section, 46), score, sec.Passed, sec.Passed+sec.Failed)
	}
}
