// Package aggregate turns per-check outcomes into the finalized RunResult:
// control status resolution, section and overall scores, and the threshold
// verdict. It is pure; nothing here touches the target.
package aggregate

import (
	"time"

	"github.com/google/uuid"

	"github.com/yugabench/yugabench/internal/models"
)

// Meta carries run metadata the executor cannot derive from outcomes alone.
type Meta struct {
	Target        models.TargetInfo
	ClusterInfo   map[string]string
	ProfileLevel  models.ProfileLevel
	ExcludeManual bool
	FailThreshold int
}

// ResolveStatus derives a control's status from its check outcomes:
// PASS iff every check passed, ERROR if any check errored, FAIL otherwise.
// ERROR outranks FAIL: when a check could not complete, the control's true
// compliance state is unknown and must not be reported as a plain failure.
func ResolveStatus(checks []models.CheckOutcome) models.Status {
	status := models.StatusPass
	for _, c := range checks {
		switch c.Status {
		case models.StatusError:
			return models.StatusError
		case models.StatusFail:
			status = models.StatusFail
		}
	}
	return status
}

// Build finalizes a RunResult from ordered control results. Called exactly
// once per run; the returned value is treated as immutable by every sink.
//
// Scores count only automated PASS/FAIL controls: MANUAL and SKIPPED never
// contribute, and ERROR controls are excluded from the denominator but
// surfaced through Summary.Incomplete and the error counts.
func Build(results []models.ControlResult, meta Meta, truncated bool) *models.RunResult {
	var (
		summary      models.RunSummary
		sectionOrder []string
		sections     = make(map[string]*models.SectionSummary)
	)

	for _, cr := range results {
		sec, ok := sections[cr.Section]
		if !ok {
			sec = &models.SectionSummary{Section: cr.Section}
			sections[cr.Section] = sec
			sectionOrder = append(sectionOrder, cr.Section)
		}
		sec.Total++
		summary.Total++

		switch cr.Status {
		case models.StatusPass:
			sec.Passed++
			summary.Passed++
		case models.StatusFail:
			sec.Failed++
			summary.Failed++
		case models.StatusError:
			sec.Errors++
			summary.Errors++
		case models.StatusSkipped:
			sec.Skipped++
			summary.Skipped++
		case models.StatusManual:
			sec.Manual++
			summary.Manual++
		}
	}

	ordered := make([]models.SectionSummary, 0, len(sectionOrder))
	for _, name := range sectionOrder {
		sec := sections[name]
		sec.Score = score(sec.Passed, sec.Failed)
		ordered = append(ordered, *sec)
	}

	summary.Score = score(summary.Passed, summary.Failed)
	summary.FailThreshold = meta.FailThreshold
	summary.Incomplete = summary.Errors > 0
	if summary.Failed <= meta.FailThreshold {
		summary.Verdict = models.VerdictCompliant
	} else {
		summary.Verdict = models.VerdictNonCompliant
	}

	return &models.RunResult{
		RunID:         uuid.NewString(),
		GeneratedAt:   time.Now().UTC(),
		Target:        meta.Target,
		ClusterInfo:   meta.ClusterInfo,
		ProfileLevel:  meta.ProfileLevel,
		ExcludeManual: meta.ExcludeManual,
		Results:       results,
		Sections:      ordered,
		Summary:       summary,
		Truncated:     truncated,
	}
}

// score returns passed/(passed+failed) as a percentage, or nil when there is
// nothing to score (0/0 is "not applicable", never 0% or 100%).
func score(passed, failed int) *float64 {
	total := passed + failed
	if total == 0 {
		return nil
	}
	s := float64(passed) / float64(total) * 100
	return &s
}
