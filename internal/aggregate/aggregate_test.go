package aggregate

import (
	"testing"

	"github.com/yugabench/yugabench/internal/models"
)

func TestResolveStatus(t *testing.T) {
	cases := []struct {
		name   string
		checks []models.CheckOutcome
		want   models.Status
	}{
		{"no checks", nil, models.StatusPass},
		{"all pass", outcomes("PASS", "PASS"), models.StatusPass},
		{"one fail", outcomes("PASS", "FAIL"), models.StatusFail},
		{"error outranks fail", outcomes("FAIL", "ERROR"), models.StatusError},
		{"error alone", outcomes("ERROR"), models.StatusError},
	}
	for _, c := range cases {
		if got := ResolveStatus(c.checks); got != c.want {
			t.Errorf("%s: got %s; want %s", c.name, got, c.want)
		}
	}
}

func outcomes(statuses ...models.Status) []models.CheckOutcome {
	out := make([]models.CheckOutcome, len(statuses))
	for i, s := range statuses {
		out[i] = models.CheckOutcome{Check: "c", Status: s}
	}
	return out
}

func ctlResult(id, section string, status models.Status) models.ControlResult {
	return models.ControlResult{
		ControlID:    id,
		Title:        "control " + id,
		Section:      section,
		ProfileLevel: models.Level1,
		Severity:     models.SeverityMedium,
		Automated:    status != models.StatusManual,
		Status:       status,
	}
}

func TestBuild_ScoresAndVerdict(t *testing.T) {
	results := []models.ControlResult{
		ctlResult("1.1", "A", models.StatusPass),
		ctlResult("1.2", "A", models.StatusFail),
		ctlResult("1.3", "A", models.StatusManual),
		ctlResult("2.1", "B", models.StatusPass),
	}

	r := Build(results, Meta{FailThreshold: 0}, false)

	if r.Summary.Total != 4 || r.Summary.Passed != 2 || r.Summary.Failed != 1 || r.Summary.Manual != 1 {
		t.Errorf("counts wrong: %+v", r.Summary)
	}
	// Score counts only PASS and FAIL: 2 of 3.
	if r.Summary.Score == nil {
		t.Fatal("score must be set when scorable controls exist")
	}
	if got := *r.Summary.Score; got < 66.6 || got > 66.7 {
		t.Errorf("score: got %.2f; want 66.67", got)
	}
	if r.Summary.Verdict != models.VerdictNonCompliant {
		t.Errorf("1 failure over threshold 0 must be NON_COMPLIANT, got %s", r.Summary.Verdict)
	}
	if r.Summary.Incomplete {
		t.Error("no errors: run must not be incomplete")
	}
	if r.RunID == "" {
		t.Error("run ID must be assigned")
	}
}

func TestBuild_SectionOrderAndScores(t *testing.T) {
	results := []models.ControlResult{
		ctlResult("1.1", "A", models.StatusPass),
		ctlResult("2.1", "B", models.StatusManual),
		ctlResult("1.2", "A", models.StatusPass),
	}

	r := Build(results, Meta{}, false)

	if len(r.Sections) != 2 || r.Sections[0].Section != "A" || r.Sections[1].Section != "B" {
		t.Fatalf("sections must keep first-appearance order, got %+v", r.Sections)
	}
	if r.Sections[0].Score == nil || *r.Sections[0].Score != 100 {
		t.Errorf("section A score: got %v; want 100", r.Sections[0].Score)
	}
	// Section B has only a manual control: nothing to score.
	if r.Sections[1].Score != nil {
		t.Errorf("manual-only section must have nil score, got %v", *r.Sections[1].Score)
	}
}

// TestBuild_ErrorsExcludedFromDenominator verifies an ERROR control lowers
// neither the numerator nor the denominator; it flags the run incomplete
// instead.
func TestBuild_ErrorsExcludedFromDenominator(t *testing.T) {
	results := []models.ControlResult{
		ctlResult("1.1", "A", models.StatusPass),
		ctlResult("1.2", "A", models.StatusError),
	}

	r := Build(results, Meta{}, false)

	if r.Summary.Score == nil || *r.Summary.Score != 100 {
		t.Errorf("score: got %v; want 100", r.Summary.Score)
	}
	if !r.Summary.Incomplete {
		t.Error("any ERROR control must mark the run incomplete")
	}
	if r.Summary.Verdict != models.VerdictCompliant {
		t.Errorf("errors are not failures: got %s; want COMPLIANT", r.Summary.Verdict)
	}
}

// TestBuild_ThresholdMonotone verifies raising the threshold never flips a
// compliant run to non-compliant.
func TestBuild_ThresholdMonotone(t *testing.T) {
	results := []models.ControlResult{
		ctlResult("1.1", "A", models.StatusFail),
		ctlResult("1.2", "A", models.StatusFail),
	}

	prevCompliant := false
	for threshold := 0; threshold <= 4; threshold++ {
		r := Build(results, Meta{FailThreshold: threshold}, false)
		compliant := r.Summary.Verdict == models.VerdictCompliant
		if prevCompliant && !compliant {
			t.Fatalf("raising threshold to %d flipped verdict back to NON_COMPLIANT", threshold)
		}
		prevCompliant = compliant
	}
	if !prevCompliant {
		t.Error("threshold above failure count must be COMPLIANT")
	}
	if r := Build(results, Meta{FailThreshold: 2}, false); r.Summary.Verdict != models.VerdictCompliant {
		t.Error("threshold equal to failure count must be COMPLIANT")
	}
}

func TestBuild_EmptyRun(t *testing.T) {
	r := Build(nil, Meta{}, false)
	if r.Summary.Total != 0 {
		t.Errorf("total: got %d", r.Summary.Total)
	}
	if r.Summary.Score != nil {
		t.Error("empty run must have nil score")
	}
	if r.Summary.Verdict != models.VerdictCompliant {
		t.Errorf("zero failures must be COMPLIANT, got %s", r.Summary.Verdict)
	}
}

func TestBuild_TruncatedFlag(t *testing.T) {
	r := Build([]models.ControlResult{ctlResult("1.1", "A", models.StatusPass)}, Meta{}, true)
	if !r.Truncated {
		t.Error("truncated flag must propagate to the result")
	}
}
