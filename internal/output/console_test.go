package output

import (
	"strings"
	"testing"

	"github.com/yugabench/yugabench/internal/models"
)

func sampleRun() *models.RunResult {
	score := 50.0
	return &models.RunResult{
		Target:       models.TargetInfo{Host: "db1", Port: 5433, Database: "yugabyte", User: "auditor"},
		ClusterInfo:  map[string]string{"version": "PostgreSQL 15.2-YB-2.25.1.0-b0"},
		ProfileLevel: models.Level1,
		Results: []models.ControlResult{
			{
				ControlID: "6.1", Title: "Ensure TLS is enabled", Section: "Connection and Login",
				ProfileLevel: models.Level1, Severity: models.SeverityCritical, Automated: true,
				Status: models.StatusPass,
				Checks: []models.CheckOutcome{
					{Check: "ssl", Status: models.StatusPass, Message: "ssl: observed \"on\""},
				},
			},
			{
				ControlID: "3.7", Title: "Ensure connections are logged", Section: "Logging",
				ProfileLevel: models.Level1, Severity: models.SeverityHigh, Automated: true,
				Status: models.StatusFail,
				Checks: []models.CheckOutcome{
					{Check: "log_connections", Status: models.StatusFail,
						Message: "log_connections: observed \"off\", expected on"},
				},
			},
		},
		Sections: []models.SectionSummary{
			{Section: "Connection and Login", Total: 1, Passed: 1, Score: &score},
		},
		Summary: models.RunSummary{
			Total: 2, Passed: 1, Failed: 1,
			Score: &score, Verdict: models.VerdictNonCompliant,
		},
	}
}

func TestStatusCell_PlainPadding(t *testing.T) {
	got := statusCell(models.StatusPass, 8, false)
	if got != "PASS    " {
		t.Errorf("got %q", got)
	}
}

// TestStatusCell_ColorKeepsWidth verifies ANSI codes wrap the label only, so
// the visible width stays fixed and columns line up.
func TestStatusCell_ColorKeepsWidth(t *testing.T) {
	got := statusCell(models.StatusFail, 8, true)
	if !strings.HasPrefix(got, ansiRed+"FAIL"+ansiReset) {
		t.Errorf("got %q", got)
	}
	visible := strings.ReplaceAll(strings.ReplaceAll(got, ansiRed, ""), ansiReset, "")
	if len(visible) != 8 {
		t.Errorf("visible width: got %d; want 8", len(visible))
	}
}

func TestTruncateField(t *testing.T) {
	if got := truncateField("short", 10); got != "short" {
		t.Errorf("got %q", got)
	}
	if got := truncateField("a very long control title indeed", 10); got != "a very ..." {
		t.Errorf("got %q", got)
	}
}

func TestRenderTable(t *testing.T) {
	var sb strings.Builder
	RenderTable(&sb, sampleRun(), Options{})
	out := sb.String()

	for _, want := range []string{"6.1", "3.7", "PASS", "FAIL", "CRITICAL"} {
		if !strings.Contains(out, want) {
			t.Errorf("table missing %q", want)
		}
	}
	if strings.Contains(out, "\033[") {
		t.Error("uncolored output must carry no ANSI codes")
	}
	if strings.Contains(out, "PARTIAL") {
		t.Error("complete run must not be labelled partial")
	}
}

func TestRenderTable_VerboseAndTruncated(t *testing.T) {
	r := sampleRun()
	r.Truncated = true

	var sb strings.Builder
	RenderTable(&sb, r, Options{Verbose: true})
	out := sb.String()

	if !strings.Contains(out, "PARTIAL RESULTS") {
		t.Error("truncated run must be labelled partial")
	}
	if !strings.Contains(out, "log_connections: observed") {
		t.Error("verbose output must include check messages")
	}
}

func TestRenderSummary(t *testing.T) {
	var sb strings.Builder
	RenderSummary(&sb, sampleRun(), Options{})
	out := sb.String()

	for _, want := range []string{
		"db1:5433/yugabyte",
		"NON_COMPLIANT",
		"Score:    50.0%",
		"Connection and Login",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q", want)
		}
	}
	if strings.Contains(out, "WARNING") {
		t.Error("complete error-free run must carry no warnings")
	}
}
