package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/yugabench/yugabench/internal/models"
	"github.com/yugabench/yugabench/internal/output"
	"github.com/yugabench/yugabench/internal/report"
	"github.com/yugabench/yugabench/internal/version"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	root := newRootCmd()
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func TestVersionCmd_Output(t *testing.T) {
	orig := version.Version
	origC := version.Commit
	origD := version.Date
	t.Cleanup(func() {
		version.Version = orig
		version.Commit = origC
		version.Date = origD
	})
	version.Version = "test"
	version.Commit = "abc123"
	version.Date = "2026-01-01"

	out, err := execute(t, "version")
	if err != nil {
		t.Fatalf("version command returned error: %v", err)
	}
	for _, want := range []string{"test", "abc123", "2026-01-01"} {
		if !strings.Contains(out, want) {
			t.Errorf("version output missing %q; got:\n%s", want, out)
		}
	}
}

// TestListCmd_NoTargetNeeded verifies listing works entirely offline against
// the released catalogue.
func TestListCmd_NoTargetNeeded(t *testing.T) {
	out, err := execute(t, "list")
	if err != nil {
		t.Fatalf("list returned error: %v", err)
	}
	for _, want := range []string{"ID", "TITLE", "1.1", "manual", "auto", "controls"} {
		if !strings.Contains(out, want) {
			t.Errorf("list output missing %q", want)
		}
	}
}

func TestListCmd_ExcludeManual(t *testing.T) {
	out, err := execute(t, "list", "--exclude-manual")
	if err != nil {
		t.Fatalf("list returned error: %v", err)
	}
	if strings.Contains(out, "manual") {
		t.Error("exclude-manual listing must contain no manual controls")
	}
}

func TestListCmd_BadProfileLevel(t *testing.T) {
	if _, err := execute(t, "list", "--profile-level", "3"); err == nil {
		t.Error("want error for unknown profile level")
	}
}

func TestValidateCmd_CatalogueOnly(t *testing.T) {
	out, err := execute(t, "validate")
	if err != nil {
		t.Fatalf("validate returned error: %v", err)
	}
	if !strings.Contains(out, "catalogue OK") {
		t.Errorf("got:\n%s", out)
	}
}

func TestValidateCmd_Policy(t *testing.T) {
	good := filepath.Join(t.TempDir(), "good.yaml")
	if err := os.WriteFile(good, []byte("version: 1\nfail_threshold: 2\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	out, err := execute(t, "validate", "--policy", good)
	if err != nil {
		t.Fatalf("validate returned error: %v\n%s", err, out)
	}
	if !strings.Contains(out, "policy OK") {
		t.Errorf("got:\n%s", out)
	}

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(bad, []byte("version: 1\ncontrols:\n  \"99.99\": {severity: SEVERE}\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := execute(t, "validate", "--policy", bad); err == nil {
		t.Error("want error for invalid policy")
	}
}

func TestAuditCmd_RejectsBadConfig(t *testing.T) {
	if _, err := execute(t, "audit", "--port", "0"); err == nil {
		t.Error("want error for out-of-range port")
	}
	if _, err := execute(t, "audit", "--fail-threshold", "-1"); err == nil {
		t.Error("want error for negative threshold")
	}
	if _, err := execute(t, "audit", "--format", "pdf"); err == nil {
		t.Error("want error for unknown format")
	}
}

func TestRootCmd_BadLogLevel(t *testing.T) {
	if _, err := execute(t, "list", "--log-level", "noisy"); err == nil {
		t.Error("want error for unknown log level")
	}
}

func truncatedRun() *models.RunResult {
	return &models.RunResult{
		Target:       models.TargetInfo{Host: "db1", Port: 5433, Database: "yugabyte", User: "auditor"},
		ProfileLevel: models.Level1,
		Results: []models.ControlResult{
			{
				ControlID: "1.1", Title: "control", Section: "S",
				ProfileLevel: models.Level1, Severity: models.SeverityLow,
				Automated: true, Status: models.StatusError,
			},
		},
		Sections: []models.SectionSummary{{Section: "S", Total: 1, Errors: 1}},
		Summary: models.RunSummary{
			Total: 1, Errors: 1, Incomplete: true, Verdict: models.VerdictCompliant,
		},
		Truncated: true,
	}
}

// TestRenderResult_TruncatedFallsBackToConsole verifies an aborted run asked
// for a file format still renders: the console output lands at the requested
// path, labelled partial, instead of failing the whole command.
func TestRenderResult_TruncatedFallsBackToConsole(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.json")

	if err := renderResult(truncatedRun(), report.JSONSink{}, path, output.Options{}); err != nil {
		t.Fatalf("truncated run must fall back to console rendering, got: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	out := string(data)
	if !strings.Contains(out, "PARTIAL RESULTS") {
		t.Errorf("fallback output must be labelled partial, got:\n%s", out)
	}
	if strings.Contains(out, "\"run_id\"") {
		t.Error("truncated run must not be rendered as JSON")
	}
}

func TestRenderResult_CompleteRunUsesRequestedSink(t *testing.T) {
	r := truncatedRun()
	r.Truncated = false
	path := filepath.Join(t.TempDir(), "report.json")

	if err := renderResult(r, report.JSONSink{}, path, output.Options{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !strings.Contains(string(data), "\"control_id\": \"1.1\"") {
		t.Errorf("complete run must render as JSON, got:\n%s", string(data))
	}
}
