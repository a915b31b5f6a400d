package models

import "time"

// Status is the resolved state of a control or of a single check.
type Status string

const (
	// StatusPass means every check behind the control passed.
	StatusPass Status = "PASS"
	// StatusFail means at least one check ran to completion and found the
	// control non-compliant.
	StatusFail Status = "FAIL"
	// StatusError means a check could not complete (connectivity failure,
	// missing privilege, fault in grading logic). Distinct from FAIL: the
	// compliance state of the control is unknown.
	StatusError Status = "ERROR"
	// StatusSkipped means configuration removed the control before execution.
	StatusSkipped Status = "SKIPPED"
	// StatusManual means the control requires human judgment and was reported
	// without executing any checks.
	StatusManual Status = "MANUAL"
)

// Severity represents the impact level of a non-compliant control.
type Severity string

const (
	SeverityCritical Severity = "CRITICAL"
	SeverityHigh     Severity = "HIGH"
	SeverityMedium   Severity = "MEDIUM"
	SeverityLow      Severity = "LOW"
)

// severityRank orders severities for sorting and threshold comparisons.
var severityRank = map[Severity]int{
	SeverityCritical: 4,
	SeverityHigh:     3,
	SeverityMedium:   2,
	SeverityLow:      1,
}

// Rank returns the numeric ordering of s. Unknown severities rank 0.
func (s Severity) Rank() int { return severityRank[s] }

// ProfileLevel is an ordered CIS compliance tier. Level 1 is a subset of
// Level 2: auditing at Level 2 includes every Level 1 control.
type ProfileLevel int

const (
	Level1 ProfileLevel = 1
	Level2 ProfileLevel = 2
)

// String returns the benchmark's display form, e.g. "Level 1".
func (p ProfileLevel) String() string {
	switch p {
	case Level1:
		return "Level 1"
	case Level2:
		return "Level 2"
	default:
		return "Unknown"
	}
}

// Valid reports whether p is a declared profile level.
func (p ProfileLevel) Valid() bool { return p == Level1 || p == Level2 }

// CheckOutcome is the immutable result of running one check. Created once by
// the executor and never mutated afterwards.
type CheckOutcome struct {
	Check    string        `json:"check"`
	Status   Status        `json:"status"`
	Expected string        `json:"expected,omitempty"`
	Evidence string        `json:"evidence,omitempty"`
	Message  string        `json:"message"`
	Duration time.Duration `json:"duration_ns"`
}

// ControlResult pairs a catalogued control with its resolved status and the
// outcomes of its constituent checks.
type ControlResult struct {
	ControlID    string         `json:"control_id"`
	Title        string         `json:"title"`
	Section      string         `json:"section"`
	ProfileLevel ProfileLevel   `json:"profile_level"`
	Severity     Severity       `json:"severity"`
	Automated    bool           `json:"automated"`
	Status       Status         `json:"status"`
	Remediation  string         `json:"remediation,omitempty"`
	Checks       []CheckOutcome `json:"checks,omitempty"`
}

// SectionSummary aggregates control counts for one catalogue section.
// Score is PASS/(PASS+FAIL) over automated, non-skipped, non-error controls;
// nil means the section has no scorable controls ("not applicable").
type SectionSummary struct {
	Section string   `json:"section"`
	Total   int      `json:"total"`
	Passed  int      `json:"passed"`
	Failed  int      `json:"failed"`
	Errors  int      `json:"errors"`
	Skipped int      `json:"skipped"`
	Manual  int      `json:"manual"`
	Score   *float64 `json:"score,omitempty"`
}

// Verdict is the run-level threshold decision.
type Verdict string

const (
	VerdictCompliant    Verdict = "COMPLIANT"
	VerdictNonCompliant Verdict = "NON_COMPLIANT"
)

// RunSummary aggregates counts and the threshold verdict for a whole run.
// Incomplete is set whenever any control resolved ERROR, so a clean verdict
// can never silently mask connectivity problems.
type RunSummary struct {
	Total         int      `json:"total"`
	Passed        int      `json:"passed"`
	Failed        int      `json:"failed"`
	Errors        int      `json:"errors"`
	Skipped       int      `json:"skipped"`
	Manual        int      `json:"manual"`
	Score         *float64 `json:"score,omitempty"`
	FailThreshold int      `json:"fail_threshold"`
	Verdict       Verdict  `json:"verdict"`
	Incomplete    bool     `json:"incomplete"`
}

// TargetInfo identifies the audited cluster. The password is deliberately not
// part of the model and must never appear in a report.
type TargetInfo struct {
	Host     string `json:"host"`
	Port     int    `json:"port"`
	Database string `json:"database"`
	User     string `json:"user"`
}

// RunResult is the finalized output of one benchmark run: every selected
// control exactly once, in catalogue order, plus section and run summaries.
// Built incrementally by the executor, finalized exactly once by the
// aggregator, then handed to report sinks as an immutable value.
type RunResult struct {
	RunID         string            `json:"run_id"`
	GeneratedAt   time.Time         `json:"generated_at"`
	Target        TargetInfo        `json:"target"`
	ClusterInfo   map[string]string `json:"cluster_info,omitempty"`
	ProfileLevel  ProfileLevel      `json:"profile_level"`
	ExcludeManual bool              `json:"exclude_manual"`
	Results       []ControlResult   `json:"results"`
	Sections      []SectionSummary  `json:"sections"`
	Summary       RunSummary        `json:"summary"`
	// Truncated marks a run aborted before every control executed. File-based
	// sinks refuse truncated runs; the console renderer labels them partial.
	Truncated bool `json:"truncated,omitempty"`
}

// ResultsByStatus returns the results carrying the given status, in order.
func (r *RunResult) ResultsByStatus(s Status) []ControlResult {
	var out []ControlResult
	for _, cr := range r.Results {
		if cr.Status == s {
			out = append(out, cr)
		}
	}
	return out
}
