package catalog

import (
	"github.com/yugabench/yugabench/internal/models"
)

// Control is one catalogued compliance requirement. Controls are plain data:
// loading and listing the catalogue never touches a live target. Immutable
// once the catalogue is built.
type Control struct {
	// ID is the benchmark item number, unique and stable across releases
	// (e.g. "3.1.5").
	ID string

	// Title is the benchmark item's short name.
	Title string

	// Section is the security domain the control belongs to
	// (e.g. "Logging Monitoring and Auditing").
	Section string

	// ProfileLevel is the lowest tier at which the control applies.
	ProfileLevel models.ProfileLevel

	// Automated is false for controls requiring human judgment; the executor
	// reports those as MANUAL without running any checks.
	Automated bool

	Severity models.Severity

	Description string
	Rationale   string
	Remediation string

	// Checks are the declarative bindings executed in order. All checks must
	// pass for the control to pass. Manual controls carry no checks.
	Checks []CheckSpec
}

// CheckSpec binds a named target capability to an expected-value predicate.
// It is declarative: validating or listing a CheckSpec requires no target.
type CheckSpec struct {
	// Name identifies the check within its control (e.g. "ssl enabled").
	Name string

	// Capability names the read-only connector operation that produces the
	// observed value.
	Capability Capability

	// Expect grades the observed value.
	Expect Predicate
}
