// Package accesscontrol provides the "Access Control and Password Policies"
// section pack.
package accesscontrol

import (
	"github.com/yugabench/yugabench/internal/catalog"
	"github.com/yugabench/yugabench/internal/models"
)

const Section = "Access Control and Password Policies"

// New returns the access control and password policy controls.
func New() []catalog.Control {
	return []catalog.Control{
		{
			ID:           "5.1",
			Title:        "Ensure idle-in-transaction sessions are terminated",
			Section:      Section,
			ProfileLevel: models.Level1,
			Automated:    true,
			Severity:     models.SeverityMedium,
			Description:  "Idle transactions hold locks and snapshots indefinitely.",
			Remediation:  "Set idle_in_transaction_session_timeout to a positive value (e.g. 600000 ms).",
			Checks: []catalog.CheckSpec{
				{
					Name:       "idle_in_transaction_session_timeout is positive",
					Capability: catalog.Setting{Name: "idle_in_transaction_session_timeout"},
					Expect:     catalog.IntAtLeast(1),
				},
			},
		},
		{
			ID:           "5.2",
			Title:        "Ensure a statement timeout is configured",
			Section:      Section,
			ProfileLevel: models.Level2,
			Automated:    true,
			Severity:     models.SeverityLow,
			Description:  "Unbounded statements enable resource-exhaustion denial of service.",
			Remediation:  "Set statement_timeout to a positive value appropriate for the workload.",
			Checks: []catalog.CheckSpec{
				{
					Name:       "statement_timeout is positive",
					Capability: catalog.Setting{Name: "statement_timeout"},
					Expect:     catalog.IntAtLeast(1),
				},
			},
		},
		{
			ID:           "5.3",
			Title:        "Ensure an account lockout policy is enforced",
			Section:      Section,
			ProfileLevel: models.Level2,
			Automated:    false,
			Severity:     models.SeverityMedium,
			Description:  "Lockout after repeated failures is enforced by the external authentication layer (LDAP/PAM).",
			Remediation:  "Configure failed-login lockout in the identity provider fronting the cluster.",
		},
		{
			ID:           "5.4",
			Title:        "Ensure server-side password complexity checking is loaded",
			Section:      Section,
			ProfileLevel: models.Level2,
			Automated:    true,
			Severity:     models.SeverityLow,
			Remediation:  "Add passwordcheck to shared_preload_libraries.",
			Checks: []catalog.CheckSpec{
				{
					Name:       "passwordcheck module is preloaded",
					Capability: catalog.Setting{Name: "shared_preload_libraries"},
					Expect:     catalog.ContainsAny("passwordcheck"),
				},
			},
		},
	}
}
