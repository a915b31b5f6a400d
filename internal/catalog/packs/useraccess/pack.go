// Package useraccess provides the "User Access and Authorization" section pack.
package useraccess

import (
	"github.com/yugabench/yugabench/internal/catalog"
	"github.com/yugabench/yugabench/internal/models"
)

const Section = "User Access and Authorization"

// New returns the user access and authorization controls.
func New() []catalog.Control {
	return []catalog.Control{
		{
			ID:           "4.1",
			Title:        "Ensure superuser roles are limited to the built-in accounts",
			Section:      Section,
			ProfileLevel: models.Level1,
			Automated:    true,
			Severity:     models.SeverityHigh,
			Description:  "Every additional superuser widens the blast radius of a credential compromise.",
			Remediation:  "ALTER ROLE <role> NOSUPERUSER; grant narrowly scoped privileges instead.",
			Checks: []catalog.CheckSpec{
				{
					Name: "no superusers beyond postgres/yugabyte",
					Capability: catalog.RowCount{SQL: `
						SELECT rolname FROM pg_roles
						WHERE rolsuper = true
						  AND rolname NOT IN ('postgres', 'yugabyte')`},
					Expect: catalog.IntAtMost(0),
				},
			},
		},
		{
			ID:           "4.2",
			Title:        "Ensure non-superuser roles cannot create roles or databases",
			Section:      Section,
			ProfileLevel: models.Level1,
			Automated:    true,
			Severity:     models.SeverityMedium,
			Description:  "CREATEROLE and CREATEDB on ordinary roles are quiet privilege-escalation paths.",
			Remediation:  "ALTER ROLE <role> NOCREATEROLE NOCREATEDB.",
			Checks: []catalog.CheckSpec{
				{
					Name: "no ordinary role holds CREATEROLE or CREATEDB",
					Capability: catalog.RowCount{SQL: `
						SELECT rolname FROM pg_roles
						WHERE (rolcreaterole = true OR rolcreatedb = true)
						  AND rolsuper = false
						  AND rolname NOT LIKE 'yb\_%'`},
					Expect: catalog.IntAtMost(0),
				},
			},
		},
		{
			ID:           "4.3",
			Title:        "Ensure the REPLICATION attribute is restricted to superusers",
			Section:      Section,
			ProfileLevel: models.Level1,
			Automated:    true,
			Severity:     models.SeverityMedium,
			Remediation:  "ALTER ROLE <role> NOREPLICATION.",
			Checks: []catalog.CheckSpec{
				{
					Name: "no ordinary role holds REPLICATION",
					Capability: catalog.RowCount{SQL: `
						SELECT rolname FROM pg_roles
						WHERE rolreplication = true AND rolsuper = false`},
					Expect: catalog.IntAtMost(0),
				},
			},
		},
		{
			ID:           "4.4",
			Title:        "Ensure passwords are stored with SCRAM-SHA-256",
			Section:      Section,
			ProfileLevel: models.Level1,
			Automated:    true,
			Severity:     models.SeverityHigh,
			Description:  "md5 password hashes are subject to offline cracking and replay.",
			Remediation:  "Set password_encryption = scram-sha-256 and rotate all passwords.",
			Checks: []catalog.CheckSpec{
				{
					Name:       "password_encryption is scram-sha-256",
					Capability: catalog.Setting{Name: "password_encryption"},
					Expect:     catalog.Equals("scram-sha-256"),
				},
			},
		},
		{
			ID:           "4.5",
			Title:        "Ensure role memberships are reviewed against business need",
			Section:      Section,
			ProfileLevel: models.Level1,
			Automated:    false,
			Severity:     models.SeverityMedium,
			Description:  "Group role membership grants are organizational facts the engine cannot judge.",
			Remediation:  "Review pg_auth_members quarterly and revoke stale grants.",
		},
	}
}
