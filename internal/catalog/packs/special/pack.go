// Package special provides the "Special Configuration Considerations" section pack.
package special

import (
	"github.com/yugabench/yugabench/internal/catalog"
	"github.com/yugabench/yugabench/internal/models"
)

const Section = "Special Configuration Considerations"

// New returns the special configuration controls.
func New() []catalog.Control {
	return []catalog.Control{
		{
			ID:           "8.1",
			Title:        "Ensure no unvetted extensions are installed",
			Section:      Section,
			ProfileLevel: models.Level1,
			Automated:    true,
			Severity:     models.SeverityMedium,
			Description:  "Extensions that reach outside the database bypass its access controls.",
			Remediation:  "DROP EXTENSION for any module not on the approved list.",
			Checks: []catalog.CheckSpec{
				{
					Name: "no filesystem/network extensions installed",
					Capability: catalog.RowCount{SQL: `
						SELECT extname FROM pg_extension
						WHERE extname IN ('dblink', 'file_fdw', 'adminpack', 'postgres_fdw')`},
					Expect: catalog.IntAtMost(0),
				},
			},
		},
		{
			ID:           "8.2",
			Title:        "Ensure WAL level supports point-in-time recovery",
			Section:      Section,
			ProfileLevel: models.Level1,
			Automated:    true,
			Severity:     models.SeverityMedium,
			Remediation:  "Set wal_level = replica (or logical where CDC is required).",
			Checks: []catalog.CheckSpec{
				{
					Name:       "wal_level is replica or logical",
					Capability: catalog.Setting{Name: "wal_level"},
					Expect:     catalog.OneOf("replica", "logical"),
				},
			},
		},
		{
			ID:           "8.3",
			Title:        "Ensure WAL sender slots are configured but bounded",
			Section:      Section,
			ProfileLevel: models.Level2,
			Automated:    true,
			Severity:     models.SeverityLow,
			Remediation:  "Set max_wal_senders between 1 and 10 unless replication topology requires more.",
			Checks: []catalog.CheckSpec{
				{
					Name:       "max_wal_senders is at least 1",
					Capability: catalog.Setting{Name: "max_wal_senders"},
					Expect:     catalog.IntAtLeast(1),
				},
				{
					Name:       "max_wal_senders is at most 10",
					Capability: catalog.Setting{Name: "max_wal_senders"},
					Expect:     catalog.IntAtMost(10),
				},
			},
		},
		{
			ID:           "8.4",
			Title:        "Ensure row-level security is not globally bypassed",
			Section:      Section,
			ProfileLevel: models.Level2,
			Automated:    true,
			Severity:     models.SeverityMedium,
			Remediation:  "Set row_security = on; use BYPASSRLS per role only where audited.",
			Checks: []catalog.CheckSpec{
				{
					Name:       "row_security is on",
					Capability: catalog.Setting{Name: "row_security"},
					Expect:     catalog.BoolIs(true),
				},
			},
		},
		{
			ID:           "8.5",
			Title:        "Ensure server cipher preference is enforced",
			Section:      Section,
			ProfileLevel: models.Level2,
			Automated:    true,
			Severity:     models.SeverityMedium,
			Remediation:  "Set ssl_prefer_server_ciphers = on.",
			Checks: []catalog.CheckSpec{
				{
					Name:       "ssl_prefer_server_ciphers is on",
					Capability: catalog.Setting{Name: "ssl_prefer_server_ciphers"},
					Expect:     catalog.BoolIs(true),
				},
			},
		},
		{
			ID:           "8.6",
			Title:        "Ensure the cluster carries an identifying name",
			Section:      Section,
			ProfileLevel: models.Level2,
			Automated:    true,
			Severity:     models.SeverityLow,
			Description:  "A cluster_name makes log lines and process titles attributable during incident response.",
			Remediation:  "Set cluster_name to the cluster's inventory identifier.",
			Checks: []catalog.CheckSpec{
				{
					Name:       "cluster_name is set",
					Capability: catalog.Setting{Name: "cluster_name"},
					Expect:     catalog.NotEquals(""),
				},
			},
		},
		{
			ID:           "8.7",
			Title:        "Ensure backups are configured and restore-tested",
			Section:      Section,
			ProfileLevel: models.Level1,
			Automated:    false,
			Severity:     models.SeverityHigh,
			Remediation:  "Schedule snapshots/backups and run periodic restore drills.",
		},
		{
			ID:           "8.8",
			Title:        "Ensure configuration files live outside the data cluster",
			Section:      Section,
			ProfileLevel: models.Level2,
			Automated:    false,
			Severity:     models.SeverityLow,
			Description:  "Separating configuration from data keeps base backups from capturing secrets.",
			Remediation:  "Move configuration files out of the data directory and point the server at them.",
		},
	}
}
