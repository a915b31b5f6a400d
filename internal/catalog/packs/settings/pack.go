// Package settings provides the "YugabyteDB Settings" section pack.
package settings

import (
	"github.com/yugabench/yugabench/internal/catalog"
	"github.com/yugabench/yugabench/internal/models"
)

const Section = "YugabyteDB Settings"

// New returns the server-settings controls.
func New() []catalog.Control {
	return []catalog.Control{
		{
			ID:           "7.1",
			Title:        "Ensure no risky modules are preloaded",
			Section:      Section,
			ProfileLevel: models.Level1,
			Automated:    true,
			Severity:     models.SeverityHigh,
			Description:  "Modules such as dblink and file_fdw open outbound network and filesystem access from SQL.",
			Remediation:  "Remove risky entries from shared_preload_libraries and restart.",
			Checks: []catalog.CheckSpec{
				{
					Name:       "shared_preload_libraries has no risky modules",
					Capability: catalog.Setting{Name: "shared_preload_libraries"},
					Expect:     catalog.NoneOfSubstrings("dblink", "file_fdw", "plpython", "plperlu"),
				},
			},
		},
		{
			ID:           "7.2",
			Title:        "Ensure backend statistics dumping is disabled",
			Section:      Section,
			ProfileLevel: models.Level1,
			Automated:    true,
			Severity:     models.SeverityMedium,
			Description:  "The *_stats parameters write internal state into the log on every statement.",
			Remediation:  "Set log_statement_stats, log_parser_stats, log_planner_stats and log_executor_stats to off.",
			Checks: []catalog.CheckSpec{
				{
					Name:       "log_statement_stats is off",
					Capability: catalog.Setting{Name: "log_statement_stats"},
					Expect:     catalog.BoolIs(false),
				},
				{
					Name:       "log_parser_stats is off",
					Capability: catalog.Setting{Name: "log_parser_stats"},
					Expect:     catalog.BoolIs(false),
				},
				{
					Name:       "log_planner_stats is off",
					Capability: catalog.Setting{Name: "log_planner_stats"},
					Expect:     catalog.BoolIs(false),
				},
				{
					Name:       "log_executor_stats is off",
					Capability: catalog.Setting{Name: "log_executor_stats"},
					Expect:     catalog.BoolIs(false),
				},
			},
		},
		{
			ID:           "7.3",
			Title:        "Ensure autovacuum is enabled",
			Section:      Section,
			ProfileLevel: models.Level1,
			Automated:    true,
			Severity:     models.SeverityLow,
			Remediation:  "Set autovacuum = on.",
			Checks: []catalog.CheckSpec{
				{
					Name:       "autovacuum is on",
					Capability: catalog.Setting{Name: "autovacuum"},
					Expect:     catalog.BoolIs(true),
				},
			},
		},
		{
			ID:           "7.4",
			Title:        "Ensure sequential scans have not been globally disabled",
			Section:      Section,
			ProfileLevel: models.Level2,
			Automated:    true,
			Severity:     models.SeverityLow,
			Description:  "enable_seqscan = off is a planner hack that distorts every query plan.",
			Remediation:  "Leave enable_seqscan at its default of on.",
			Checks: []catalog.CheckSpec{
				{
					Name:       "enable_seqscan is on",
					Capability: catalog.Setting{Name: "enable_seqscan"},
					Expect:     catalog.BoolIs(true),
				},
			},
		},
		{
			ID:           "7.5",
			Title:        "Ensure node-to-node encryption is enabled",
			Section:      Section,
			ProfileLevel: models.Level1,
			Automated:    false,
			Severity:     models.SeverityCritical,
			Description:  "Inter-node TLS is controlled by tserver/master gflags not visible through YSQL.",
			Remediation:  "Start all nodes with --use_node_to_node_encryption=true and distribute node certificates.",
		},
		{
			ID:           "7.6",
			Title:        "Ensure pgcrypto is available for column-level encryption",
			Section:      Section,
			ProfileLevel: models.Level2,
			Automated:    true,
			Severity:     models.SeverityLow,
			Remediation:  "CREATE EXTENSION pgcrypto in databases storing sensitive columns.",
			Checks: []catalog.CheckSpec{
				{
					Name: "pgcrypto extension is installed",
					Capability: catalog.RowCount{SQL: `
						SELECT extname FROM pg_extension WHERE extname = 'pgcrypto'`},
					Expect: catalog.IntAtLeast(1),
				},
			},
		},
	}
}
