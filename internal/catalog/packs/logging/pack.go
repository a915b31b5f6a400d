// Package logging provides the "Logging Monitoring and Auditing" section pack,
// the largest section of the benchmark.
package logging

import (
	"github.com/yugabench/yugabench/internal/catalog"
	"github.com/yugabench/yugabench/internal/models"
)

const Section = "Logging Monitoring and Auditing"

// setting builds the common single-check control shape used across this pack.
func setting(id, title, name string, expect catalog.Predicate, level models.ProfileLevel, sev models.Severity, remediation string) catalog.Control {
	return catalog.Control{
		ID:           id,
		Title:        title,
		Section:      Section,
		ProfileLevel: level,
		Automated:    true,
		Severity:     sev,
		Remediation:  remediation,
		Checks: []catalog.CheckSpec{
			{
				Name:       name + " configured",
				Capability: catalog.Setting{Name: name},
				Expect:     expect,
			},
		},
	}
}

// New returns the logging, monitoring and auditing controls.
func New() []catalog.Control {
	return []catalog.Control{
		setting("3.1", "Ensure a log destination is configured", "log_destination",
			catalog.NotEquals(""), models.Level1, models.SeverityHigh,
			"Set log_destination to stderr, csvlog or syslog."),
		setting("3.2", "Ensure the log filename pattern includes a time-based escape", "log_filename",
			catalog.ContainsAny("%"), models.Level1, models.SeverityLow,
			"Set log_filename to a pattern such as postgresql-%Y-%m-%d_%H%M%S.log."),
		setting("3.3", "Ensure log files are truncated only on rotation", "log_truncate_on_rotation",
			catalog.BoolIs(true), models.Level1, models.SeverityLow,
			"Set log_truncate_on_rotation = on."),
		setting("3.4", "Ensure the log file lifetime is at most one day", "log_rotation_age",
			catalog.IntAtMost(1440), models.Level1, models.SeverityLow,
			"Set log_rotation_age to 1440 minutes or less."),
		setting("3.5", "Ensure syslog messages are not suppressed", "syslog_sequence_numbers",
			catalog.BoolIs(true), models.Level1, models.SeverityMedium,
			"Set syslog_sequence_numbers = on."),
		setting("3.6", "Ensure syslog messages are not lost due to size", "syslog_split_messages",
			catalog.BoolIs(true), models.Level1, models.SeverityMedium,
			"Set syslog_split_messages = on."),
		setting("3.7", "Ensure connections are logged", "log_connections",
			catalog.BoolIs(true), models.Level1, models.SeverityHigh,
			"Set log_connections = on."),
		setting("3.8", "Ensure disconnections are logged", "log_disconnections",
			catalog.BoolIs(true), models.Level1, models.SeverityHigh,
			"Set log_disconnections = on."),
		setting("3.9", "Ensure log_error_verbosity is default or verbose", "log_error_verbosity",
			catalog.OneOf("default", "verbose"), models.Level1, models.SeverityMedium,
			"Set log_error_verbosity = default (or verbose when diagnosing)."),
		setting("3.10", "Ensure hostnames are not resolved in log entries", "log_hostname",
			catalog.BoolIs(false), models.Level1, models.SeverityLow,
			"Set log_hostname = off; DNS lookups in the log path add latency and noise."),
		{
			ID:           "3.11",
			Title:        "Ensure the log line prefix identifies time, user and database",
			Section:      Section,
			ProfileLevel: models.Level1,
			Automated:    true,
			Severity:     models.SeverityMedium,
			Remediation:  "Include %m, %u and %d in log_line_prefix.",
			Checks: []catalog.CheckSpec{
				{
					Name:       "prefix includes timestamp (%m)",
					Capability: catalog.Setting{Name: "log_line_prefix"},
					Expect:     catalog.ContainsAny("%m", "%t"),
				},
				{
					Name:       "prefix includes user (%u)",
					Capability: catalog.Setting{Name: "log_line_prefix"},
					Expect:     catalog.ContainsAny("%u"),
				},
				{
					Name:       "prefix includes database (%d)",
					Capability: catalog.Setting{Name: "log_line_prefix"},
					Expect:     catalog.ContainsAny("%d"),
				},
			},
		},
		setting("3.12", "Ensure DDL and modification statements are logged", "log_statement",
			catalog.OneOf("ddl", "mod", "all"), models.Level1, models.SeverityHigh,
			"Set log_statement = ddl at minimum."),
		setting("3.13", "Ensure log entries use GMT timestamps", "log_timezone",
			catalog.OneOf("GMT", "UTC", "Etc/UTC"), models.Level2, models.SeverityLow,
			"Set log_timezone = 'GMT' so entries correlate across nodes."),
		setting("3.14", "Ensure the correct messages are written to the server log", "log_min_messages",
			catalog.OneOf("warning", "notice", "error", "log", "fatal", "panic"), models.Level1, models.SeverityMedium,
			"Set log_min_messages = warning."),
		setting("3.15", "Ensure statements causing errors are recorded", "log_min_error_statement",
			catalog.OneOf("error", "log", "fatal", "panic"), models.Level1, models.SeverityMedium,
			"Set log_min_error_statement = error."),
		setting("3.16", "Ensure debug_print_parse is disabled", "debug_print_parse",
			catalog.BoolIs(false), models.Level1, models.SeverityLow,
			"Set debug_print_parse = off."),
		setting("3.17", "Ensure debug_print_rewritten is disabled", "debug_print_rewritten",
			catalog.BoolIs(false), models.Level1, models.SeverityLow,
			"Set debug_print_rewritten = off."),
		setting("3.18", "Ensure debug_print_plan is disabled", "debug_print_plan",
			catalog.BoolIs(false), models.Level1, models.SeverityLow,
			"Set debug_print_plan = off."),
		setting("3.19", "Ensure debug_pretty_print is enabled", "debug_pretty_print",
			catalog.BoolIs(true), models.Level1, models.SeverityLow,
			"Set debug_pretty_print = on."),
		setting("3.20", "Ensure the pgaudit extension is loaded", "shared_preload_libraries",
			catalog.ContainsAny("pgaudit"), models.Level2, models.SeverityHigh,
			"Add pgaudit to shared_preload_libraries and configure pgaudit.log."),
	}
}
