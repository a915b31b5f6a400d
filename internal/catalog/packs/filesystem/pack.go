// Package filesystem provides the "Directory and File Permissions" section pack.
package filesystem

import (
	"github.com/yugabench/yugabench/internal/catalog"
	"github.com/yugabench/yugabench/internal/models"
)

const Section = "Directory and File Permissions"

// New returns the directory and file permission controls. Most of these need
// OS-level access on the database hosts, so they are manual; the engine still
// reports them for audit completeness.
func New() []catalog.Control {
	return []catalog.Control{
		{
			ID:           "2.1",
			Title:        "Ensure the data directory is owned by the service account with mode 0700",
			Section:      Section,
			ProfileLevel: models.Level1,
			Automated:    false,
			Severity:     models.SeverityHigh,
			Description:  "The directory reported by data_directory must not be readable by other users.",
			Remediation:  "chown the directory to the service account and chmod 0700.",
		},
		{
			ID:           "2.2",
			Title:        "Ensure server log files are created with restrictive permissions",
			Section:      Section,
			ProfileLevel: models.Level1,
			Automated:    true,
			Severity:     models.SeverityMedium,
			Description:  "log_file_mode controls the creation mode of server log files.",
			Remediation:  "Set log_file_mode = 0600 and reload the configuration.",
			Checks: []catalog.CheckSpec{
				{
					Name:       "log_file_mode is 0600",
					Capability: catalog.Setting{Name: "log_file_mode"},
					Expect:     catalog.OneOf("0600", "600"),
				},
			},
		},
		{
			ID:           "2.3",
			Title:        "Ensure configuration files are readable only by the service account",
			Section:      Section,
			ProfileLevel: models.Level1,
			Automated:    false,
			Severity:     models.SeverityMedium,
			Description:  "The file reported by config_file, and any included files, should be mode 0600.",
			Remediation:  "chmod 0600 the configuration files on every node.",
		},
		{
			ID:           "2.4",
			Title:        "Ensure backup destinations are not world-accessible",
			Section:      Section,
			ProfileLevel: models.Level2,
			Automated:    false,
			Severity:     models.SeverityHigh,
			Description:  "Backup artifacts contain full data copies and must be access-controlled.",
			Remediation:  "Restrict backup buckets/directories to the backup service identity.",
		},
	}
}
