// Package installation provides the "Installation and Patches" section pack.
//
// Convention: every section pack lives in internal/catalog/packs/<section>
// and exposes a single New() func returning []catalog.Control. New controls
// for this section are added to the slice returned by New(); the executor and
// aggregator never change.
package installation

import (
	"github.com/yugabench/yugabench/internal/catalog"
	"github.com/yugabench/yugabench/internal/models"
)

// Section is the display name used in reports and section filters.
const Section = "Installation and Patches"

// New returns the installation and patches controls.
func New() []catalog.Control {
	return []catalog.Control{
		{
			ID:           "1.1",
			Title:        "Ensure packages are obtained from an authorized repository",
			Section:      Section,
			ProfileLevel: models.Level1,
			Automated:    false,
			Severity:     models.SeverityHigh,
			Description:  "YugabyteDB packages must come from the vendor's official distribution channel.",
			Rationale:    "Packages from unofficial sources may be tampered with or outdated.",
			Remediation:  "Reinstall from releases published at download.yugabyte.com and verify checksums.",
		},
		{
			ID:           "1.2",
			Title:        "Ensure systemd service files are enabled for all cluster processes",
			Section:      Section,
			ProfileLevel: models.Level1,
			Automated:    false,
			Severity:     models.SeverityMedium,
			Description:  "yb-master and yb-tserver should run under systemd supervision.",
			Remediation:  "Install and enable the vendor-provided unit files on every node.",
		},
		{
			ID:           "1.3",
			Title:        "Ensure the data cluster initialized successfully",
			Section:      Section,
			ProfileLevel: models.Level1,
			Automated:    true,
			Severity:     models.SeverityHigh,
			Description:  "The YSQL layer must report a YugabyteDB build and expose its system catalogs.",
			Remediation:  "Re-run cluster initialization and verify node logs for startup errors.",
			Checks: []catalog.CheckSpec{
				{
					Name:       "server reports a YugabyteDB build",
					Capability: catalog.Query{SQL: `SELECT version() AS version`, Column: "version"},
					Expect:     catalog.ContainsAny("YB", "yugabyte"),
				},
				{
					Name:       "system catalog is readable",
					Capability: catalog.Query{SQL: `SELECT count(*) AS n FROM pg_settings`, Column: "n"},
					Expect:     catalog.IntAtLeast(1),
				},
			},
		},
		{
			ID:           "1.4",
			Title:        "Ensure the latest supported release with security fixes is installed",
			Section:      Section,
			ProfileLevel: models.Level1,
			Automated:    false,
			Severity:     models.SeverityHigh,
			Description:  "Running builds must carry current security patches.",
			Remediation:  "Compare the running version against the vendor's supported-release matrix and upgrade.",
		},
	}
}
