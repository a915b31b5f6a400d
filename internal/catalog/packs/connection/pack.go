// Package connection provides the "Connection and Login" section pack.
package connection

import (
	"github.com/yugabench/yugabench/internal/catalog"
	"github.com/yugabench/yugabench/internal/models"
)

const Section = "Connection and Login"

// New returns the connection and login controls.
func New() []catalog.Control {
	return []catalog.Control{
		{
			ID:           "6.1",
			Title:        "Ensure TLS is enabled for client connections",
			Section:      Section,
			ProfileLevel: models.Level1,
			Automated:    true,
			Severity:     models.SeverityCritical,
			Description:  "Without TLS, credentials and data cross the network in clear text.",
			Remediation:  "Set ssl = on and provision server certificates on every node.",
			Checks: []catalog.CheckSpec{
				{
					Name:       "ssl is on",
					Capability: catalog.Setting{Name: "ssl"},
					Expect:     catalog.BoolIs(true),
				},
			},
		},
		{
			ID:           "6.2",
			Title:        "Ensure server certificate and key files are configured",
			Section:      Section,
			ProfileLevel: models.Level1,
			Automated:    true,
			Severity:     models.SeverityHigh,
			Remediation:  "Set ssl_cert_file and ssl_key_file to the node's certificate material.",
			Checks: []catalog.CheckSpec{
				{
					Name:       "ssl_cert_file is set",
					Capability: catalog.Setting{Name: "ssl_cert_file"},
					Expect:     catalog.NotEquals(""),
				},
				{
					Name:       "ssl_key_file is set",
					Capability: catalog.Setting{Name: "ssl_key_file"},
					Expect:     catalog.NotEquals(""),
				},
			},
		},
		{
			ID:           "6.3",
			Title:        "Ensure TLS 1.2 or newer is required",
			Section:      Section,
			ProfileLevel: models.Level2,
			Automated:    true,
			Severity:     models.SeverityHigh,
			Remediation:  "Set ssl_min_protocol_version = 'TLSv1.2' or higher.",
			Checks: []catalog.CheckSpec{
				{
					Name:       "ssl_min_protocol_version is TLSv1.2+",
					Capability: catalog.Setting{Name: "ssl_min_protocol_version"},
					Expect:     catalog.OneOf("TLSv1.2", "TLSv1.3"),
				},
			},
		},
		{
			ID:           "6.4",
			Title:        "Ensure the server does not listen on all interfaces",
			Section:      Section,
			ProfileLevel: models.Level1,
			Automated:    true,
			Severity:     models.SeverityHigh,
			Description:  "listen_addresses = '*' exposes the YSQL port on every interface.",
			Remediation:  "Restrict listen_addresses to the cluster-internal interface addresses.",
			Checks: []catalog.CheckSpec{
				{
					Name:       "listen_addresses is not a wildcard",
					Capability: catalog.Setting{Name: "listen_addresses"},
					Expect:     catalog.NotEquals("*"),
				},
			},
		},
		{
			ID:           "6.5",
			Title:        "Ensure the server does not use the PostgreSQL default port",
			Section:      Section,
			ProfileLevel: models.Level2,
			Automated:    true,
			Severity:     models.SeverityLow,
			Description:  "Port 5432 is the first port scanned for PostgreSQL-compatible services.",
			Remediation:  "Keep the YSQL default 5433 or a site-specific port.",
			Checks: []catalog.CheckSpec{
				{
					Name:       "port is not 5432",
					Capability: catalog.Setting{Name: "port"},
					Expect:     catalog.NotEquals("5432"),
				},
			},
		},
		{
			ID:           "6.6",
			Title:        "Ensure max_connections is bounded",
			Section:      Section,
			ProfileLevel: models.Level2,
			Automated:    true,
			Severity:     models.SeverityLow,
			Description:  "Very large connection limits make connection-flood exhaustion easier.",
			Remediation:  "Size max_connections to the workload; front heavy fan-out with a pooler.",
			Checks: []catalog.CheckSpec{
				{
					Name:       "max_connections is at most 1000",
					Capability: catalog.Setting{Name: "max_connections"},
					Expect:     catalog.IntAtMost(1000),
				},
			},
		},
		{
			ID:           "6.7",
			Title:        "Ensure connections are reserved for superuser access",
			Section:      Section,
			ProfileLevel: models.Level1,
			Automated:    true,
			Severity:     models.SeverityMedium,
			Description:  "Without reserved slots, a connection flood locks administrators out.",
			Remediation:  "Set superuser_reserved_connections to at least 3.",
			Checks: []catalog.CheckSpec{
				{
					Name:       "superuser_reserved_connections is at least 3",
					Capability: catalog.Setting{Name: "superuser_reserved_connections"},
					Expect:     catalog.IntAtLeast(3),
				},
			},
		},
		{
			ID:           "6.8",
			Title:        "Ensure host-based authentication rules are restrictive",
			Section:      Section,
			ProfileLevel: models.Level1,
			Automated:    false,
			Severity:     models.SeverityHigh,
			Description:  "ysql_hba.conf rules are not fully visible through the SQL surface.",
			Remediation:  "Review the effective HBA rules; no rule may use trust or 0.0.0.0/0 with password auth.",
		},
	}
}
