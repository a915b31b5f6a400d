// Package packs wires the eight section packs into the released catalogue.
// The section order here is the benchmark's reporting order.
package packs

import (
	"github.com/yugabench/yugabench/internal/catalog"
	"github.com/yugabench/yugabench/internal/catalog/packs/accesscontrol"
	"github.com/yugabench/yugabench/internal/catalog/packs/connection"
	"github.com/yugabench/yugabench/internal/catalog/packs/filesystem"
	"github.com/yugabench/yugabench/internal/catalog/packs/installation"
	"github.com/yugabench/yugabench/internal/catalog/packs/logging"
	"github.com/yugabench/yugabench/internal/catalog/packs/settings"
	"github.com/yugabench/yugabench/internal/catalog/packs/special"
	"github.com/yugabench/yugabench/internal/catalog/packs/useraccess"
)

// Default builds and validates the full released catalogue.
func Default() (*catalog.Catalog, error) {
	return catalog.New(
		installation.New(),
		filesystem.New(),
		logging.New(),
		useraccess.New(),
		accesscontrol.New(),
		connection.New(),
		settings.New(),
		special.New(),
	)
}
