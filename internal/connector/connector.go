// Package connector owns the session against the audited cluster. It exposes
// the read-only capabilities checks need (settings, queries, cluster facts)
// without leaking transport details, and it owns the retry policy for
// transient failures. Checks never retry; a check that fails must stay failed.
package connector

import (
	"context"
	"fmt"
)

// Connector is the capability surface the catalogue's checks run against.
// All operations are read-only by contract.
type Connector interface {
	// Setting returns the effective value of a server configuration
	// parameter, as reported by pg_settings.
	Setting(ctx context.Context, name string) (string, error)

	// QueryValue runs a read-only query and returns the named column of the
	// first row, rendered as a string.
	QueryValue(ctx context.Context, sql, column string) (string, error)

	// QueryRows runs a read-only query and returns every row as a
	// column-name → string-value map.
	QueryRows(ctx context.Context, sql string) ([]map[string]string, error)

	// ClusterInfo returns identifying facts about the target (version,
	// current user, data directory, ...). Partial results are acceptable.
	ClusterInfo(ctx context.Context) (map[string]string, error)

	// Close releases the session. Safe to call multiple times.
	Close()
}

// Error reports a connector-level failure: the operation could not reach the
// target or complete after exhausting retries. The executor converts it to an
// ERROR outcome for the affected check; it is never fatal to a running audit.
type Error struct {
	Op    string
	Cause error
}

func (e *Error) Error() string {
	return fmt.Sprintf("connector: %s: %v", e.Op, e.Cause)
}

func (e *Error) Unwrap() error { return e.Cause }
