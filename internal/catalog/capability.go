package catalog

import (
	"context"
	"fmt"
	"strconv"

	"github.com/yugabench/yugabench/internal/connector"
)

// Capability is a declarative reference to one read-only connector operation.
// Observe resolves the capability against a live session and returns the
// observed value as a string for the predicate to grade.
type Capability interface {
	// Describe returns a human-readable form for listings and reports.
	Describe() string

	// Observe executes the capability through conn.
	Observe(ctx context.Context, conn connector.Connector) (string, error)
}

// Setting reads the effective value of a server configuration parameter
// (SHOW-style lookup through pg_settings).
type Setting struct {
	Name string
}

func (s Setting) Describe() string { return fmt.Sprintf("SHOW %s", s.Name) }

func (s Setting) Observe(ctx context.Context, conn connector.Connector) (string, error) {
	return conn.Setting(ctx, s.Name)
}

// Query runs a read-only query and observes the named column of the first row.
type Query struct {
	SQL    string
	Column string
}

func (q Query) Describe() string { return q.SQL }

func (q Query) Observe(ctx context.Context, conn connector.Connector) (string, error) {
	return conn.QueryValue(ctx, q.SQL, q.Column)
}

// RowCount runs a read-only query and observes the number of rows returned.
// Useful for "no role may have X" style controls where the rows themselves
// are the offending entries.
type RowCount struct {
	SQL string
}

func (r RowCount) Describe() string { return r.SQL }

func (r RowCount) Observe(ctx context.Context, conn connector.Connector) (string, error) {
	rows, err := conn.QueryRows(ctx, r.SQL)
	if err != nil {
		return "", err
	}
	return strconv.Itoa(len(rows)), nil
}
