package connector

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"
)

// Params describes how to reach the audited cluster.
type Params struct {
	Host           string
	Port           int
	Database       string
	User           string
	Password       string
	ConnectTimeout time.Duration
}

// retry policy for transient connector-level failures. Grading logic is never
// retried; only the transport operation is.
const (
	maxAttempts  = 3
	retryBackoff = 250 * time.Millisecond
)

// PG is the production Connector for YugabyteDB's YSQL interface (PostgreSQL
// wire protocol), built on a pgx pool. The session is established lazily on
// first use and held for the run's duration. The pool forces
// default_transaction_read_only so no check can mutate cluster state.
type PG struct {
	params Params
	log    *logrus.Entry

	mu   sync.Mutex
	pool *pgxpool.Pool
	info map[string]string
}

// NewPG returns an unconnected PG connector. No network traffic happens until
// Connect or the first capability call.
func NewPG(params Params, log *logrus.Entry) *PG {
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	return &PG{params: params, log: log}
}

// Connect establishes and pings the session. Called eagerly by the CLI so an
// unreachable target aborts the run with a clear diagnostic before any check
// runs; capability calls also connect lazily if needed.
func (c *PG) Connect(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, err := c.getPool(ctx)
	return err
}

// getPool returns the live pool, creating it on first use. Callers must hold mu.
func (c *PG) getPool(ctx context.Context) (*pgxpool.Pool, error) {
	if c.pool != nil {
		return c.pool, nil
	}

	cfg, err := c.poolConfig()
	if err != nil {
		return nil, err
	}

	var pool *pgxpool.Pool
	err = c.withRetry(ctx, "connect", func() error {
		p, err := pgxpool.NewWithConfig(ctx, cfg)
		if err != nil {
			return err
		}
		if err := p.Ping(ctx); err != nil {
			p.Close()
			return err
		}
		pool = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	c.pool = pool
	c.log.WithFields(logrus.Fields{
		"host": c.params.Host,
		"port": c.params.Port,
		"db":   c.params.Database,
	}).Debug("session established")
	return c.pool, nil
}

// poolConfig builds the pool configuration from the target params. Credentials
// are set on the parsed config, not in the DSN: URL escaping rules must never
// alter a user name or password.
func (c *PG) poolConfig() (*pgxpool.Config, error) {
	timeout := c.params.ConnectTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	dsn := fmt.Sprintf(
		"postgres://%s:%d/%s?connect_timeout=%d",
		c.params.Host,
		c.params.Port,
		url.PathEscape(c.params.Database),
		int(timeout.Seconds()),
	)
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, &Error{Op: "parse connection config", Cause: err}
	}
	cfg.ConnConfig.User = c.params.User
	cfg.ConnConfig.Password = c.params.Password
	cfg.MaxConns = 4
	cfg.HealthCheckPeriod = 30 * time.Second
	// Read-only contract: no statement issued through this pool may write.
	cfg.ConnConfig.RuntimeParams["default_transaction_read_only"] = "on"
	return cfg, nil
}

// withRetry runs op up to maxAttempts times with exponential backoff, retrying
// only transient transport failures. The final error is wrapped in *Error.
func (c *PG) withRetry(ctx context.Context, opName string, op func() error) error {
	backoff := retryBackoff
	var err error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		err = op()
		if err == nil {
			return nil
		}
		if !transient(err) || attempt == maxAttempts {
			break
		}
		c.log.WithFields(logrus.Fields{
			"op":      opName,
			"attempt": attempt,
			"error":   err.Error(),
		}).Warn("transient connector failure, retrying")
		select {
		case <-ctx.Done():
			return &Error{Op: opName, Cause: ctx.Err()}
		case <-time.After(backoff):
		}
		backoff *= 2
	}
	return &Error{Op: opName, Cause: err}
}

// transient reports whether err is worth another attempt: network timeouts and
// connection-level failures where pgx guarantees the statement never ran.
func transient(err error) bool {
	return pgconn.Timeout(err) || pgconn.SafeToRetry(err)
}

// Setting implements Connector via pg_settings; it covers both PostgreSQL
// parameters and YSQL-surfaced flags.
func (c *PG) Setting(ctx context.Context, name string) (string, error) {
	c.mu.Lock()
	pool, err := c.getPool(ctx)
	c.mu.Unlock()
	if err != nil {
		return "", err
	}

	var value string
	err = c.withRetry(ctx, fmt.Sprintf("read setting %s", name), func() error {
		return pool.QueryRow(ctx,
			`SELECT setting FROM pg_settings WHERE name = $1`, name,
		).Scan(&value)
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", &Error{Op: fmt.Sprintf("read setting %s", name), Cause: fmt.Errorf("unknown parameter")}
		}
		return "", err
	}
	return value, nil
}

// QueryValue implements Connector.
func (c *PG) QueryValue(ctx context.Context, sql, column string) (string, error) {
	rows, err := c.QueryRows(ctx, sql)
	if err != nil {
		return "", err
	}
	if len(rows) == 0 {
		return "", &Error{Op: "query value", Cause: fmt.Errorf("query returned no rows")}
	}
	v, ok := rows[0][column]
	if !ok {
		return "", &Error{Op: "query value", Cause: fmt.Errorf("column %q not in result", column)}
	}
	return v, nil
}

// QueryRows implements Connector.
func (c *PG) QueryRows(ctx context.Context, sql string) ([]map[string]string, error) {
	c.mu.Lock()
	pool, err := c.getPool(ctx)
	c.mu.Unlock()
	if err != nil {
		return nil, err
	}

	var out []map[string]string
	err = c.withRetry(ctx, "query", func() error {
		rows, err := pool.Query(ctx, sql)
		if err != nil {
			return err
		}
		defer rows.Close()

		fields := rows.FieldDescriptions()
		out = out[:0]
		for rows.Next() {
			values, err := rows.Values()
			if err != nil {
				return err
			}
			row := make(map[string]string, len(fields))
			for i, fd := range fields {
				row[fd.Name] = renderValue(values[i])
			}
			out = append(out, row)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// renderValue converts a pgx column value to its string form for grading.
func renderValue(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case []byte:
		return string(x)
	default:
		return fmt.Sprint(x)
	}
}

// ClusterInfo implements Connector. Facts are gathered once and cached.
// Individual lookup failures degrade to partial info rather than failing the
// whole call.
func (c *PG) ClusterInfo(ctx context.Context) (map[string]string, error) {
	c.mu.Lock()
	cached := c.info
	c.mu.Unlock()
	if cached != nil {
		return cached, nil
	}

	info := map[string]string{
		"host":     c.params.Host,
		"port":     fmt.Sprint(c.params.Port),
		"database": c.params.Database,
		"user":     c.params.User,
	}

	if v, err := c.QueryValue(ctx, `SELECT version() AS version`, "version"); err == nil {
		info["version"] = v
	} else {
		// The very first lookup doubles as the reachability probe: if it
		// fails with a connector error the caller needs to know.
		return nil, err
	}
	if v, err := c.QueryValue(ctx, `SELECT current_user AS u`, "u"); err == nil {
		info["current_user"] = v
	}
	for _, name := range []string{"data_directory", "config_file", "log_directory"} {
		if v, err := c.Setting(ctx, name); err == nil {
			info[name] = v
		}
	}
	if v, err := c.QueryValue(ctx,
		`SELECT count(*) AS n FROM pg_stat_activity WHERE state = 'active'`, "n"); err == nil {
		info["active_connections"] = v
	}

	c.mu.Lock()
	c.info = info
	c.mu.Unlock()
	return info, nil
}

// Close implements Connector.
func (c *PG) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.pool != nil {
		c.pool.Close()
		c.pool = nil
	}
}
