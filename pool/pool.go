// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package pool

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	_ "github.com/lib/pq"
	"golang.org/x/sync/semaphore"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/pollbook/cliparse"
	"github.com/danielhkuo/pollbook/db"
)

// ErrPoolExhausted is returned by Acquire when every connection is in use.
// Callers may retry once a connection has been released.
var ErrPoolExhausted = errors.New("connection pool exhausted")

// ErrNotCheckedOut is returned by Release for a connection that is not
// currently held, such as one already released.
var ErrNotCheckedOut = errors.New("connection not checked out from pool")

// Pool hands out at most max connections at a time.
type Pool struct {
	db      *sql.DB
	dialect db.Dialect
	sem     *semaphore.Weighted
	min     int
	max     int

	mu  sync.Mutex
	out map[*sql.Conn]struct{}
}

// New opens the database described by cfg and warms PoolMin connections.
// A missing connection string fails with cliparse.ErrMissingDatabaseURL.
func New(ctx context.Context, cfg cliparse.Config) (*Pool, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	dialect, err := db.ParseDialect(cfg.DatabaseType)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", cliparse.ErrInvalidConfig, err)
	}

	return Open(ctx, dialect, cfg.DatabaseURL, cfg.PoolMin, cfg.PoolMax)
}

// Open is New without the config layer.
func Open(ctx context.Context, dialect db.Dialect, dsn string, min, max int) (*Pool, error) {
	if max < 1 || min < 0 || min > max {
		return nil, fmt.Errorf("%w: invalid pool bounds min=%d max=%d", cliparse.ErrInvalidConfig, min, max)
	}

	conn, err := sql.Open(dialect.DriverName(), withDriverDefaults(dialect, dsn))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	conn.SetMaxOpenConns(max)
	conn.SetMaxIdleConns(max)

	p := &Pool{
		db:      conn,
		dialect: dialect,
		sem:     semaphore.NewWeighted(int64(max)),
		min:     min,
		max:     max,
		out:     make(map[*sql.Conn]struct{}, max),
	}

	if err := p.warm(ctx); err != nil {
		conn.Close()
		return nil, err
	}

	slog.Debug("connection pool ready", "dialect", dialect, "min", min, "max", max)

	return p, nil
}

// warm opens min connections at once so they sit idle in the pool.
func (p *Pool) warm(ctx context.Context) error {
	if p.min == 0 {
		if err := p.db.PingContext(ctx); err != nil {
			return fmt.Errorf("database ping failed: %w", err)
		}
		return nil
	}

	conns := make([]*sql.Conn, 0, p.min)
	defer func() {
		for _, c := range conns {
			c.Close()
		}
	}()

	for i := 0; i < p.min; i++ {
		c, err := p.db.Conn(ctx)
		if err != nil {
			return fmt.Errorf("database connection failed: %w", err)
		}
		conns = append(conns, c)

		if err := c.PingContext(ctx); err != nil {
			return fmt.Errorf("database ping failed: %w", err)
		}
	}

	return nil
}

// Dialect reports the SQL dialect of the underlying database.
func (p *Pool) Dialect() db.Dialect {
	return p.dialect
}

// Acquire checks out a connection without waiting. It fails with
// ErrPoolExhausted when max connections are already checked out.
// Every successful Acquire must be paired with exactly one Release.
func (p *Pool) Acquire(ctx context.Context) (*sql.Conn, error) {
	if !p.sem.TryAcquire(1) {
		return nil, ErrPoolExhausted
	}

	conn, err := p.db.Conn(ctx)
	if err != nil {
		p.sem.Release(1)
		return nil, fmt.Errorf("%w: failed to acquire connection: %w", db.ErrDataAccess, err)
	}

	p.mu.Lock()
	p.out[conn] = struct{}{}
	p.mu.Unlock()

	return conn, nil
}

// Release returns conn to the pool. Releasing a connection twice fails
// with ErrNotCheckedOut and leaves the pool's bound untouched.
func (p *Pool) Release(conn *sql.Conn) error {
	p.mu.Lock()
	_, held := p.out[conn]
	delete(p.out, conn)
	p.mu.Unlock()
	if !held {
		return ErrNotCheckedOut
	}

	defer p.sem.Release(1)
	if err := conn.Close(); err != nil && !errors.Is(err, sql.ErrConnDone) {
		return fmt.Errorf("failed to release connection: %w", err)
	}
	return nil
}

// WithConn runs fn on a pooled connection and releases it on every path,
// panics included.
func (p *Pool) WithConn(ctx context.Context, fn func(db.Conn) error) error {
	conn, err := p.Acquire(ctx)
	if err != nil {
		return err
	}
	defer p.Release(conn)

	return fn(db.Bind(conn, p.dialect))
}

// WithTx runs fn inside a single transaction on a pooled connection.
// The transaction commits when fn returns nil and rolls back otherwise.
func (p *Pool) WithTx(ctx context.Context, fn func(db.Conn) error) error {
	conn, err := p.Acquire(ctx)
	if err != nil {
		return err
	}
	defer p.Release(conn)

	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: failed to begin transaction: %w", db.ErrDataAccess, err)
	}
	defer tx.Rollback()

	if err := fn(db.Bind(tx, p.dialect)); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: failed to commit transaction: %w", db.ErrDataAccess, err)
	}

	return nil
}

// Stats exposes the database/sql pool statistics.
func (p *Pool) Stats() sql.DBStats {
	return p.db.Stats()
}

// Close closes every connection. Connections still checked out are closed
// when they are released.
func (p *Pool) Close() error {
	return p.db.Close()
}

// withDriverDefaults turns on SQLite foreign key enforcement, which is off
// per connection unless requested.
func withDriverDefaults(dialect db.Dialect, dsn string) string {
	if dialect != db.SQLite || strings.Contains(dsn, "foreign_keys") {
		return dsn
	}

	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + "_pragma=foreign_keys(1)"
}
