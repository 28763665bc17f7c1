// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package pool manages the bounded set of database connections.

# Opening

New reads the connection string, dialect and bounds from the config:

	p, err := pool.New(ctx, cfg)
	if errors.Is(err, cliparse.ErrMissingDatabaseURL) {
		// nothing to connect to
	}
	defer p.Close()

PoolMin connections are opened and pinged up front. PoolMax caps how many
may be checked out at the same time.

# Acquire and Release

	conn, err := p.Acquire(ctx)
	if errors.Is(err, pool.ErrPoolExhausted) {
		// all PoolMax connections are in use; retry later
	}
	defer p.Release(conn)

Acquire never waits for a connection to come back. The process is a
single-user CLI, so hitting the cap means a caller forgot to release.

# Scoped Use

WithConn and WithTx release the connection on every exit path. WithTx also
wraps the callback in one transaction that commits on success and rolls
back on error:

	err := p.WithTx(ctx, func(c db.Conn) error {
		_, err := db.CreatePoll(ctx, c, title, owner)
		return err
	})

Each data access call gets its own transaction. Nothing spans calls, so a
poll created by one call survives a failure in the next.

# Drivers

	sqlite   → modernc.org/sqlite (foreign keys switched on via DSN pragma)
	postgres → github.com/lib/pq
*/
package pool
