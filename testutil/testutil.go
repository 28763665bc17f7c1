// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/danielhkuo/pollbook/cliparse"
	"github.com/danielhkuo/pollbook/db"
	"github.com/danielhkuo/pollbook/pool"
)

// TestDBURL returns a connection string for a private in-memory SQLite
// database. Connections opened with the same URL share the database.
func TestDBURL() string {
	return "file:" + uuid.NewString() + "?mode=memory&cache=shared"
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Env:          "test",
		DatabaseURL:  TestDBURL(),
		DatabaseType: cliparse.DatabaseSQLite,
		PoolMin:      1,
		PoolMax:      4,
	}
}

// SetupTestPool opens a fresh database with the full schema. The pool is
// closed when the test ends.
func SetupTestPool(t *testing.T) *pool.Pool {
	t.Helper()

	ctx := context.Background()
	p, err := pool.New(ctx, GetTestConfig())
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { p.Close() })

	if err := p.WithTx(ctx, func(c db.Conn) error {
		return db.EnsureSchema(ctx, c)
	}); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return p
}

// CreateTestPoll inserts a poll and returns its ID
func CreateTestPoll(t *testing.T, p *pool.Pool, title, owner string) int64 {
	t.Helper()

	var id int64
	err := p.WithTx(context.Background(), func(c db.Conn) error {
		return c.QueryRowContext(context.Background(), `
			INSERT INTO polls (title, owner_username)
			VALUES (?, ?)
			RETURNING id
		`, title, owner).Scan(&id)
	})
	if err != nil {
		t.Fatalf("Failed to create test poll: %v", err)
	}

	return id
}

// AddTestOption adds an option to a poll and returns the option ID
func AddTestOption(t *testing.T, p *pool.Pool, pollID int64, text string) int64 {
	t.Helper()

	var id int64
	err := p.WithTx(context.Background(), func(c db.Conn) error {
		return c.QueryRowContext(context.Background(), `
			INSERT INTO options (option_text, poll_id)
			VALUES (?, ?)
			RETURNING id
		`, text, pollID).Scan(&id)
	})
	if err != nil {
		t.Fatalf("Failed to create test option: %v", err)
	}

	return id
}

// AddTestVotes records one ballot per username for the option
func AddTestVotes(t *testing.T, p *pool.Pool, optionID int64, usernames ...string) {
	t.Helper()

	err := p.WithTx(context.Background(), func(c db.Conn) error {
		for _, username := range usernames {
			_, err := c.ExecContext(context.Background(), `
				INSERT INTO votes (username, option_id)
				VALUES (?, ?)
			`, username, optionID)
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		t.Fatalf("Failed to create test votes: %v", err)
	}
}

// CountRows returns the number of rows in table
func CountRows(t *testing.T, p *pool.Pool, table string) int {
	t.Helper()

	var n int
	err := p.WithConn(context.Background(), func(c db.Conn) error {
		return c.QueryRowContext(context.Background(), "SELECT COUNT(*) FROM "+table).Scan(&n)
	})
	if err != nil {
		t.Fatalf("Failed to count %s: %v", table, err)
	}

	return n
}
