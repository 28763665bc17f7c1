// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
)

// EnsureSchema creates the polls, options and votes tables.
// Safe to call multiple times - uses IF NOT EXISTS.
func EnsureSchema(ctx context.Context, c Conn) error {
	statements := postgresSchema
	if c.Dialect() == SQLite {
		statements = sqliteSchema
	}

	for _, stmt := range statements {
		if _, err := c.ExecContext(ctx, stmt); err != nil {
			return dataErr("create schema", err)
		}
	}

	return nil
}

var postgresSchema = []string{
	`CREATE TABLE IF NOT EXISTS polls (
		id SERIAL PRIMARY KEY,
		title TEXT NOT NULL,
		owner_username TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS options (
		id SERIAL PRIMARY KEY,
		option_text TEXT NOT NULL,
		poll_id INTEGER NOT NULL REFERENCES polls(id)
	)`,
	`CREATE TABLE IF NOT EXISTS votes (
		id SERIAL PRIMARY KEY,
		username TEXT NOT NULL,
		option_id INTEGER NOT NULL REFERENCES options(id)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_options_poll_id ON options(poll_id)`,
	`CREATE INDEX IF NOT EXISTS idx_votes_option_id ON votes(option_id)`,
}

var sqliteSchema = []string{
	`CREATE TABLE IF NOT EXISTS polls (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		title TEXT NOT NULL,
		owner_username TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS options (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		option_text TEXT NOT NULL,
		poll_id INTEGER NOT NULL REFERENCES polls(id)
	)`,
	`CREATE TABLE IF NOT EXISTS votes (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		username TEXT NOT NULL,
		option_id INTEGER NOT NULL REFERENCES options(id)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_options_poll_id ON options(poll_id)`,
	`CREATE INDEX IF NOT EXISTS idx_votes_option_id ON votes(option_id)`,
}
