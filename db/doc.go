// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db holds the schema and every SQL statement the application runs.

# Connections

Every function takes a Conn: a Querier (*sql.Conn, *sql.Tx or *sql.DB)
bound to a Dialect. Statements are written with ? placeholders and Bind
rewrites them to $1, $2, ... for PostgreSQL:

	c := db.Bind(tx, db.Postgres)
	id, err := db.CreatePoll(ctx, c, "Lunch?", "alice")

In the application the pool hands out bound connections, one transaction
per call.

# Schema Creation

EnsureSchema creates the three tables and their foreign-key indexes:

	if err := db.EnsureSchema(ctx, c); err != nil {
		log.Fatal(err)
	}

Safe to call on every start - uses IF NOT EXISTS for all tables and indexes.

# Tables

	polls   (id, title, owner_username)
	options (id, option_text, poll_id → polls.id)
	votes   (id, username, option_id → options.id)

There are no update or delete statements. votes.id only records cast order;
(username, option_id) is deliberately not unique.

# Lookups

Single-row reads return (value, found, err). A missing row is found=false
with a nil error; callers decide how to present it.

# Aggregates

AggregateVotesForPoll joins options to votes, so options with zero votes
are left out. Callers computing percentages must fill those in themselves.

# Errors

Any failure coming back from the driver is wrapped with ErrDataAccess:

	if errors.Is(err, db.ErrDataAccess) { ... }
*/
package db
