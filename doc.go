// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the pollbook command-line app.

pollbook lets users create polls, add options, vote, see how the votes
split, and draw a random winner from the people who voted for an option.

# Starting

The app needs a database connection string from a flag, the environment,
a .env file or, on a terminal, an interactive prompt:

	DATABASE_URL=file:polls.db go run .

Or with flags:

	go run . -t postgres -d "postgres://..."

Without a connection string and without a terminal to ask on, the app
exits with a configuration error.

# Configuration

  - DATABASE_URL (-d): connection string
  - DATABASE_TYPE (-t): sqlite (default) or postgres
  - DB_POOL_MIN / DB_POOL_MAX (-pool-min / -pool-max): pool bounds
  - APP_ENV (-env): local (pretty logs) or dev/prod (JSON logs)

# Architecture

  - cliparse: configuration parsing
  - logger: slog setup
  - pool: bounded connection pool, one transaction per call
  - db: schema and SQL statements
  - models: Poll, Option, Vote and result rows
  - polls: Poll and Option domain objects
  - results: percentages and random winner
  - middleware: console I/O, logging and error messages for menu actions
  - handlers: menu actions
  - router: menu loop

See package documentation for each component.
*/
package main
