// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - DatabaseURL: connection string (required before opening the pool)
  - DatabaseType: "sqlite" or "postgres" (default: sqlite)
  - PoolMin: connections opened at startup (default: 1)
  - PoolMax: connections in use at once (default: 5)
  - Env: logging environment (default: local)

# CLI Flags

	-d          Database URL
	-t          Database type
	-pool-min   Connections opened at startup
	-pool-max   Maximum connections in use at once
	-env        Environment
	-c          YAML config file
	-e          .env file (default: .env)

# Environment Variables

Flags fall back to environment variables:

	DATABASE_URL  → -d
	DATABASE_TYPE → -t
	DB_POOL_MIN   → -pool-min
	DB_POOL_MAX   → -pool-max
	APP_ENV       → -env

The .env file is loaded first and never overwrites variables that are
already set. When -c is given the YAML file supplies values the
environment does not.

# Validation

ParseFlags rejects unknown database types and impossible pool bounds.
A missing database URL is left for Validate, so the caller can prompt for
it first:

	if cfg.DatabaseURL == "" && interactive {
		cfg.DatabaseURL = prompt()
	}
	if err := cfg.Validate(); err != nil {
		// errors.Is(err, cliparse.ErrMissingDatabaseURL)
	}

All configuration errors wrap ErrInvalidConfig.
*/
package cliparse
