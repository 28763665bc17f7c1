// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

const (
	DatabaseSQLite   = "sqlite"
	DatabasePostgres = "postgres"
)

var (
	ErrInvalidConfig      = errors.New("invalid configuration")
	ErrMissingDatabaseURL = fmt.Errorf("%w: database URL required (use -d or DATABASE_URL env)", ErrInvalidConfig)
)

type Config struct {
	Env          string `yaml:"env" env:"APP_ENV" env-default:"local"`
	DatabaseURL  string `yaml:"database_url" env:"DATABASE_URL"`
	DatabaseType string `yaml:"database_type" env:"DATABASE_TYPE" env-default:"sqlite"`
	PoolMin      int    `yaml:"pool_min" env:"DB_POOL_MIN" env-default:"1"`
	PoolMax      int    `yaml:"pool_max" env:"DB_POOL_MAX" env-default:"5"`

	// Flag-only settings
	ConfigPath string `yaml:"-"`
	EnvFile    string `yaml:"-"`
}

// ParseFlags reads flags, the .env file, the environment and an optional
// YAML file. Flags win over everything else.
//
// A missing database URL is not an error here; the caller may still prompt
// for it. Validate reports it.
func ParseFlags(args []string) (Config, error) {
	var flags Config

	fs := flag.NewFlagSet("pollbook", flag.ContinueOnError)

	fs.StringVar(&flags.DatabaseURL, "d", "", "Database URL")
	fs.StringVar(&flags.DatabaseType, "t", "", "Database type (sqlite or postgres)")
	fs.IntVar(&flags.PoolMin, "pool-min", 0, "Connections opened at startup")
	fs.IntVar(&flags.PoolMax, "pool-max", 0, "Maximum connections in use at once")
	fs.StringVar(&flags.Env, "env", "", "Environment (local, dev, prod)")
	fs.StringVar(&flags.ConfigPath, "c", "", "Path to a YAML config file")
	fs.StringVar(&flags.EnvFile, "e", ".env", "Path to a .env file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if err := LoadDotEnv(flags.EnvFile); err != nil {
		return Config{}, fmt.Errorf("failed to load %s: %w", flags.EnvFile, err)
	}

	var cfg Config
	if flags.ConfigPath != "" {
		if err := cleanenv.ReadConfig(flags.ConfigPath, &cfg); err != nil {
			return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
		}
	} else {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
		}
	}
	cfg.ConfigPath = flags.ConfigPath
	cfg.EnvFile = flags.EnvFile

	// CLI overrides env
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "d":
			cfg.DatabaseURL = flags.DatabaseURL
		case "t":
			cfg.DatabaseType = flags.DatabaseType
		case "pool-min":
			cfg.PoolMin = flags.PoolMin
		case "pool-max":
			cfg.PoolMax = flags.PoolMax
		case "env":
			cfg.Env = flags.Env
		}
	})

	if err := cfg.validateSettings(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// LoadDotEnv loads environment variables from a .env file if present.
// Existing environment variables are not overwritten.
func LoadDotEnv(path string) error {
	if path == "" {
		return nil
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	return godotenv.Load(path)
}

// Validate checks that the config can be used to open a database.
func (c Config) Validate() error {
	if c.DatabaseURL == "" {
		return ErrMissingDatabaseURL
	}
	return c.validateSettings()
}

func (c Config) validateSettings() error {
	switch c.DatabaseType {
	case DatabaseSQLite, DatabasePostgres:
	default:
		return fmt.Errorf("%w: unsupported database type %q", ErrInvalidConfig, c.DatabaseType)
	}
	if c.PoolMax < 1 {
		return fmt.Errorf("%w: pool max must be at least 1, got %d", ErrInvalidConfig, c.PoolMax)
	}
	if c.PoolMin < 0 || c.PoolMin > c.PoolMax {
		return fmt.Errorf("%w: pool min must be between 0 and %d, got %d", ErrInvalidConfig, c.PoolMax, c.PoolMin)
	}
	return nil
}
