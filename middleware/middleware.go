// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/danielhkuo/pollbook/db"
	"github.com/danielhkuo/pollbook/polls"
	"github.com/danielhkuo/pollbook/pool"
)

// Action is one menu entry.
type Action func(ctx context.Context) error

// WithLogging wraps an action with start/finish logging
func WithLogging(name string, next Action) Action {
	return func(ctx context.Context) error {
		start := time.Now()

		slog.Debug("action started", "action", name)

		err := next(ctx)

		duration := time.Since(start)
		if err != nil {
			slog.Info("action failed",
				"action", name,
				"duration_ms", duration.Milliseconds(),
				"error", err,
			)
			return err
		}

		slog.Info("action completed",
			"action", name,
			"duration_ms", duration.Milliseconds(),
		)
		return nil
	}
}

// WithErrorMessages tells the user about errors they can recover from and
// swallows them so the menu keeps running. Anything else is returned.
func WithErrorMessages(console *Console, next Action) Action {
	return func(ctx context.Context) error {
		err := next(ctx)
		if err == nil {
			return nil
		}

		message, ok := ErrorMessage(err)
		if !ok {
			return err
		}
		if errors.Is(err, db.ErrDataAccess) {
			slog.Error("database error", "error", err)
		}

		console.Error(message)
		return nil
	}
}

// ErrorMessage maps recoverable errors to what the user is shown.
func ErrorMessage(err error) (string, bool) {
	switch {
	case errors.Is(err, polls.ErrNotFound):
		return "No such poll or option.", true
	case errors.Is(err, ErrInvalidInput):
		return "Please enter a valid number.", true
	case errors.Is(err, pool.ErrPoolExhausted):
		return "The database is busy. Please try again.", true
	case errors.Is(err, db.ErrDataAccess):
		return "Something went wrong talking to the database.", true
	default:
		return "", false
	}
}
