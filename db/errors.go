// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"errors"
	"fmt"
)

// ErrDataAccess marks every failure reported by the database: constraint
// violations, lost connections, bad SQL. The driver error stays in the chain.
var ErrDataAccess = errors.New("data access failure")

func dataErr(action string, err error) error {
	return fmt.Errorf("failed to %s: %w: %w", action, ErrDataAccess, err)
}
