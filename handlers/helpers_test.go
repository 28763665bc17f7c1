// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"fmt"
	"strconv"
)

func itoa(id int64) string {
	return strconv.FormatInt(id, 10)
}

func fmtPoll(id int64, title, owner string) string {
	return fmt.Sprintf("%d: %s (created by %s)\n", id, title, owner)
}
