// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package polls holds the poll and option entities. Each entity carries the
// pool it was loaded from and borrows a connection for every operation.
package polls
