// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines the named-field records shared by every layer.

# Entities

Rows as they are stored:

  - Poll: id, title, owner
  - Option: id, text, poll_id
  - Vote: id, username, option_id

Votes are individual ballots. Nothing deduplicates them per username, so a
user who votes twice for the same option owns two rows.

# Derived Types

  - OptionTally: option_id, text, votes (one row of the per-poll aggregate)
  - OptionResult: option, votes, percentage (presentation row)

The aggregate only carries options with at least one vote. OptionResult is
built from the full option list so zero-vote options show up with 0%.
*/
package models
