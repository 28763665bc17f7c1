// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package results turns stored ballots into what the user sees.

# Percentages

	pcts, err := results.Percentages([]int{3, 1}) // [75 25]

A poll without votes yields ErrNoVotes instead of a division by zero.
Summarize does the same for a poll's options and its aggregate rows,
filling in zero for options the aggregate skipped.

# Random Winner

PickWinner draws from the list of individual ballots, not from distinct
usernames. Someone who voted for the winning option twice is twice as
likely to be picked:

	votes := []models.Vote{{Username: "alice"}, {Username: "alice"}, {Username: "bob"}}
	winner, err := results.PickWinner(votes, nil)
*/
package results
