// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

// Poll is a named decision with an owner. ID is zero until the poll is saved.
type Poll struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
	Owner string `json:"owner"`
}

// Option is one selectable choice within a poll.
type Option struct {
	ID     int64  `json:"id"`
	Text   string `json:"text"`
	PollID int64  `json:"poll_id"`
}

// Vote is a single ballot. A username may cast any number of them.
type Vote struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	OptionID int64  `json:"option_id"`
}

// OptionTally is one row of a poll's vote aggregate.
type OptionTally struct {
	OptionID int64  `json:"option_id"`
	Text     string `json:"text"`
	Votes    int    `json:"votes"`
}

// OptionResult is an option with its share of the poll's ballots.
type OptionResult struct {
	Option     Option  `json:"option"`
	Votes      int     `json:"votes"`
	Percentage float64 `json:"percentage"`
}
