// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"errors"

	"github.com/danielhkuo/pollbook/models"
)

// CreatePoll inserts a poll and returns its generated ID.
func CreatePoll(ctx context.Context, c Conn, title, owner string) (int64, error) {
	var id int64
	err := c.QueryRowContext(ctx, `
		INSERT INTO polls (title, owner_username)
		VALUES (?, ?)
		RETURNING id
	`, title, owner).Scan(&id)
	if err != nil {
		return 0, dataErr("insert poll", err)
	}

	return id, nil
}

// GetPoll returns the poll with the given ID. found is false when no row
// matches; that is not an error.
func GetPoll(ctx context.Context, c Conn, pollID int64) (poll models.Poll, found bool, err error) {
	err = c.QueryRowContext(ctx, `
		SELECT id, title, owner_username
		FROM polls
		WHERE id = ?
	`, pollID).Scan(&poll.ID, &poll.Title, &poll.Owner)

	if errors.Is(err, sql.ErrNoRows) {
		return models.Poll{}, false, nil
	}
	if err != nil {
		return models.Poll{}, false, dataErr("query poll", err)
	}

	return poll, true, nil
}

// ListPolls returns every poll in creation order.
func ListPolls(ctx context.Context, c Conn) ([]models.Poll, error) {
	rows, err := c.QueryContext(ctx, `
		SELECT id, title, owner_username
		FROM polls
		ORDER BY id
	`)
	if err != nil {
		return nil, dataErr("query polls", err)
	}
	defer rows.Close()

	polls := []models.Poll{}
	for rows.Next() {
		var poll models.Poll
		if err := rows.Scan(&poll.ID, &poll.Title, &poll.Owner); err != nil {
			return nil, dataErr("scan poll", err)
		}
		polls = append(polls, poll)
	}
	if err := rows.Err(); err != nil {
		return nil, dataErr("iterate polls", err)
	}

	return polls, nil
}

// GetLatestPoll returns the poll with the highest ID.
func GetLatestPoll(ctx context.Context, c Conn) (poll models.Poll, found bool, err error) {
	err = c.QueryRowContext(ctx, `
		SELECT id, title, owner_username
		FROM polls
		ORDER BY id DESC
		LIMIT 1
	`).Scan(&poll.ID, &poll.Title, &poll.Owner)

	if errors.Is(err, sql.ErrNoRows) {
		return models.Poll{}, false, nil
	}
	if err != nil {
		return models.Poll{}, false, dataErr("query latest poll", err)
	}

	return poll, true, nil
}

// AggregateVotesForPoll counts ballots per option. Options nobody voted
// for are not returned, so the counts only sum to the poll's total.
func AggregateVotesForPoll(ctx context.Context, c Conn, pollID int64) ([]models.OptionTally, error) {
	rows, err := c.QueryContext(ctx, `
		SELECT o.id, o.option_text, COUNT(v.id)
		FROM options o
		JOIN votes v ON v.option_id = o.id
		WHERE o.poll_id = ?
		GROUP BY o.id, o.option_text
		ORDER BY o.id
	`, pollID)
	if err != nil {
		return nil, dataErr("aggregate votes", err)
	}
	defer rows.Close()

	tallies := []models.OptionTally{}
	for rows.Next() {
		var tally models.OptionTally
		if err := rows.Scan(&tally.OptionID, &tally.Text, &tally.Votes); err != nil {
			return nil, dataErr("scan tally", err)
		}
		tallies = append(tallies, tally)
	}
	if err := rows.Err(); err != nil {
		return nil, dataErr("iterate tallies", err)
	}

	return tallies, nil
}
