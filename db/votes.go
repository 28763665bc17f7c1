// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"

	"github.com/danielhkuo/pollbook/models"
)

// AddVote records one ballot. Repeat ballots from the same username are
// stored as separate rows.
func AddVote(ctx context.Context, c Conn, username string, optionID int64) error {
	_, err := c.ExecContext(ctx, `
		INSERT INTO votes (username, option_id)
		VALUES (?, ?)
	`, username, optionID)
	if err != nil {
		return dataErr("insert vote", err)
	}

	return nil
}

// ListVotesForOption returns an option's ballots in the order they were cast.
func ListVotesForOption(ctx context.Context, c Conn, optionID int64) ([]models.Vote, error) {
	rows, err := c.QueryContext(ctx, `
		SELECT id, username, option_id
		FROM votes
		WHERE option_id = ?
		ORDER BY id
	`, optionID)
	if err != nil {
		return nil, dataErr("query votes", err)
	}
	defer rows.Close()

	votes := []models.Vote{}
	for rows.Next() {
		var vote models.Vote
		if err := rows.Scan(&vote.ID, &vote.Username, &vote.OptionID); err != nil {
			return nil, dataErr("scan vote", err)
		}
		votes = append(votes, vote)
	}
	if err := rows.Err(); err != nil {
		return nil, dataErr("iterate votes", err)
	}

	return votes, nil
}
