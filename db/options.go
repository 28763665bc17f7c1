// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"errors"

	"github.com/danielhkuo/pollbook/models"
)

// AddOption inserts an option for pollID and returns its generated ID.
// The poll must exist.
func AddOption(ctx context.Context, c Conn, text string, pollID int64) (int64, error) {
	var id int64
	err := c.QueryRowContext(ctx, `
		INSERT INTO options (option_text, poll_id)
		VALUES (?, ?)
		RETURNING id
	`, text, pollID).Scan(&id)
	if err != nil {
		return 0, dataErr("insert option", err)
	}

	return id, nil
}

// GetOption fetches one option. found is false when no option has the id.
func GetOption(ctx context.Context, c Conn, optionID int64) (opt models.Option, found bool, err error) {
	err = c.QueryRowContext(ctx, `
		SELECT id, option_text, poll_id
		FROM options
		WHERE id = ?
	`, optionID).Scan(&opt.ID, &opt.Text, &opt.PollID)

	if errors.Is(err, sql.ErrNoRows) {
		return models.Option{}, false, nil
	}
	if err != nil {
		return models.Option{}, false, dataErr("query option", err)
	}

	return opt, true, nil
}

// ListOptionsForPoll returns a poll's options in the order they were added.
func ListOptionsForPoll(ctx context.Context, c Conn, pollID int64) ([]models.Option, error) {
	rows, err := c.QueryContext(ctx, `
		SELECT id, option_text, poll_id
		FROM options
		WHERE poll_id = ?
		ORDER BY id
	`, pollID)
	if err != nil {
		return nil, dataErr("query options", err)
	}
	defer rows.Close()

	options := []models.Option{}
	for rows.Next() {
		var opt models.Option
		if err := rows.Scan(&opt.ID, &opt.Text, &opt.PollID); err != nil {
			return nil, dataErr("scan option", err)
		}
		options = append(options, opt)
	}
	if err := rows.Err(); err != nil {
		return nil, dataErr("iterate options", err)
	}

	return options, nil
}
