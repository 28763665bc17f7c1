// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package polls

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/danielhkuo/pollbook/db"
	"github.com/danielhkuo/pollbook/models"
	"github.com/danielhkuo/pollbook/pool"
)

// Option is an option bound to the pool it is read from and written to.
type Option struct {
	models.Option
	pool *pool.Pool
}

// Votes fetches the option's ballots, oldest first.
func (o *Option) Votes(ctx context.Context) ([]models.Vote, error) {
	var votes []models.Vote
	err := o.pool.WithTx(ctx, func(c db.Conn) error {
		var err error
		votes, err = db.ListVotesForOption(ctx, c, o.ID)
		return err
	})
	return votes, err
}

// Vote casts one ballot for username. Usernames are not checked; the same
// user may vote any number of times.
func (o *Option) Vote(ctx context.Context, username string) error {
	err := o.pool.WithTx(ctx, func(c db.Conn) error {
		return db.AddVote(ctx, c, username, o.ID)
	})
	if err != nil {
		return err
	}

	slog.Info("vote cast", "poll_id", o.PollID, "option_id", o.ID, "username", username)
	return nil
}

// GetOption loads an option by ID.
func GetOption(ctx context.Context, p *pool.Pool, id int64) (*Option, error) {
	var (
		row   models.Option
		found bool
	)
	err := p.WithTx(ctx, func(c db.Conn) error {
		var err error
		row, found, err = db.GetOption(ctx, c, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("option %d: %w", id, ErrNotFound)
	}

	return &Option{Option: row, pool: p}, nil
}
