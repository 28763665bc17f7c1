// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package polls

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/danielhkuo/pollbook/db"
	"github.com/danielhkuo/pollbook/models"
	"github.com/danielhkuo/pollbook/pool"
	"github.com/danielhkuo/pollbook/results"
)

var (
	ErrNotFound = errors.New("not found")
	ErrUnsaved  = errors.New("poll has not been saved")
)

// Poll is a poll bound to the pool it is read from and written to.
type Poll struct {
	models.Poll
	pool *pool.Pool
}

// New returns an unsaved poll. Call Save to persist it.
func New(p *pool.Pool, title, owner string) *Poll {
	return &Poll{
		Poll: models.Poll{Title: title, Owner: owner},
		pool: p,
	}
}

// Saved reports whether the poll has an ID.
func (p *Poll) Saved() bool {
	return p.ID != 0
}

// Save inserts the poll and sets its ID. Calling Save again inserts a
// second row; nothing guards against it.
func (p *Poll) Save(ctx context.Context) error {
	err := p.pool.WithTx(ctx, func(c db.Conn) error {
		id, err := db.CreatePoll(ctx, c, p.Title, p.Owner)
		if err != nil {
			return err
		}
		p.ID = id
		return nil
	})
	if err != nil {
		return err
	}

	slog.Info("poll created", "poll_id", p.ID, "owner", p.Owner)
	return nil
}

// AddOption persists a new option for this poll.
func (p *Poll) AddOption(ctx context.Context, text string) (*Option, error) {
	if !p.Saved() {
		return nil, ErrUnsaved
	}

	opt := &Option{
		Option: models.Option{Text: text, PollID: p.ID},
		pool:   p.pool,
	}
	err := p.pool.WithTx(ctx, func(c db.Conn) error {
		id, err := db.AddOption(ctx, c, text, p.ID)
		if err != nil {
			return err
		}
		opt.ID = id
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("option added", "poll_id", p.ID, "option_id", opt.ID)
	return opt, nil
}

// Options fetches the poll's options from the database on every call.
func (p *Poll) Options(ctx context.Context) ([]*Option, error) {
	var rows []models.Option
	err := p.pool.WithTx(ctx, func(c db.Conn) error {
		var err error
		rows, err = db.ListOptionsForPoll(ctx, c, p.ID)
		return err
	})
	if err != nil {
		return nil, err
	}

	options := make([]*Option, 0, len(rows))
	for _, row := range rows {
		options = append(options, &Option{Option: row, pool: p.pool})
	}
	return options, nil
}

// Tally returns the per-option vote counts. Options with no votes are
// not included.
func (p *Poll) Tally(ctx context.Context) ([]models.OptionTally, error) {
	var tallies []models.OptionTally
	err := p.pool.WithTx(ctx, func(c db.Conn) error {
		var err error
		tallies, err = db.AggregateVotesForPoll(ctx, c, p.ID)
		return err
	})
	return tallies, err
}

// Results returns every option with its vote count and percentage.
// results.ErrNoVotes is returned, together with the zero-count rows, when
// nobody has voted yet.
func (p *Poll) Results(ctx context.Context) ([]models.OptionResult, error) {
	var (
		options []models.Option
		tallies []models.OptionTally
	)
	err := p.pool.WithTx(ctx, func(c db.Conn) error {
		var err error
		if options, err = db.ListOptionsForPoll(ctx, c, p.ID); err != nil {
			return err
		}
		tallies, err = db.AggregateVotesForPoll(ctx, c, p.ID)
		return err
	})
	if err != nil {
		return nil, err
	}

	return results.Summarize(options, tallies)
}

// Get loads a poll by ID.
func Get(ctx context.Context, p *pool.Pool, id int64) (*Poll, error) {
	var (
		row   models.Poll
		found bool
	)
	err := p.WithTx(ctx, func(c db.Conn) error {
		var err error
		row, found, err = db.GetPoll(ctx, c, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("poll %d: %w", id, ErrNotFound)
	}

	return &Poll{Poll: row, pool: p}, nil
}

// Latest loads the most recently created poll.
func Latest(ctx context.Context, p *pool.Pool) (*Poll, error) {
	var (
		row   models.Poll
		found bool
	)
	err := p.WithTx(ctx, func(c db.Conn) error {
		var err error
		row, found, err = db.GetLatestPoll(ctx, c)
		return err
	})
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("latest poll: %w", ErrNotFound)
	}

	return &Poll{Poll: row, pool: p}, nil
}

// All loads every poll in creation order.
func All(ctx context.Context, p *pool.Pool) ([]*Poll, error) {
	var rows []models.Poll
	err := p.WithTx(ctx, func(c db.Conn) error {
		var err error
		rows, err = db.ListPolls(ctx, c)
		return err
	})
	if err != nil {
		return nil, err
	}

	all := make([]*Poll, 0, len(rows))
	for _, row := range rows {
		all = append(all, &Poll{Poll: row, pool: p})
	}
	return all, nil
}
