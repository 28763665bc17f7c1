// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"errors"
	"math"
	"math/rand/v2"

	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/pollbook/middleware"
	"github.com/danielhkuo/pollbook/polls"
	"github.com/danielhkuo/pollbook/pool"
	"github.com/danielhkuo/pollbook/results"
)

type ResultsHandler struct {
	pool    *pool.Pool
	console *middleware.Console
	rng     *rand.Rand
}

// NewResultsHandler creates the handler. rng may be nil to use the global
// random source.
func NewResultsHandler(p *pool.Pool, console *middleware.Console, rng *rand.Rand) *ResultsHandler {
	return &ResultsHandler{pool: p, console: console, rng: rng}
}

// ShowVotes handles "Show poll votes"
func (h *ResultsHandler) ShowVotes(ctx context.Context) error {
	poll, err := promptPoll(ctx, h.pool, h.console, "Enter poll you would like to see votes for")
	if err != nil {
		return err
	}

	rows, err := poll.Results(ctx)
	if errors.Is(err, results.ErrNoVotes) {
		h.console.Printf("No votes were cast for this poll yet.\n")
		return nil
	}
	if err != nil {
		return err
	}

	h.console.Heading("Results for %q\n", poll.Title)
	for _, row := range rows {
		noun := "votes"
		if row.Votes == 1 {
			noun = "vote"
		}
		h.console.Printf("%s: got %s %s (%s%% of total votes)\n",
			row.Option.Text,
			humanize.Comma(int64(row.Votes)),
			noun,
			formatPercent(row.Percentage),
		)
	}
	return nil
}

// formatPercent rounds to one decimal place and drops a trailing ".0".
func formatPercent(pct float64) string {
	return humanize.FtoaWithDigits(math.Round(pct*10)/10, 1)
}

// PickWinner handles "Select a random winner from a poll option"
func (h *ResultsHandler) PickWinner(ctx context.Context) error {
	poll, err := promptPoll(ctx, h.pool, h.console, "Enter poll you'd like to pick a winner for")
	if err != nil {
		return err
	}

	options, err := printOptions(ctx, h.console, poll)
	if err != nil {
		return err
	}
	if len(options) == 0 {
		return nil
	}

	optionID, err := h.console.PromptID("Enter which is the winning option, we'll pick a random winner from voters: ")
	if err != nil {
		return err
	}

	opt, err := polls.GetOption(ctx, h.pool, optionID)
	if err != nil {
		return err
	}
	votes, err := opt.Votes(ctx)
	if err != nil {
		return err
	}

	winner, err := results.PickWinner(votes, h.rng)
	if errors.Is(err, results.ErrNoVotes) {
		h.console.Printf("Nobody voted for %s yet.\n", opt.Text)
		return nil
	}
	if err != nil {
		return err
	}

	h.console.Success("The randomly selected winner is %s.\n", winner.Username)
	return nil
}
