// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"

	"github.com/danielhkuo/pollbook/middleware"
	"github.com/danielhkuo/pollbook/polls"
	"github.com/danielhkuo/pollbook/pool"
)

type VotingHandler struct {
	pool    *pool.Pool
	console *middleware.Console
}

func NewVotingHandler(p *pool.Pool, console *middleware.Console) *VotingHandler {
	return &VotingHandler{pool: p, console: console}
}

// Vote handles "Vote on a poll"
func (h *VotingHandler) Vote(ctx context.Context) error {
	poll, err := promptPoll(ctx, h.pool, h.console, "Enter poll you would like to vote on")
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

	optionID, err := h.console.PromptID("Enter option you'd like to vote for: ")
	if err != nil {
		return err
	}
	username, err := h.console.Prompt("Enter the username you'd like to vote as: ")
	if err != nil {
		return err
	}

	// The option is not checked against the poll shown above.
	opt, err := polls.GetOption(ctx, h.pool, optionID)
	if err != nil {
		return err
	}
	if err := opt.Vote(ctx, username); err != nil {
		return err
	}

	h.console.Printf("Vote recorded for %s.\n", opt.Text)
	return nil
}
