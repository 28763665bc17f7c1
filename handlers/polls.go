// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/danielhkuo/pollbook/middleware"
	"github.com/danielhkuo/pollbook/polls"
	"github.com/danielhkuo/pollbook/pool"
)

const newOptionPrompt = "Enter new option text (or leave empty to stop adding options): "

type PollHandler struct {
	pool    *pool.Pool
	console *middleware.Console
}

func NewPollHandler(p *pool.Pool, console *middleware.Console) *PollHandler {
	return &PollHandler{pool: p, console: console}
}

// CreatePoll handles "Create new poll"
func (h *PollHandler) CreatePoll(ctx context.Context) error {
	title, err := h.console.Prompt("Enter poll title: ")
	if err != nil {
		return err
	}
	owner, err := h.console.Prompt("Enter poll owner: ")
	if err != nil {
		return err
	}

	poll := polls.New(h.pool, title, owner)
	if err := poll.Save(ctx); err != nil {
		return err
	}

	// Options are saved one by one; the poll stays even if one fails.
	for {
		text, err := h.console.Prompt(newOptionPrompt)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return err
		}
		if text == "" {
			break
		}
		if _, err := poll.AddOption(ctx, text); err != nil {
			return err
		}
	}

	h.console.Printf("Created poll %d.\n", poll.ID)
	return nil
}

// ListPolls handles "List open polls"
func (h *PollHandler) ListPolls(ctx context.Context) error {
	all, err := polls.All(ctx, h.pool)
	if err != nil {
		return err
	}

	if len(all) == 0 {
		h.console.Printf("No polls yet.\n")
		return nil
	}

	for _, poll := range all {
		h.console.Printf("%d: %s (created by %s)\n", poll.ID, poll.Title, poll.Owner)
	}
	return nil
}

// promptPoll asks for a poll ID. An empty answer picks the latest poll.
func promptPoll(ctx context.Context, p *pool.Pool, console *middleware.Console, label string) (*polls.Poll, error) {
	answer, err := console.Prompt(label + " (leave empty for the latest): ")
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(answer) == "" {
		return polls.Latest(ctx, p)
	}

	id, err := middleware.ParseID(answer)
	if err != nil {
		return nil, err
	}
	return polls.Get(ctx, p, id)
}

// printOptions lists a poll's options and returns them.
func printOptions(ctx context.Context, console *middleware.Console, poll *polls.Poll) ([]*polls.Option, error) {
	options, err := poll.Options(ctx)
	if err != nil {
		return nil, err
	}

	console.Heading("%s\n", poll.Title)
	if len(options) == 0 {
		console.Printf("This poll has no options.\n")
	}
	for _, opt := range options {
		console.Printf("%d: %s\n", opt.ID, opt.Text)
	}
	return options, nil
}
