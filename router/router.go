// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"context"
	"errors"
	"io"
	"math/rand/v2"

	"github.com/danielhkuo/pollbook/handlers"
	"github.com/danielhkuo/pollbook/middleware"
	"github.com/danielhkuo/pollbook/pool"
)

const menuPrompt = `-- Menu --

1) Create new poll
2) List open polls
3) Vote on a poll
4) Show poll votes
5) Select a random winner from a poll option
6) Exit

Enter your choice: `

// ExitChoice ends the menu loop.
const ExitChoice = "6"

type Menu struct {
	console *middleware.Console
	actions map[string]middleware.Action
}

func NewMenu(p *pool.Pool, console *middleware.Console, rng *rand.Rand) *Menu {
	// Initialize handlers
	pollHandler := handlers.NewPollHandler(p, console)
	votingHandler := handlers.NewVotingHandler(p, console)
	resultsHandler := handlers.NewResultsHandler(p, console, rng)

	wrap := func(name string, action middleware.Action) middleware.Action {
		return middleware.WithErrorMessages(console, middleware.WithLogging(name, action))
	}

	return &Menu{
		console: console,
		actions: map[string]middleware.Action{
			"1": wrap("create_poll", pollHandler.CreatePoll),
			"2": wrap("list_polls", pollHandler.ListPolls),
			"3": wrap("vote", votingHandler.Vote),
			"4": wrap("show_votes", resultsHandler.ShowVotes),
			"5": wrap("pick_winner", resultsHandler.PickWinner),
		},
	}
}

// Run shows the menu until the user exits, input runs out or ctx is done.
func (m *Menu) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		selection, err := m.console.Prompt(menuPrompt)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if selection == ExitChoice {
			return nil
		}

		action, ok := m.actions[selection]
		if !ok {
			m.console.Error("Invalid input selected. Please try again.")
			continue
		}

		err = action(ctx)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
	}
}
