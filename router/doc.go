// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router maps menu choices to handlers.

# Menu

	1) Create new poll             → PollHandler.CreatePoll
	2) List open polls             → PollHandler.ListPolls
	3) Vote on a poll              → VotingHandler.Vote
	4) Show poll votes             → ResultsHandler.ShowVotes
	5) Select a random winner      → ResultsHandler.PickWinner
	6) Exit

# Usage

	console := middleware.NewConsole(os.Stdin, os.Stdout)
	menu := router.NewMenu(p, console, nil)
	if err := menu.Run(ctx); err != nil {
		slog.Error("menu stopped", "error", err)
	}

Every action is wrapped with WithLogging and WithErrorMessages, so a
missing poll or a mistyped id prints a message and the menu comes back.

# Exiting

Run returns nil when the user picks 6 or the input ends (Ctrl-D), and
ctx.Err() once the context is cancelled. Unexpected errors stop the loop
and are returned.
*/
package router
