// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains the interactive menu actions.

# Handler Types

Each handler is a struct holding the connection pool and the console:

  - PollHandler: create and list polls
  - VotingHandler: cast a vote as a username
  - ResultsHandler: vote summaries and random winner selection

Handlers are created via constructor functions:

	pollHandler := handlers.NewPollHandler(p, console)

Every handler method has the middleware.Action signature so the router can
wrap it.

# Choosing a Poll

Actions that work on an existing poll ask for its ID. Leaving the answer
empty picks the most recently created poll.

# Errors

Handlers return errors rather than printing them. polls.ErrNotFound,
middleware.ErrInvalidInput and pool.ErrPoolExhausted are turned into
friendly messages by middleware.WithErrorMessages.
*/
package handlers
