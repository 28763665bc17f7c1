// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides the console and action wrappers used by the menu.

# Console

A Console reads answers to prompts and writes output:

	console := middleware.NewConsole(os.Stdin, os.Stdout)
	title, err := console.Prompt("Enter poll title: ")
	id, err := console.PromptID("Enter option you'd like to vote for: ")

PromptID returns ErrInvalidInput for anything that is not a positive
integer. Prompt returns io.EOF once input has run out.

Output helpers colour their text when writing to a terminal:

	console.Heading("%s\n", poll.Title)
	console.Success("The randomly selected winner is %s.\n", name)
	console.Error("No such poll or option.")

# Action Logging

Wrap actions with logging:

	action = middleware.WithLogging("vote", handler.Vote)

Logs action start (debug) and completion or failure (duration_ms).

# Error Messages

WithErrorMessages prints a message for errors the user can recover from
(not found, invalid input, busy pool, database failures) and returns nil
so the menu loop keeps going. Other errors, including io.EOF, pass
through unchanged.
*/
package middleware
