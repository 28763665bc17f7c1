// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielhkuo/pollbook/middleware"
	"github.com/danielhkuo/pollbook/polls"
	"github.com/danielhkuo/pollbook/testutil"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

// newConsole feeds lines to a console and captures what it prints.
func newConsole(lines ...string) (*middleware.Console, *bytes.Buffer) {
	var out bytes.Buffer
	in := strings.NewReader(strings.Join(lines, "\n") + "\n")
	return middleware.NewConsole(in, &out), &out
}

func TestCreatePoll(t *testing.T) {
	p := testutil.SetupTestPool(t)
	ctx := context.Background()

	console, out := newConsole("Lunch?", "alice", "Pizza", "Sushi", "")
	require.NoError(t, NewPollHandler(p, console).CreatePoll(ctx))

	poll, err := polls.Latest(ctx, p)
	require.NoError(t, err)
	assert.Equal(t, "Lunch?", poll.Title)
	assert.Equal(t, "alice", poll.Owner)

	options, err := poll.Options(ctx)
	require.NoError(t, err)
	require.Len(t, options, 2)
	assert.Equal(t, "Pizza", options[0].Text)
	assert.Equal(t, "Sushi", options[1].Text)

	assert.Contains(t, out.String(), "Enter poll title: ")
	assert.Contains(t, out.String(), newOptionPrompt)
}

func TestCreatePoll_InputEndsDuringOptions(t *testing.T) {
	p := testutil.SetupTestPool(t)
	ctx := context.Background()

	console, _ := newConsole("Dinner", "bob", "Soup")
	require.NoError(t, NewPollHandler(p, console).CreatePoll(ctx))

	assert.Equal(t, 1, testutil.CountRows(t, p, "polls"))
	assert.Equal(t, 1, testutil.CountRows(t, p, "options"))
}

func TestCreatePoll_InputEndsBeforeTitle(t *testing.T) {
	p := testutil.SetupTestPool(t)

	console := middleware.NewConsole(strings.NewReader(""), io.Discard)
	err := NewPollHandler(p, console).CreatePoll(context.Background())
	assert.ErrorIs(t, err, io.EOF)
	assert.Equal(t, 0, testutil.CountRows(t, p, "polls"))
}

func TestListPolls(t *testing.T) {
	p := testutil.SetupTestPool(t)
	ctx := context.Background()

	console, out := newConsole()
	require.NoError(t, NewPollHandler(p, console).ListPolls(ctx))
	assert.Equal(t, "No polls yet.\n", out.String())

	first := testutil.CreateTestPoll(t, p, "Lunch", "alice")
	second := testutil.CreateTestPoll(t, p, "Dinner", "bob")

	console, out = newConsole()
	require.NoError(t, NewPollHandler(p, console).ListPolls(ctx))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, strings.TrimSpace(fmtPoll(first, "Lunch", "alice")), lines[0])
	assert.Equal(t, strings.TrimSpace(fmtPoll(second, "Dinner", "bob")), lines[1])
}

func TestVote(t *testing.T) {
	p := testutil.SetupTestPool(t)
	ctx := context.Background()

	pollID := testutil.CreateTestPoll(t, p, "Lunch", "alice")
	pizza := testutil.AddTestOption(t, p, pollID, "Pizza")
	testutil.AddTestOption(t, p, pollID, "Sushi")

	console, out := newConsole(itoa(pollID), itoa(pizza), "carol")
	require.NoError(t, NewVotingHandler(p, console).Vote(ctx))

	opt, err := polls.GetOption(ctx, p, pizza)
	require.NoError(t, err)
	votes, err := opt.Votes(ctx)
	require.NoError(t, err)
	require.Len(t, votes, 1)
	assert.Equal(t, "carol", votes[0].Username)

	assert.Contains(t, out.String(), itoa(pizza)+": Pizza")
	assert.Contains(t, out.String(), "Vote recorded for Pizza.")
}

func TestVote_EmptyPollPicksLatest(t *testing.T) {
	p := testutil.SetupTestPool(t)
	ctx := context.Background()

	testutil.CreateTestPoll(t, p, "Old", "alice")
	latest := testutil.CreateTestPoll(t, p, "New", "bob")
	opt := testutil.AddTestOption(t, p, latest, "Yes")

	console, out := newConsole("", itoa(opt), "dave")
	require.NoError(t, NewVotingHandler(p, console).Vote(ctx))

	assert.Contains(t, out.String(), "New\n")
	assert.Equal(t, 1, testutil.CountRows(t, p, "votes"))
}

func TestVote_Errors(t *testing.T) {
	p := testutil.SetupTestPool(t)
	pollID := testutil.CreateTestPoll(t, p, "Lunch", "alice")
	testutil.AddTestOption(t, p, pollID, "Pizza")

	tests := []struct {
		name    string
		input   []string
		wantErr error
	}{
		{"unknown poll", []string{"999"}, polls.ErrNotFound},
		{"poll not a number", []string{"lunch"}, middleware.ErrInvalidInput},
		{"unknown option", []string{itoa(pollID), "999", "erin"}, polls.ErrNotFound},
		{"option not a number", []string{itoa(pollID), "pizza"}, middleware.ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			console, _ := newConsole(tt.input...)
			err := NewVotingHandler(p, console).Vote(context.Background())
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	assert.Equal(t, 0, testutil.CountRows(t, p, "votes"))
}

func TestShowVotes(t *testing.T) {
	p := testutil.SetupTestPool(t)
	ctx := context.Background()

	pollID := testutil.CreateTestPoll(t, p, "Lunch", "alice")
	pizza := testutil.AddTestOption(t, p, pollID, "Pizza")
	sushi := testutil.AddTestOption(t, p, pollID, "Sushi")
	testutil.AddTestOption(t, p, pollID, "Tacos")
	testutil.AddTestVotes(t, p, pizza, "alice", "bob", "alice")
	testutil.AddTestVotes(t, p, sushi, "carol")

	console, out := newConsole(itoa(pollID))
	require.NoError(t, NewResultsHandler(p, console, nil).ShowVotes(ctx))

	got := out.String()
	assert.Contains(t, got, `Results for "Lunch"`)
	assert.Contains(t, got, "Pizza: got 3 votes (75% of total votes)")
	assert.Contains(t, got, "Sushi: got 1 vote (25% of total votes)")
	assert.Contains(t, got, "Tacos: got 0 votes (0% of total votes)")
}

func TestShowVotes_NoVotes(t *testing.T) {
	p := testutil.SetupTestPool(t)

	pollID := testutil.CreateTestPoll(t, p, "Quiet", "alice")
	testutil.AddTestOption(t, p, pollID, "Anything")

	console, out := newConsole(itoa(pollID))
	require.NoError(t, NewResultsHandler(p, console, nil).ShowVotes(context.Background()))
	assert.Contains(t, out.String(), "No votes were cast for this poll yet.")
}

func TestPickWinner(t *testing.T) {
	p := testutil.SetupTestPool(t)

	pollID := testutil.CreateTestPoll(t, p, "Raffle", "alice")
	opt := testutil.AddTestOption(t, p, pollID, "Prize")
	testutil.AddTestVotes(t, p, opt, "bob")

	console, out := newConsole(itoa(pollID), itoa(opt))
	rng := rand.New(rand.NewPCG(7, 7))
	require.NoError(t, NewResultsHandler(p, console, rng).PickWinner(context.Background()))

	assert.Contains(t, out.String(), "The randomly selected winner is bob.")
}

func TestPickWinner_NoVoters(t *testing.T) {
	p := testutil.SetupTestPool(t)

	pollID := testutil.CreateTestPoll(t, p, "Raffle", "alice")
	opt := testutil.AddTestOption(t, p, pollID, "Prize")

	console, out := newConsole(itoa(pollID), itoa(opt))
	require.NoError(t, NewResultsHandler(p, console, nil).PickWinner(context.Background()))

	assert.Contains(t, out.String(), "Nobody voted for Prize yet.")
}

func TestPickWinner_PollWithoutOptions(t *testing.T) {
	p := testutil.SetupTestPool(t)
	pollID := testutil.CreateTestPoll(t, p, "Empty", "alice")

	console, out := newConsole(itoa(pollID))
	require.NoError(t, NewResultsHandler(p, console, nil).PickWinner(context.Background()))

	assert.Contains(t, out.String(), "This poll has no options.")
}

func TestShowVotes_PercentagesRound(t *testing.T) {
	tests := []struct {
		name  string
		votes []int
		want  []string
	}{
		{"three to one", []int{3, 1}, []string{
			"A: got 3 votes (75% of total votes)",
			"B: got 1 vote (25% of total votes)",
		}},
		{"two to one", []int{2, 1}, []string{
			"A: got 2 votes (66.7% of total votes)",
			"B: got 1 vote (33.3% of total votes)",
		}},
		{"three way tie", []int{1, 1, 1}, []string{
			"A: got 1 vote (33.3% of total votes)",
			"B: got 1 vote (33.3% of total votes)",
			"C: got 1 vote (33.3% of total votes)",
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := testutil.SetupTestPool(t)
			pollID := testutil.CreateTestPoll(t, p, "Shares", "alice")
			for i, n := range tt.votes {
				opt := testutil.AddTestOption(t, p, pollID, string(rune('A'+i)))
				for j := 0; j < n; j++ {
					testutil.AddTestVotes(t, p, opt, fmt.Sprintf("voter%d", j))
				}
			}

			console, out := newConsole(itoa(pollID))
			require.NoError(t, NewResultsHandler(p, console, nil).ShowVotes(context.Background()))

			for _, line := range tt.want {
				assert.Contains(t, out.String(), line)
			}
		})
	}
}

func TestFormatPercent(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{75, "75"},
		{0, "0"},
		{100, "100"},
		{200.0 / 3, "66.7"},
		{100.0 / 3, "33.3"},
		{12.25, "12.3"},
		{99.96, "100"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, formatPercent(tt.in))
		})
	}
}
