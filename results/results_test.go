// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package results

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielhkuo/pollbook/models"
)

func TestPercentages(t *testing.T) {
	tests := []struct {
		name   string
		counts []int
		want   []float64
	}{
		{"three to one", []int{3, 1}, []float64{75, 25}},
		{"single option", []int{5}, []float64{100}},
		{"with zero", []int{0, 2, 2}, []float64{0, 50, 50}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Percentages(tt.counts)
			require.NoError(t, err)
			assert.InDeltaSlice(t, tt.want, got, 1e-9)
		})
	}
}

func TestPercentages_NoVotes(t *testing.T) {
	for _, counts := range [][]int{{0, 0}, {}, nil} {
		got, err := Percentages(counts)
		assert.ErrorIs(t, err, ErrNoVotes)
		assert.Nil(t, got)
	}
}

func TestSummarize_FillsZeroVoteOptions(t *testing.T) {
	options := []models.Option{
		{ID: 1, Text: "Pizza", PollID: 9},
		{ID: 2, Text: "Sushi", PollID: 9},
		{ID: 3, Text: "Tacos", PollID: 9},
	}
	tallies := []models.OptionTally{
		{OptionID: 1, Text: "Pizza", Votes: 3},
		{OptionID: 3, Text: "Tacos", Votes: 1},
	}

	rows, err := Summarize(options, tallies)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, options[1], rows[1].Option)
	assert.Equal(t, []int{3, 0, 1}, []int{rows[0].Votes, rows[1].Votes, rows[2].Votes})
	assert.InDelta(t, 75.0, rows[0].Percentage, 1e-9)
	assert.InDelta(t, 0.0, rows[1].Percentage, 1e-9)
	assert.InDelta(t, 25.0, rows[2].Percentage, 1e-9)
}

func TestSummarize_NoVotes(t *testing.T) {
	options := []models.Option{{ID: 1, Text: "Pizza"}, {ID: 2, Text: "Sushi"}}

	rows, err := Summarize(options, nil)
	assert.ErrorIs(t, err, ErrNoVotes)
	require.Len(t, rows, 2)
	assert.Zero(t, rows[0].Votes)
	assert.Zero(t, rows[1].Percentage)
}

func TestPickWinner_Empty(t *testing.T) {
	_, err := PickWinner(nil, nil)
	assert.ErrorIs(t, err, ErrNoVotes)
}

func TestPickWinner_SingleBallot(t *testing.T) {
	vote := models.Vote{ID: 1, Username: "carol", OptionID: 4}

	got, err := PickWinner([]models.Vote{vote}, nil)
	require.NoError(t, err)
	assert.Equal(t, vote, got)
}

// TestPickWinner_WeightedByBallots checks that a user with two ballots wins
// about twice as often as a user with one.
func TestPickWinner_WeightedByBallots(t *testing.T) {
	votes := []models.Vote{
		{ID: 1, Username: "alice", OptionID: 1},
		{ID: 2, Username: "alice", OptionID: 1},
		{ID: 3, Username: "bob", OptionID: 1},
	}
	rng := rand.New(rand.NewPCG(1, 2))

	const trials = 30000
	wins := map[string]int{}
	for i := 0; i < trials; i++ {
		winner, err := PickWinner(votes, rng)
		require.NoError(t, err)
		wins[winner.Username]++
	}

	assert.Equal(t, trials, wins["alice"]+wins["bob"])
	ratio := float64(wins["alice"]) / float64(wins["bob"])
	assert.InDelta(t, 2.0, ratio, 0.15)
}
