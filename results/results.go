// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package results

import (
	"errors"
	"math/rand/v2"

	"github.com/danielhkuo/pollbook/models"
)

// ErrNoVotes is returned when there is nothing to divide by or pick from.
var ErrNoVotes = errors.New("no votes yet")

// Percentages converts vote counts into shares of the total, in percent.
func Percentages(counts []int) ([]float64, error) {
	total := 0
	for _, n := range counts {
		total += n
	}
	if total == 0 {
		return nil, ErrNoVotes
	}

	out := make([]float64, len(counts))
	for i, n := range counts {
		out[i] = float64(n) / float64(total) * 100
	}
	return out, nil
}

// Summarize merges a poll's options with its vote aggregate. The aggregate
// leaves out options nobody voted for; those get a count of zero here.
//
// When the poll has no votes at all the rows are still returned, with zero
// percentages, alongside ErrNoVotes.
func Summarize(options []models.Option, tallies []models.OptionTally) ([]models.OptionResult, error) {
	byOption := make(map[int64]int, len(tallies))
	for _, tally := range tallies {
		byOption[tally.OptionID] = tally.Votes
	}

	rows := make([]models.OptionResult, len(options))
	counts := make([]int, len(options))
	for i, opt := range options {
		counts[i] = byOption[opt.ID]
		rows[i] = models.OptionResult{Option: opt, Votes: counts[i]}
	}

	pcts, err := Percentages(counts)
	if err != nil {
		return rows, err
	}
	for i := range rows {
		rows[i].Percentage = pcts[i]
	}
	return rows, nil
}

// PickWinner draws one ballot uniformly at random. A user who voted twice
// holds two tickets. rng may be nil to use the global source.
func PickWinner(votes []models.Vote, rng *rand.Rand) (models.Vote, error) {
	if len(votes) == 0 {
		return models.Vote{}, ErrNoVotes
	}

	var i int
	if rng != nil {
		i = rng.IntN(len(votes))
	} else {
		i = rand.IntN(len(votes))
	}
	return votes[i], nil
}
