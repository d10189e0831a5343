// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package plurality

import (
	"github.com/danielhkuo/quickly-tally/numeric"
	"github.com/danielhkuo/quickly-tally/tally"
)

// DefaultTally counts votes with uint64
type DefaultTally[T comparable] = Tally[T, uint64]

// Tally is a plurality tally with candidate type T and count type C
type Tally[T comparable, C any] struct {
	counter    *tally.Counter[T, C]
	numWinners int
}

// New creates a tally for a builtin count type.
// If there is a tie the number of winners may exceed numWinners.
func New[T comparable, C numeric.Number](numWinners int) *Tally[T, C] {
	return NewTally[T](numeric.For[C](), numWinners, 0)
}

// WithCapacity is New with a hint of how many candidates to expect
func WithCapacity[T comparable, C numeric.Number](numWinners, expectedCandidates int) *Tally[T, C] {
	return NewTally[T](numeric.For[C](), numWinners, expectedCandidates)
}

// NewTally creates a tally for any count type with an Arithmetic, e.g. numeric.Rational()
func NewTally[T comparable, C any](arith numeric.Arithmetic[C], numWinners, expectedCandidates int) *Tally[T, C] {
	return &Tally[T, C]{
		counter:    tally.NewCounter[T](arith, expectedCandidates),
		numWinners: numWinners,
	}
}

// NumWinners returns the requested number of winners
func (t *Tally[T, C]) NumWinners() int {
	return t.numWinners
}

// Add adds a vote with a weight of one
func (t *Tally[T, C]) Add(candidate T) {
	t.counter.Add(candidate)
}

// AddWeighted adds a vote with the given weight
func (t *Tally[T, C]) AddWeighted(candidate T, weight C) {
	t.counter.AddWeighted(candidate, weight)
}

// Candidates returns every candidate seen, in no particular order
func (t *Tally[T, C]) Candidates() []T {
	return t.counter.Selections()
}

// Totals returns the vote total of every candidate, highest first
func (t *Tally[T, C]) Totals() []tally.Counted[T, C] {
	return t.counter.Totals()
}

// Winners returns the ranked winners. Winners with the same rank are tied,
// and a tie at the last winning rank includes every tied candidate.
func (t *Tally[T, C]) Winners() tally.RankedWinners[T] {
	return t.counter.Rank(t.numWinners)
}

// Ranked returns every candidate ranked
func (t *Tally[T, C]) Ranked() tally.RankedWinners[T] {
	return t.counter.Rank(0)
}

// Merge adds the votes of other to t. numWinners of t is kept.
func (t *Tally[T, C]) Merge(other *Tally[T, C]) {
	if other == nil {
		return
	}
	t.counter.Merge(other.counter)
}
