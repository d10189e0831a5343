// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package borda

import (
	"encoding/binary"
	"errors"
	"fmt"
	"log/slog"

	"github.com/danielhkuo/quickly-tally/numeric"
	"github.com/danielhkuo/quickly-tally/plurality"
	"github.com/danielhkuo/quickly-tally/tally"
)

var (
	ErrDivisionUnsupported = errors.New("count type does not support division")
	ErrUnknownVariant      = errors.New("unknown borda variant")
)

// DefaultTally counts points with uint64
type DefaultTally[T comparable] = Tally[T, uint64]

// Ballot is a distinct ranked ballot and its accumulated weight
type Ballot[T comparable, C any] struct {
	Candidates []T
	Weight     C
}

// Tally is a Borda count over candidate type T with count type C.
//
// Ballots are counted as whole selections; points are only assigned when the
// result is requested, because most variants depend on the final number of
// candidates.
type Tally[T comparable, C any] struct {
	arith      numeric.Arithmetic[C]
	variant    Variant
	numWinners int

	// ballots is keyed by the ballot's candidate indices, see ballotKey
	ballots    *tally.Counter[string, C]
	byKey      map[string][]T
	candidates map[T]int
	order      []T
}

// New creates a Borda tally for a builtin count type.
// Integer count types are rejected for variants that divide.
func New[T comparable, C numeric.Number](numWinners int, variant Variant) (*Tally[T, C], error) {
	return NewTally[T](numeric.For[C](), numWinners, 0, variant)
}

// WithCapacity is New with a hint of how many candidates to expect
func WithCapacity[T comparable, C numeric.Number](numWinners, expectedCandidates int, variant Variant) (*Tally[T, C], error) {
	return NewTally[T](numeric.For[C](), numWinners, expectedCandidates, variant)
}

// NewTally creates a Borda tally for any count type with an Arithmetic.
// It fails with ErrDivisionUnsupported when variant needs division and arith
// is not a numeric.Divider, and with ErrUnknownVariant for unknown variants.
func NewTally[T comparable, C any](arith numeric.Arithmetic[C], numWinners, expectedCandidates int, variant Variant) (*Tally[T, C], error) {
	if !variant.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrUnknownVariant, variant)
	}

	if _, ok := arith.(numeric.Divider[C]); variant.RequiresDivision() && !ok {
		return nil, fmt.Errorf("%s needs a fractional count type: %w", variant, ErrDivisionUnsupported)
	}

	if expectedCandidates < 0 {
		expectedCandidates = 0
	}
	return &Tally[T, C]{
		arith:      arith,
		variant:    variant,
		numWinners: numWinners,
		ballots:    tally.NewCounter[string](arith, expectedCandidates),
		byKey:      make(map[string][]T, expectedCandidates),
		candidates: make(map[T]int, expectedCandidates),
		order:      make([]T, 0, expectedCandidates),
	}, nil
}

// Variant returns the point assignment rule
func (t *Tally[T, C]) Variant() Variant {
	return t.variant
}

// NumWinners returns the requested number of winners
func (t *Tally[T, C]) NumWinners() int {
	return t.numWinners
}

// Add adds a ranked ballot with a weight of one. Position 0 is the most preferred candidate.
func (t *Tally[T, C]) Add(ballot []T) {
	t.AddWeighted(ballot, t.arith.One())
}

// AddWeighted adds a ranked ballot with the given weight.
// A candidate listed twice scores points for each position it holds.
func (t *Tally[T, C]) AddWeighted(ballot []T, weight C) {
	key := t.ballotKey(ballot)
	if _, ok := t.byKey[key]; !ok {
		t.byKey[key] = append([]T(nil), ballot...)
	}
	t.ballots.AddWeighted(key, weight)
}

// Candidates returns every distinct candidate seen on any ballot, in no particular order
func (t *Tally[T, C]) Candidates() []T {
	out := make([]T, len(t.order))
	copy(out, t.order)
	return out
}

// Ballots returns every distinct ballot with its accumulated weight, in no particular order
func (t *Tally[T, C]) Ballots() []Ballot[T, C] {
	keys := t.ballots.Selections()
	out := make([]Ballot[T, C], len(keys))
	for i, key := range keys {
		weight, _ := t.ballots.Get(key)
		out[i] = Ballot[T, C]{
			Candidates: append([]T(nil), t.byKey[key]...),
			Weight:     weight,
		}
	}
	return out
}

// Winners returns the ranked winners by total points.
// A tie at the last winning rank includes every tied candidate.
func (t *Tally[T, C]) Winners() tally.RankedWinners[T] {
	return t.points().Winners()
}

// Ranked returns every candidate ranked by total points
func (t *Tally[T, C]) Ranked() tally.RankedWinners[T] {
	return t.points().Ranked()
}

// Totals returns the total points of every candidate, highest first
func (t *Tally[T, C]) Totals() []tally.Counted[T, C] {
	return t.points().Totals()
}

// Merge adds every ballot of other to t. The variant and winners of t are kept.
func (t *Tally[T, C]) Merge(other *Tally[T, C]) {
	if other == nil {
		return
	}
	for _, key := range other.ballots.Selections() {
		weight, _ := other.ballots.Get(key)
		t.AddWeighted(other.byKey[key], weight)
	}
}

// points expands every distinct ballot into weighted single candidate votes
func (t *Tally[T, C]) points() *plurality.Tally[T, C] {
	n := len(t.order)
	votes := plurality.NewTally[T](t.arith, t.numWinners, n)

	// Seed in first-seen order so tied candidates keep that order
	for _, candidate := range t.order {
		votes.AddWeighted(candidate, t.arith.Zero())
	}

	for _, key := range t.ballots.Selections() {
		weight, _ := t.ballots.Get(key)
		ballot := t.byKey[key]
		for position, candidate := range ballot {
			votes.AddWeighted(candidate, t.arith.Mul(weight, t.pointsAt(position, n, len(ballot))))
		}
	}

	slog.Debug("borda ballots expanded",
		"variant", t.variant.String(),
		"ballots", t.ballots.Len(),
		"candidates", n,
	)
	return votes
}

// pointsAt cannot fail: NewTally rejected unknown variants and arithmetic that cannot divide
func (t *Tally[T, C]) pointsAt(position, candidates, marked int) C {
	points, _ := PointsAs(t.variant, t.arith, position, candidates, marked)
	return points
}

// ballotKey registers the ballot's candidates and returns a comparable key
// made of their first-seen indices
func (t *Tally[T, C]) ballotKey(ballot []T) string {
	key := make([]byte, 0, len(ballot)*2)
	for _, candidate := range ballot {
		idx, ok := t.candidates[candidate]
		if !ok {
			idx = len(t.order)
			t.candidates[candidate] = idx
			t.order = append(t.order, candidate)
		}
		key = binary.AppendUvarint(key, uint64(idx))
	}
	return string(key)
}
