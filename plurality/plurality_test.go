// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package plurality

import (
	"context"
	"math/big"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielhkuo/quickly-tally/numeric"
	"github.com/danielhkuo/quickly-tally/tally"
	"github.com/danielhkuo/quickly-tally/testutil"
)

func TestPlurality(t *testing.T) {
	tl := New[string, uint64](2)
	for _, vote := range testutil.PluralityVotes() {
		tl.Add(vote)
	}

	assert.Len(t, tl.Candidates(), 3)
	assert.Equal(t, []tally.Counted[string, uint64]{
		{Selection: "Alice", Count: 3},
		{Selection: "Bob", Count: 2},
		{Selection: "Cir", Count: 1},
	}, tl.Totals())
	assert.Equal(t, []tally.Ranked[string]{
		{Candidate: "Alice", Rank: 0},
		{Candidate: "Bob", Rank: 1},
		{Candidate: "Cir", Rank: 2},
	}, tl.Ranked().Ranks())

	winners := tl.Winners()
	assert.Equal(t, 2, winners.Len())
	assert.True(t, winners.Contains("Alice"))
	assert.True(t, winners.Contains("Bob"))
	assert.False(t, winners.Contains("Cir"))
	assert.False(t, winners.Contains("Rando"))
}

func TestPluralityTieGrowsWinners(t *testing.T) {
	tl := New[string, uint64](2)
	for _, vote := range testutil.TiedVotes() {
		tl.AddWeighted(vote.Candidate, uint64(vote.Weight))
	}

	winners := tl.Winners()
	assert.Equal(t, 3, winners.Len())
	testutil.AssertRanks(t, winners, map[string]int{"Alice": 0, "Bob": 1, "Cir": 1})
}

func TestPluralityIntegerCandidates(t *testing.T) {
	tl := New[int, uint64](1)
	for _, vote := range []int{99, 100, 99, 99, 1, 1, 2, 0} {
		tl.Add(vote)
	}

	testutil.AssertWinners(t, tl.Winners(), 99)
	assert.False(t, tl.Winners().Contains(1000))
}

func TestPluralityWithCapacity(t *testing.T) {
	tl := WithCapacity[int, uint64](1, 2)
	tl.Add(123)
	tl.Add(456)

	// a single winner was requested, but both tie at rank 0
	testutil.AssertWinners(t, tl.Winners(), 123, 456)
	assert.Equal(t, 1, tl.NumWinners())
}

func TestPluralityFractionalWeights(t *testing.T) {
	tl := New[string, float64](1)
	tl.AddWeighted("Alice", 5.25)
	tl.AddWeighted("Bob", 0.25)
	tl.Add("Carol")

	testutil.AssertWinners(t, tl.Winners(), "Alice")
	testutil.AssertRanks(t, tl.Ranked(), map[string]int{"Alice": 0, "Carol": 1, "Bob": 2})
}

func TestPluralityRationalWeights(t *testing.T) {
	tl := NewTally[string, *big.Rat](numeric.Rational(), 1, 0)
	tl.AddWeighted("Alice", big.NewRat(1, 3))
	tl.AddWeighted("Alice", big.NewRat(1, 3))
	tl.AddWeighted("Alice", big.NewRat(1, 3))
	tl.Add("Bob")

	// exactly 1 each, a float would not guarantee the tie
	testutil.AssertWinners(t, tl.Winners(), "Alice", "Bob")
}

func TestPluralityOpaqueCandidates(t *testing.T) {
	ids := testutil.CandidateIDs("Alice", "Bob", "Cir")

	tl := New[uuid.UUID, uint64](1)
	tl.Add(ids[2])
	tl.Add(ids[0])
	tl.Add(ids[2])

	testutil.AssertWinners(t, tl.Winners(), ids[2])
	assert.ElementsMatch(t, []uuid.UUID{ids[0], ids[2]}, tl.Candidates())
}

func TestPluralityIsOrderIndependent(t *testing.T) {
	votes := append(testutil.PluralityVotes(), testutil.PluralityVotes()...)

	want := New[string, int](2)
	for _, v := range votes {
		want.Add(v)
	}

	for seed := uint64(1); seed <= 5; seed++ {
		tl := New[string, int](2)
		for _, v := range testutil.Shuffled(votes, seed) {
			tl.Add(v)
		}
		assert.ElementsMatch(t, want.Totals(), tl.Totals())
		testutil.AssertWinners(t, tl.Winners(), "Alice", "Bob")
	}
}

func TestPluralityQueriesAreIdempotent(t *testing.T) {
	tl := New[string, uint64](2)
	for _, vote := range testutil.TiedVotes() {
		tl.AddWeighted(vote.Candidate, uint64(vote.Weight))
	}

	assert.Equal(t, tl.Winners(), tl.Winners())
	assert.Equal(t, tl.Totals(), tl.Totals())
	assert.Equal(t, tl.Candidates(), tl.Candidates())

	// queries interleave with ingestion
	tl.AddWeighted("Dave", 5)
	testutil.AssertWinners(t, tl.Winners(), "Dave", "Alice")
}

func TestPluralityMerge(t *testing.T) {
	a := New[string, uint64](1)
	b := New[string, uint64](1)
	a.AddWeighted("Alice", 2)
	b.AddWeighted("Bob", 3)
	b.AddWeighted("Alice", 2)

	a.Merge(b)
	a.Merge(nil)

	testutil.AssertRanks(t, a.Ranked(), map[string]int{"Alice": 0, "Bob": 1})
}

func TestPluralityParallelIngestion(t *testing.T) {
	var votes []string
	for i := 0; i < 50; i++ {
		votes = append(votes, testutil.PluralityVotes()...)
	}

	tl, err := tally.IngestParallel(context.Background(), 4, votes,
		func() *DefaultTally[string] { return New[string, uint64](2) },
		(*DefaultTally[string]).Add,
	)
	require.NoError(t, err)

	assert.Equal(t, []tally.Counted[string, uint64]{
		{Selection: "Alice", Count: 150},
		{Selection: "Bob", Count: 100},
		{Selection: "Cir", Count: 50},
	}, tl.Totals())
}
