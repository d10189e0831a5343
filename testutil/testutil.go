// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"math/rand/v2"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/danielhkuo/quickly-tally/tally"
)

// candidateNamespace keeps generated candidate IDs stable across runs
var candidateNamespace = uuid.MustParse("6f1c2d3e-6a0b-4b8e-9a51-3c5e0f4d7a21")

// WeightedVote is a single candidate vote with an explicit weight
type WeightedVote struct {
	Candidate string
	Weight    int
}

// PluralityVotes is the six-vote Alice/Bob/Cir election: Alice 3, Bob 2, Cir 1
func PluralityVotes() []string {
	return []string{"Alice", "Cir", "Bob", "Alice", "Alice", "Bob"}
}

// TiedVotes ties Bob and Cir across a two-winner cutoff: Alice 3, Cir 2, Bob 2, Dave 1
func TiedVotes() []WeightedVote {
	return []WeightedVote{
		{"Alice", 3},
		{"Cir", 2},
		{"Bob", 2},
		{"Dave", 1},
	}
}

// CandidateID returns a deterministic opaque candidate identifier for name
func CandidateID(name string) uuid.UUID {
	return uuid.NewSHA1(candidateNamespace, []byte(name))
}

// CandidateIDs maps names to candidate identifiers, in order
func CandidateIDs(names ...string) []uuid.UUID {
	ids := make([]uuid.UUID, len(names))
	for i, name := range names {
		ids[i] = CandidateID(name)
	}
	return ids
}

// Shuffled returns a shuffled copy of items using a fixed seed
func Shuffled[B any](items []B, seed uint64) []B {
	out := make([]B, len(items))
	copy(out, items)
	r := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	r.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}

// AssertWinners checks the winner set, ignoring the order of tied candidates
func AssertWinners[K comparable](t *testing.T, winners tally.RankedWinners[K], want ...K) {
	t.Helper()
	assert.ElementsMatch(t, want, winners.Unranked(), "winners: %s", winners)
}

// AssertRanks checks the rank of every candidate in want and that no other candidate was returned
func AssertRanks[K comparable](t *testing.T, winners tally.RankedWinners[K], want map[K]int) {
	t.Helper()
	if winners.Len() != len(want) {
		t.Errorf("Expected %d ranked candidates, got %d: %s", len(want), winners.Len(), winners)
	}
	for candidate, rank := range want {
		got, ok := winners.Rank(candidate)
		if !ok {
			t.Errorf("Expected %v to be ranked, got %s", candidate, winners)
			continue
		}
		if got != rank {
			t.Errorf("Expected %v to have rank %d, got %d", candidate, rank, got)
		}
	}
}
