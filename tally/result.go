// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package tally

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
)

// Ranked is a candidate with its rank. Rank 0 is best.
type Ranked[K comparable] struct {
	Candidate K
	Rank      int
}

// String renders the candidate with its place, e.g. "Alice (1st)"
func (r Ranked[K]) String() string {
	return fmt.Sprintf("%v (%s)", r.Candidate, humanize.Ordinal(r.Rank+1))
}

// RankedWinners is an ordered result of a ranking. Candidates sharing a rank are tied
// and their relative order must not be relied upon.
type RankedWinners[K comparable] struct {
	ranked []Ranked[K]
}

// Len returns the number of ranked candidates
func (w RankedWinners[K]) Len() int {
	return len(w.ranked)
}

// Ranks returns a copy of the (candidate, rank) pairs, best first
func (w RankedWinners[K]) Ranks() []Ranked[K] {
	out := make([]Ranked[K], len(w.ranked))
	copy(out, w.ranked)
	return out
}

// Unranked returns the candidates without their ranks, best first
func (w RankedWinners[K]) Unranked() []K {
	out := make([]K, len(w.ranked))
	for i, r := range w.ranked {
		out[i] = r.Candidate
	}
	return out
}

// Contains reports whether candidate is part of the result
func (w RankedWinners[K]) Contains(candidate K) bool {
	_, ok := w.Rank(candidate)
	return ok
}

// Rank returns the rank of candidate, if present
func (w RankedWinners[K]) Rank(candidate K) (int, bool) {
	for _, r := range w.ranked {
		if r.Candidate == candidate {
			return r.Rank, true
		}
	}
	return 0, false
}

func (w RankedWinners[K]) String() string {
	parts := make([]string, len(w.ranked))
	for i, r := range w.ranked {
		parts[i] = r.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
