// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package tally

import (
	"slices"
)

// Rank converts a snapshot of counts into ranked winners.
//
// Entries are ordered by count, highest first. Ranks start at 0 and only
// increase when the count strictly decreases, so tied entries share a rank.
// Equal counts keep their snapshot order.
//
// A resultSize of 0 (or anything at or above the number of entries) returns
// every entry. Otherwise the result holds every entry whose rank is at most
// the rank found at position resultSize-1, which means a tie straddling the
// cutoff makes the result longer than requested.
//
// counted is not modified.
func Rank[K comparable, C any](counted []Counted[K, C], resultSize int, compare func(a, b C) int) RankedWinners[K] {
	sorted := slices.Clone(counted)
	sortByCount(sorted, compare)

	ranked := make([]Ranked[K], len(sorted))
	rank := 0
	for i, entry := range sorted {
		if i > 0 && compare(entry.Count, sorted[i-1].Count) != 0 {
			rank++
		}
		ranked[i] = Ranked[K]{Candidate: entry.Selection, Rank: rank}
	}

	if resultSize > 0 && resultSize < len(ranked) {
		cutoff := ranked[resultSize-1].Rank
		end := resultSize
		for end < len(ranked) && ranked[end].Rank == cutoff {
			end++
		}
		ranked = ranked[:end]
	}

	return RankedWinners[K]{ranked: ranked}
}

// sortByCount sorts highest count first, keeping the input order of ties
func sortByCount[K comparable, C any](entries []Counted[K, C], compare func(a, b C) int) {
	slices.SortStableFunc(entries, func(a, b Counted[K, C]) int {
		return compare(b.Count, a.Count)
	})
}
