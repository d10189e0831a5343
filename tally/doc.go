// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package tally is the counting and ranking engine shared by every election method.

# Weighted Counter

Counter accumulates a weight per distinct selection. The selection is a
candidate for plurality-style methods, or any other comparable key:

	c := tally.NewCounter[string](numeric.For[uint64](), 0)
	c.Add("Alice")
	c.AddWeighted("Bob", 2)

Counters never fail. Overflow and other numeric hazards belong to the chosen
count type. Two counters merge by pairwise addition of equal-key weights:

	a.Merge(b)

# Ranking

Rank turns an unordered snapshot into ranked winners:

	winners := tally.Rank(c.Totals(), 2, arith.Compare)

Ranks start at 0. Tied candidates share a rank and the next distinct count
gets the previous rank + 1, regardless of how many candidates were tied.

When a tie straddles the requested result size every tied candidate is
included, so the result may be longer than requested. A result size of 0
returns the complete ranking.

# Tie Order

Candidates with equal counts stay in the order they were first seen by the
counter. This is deterministic for a given ingestion order, but callers must
treat tied candidates as interchangeable.

# Concurrency

Counters are single-threaded. Read methods are pure and may run
concurrently with each other but not with Add. For concurrent ingestion,
shard the ballots and merge the shards:

	result, err := tally.IngestParallel(ctx, 4, ballots, newShard, add)
*/
package tally
