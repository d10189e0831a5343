// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package plurality implements single-choice (first-past-the-post) counting.

Each vote names one candidate; the candidates with the most votes win.

# Usage

	t := plurality.New[string, uint64](2)
	t.Add("Alice")
	t.Add("Bob")
	t.AddWeighted("Alice", 3)

	for _, r := range t.Winners().Ranks() {
		fmt.Println(r.Candidate, r.Rank)
	}

# Count Types

New and WithCapacity accept any builtin integer or float count type. Use a
float (or NewTally with numeric.Rational) for fractional vote weights:

	t := plurality.NewTally[string, *big.Rat](numeric.Rational(), 1, 0)
	t.AddWeighted("Alice", big.NewRat(5, 4))

# Ties

Winners may return more candidates than requested when candidates tie at
the last winning rank. See package tally for the ranking rules.
*/
package plurality
