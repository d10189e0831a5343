// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package borda implements the Borda family of ranked ballot counts.

Each ballot ranks candidates, most preferred first. Every position on a
ballot is worth a number of points, chosen by the Variant, and the
candidates with the most points win.

# Variants

With position p (zero-indexed), N distinct candidates across all ballots and
m candidates marked on the ballot:

	Borda                 N - p - 1
	ClassicBorda          N - p
	Dowdall               1 / (p + 1)
	ModifiedBorda         m - p - 1
	ModifiedClassicBorda  m - p

Points never go below zero.

# Usage

	t, err := borda.New[string, uint64](1, borda.Borda)
	if err != nil {
		return err
	}
	t.Add([]string{"Alice", "Bob", "Carlos", "Dave"})
	winners := t.Winners()

# Fractional Points

Dowdall points are fractions, so the count type must be able to divide.
Constructing a Dowdall tally with an integer count type fails with
ErrDivisionUnsupported instead of silently truncating:

	_, err := borda.New[string, uint64](1, borda.Dowdall) // ErrDivisionUnsupported
	t, err := borda.New[string, float64](1, borda.Dowdall)
	t, err := borda.NewTally[string, *big.Rat](numeric.Rational(), 1, 0, borda.Dowdall)

# Counting

Identical ballots are counted once with their combined weight. Points are
assigned when Winners, Ranked or Totals is called, by feeding every ballot's
weighted points into a plurality tally.
*/
package borda
