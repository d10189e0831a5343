// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package testutil holds fixtures and assertions shared by the tally tests.

# Fixtures

  - PluralityVotes: Alice 3, Bob 2, Cir 1
  - TiedVotes: Alice 3, Cir 2, Bob 2, Dave 1 (Bob and Cir tie at rank 1)
  - CandidateID / CandidateIDs: stable uuid.UUID candidates for tests that
    need an opaque candidate type
  - Shuffled: seeded shuffle for order-independence checks

# Assertions

	testutil.AssertWinners(t, tally.Winners(), "Alice", "Bob")
	testutil.AssertRanks(t, tally.Ranked(), map[string]int{"Alice": 0, "Bob": 1})

AssertWinners ignores the order of tied candidates, which callers must not
rely on.
*/
package testutil
