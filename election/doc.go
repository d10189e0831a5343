// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package election runs a complete count from a cliparse.Config.

It picks the counting method (plurality or Borda), the Borda variant, the
count type (uint64, float64 or *big.Rat) and the number of ingestion
workers from the config, then returns the ranked winners.

# Usage

	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	winners, err := election.Count(ctx, cfg, ballots)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(winners)

# Ballots

Every ballot is a ranked list of candidate names, most preferred first.
Plurality only looks at the first name; empty ballots are skipped.
*/
package election
