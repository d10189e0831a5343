// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package election

import (
	"context"
	"fmt"
	"log/slog"
	"math/big"

	"github.com/danielhkuo/quickly-tally/borda"
	"github.com/danielhkuo/quickly-tally/cliparse"
	"github.com/danielhkuo/quickly-tally/numeric"
	"github.com/danielhkuo/quickly-tally/plurality"
	"github.com/danielhkuo/quickly-tally/tally"
)

// Count tallies ranked ballots with the method, variant, count type and
// worker count of cfg and returns the winners.
//
// Plurality counts the first preference of every ballot and skips empty
// ballots. Borda scores every position.
func Count(ctx context.Context, cfg cliparse.Config, ballots [][]string) (tally.RankedWinners[string], error) {
	if err := cfg.Validate(); err != nil {
		return tally.RankedWinners[string]{}, fmt.Errorf("invalid config: %w", err)
	}

	switch cfg.CountKind {
	case cliparse.CountFloat:
		return count[float64](ctx, cfg, numeric.Float[float64](), ballots)
	case cliparse.CountRational:
		return count[*big.Rat](ctx, cfg, numeric.Rational(), ballots)
	default:
		return count[uint64](ctx, cfg, numeric.Integer[uint64](), ballots)
	}
}

func count[C any](ctx context.Context, cfg cliparse.Config, arith numeric.Arithmetic[C], ballots [][]string) (tally.RankedWinners[string], error) {
	var winners tally.RankedWinners[string]

	switch cfg.Method {
	case cliparse.MethodBorda:
		// checked once here so shards cannot fail
		if _, err := borda.NewTally[string](arith, cfg.Winners, 0, cfg.Variant); err != nil {
			return winners, err
		}

		t, err := tally.IngestParallel(ctx, cfg.Workers, ballots,
			func() *borda.Tally[string, C] {
				shard, _ := borda.NewTally[string](arith, cfg.Winners, 0, cfg.Variant)
				return shard
			},
			(*borda.Tally[string, C]).Add,
		)
		if err != nil {
			return winners, err
		}
		winners = t.Winners()

	default:
		t, err := tally.IngestParallel(ctx, cfg.Workers, ballots,
			func() *plurality.Tally[string, C] {
				return plurality.NewTally[string](arith, cfg.Winners, 0)
			},
			func(t *plurality.Tally[string, C], ballot []string) {
				if len(ballot) > 0 {
					t.Add(ballot[0])
				}
			},
		)
		if err != nil {
			return winners, err
		}
		winners = t.Winners()
	}

	slog.Debug("election counted",
		"method", cfg.Method,
		"count", cfg.CountKind,
		"ballots", len(ballots),
		"winners", winners.Len(),
	)
	return winners, nil
}
