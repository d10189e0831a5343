// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package tally

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Merger is a tally that can absorb the running totals of another tally of the same type
type Merger[S any] interface {
	Merge(other S)
}

// IngestParallel feeds ballots into one shard per worker and merges the shards.
//
// Ballots are split into contiguous chunks so the merged result does not depend
// on goroutine scheduling: shards are merged into the first shard in order.
// newShard must return an empty tally and add must only touch the shard it is given.
// workers <= 0 uses GOMAXPROCS.
func IngestParallel[B any, S Merger[S]](ctx context.Context, workers int, ballots []B, newShard func() S, add func(S, B)) (S, error) {
	var zero S

	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > len(ballots) {
		workers = len(ballots)
	}

	if workers <= 1 {
		shard := newShard()
		for _, b := range ballots {
			if err := ctx.Err(); err != nil {
				return zero, fmt.Errorf("ingestion cancelled: %w", err)
			}
			add(shard, b)
		}
		return shard, nil
	}

	chunk := (len(ballots) + workers - 1) / workers
	shards := make([]S, workers)

	g, gctx := errgroup.WithContext(ctx)
	for i := range shards {
		shard := newShard()
		shards[i] = shard

		lo := min(i*chunk, len(ballots))
		hi := min(lo+chunk, len(ballots))
		part := ballots[lo:hi]

		g.Go(func() error {
			for _, b := range part {
				if err := gctx.Err(); err != nil {
					return err
				}
				add(shard, b)
			}
			slog.Debug("tally shard ingested", "shard", i, "ballots", len(part))
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return zero, fmt.Errorf("ingestion cancelled: %w", err)
	}

	for _, shard := range shards[1:] {
		shards[0].Merge(shard)
	}
	return shards[0], nil
}
