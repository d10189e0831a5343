// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package election

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielhkuo/quickly-tally/borda"
	"github.com/danielhkuo/quickly-tally/cliparse"
	"github.com/danielhkuo/quickly-tally/testutil"
)

// plurality ties A and B, Borda prefers the compromise C and Dowdall
// breaks the tie for A (19/6 against 3 and 3)
func compromiseBallots() [][]string {
	return [][]string{
		{"A", "C", "B"},
		{"A", "C", "B"},
		{"B", "C", "A"},
		{"B", "C", "A"},
		{"C", "A", "B"},
	}
}

func config(method string, variant borda.Variant, count string) cliparse.Config {
	return cliparse.Config{
		Method:    method,
		Variant:   variant,
		Winners:   1,
		CountKind: count,
		Workers:   2,
	}
}

func TestCountMethods(t *testing.T) {
	tests := []struct {
		name string
		cfg  cliparse.Config
		want []string
	}{
		{"plurality integer", config(cliparse.MethodPlurality, borda.Borda, cliparse.CountInteger), []string{"A", "B"}},
		{"plurality rational", config(cliparse.MethodPlurality, borda.Dowdall, cliparse.CountRational), []string{"A", "B"}},
		{"borda integer", config(cliparse.MethodBorda, borda.Borda, cliparse.CountInteger), []string{"C"}},
		{"classic borda float", config(cliparse.MethodBorda, borda.ClassicBorda, cliparse.CountFloat), []string{"C"}},
		{"dowdall float", config(cliparse.MethodBorda, borda.Dowdall, cliparse.CountFloat), []string{"A"}},
		{"dowdall rational", config(cliparse.MethodBorda, borda.Dowdall, cliparse.CountRational), []string{"A"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			winners, err := Count(context.Background(), tt.cfg, compromiseBallots())
			require.NoError(t, err)
			testutil.AssertWinners(t, winners, tt.want...)
		})
	}
}

func TestCountDowdallScenario(t *testing.T) {
	cfg := config(cliparse.MethodBorda, borda.Dowdall, cliparse.CountRational)
	cfg.Winners = 0

	winners, err := Count(context.Background(), cfg, [][]string{
		{"Obama", "McCain"},
		{"Obama", "Romney"},
	})
	require.NoError(t, err)
	testutil.AssertRanks(t, winners, map[string]int{"Obama": 0, "McCain": 1, "Romney": 1})
}

func TestCountPluralitySkipsEmptyBallots(t *testing.T) {
	cfg := config(cliparse.MethodPlurality, borda.Borda, cliparse.CountInteger)
	cfg.Winners = 0

	winners, err := Count(context.Background(), cfg, [][]string{{}, {"Alice", "Bob"}, nil, {"Bob"}, {"Alice"}})
	require.NoError(t, err)
	testutil.AssertRanks(t, winners, map[string]int{"Alice": 0, "Bob": 1})
}

func TestCountWorkersDoNotChangeResult(t *testing.T) {
	var ballots [][]string
	for i := 0; i < 40; i++ {
		ballots = append(ballots, testutil.Shuffled(compromiseBallots(), uint64(i))...)
	}

	cfg := config(cliparse.MethodBorda, borda.ModifiedBorda, cliparse.CountInteger)
	cfg.Winners = 0
	cfg.Workers = 1
	want, err := Count(context.Background(), cfg, ballots)
	require.NoError(t, err)

	for _, workers := range []int{0, 3, 16} {
		cfg.Workers = workers
		got, err := Count(context.Background(), cfg, ballots)
		require.NoError(t, err)
		assert.Equal(t, want.Ranks(), got.Ranks(), "workers=%d", workers)
	}
}

func TestCountInvalidConfig(t *testing.T) {
	tests := []struct {
		name string
		cfg  cliparse.Config
		want error
	}{
		{"dowdall with integers", config(cliparse.MethodBorda, borda.Dowdall, cliparse.CountInteger), borda.ErrDivisionUnsupported},
		{"unknown method", config("stv", borda.Borda, cliparse.CountInteger), cliparse.ErrInvalidMethod},
		{"unknown count", config(cliparse.MethodPlurality, borda.Borda, "complex"), cliparse.ErrInvalidCount},
		{"unknown variant", config(cliparse.MethodBorda, borda.Variant(9), cliparse.CountFloat), borda.ErrUnknownVariant},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Count(context.Background(), tt.cfg, compromiseBallots())
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestCountCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Count(ctx, config(cliparse.MethodBorda, borda.Borda, cliparse.CountInteger), compromiseBallots())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCountFromParsedFlags(t *testing.T) {
	cfg, err := cliparse.ParseFlags([]string{"-m", "borda", "-v", "classic-borda", "-n", "1", "-c", "integer", "-w", "2"})
	require.NoError(t, err)

	winners, err := Count(context.Background(), cfg, compromiseBallots())
	require.NoError(t, err)
	testutil.AssertWinners(t, winners, "C")
}
