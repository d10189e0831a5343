// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package tally

import (
	"github.com/danielhkuo/quickly-tally/numeric"
)

// Counted pairs a selection with its accumulated weight
type Counted[K comparable, C any] struct {
	Selection K
	Count     C
}

// Counter accumulates an additive weight per distinct selection.
// Selections are remembered in first-seen order so snapshots are deterministic.
// A Counter is not safe for concurrent mutation.
type Counter[K comparable, C any] struct {
	arith   numeric.Arithmetic[C]
	index   map[K]int
	entries []Counted[K, C]
}

// NewCounter creates an empty counter. expectedSelections is a capacity hint, never a limit.
func NewCounter[K comparable, C any](arith numeric.Arithmetic[C], expectedSelections int) *Counter[K, C] {
	if expectedSelections < 0 {
		expectedSelections = 0
	}
	return &Counter[K, C]{
		arith:   arith,
		index:   make(map[K]int, expectedSelections),
		entries: make([]Counted[K, C], 0, expectedSelections),
	}
}

// Add records one unit of weight for selection
func (c *Counter[K, C]) Add(selection K) {
	c.AddWeighted(selection, c.arith.One())
}

// AddWeighted accumulates weight into the running total of selection.
// Zero and negative weights are recorded as given.
func (c *Counter[K, C]) AddWeighted(selection K, weight C) {
	if i, ok := c.index[selection]; ok {
		c.entries[i].Count = c.arith.Add(c.entries[i].Count, weight)
		return
	}

	// cloned so the counter never aliases a caller-owned value
	c.index[selection] = len(c.entries)
	c.entries = append(c.entries, Counted[K, C]{
		Selection: selection,
		Count:     c.clone(weight),
	})
}

// Len returns the number of distinct selections seen
func (c *Counter[K, C]) Len() int {
	return len(c.entries)
}

// Get returns a copy of the accumulated weight of selection
func (c *Counter[K, C]) Get(selection K) (C, bool) {
	i, ok := c.index[selection]
	if !ok {
		return c.arith.Zero(), false
	}
	return c.clone(c.entries[i].Count), true
}

// Selections returns every distinct selection seen.
// Callers must not rely on the order.
func (c *Counter[K, C]) Selections() []K {
	out := make([]K, len(c.entries))
	for i, entry := range c.entries {
		out[i] = entry.Selection
	}
	return out
}

// Totals returns a snapshot of the running totals, highest count first
func (c *Counter[K, C]) Totals() []Counted[K, C] {
	out := c.snapshot()
	sortByCount(out, c.arith.Compare)
	return out
}

// Rank ranks the current totals, see Rank
func (c *Counter[K, C]) Rank(resultSize int) RankedWinners[K] {
	return Rank(c.snapshot(), resultSize, c.arith.Compare)
}

// Merge adds every running total of other into c.
// Selections only known to other are appended in other's first-seen order.
func (c *Counter[K, C]) Merge(other *Counter[K, C]) {
	if other == nil {
		return
	}
	for _, entry := range other.entries {
		c.AddWeighted(entry.Selection, entry.Count)
	}
}

// snapshot copies every count so callers cannot reach the running totals
func (c *Counter[K, C]) snapshot() []Counted[K, C] {
	out := make([]Counted[K, C], len(c.entries))
	for i, entry := range c.entries {
		out[i] = Counted[K, C]{Selection: entry.Selection, Count: c.clone(entry.Count)}
	}
	return out
}

// clone returns Zero + count, a fresh value for pointer counts such as *big.Rat
func (c *Counter[K, C]) clone(count C) C {
	return c.arith.Add(c.arith.Zero(), count)
}
