// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package borda

import (
	"fmt"
	"strings"

	"github.com/danielhkuo/quickly-tally/numeric"
)

// Variant selects how points are assigned to ranked candidates.
// In general Borda, Dowdall or ModifiedBorda are preferred.
type Variant int

const (
	// Borda is the "starting at 0" count: N - position - 1.
	// On a four candidate ballot the points are 3, 2, 1, 0.
	Borda Variant = iota

	// ClassicBorda is Borda's original "starting at 1" count: N - position.
	// On a four candidate ballot the points are 4, 3, 2, 1.
	ClassicBorda

	// Dowdall gives 1 / (position + 1): 1, ½, ⅓, ¼ ...
	// Points do not depend on the number of candidates.
	// Requires a count type that can divide (float or rational).
	Dowdall

	// ModifiedBorda counts only what the voter marked: marked - position - 1.
	// A voter who ranks m of N candidates gives m-1 points to their first
	// preference, which counteracts bullet voting.
	ModifiedBorda

	// ModifiedClassicBorda is ModifiedBorda starting at 1: marked - position.
	ModifiedClassicBorda
)

var variantNames = [...]string{
	Borda:                "borda",
	ClassicBorda:         "classic-borda",
	Dowdall:              "dowdall",
	ModifiedBorda:        "modified-borda",
	ModifiedClassicBorda: "modified-classic-borda",
}

// Variants lists every supported variant
func Variants() []Variant {
	return []Variant{Borda, ClassicBorda, Dowdall, ModifiedBorda, ModifiedClassicBorda}
}

// Valid reports whether v is a known variant
func (v Variant) Valid() bool {
	return v >= Borda && v <= ModifiedClassicBorda
}

func (v Variant) String() string {
	if !v.Valid() {
		return fmt.Sprintf("Variant(%d)", int(v))
	}
	return variantNames[v]
}

// ParseVariant parses a variant name such as "modified-borda".
// Matching is case-insensitive and accepts underscores for dashes.
func ParseVariant(s string) (Variant, error) {
	name := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "_", "-")
	for _, v := range Variants() {
		if variantNames[v] == name {
			return v, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownVariant, s)
}

// RequiresDivision reports whether the variant's points can be fractional
func (v Variant) RequiresDivision() bool {
	return v == Dowdall
}

// Points returns the points for the candidate at zero-indexed position on a
// ballot marking marked candidates out of candidates in total, as the
// fraction num/den.
//
// Subtractions are done on signed integers and clamped at zero, so the last
// position scores exactly zero and positions past the candidate count
// (repeated candidates on one ballot) never go negative. Unknown variants
// score nothing; PointsAs reports them.
func (v Variant) Points(position, candidates, marked int) (num, den int) {
	switch v {
	case Borda:
		num = candidates - position - 1
	case ClassicBorda:
		num = candidates - position
	case Dowdall:
		return 1, position + 1
	case ModifiedBorda:
		num = marked - position - 1
	case ModifiedClassicBorda:
		num = marked - position
	}
	return max(num, 0), 1
}

// PointsAs converts the points of v into the count type described by arith.
// Fractional points need arith to be a numeric.Divider. Unknown variants fail
// with ErrUnknownVariant.
func PointsAs[C any](v Variant, arith numeric.Arithmetic[C], position, candidates, marked int) (C, error) {
	if !v.Valid() {
		return arith.Zero(), fmt.Errorf("%w: %s", ErrUnknownVariant, v)
	}

	num, den := v.Points(position, candidates, marked)
	points := arith.FromInt(num)
	if den == 1 {
		return points, nil
	}

	div, ok := arith.(numeric.Divider[C])
	if !ok {
		return arith.Zero(), fmt.Errorf("%s points: %w", v, ErrDivisionUnsupported)
	}
	return div.Div(points, arith.FromInt(den)), nil
}
