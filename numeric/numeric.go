// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package numeric

import (
	"cmp"
	"math/big"

	"golang.org/x/exp/constraints"
)

// Number is the set of builtin types that can be used as a vote count.
type Number interface {
	constraints.Integer | constraints.Float
}

// Arithmetic is the value-only arithmetic a tally needs from its count type.
// Implementations must never mutate their arguments.
type Arithmetic[C any] interface {
	Zero() C
	One() C
	FromInt(n int) C
	Add(a, b C) C
	Mul(a, b C) C
	// Compare returns -1, 0 or +1 like cmp.Compare.
	Compare(a, b C) int
}

// Divider is an Arithmetic that also supports true division.
// Only count types that can hold fractions should implement it.
type Divider[C any] interface {
	Arithmetic[C]
	Div(a, b C) C
}

type builtin[C Number] struct{}

func (builtin[C]) Zero() C { return 0 }
func (builtin[C]) One() C { return 1 }
func (builtin[C]) FromInt(n int) C { return C(n) }
func (builtin[C]) Add(a, b C) C { return a + b }
func (builtin[C]) Mul(a, b C) C { return a * b }
func (builtin[C]) Compare(a, b C) int { return cmp.Compare(a, b) }

type fractional[C Number] struct {
	builtin[C]
}

func (fractional[C]) Div(a, b C) C { return a / b }

// Integer returns the arithmetic for a builtin integer count type.
// It deliberately does not implement Divider.
func Integer[C constraints.Integer]() Arithmetic[C] {
	return builtin[C]{}
}

// Float returns the arithmetic for a builtin floating point count type.
func Float[C constraints.Float]() Divider[C] {
	return fractional[C]{}
}

// For returns the arithmetic for any builtin count type. Floating point
// types get a Divider, integer types do not.
func For[C Number]() Arithmetic[C] {
	if IsFractional[C]() {
		return fractional[C]{}
	}
	return builtin[C]{}
}

// IsFractional reports whether C can represent one half.
func IsFractional[C Number]() bool {
	var one, two C = 1, 2
	return one/two != 0
}

type rational struct{}

func (rational) Zero() *big.Rat { return new(big.Rat) }
func (rational) One() *big.Rat { return big.NewRat(1, 1) }
func (rational) FromInt(n int) *big.Rat { return big.NewRat(int64(n), 1) }
func (rational) Add(a, b *big.Rat) *big.Rat { return new(big.Rat).Add(a, b) }
func (rational) Mul(a, b *big.Rat) *big.Rat { return new(big.Rat).Mul(a, b) }
func (rational) Div(a, b *big.Rat) *big.Rat { return new(big.Rat).Quo(a, b) }
func (rational) Compare(a, b *big.Rat) int { return a.Cmp(b) }

// Rational returns exact fractional arithmetic over *big.Rat.
// Weights passed to a tally must be non-nil.
func Rational() Divider[*big.Rat] {
	return rational{}
}
