// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package numeric describes what a tally needs from its vote count type.

# Capabilities

Counting only needs additive and multiplicative identities, addition,
multiplication, ordering and conversion from small integers:

	type Arithmetic[C any] interface {
		Zero() C
		One() C
		FromInt(n int) C
		Add(a, b C) C
		Mul(a, b C) C
		Compare(a, b C) int
	}

Point formulas that divide (Dowdall) need the extended Divider capability.
Integer arithmetic never implements Divider, so a tally that needs division
can refuse an integer count type when it is constructed instead of silently
truncating every quotient.

# Provided Implementations

  - Integer[C]: any builtin integer type (Arithmetic)
  - Float[C]: float32 or float64 (Divider)
  - Rational(): exact fractions over *big.Rat (Divider)
  - For[C]: picks Float or Integer behaviour for any builtin number

Example:

	arith := numeric.For[uint64]()
	_, canDivide := arith.(numeric.Divider[uint64]) // false
*/
package numeric
