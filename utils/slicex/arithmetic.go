// File: arithmetic.go
// Title: Generic Arithmetic Capability
// Description: Defines the Number constraint for built-in numeric kinds and the
//              Arithmetic capability that lets user-defined numeric types take
//              part in conditional sums and averages.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation
// - 2026-10-18 v0.1.1: Divide counts that do not fit an integer T in 64 bits

package slicex

import (
	"golang.org/x/exp/constraints"
)

// Number is satisfied by every built-in integer and floating point kind
type Number interface {
	constraints.Integer | constraints.Float
}

// Arithmetic supplies the operations an aggregation needs for T
type Arithmetic[T any] interface {
	// Zero returns the additive identity
	Zero() T

	// Add returns a + b
	Add(a, b T) T

	// Divide returns sum / n. Callers guarantee n > 0.
	Divide(sum T, n int) T
}

// NumberArithmetic implements Arithmetic with the built-in operators.
// Integer kinds divide with truncation toward zero.
type NumberArithmetic[T Number] struct{}

// Zero returns 0
func (NumberArithmetic[T]) Zero() T {
	var zero T
	return zero
}

// Add returns a + b
func (NumberArithmetic[T]) Add(a, b T) T {
	return a + b
}

// Divide returns sum / n. A count too large for an integer T is divided in
// 64 bits, so uint8 with 256 matches neither divides by zero nor wraps.
func (NumberArithmetic[T]) Divide(sum T, n int) T {
	var zero, one T = 0, 1
	if one/2 != zero {
		return sum / T(n)
	}
	if d := T(n); int(d) == n {
		return sum / d
	}
	if zero-one < zero {
		return T(int64(sum) / int64(n))
	}
	return T(uint64(sum) / uint64(n))
}
