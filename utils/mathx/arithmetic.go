// File: arithmetic.go
// Title: Decimal Arithmetic Capability
// Description: Exposes Decimal through the zero/add/divide capability used by
//              the generic aggregation functions in utils/slicex.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation

package mathx

import (
	"math/big"
)

// DecimalArithmetic implements slicex.Arithmetic[Decimal]. Averages are
// exact rationals; round them with Round or StringFixed for display.
type DecimalArithmetic struct{}

// Zero returns the additive identity
func (DecimalArithmetic) Zero() Decimal {
	return Zero()
}

// Add returns a + b
func (DecimalArithmetic) Add(a, b Decimal) Decimal {
	return a.Add(b)
}

// Divide returns sum / n. n is always positive.
func (DecimalArithmetic) Divide(sum Decimal, n int) Decimal {
	return Decimal{value: new(big.Rat).Quo(sum.rat(), new(big.Rat).SetInt64(int64(n)))}
}
