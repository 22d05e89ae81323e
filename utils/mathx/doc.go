// File: doc.go
// Title: Package Documentation for mathx
// Description: Package mathx provides exact decimal arithmetic for etkit.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation

// Package mathx provides exact decimal arithmetic.
//
// Decimal wraps a math/big rational, so sums and averages never lose
// precision. Rounding only happens when a value is rendered with Round,
// Truncate or StringFixed.
//
// Basic decimal arithmetic:
//
//	price := mathx.MustNewDecimal("19.99")
//	total := price.Multiply(mathx.NewDecimalFromInt(3))
//	fmt.Println(total.StringFixed(2)) // 59.97
//
// Decimals plug into the generic aggregation functions through
// DecimalArithmetic:
//
//	sum, err := slicex.SumIfWith(values, mathx.DecimalArithmetic{}, nil)
package mathx
