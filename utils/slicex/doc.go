// File: doc.go
// Title: Package Documentation for slicex
// Description: Package slicex provides conditional aggregation over slices.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation

// Package slicex provides conditional aggregation over slices.
//
// Four primitives are offered:
//
//   - SumIf / SumIfWith: sum of the elements matching a predicate
//   - AvgIf / AvgIfWith: mean of the elements matching a predicate
//   - MatchUnique: whether exactly one element matches
//   - CopyToIf: copy matching elements into a Collector
//
// Built-in integer and float kinds satisfy Number and use the language
// operators. Other numeric types, such as mathx.Decimal, supply an
// Arithmetic implementation:
//
//	total := slicex.SumIf(amounts, func(n int) bool { return n > 0 })
//	avg, ok, err := slicex.AvgIfWith(prices, mathx.DecimalArithmetic{}, nil)
//
// A nil predicate selects every element, except in MatchUnique where it is
// rejected. A nil source slice is the empty sequence. An average over zero
// matching elements reports false instead of dividing by zero.
//
// CopyToIf either completes or leaves the collector reset. Errors returned
// by the collector are wrapped with the failing index; a panicking predicate
// resets the collector before the panic propagates. Collectors are not safe
// for concurrent use.
package slicex
