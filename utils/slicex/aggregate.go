// File: aggregate.go
// Title: Conditional Aggregation
// Description: Conditional sum, conditional average, uniqueness matching and
//              conditional copy over slices. Built-in numeric kinds use the
//              operators directly; other types pass an Arithmetic.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation

package slicex

import (
	etkerror "github.com/msto63/etkit/core/error"
	etkerrors "github.com/msto63/etkit/core/errors"
)

// ===============================
// Sum and Average
// ===============================

// SumIf returns the sum of the elements matching predicate. A nil predicate
// matches every element. An empty source sums to zero.
func SumIf[T Number](source []T, predicate func(T) bool) T {
	sum, _ := sumCount(source, NumberArithmetic[T]{}, predicate)
	return sum
}

// SumIfWith is SumIf for types that bring their own arithmetic
func SumIfWith[T any](source []T, arith Arithmetic[T], predicate func(T) bool) (T, error) {
	if arith == nil {
		var zero T
		return zero, etkerrors.InvalidArgument(etkerrors.ModuleSlicex, "SumIfWith", "arith", "non-nil Arithmetic")
	}
	sum, _ := sumCount(source, arith, predicate)
	return sum, nil
}

// AvgIf returns the mean of the elements matching predicate. A nil predicate
// averages every element. The second result is false when nothing matched.
// Integer kinds use integer division.
func AvgIf[T Number](source []T, predicate func(T) bool) (T, bool) {
	return average(source, NumberArithmetic[T]{}, predicate)
}

// AvgIfWith is AvgIf for types that bring their own arithmetic
func AvgIfWith[T any](source []T, arith Arithmetic[T], predicate func(T) bool) (T, bool, error) {
	if arith == nil {
		var zero T
		return zero, false, etkerrors.InvalidArgument(etkerrors.ModuleSlicex, "AvgIfWith", "arith", "non-nil Arithmetic")
	}
	avg, ok := average(source, arith, predicate)
	return avg, ok, nil
}

func average[T any](source []T, arith Arithmetic[T], predicate func(T) bool) (T, bool) {
	sum, count := sumCount(source, arith, predicate)
	if count == 0 {
		return arith.Zero(), false
	}
	return arith.Divide(sum, count), true
}

// sumCount folds the matching elements in source order
func sumCount[T any](source []T, arith Arithmetic[T], predicate func(T) bool) (T, int) {
	sum := arith.Zero()
	count := 0
	for _, item := range source {
		if predicate != nil && !predicate(item) {
			continue
		}
		sum = arith.Add(sum, item)
		count++
	}
	return sum, count
}

// ===============================
// Counting and Matching
// ===============================

// CountIf returns the number of elements matching predicate. A nil predicate
// counts every element.
func CountIf[T any](source []T, predicate func(T) bool) int {
	if predicate == nil {
		return len(source)
	}

	count := 0
	for _, item := range source {
		if predicate(item) {
			count++
		}
	}
	return count
}

// MatchUnique reports whether exactly one element matches predicate.
// The predicate is evaluated for every element.
func MatchUnique[T any](source []T, predicate func(T) bool) (bool, error) {
	if predicate == nil {
		return false, etkerrors.InvalidArgument(etkerrors.ModuleSlicex, "MatchUnique", "predicate", "non-nil predicate")
	}
	return CountIf(source, predicate) == 1, nil
}

// ===============================
// Conditional Copy
// ===============================

// CopyToIf adds the elements matching predicate to target in source order and
// returns how many were added. A nil predicate copies every element.
//
// If target rejects an element the target is reset and the error is returned
// with the failing index. If predicate panics the target is reset before the
// panic continues.
func CopyToIf[T any](source []T, target Collector[T], predicate func(T) bool) (written int, err error) {
	if target == nil {
		return 0, etkerrors.InvalidArgument(etkerrors.ModuleSlicex, "CopyToIf", "target", "non-nil Collector")
	}

	completed := false
	defer func() {
		if !completed {
			target.Reset()
		}
	}()

	for i, item := range source {
		if predicate != nil && !predicate(item) {
			continue
		}
		if addErr := target.Add(item); addErr != nil {
			return 0, etkerror.Wrap(addErr, "conditional copy failed").
				WithOperation("slicex.CopyToIf").
				WithDetail("index", i).
				WithDetail("written", written)
		}
		written++
	}

	completed = true
	return written, nil
}

// CopyToSliceIf appends the elements matching predicate to *target
func CopyToSliceIf[T any](source []T, target *[]T, predicate func(T) bool) error {
	if target == nil {
		return etkerrors.InvalidArgument(etkerrors.ModuleSlicex, "CopyToSliceIf", "target", "non-nil slice pointer")
	}
	_, err := CopyToIf[T](source, NewSliceCollector(target), predicate)
	return err
}
