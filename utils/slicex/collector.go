// File: collector.go
// Title: Copy Targets
// Description: Output containers for CopyToIf: a growable collector appending to
//              a caller-owned slice and a fixed-capacity collector writing by index.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation

package slicex

import (
	etkerrors "github.com/msto63/etkit/core/errors"
)

// Collector receives the elements copied by CopyToIf.
// Reset undoes every Add since the collector was created or last reset.
type Collector[T any] interface {
	Add(item T) error
	Reset()
}

// SliceCollector appends to a caller-owned slice
type SliceCollector[T any] struct {
	target *[]T
	start  int
}

// NewSliceCollector returns a collector appending to *target. Elements already
// in *target are kept and survive a Reset.
func NewSliceCollector[T any](target *[]T) *SliceCollector[T] {
	return &SliceCollector[T]{target: target, start: len(*target)}
}

// Add appends item
func (c *SliceCollector[T]) Add(item T) error {
	*c.target = append(*c.target, item)
	return nil
}

// Reset truncates the slice back to its length at creation
func (c *SliceCollector[T]) Reset() {
	clear((*c.target)[c.start:])
	*c.target = (*c.target)[:c.start]
}

// Len returns the number of elements added since creation or the last Reset
func (c *SliceCollector[T]) Len() int {
	return len(*c.target) - c.start
}

// FixedCollector writes into a preallocated slice starting at index 0,
// overwriting existing contents. It never grows the slice.
type FixedCollector[T any] struct {
	target []T
	next   int
}

// NewFixedCollector returns a collector writing into target
func NewFixedCollector[T any](target []T) *FixedCollector[T] {
	return &FixedCollector[T]{target: target}
}

// Add stores item at the next index or fails with CAPACITY_EXCEEDED
func (c *FixedCollector[T]) Add(item T) error {
	if c.next >= len(c.target) {
		return etkerrors.CapacityExceeded(etkerrors.ModuleSlicex, "FixedCollector.Add", c.next, len(c.target))
	}
	c.target[c.next] = item
	c.next++
	return nil
}

// Reset zeroes every slot and rewinds to index 0
func (c *FixedCollector[T]) Reset() {
	clear(c.target)
	c.next = 0
}

// Len returns the number of slots written
func (c *FixedCollector[T]) Len() int {
	return c.next
}

// Cap returns the fixed capacity
func (c *FixedCollector[T]) Cap() int {
	return len(c.target)
}
