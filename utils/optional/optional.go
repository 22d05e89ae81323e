// File: optional.go
// Title: Optional Value Wrapper
// Description: Implements Optional[T], an immutable value that is either
//              Present(value) or Empty, with presence checks, fallbacks,
//              filtering and mapping.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation

package optional

import (
	"fmt"
	"reflect"

	etkerrors "github.com/msto63/etkit/core/errors"
)

// Optional holds at most one non-nil value. The zero value is Empty.
type Optional[T any] struct {
	value   T
	present bool
}

// Empty returns an Optional without a value
func Empty[T any]() Optional[T] {
	return Optional[T]{}
}

// OfNullable wraps value. Nil pointers, interfaces, maps, slices, channels
// and functions produce Empty.
func OfNullable[T any](value T) Optional[T] {
	if isNil(value) {
		return Empty[T]()
	}
	return Optional[T]{value: value, present: true}
}

// Some is OfNullable for call sites that expect a value to be present
func Some[T any](value T) Optional[T] {
	return OfNullable(value)
}

// Of wraps value and fails with NULL_REFERENCE when value is nil
func Of[T any](value T) (Optional[T], error) {
	if isNil(value) {
		return Empty[T](), etkerrors.NullReference(etkerrors.ModuleOptional, "Of")
	}
	return Optional[T]{value: value, present: true}, nil
}

// MustOf is like Of but panics when value is nil
func MustOf[T any](value T) Optional[T] {
	o, err := Of(value)
	if err != nil {
		panic(err)
	}
	return o
}

func isNil(value any) bool {
	if value == nil {
		return true
	}

	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice,
		reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return v.IsNil()
	default:
		return false
	}
}

// IsPresent reports whether o holds a value
func (o Optional[T]) IsPresent() bool {
	return o.present
}

// IsEmpty reports whether o holds no value
func (o Optional[T]) IsEmpty() bool {
	return !o.present
}

// IfPresent calls action with the value when present
func (o Optional[T]) IfPresent(action func(T)) {
	if o.present && action != nil {
		action(o.value)
	}
}

// IfPresentOrElse calls action with the value when present and emptyAction otherwise
func (o Optional[T]) IfPresentOrElse(action func(T), emptyAction func()) {
	if o.present {
		if action != nil {
			action(o.value)
		}
		return
	}
	if emptyAction != nil {
		emptyAction()
	}
}

// Get returns the value or a NO_SUCH_ELEMENT error when empty
func (o Optional[T]) Get() (T, error) {
	if !o.present {
		var zero T
		return zero, etkerrors.NoSuchElement(etkerrors.ModuleOptional, "Get")
	}
	return o.value, nil
}

// MustGet returns the value and panics when empty
func (o Optional[T]) MustGet() T {
	value, err := o.Get()
	if err != nil {
		panic(err)
	}
	return value
}

// Unwrap returns the value and whether it is present
func (o Optional[T]) Unwrap() (T, bool) {
	return o.value, o.present
}

// OrElse returns the value when present and other otherwise
func (o Optional[T]) OrElse(other T) T {
	if o.present {
		return o.value
	}
	return other
}

// OrElseGet returns the value when present. Otherwise it returns the result
// of supplier, which is only called in that case.
func (o Optional[T]) OrElseGet(supplier func() T) T {
	if o.present {
		return o.value
	}
	if supplier == nil {
		var zero T
		return zero
	}
	return supplier()
}

// OrElseError returns the value when present and the error built by factory
// otherwise. A nil factory yields NO_SUCH_ELEMENT.
func (o Optional[T]) OrElseError(factory func() error) (T, error) {
	if o.present {
		return o.value, nil
	}

	var zero T
	if factory == nil {
		return zero, etkerrors.NoSuchElement(etkerrors.ModuleOptional, "OrElseError")
	}
	return zero, factory()
}

// Filter returns o when it is present and predicate holds, Empty otherwise.
// predicate runs at most once and never on an empty Optional.
func (o Optional[T]) Filter(predicate func(T) bool) Optional[T] {
	if !o.present || predicate == nil || !predicate(o.value) {
		return Empty[T]()
	}
	return o
}

// String returns Optional[value] or Optional.Empty
func (o Optional[T]) String() string {
	if !o.present {
		return "Optional.Empty"
	}
	return fmt.Sprintf("Optional[%v]", o.value)
}

// Map applies mapper to the value of a present Optional. A nil result is Empty.
func Map[T, U any](o Optional[T], mapper func(T) U) Optional[U] {
	if !o.present || mapper == nil {
		return Empty[U]()
	}
	return OfNullable(mapper(o.value))
}

// FlatMap applies mapper to the value of a present Optional and returns its result
func FlatMap[T, U any](o Optional[T], mapper func(T) Optional[U]) Optional[U] {
	if !o.present || mapper == nil {
		return Empty[U]()
	}
	return mapper(o.value)
}
