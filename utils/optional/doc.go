// Package optional provides a value that may be absent.
//
// Package: optional
// Title: Optional Value Wrapper
// Description: Optional[T] is either Present(value) or Empty. It is an
//              immutable value type; Filter and Map return new instances.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation
//
// Usage:
//
//	user := optional.OfNullable(findUser(id)) // Empty when findUser returns nil
//	name := optional.Map(user, func(u *User) string { return u.Name }).OrElse("anonymous")
//
//	admin, err := user.
//		Filter(func(u *User) bool { return u.Admin }).
//		OrElseError(func() error { return errNotAdmin })
//
// Present never holds nil: OfNullable and Some turn nil pointers, maps,
// slices, channels, functions and interfaces into Empty, and Of reports
// them as NULL_REFERENCE. Get on Empty returns NO_SUCH_ELEMENT.
//
// Optional encodes to JSON and YAML as its value, or null when Empty.
package optional
