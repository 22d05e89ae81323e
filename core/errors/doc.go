// Package errors provides module-scoped constructors on top of core/error.
//
// Package: errors
// Title: etkit Error Standards
// Description: Every etkit module reports failures through these helpers so that the
//              code, the module name and the operation are always set the same way.
//              Details always carry "module" and "operation" keys.
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
//	if target == nil {
//		return errors.InvalidArgument(errors.ModuleSlicex, "CopyToIf", "target", "non-nil collector")
//	}
package errors
