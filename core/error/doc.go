// Package error provides the structured error type used by all etkit packages.
//
// Package: error
// Title: etkit Error Handling
// Description: Structured errors carrying a code, a severity, key/value details, the
//              failing operation and a captured stack trace. Errors render as plain
//              strings for callers and as JSON for the structured logger.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation with codes and severities
//
// Usage:
//
//	import etkerror "github.com/msto63/etkit/core/error"
//
//	err := etkerror.New("target collector is nil").
//		WithCode(etkerror.CodeInvalidArgument).
//		WithOperation("slicex.CopyToIf").
//		WithDetail("argument", "target")
//
//	if etkerror.HasCode(err, etkerror.CodeInvalidArgument) {
//		// reject the call
//	}
//
// HasCode and GetCode look through wrapped chains, so an error that was wrapped by
// fmt.Errorf("...: %w", err) keeps its code.
package error
