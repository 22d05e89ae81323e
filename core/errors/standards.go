// File: standards.go
// Title: Error Standards for etkit Modules
// Description: Module identifiers and the standard constructors used by every etkit
//              package to report argument, lookup, capacity and arithmetic failures.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation for error standardization

package errors

import (
	"fmt"

	etkerror "github.com/msto63/etkit/core/error"
)

// Module identifiers for error categorization
const (
	ModuleSlicex   = "slicex"
	ModuleMathx    = "mathx"
	ModuleOptional = "optional"
	ModuleConfig   = "config"
	ModuleRule     = "rule"
	ModuleReport   = "report"
	ModuleCLI      = "cli"
)

// StandardError creates an error with module context and an explicit code
func StandardError(module, operation string, code etkerror.Code, message string) *etkerror.Error {
	return etkerror.New(message).
		WithCode(code).
		WithOperation(qualify(module, operation)).
		WithDetails(map[string]interface{}{
			"module":    module,
			"operation": operation,
		})
}

// OperationFailed wraps a cause with module context. The code of an etkit cause is kept.
func OperationFailed(module, operation string, cause error) *etkerror.Error {
	if cause == nil {
		return StandardError(module, operation, etkerror.CodeInternal,
			fmt.Sprintf("%s failed", qualify(module, operation)))
	}
	return etkerror.Wrap(cause, fmt.Sprintf("%s failed", qualify(module, operation))).
		WithOperation(qualify(module, operation)).
		WithDetails(map[string]interface{}{
			"module":    module,
			"operation": operation,
		})
}

// InvalidArgument reports a missing or unusable argument
func InvalidArgument(module, operation, argument, expected string) *etkerror.Error {
	return StandardError(module, operation, etkerror.CodeInvalidArgument,
		fmt.Sprintf("invalid argument %q: expected %s", argument, expected)).
		WithDetail("argument", argument).
		WithDetail("expected", expected)
}

// NullReference reports a nil value where a value was required
func NullReference(module, operation string) *etkerror.Error {
	return StandardError(module, operation, etkerror.CodeNullReference,
		"value must not be nil")
}

// NoSuchElement reports access to a value that is not present
func NoSuchElement(module, operation string) *etkerror.Error {
	return StandardError(module, operation, etkerror.CodeNoSuchElement,
		"no value present")
}

// CapacityExceeded reports a write beyond the capacity of a fixed container
func CapacityExceeded(module, operation string, index, capacity int) *etkerror.Error {
	return StandardError(module, operation, etkerror.CodeCapacityExceeded,
		fmt.Sprintf("index %d exceeds capacity %d", index, capacity)).
		WithDetail("index", index).
		WithDetail("capacity", capacity)
}

// DivisionByZero reports a division with a zero divisor
func DivisionByZero(module, operation string) *etkerror.Error {
	return StandardError(module, operation, etkerror.CodeDivisionByZero,
		"division by zero")
}

// InvalidFormat reports input that does not follow the expected format
func InvalidFormat(module, operation string, input interface{}, expectedFormat string) *etkerror.Error {
	return StandardError(module, operation, etkerror.CodeInvalidFormat,
		fmt.Sprintf("invalid format %q: expected %s", fmt.Sprint(input), expectedFormat)).
		WithDetail("input", input).
		WithDetail("expected_format", expectedFormat)
}

// NotFound reports a missing named item
func NotFound(module, operation string, identifier interface{}) *etkerror.Error {
	return StandardError(module, operation, etkerror.CodeNotFound,
		fmt.Sprintf("%v not found", identifier)).
		WithDetail("identifier", identifier)
}

func qualify(module, operation string) string {
	return module + "." + operation
}
