// File: codes.go
// Title: Error Code Definitions
// Description: Defines the error codes shared by all etkit packages so callers can
//              classify failures without matching on message text.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial code set

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown  Code = "UNKNOWN"
	CodeInternal Code = "INTERNAL"
	CodeNotFound Code = "NOT_FOUND"

	// Argument and value codes
	CodeInvalidArgument  Code = "INVALID_ARGUMENT"
	CodeNullReference    Code = "NULL_REFERENCE"
	CodeNoSuchElement    Code = "NO_SUCH_ELEMENT"
	CodeInvalidFormat    Code = "INVALID_FORMAT"
	CodeCapacityExceeded Code = "CAPACITY_EXCEEDED"

	// Arithmetic
	CodeDivisionByZero Code = "DIVISION_BY_ZERO"

	// Configuration
	CodeConfigError Code = "CONFIG_ERROR"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeNotFound,
		CodeInvalidArgument, CodeNullReference, CodeNoSuchElement, CodeInvalidFormat, CodeCapacityExceeded,
		CodeDivisionByZero,
		CodeConfigError:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeInvalidArgument, CodeNullReference, CodeInvalidFormat:
		return "argument"
	case CodeNoSuchElement, CodeNotFound:
		return "lookup"
	case CodeCapacityExceeded:
		return "capacity"
	case CodeDivisionByZero:
		return "arithmetic"
	case CodeConfigError:
		return "configuration"
	default:
		return "generic"
	}
}
