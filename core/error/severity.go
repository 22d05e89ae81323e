// File: severity.go
// Title: Error Severity Levels
// Description: Severity levels attached to errors. The logger maps severities to log
//              levels when it records an error.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation with severity levels

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow indicates a caller mistake such as a bad argument
	SeverityLow Severity = iota

	// SeverityMedium indicates a failed operation the caller can recover from
	SeverityMedium

	// SeverityHigh indicates a failure that leaves a result unusable
	SeverityHigh

	// SeverityCritical indicates a broken invariant inside the library
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// Level returns the numeric level of the severity (0-3)
func (s Severity) Level() int {
	return int(s)
}

// GetSeverityFromCode determines appropriate severity level based on error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeInternal:
		return SeverityCritical

	case CodeCapacityExceeded, CodeConfigError:
		return SeverityHigh

	case CodeDivisionByZero, CodeNoSuchElement:
		return SeverityMedium

	case CodeInvalidArgument, CodeNullReference, CodeInvalidFormat, CodeNotFound:
		return SeverityLow

	default:
		return SeverityMedium
	}
}
