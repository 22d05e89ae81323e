// File: utils.go
// Title: Error Inspection Utilities
// Description: Helpers to read the module and operation back out of errors created by
//              the standard constructors.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation

package errors

import (
	stderrors "errors"

	etkerror "github.com/msto63/etkit/core/error"
)

// ExtractDetails returns the details of the outermost etkit error, or nil
func ExtractDetails(err error) map[string]interface{} {
	var etkErr *etkerror.Error
	if stderrors.As(err, &etkErr) {
		return etkErr.Details()
	}
	return nil
}

// ExtractModule returns the module recorded on the error, or an empty string
func ExtractModule(err error) string {
	module, _ := ExtractDetails(err)["module"].(string)
	return module
}

// ExtractOperation returns the operation recorded on the error, or an empty string
func ExtractOperation(err error) string {
	operation, _ := ExtractDetails(err)["operation"].(string)
	return operation
}

// IsModuleError reports whether err was raised by the given module
func IsModuleError(err error, module string) bool {
	return err != nil && ExtractModule(err) == module
}

// IsModuleOperation reports whether err was raised by the given module operation
func IsModuleOperation(err error, module, operation string) bool {
	return IsModuleError(err, module) && ExtractOperation(err) == operation
}
