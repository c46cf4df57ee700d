// Package errors provides structured error types for the tomo-tsp tool.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across CLI and API
//   - Machine-readable error codes for programmatic handling
//   - User-friendly error messages
//   - Error wrapping with context preservation
//
// # Error Codes
//
// The codes mirror the failure modes of the optimization pipeline:
//   - INVALID_ARGUMENT: malformed or out-of-range structural input
//   - PARSE_ERROR: solver output that does not match the expected format
//   - DIMENSION_MISMATCH: tour length disagrees with the configuration space
//   - OUT_OF_RANGE: tour indices outside the cost matrix, or an empty tour
//   - DIVISION_BY_ZERO: speedup against a zero optimal cycle length
//   - EXTERNAL_TOOL: the external TSP solver failed or produced no output
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidArgument, "qubit count must be >= 1, got %d", n)
//	if errors.Is(err, errors.ErrCodeInvalidArgument) {
//	    // Handle validation error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeExternalTool, origErr, "solver %s failed", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input validation errors
	ErrCodeInvalidArgument Code = "INVALID_ARGUMENT"
	ErrCodeInvalidScheme   Code = "INVALID_SCHEME"
	ErrCodeInvalidConfig   Code = "INVALID_CONFIG"

	// Solution decoding errors
	ErrCodeParse             Code = "PARSE_ERROR"
	ErrCodeDimensionMismatch Code = "DIMENSION_MISMATCH"

	// Evaluation errors
	ErrCodeOutOfRange     Code = "OUT_OF_RANGE"
	ErrCodeDivisionByZero Code = "DIVISION_BY_ZERO"

	// External solver errors
	ErrCodeExternalTool Code = "EXTERNAL_TOOL"

	// Resource errors
	ErrCodeNotFound Code = "NOT_FOUND"

	// Internal errors
	ErrCodeInternal Code = "INTERNAL_ERROR"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error with a matching code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}
