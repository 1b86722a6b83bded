package domain

import (
	"errors"
	"fmt"
)

// Error represents a contract violation detected by a scale operation.
//
// Errors include:
//   - Type mismatch: operands span more than one domain, or a domain cannot be inferred
//   - Structural: a range or expansion tuple has the wrong number of elements
//   - Invalid value: a parameter is outside its legal set (negative tolerance, unknown unit)
type Error struct {
	// Code identifies the error category.
	Code ErrorCode

	// Message is a human-readable description.
	Message string

	// Index is the position of the offending element, or -1 when the
	// error is not tied to a single element.
	Index int
}

// ErrorCode categorizes scale errors.
type ErrorCode string

const (
	// ErrCodeTypeMismatch indicates incompatible domains or an unclassifiable value.
	ErrCodeTypeMismatch ErrorCode = "TYPE_MISMATCH"

	// ErrCodeStructural indicates a tuple input without the required arity.
	ErrCodeStructural ErrorCode = "STRUCTURAL"

	// ErrCodeInvalidValue indicates a parameter outside its legal set.
	ErrCodeInvalidValue ErrorCode = "INVALID_VALUE"
)

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("%s: %s (index=%d)", e.Code, e.Message, e.Index)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewTypeMismatch creates a TYPE_MISMATCH error.
func NewTypeMismatch(format string, args ...any) *Error {
	return &Error{Code: ErrCodeTypeMismatch, Message: fmt.Sprintf(format, args...), Index: -1}
}

// NewTypeMismatchAt creates a TYPE_MISMATCH error for the element at index i.
func NewTypeMismatchAt(i int, format string, args ...any) *Error {
	return &Error{Code: ErrCodeTypeMismatch, Message: fmt.Sprintf(format, args...), Index: i}
}

// NewStructural creates a STRUCTURAL error.
func NewStructural(format string, args ...any) *Error {
	return &Error{Code: ErrCodeStructural, Message: fmt.Sprintf(format, args...), Index: -1}
}

// NewInvalidValue creates an INVALID_VALUE error.
func NewInvalidValue(format string, args ...any) *Error {
	return &Error{Code: ErrCodeInvalidValue, Message: fmt.Sprintf(format, args...), Index: -1}
}

// CodeOf returns the ErrorCode carried by err, or "" if err is not an *Error.
// Uses errors.As to handle wrapped errors.
func CodeOf(err error) ErrorCode {
	var de *Error
	if errors.As(err, &de) {
		return de.Code
	}
	return ""
}

// IsTypeMismatch returns true if the error is a TYPE_MISMATCH error.
func IsTypeMismatch(err error) bool {
	return CodeOf(err) == ErrCodeTypeMismatch
}

// IsStructural returns true if the error is a STRUCTURAL error.
func IsStructural(err error) bool {
	return CodeOf(err) == ErrCodeStructural
}

// IsInvalidValue returns true if the error is an INVALID_VALUE error.
func IsInvalidValue(err error) bool {
	return CodeOf(err) == ErrCodeInvalidValue
}
