// Package errors defines the coded errors returned by the shlib primitives.
//
// Every failure a primitive can report carries an ErrorCode so that callers
// (and tests) can branch on the kind of failure without matching message text.
// Ordinary outcomes such as "nothing changed" or "no line matched" are values,
// never errors.
package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"

	// FileSystem errors
	ErrFileNotFound  ErrorCode = "FILE_NOT_FOUND"
	ErrFileAccess    ErrorCode = "FILE_ACCESS"
	ErrScratchCreate ErrorCode = "SCRATCH_CREATE"
	ErrCommit        ErrorCode = "COMMIT"

	// Transformation errors
	ErrIdenticalContent ErrorCode = "IDENTICAL_CONTENT"
	ErrInvalidPattern   ErrorCode = "INVALID_PATTERN"
	ErrTransform        ErrorCode = "TRANSFORM"

	// Interaction errors
	ErrPrompt ErrorCode = "PROMPT"
)

// ShlibError represents a structured error with code and details
type ShlibError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *ShlibError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *ShlibError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *ShlibError) Is(target error) bool {
	var targetErr *ShlibError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new ShlibError with the given code and message
func New(code ErrorCode, message string) *ShlibError {
	return &ShlibError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new ShlibError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *ShlibError {
	return &ShlibError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a ShlibError
func Wrap(err error, code ErrorCode, message string) *ShlibError {
	if err == nil {
		return nil
	}
	return &ShlibError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *ShlibError {
	if err == nil {
		return nil
	}
	return &ShlibError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *ShlibError) WithDetail(key string, value interface{}) *ShlibError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var shlibErr *ShlibError
	if errors.As(err, &shlibErr) {
		return shlibErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a ShlibError
func GetErrorCode(err error) ErrorCode {
	var shlibErr *ShlibError
	if errors.As(err, &shlibErr) {
		return shlibErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a ShlibError
func GetErrorDetails(err error) map[string]interface{} {
	var shlibErr *ShlibError
	if errors.As(err, &shlibErr) {
		return shlibErr.Details
	}
	return nil
}
