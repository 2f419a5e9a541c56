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
	ErrUnknown        ErrorCode = "UNKNOWN"
	ErrInternal       ErrorCode = "INTERNAL"
	ErrInvalidInput   ErrorCode = "INVALID_INPUT"
	ErrNotFound       ErrorCode = "NOT_FOUND"
	ErrAlreadyExists  ErrorCode = "ALREADY_EXISTS"
	ErrNotImplemented ErrorCode = "NOT_IMPLEMENTED"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"

	// Output errors
	ErrRender ErrorCode = "RENDER"
	ErrExport ErrorCode = "EXPORT"

	// Statement usage errors
	ErrDuplicateStatementSet ErrorCode = "DUPLICATE_STATEMENT_SET"
	ErrUnknownStatementSet   ErrorCode = "UNKNOWN_STATEMENT_SET"
	ErrWrongContext          ErrorCode = "WRONG_CONTEXT"
	ErrInvalidAttribute      ErrorCode = "INVALID_ATTRIBUTE"
	ErrInvalidListener       ErrorCode = "INVALID_LISTENER"
	ErrDetachedNode          ErrorCode = "DETACHED_NODE"
	ErrNotBound              ErrorCode = "NOT_BOUND"

	// Scope errors
	ErrUnbalancedScope ErrorCode = "UNBALANCED_SCOPE"
)

// usageCodes are the codes a caller can only get by misusing the engine.
var usageCodes = map[ErrorCode]bool{
	ErrDuplicateStatementSet: true,
	ErrUnknownStatementSet:   true,
	ErrWrongContext:          true,
	ErrInvalidAttribute:      true,
	ErrInvalidListener:       true,
	ErrDetachedNode:          true,
	ErrNotBound:              true,
}

// IsUsage reports whether the code belongs to the usage error family
func (c ErrorCode) IsUsage() bool {
	return usageCodes[c]
}

// GruguiError represents a structured error with code and details
type GruguiError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *GruguiError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *GruguiError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *GruguiError) Is(target error) bool {
	var targetErr *GruguiError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new GruguiError with the given code and message
func New(code ErrorCode, message string) *GruguiError {
	return &GruguiError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new GruguiError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *GruguiError {
	return &GruguiError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a GruguiError
func Wrap(err error, code ErrorCode, message string) *GruguiError {
	if err == nil {
		return nil
	}
	return &GruguiError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *GruguiError {
	if err == nil {
		return nil
	}
	return &GruguiError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *GruguiError) WithDetail(key string, value interface{}) *GruguiError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails adds multiple details to the error
func (e *GruguiError) WithDetails(details map[string]interface{}) *GruguiError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var gErr *GruguiError
	if errors.As(err, &gErr) {
		return gErr.Code == code
	}
	return false
}

// IsUsageError reports whether err was caused by misusing the engine:
// duplicate registrations, wrong contexts, malformed attributes or listeners.
func IsUsageError(err error) bool {
	return GetErrorCode(err).IsUsage()
}

// IsUnbalancedScope reports whether err, or any error it wraps, comes from
// mismatched begin/end calls
func IsUnbalancedScope(err error) bool {
	return errors.Is(err, &GruguiError{Code: ErrUnbalancedScope})
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a GruguiError
func GetErrorCode(err error) ErrorCode {
	var gErr *GruguiError
	if errors.As(err, &gErr) {
		return gErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a GruguiError
func GetErrorDetails(err error) map[string]interface{} {
	var gErr *GruguiError
	if errors.As(err, &gErr) {
		return gErr.Details
	}
	return nil
}
