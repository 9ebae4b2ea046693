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
	ErrConfigLoad    ErrorCode = "CONFIG_LOAD"
	ErrConfigParse   ErrorCode = "CONFIG_PARSE"
	ErrConfigValid   ErrorCode = "CONFIG_INVALID"
	ErrInvalidColor  ErrorCode = "INVALID_COLOR"
	ErrInvalidStyle  ErrorCode = "INVALID_STYLE"
	ErrInvalidWindow ErrorCode = "INVALID_WINDOW"
	ErrConflicting   ErrorCode = "CONFLICTING_FLAGS"
	ErrMissingToken  ErrorCode = "MISSING_TOKEN"

	// GitHub API errors
	ErrRequest     ErrorCode = "REQUEST_FAILED"
	ErrAPIStatus   ErrorCode = "API_STATUS"
	ErrAPIResponse ErrorCode = "API_RESPONSE"

	// Calendar data errors
	ErrInvalidLevel ErrorCode = "INVALID_LEVEL"
	ErrGridShape    ErrorCode = "GRID_SHAPE"
)

// GitcalError represents a structured error with code and details
type GitcalError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *GitcalError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *GitcalError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *GitcalError) Is(target error) bool {
	var targetErr *GitcalError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new GitcalError with the given code and message
func New(code ErrorCode, message string) *GitcalError {
	return &GitcalError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new GitcalError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *GitcalError {
	return &GitcalError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a GitcalError
func Wrap(err error, code ErrorCode, message string) *GitcalError {
	if err == nil {
		return nil
	}
	return &GitcalError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *GitcalError {
	if err == nil {
		return nil
	}
	return &GitcalError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *GitcalError) WithDetail(key string, value interface{}) *GitcalError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var gitcalErr *GitcalError
	if errors.As(err, &gitcalErr) {
		return gitcalErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a GitcalError
func GetErrorCode(err error) ErrorCode {
	var gitcalErr *GitcalError
	if errors.As(err, &gitcalErr) {
		return gitcalErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a GitcalError
func GetErrorDetails(err error) map[string]interface{} {
	var gitcalErr *GitcalError
	if errors.As(err, &gitcalErr) {
		return gitcalErr.Details
	}
	return nil
}
