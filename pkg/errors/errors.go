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
	ErrPermission     ErrorCode = "PERMISSION"
	ErrNotImplemented ErrorCode = "NOT_IMPLEMENTED"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// Profile errors
	ErrProfileNotFound ErrorCode = "PROFILE_NOT_FOUND"
	ErrProfileCycle    ErrorCode = "PROFILE_CYCLE"

	// Link run errors
	ErrLinkBlocked ErrorCode = "LINK_BLOCKED"
	ErrLinkFailed  ErrorCode = "LINK_FAILED"

	// FileSystem errors
	ErrFileAccess    ErrorCode = "FILE_ACCESS"
	ErrSymlinkCreate ErrorCode = "SYMLINK_CREATE"
	ErrBackup        ErrorCode = "BACKUP"
)

// DottieError is a structured error carrying a stable code for tests and exit-code mapping
type DottieError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *DottieError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *DottieError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *DottieError) Is(target error) bool {
	var targetErr *DottieError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new DottieError with the given code and message
func New(code ErrorCode, message string) *DottieError {
	return &DottieError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new DottieError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *DottieError {
	return &DottieError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a DottieError
func Wrap(err error, code ErrorCode, message string) *DottieError {
	if err == nil {
		return nil
	}
	return &DottieError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *DottieError {
	if err == nil {
		return nil
	}
	return &DottieError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *DottieError) WithDetail(key string, value interface{}) *DottieError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails adds multiple details to the error
func (e *DottieError) WithDetails(details map[string]interface{}) *DottieError {
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
	var dErr *DottieError
	if errors.As(err, &dErr) {
		return dErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown for foreign errors
func GetErrorCode(err error) ErrorCode {
	var dErr *DottieError
	if errors.As(err, &dErr) {
		return dErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a DottieError
func GetErrorDetails(err error) map[string]interface{} {
	var dErr *DottieError
	if errors.As(err, &dErr) {
		return dErr.Details
	}
	return nil
}