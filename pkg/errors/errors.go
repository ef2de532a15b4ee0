package errors

import (
	"errors"
	"fmt"
)

// ErrorCode identifies a failure independently of its message, so callers
// and tests can branch on it
type ErrorCode string

const (
	ErrUnknown        ErrorCode = "UNKNOWN"
	ErrInvalidInput   ErrorCode = "INVALID_INPUT"
	ErrNotFound       ErrorCode = "NOT_FOUND"
	ErrUnknownCommand ErrorCode = "UNKNOWN_COMMAND"

	// Config loading
	ErrConfigPath    ErrorCode = "CONFIG_PATH_INVALID"
	ErrConfigInvalid ErrorCode = "CONFIG_INVALID"

	// Sync resolution and execution
	ErrNoDestination ErrorCode = "NO_DESTINATION"
	ErrSourceNotDir  ErrorCode = "SOURCE_NOT_DIR"
	ErrDestNotDir    ErrorCode = "DEST_NOT_DIR"
	ErrActionExecute ErrorCode = "ACTION_EXECUTE"

	// Filesystem
	ErrFileAccess ErrorCode = "FILE_ACCESS"
	ErrFileWrite  ErrorCode = "FILE_WRITE"
)

// PunterError represents a structured error with code and details
type PunterError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *PunterError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *PunterError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *PunterError) Is(target error) bool {
	var targetErr *PunterError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a PunterError with the given code and message
func New(code ErrorCode, message string) *PunterError {
	return &PunterError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf is New with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *PunterError {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap attaches code and message to err. A nil err yields nil.
func Wrap(err error, code ErrorCode, message string) *PunterError {
	if err == nil {
		return nil
	}
	wrapped := New(code, message)
	wrapped.Wrapped = err
	return wrapped
}

// Wrapf is Wrap with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *PunterError {
	if err == nil {
		return nil
	}
	return Wrap(err, code, fmt.Sprintf(format, args...))
}

// WithDetail adds a detail to the error
func (e *PunterError) WithDetail(key string, value interface{}) *PunterError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode reports whether the outermost PunterError in err's chain has code
func IsErrorCode(err error, code ErrorCode) bool {
	var punterErr *PunterError
	return errors.As(err, &punterErr) && punterErr.Code == code
}

// GetErrorCode returns the code of the outermost PunterError in err's chain,
// or ErrUnknown
func GetErrorCode(err error) ErrorCode {
	var punterErr *PunterError
	if errors.As(err, &punterErr) {
		return punterErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a PunterError
func GetErrorDetails(err error) map[string]interface{} {
	var punterErr *PunterError
	if errors.As(err, &punterErr) {
		return punterErr.Details
	}
	return nil
}
