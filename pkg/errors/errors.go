package errors

import (
	"errors"
	"fmt"
)

// Error codes attached to dispatch failures
const (
	CodeUnknownCommand  = "unknown_command"
	CodeUnknownDataType = "unknown_data_type"
)

// Common errors
var (
	ErrUnknownCommand  = errors.New("unknown command")
	ErrUnknownDataType = errors.New("data type not found")
	ErrRateLimited     = errors.New("rate limited")
	ErrLinkClosed      = errors.New("link closed")
)

// Error represents a custom error type
type Error struct {
	Code    string
	Message string
	Err     error
}

// Error returns the error message
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the wrapped error
func (e *Error) Unwrap() error {
	return e.Err
}

// New creates a new error with a message
func New(message string) error {
	return &Error{
		Message: message,
	}
}

// Wrap wraps an error with additional message
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return &Error{
		Message: message,
		Err:     err,
	}
}

// WrapWithCode wraps an error with a code and message
func WrapWithCode(err error, code, message string) error {
	if err == nil {
		return nil
	}
	return &Error{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Is reports whether any error in err's chain matches target
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// GetCode returns the error code if it exists
func GetCode(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// IsUnknownCommand returns true if no command table entry matched
func IsUnknownCommand(err error) bool {
	return errors.Is(err, ErrUnknownCommand)
}

// IsUnknownDataType returns true if a matched entry had no usable handler
func IsUnknownDataType(err error) bool {
	return errors.Is(err, ErrUnknownDataType)
}
