package errors

import (
	"errors"
	"fmt"
)

// Error represents a structured error with code, message, and metadata
type Error struct {
	Code    Code           `json:"code"`
	Message string         `json:"message"`
	Cause   error          `json:"-"`
	Meta    map[string]any `json:"meta,omitempty"`
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the wrapped error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is matches another *Error with the same code
func (e *Error) Is(target error) bool {
	var targetErr *Error
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// WithMeta adds metadata to the error
func (e *Error) WithMeta(key string, value any) *Error {
	if e.Meta == nil {
		e.Meta = make(map[string]any)
	}
	e.Meta[key] = value
	return e
}

// New creates a new error with the given code and message
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Newf creates a new error with a formatted message
func Newf(code Code, format string, args ...any) *Error {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap wraps an existing error, preserving its code if it's an Error
func Wrap(err error, message string) *Error {
	if err == nil {
		return nil
	}

	var existing *Error
	if errors.As(err, &existing) {
		return &Error{
			Code:    existing.Code,
			Message: message,
			Cause:   err,
			Meta:    existing.Meta,
		}
	}

	return &Error{Code: CodeInternal, Message: message, Cause: err}
}

// Wrapf wraps an error with a formatted message
func Wrapf(err error, format string, args ...any) *Error {
	return Wrap(err, fmt.Sprintf(format, args...))
}

// WrapWithCode wraps an error and replaces its code
func WrapWithCode(err error, code Code, message string) *Error {
	if err == nil {
		return nil
	}

	meta := make(map[string]any)
	var existing *Error
	if errors.As(err, &existing) {
		for k, v := range existing.Meta {
			meta[k] = v
		}
	}

	return &Error{Code: code, Message: message, Cause: err, Meta: meta}
}

// NotFound creates a not found error
func NotFound(message string) *Error { return New(CodeNotFound, message) }

// NotFoundf creates a not found error with formatted message
func NotFoundf(format string, args ...any) *Error { return Newf(CodeNotFound, format, args...) }

// InvalidArgument creates an invalid argument error
func InvalidArgument(message string) *Error { return New(CodeInvalidArgument, message) }

// InvalidArgumentf creates an invalid argument error with formatted message
func InvalidArgumentf(format string, args ...any) *Error {
	return Newf(CodeInvalidArgument, format, args...)
}

// AlreadyExistsf creates an already exists error with formatted message
func AlreadyExistsf(format string, args ...any) *Error {
	return Newf(CodeAlreadyExists, format, args...)
}

// FailedPreconditionf creates a failed precondition error with formatted message
func FailedPreconditionf(format string, args ...any) *Error {
	return Newf(CodeFailedPrecondition, format, args...)
}

// Internal creates an internal error
func Internal(message string) *Error { return New(CodeInternal, message) }

// Unavailablef creates an unavailable error with formatted message
func Unavailablef(format string, args ...any) *Error { return Newf(CodeUnavailable, format, args...) }

// Unimplemented creates an unimplemented error
func Unimplemented(message string) *Error { return New(CodeUnimplemented, message) }
