package errors

import (
	"errors"
)

// As is a wrapper around errors.As that works with our Error type
func As(err error, target **Error) bool {
	return errors.As(err, target)
}

// GetCode extracts the error code from an error
func GetCode(err error) Code {
	if err == nil {
		return CodeOK
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return CodeInternal
}

// GetMeta extracts metadata from an error
func GetMeta(err error) map[string]any {
	var e *Error
	if errors.As(err, &e) {
		return e.Meta
	}
	return nil
}

// GetMessage extracts the user-friendly message from an error
func GetMessage(err error) string {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool { return GetCode(err) == CodeNotFound }

// IsInvalidArgument checks if an error is an invalid argument error
func IsInvalidArgument(err error) bool { return GetCode(err) == CodeInvalidArgument }

// IsAlreadyExists checks if an error is an already exists error
func IsAlreadyExists(err error) bool { return GetCode(err) == CodeAlreadyExists }

// IsFailedPrecondition checks if an error is a failed precondition error
func IsFailedPrecondition(err error) bool { return GetCode(err) == CodeFailedPrecondition }

// IsInternal checks if an error is an internal error
func IsInternal(err error) bool { return GetCode(err) == CodeInternal }

// IsUnavailable checks if an error is an unavailable error
func IsUnavailable(err error) bool { return GetCode(err) == CodeUnavailable }
