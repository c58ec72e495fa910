package errors

import (
	"errors"
	"fmt"
)

// NewValidationError reports a request the services refused
func NewValidationError(message string, cause error) *AppError {
	return &AppError{
		Type:    ErrorTypeValidation,
		Message: message,
		Cause:   cause,
	}
}

// NewNotFoundError reports a missing resource row
func NewNotFoundError(resource string, identifier string) *AppError {
	return &AppError{
		Type:     ErrorTypeNotFound,
		Message:  fmt.Sprintf("%s not found: %s", resource, identifier),
		Resource: resource,
		ID:       identifier,
	}
}

// NewStorageError reports a failed database operation
func NewStorageError(operation string, cause error) *AppError {
	return &AppError{
		Type:    ErrorTypeStorage,
		Message: operation,
		Op:      operation,
		Cause:   cause,
	}
}

// AsAppError returns the first AppError in err's chain
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// IsErrorType checks if the error is of the specified type
func IsErrorType(err error, errorType ErrorType) bool {
	appErr, ok := AsAppError(err)
	return ok && appErr.Type == errorType
}

// IsNotFound reports whether err is a not found AppError
func IsNotFound(err error) bool {
	return IsErrorType(err, ErrorTypeNotFound)
}

// KindOf returns the error type of err. Errors that are not AppErrors
// are reported as storage failures.
func KindOf(err error) ErrorType {
	if appErr, ok := AsAppError(err); ok {
		return appErr.Type
	}
	return ErrorTypeStorage
}

// GetUserMessage returns the message shown to people. Storage details
// stay in the logs.
func GetUserMessage(err error) string {
	appErr, ok := AsAppError(err)
	if !ok {
		return err.Error()
	}
	switch appErr.Type {
	case ErrorTypeValidation, ErrorTypeNotFound:
		return appErr.Message
	case ErrorTypeStorage:
		return "A storage error occurred. Please try again."
	default:
		return "An unexpected error occurred. Please try again."
	}
}

// GetErrorCode returns the code of err's type, or UNKNOWN_ERROR
func GetErrorCode(err error) string {
	if appErr, ok := AsAppError(err); ok {
		return appErr.Type.Code()
	}
	return "UNKNOWN_ERROR"
}

// ShouldLogError reports whether err is a server-side failure rather than
// a caller mistake
func ShouldLogError(err error) bool {
	return KindOf(err) == ErrorTypeStorage
}
