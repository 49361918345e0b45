package errors

import (
	"errors"
	"fmt"
)

// Domain-specific error types
var (
	// ErrNotFound indicates a referenced record was not found
	ErrNotFound = errors.New("record not found")

	// ErrValidationFailed indicates caller-supplied data violates a constraint
	ErrValidationFailed = errors.New("validation failed")

	// ErrUnsupportedFileType indicates the uploaded file is not an allowed type
	ErrUnsupportedFileType = errors.New("only PDF, DOC, and DOCX files are allowed")

	// ErrFileTooLarge indicates the uploaded file exceeds the size limit
	ErrFileTooLarge = errors.New("file size too large")

	// ErrUnavailable indicates the persistence layer is unreachable or timed out
	ErrUnavailable = errors.New("service unavailable")

	// ErrInternal indicates an internal server error
	ErrInternal = errors.New("internal server error")
)

// Error codes for API responses
const (
	CodeNotFound           = "NOT_FOUND"
	CodeValidationFailed   = "VALIDATION_FAILED"
	CodeServiceUnavailable = "SERVICE_UNAVAILABLE"
	CodeRateLimited        = "RATE_LIMITED"
	CodeInternalError      = "INTERNAL_ERROR"
)

// AppError represents an application error with context
type AppError struct {
	Err     error
	Message string
	Code    string
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error
func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new AppError
func NewAppError(err error, message string, code string) *AppError {
	return &AppError{
		Err:     err,
		Message: message,
		Code:    code,
	}
}

// Wrap wraps an error with additional context
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// IsNotFound checks if the error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsValidationFailed checks if the error is a validation error.
// Disallowed file types and over-limit uploads count as validation failures.
func IsValidationFailed(err error) bool {
	return errors.Is(err, ErrValidationFailed) ||
		errors.Is(err, ErrUnsupportedFileType) ||
		errors.Is(err, ErrFileTooLarge)
}

// IsUnavailable checks if the error is a service availability error
func IsUnavailable(err error) bool {
	return errors.Is(err, ErrUnavailable)
}

// GetErrorCode returns the appropriate error code for an error
func GetErrorCode(err error) string {
	switch {
	case IsNotFound(err):
		return CodeNotFound
	case IsValidationFailed(err):
		return CodeValidationFailed
	case IsUnavailable(err):
		return CodeServiceUnavailable
	default:
		return CodeInternalError
	}
}
