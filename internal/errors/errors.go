// Package errors provides coded domain errors for the lucky sign engines and API.
//
// Usage:
//
//	// In engines - return the sentinel (or a copy with a better message)
//	if len(letters) == 0 {
//	    return color.AutoColors{}, errors.ErrInvalidNameInput
//	}
//
//	// In callers - check with errors.Is, which matches by code
//	if errors.Is(err, errors.ErrUnsupportedSize) {
//	    ...
//	}
//
//	// Or switch on the code
//	var domainErr *errors.Error
//	if errors.As(err, &domainErr) {
//	    switch domainErr.Code {
//	    case errors.CodeInvalidDate:
//	        ...
//	    }
//	}
package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Re-export standard library functions for convenience.
var (
	Is     = errors.Is
	As     = errors.As
	Unwrap = errors.Unwrap
	Join   = errors.Join
	New    = errors.New
)

// Code represents a machine-readable error code.
type Code string

// Error codes used throughout the application.
const (
	CodeNotFound         Code = "NOT_FOUND"
	CodeValidation       Code = "VALIDATION"
	CodeInternal         Code = "INTERNAL"
	CodeRateLimited      Code = "RATE_LIMITED"
	CodeUnsupportedSize  Code = "UNSUPPORTED_SIZE"
	CodeInvalidNameInput Code = "INVALID_NAME_INPUT"
	CodeInvalidDate      Code = "INVALID_DATE"
	CodeInvalidColor     Code = "INVALID_COLOR"
)

// HTTPStatus returns the appropriate HTTP status code for an error code.
func (c Code) HTTPStatus() int {
	switch c {
	case CodeNotFound:
		return http.StatusNotFound
	case CodeValidation, CodeUnsupportedSize, CodeInvalidNameInput, CodeInvalidDate, CodeInvalidColor:
		return http.StatusBadRequest
	case CodeRateLimited:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

// Error is a domain error with a code, message, and optional details.
type Error struct {
	Code    Code   `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
	cause   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.cause)
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.cause
}

// Is reports whether target matches this error.
// Matches if target is an *Error with the same Code.
func (e *Error) Is(target error) bool {
	var t *Error
	if errors.As(target, &t) {
		return e.Code == t.Code
	}
	return false
}

// HTTPStatus returns the HTTP status code for this error.
func (e *Error) HTTPStatus() int {
	return e.Code.HTTPStatus()
}

// WithMessage returns a new error carrying the same code and a custom message.
func (e *Error) WithMessage(msg string) *Error {
	return &Error{
		Code:    e.Code,
		Message: msg,
		Details: e.Details,
		cause:   e.cause,
	}
}

// WithCause wraps an underlying error.
func (e *Error) WithCause(err error) *Error {
	return &Error{
		Code:    e.Code,
		Message: e.Message,
		Details: e.Details,
		cause:   err,
	}
}

// Sentinel errors for use with errors.Is().
var (
	ErrNotFound    = &Error{Code: CodeNotFound, Message: "not found"}
	ErrValidation  = &Error{Code: CodeValidation, Message: "validation error"}
	ErrInternal    = &Error{Code: CodeInternal, Message: "internal error"}
	ErrRateLimited = &Error{Code: CodeRateLimited, Message: "too many requests"}

	// ErrUnsupportedSize is returned for a grid size or mirror count outside the three supported modes.
	ErrUnsupportedSize = &Error{Code: CodeUnsupportedSize, Message: "unsupported grid size"}

	// ErrInvalidNameInput is returned when the numerology path receives no name letters.
	ErrInvalidNameInput = &Error{Code: CodeInvalidNameInput, Message: "name has no usable letters"}

	ErrInvalidDate  = &Error{Code: CodeInvalidDate, Message: "invalid birth date"}
	ErrInvalidColor = &Error{Code: CodeInvalidColor, Message: "invalid color"}
)

// Validationf creates a validation error with formatted message.
func Validationf(format string, args ...any) *Error {
	return &Error{Code: CodeValidation, Message: fmt.Sprintf(format, args...)}
}

// ValidationWithDetails creates a validation error with details.
func ValidationWithDetails(msg string, details any) *Error {
	return &Error{Code: CodeValidation, Message: msg, Details: details}
}

// UnsupportedSizef creates an unsupported size error with formatted message.
func UnsupportedSizef(format string, args ...any) *Error {
	return &Error{Code: CodeUnsupportedSize, Message: fmt.Sprintf(format, args...)}
}

// InvalidDatef creates an invalid date error with formatted message.
func InvalidDatef(format string, args ...any) *Error {
	return &Error{Code: CodeInvalidDate, Message: fmt.Sprintf(format, args...)}
}

// InvalidColorf creates an invalid color error with formatted message.
func InvalidColorf(format string, args ...any) *Error {
	return &Error{Code: CodeInvalidColor, Message: fmt.Sprintf(format, args...)}
}

// Wrap wraps an error with a code and message.
func Wrap(err error, code Code, msg string) *Error {
	return &Error{Code: code, Message: msg, cause: err}
}

