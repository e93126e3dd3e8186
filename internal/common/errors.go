package common

import (
	"errors"
	"fmt"
)

// AppError represents application-specific errors
type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// Common application errors
var (
	ErrNotFound     = errors.New("resource not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrValidation   = errors.New("validation failed")
)

// Error constructors
func NewAppError(code, message string, cause error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// InvalidInputError returns an error matching ErrInvalidInput whose text is
// exactly message, so handlers can surface it verbatim.
func InvalidInputError(message string) error {
	return &clientError{msg: message, kind: ErrInvalidInput}
}

// NotFoundError returns an error matching ErrNotFound whose text is message.
func NotFoundError(message string) error {
	return &clientError{msg: message, kind: ErrNotFound}
}

func InvalidInputErrorf(format string, args ...any) error {
	return InvalidInputError(fmt.Sprintf(format, args...))
}

type clientError struct {
	msg  string
	kind error
}

func (e *clientError) Error() string { return e.msg }

func (e *clientError) Is(target error) bool { return target == e.kind }

// IsNotFound reports whether err is or wraps ErrNotFound.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsInvalidInput reports whether err is or wraps ErrInvalidInput.
func IsInvalidInput(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}
