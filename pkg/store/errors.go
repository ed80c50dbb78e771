package store

import (
	"errors"
	"fmt"
)

// ErrorCode classifies a record store failure.
type ErrorCode string

const (
	ErrNotFound       ErrorCode = "NOT_FOUND"       // record id no longer exists
	ErrInvalidRequest ErrorCode = "INVALID_REQUEST" // rejected before reaching the backend
	ErrUnavailable    ErrorCode = "UNAVAILABLE"     // transport or remote rejection
	ErrInternal       ErrorCode = "INTERNAL"
)

// Error is a structured record store error.
type Error struct {
	Code    ErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NewNotFound reports a record that does not exist.
func NewNotFound(id string) *Error {
	return &Error{
		Code:    ErrNotFound,
		Message: fmt.Sprintf("wallet not found: %s", id),
	}
}

// NewInvalidRequest reports a call rejected before reaching the backend.
func NewInvalidRequest(msg string) *Error {
	return &Error{
		Code:    ErrInvalidRequest,
		Message: msg,
	}
}

// NewUnavailable wraps a transport failure or a remote rejection.
func NewUnavailable(err error) *Error {
	msg := "record store unavailable"
	if err != nil {
		msg = err.Error()
	}
	return &Error{
		Code:    ErrUnavailable,
		Message: msg,
		Err:     err,
	}
}

// NewInternal wraps an unexpected backend error.
func NewInternal(err error) *Error {
	msg := "internal error"
	if err != nil {
		msg = err.Error()
	}
	return &Error{
		Code:    ErrInternal,
		Message: msg,
		Err:     err,
	}
}

// Is reports whether err is a store Error with the given code.
func Is(err error, code ErrorCode) bool {
	var sErr *Error
	if errors.As(err, &sErr) {
		return sErr.Code == code
	}
	return false
}
