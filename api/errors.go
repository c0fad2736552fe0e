// Package api
// Author: momentics <momentics@gmail.com>
//
// Common error types for contract violations and construction failures
// shared by the container packages.

package api

import (
	"errors"
	"fmt"
)

// Common errors used across the library.
var (
	ErrEmpty            = errors.New("container is empty")
	ErrOutOfRange       = errors.New("index out of range")
	ErrDetachedIterator = errors.New("iterator does not reference a live element")
	ErrInvalidCapacity  = errors.New("capacity must be at least 2 slots")
	ErrInvalidArgument  = errors.New("invalid argument")
	ErrIndexModMismatch = errors.New("indices belong to different moduli")
)

// ErrorCode represents specific error conditions in the library.
type ErrorCode int

const (
	ErrCodeOK ErrorCode = iota
	ErrCodeInvalidArgument
	ErrCodeContractViolation
	ErrCodeOutOfRange
)

func (c ErrorCode) String() string {
	switch c {
	case ErrCodeOK:
		return "ok"
	case ErrCodeInvalidArgument:
		return "invalid argument"
	case ErrCodeContractViolation:
		return "contract violation"
	case ErrCodeOutOfRange:
		return "out of range"
	default:
		return fmt.Sprintf("ErrorCode(%d)", int(c))
	}
}

// Error represents a structured error with code and context.
// Containers panic with *Error when a precondition is broken.
type Error struct {
	Code    ErrorCode
	Message string
	Context map[string]any
	cause   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if len(e.Context) == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s (context: %+v)", e.Message, e.Context)
}

// Unwrap exposes the sentinel so errors.Is works on recovered panics.
func (e *Error) Unwrap() error {
	return e.cause
}

// NewError creates a new structured error.
func NewError(code ErrorCode, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Context: make(map[string]any),
	}
}

// Violation builds the panic value for a broken precondition. op names the
// operation that was called, e.g. "list.PopBack".
func Violation(code ErrorCode, op string, cause error) *Error {
	e := NewError(code, op+": "+cause.Error())
	e.cause = cause
	return e
}

// WithContext adds context information to the error.
func (e *Error) WithContext(key string, value any) *Error {
	if e.Context == nil {
		e.Context = make(map[string]any)
	}
	e.Context[key] = value
	return e
}
