// Package api
// Author: momentics <momentics@gmail.com>
//
// Common error types and error handling utilities for loopbridge.

package api

import "fmt"

// Common errors used across the library.
var (
	ErrRegistrationFailed = fmt.Errorf("host loop refused registration")
	ErrNotRegistered      = fmt.Errorf("watch is not registered")
	ErrAlreadyRegistered  = fmt.Errorf("watch is already registered")
	ErrNotAttached        = fmt.Errorf("backend has no attached reactor")
	ErrAlreadyAttached    = fmt.Errorf("backend is already attached")
	ErrLoopClosed         = fmt.Errorf("reactor loop is closed")
	ErrNotSupported       = fmt.Errorf("operation not supported")
)

// ErrorCode represents specific error conditions in the library.
type ErrorCode int

const (
	ErrCodeOK ErrorCode = iota
	// ErrCodeRegistration covers host-loop refusal to register a
	// descriptor or signal source.
	ErrCodeRegistration
	// ErrCodeInvalidState covers operations against a watch with no
	// attached binding — a caller contract violation, not a runtime
	// condition.
	ErrCodeInvalidState
	// ErrCodeExhausted covers resource exhaustion reported while creating
	// a binding or a host-loop source.
	ErrCodeExhausted
	ErrCodeInternal
)

// Error represents a structured error with code, cause and context.
type Error struct {
	Code    ErrorCode
	Message string
	Cause   error
	Context map[string]any
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := e.Message
	if e.Cause != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	if len(e.Context) == 0 {
		return msg
	}
	return fmt.Sprintf("%s (context: %+v)", msg, e.Context)
}

// Unwrap exposes the cause chain for errors.Is and errors.As.
func (e *Error) Unwrap() error {
	return e.Cause
}

// NewError creates a new structured error.
func NewError(code ErrorCode, message string, cause error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// WithContext adds context information to the error.
func (e *Error) WithContext(key string, value any) *Error {
	if e.Context == nil {
		e.Context = make(map[string]any)
	}
	e.Context[key] = value
	return e
}
