// Package errstring defines a simple error struct that also carries a process exit code
package errstring

import (
	"errors"
	"fmt"
)

// DefaultExitCode is used for errors that do not carry their own exit code
const DefaultExitCode = 1

// Error is the base type for filter errors
type Error struct {
	msg  string
	code int
}

// Error implements the error interface
func (e *Error) Error() string {
	return e.msg
}

// ExitCode returns the process exit code associated with the error
func (e *Error) ExitCode() int {
	return e.code
}

// New creates a new error that maps to DefaultExitCode
func New(msg string) *Error {
	return &Error{msg: msg, code: DefaultExitCode}
}

// NewWithCode creates a new error that maps to the given exit code
func NewWithCode(msg string, code int) *Error {
	return &Error{msg: msg, code: code}
}

// Wrap wraps another error with this error
func (e *Error) Wrap(errB error) error {
	return &wrappedError{
		errA: e,
		errB: errB,
	}
}

// Wrapf is a shortcut for Wrap(fmt.Errorf("...", ...))
func (e *Error) Wrapf(msg string, args ...any) error {
	return &wrappedError{
		errA: e,
		errB: fmt.Errorf(msg, args...), //nolint:goerr113
	}
}

type wrappedError struct {
	errA *Error
	errB error
}

func (e *wrappedError) Error() string {
	return e.errA.Error() + ": " + e.errB.Error()
}

func (e *wrappedError) Is(err error) bool {
	if err == nil {
		return false
	}
	return e.errA == err //nolint:goerr113
}

func (e *wrappedError) ExitCode() int {
	return e.errA.code
}

func (e *wrappedError) Unwrap() error {
	return e.errB
}

type exitCoder interface {
	ExitCode() int
}

// ExitCode returns 0 for a nil error, the exit code of the outermost error
// in the chain that carries one, or DefaultExitCode.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var ec exitCoder
	if errors.As(err, &ec) {
		return ec.ExitCode()
	}
	return DefaultExitCode
}
