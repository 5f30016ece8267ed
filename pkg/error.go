package pkg

// Sentinel errors for the shlog package and its subpackages.
// These errors can be tested using errors.Is for reliable error checking.

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// Error represents a chain of errors.
type Error []error

// ErrMissingOperand is returned when a required argument was not supplied.
//
// This is a usage-class error: the CLI prints command usage and the
// process terminates with exit status 1.
var ErrMissingOperand = errors.New("missing operand")

// ErrInvalidOption is returned when an argument is not one of the
// recognized tokens for its parameter.
//
// This is a usage-class error: the CLI prints command usage and the
// process terminates with exit status 1. The error should be wrapped
// with the offending token and, when available, a suggested correction.
var ErrInvalidOption = errors.New("invalid option")

// ErrLogFile is returned when the log file or one of its parent
// directories cannot be created, owned, or restricted to mode 0600.
//
// This error should be wrapped with the underlying filesystem error
// to preserve the error chain.
var ErrLogFile = errors.New("cannot prepare log file")

// ErrReadMessage is returned when the message file referenced by a log
// call cannot be read.
//
// This error should be wrapped with the underlying I/O error
// to preserve the error chain.
var ErrReadMessage = errors.New("failed to read message file")

// ErrGuardFired is returned when a guarded scope is reused after its
// failure handler has already run.
//
// A fired guard cannot be re-armed; install a fresh guard instead.
var ErrGuardFired = errors.New("guard already fired")

// ErrWriteState is returned when the persisted CLI configuration file
// cannot be written.
//
// This error should be wrapped with the underlying I/O error
// to preserve the error chain.
var ErrWriteState = errors.New("failed to write configuration")

// MakeError constructs an Error from the given errors.
// The errors are stored in the order they are provided:
// the first argument is the innermost error in the chain.
// Nil is returned if no errors are provided.
func MakeError(errs ...error) Error {
	var e Error

	for _, err := range errs {
		if err != nil {
			e = append(e, UnwrapErrors(err)...)
		}
	}

	return e
}

// MakeErrorf constructs an Error from a formatted error message.
func MakeErrorf(format string, args ...any) Error {
	return MakeError(fmt.Errorf(format, args...))
}

// Error returns a concatenated string representation of all errors
// in the error chain, separated by ": ", from innermost to outermost.
func (e Error) Error() string {
	var sb strings.Builder

	for i, err := range slices.All(e) {
		if i > 0 {
			sb.WriteString(": ")
		}

		sb.WriteString(err.Error())
	}

	return sb.String()
}

// Wrap appends one or more errors to the receiver and returns the result.
func (e Error) Wrap(err ...error) Error {
	return append(e, err...)
}

// Wrapf appends a formatted error to the receiver and returns the result.
func (e Error) Wrapf(format string, args ...any) Error {
	return append(e, fmt.Errorf(format, args...))
}

// Unwrap returns the slice of errors contained in the receiver.
func (e Error) Unwrap() []error {
	return e
}

// UnwrapErrors recursively unwraps an error chain and returns a slice
// containing all errors in the chain, starting from the innermost error.
func UnwrapErrors(err error) Error {
	if err == nil {
		return nil
	}

	chain := Error{}

	if e, ok := err.(interface{ Unwrap() []error }); ok {
		for _, wrapped := range e.Unwrap() {
			chain = append(chain, UnwrapErrors(wrapped)...)
		}
	} else if e, ok := err.(interface{ Unwrap() error }); ok {
		chain = append(chain, UnwrapErrors(e.Unwrap())...)
	}

	return append(chain, err)
}
