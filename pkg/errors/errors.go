// Package errors provides structured error types for chartgrid.
//
// Every error produced by the layout, rendering, and I/O layers carries a
// machine-readable [Code] so that the CLI can print a friendly message and
// the HTTP service can choose a status code without string matching.
//
// # Error Codes
//
//   - INVALID_*: the caller handed over something malformed
//   - FILE_NOT_FOUND: an input path does not exist
//   - UNSUPPORTED: the requested output cannot be produced in this environment
//   - INTERNAL_ERROR: anything else
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidChart, "chartSettings has %d entries, data has %d", a, b)
//	if errors.Is(err, errors.ErrCodeInvalidChart) {
//	    // caller contract violation
//	}
//
//	err := errors.Wrap(errors.ErrCodeInvalidConfig, origErr, "decode %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code is a machine-readable error category.
type Code string

const (
	// Caller input
	ErrCodeInvalidInput  Code = "INVALID_INPUT"  // unreadable or malformed document
	ErrCodeInvalidChart  Code = "INVALID_CHART"  // chart props break the caller contract
	ErrCodeInvalidConfig Code = "INVALID_CONFIG" // style or display configuration
	ErrCodeInvalidFormat Code = "INVALID_FORMAT" // unknown output or document format

	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"

	ErrCodeInternal    Code = "INTERNAL_ERROR"
	ErrCodeUnsupported Code = "UNSUPPORTED" // e.g. PDF without rsvg-convert
)

// Error is a coded error with an optional cause.
type Error struct {
	Code    Code
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.Cause }

// New returns an Error with a formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap returns an Error with a formatted message around cause.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...), Cause: cause}
}

// Is reports whether any *Error in err's chain has code.
func Is(err error, code Code) bool {
	for err != nil {
		var e *Error
		if !errors.As(err, &e) {
			return false
		}
		if e.Code == code {
			return true
		}
		err = e.Cause
	}
	return false
}

// GetCode returns the code of the outermost *Error in err's chain, or ""
// when there is none.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage renders err for people: the messages along the chain joined
// with ": ", without codes.
//
//	Wrap(ErrCodeInvalidInput, New(ErrCodeInvalidInput, "empty yaml chart"), "fruit.yaml")
//	// fruit.yaml: empty yaml chart
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	var e *Error
	if !errors.As(err, &e) {
		return err.Error()
	}
	if e.Cause == nil {
		return e.Message
	}
	return e.Message + ": " + UserMessage(e.Cause)
}
