// Package errors defines the structured error type used across rtop.
//
// Errors render in three parts so they read well when printed to a terminal
// after the dashboard exits:
//
//	✗ <what failed>
//
//	  <underlying cause>
//
//	  <what to try>
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Error codes for categorizing errors
const (
	ErrConfig   = "CONFIG"
	ErrCollect  = "COLLECT"
	ErrTerminal = "TERMINAL"
)

// Error is a categorized error with an optional cause and suggestion.
type Error struct {
	Code       string
	Message    string
	Suggestion string
	Cause      error
}

// New creates an error with no underlying cause.
func New(code, message, suggestion string) *Error {
	return &Error{
		Code:       code,
		Message:    message,
		Suggestion: suggestion,
	}
}

// Newf is New with a formatted message.
func Newf(code, suggestion, format string, args ...any) *Error {
	return New(code, fmt.Sprintf(format, args...), suggestion)
}

// Wrap attaches a message to a metric collection failure.
func Wrap(err error, message string) *Error {
	return &Error{
		Code:    ErrCollect,
		Message: message,
		Cause:   err,
	}
}

// WrapWithCode wraps err with an explicit code, message, and suggestion.
func WrapWithCode(err error, code, message, suggestion string) *Error {
	return &Error{
		Code:       code,
		Message:    message,
		Suggestion: suggestion,
		Cause:      err,
	}
}

// Error formats the message, cause, and suggestion on separate lines.
func (e *Error) Error() string {
	var b strings.Builder

	fmt.Fprintf(&b, "✗ %s\n", e.Message)

	if e.Cause != nil {
		fmt.Fprintf(&b, "\n  %s\n", e.Cause.Error())
	}

	if e.Suggestion != "" {
		fmt.Fprintf(&b, "\n  %s\n", e.Suggestion)
	}

	return b.String()
}

// Unwrap returns the cause for errors.Is and errors.As.
func (e *Error) Unwrap() error {
	return e.Cause
}

// IsCode reports whether err is, or wraps, an *Error with the given code.
func IsCode(err error, code string) bool {
	if err == nil {
		return false
	}
	var target *Error
	if errors.As(err, &target) {
		return target.Code == code
	}
	return false
}
