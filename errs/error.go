package errs

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Error wraps the built-in error interface so ambient collaborators
// (config loading, scheduler reconciliation) can marshal failures across a
// JSON boundary the same way the core's typed errors do.
type Error struct {
	error
}

// New creates a new *Error with the given message, used as is.
func New(format string) *Error {
	return NewError(errors.New(format))
}

// Newf creates a new *Error from a format string and arguments.
func Newf(format string, a ...interface{}) *Error {
	return NewError(fmt.Errorf(format, a...))
}

// NewError wraps a non-nil error. Returns nil if err is nil, so callers can
// write `return errs.NewError(err)` without a separate nil check.
func NewError(err error) *Error {
	if err == nil {
		return nil
	}
	return &Error{error: err}
}

// IsNil reports whether the Error or its embedded error is nil.
func (e *Error) IsNil() bool {
	return e == nil || e.error == nil
}

// MarshalJSON renders the wrapped error as a JSON string, or null.
func (e Error) MarshalJSON() ([]byte, error) {
	if e.error == nil {
		return []byte(`null`), nil
	}
	return json.Marshal(e.Error())
}

// UnmarshalJSON restores the wrapped error from a JSON string.
func (e *Error) UnmarshalJSON(b []byte) error {
	if len(b) == 0 || string(b) == "null" {
		e.error = nil
		return nil
	}
	var msg string
	if err := json.Unmarshal(b, &msg); err != nil {
		return err
	}
	e.error = errors.New(msg)
	return nil
}

// Error returns the wrapped error's message.
func (e *Error) Error() string {
	if e == nil || e.error == nil {
		return ""
	}
	return e.error.Error()
}

// Unwrap exposes the embedded error to errors.Is/errors.As.
func (e *Error) Unwrap() error {
	return e.error
}
