package ropt

import "errors"

// ErrNoValue is the generic failure carried by a Result produced from a
// None without a caller-supplied error.
var ErrNoValue = errors.New("no value")

// OptionError reports misuse of an Option accessor, such as Unwrap on
// None. It is raised as a panic value, never returned, and is distinct
// from any domain payload.
type OptionError struct {
	Message string
}

func (e *OptionError) Error() string {
	return e.Message
}

// ResultError reports misuse of a Result accessor, such as Unwrap on an
// Err or UnwrapErr on an Ok.
type ResultError struct {
	Message string
}

func (e *ResultError) Error() string {
	return e.Message
}
