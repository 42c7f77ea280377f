package ropt

import (
	"context"
	"errors"
	"reflect"
)

// IsNil reports whether v is nil or holds a nil pointer-like value
// (pointer, interface, map, slice, function or channel). Zero values such
// as 0 or "" are not nil.
func IsNil(v interface{}) bool {
	if v == nil {
		return true
	}
	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	default:
		return false
	}
}

// GetErrors flattens err into its joined parts, or a single-element slice
// when err does not wrap multiple errors.
func GetErrors(err error) []error {
	if IsNil(err) {
		return []error{}
	}

	e, ok := err.(interface{ Unwrap() []error })
	if ok {
		return e.Unwrap()
	}

	return []error{err}
}

// IsCancellationError reports whether err comes from context cancellation
// or deadline expiry.
func IsCancellationError(err error) bool {
	return errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled)
}
