package attempt

import (
	"fmt"

	"github.com/ib-77/ropt/pkg/ropt"
)

// ToError normalizes a recovered panic payload: errors pass through
// unchanged, any other value is wrapped into a generic error.
func ToError(v interface{}) error {
	if err, ok := v.(error); ok {
		return err
	}
	return fmt.Errorf("panic: %v", v)
}

func identity(err error) error {
	return err
}

// Of invokes fn exactly once and wraps its value in Ok; a panic becomes an
// Err instead of propagating.
func Of[T any](fn func() T) ropt.Result[T, error] {
	return OfWith(fn, identity)
}

// OfWith is Of with a caller-supplied error mapper applied to the
// converted panic payload.
func OfWith[T any](fn func() T, mapErr func(error) error) (res ropt.Result[T, error]) {
	defer func() {
		if r := recover(); r != nil {
			res = ropt.Err[T](mapErr(ToError(r)))
		}
	}()
	return ropt.Ok[error](fn())
}

// Do invokes fn exactly once: a returned error or a panic becomes an Err,
// anything else an Ok.
func Do[T any](fn func() (T, error)) ropt.Result[T, error] {
	return DoWith(fn, identity)
}

// DoWith is Do with a caller-supplied error mapper applied on every
// failure path.
func DoWith[T any](fn func() (T, error), mapErr func(error) error) (res ropt.Result[T, error]) {
	defer func() {
		if r := recover(); r != nil {
			res = ropt.Err[T](mapErr(ToError(r)))
		}
	}()

	v, err := fn()
	if err != nil {
		return ropt.Err[T](mapErr(err))
	}
	return ropt.Ok[error](v)
}

// Wrap lifts a one-argument function into one returning a Result, with Do
// semantics on every call.
func Wrap[A, T any](fn func(A) (T, error)) func(A) ropt.Result[T, error] {
	return WrapWith(fn, identity)
}

// WrapWith is Wrap with a caller-supplied error mapper.
func WrapWith[A, T any](fn func(A) (T, error), mapErr func(error) error) func(A) ropt.Result[T, error] {
	return func(a A) ropt.Result[T, error] {
		return DoWith(func() (T, error) { return fn(a) }, mapErr)
	}
}

// Wrap2 lifts a two-argument function.
func Wrap2[A, B, T any](fn func(A, B) (T, error)) func(A, B) ropt.Result[T, error] {
	return Wrap2With(fn, identity)
}

// Wrap2With is Wrap2 with a caller-supplied error mapper.
func Wrap2With[A, B, T any](fn func(A, B) (T, error), mapErr func(error) error) func(A, B) ropt.Result[T, error] {
	return func(a A, b B) ropt.Result[T, error] {
		return DoWith(func() (T, error) { return fn(a, b) }, mapErr)
	}
}

// Wrap3 lifts a three-argument function.
func Wrap3[A, B, C, T any](fn func(A, B, C) (T, error)) func(A, B, C) ropt.Result[T, error] {
	return Wrap3With(fn, identity)
}

// Wrap3With is Wrap3 with a caller-supplied error mapper.
func Wrap3With[A, B, C, T any](fn func(A, B, C) (T, error), mapErr func(error) error) func(A, B, C) ropt.Result[T, error] {
	return func(a A, b B, c C) ropt.Result[T, error] {
		return DoWith(func() (T, error) { return fn(a, b, c) }, mapErr)
	}
}

// Go invokes fn exactly once in its own goroutine with Do semantics and
// delivers the outcome as a single-shot completion.
func Go[T any](fn func() (T, error)) ropt.AsyncResult[T, error] {
	return GoWith(fn, identity)
}

// GoWith is Go with a caller-supplied error mapper.
func GoWith[T any](fn func() (T, error), mapErr func(error) error) ropt.AsyncResult[T, error] {
	out := make(chan ropt.Result[T, error], 1)
	go func() {
		defer close(out)
		out <- DoWith(fn, mapErr)
	}()
	return out
}
