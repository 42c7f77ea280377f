package flow

import (
	"github.com/google/uuid"

	"github.com/ib-77/ropt/pkg/ropt"
)

// shortCircuit is the internal control-transfer sentinel raised by Unwrap
// and Get. It is recovered only by the combinator invocation owning the
// scope; any other panic value passes through untouched.
type shortCircuit struct {
	scope interface{}
	err   interface{} // Err payload for Try scopes, nil for Maybe scopes
}

// TryScope identifies one Try invocation. Unwrap steps must use the scope
// handed to their own body; scopes must not escape it.
type TryScope[E any] struct {
	id uuid.UUID
}

// Try runs body with a fresh scope. The first failed Unwrap step inside
// the body terminates it and Try returns that failure; otherwise the
// body's final Result is returned as-is.
func Try[T, E any](body func(*TryScope[E]) ropt.Result[T, E]) (out ropt.Result[T, E]) {
	s := &TryScope[E]{id: uuid.New()}
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		sc, ok := r.(*shortCircuit)
		if !ok || sc.scope != interface{}(s) {
			panic(r)
		}
		// A nil error payload travels as a nil interface; the comma-ok
		// form maps it to the zero E instead of panicking.
		e, _ := sc.err.(E)
		out = ropt.Err[T](e)
	}()
	return body(s)
}

// Unwrap yields the Ok value of r, or stops the body owning s with r's
// error payload.
func Unwrap[T, E any](s *TryScope[E], r ropt.Result[T, E]) T {
	if r.IsOk() {
		return r.Unwrap()
	}
	panic(&shortCircuit{scope: s, err: interface{}(r.UnwrapErr())})
}

// TryAsync runs the same state machine as Try in its own goroutine,
// delivering the outcome as a single-shot completion.
func TryAsync[T, E any](body func(*TryScope[E]) ropt.Result[T, E]) ropt.AsyncResult[T, E] {
	out := make(chan ropt.Result[T, E], 1)
	go func() {
		defer close(out)
		out <- Try(body)
	}()
	return out
}
