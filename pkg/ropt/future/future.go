package future

import (
	"context"

	"github.com/ib-77/ropt/pkg/ropt"
	"github.com/ib-77/ropt/pkg/ropt/attempt"
)

// FromFunc runs fn exactly once in its own goroutine and delivers its
// outcome as a single-shot completion: Ok on success, Err on a returned
// error or a panic.
func FromFunc[T any](ctx context.Context, fn func(context.Context) (T, error)) ropt.AsyncResult[T, error] {
	return attempt.Go(func() (T, error) { return fn(ctx) })
}

// FromFuncWith is FromFunc with a caller-chosen error type produced by
// mapErr on every failure path.
func FromFuncWith[T, E any](ctx context.Context, fn func(context.Context) (T, error), mapErr func(error) E) ropt.AsyncResult[T, E] {
	out := make(chan ropt.Result[T, E], 1)
	go func() {
		defer close(out)
		r := attempt.Do(func() (T, error) { return fn(ctx) })
		out <- ropt.MapResultErr(r, mapErr)
	}()
	return out
}

// Settled wraps an already known Result as a completed AsyncResult.
func Settled[T, E any](r ropt.Result[T, E]) ropt.AsyncResult[T, E] {
	out := make(chan ropt.Result[T, E], 1)
	out <- r
	close(out)
	return out
}

// SettledOption wraps an already known Option as a completed AsyncOption.
func SettledOption[T any](o ropt.Option[T]) ropt.AsyncOption[T] {
	out := make(chan ropt.Option[T], 1)
	out <- o
	close(out)
	return out
}

// Await blocks until the completion delivers or ctx is done. Context
// cancellation surfaces as Err(mapErr(ctx.Err())); a completion closed
// without delivering surfaces as Err(mapErr(ErrNoValue)).
func Await[T, E any](ctx context.Context, ar ropt.AsyncResult[T, E], mapErr func(error) E) ropt.Result[T, E] {
	select {
	case r, ok := <-ar:
		if !ok {
			return ropt.Err[T](mapErr(ropt.ErrNoValue))
		}
		return r
	case <-ctx.Done():
		return ropt.Err[T](mapErr(ctx.Err()))
	}
}

// AwaitErr awaits a completion whose failure side is already error-typed.
func AwaitErr[T any](ctx context.Context, ar ropt.AsyncResult[T, error]) ropt.Result[T, error] {
	return Await(ctx, ar, func(err error) error { return err })
}

// AwaitOption blocks until the completion delivers or ctx is done; both
// cancellation and a closed completion surface as None.
func AwaitOption[T any](ctx context.Context, ao ropt.AsyncOption[T]) ropt.Option[T] {
	select {
	case o, ok := <-ao:
		if !ok {
			return ropt.None[T]()
		}
		return o
	case <-ctx.Done():
		return ropt.None[T]()
	}
}
