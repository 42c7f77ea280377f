package chain

import (
	"context"

	"github.com/ib-77/ropt/pkg/ropt"
)

// Chain couples a Result[T, error] with the context the pipeline runs
// under.
type Chain[T any] struct {
	ctx context.Context
	res ropt.Result[T, error]
}

// Start creates a new chain from a Result.
func Start[T any](ctx context.Context, r ropt.Result[T, error]) Chain[T] {
	return Chain[T]{ctx: ctx, res: r}
}

// FromValue creates a new chain from a successful value.
func FromValue[T any](ctx context.Context, v T) Chain[T] {
	return Start(ctx, ropt.Ok[error](v))
}

// Result returns the underlying Result.
func (c Chain[T]) Result() ropt.Result[T, error] {
	return c.res
}

// Then composes a function that already returns a Result. It is not
// invoked once the chain has failed.
func (c Chain[T]) Then(onOk func(ctx context.Context, t T) ropt.Result[T, error]) Chain[T] {
	if c.res.IsErr() {
		return c
	}
	return Chain[T]{ctx: c.ctx, res: onOk(c.ctx, c.res.Unwrap())}
}

// ThenTry composes a function that returns (T, error), converting a
// returned error into a failed chain.
func (c Chain[T]) ThenTry(try func(ctx context.Context, t T) (T, error)) Chain[T] {
	if c.res.IsErr() {
		return c
	}
	v, err := try(c.ctx, c.res.Unwrap())
	if err != nil {
		return Chain[T]{ctx: c.ctx, res: ropt.Err[T](err)}
	}
	return Chain[T]{ctx: c.ctx, res: ropt.Ok[error](v)}
}

// Map transforms the successful value; a failed chain passes through
// unchanged.
func (c Chain[T]) Map(onOk func(ctx context.Context, t T) T) Chain[T] {
	if c.res.IsErr() {
		return c
	}
	return Chain[T]{ctx: c.ctx, res: ropt.Ok[error](onOk(c.ctx, c.res.Unwrap()))}
}

// Ensure triggers side effects for the current variant without changing
// the result. Nil handlers are skipped.
func (c Chain[T]) Ensure(onOk func(context.Context, T), onErr func(context.Context, error)) Chain[T] {
	if c.res.IsErr() {
		if onErr != nil {
			onErr(c.ctx, c.res.UnwrapErr())
		}
		return c
	}
	if onOk != nil {
		onOk(c.ctx, c.res.Unwrap())
	}
	return c
}

// Or keeps the chain when successful, otherwise switches to the
// alternative when that one succeeded; with two failures the original
// failure wins.
func (c Chain[T]) Or(alternative Chain[T]) Chain[T] {
	if c.res.IsOk() {
		return c
	}
	if alternative.res.IsOk() {
		return alternative
	}
	return c
}

// And requires both chains to succeed, keeping the second value; the first
// failure wins.
func (c Chain[T]) And(required Chain[T]) Chain[T] {
	if c.res.IsErr() {
		return c
	}
	return required
}

// Finally collapses the chain to a final value. Context-shaped errors
// route to onCancel, every other failure to onErr.
func (c Chain[T]) Finally(
	onOk func(context.Context, T) T,
	onErr func(context.Context, error) T,
	onCancel func(context.Context, error) T,
) T {
	return Finally(c, onOk, onErr, onCancel)
}

// ThenTo composes a function that switches the chain to a new value type.
func ThenTo[T, U any](c Chain[T], onOk func(ctx context.Context, t T) ropt.Result[U, error]) Chain[U] {
	return Chain[U]{
		ctx: c.ctx,
		res: ropt.FlatMapResult(c.res, func(v T) ropt.Result[U, error] {
			return onOk(c.ctx, v)
		}),
	}
}

// MapTo transforms the successful value to a new type.
func MapTo[T, U any](c Chain[T], onOk func(ctx context.Context, t T) U) Chain[U] {
	return Chain[U]{
		ctx: c.ctx,
		res: ropt.MapResult(c.res, func(v T) U {
			return onOk(c.ctx, v)
		}),
	}
}

// ThenTryTo composes a (U, error) function that switches the value type.
func ThenTryTo[T, U any](c Chain[T], try func(ctx context.Context, t T) (U, error)) Chain[U] {
	return Chain[U]{
		ctx: c.ctx,
		res: ropt.FlatMapResult(c.res, func(v T) ropt.Result[U, error] {
			u, err := try(c.ctx, v)
			if err != nil {
				return ropt.Err[U](err)
			}
			return ropt.Ok[error](u)
		}),
	}
}

// Finally collapses a chain to a final value of any type, routing
// context-shaped errors to onCancel.
func Finally[T, U any](c Chain[T],
	onOk func(context.Context, T) U,
	onErr func(context.Context, error) U,
	onCancel func(context.Context, error) U,
) U {
	return ropt.MatchResult(c.res,
		func(v T) U { return onOk(c.ctx, v) },
		func(err error) U {
			if ropt.IsCancellationError(err) {
				return onCancel(c.ctx, err)
			}
			return onErr(c.ctx, err)
		})
}
