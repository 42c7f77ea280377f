package ropt

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Result represents the outcome of an operation that may fail: Ok carries
// one success value, Err carries one error payload of caller-chosen type.
// Every Result is stamped with an id and creation time at construction;
// operations that pass a variant through unchanged preserve the stamp, so
// identity-preserving no-ops are observable through Id.
type Result[T, E any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     T
	err       E
	ok        bool
}

// Ok creates a successful Result. The error side comes first so the value
// side infers from the argument: Ok[error](42).
func Ok[E, T any](v T) Result[T, E] {
	return Result[T, E]{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		value:     v,
		ok:        true,
	}
}

// Err creates a failed Result: Err[int](errors.New("boom")).
func Err[T, E any](e E) Result[T, E] {
	return Result[T, E]{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		err:       e,
		ok:        false,
	}
}

// errFrom rebuilds a failed Result under a new value type, preserving the
// identity stamp of the original.
func errFrom[T, E, U any](from Result[T, E]) Result[U, E] {
	return Result[U, E]{
		id:        from.id,
		createdAt: from.createdAt,
		err:       from.err,
		ok:        false,
	}
}

// okFrom rebuilds a successful Result under a new error type, preserving
// the identity stamp of the original.
func okFrom[T, E, F any](from Result[T, E]) Result[T, F] {
	return Result[T, F]{
		id:        from.id,
		createdAt: from.createdAt,
		value:     from.value,
		ok:        true,
	}
}

// IsOk returns true if the Result is successful.
func (r Result[T, E]) IsOk() bool {
	return r.ok
}

// IsErr returns true if the Result is a failure.
func (r Result[T, E]) IsErr() bool {
	return !r.ok
}

// IsOkAnd returns true if the Result is successful and pred holds for its
// value. pred is not invoked on Err.
func (r Result[T, E]) IsOkAnd(pred func(T) bool) bool {
	return r.ok && pred(r.value)
}

// IsErrAnd returns true if the Result is a failure and pred holds for its
// error. pred is not invoked on Ok.
func (r Result[T, E]) IsErrAnd(pred func(E) bool) bool {
	return !r.ok && pred(r.err)
}

// Ok projects the success side into an Option: Some on Ok, None on Err.
// The projection never inspects the value itself, so Some may carry a nil
// payload.
func (r Result[T, E]) Ok() Option[T] {
	if !r.ok {
		return None[T]()
	}
	return Some(r.value)
}

// Err projects the failure side into an Option: Some on Err, None on Ok.
func (r Result[T, E]) Err() Option[E] {
	if r.ok {
		return None[E]()
	}
	return Some(r.err)
}

// Unwrap returns the success value or panics with a *ResultError that
// embeds the error payload's repr.
func (r Result[T, E]) Unwrap() T {
	if !r.ok {
		panic(&ResultError{Message: "called Unwrap on an Err value: " + Repr(r.err)})
	}
	return r.value
}

// UnwrapErr returns the error payload or panics with a *ResultError that
// embeds the success value's repr.
func (r Result[T, E]) UnwrapErr() E {
	if r.ok {
		panic(&ResultError{Message: "called UnwrapErr on an Ok value: " + Repr(r.value)})
	}
	return r.err
}

// UnwrapOr returns the success value or a default.
func (r Result[T, E]) UnwrapOr(defaultValue T) T {
	if r.ok {
		return r.value
	}
	return defaultValue
}

// UnwrapOrElse returns the success value or computes one from the error,
// enabling error-aware recovery. fn is not invoked on Ok.
func (r Result[T, E]) UnwrapOrElse(fn func(E) T) T {
	if r.ok {
		return r.value
	}
	return fn(r.err)
}

// Expect returns the success value or panics with "<msg>: <error repr>".
func (r Result[T, E]) Expect(msg string) T {
	if !r.ok {
		panic(&ResultError{Message: msg + ": " + Repr(r.err)})
	}
	return r.value
}

// ExpectErr returns the error payload or panics with "<msg>: <value repr>".
func (r Result[T, E]) ExpectErr(msg string) E {
	if r.ok {
		panic(&ResultError{Message: msg + ": " + Repr(r.value)})
	}
	return r.err
}

// Map applies fn to the success value; an Err passes through unchanged
// with its identity stamp and fn is not invoked. For a type-changing
// transform see MapResult.
func (r Result[T, E]) Map(fn func(T) T) Result[T, E] {
	if !r.ok {
		return r
	}
	return Ok[E](fn(r.value))
}

// MapErr applies fn to the error payload; an Ok passes through unchanged
// with its identity stamp and fn is not invoked.
func (r Result[T, E]) MapErr(fn func(E) E) Result[T, E] {
	if r.ok {
		return r
	}
	return Err[T, E](fn(r.err))
}

// MapOr applies fn to the success value and unwraps, or returns the
// eagerly supplied default on Err.
func (r Result[T, E]) MapOr(defaultValue T, fn func(T) T) T {
	if !r.ok {
		return defaultValue
	}
	return fn(r.value)
}

// MapOrElse is the lazy form of MapOr; defaultFn receives the error and
// runs only on Err.
func (r Result[T, E]) MapOrElse(defaultFn func(E) T, fn func(T) T) T {
	if !r.ok {
		return defaultFn(r.err)
	}
	return fn(r.value)
}

// And returns other when the Result is Ok, otherwise the Err unchanged.
func (r Result[T, E]) And(other Result[T, E]) Result[T, E] {
	if !r.ok {
		return r
	}
	return other
}

// AndThen applies fn to the success value; an Err passes through and fn is
// not invoked. For a type-changing chain see FlatMapResult.
func (r Result[T, E]) AndThen(fn func(T) Result[T, E]) Result[T, E] {
	if !r.ok {
		return r
	}
	return fn(r.value)
}

// Or returns the Result itself when Ok, otherwise other.
func (r Result[T, E]) Or(other Result[T, E]) Result[T, E] {
	if r.ok {
		return r
	}
	return other
}

// OrElse returns the Result itself when Ok, otherwise fn(error). fn is not
// invoked on Ok.
func (r Result[T, E]) OrElse(fn func(E) Result[T, E]) Result[T, E] {
	if r.ok {
		return r
	}
	return fn(r.err)
}

// Transpose turns the Result into an Option of itself: an Ok holding a nil
// pointer-like value (per IsNil) becomes None; any other Ok and any Err
// becomes Some of the same Result, identity stamp included. Zero values
// such as 0 and "" are not nil and stay Some.
func (r Result[T, E]) Transpose() Option[Result[T, E]] {
	if r.ok && IsNil(r.value) {
		return None[Result[T, E]]()
	}
	return Some(r)
}

// Match invokes exactly one of the two handlers.
func (r Result[T, E]) Match(onOk func(T), onErr func(E)) {
	if r.ok {
		onOk(r.value)
	} else {
		onErr(r.err)
	}
}

// String renders "Ok(<repr>)" or "Err(<repr>)"; it never panics even for
// payloads that cannot be serialized.
func (r Result[T, E]) String() string {
	if !r.ok {
		return "Err(" + Repr(r.err) + ")"
	}
	return "Ok(" + Repr(r.value) + ")"
}

// Id returns the identity stamp assigned at construction.
func (r Result[T, E]) Id() uuid.UUID {
	return r.id
}

// CreatedAt returns the construction time (UTC).
func (r Result[T, E]) CreatedAt() time.Time {
	return r.createdAt
}

// IntoResult implements the IntoResult contract trivially.
func (r Result[T, E]) IntoResult() Result[T, E] {
	return r
}

// IntoOption projects the success side, like Ok.
func (r Result[T, E]) IntoOption() Option[T] {
	return r.Ok()
}

// MapResult applies a type-changing transform to the success value.
func MapResult[T, E, U any](r Result[T, E], fn func(T) U) Result[U, E] {
	if !r.ok {
		return errFrom[T, E, U](r)
	}
	return Ok[E](fn(r.value))
}

// MapResultErr applies a type-changing transform to the error payload.
func MapResultErr[T, E, F any](r Result[T, E], fn func(E) F) Result[T, F] {
	if r.ok {
		return okFrom[T, E, F](r)
	}
	return Err[T, F](fn(r.err))
}

// MapResultOr applies fn and unwraps, or returns the default on Err.
func MapResultOr[T, E, U any](r Result[T, E], defaultValue U, fn func(T) U) U {
	if !r.ok {
		return defaultValue
	}
	return fn(r.value)
}

// MapResultOrElse is the lazy form of MapResultOr; defaultFn receives the
// error and runs only on Err.
func MapResultOrElse[T, E, U any](r Result[T, E], defaultFn func(E) U, fn func(T) U) U {
	if !r.ok {
		return defaultFn(r.err)
	}
	return fn(r.value)
}

// FlatMapResult chains a type-changing function that itself returns a
// Result.
func FlatMapResult[T, E, U any](r Result[T, E], fn func(T) Result[U, E]) Result[U, E] {
	if !r.ok {
		return errFrom[T, E, U](r)
	}
	return fn(r.value)
}

// OrElseResult recovers from a failure with a function that may change the
// error type. fn is not invoked on Ok.
func OrElseResult[T, E, F any](r Result[T, E], fn func(E) Result[T, F]) Result[T, F] {
	if r.ok {
		return okFrom[T, E, F](r)
	}
	return fn(r.err)
}

// MatchResult invokes exactly one of the two handlers and returns its
// result.
func MatchResult[T, E, U any](r Result[T, E], onOk func(T) U, onErr func(E) U) U {
	if !r.ok {
		return onErr(r.err)
	}
	return onOk(r.value)
}

// Collect gathers the success values of rs, stopping at the first failure
// and returning it with its identity stamp preserved.
func Collect[T, E any](rs []Result[T, E]) Result[[]T, E] {
	out := make([]T, 0, len(rs))
	for _, r := range rs {
		if !r.ok {
			return errFrom[T, E, []T](r)
		}
		out = append(out, r.value)
	}
	return Ok[E](out)
}

// CollectAll gathers all success values, joining every failure into one
// error instead of stopping at the first.
func CollectAll[T any](rs []Result[T, error]) Result[[]T, error] {
	out := make([]T, 0, len(rs))
	var errs []error
	for _, r := range rs {
		if r.ok {
			out = append(out, r.value)
			continue
		}
		errs = append(errs, GetErrors(r.err)...)
	}
	if len(errs) > 0 {
		return Err[[]T](errors.Join(errs...))
	}
	return Ok[error](out)
}
