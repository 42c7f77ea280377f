package ropt

// Option represents a value that may be absent: Some carries exactly one
// value, None carries nothing. The zero value is None, so absence never
// allocates and None values compare equal.
type Option[T any] struct {
	value T
	some  bool
}

// Some creates an Option containing a value.
func Some[T any](v T) Option[T] {
	return Option[T]{value: v, some: true}
}

// None creates an empty Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// IsSome returns true if the Option contains a value.
func (o Option[T]) IsSome() bool {
	return o.some
}

// IsNone returns true if the Option is empty.
func (o Option[T]) IsNone() bool {
	return !o.some
}

// IsSomeAnd returns true if the Option contains a value and pred holds for
// it. pred is not invoked on None.
func (o Option[T]) IsSomeAnd(pred func(T) bool) bool {
	return o.some && pred(o.value)
}

// IsNoneOr returns true if the Option is empty or pred holds for the
// contained value. pred is not invoked on None.
func (o Option[T]) IsNoneOr(pred func(T) bool) bool {
	return !o.some || pred(o.value)
}

// Expect returns the contained value or panics with an *OptionError
// carrying msg verbatim.
func (o Option[T]) Expect(msg string) T {
	if !o.some {
		panic(&OptionError{Message: msg})
	}
	return o.value
}

// Unwrap returns the contained value or panics with an *OptionError.
func (o Option[T]) Unwrap() T {
	return o.Expect("called Unwrap on None")
}

// UnwrapOr returns the contained value or a default.
func (o Option[T]) UnwrapOr(defaultValue T) T {
	if o.some {
		return o.value
	}
	return defaultValue
}

// UnwrapOrElse returns the contained value or computes a default. fn is
// not invoked on Some.
func (o Option[T]) UnwrapOrElse(fn func() T) T {
	if o.some {
		return o.value
	}
	return fn()
}

// Map applies fn to the contained value; None passes through unchanged and
// fn is not invoked. For a type-changing transform see MapOption.
func (o Option[T]) Map(fn func(T) T) Option[T] {
	if !o.some {
		return o
	}
	return Some(fn(o.value))
}

// MapOr applies fn to the contained value and unwraps, or returns the
// eagerly supplied default on None.
func (o Option[T]) MapOr(defaultValue T, fn func(T) T) T {
	if !o.some {
		return defaultValue
	}
	return fn(o.value)
}

// MapOrElse is the lazy form of MapOr; defaultFn runs only on None.
func (o Option[T]) MapOrElse(defaultFn func() T, fn func(T) T) T {
	if !o.some {
		return defaultFn()
	}
	return fn(o.value)
}

// Filter keeps a Some only when pred holds for its value. pred is not
// invoked on None.
func (o Option[T]) Filter(pred func(T) bool) Option[T] {
	if o.some && pred(o.value) {
		return o
	}
	return None[T]()
}

// And returns other when the Option is Some, otherwise None.
func (o Option[T]) And(other Option[T]) Option[T] {
	if !o.some {
		return o
	}
	return other
}

// AndThen applies fn to the contained value; None passes through and fn is
// not invoked. For a type-changing chain see FlatMapOption.
func (o Option[T]) AndThen(fn func(T) Option[T]) Option[T] {
	if !o.some {
		return o
	}
	return fn(o.value)
}

// Or returns the Option itself when Some, otherwise other.
func (o Option[T]) Or(other Option[T]) Option[T] {
	if o.some {
		return o
	}
	return other
}

// OrElse returns the Option itself when Some, otherwise fn(). fn is not
// invoked on Some.
func (o Option[T]) OrElse(fn func() Option[T]) Option[T] {
	if o.some {
		return o
	}
	return fn()
}

// Match invokes exactly one of the two handlers.
func (o Option[T]) Match(onSome func(T), onNone func()) {
	if o.some {
		onSome(o.value)
	} else {
		onNone()
	}
}

// String renders "Some(<repr>)" or "None"; it never panics even for
// payloads that cannot be serialized.
func (o Option[T]) String() string {
	if !o.some {
		return "None"
	}
	return "Some(" + Repr(o.value) + ")"
}

// ToPtr returns a pointer to the contained value, or nil on None.
func (o Option[T]) ToPtr() *T {
	if !o.some {
		return nil
	}
	return &o.value
}

// ToSlice converts the Option to a slice of zero or one element.
func (o Option[T]) ToSlice() []T {
	if !o.some {
		return []T{}
	}
	return []T{o.value}
}

// IntoOption implements the IntoOption contract trivially.
func (o Option[T]) IntoOption() Option[T] {
	return o
}

// MapOption applies a type-changing transform to the contained value.
func MapOption[T, U any](o Option[T], fn func(T) U) Option[U] {
	if !o.some {
		return None[U]()
	}
	return Some(fn(o.value))
}

// MapOptionOr applies fn and unwraps, or returns the default on None.
func MapOptionOr[T, U any](o Option[T], defaultValue U, fn func(T) U) U {
	if !o.some {
		return defaultValue
	}
	return fn(o.value)
}

// MapOptionOrElse is the lazy form of MapOptionOr; defaultFn runs only on
// None.
func MapOptionOrElse[T, U any](o Option[T], defaultFn func() U, fn func(T) U) U {
	if !o.some {
		return defaultFn()
	}
	return fn(o.value)
}

// FlatMapOption chains a type-changing function that itself returns an
// Option.
func FlatMapOption[T, U any](o Option[T], fn func(T) Option[U]) Option[U] {
	if !o.some {
		return None[U]()
	}
	return fn(o.value)
}

// MatchOption invokes exactly one of the two handlers and returns its
// result.
func MatchOption[T, U any](o Option[T], onSome func(T) U, onNone func() U) U {
	if !o.some {
		return onNone()
	}
	return onSome(o.value)
}

// FromPtr creates an Option from a pointer; nil maps to None.
func FromPtr[T any](ptr *T) Option[T] {
	if ptr == nil {
		return None[T]()
	}
	return Some(*ptr)
}

// FromNullable lifts a raw value into an Option, mapping nil pointer-like
// values (per IsNil) to None. Zero values such as 0 and "" stay Some.
func FromNullable[T any](v T) Option[T] {
	if IsNil(v) {
		return None[T]()
	}
	return Some(v)
}

// FromPredicate creates Some(v) when pred holds for v, otherwise None.
func FromPredicate[T any](v T, pred func(T) bool) Option[T] {
	if pred(v) {
		return Some(v)
	}
	return None[T]()
}
