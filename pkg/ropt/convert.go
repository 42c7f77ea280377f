package ropt

// OkOr converts an Option into a Result: Some(v) becomes Ok(v), None
// becomes Err(e).
func OkOr[T, E any](o Option[T], e E) Result[T, E] {
	if !o.some {
		return Err[T, E](e)
	}
	return Ok[E](o.value)
}

// OkOrElse is the lazy form of OkOr; fn is not invoked on Some.
func OkOrElse[T, E any](o Option[T], fn func() E) Result[T, E] {
	if !o.some {
		return Err[T, E](fn())
	}
	return Ok[E](o.value)
}

// ToResult converts an Option into a Result over error; None maps to
// ErrNoValue. A free function rather than a method: putting it in
// Option's method set would make every Result instantiate an Option of
// itself through Transpose, recursing without bound.
func ToResult[T any](o Option[T]) Result[T, error] {
	return OkOr[T, error](o, ErrNoValue)
}
