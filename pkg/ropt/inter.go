package ropt

// IntoResult is the capability contract for types that can describe
// themselves as a Result. Host-defined error types implement it so their
// failure mode self-converts at the library boundary.
type IntoResult[T, E any] interface {
	// IntoResult converts the receiver into a Result
	IntoResult() Result[T, E]
}

// IntoOption is the capability contract for types that can describe
// themselves as an Option.
type IntoOption[T any] interface {
	// IntoOption converts the receiver into an Option
	IntoOption() Option[T]
}

// ResultFrom builds a Result by delegating to the conversion capability.
func ResultFrom[T, E any](c IntoResult[T, E]) Result[T, E] {
	return c.IntoResult()
}

// OptionFrom builds an Option by delegating to the conversion capability.
func OptionFrom[T any](c IntoOption[T]) Option[T] {
	return c.IntoOption()
}
