// Package attempt bridges the two failure universes of Go code into
// Result values: panics and (T, error) returns. Every function here calls
// the wrapped computation exactly once, never retries, and never
// re-panics; all failure paths resolve to an Err.
//
// Key operations:
// - Of/OfWith: run a plain supplier, converting a panic into an Err
// - Do/DoWith: run a (T, error) function, converting both failure shapes
// - Wrap/Wrap2/Wrap3 (+With): lift a function into one returning Result
// - Go: run once in a goroutine, delivering an AsyncResult
//
// Non-error panic payloads are wrapped into a generic error rather than
// passed through raw; error payloads pass unchanged unless a mapper is
// supplied.
package attempt
