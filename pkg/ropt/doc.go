// Package ropt provides the two core variant types of the library:
// Option[T] for presence-or-absence and Result[T, E] for
// success-or-failure, together with conversions between them.
//
// Both types are immutable values constructed through Some/None and Ok/Err.
// Every operation that takes a fallback callback is lazy: the callback runs
// only when the primary variant is missing. The only operations that panic
// are the unwrap-style accessors, and they panic with *OptionError or
// *ResultError so library misuse is never confused with a domain error
// carried inside Err.
//
// Key operations:
// - Some/None, Ok/Err: construct variants
// - Map/MapErr/Filter/AndThen/OrElse: compose without branching
// - OkOr/Ok/Err/Transpose: move between Option and Result
// - Match/MatchOption/MatchResult: exhaustive two-branch dispatch
// - FromNullable/FromPtr/FromPredicate: lift raw values into Option
//
// For bridging panicking or error-returning code see package attempt, for
// early-return composition see package flow, and for single-shot
// asynchronous completions see package future.
package ropt
