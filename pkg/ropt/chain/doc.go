// Package chain provides a fluent, context-carrying wrapper around
// Result[T, error] for building synchronous pipelines.
//
// It keeps branching out of call sites: every step runs only while the
// chain is still successful, and a failed step freezes the chain until
// Finally collapses it through the success, failure or cancellation
// handler (cancellation meaning a context-shaped error).
//
// Key operations:
// - Start/FromValue: begin a chain from a Result or a raw value
// - Then/ThenTry: compose result-returning or (T, error) functions
// - Map/Ensure: transform the value or trigger side effects
// - Or/And: combine alternative and required chains
// - ThenTo/MapTo/ThenTryTo: type-changing steps
// - Finally: reduce to a concrete value via exhaustive handlers
package chain
