// Package flow provides early-return composition over Result and Option
// chains without nested branching.
//
// A combinator runs a caller-supplied body and hands it a scope. Each
// unwrap step inside the body goes through Unwrap (for Try) or Get (for
// Maybe) with that scope: on Ok/Some the step yields the contained value
// and the body resumes; on Err/None the whole body stops immediately and
// the combinator returns that failure, so no later step executes. A body
// that runs to completion must itself return a Result/Option, which is
// returned as-is.
//
// Steps execute strictly in the order written. Combinators nest: a sentinel
// raised against an outer scope passes through every inner combinator
// untouched, so an inner Try/Maybe used as one step of an outer body
// propagates its failure transparently.
//
// A panic that is not a flow sentinel propagates unchanged from both Try
// and Maybe; converting foreign panics is the job of package attempt, not
// of these combinators.
//
// TryAsync and MaybeAsync run the same state machine in one goroutine and
// deliver the outcome as a single-shot completion.
package flow
