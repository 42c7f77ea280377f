// Package future produces and consumes single-shot asynchronous
// completions of Result and Option values.
//
// "Asynchronous" here is single-flow suspension: exactly one computation
// runs per completion and the only suspension point is the await. There is
// no fan-out, no worker pool and no cancellation of the wrapped
// computation itself; Await only stops waiting when its context is done,
// the computation keeps running to completion unobserved.
//
// Key operations:
// - FromFunc/FromFuncWith: run a context-taking function once, delivering
//   its outcome (panics convert like attempt)
// - Settled/SettledOption: wrap an already known value as a completion
// - Await/AwaitErr/AwaitOption: block for the single delivery, mapping
//   context cancellation into a failure
package future
