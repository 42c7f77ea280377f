package ropt

// AsyncResult is a Result delivered by a single-shot asynchronous
// completion: the channel yields exactly one value and is then closed.
// Producers live in packages attempt, flow and future; consume with
// future.Await or a plain receive.
type AsyncResult[T, E any] <-chan Result[T, E]

// AsyncOption is the Option counterpart of AsyncResult.
type AsyncOption[T any] <-chan Option[T]
