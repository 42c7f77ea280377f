package flow

import (
	"github.com/google/uuid"

	"github.com/ib-77/ropt/pkg/ropt"
)

// MaybeScope identifies one Maybe invocation.
type MaybeScope struct {
	id uuid.UUID
}

// Maybe runs body with a fresh scope. The first None hit by a Get step
// inside the body terminates it and Maybe returns None; otherwise the
// body's final Option is returned as-is.
func Maybe[T any](body func(*MaybeScope) ropt.Option[T]) (out ropt.Option[T]) {
	s := &MaybeScope{id: uuid.New()}
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		sc, ok := r.(*shortCircuit)
		if !ok || sc.scope != interface{}(s) {
			panic(r)
		}
		out = ropt.None[T]()
	}()
	return body(s)
}

// Get yields the Some value of o, or stops the body owning s.
func Get[T any](s *MaybeScope, o ropt.Option[T]) T {
	if o.IsSome() {
		return o.Unwrap()
	}
	panic(&shortCircuit{scope: s})
}

// MaybeAsync runs the same state machine as Maybe in its own goroutine,
// delivering the outcome as a single-shot completion.
func MaybeAsync[T any](body func(*MaybeScope) ropt.Option[T]) ropt.AsyncOption[T] {
	out := make(chan ropt.Option[T], 1)
	go func() {
		defer close(out)
		out <- Maybe(body)
	}()
	return out
}
