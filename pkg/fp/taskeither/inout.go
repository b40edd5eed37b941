package taskeither

import (
	"context"

	"github.com/benbjohnson/immutable"

	"github.com/ib-77/fpkit/pkg/fp/either"
)

// ToChan feeds values into a channel in order, stopping early when ctx is
// done. The channel is closed once all values are sent or the feed stops.
func ToChan[T any](ctx context.Context, values []T) <-chan T {
	in := make(chan T)

	go func() {
		defer close(in)

		for _, v := range values {
			select {
			case in <- v:
			case <-ctx.Done():
				return
			}
		}
	}()

	return in
}

// Collect drains a channel into a slice, in arrival order, until the
// channel closes or ctx is done.
func Collect[T any](ctx context.Context, ch <-chan T) []T {
	res := make([]T, 0)
	for {
		select {
		case v, ok := <-ch:
			if !ok {
				return res
			}
			res = append(res, v)
		case <-ctx.Done():
			return res
		}
	}
}

// TraverseChan sequentially traverses a channel of inputs with f, awaiting
// each task before receiving the next input. The first Left stops the
// traversal: remaining inputs are left on the channel and no further tasks
// are started. A closed, empty channel resolves to Right of an empty list.
// When ctx is done the traversal resolves to Right of what was collected so
// far; the run in flight, if any, is still awaited. Callers that need to
// tell an ended traversal apart from an exhausted channel must check
// ctx.Err() after the task resolves.
func TraverseChan[E, A, B any](ch <-chan A, f func(A) TaskEither[E, B]) TaskEither[E, *immutable.List[B]] {
	return func(ctx context.Context) <-chan either.Either[E, *immutable.List[B]] {
		out := make(chan either.Either[E, *immutable.List[B]], 1)
		go func() {
			defer close(out)
			b := immutable.NewListBuilder[B]()
			for {
				select {
				case v, ok := <-ch:
					if !ok {
						out <- either.Right[E](b.List())
						return
					}
					r := <-f(v)(ctx)
					if e, failed := r.Left(); failed {
						out <- either.Left[E, *immutable.List[B]](e)
						return
					}
					rv, _ := r.Right()
					b.Append(rv)
				case <-ctx.Done():
					out <- either.Right[E](b.List())
					return
				}
			}
		}()
		return out
	}
}
