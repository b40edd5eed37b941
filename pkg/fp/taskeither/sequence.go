package taskeither

import (
	"context"

	"github.com/benbjohnson/immutable"

	"github.com/ib-77/fpkit/pkg/fp/either"
)

// SequenceList turns an ordered list of tasks into a task of an ordered
// list. Tasks run strictly sequentially: element i+1 is not started until
// element i has resolved. The first Left stops the traversal and later
// tasks are never started. An empty input resolves to Right of an empty
// list.
func SequenceList[E, A any](items *immutable.List[TaskEither[E, A]]) TaskEither[E, *immutable.List[A]] {
	return TraverseList(items, func(t TaskEither[E, A]) TaskEither[E, A] { return t })
}

// TraverseList applies f to each element in order, awaiting each resulting
// task before moving to the next. The first Left stops the traversal; f is
// not invoked on the remaining elements and no further tasks are started.
func TraverseList[E, A, B any](items *immutable.List[A], f func(A) TaskEither[E, B]) TaskEither[E, *immutable.List[B]] {
	return func(ctx context.Context) <-chan either.Either[E, *immutable.List[B]] {
		out := make(chan either.Either[E, *immutable.List[B]], 1)
		go func() {
			defer close(out)
			b := immutable.NewListBuilder[B]()
			it := items.Iterator()
			for !it.Done() {
				_, v := it.Next()
				r := <-f(v)(ctx)
				if e, ok := r.Left(); ok {
					out <- either.Left[E, *immutable.List[B]](e)
					return
				}
				rv, _ := r.Right()
				b.Append(rv)
			}
			out <- either.Right[E](b.List())
		}()
		return out
	}
}
