package taskeither

import (
	"context"

	"github.com/ib-77/fpkit/pkg/fp/either"
	"github.com/ib-77/fpkit/pkg/fp/option"
)

// Task is a re-invocable description of an asynchronous computation
// producing an A. Invoking it starts a fresh run on its own goroutine and
// returns a channel that delivers exactly one value.
type Task[A any] func(ctx context.Context) <-chan A

// TaskEither is a re-invocable description of an asynchronous computation
// producing an Either[E, A]. Every invocation is independent; results are
// never memoized. The library never cancels a started run; ctx is handed to
// the wrapped producer only.
type TaskEither[E, A any] func(ctx context.Context) <-chan either.Either[E, A]

// Run invokes the task and blocks until its single value is delivered.
func (t Task[A]) Run(ctx context.Context) A {
	return <-t(ctx)
}

// Run invokes the task and blocks until its Either is delivered.
func (t TaskEither[E, A]) Run(ctx context.Context) either.Either[E, A] {
	return <-t(ctx)
}

// From wraps an arbitrary producer. Each invocation runs the producer on a
// fresh goroutine.
func From[E, A any](run func(ctx context.Context) either.Either[E, A]) TaskEither[E, A] {
	return func(ctx context.Context) <-chan either.Either[E, A] {
		out := make(chan either.Either[E, A], 1)
		go func() {
			defer close(out)
			out <- run(ctx)
		}()
		return out
	}
}

// Right is an immediately-resolving success.
func Right[E, A any](a A) TaskEither[E, A] {
	return From(func(context.Context) either.Either[E, A] {
		return either.Right[E, A](a)
	})
}

// Left is an immediately-resolving failure.
func Left[E, A any](e E) TaskEither[E, A] {
	return From(func(context.Context) either.Either[E, A] {
		return either.Left[E, A](e)
	})
}

// Of is an alias for Right.
func Of[E, A any](a A) TaskEither[E, A] {
	return Right[E, A](a)
}

// FromEither lifts an already-computed Either into the async shape.
func FromEither[E, A any](e either.Either[E, A]) TaskEither[E, A] {
	return From(func(context.Context) either.Either[E, A] { return e })
}

// FromOption lifts an Option: Some resolves to Right, None resolves to Left
// built from onNone.
func FromOption[E, A any](o option.Option[A], onNone func() E) TaskEither[E, A] {
	return FromEither(either.FromOption(o, onNone))
}

// FromPredicate returns a constructor of immediately-resolving tasks: Right
// of the input when pred holds, Left built from onFalse otherwise. The work
// is synchronous but keeps the async shape, so callers still await it.
func FromPredicate[E, A any](pred func(A) bool, onFalse func() E) func(A) TaskEither[E, A] {
	check := either.FromPredicate(pred, onFalse)
	return func(a A) TaskEither[E, A] {
		return FromEither(check(a))
	}
}

// Try wraps a producer in Go's (value, error) convention.
func Try[A any](f func(ctx context.Context) (A, error)) TaskEither[error, A] {
	return From(func(ctx context.Context) either.Either[error, A] {
		v, err := f(ctx)
		if err != nil {
			return either.Left[error, A](err)
		}
		return either.Right[error](v)
	})
}

// Map transforms the eventual success payload. f runs after the inner task
// resolves and is never invoked on Left.
func Map[E, A, B any](t TaskEither[E, A], f func(A) B) TaskEither[E, B] {
	return func(ctx context.Context) <-chan either.Either[E, B] {
		out := make(chan either.Either[E, B], 1)
		go func() {
			defer close(out)
			out <- either.Map(<-t(ctx), f)
		}()
		return out
	}
}

// MapLeft transforms the eventual failure payload.
func MapLeft[E, F, A any](t TaskEither[E, A], f func(E) F) TaskEither[F, A] {
	return func(ctx context.Context) <-chan either.Either[F, A] {
		out := make(chan either.Either[F, A], 1)
		go func() {
			defer close(out)
			out <- either.MapLeft(<-t(ctx), f)
		}()
		return out
	}
}

// FlatMap chains a constructor of the next task. The continuation is
// invoked only after the inner task resolves, and never on Left: no
// follow-up work is scheduled for a failed run.
func FlatMap[E, A, B any](t TaskEither[E, A], f func(A) TaskEither[E, B]) TaskEither[E, B] {
	return func(ctx context.Context) <-chan either.Either[E, B] {
		out := make(chan either.Either[E, B], 1)
		go func() {
			defer close(out)
			r := <-t(ctx)
			if e, ok := r.Left(); ok {
				out <- either.Left[E, B](e)
				return
			}
			v, _ := r.Right()
			out <- <-f(v)(ctx)
		}()
		return out
	}
}

// Ap applies an eventual function to an eventual value. The function side
// resolves first; if it is Left the value task is never started, and the
// function-side Left wins when both would fail.
func Ap[E, A, B any](fab TaskEither[E, func(A) B], fa TaskEither[E, A]) TaskEither[E, B] {
	return func(ctx context.Context) <-chan either.Either[E, B] {
		out := make(chan either.Either[E, B], 1)
		go func() {
			defer close(out)
			rf := <-fab(ctx)
			if e, ok := rf.Left(); ok {
				out <- either.Left[E, B](e)
				return
			}
			f, _ := rf.Right()
			out <- either.Map(<-fa(ctx), f)
		}()
		return out
	}
}

// Match collapses the task by exhaustive case analysis. The selected branch
// runs inside the task goroutine after the inner Either resolves.
func Match[E, A, C any](t TaskEither[E, A],
	onLeft func(ctx context.Context, e E) C,
	onRight func(ctx context.Context, a A) C) Task[C] {

	return func(ctx context.Context) <-chan C {
		out := make(chan C, 1)
		go func() {
			defer close(out)
			r := <-t(ctx)
			if e, ok := r.Left(); ok {
				out <- onLeft(ctx, e)
				return
			}
			v, _ := r.Right()
			out <- onRight(ctx, v)
		}()
		return out
	}
}

// GetOrElse collapses the task into its success payload, or the value
// produced by onLeft. Unlike option.GetOrElse and either.GetOrElse, onLeft
// receives the Left payload; the asymmetry is deliberate (an async default
// plausibly needs the failure to decide).
func GetOrElse[E, A any](t TaskEither[E, A], onLeft func(E) A) Task[A] {
	return func(ctx context.Context) <-chan A {
		out := make(chan A, 1)
		go func() {
			defer close(out)
			r := <-t(ctx)
			if e, ok := r.Left(); ok {
				out <- onLeft(e)
				return
			}
			v, _ := r.Right()
			out <- v
		}()
		return out
	}
}

// Tap invokes f on the eventual success payload for its side effect and
// resolves to the inner Either unchanged. A panic raised by f is recovered
// and discarded: a logging hook must never break the pipeline. This is the
// only combinator that catches faults.
func Tap[E, A any](t TaskEither[E, A], f func(A)) TaskEither[E, A] {
	return func(ctx context.Context) <-chan either.Either[E, A] {
		out := make(chan either.Either[E, A], 1)
		go func() {
			defer close(out)
			r := <-t(ctx)
			if v, ok := r.Right(); ok {
				func() {
					defer func() { _ = recover() }()
					f(v)
				}()
			}
			out <- r
		}()
		return out
	}
}
