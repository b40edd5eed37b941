package chain

import (
	"time"

	"github.com/google/uuid"

	"github.com/ib-77/fpkit/pkg/fp/either"
)

// Chain wraps an either.Either[error, T] to enable fluent pipelines for
// callers who prefer method chaining to free functions. Each chain carries
// an id and UTC creation time for pipeline tracing; derived chains keep
// the originating chain's metadata.
type Chain[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	res       either.Either[error, T]
}

// Start creates a chain from an existing Either.
func Start[T any](res either.Either[error, T]) Chain[T] {
	return Chain[T]{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		res:       res,
	}
}

// FromValue creates a chain from a successful value.
func FromValue[T any](value T) Chain[T] {
	return Start(either.Right[error](value))
}

// Fail creates a chain from a failure.
func Fail[T any](err error) Chain[T] {
	return Start(either.Left[error, T](err))
}

// Result returns the underlying Either.
func (c Chain[T]) Result() either.Either[error, T] {
	return c.res
}

// Id returns the chain's pipeline id.
func (c Chain[T]) Id() uuid.UUID {
	return c.id
}

// CreatedAt returns the chain's creation time (UTC).
func (c Chain[T]) CreatedAt() time.Time {
	return c.createdAt
}

// Then composes a function that already returns an Either. A failed chain
// passes through untouched.
func (c Chain[T]) Then(onSuccess func(T) either.Either[error, T]) Chain[T] {
	return Chain[T]{
		id:        c.id,
		createdAt: c.createdAt,
		res:       either.FlatMap(c.res, onSuccess),
	}
}

// ThenTry composes a function in Go's (value, error) convention.
func (c Chain[T]) ThenTry(onSuccess func(T) (T, error)) Chain[T] {
	return c.Then(func(v T) either.Either[error, T] {
		return either.TryCatch(func() (T, error) { return onSuccess(v) })
	})
}

// Ensure triggers a side effect on success only; the result is unchanged.
func (c Chain[T]) Ensure(onSuccess func(T)) Chain[T] {
	either.Tap(c.res, onSuccess)
	return c
}

// Then composes a type-changing function that already returns an Either,
// keeping the source chain's metadata.
func Then[T, U any](c Chain[T], onSuccess func(T) either.Either[error, U]) Chain[U] {
	return Chain[U]{
		id:        c.id,
		createdAt: c.createdAt,
		res:       either.FlatMap(c.res, onSuccess),
	}
}

// Map composes a pure type-changing transformation, keeping the source
// chain's metadata.
func Map[T, U any](c Chain[T], onSuccess func(T) U) Chain[U] {
	return Chain[U]{
		id:        c.id,
		createdAt: c.createdAt,
		res:       either.Map(c.res, onSuccess),
	}
}

// Finally collapses the chain into a final value.
func Finally[T, U any](c Chain[T], onSuccess func(T) U, onFailure func(error) U) U {
	return either.Match(c.res, onFailure, onSuccess)
}
