package ord

import (
	"cmp"

	"github.com/ib-77/fpkit/pkg/fp/eq"
)

// Ord is the total-ordering capability. Compare returns a negative value
// when a sorts before b, zero when they are equivalent, and a positive
// value when a sorts after b.
type Ord[T any] interface {
	eq.Eq[T]
	Compare(a, b T) int
}

type ordFunc[T any] func(a, b T) int

func (f ordFunc[T]) Compare(a, b T) int {
	return f(a, b)
}

func (f ordFunc[T]) Equals(a, b T) bool {
	return f(a, b) == 0
}

// FromCompare wraps a three-way comparison function into an Ord.
func FromCompare[T any](f func(a, b T) int) Ord[T] {
	return ordFunc[T](f)
}

// Natural is the Ord of Go's built-in ordering for ordered types.
func Natural[T cmp.Ordered]() Ord[T] {
	return ordFunc[T](func(a, b T) int { return cmp.Compare(a, b) })
}

// Reverse inverts an ordering.
func Reverse[T any](o Ord[T]) Ord[T] {
	return ordFunc[T](func(a, b T) int { return -o.Compare(a, b) })
}

// Contramap derives an Ord of B from an Ord of A and a projection B -> A.
func Contramap[A, B any](o Ord[A], f func(B) A) Ord[B] {
	return ordFunc[B](func(a, b B) int {
		return o.Compare(f(a), f(b))
	})
}

// Min returns the smaller of a and b under o; a when equivalent.
func Min[T any](o Ord[T], a, b T) T {
	if o.Compare(b, a) < 0 {
		return b
	}
	return a
}

// Max returns the larger of a and b under o; a when equivalent.
func Max[T any](o Ord[T], a, b T) T {
	if o.Compare(b, a) > 0 {
		return b
	}
	return a
}

// Clamp restricts v to the inclusive range [lo, hi] under o.
func Clamp[T any](o Ord[T], lo, hi T) func(T) T {
	return func(v T) T {
		return Min(o, Max(o, v, lo), hi)
	}
}

// Between reports whether v lies in the inclusive range [lo, hi] under o.
func Between[T any](o Ord[T], lo, hi T) func(T) bool {
	return func(v T) bool {
		return o.Compare(v, lo) >= 0 && o.Compare(v, hi) <= 0
	}
}
