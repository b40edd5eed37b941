package monoid

import "github.com/ib-77/fpkit/pkg/fp/semigroup"

// Monoid is a Semigroup with an identity element: Concat(Empty(), a) == a
// and Concat(a, Empty()) == a.
type Monoid[T any] interface {
	semigroup.Semigroup[T]
	Empty() T
}

type monoid[T any] struct {
	semigroup.Semigroup[T]
	empty func() T
}

func (m monoid[T]) Empty() T {
	return m.empty()
}

// FromSemigroup pairs a Semigroup with an identity element.
func FromSemigroup[T any](sg semigroup.Semigroup[T], empty func() T) Monoid[T] {
	return monoid[T]{Semigroup: sg, empty: empty}
}

// Slice is the monoid of slice concatenation with the empty slice as
// identity.
func Slice[T any]() Monoid[[]T] {
	return FromSemigroup(semigroup.Slice[T](), func() []T { return nil })
}

// ConcatAll folds values with m, starting from the identity.
func ConcatAll[T any](m Monoid[T], values ...T) T {
	acc := m.Empty()
	for _, v := range values {
		acc = m.Concat(acc, v)
	}
	return acc
}
