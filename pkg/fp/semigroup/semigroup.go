package semigroup

// Semigroup is the associative-combination capability: Concat must satisfy
// Concat(Concat(a, b), c) == Concat(a, Concat(b, c)).
type Semigroup[T any] interface {
	Concat(a, b T) T
}

type sgFunc[T any] func(a, b T) T

func (f sgFunc[T]) Concat(a, b T) T {
	return f(a, b)
}

// FromConcat wraps a plain combination function into a Semigroup.
func FromConcat[T any](f func(a, b T) T) Semigroup[T] {
	return sgFunc[T](f)
}

// First keeps the left operand.
func First[T any]() Semigroup[T] {
	return sgFunc[T](func(a, _ T) T { return a })
}

// Last keeps the right operand.
func Last[T any]() Semigroup[T] {
	return sgFunc[T](func(_, b T) T { return b })
}

// Slice concatenates slices, preserving operand order. The result is a
// fresh slice; neither operand is mutated.
func Slice[T any]() Semigroup[[]T] {
	return sgFunc[[]T](func(a, b []T) []T {
		out := make([]T, 0, len(a)+len(b))
		out = append(out, a...)
		return append(out, b...)
	})
}
