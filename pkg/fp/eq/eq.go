package eq

// Eq is the equality capability: a total, symmetric, transitive comparison
// over T. Container packages consume it opaquely when deriving equality of
// wrapped values.
type Eq[T any] interface {
	Equals(a, b T) bool
}

type eqFunc[T any] func(a, b T) bool

func (f eqFunc[T]) Equals(a, b T) bool {
	return f(a, b)
}

// FromEquals wraps a plain comparison function into an Eq.
func FromEquals[T any](f func(a, b T) bool) Eq[T] {
	return eqFunc[T](f)
}

// Natural is the Eq of Go's built-in == for comparable types.
func Natural[T comparable]() Eq[T] {
	return eqFunc[T](func(a, b T) bool { return a == b })
}

// Contramap derives an Eq of B from an Eq of A and a projection B -> A.
func Contramap[A, B any](e Eq[A], f func(B) A) Eq[B] {
	return eqFunc[B](func(a, b B) bool {
		return e.Equals(f(a), f(b))
	})
}
