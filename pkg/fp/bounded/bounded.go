package bounded

import "github.com/ib-77/fpkit/pkg/fp/ord"

// Bounded is an Ord with least and greatest elements.
type Bounded[T any] interface {
	ord.Ord[T]
	Top() T
	Bottom() T
}

type bnd[T any] struct {
	ord.Ord[T]
	top    T
	bottom T
}

func (b bnd[T]) Top() T {
	return b.top
}

func (b bnd[T]) Bottom() T {
	return b.bottom
}

// FromOrd pairs an ordering with its bounds.
func FromOrd[T any](o ord.Ord[T], bottom, top T) Bounded[T] {
	return bnd[T]{Ord: o, top: top, bottom: bottom}
}
