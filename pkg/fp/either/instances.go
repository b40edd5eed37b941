package either

import (
	"github.com/ib-77/fpkit/pkg/fp/eq"
	"github.com/ib-77/fpkit/pkg/fp/ord"
)

// DeriveEq derives equality of Eithers from per-side equality of the
// payloads. Values are equal only when they are the same variant and their
// payloads are equal.
func DeriveEq[E, A any](eqE eq.Eq[E], eqA eq.Eq[A]) eq.Eq[Either[E, A]] {
	return eq.FromEquals(func(a, b Either[E, A]) bool {
		if a.isRight != b.isRight {
			return false
		}
		if a.isRight {
			return eqA.Equals(a.right, b.right)
		}
		return eqE.Equals(a.left, b.left)
	})
}

// DeriveOrd derives an ordering of Eithers from per-side orderings. Every
// Left orders before every Right.
func DeriveOrd[E, A any](ordE ord.Ord[E], ordA ord.Ord[A]) ord.Ord[Either[E, A]] {
	return ord.FromCompare(func(a, b Either[E, A]) int {
		switch {
		case !a.isRight && !b.isRight:
			return ordE.Compare(a.left, b.left)
		case !a.isRight:
			return -1
		case !b.isRight:
			return 1
		default:
			return ordA.Compare(a.right, b.right)
		}
	})
}
