package option

import (
	"github.com/ib-77/fpkit/pkg/fp/eq"
	"github.com/ib-77/fpkit/pkg/fp/ord"
)

// DeriveEq derives equality of Options from equality of the contained
// values. None equals only None.
func DeriveEq[A any](eqA eq.Eq[A]) eq.Eq[Option[A]] {
	return eq.FromEquals(func(a, b Option[A]) bool {
		if a.some != b.some {
			return false
		}
		if !a.some {
			return true
		}
		return eqA.Equals(a.value, b.value)
	})
}

// DeriveOrd derives an ordering of Options from an ordering of the
// contained values. None sorts before every Some.
func DeriveOrd[A any](ordA ord.Ord[A]) ord.Ord[Option[A]] {
	return ord.FromCompare(func(a, b Option[A]) int {
		switch {
		case !a.some && !b.some:
			return 0
		case !a.some:
			return -1
		case !b.some:
			return 1
		default:
			return ordA.Compare(a.value, b.value)
		}
	})
}
