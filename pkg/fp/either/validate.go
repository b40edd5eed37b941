package either

import "github.com/ib-77/fpkit/pkg/fp/semigroup"

// Validate combines checks into a single validator that runs every check
// against the input and accumulates failure payloads with sg, in check
// order. Unlike FlatMap chains it does not stop at the first failure; the
// input passes only when every check does.
func Validate[E, A any](sg semigroup.Semigroup[E], checks ...func(A) Either[E, A]) func(A) Either[E, A] {
	return func(a A) Either[E, A] {
		var acc E
		failed := false
		for _, check := range checks {
			if err, ok := check(a).Left(); ok {
				if failed {
					acc = sg.Concat(acc, err)
				} else {
					acc = err
					failed = true
				}
			}
		}
		if failed {
			return Left[E, A](acc)
		}
		return Right[E, A](a)
	}
}
