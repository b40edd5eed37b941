package either

import "github.com/ib-77/fpkit/pkg/fp/option"

// Either represents a computation that either failed with an E (Left) or
// succeeded with an A (Right). The convention is fixed: Left is failure,
// Right is success, and all combinators are right-biased. The zero value is
// Left of E's zero value. Once constructed an Either is never mutated.
type Either[E, A any] struct {
	left    E
	right   A
	isRight bool
}

// Left wraps a failure value.
func Left[E, A any](e E) Either[E, A] {
	return Either[E, A]{left: e}
}

// Right wraps a success value.
func Right[E, A any](a A) Either[E, A] {
	return Either[E, A]{right: a, isRight: true}
}

// Of is an alias for Right.
func Of[E, A any](a A) Either[E, A] {
	return Right[E, A](a)
}

// FromPredicate returns a constructor that produces Right when pred holds
// for the input, or Left built from onFalse otherwise.
func FromPredicate[E, A any](pred func(A) bool, onFalse func() E) func(A) Either[E, A] {
	return func(a A) Either[E, A] {
		if pred(a) {
			return Right[E, A](a)
		}
		return Left[E, A](onFalse())
	}
}

// FromOption lifts an Option: Some becomes Right, None becomes Left built
// from onNone.
func FromOption[E, A any](o option.Option[A], onNone func() E) Either[E, A] {
	if v, ok := o.Value(); ok {
		return Right[E, A](v)
	}
	return Left[E, A](onNone())
}

// TryCatch bridges Go's (value, error) convention: a nil error becomes
// Right, a non-nil error becomes Left.
func TryCatch[A any](f func() (A, error)) Either[error, A] {
	v, err := f()
	if err != nil {
		return Left[error, A](err)
	}
	return Right[error, A](v)
}

// IsRight reports success.
func (e Either[E, A]) IsRight() bool {
	return e.isRight
}

// IsLeft reports failure.
func (e Either[E, A]) IsLeft() bool {
	return !e.isRight
}

// Right returns the success payload and whether this is a Right.
func (e Either[E, A]) Right() (A, bool) {
	return e.right, e.isRight
}

// Left returns the failure payload and whether this is a Left.
func (e Either[E, A]) Left() (E, bool) {
	return e.left, !e.isRight
}

// Map transforms the success payload only; a Left passes through carrying
// the same E value. f is never invoked on Left.
func Map[E, A, B any](e Either[E, A], f func(A) B) Either[E, B] {
	if !e.isRight {
		return Left[E, B](e.left)
	}
	return Right[E, B](f(e.right))
}

// MapLeft transforms the failure payload only.
func MapLeft[E, F, A any](e Either[E, A], f func(E) F) Either[F, A] {
	if e.isRight {
		return Right[F, A](e.right)
	}
	return Left[F, A](f(e.left))
}

// FlatMap chains a constructor of the next Either. A Left short-circuits
// and f is never invoked.
func FlatMap[E, A, B any](e Either[E, A], f func(A) Either[E, B]) Either[E, B] {
	if !e.isRight {
		return Left[E, B](e.left)
	}
	return f(e.right)
}

// Ap applies a wrapped function to a wrapped value. If either operand is
// Left the result is that Left; the function-side Left wins when both are.
func Ap[E, A, B any](fab Either[E, func(A) B], fa Either[E, A]) Either[E, B] {
	if !fab.isRight {
		return Left[E, B](fab.left)
	}
	if !fa.isRight {
		return Left[E, B](fa.left)
	}
	return Right[E, B](fab.right(fa.right))
}

// Match collapses the Either by exhaustive case analysis.
func Match[E, A, C any](e Either[E, A], onLeft func(E) C, onRight func(A) C) C {
	if !e.isRight {
		return onLeft(e.left)
	}
	return onRight(e.right)
}

// GetOrElse returns the success payload for Right; otherwise it invokes
// onLeft. onLeft takes no argument here; the taskeither variant passes the
// Left payload, and that asymmetry is deliberate.
func GetOrElse[E, A any](e Either[E, A], onLeft func() A) A {
	if e.isRight {
		return e.right
	}
	return onLeft()
}

// Tap invokes f on the success payload for its side effect, on Right only,
// and returns the input unchanged.
func Tap[E, A any](e Either[E, A], f func(A)) Either[E, A] {
	if e.isRight {
		f(e.right)
	}
	return e
}

// ChainFirst is an alias for Tap.
func ChainFirst[E, A any](e Either[E, A], f func(A)) Either[E, A] {
	return Tap(e, f)
}

// Swap exchanges the variants: Left(e) becomes Right(e) and Right(a)
// becomes Left(a).
func Swap[E, A any](e Either[E, A]) Either[A, E] {
	if e.isRight {
		return Left[A, E](e.right)
	}
	return Right[A, E](e.left)
}

// ToOption drops the failure payload: Right becomes Some, Left becomes
// None.
func ToOption[E, A any](e Either[E, A]) option.Option[A] {
	if e.isRight {
		return option.Some(e.right)
	}
	return option.None[A]()
}
