package option

// Option represents a value of type A that may be absent. The zero value is
// None. Once constructed an Option is never mutated.
type Option[A any] struct {
	value A
	some  bool
}

// Some wraps a present value.
func Some[A any](a A) Option[A] {
	return Option[A]{value: a, some: true}
}

// None is the absent value.
func None[A any]() Option[A] {
	return Option[A]{}
}

// Of is an alias for Some.
func Of[A any](a A) Option[A] {
	return Some(a)
}

// FromNullable wraps a non-nil pointer's value into Some, nil into None.
func FromNullable[A any](a *A) Option[A] {
	if a == nil {
		return None[A]()
	}
	return Some(*a)
}

// FromPredicate returns a constructor that produces Some when pred holds
// for the input, None otherwise.
func FromPredicate[A any](pred func(A) bool) func(A) Option[A] {
	return func(a A) Option[A] {
		if pred(a) {
			return Some(a)
		}
		return None[A]()
	}
}

// IsSome reports presence.
func (o Option[A]) IsSome() bool {
	return o.some
}

// IsNone reports absence.
func (o Option[A]) IsNone() bool {
	return !o.some
}

// Value returns the contained value and whether it is present. The value is
// the zero value of A for None.
func (o Option[A]) Value() (A, bool) {
	return o.value, o.some
}

// Map transforms the contained value. f is never invoked on None.
func Map[A, B any](o Option[A], f func(A) B) Option[B] {
	if !o.some {
		return None[B]()
	}
	return Some(f(o.value))
}

// FlatMap chains a constructor of the next Option. f is never invoked on
// None, which short-circuits.
func FlatMap[A, B any](o Option[A], f func(A) Option[B]) Option[B] {
	if !o.some {
		return None[B]()
	}
	return f(o.value)
}

// Ap applies a wrapped function to a wrapped value. The result is None when
// either operand is None.
func Ap[A, B any](fab Option[func(A) B], fa Option[A]) Option[B] {
	if !fab.some || !fa.some {
		return None[B]()
	}
	return Some(fab.value(fa.value))
}

// Match collapses the Option by exhaustive case analysis. Branch return
// types unify at the call site, so this covers both the narrowing and
// widening variants.
func Match[A, C any](o Option[A], onNone func() C, onSome func(A) C) C {
	if o.some {
		return onSome(o.value)
	}
	return onNone()
}

// GetOrElse returns the contained value for Some; otherwise it invokes
// onNone. onNone is never invoked on Some.
func GetOrElse[A any](o Option[A], onNone func() A) A {
	if o.some {
		return o.value
	}
	return onNone()
}

// Tap invokes f on the contained value for its side effect, on Some only,
// and returns the input unchanged.
func Tap[A any](o Option[A], f func(A)) Option[A] {
	if o.some {
		f(o.value)
	}
	return o
}
