package fp

// Unit is an alias for the empty struct, for signatures that carry no
// information.
type Unit = struct{}

// Identity returns its argument unchanged.
func Identity[A any](a A) A {
	return a
}

// Const returns a zero-argument function that always produces a.
func Const[A any](a A) func() A {
	return func() A {
		return a
	}
}

// Const1 returns a one-argument function that ignores its argument and
// always produces a.
func Const1[B, A any](a A) func(B) A {
	return func(_ B) A {
		return a
	}
}

// Compose is left-to-right composition: Compose(f, g)(x) == g(f(x)).
func Compose[A, B, C any](f func(A) B, g func(B) C) func(A) C {
	return func(a A) C {
		return g(f(a))
	}
}

// Pipe applies fns to value in order. All functions accept and return the
// same type.
func Pipe[A any](value A, fns ...func(A) A) A {
	for _, fn := range fns {
		value = fn(value)
	}
	return value
}
