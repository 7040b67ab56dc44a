package predicate

// Func is a unary predicate with chainable combinators.
type Func[T any] func(T) bool

// Test calls f.
func (f Func[T]) Test(v T) bool { return f(v) }

// Not returns the complement of f.
func (f Func[T]) Not() Func[T] { return Negate(f) }

// And returns a predicate that holds when f and every one of others hold.
// Evaluation stops at the first predicate that fails.
func (f Func[T]) And(others ...func(T) bool) Func[T] {
	return func(v T) bool {
		if !f(v) {
			return false
		}
		for _, o := range others {
			if !o(v) {
				return false
			}
		}
		return true
	}
}

// Or returns a predicate that holds when f or any one of others holds.
// Evaluation stops at the first predicate that succeeds.
func (f Func[T]) Or(others ...func(T) bool) Func[T] {
	return func(v T) bool {
		if f(v) {
			return true
		}
		for _, o := range others {
			if o(v) {
				return true
			}
		}
		return false
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Negation
// ─────────────────────────────────────────────────────────────────────────────
//
// Each negator calls the wrapped predicate exactly once per call and returns
// the complement of its result.

// Not returns the complement of a unary predicate.
func Not[T any](p func(T) bool) func(T) bool {
	return func(v T) bool { return !p(v) }
}

// Not2 returns the complement of a binary predicate, such as a map entry
// test func(key, value) bool.
func Not2[A, B any](p func(A, B) bool) func(A, B) bool {
	return func(a A, b B) bool { return !p(a, b) }
}

// NotN returns the complement of a variadic predicate.
func NotN[T any](p func(...T) bool) func(...T) bool {
	return func(vs ...T) bool { return !p(vs...) }
}

// NotAs returns the complement of a predicate whose result is a named
// boolean type.
func NotAs[T any, R ~bool](p func(T) R) func(T) R {
	return func(v T) R { return !p(v) }
}

// Negate returns the complement of p with the same named type as p.
//
//	type IsAdmin func(User) bool
//	var notAdmin IsAdmin = predicate.Negate(isAdmin)
func Negate[P ~func(T) bool, T any](p P) P {
	return func(v T) bool { return !p(v) }
}
