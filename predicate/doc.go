// Package predicate provides combinators for boolean-valued functions.
//
// The central operation is negation. Unlike a negation adaptor bound to a
// single declared argument type, every function here is generic, so one
// call site can negate predicates over any argument list:
//
//	isEven := func(n int) bool { return n%2 == 0 }
//	isOdd  := predicate.Not(isEven)
//
//	same   := func(a, b string) bool { return a == b }
//	differ := predicate.Not2(same)
//
// [Negate] keeps the caller's named predicate type, and [Func] offers the
// same operations as chainable methods:
//
//	long := predicate.Func[string](func(s string) bool { return len(s) > 3 })
//	shortNonEmpty := long.Not().And(func(s string) bool { return s != "" })
package predicate
