// Package traits answers whether a type supports equality or ordering.
//
// # Compile-time checks
//
// Go expresses "does this expression compile for T" as a constraint. A
// generic function constrained by [Equatable] or [Ordered] refuses to build
// for a type that lacks the operators:
//
//	func Dedup[T traits.Equatable](items []T) []T { … }
//	Dedup([]func(){}) // compile error: func() does not satisfy comparable
//
// # Runtime checks
//
// [IsEqualityComparable] and [IsComparable] report the same facts as
// booleans for any type, without constructing a value of it. Besides the
// built-in operators they recognise the named capabilities [Equaler] and
// [Comparer], so a type with an Equal or Compare method is classified as
// capable even if the language operators are missing.
//
//	traits.IsEqualityComparable[int]()          // → true
//	traits.IsEqualityComparable[[]int]()        // → false
//	traits.IsComparable[string]()               // → true
//	traits.IsComparable[struct{ A int }]()      // → false
//
// [Equal] and [Compare] dispatch on the same rules and return an error for
// incapable types instead of panicking.
package traits
