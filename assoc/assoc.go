package assoc

import (
	"iter"

	"github.com/hasbyte1/go-typekit/predicate"
)

// Erasable is a container that can be walked forward and can erase the
// element currently being visited.
//
// Implementations must guarantee that calling Erase(e) for the element e
// just yielded by All does not skip, repeat or invalidate any of the
// remaining elements. RemoveIf on a container that breaks this contract has
// unspecified results.
type Erasable[E any] interface {
	// All returns a sequence over every element of the container.
	All() iter.Seq[E]

	// Erase removes e from the container.
	Erase(e E)
}

// RemoveIf erases every element of c for which pred returns true and returns
// the number of erased elements. pred is evaluated exactly once per element.
// The order in which survivors are later visited is unspecified.
func RemoveIf[E any](c Erasable[E], pred func(E) bool) int {
	removed := 0
	for e := range c.All() {
		if pred(e) {
			c.Erase(e)
			removed++
		}
	}
	return removed
}

// KeepIf erases every element of c for which pred returns false and returns
// the number of erased elements.
func KeepIf[E any](c Erasable[E], pred func(E) bool) int {
	return RemoveIf(c, predicate.Not(pred))
}

// RemoveMapIf deletes every entry of m for which pred(key, value) returns
// true and returns the number of deleted entries.
func RemoveMapIf[M ~map[K]V, K comparable, V any](m M, pred func(K, V) bool) int {
	return RemoveIf[Entry[K, V]](Map[K, V](m), func(e Entry[K, V]) bool {
		return pred(e.Key, e.Value)
	})
}

// KeepMapIf deletes every entry of m for which pred(key, value) returns
// false and returns the number of deleted entries.
func KeepMapIf[M ~map[K]V, K comparable, V any](m M, pred func(K, V) bool) int {
	return RemoveMapIf(m, predicate.Not2(pred))
}

// RemoveSetIf deletes every member of s for which pred returns true and
// returns the number of deleted members.
func RemoveSetIf[S ~map[E]struct{}, E comparable](s S, pred func(E) bool) int {
	return RemoveIf[E](Set[E](s), pred)
}
