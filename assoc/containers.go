package assoc

import (
	"fmt"
	"iter"
)

// Entry is a single key/value pair of a [Map].
type Entry[K comparable, V any] struct {
	Key   K
	Value V
}

// String returns a human-readable representation: "key: value".
func (e Entry[K, V]) String() string {
	return fmt.Sprintf("%v: %v", e.Key, e.Value)
}

// ─────────────────────────────────────────────────────────────────────────────
// Map
// ─────────────────────────────────────────────────────────────────────────────

// Map is a Go map viewed as an [Erasable] of its entries.
type Map[K comparable, V any] map[K]V

// All returns a sequence over the entries of m in unspecified order.
func (m Map[K, V]) All() iter.Seq[Entry[K, V]] {
	return func(yield func(Entry[K, V]) bool) {
		for k, v := range m {
			if !yield(Entry[K, V]{Key: k, Value: v}) {
				return
			}
		}
	}
}

// Erase deletes the entry with e's key.
func (m Map[K, V]) Erase(e Entry[K, V]) { delete(m, e.Key) }

// ─────────────────────────────────────────────────────────────────────────────
// Set
// ─────────────────────────────────────────────────────────────────────────────

// Set is a hash set backed by a Go map.
type Set[E comparable] map[E]struct{}

// NewSet creates a Set containing items.
func NewSet[E comparable](items ...E) Set[E] {
	s := make(Set[E], len(items))
	s.Add(items...)
	return s
}

// Add inserts items into s.
func (s Set[E]) Add(items ...E) {
	for _, item := range items {
		s[item] = struct{}{}
	}
}

// Has reports whether item is a member of s.
func (s Set[E]) Has(item E) bool {
	_, ok := s[item]
	return ok
}

// Len returns the number of members.
func (s Set[E]) Len() int { return len(s) }

// All returns a sequence over the members of s in unspecified order.
func (s Set[E]) All() iter.Seq[E] {
	return func(yield func(E) bool) {
		for item := range s {
			if !yield(item) {
				return
			}
		}
	}
}

// Erase deletes e from s.
func (s Set[E]) Erase(e E) { delete(s, e) }
