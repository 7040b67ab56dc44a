package assoc

import (
	"iter"

	"github.com/emirpasic/gods/maps"
	"github.com/emirpasic/gods/sets"
)

// FromGodsSet adapts a gods set (hashset, treeset, linkedhashset) whose
// members are of type E. Members of any other dynamic type are not visited.
//
// Iteration walks a snapshot of the members taken when All is called, so
// erasing during iteration is safe even for tree-backed sets.
func FromGodsSet[E any](s sets.Set) Erasable[E] {
	return godsSet[E]{set: s}
}

type godsSet[E any] struct {
	set sets.Set
}

func (g godsSet[E]) All() iter.Seq[E] {
	return func(yield func(E) bool) {
		for _, v := range g.set.Values() {
			e, ok := v.(E)
			if !ok {
				continue
			}
			if !yield(e) {
				return
			}
		}
	}
}

func (g godsSet[E]) Erase(e E) { g.set.Remove(e) }

// FromGodsMap adapts a gods map (hashmap, treemap, linkedhashmap) whose keys
// are of type K and values of type V. Entries whose key has another dynamic
// type are not visited; a nil or foreign value is reported as V's zero value.
//
// Iteration walks a snapshot of the keys taken when All is called.
func FromGodsMap[K comparable, V any](m maps.Map) Erasable[Entry[K, V]] {
	return godsMap[K, V]{m: m}
}

type godsMap[K comparable, V any] struct {
	m maps.Map
}

func (g godsMap[K, V]) All() iter.Seq[Entry[K, V]] {
	return func(yield func(Entry[K, V]) bool) {
		for _, rawKey := range g.m.Keys() {
			k, ok := rawKey.(K)
			if !ok {
				continue
			}
			rawValue, found := g.m.Get(rawKey)
			if !found {
				continue
			}
			v, _ := rawValue.(V)
			if !yield(Entry[K, V]{Key: k, Value: v}) {
				return
			}
		}
	}
}

func (g godsMap[K, V]) Erase(e Entry[K, V]) { g.m.Remove(e.Key) }
