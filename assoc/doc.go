// Package assoc removes elements matching a predicate from associative
// containers (maps and sets) in a single in-place pass.
//
// The algorithm visits each element once, evaluates the predicate exactly
// once and erases the element when the predicate holds. That is only sound
// for containers where erasing one element leaves the iteration over the
// others intact. Go maps give that guarantee for delete during range, so
// [Map], [Set], [RemoveMapIf] and [RemoveSetIf] are safe:
//
//	ages := map[string]int{"ann": 31, "bob": 17, "cid": 12}
//	n := assoc.RemoveMapIf(ages, func(_ string, age int) bool { return age < 18 })
//	// n == 2, ages == map[ann:31]
//
// Any other container can take part by implementing [Erasable]. Containers
// from github.com/emirpasic/gods are adapted with [FromGodsSet] and
// [FromGodsMap]; since gods iterators do not survive Remove, the adapters
// iterate a snapshot of the elements taken when iteration starts.
//
// Slices are not associative: erasing shifts the elements behind the erased
// one. Use slices.DeleteFunc for them.
package assoc
