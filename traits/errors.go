package traits

import "errors"

// Sentinel errors returned by Equal, Compare and Less.
var (
	// ErrNotEqualityComparable is returned when == is not defined for the
	// values and the type does not implement Equaler.
	ErrNotEqualityComparable = errors.New("traits: type is not equality comparable")

	// ErrNotComparable is returned when < is not defined for the type and it
	// does not implement Comparer.
	ErrNotComparable = errors.New("traits: type is not ordered")
)
