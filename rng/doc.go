// Package rng provides a lazy, restartable generator of evenly spaced
// integer values, in the spirit of Python's range and boost::irange.
//
// A [Range] is an immutable (start, end, step) value. Iterating it with
// [Range.All] yields start, start+step, start+2*step, … while the value is
// strictly before end in the direction of step:
//
//	for i := range rng.Upto(5).All() {
//	    fmt.Print(i) // 01234
//	}
//	for i := range rng.Of(10, 0, -3).All() {
//	    fmt.Print(i, " ") // 10 7 4 1
//	}
//
// Iteration allocates nothing and never computes a value past end, so ranges
// that touch the limits of their type (math.MaxInt8, math.MaxUint64, …) are
// safe.
//
// # Mixed endpoint types
//
// Go cannot derive a result type from two type parameters, so ranges whose
// endpoints have different integer types name their element type
// explicitly with [As]. Both endpoints are converted exactly; if either
// does not fit, As reports [ErrNotRepresentable] instead of narrowing:
//
//	r, err := rng.As[int64](int32(-1), uint32(math.MaxUint32)) // ok
//	_, err = rng.As[int32](int32(-1), uint32(math.MaxUint32))  // ErrNotRepresentable
//
// # Malformed ranges
//
// A zero step, or a step whose sign disagrees with the direction from start
// to end, is a caller error. Such a range is reported by [Range.Err] and
// iterates as empty.
package rng
