package rng

import (
	"fmt"
	"iter"

	"golang.org/x/exp/constraints"

	"github.com/hasbyte1/go-typekit/numeric"
)

// Range is a half-open interval of integers [start, end) walked in steps of
// step. Descending ranges use a negative step and stop before end as well.
//
// The zero value has a zero step; build ranges with Of, Upto or As.
type Range[T constraints.Integer] struct {
	start T
	end   T
	step  int64
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// Of creates the range [start, end) with an optional step (default 1).
// Only step[0] is used.
func Of[T constraints.Integer](start, end T, step ...int64) Range[T] {
	s := int64(1)
	if len(step) > 0 {
		s = step[0]
	}
	return Range[T]{start: start, end: end, step: s}
}

// Upto creates the range [0, end) with step 1. The zero takes end's type.
func Upto[T constraints.Integer](end T) Range[T] {
	var zero T
	return Of(zero, end)
}

// As creates a range of element type T from endpoints of possibly different
// integer types. Both endpoints must be exactly representable in T;
// otherwise an error wrapping [ErrNotRepresentable] is returned.
func As[T, A, B constraints.Integer](start A, end B, step ...int64) (Range[T], error) {
	s, err := numeric.Convert[T](start)
	if err != nil {
		return Range[T]{}, fmt.Errorf("rng: start: %w", err)
	}
	e, err := numeric.Convert[T](end)
	if err != nil {
		return Range[T]{}, fmt.Errorf("rng: end: %w", err)
	}
	return Of(s, e, step...), nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Accessors
// ─────────────────────────────────────────────────────────────────────────────

// Start returns the first bound.
func (r Range[T]) Start() T { return r.start }

// End returns the exclusive bound.
func (r Range[T]) End() T { return r.end }

// Step returns the distance between consecutive values.
func (r Range[T]) Step() int64 { return r.step }

// Err reports whether the range is malformed: [ErrZeroStep] for a zero step,
// [ErrWrongDirection] when the step points away from end. Well-formed ranges,
// including empty ones, return nil.
func (r Range[T]) Err() error {
	switch {
	case r.step == 0:
		return ErrZeroStep
	case !r.wellFormed():
		return fmt.Errorf("%w: %s", ErrWrongDirection, r)
	}
	return nil
}

// Empty reports whether the range yields no values.
func (r Range[T]) Empty() bool { return r.Len() == 0 }

// Len returns the number of values the range yields. Malformed ranges have
// length 0. The result is a uint64 because [0, math.MaxUint64) holds more
// values than an int can count.
func (r Range[T]) Len() uint64 {
	if r.step == 0 || !r.wellFormed() || r.start == r.end {
		return 0
	}
	return (r.distance()-1)/r.stride() + 1
}

// At returns the i-th value of the range, or false if i >= Len().
func (r Range[T]) At(i uint64) (T, bool) {
	if i >= r.Len() {
		var zero T
		return zero, false
	}
	return r.at(i), true
}

// Contains reports whether the range yields v.
func (r Range[T]) Contains(v T) bool {
	if r.Len() == 0 {
		return false
	}
	var offset uint64
	if r.step > 0 {
		if v < r.start || v >= r.end {
			return false
		}
		offset = uint64(v) - uint64(r.start)
	} else {
		if v > r.start || v <= r.end {
			return false
		}
		offset = uint64(r.start) - uint64(v)
	}
	return offset%r.stride() == 0
}

// String returns a human-readable representation, e.g. "[0, 10) by 2".
// It implements [fmt.Stringer].
func (r Range[T]) String() string {
	return fmt.Sprintf("[%d, %d) by %d", r.start, r.end, r.step)
}

// ─────────────────────────────────────────────────────────────────────────────
// Iteration
// ─────────────────────────────────────────────────────────────────────────────

// All returns a sequence over the values of the range in order. The sequence
// can be iterated any number of times and always yields the same values.
func (r Range[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		n := r.Len()
		if n == 0 {
			return
		}
		v := r.start
		for i := uint64(1); ; i++ {
			if !yield(v) || i == n {
				return
			}
			v = r.next(v)
		}
	}
}

// Backward returns a sequence over the values of the range in reverse order.
func (r Range[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		n := r.Len()
		if n == 0 {
			return
		}
		v := r.at(n - 1)
		for i := uint64(1); ; i++ {
			if !yield(v) || i == n {
				return
			}
			v = r.prev(v)
		}
	}
}

// Slice collects the values of the range into a new slice.
func (r Range[T]) Slice() []T {
	out := make([]T, 0, r.Len())
	for v := range r.All() {
		out = append(out, v)
	}
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Arithmetic
// ─────────────────────────────────────────────────────────────────────────────
//
// All offsets are computed in uint64. Converting any integer of at most 64
// bits to uint64 sign-extends, so differences and sums taken modulo 2^64 and
// converted back to T are exact whenever the true result lies in T.

func (r Range[T]) wellFormed() bool {
	return r.start == r.end ||
		(r.step > 0 && r.start < r.end) ||
		(r.step < 0 && r.start > r.end)
}

func (r Range[T]) distance() uint64 {
	if r.step > 0 {
		return uint64(r.end) - uint64(r.start)
	}
	return uint64(r.start) - uint64(r.end)
}

// stride is |step|; -math.MinInt64 wraps to itself and still converts to 2^63.
func (r Range[T]) stride() uint64 {
	if r.step > 0 {
		return uint64(r.step)
	}
	return uint64(-r.step)
}

func (r Range[T]) next(v T) T { return T(uint64(v) + uint64(r.step)) }

func (r Range[T]) prev(v T) T { return T(uint64(v) - uint64(r.step)) }

func (r Range[T]) at(i uint64) T { return T(uint64(r.start) + i*uint64(r.step)) }
