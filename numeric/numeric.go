package numeric

import (
	"fmt"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Sign returns -1 for negative values, 1 for positive values and 0 for zero.
// NaN reports 0.
func Sign[T constraints.Signed | constraints.Float](v T) int {
	var zero T
	switch {
	case v > zero:
		return 1
	case v < zero:
		return -1
	}
	return 0
}

// BitSize returns the width of T in bits.
func BitSize[T constraints.Integer]() int {
	var zero T
	return int(unsafe.Sizeof(zero)) * 8
}

// IsSigned reports whether T is a signed integer type.
func IsSigned[T constraints.Integer]() bool {
	var zero T
	return zero-1 < zero
}

// AsSigned reinterprets u as the signed type S of the same width, keeping
// the two's complement bit pattern.
//
// S and U must have the same width; otherwise AsSigned panics with an error
// wrapping [ErrWidthMismatch].
func AsSigned[S constraints.Signed, U constraints.Unsigned](u U) S {
	mustSameWidth[S, U]()
	return S(u)
}

// AsUnsigned reinterprets s as the unsigned type U of the same width, keeping
// the two's complement bit pattern.
//
// U and S must have the same width; otherwise AsUnsigned panics with an error
// wrapping [ErrWidthMismatch].
func AsUnsigned[U constraints.Unsigned, S constraints.Signed](s S) U {
	mustSameWidth[S, U]()
	return U(s)
}

func mustSameWidth[S constraints.Signed, U constraints.Unsigned]() {
	if BitSize[S]() != BitSize[U]() {
		var (
			s S
			u U
		)
		panic(fmt.Errorf("%w: %T is %d bits, %T is %d bits",
			ErrWidthMismatch, s, BitSize[S](), u, BitSize[U]()))
	}
}

// Fits reports whether v can be represented exactly as a T.
func Fits[T, V constraints.Integer](v V) bool {
	t := T(v)
	if V(t) != v {
		return false
	}
	var (
		tz T
		vz V
	)
	return (t < tz) == (v < vz)
}

// Convert converts v to T, returning [ErrNotRepresentable] instead of
// silently truncating or flipping the sign.
func Convert[T, V constraints.Integer](v V) (T, error) {
	if !Fits[T](v) {
		var zero T
		return zero, fmt.Errorf("%w: %d (%T) does not fit in %T", ErrNotRepresentable, v, v, zero)
	}
	return T(v), nil
}
