// Package numeric provides width- and sign-aware helpers for Go's integer
// types.
//
// The helpers never rely on Go's implicit wrap-around when a value has to
// cross a type boundary: [Convert] and [Fits] perform exact, lossless
// checks, while [AsSigned] and [AsUnsigned] reinterpret the bits of a value
// between a signed and an unsigned type of the same width:
//
//	numeric.Sign(-42)                 // → -1
//	numeric.AsSigned[int8](uint8(200)) // → -56
//	numeric.Fits[int8](300)           // → false
//	v, err := numeric.Convert[uint32](int64(-1)) // → 0, ErrNotRepresentable
//
// Package rng builds its common-type rule for mixed endpoint types on
// [Convert].
package numeric
