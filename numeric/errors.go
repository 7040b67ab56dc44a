package numeric

import "errors"

// Sentinel errors returned (or wrapped) by numeric operations.
var (
	// ErrNotRepresentable is returned when a value cannot be converted to the
	// requested integer type without truncation or sign loss.
	ErrNotRepresentable = errors.New("numeric: value not representable in target type")

	// ErrWidthMismatch is the panic value wrapped by AsSigned and AsUnsigned
	// when the two type arguments differ in width.
	ErrWidthMismatch = errors.New("numeric: signed and unsigned types differ in width")
)
