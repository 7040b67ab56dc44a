package rng

import (
	"errors"

	"github.com/hasbyte1/go-typekit/numeric"
)

// Sentinel errors reported by Range construction and validation.
var (
	// ErrZeroStep is reported by Range.Err when the step is 0.
	ErrZeroStep = errors.New("rng: step must not be zero")

	// ErrWrongDirection is reported by Range.Err when the sign of the step
	// does not lead from start towards end.
	ErrWrongDirection = errors.New("rng: step moves away from end")

	// ErrNotRepresentable is returned by As when an endpoint cannot be held
	// by the requested element type.
	ErrNotRepresentable = numeric.ErrNotRepresentable
)
