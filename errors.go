package perlin

import "errors"

// Errors returned by the batch helpers. The noise evaluators themselves
// never fail.
var (
	// ErrInvalidSize is returned when a field or image has a non-positive
	// width or height.
	ErrInvalidSize = errors.New("perlin: invalid size")

	// ErrInvalidScale is returned when the sampling scale is not a positive
	// finite number.
	ErrInvalidScale = errors.New("perlin: invalid scale")
)
