package ggplot

import "errors"

// Errors reported by axis and surface operations. None of them is fatal:
// the operation that reports one leaves the model unchanged.
var (
	// ErrDegenerateAxis is returned by pan and zoom operations on an axis
	// whose screen interval has zero length.
	ErrDegenerateAxis = errors.New("ggplot: degenerate axis")

	// ErrInvalidZoomFactor is returned when a zoom factor is not a finite
	// positive number.
	ErrInvalidZoomFactor = errors.New("ggplot: invalid zoom factor")

	// ErrEmptySurface reports a render target with no pixels.
	ErrEmptySurface = errors.New("ggplot: empty surface")
)
