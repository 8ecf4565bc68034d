package xsdf

import "errors"

var (
	// ErrEmpty indicates that a field contains no boundary at all
	// because its image was entirely inside or entirely outside, so
	// every distance is infinite.
	ErrEmpty = errors.New("xsdf: field has no shape")

	// ErrTooLarge indicates that an image is too large for its
	// nearest-boundary coordinates to be stored.
	ErrTooLarge = errors.New("xsdf: image too large")

	// ErrInvalidMagnitude indicates a clamping magnitude that is not
	// a finite, positive number.
	ErrInvalidMagnitude = errors.New("xsdf: invalid magnitude")
)
