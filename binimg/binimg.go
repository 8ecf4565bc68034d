// Package binimg provides binary images: rectangular rasters in which
// every pixel is either inside or outside of a shape.
//
// The [Image] interface is the only thing a distance field
// computation needs. This package contains several adapters that
// provide it on top of raw byte buffers, decoded images, predicates,
// and packed bit matrices.
package binimg

import "errors"

// DefaultThreshold is the brightness a pixel must exceed to be
// considered inside of the shape by the threshold-based adapters.
const DefaultThreshold = 127

var (
	// ErrDimensionMismatch indicates that a pixel buffer's length does
	// not match the dimensions it was supposed to describe.
	ErrDimensionMismatch = errors.New("binimg: buffer dimension mismatch")

	// ErrInvalidSize indicates a negative width or height.
	ErrInvalidSize = errors.New("binimg: invalid size")

	// ErrInvalidToken indicates that the pixel markers given to
	// ParseBits cannot be told apart.
	ErrInvalidToken = errors.New("binimg: invalid token")
)

// Image is a read-only binary image.
type Image interface {
	// Width returns the number of columns in the image.
	Width() int

	// Height returns the number of rows in the image.
	Height() int

	// Inside reports whether the pixel at (x, y) is inside of the
	// shape. The result is undefined if the coordinates are not in
	// [0, Width) x [0, Height).
	Inside(x, y int) bool
}

// Count returns the number of pixels of img that are inside.
func Count(img Image) int {
	var n int
	for y := range img.Height() {
		for x := range img.Width() {
			if img.Inside(x, y) {
				n++
			}
		}
	}
	return n
}
