package xsdf

import (
	"fmt"

	"github.com/chewxy/math32"
	"golang.org/x/exp/constraints"
)

// Normalized is a distance field that has been rescaled into [0, 1].
type Normalized struct {
	Width, Height int

	// Distances holds the rescaled distances in row-major order.
	Distances []float32

	// Zero is the rescaled value of the boundary, i.e. of a distance
	// of zero.
	Zero float32

	// FormerMin and FormerMax are the smallest and largest distances
	// of the field before it was rescaled.
	FormerMin, FormerMax float32

	// Magnitude is the clamping magnitude passed to NormalizeClamped,
	// or zero if the field was normalized by its extrema.
	Magnitude float32
}

// extrema returns the smallest and largest distances in the field.
// It returns ErrEmpty if the field has no pixels or if any distance is
// infinite.
func (f *Field[S]) extrema() (lo, hi float32, err error) {
	if f.Distances.Len() == 0 {
		return 0, 0, ErrEmpty
	}

	lo, hi = math32.Inf(1), math32.Inf(-1)
	for i := range f.Distances.Len() {
		d := f.Distances.At(i)
		if math32.IsInf(d, 0) {
			return 0, 0, ErrEmpty
		}
		lo, hi = min(lo, d), max(hi, d)
	}
	return lo, hi, nil
}

// Normalize rescales the distances of the field linearly so that the
// smallest becomes 0 and the largest becomes 1. If every distance is
// the same, every rescaled distance is 0.5. It returns ErrEmpty if the
// field has no boundary.
func (f *Field[S]) Normalize() (*Normalized, error) {
	lo, hi, err := f.extrema()
	if err != nil {
		return nil, err
	}

	n := Normalized{
		Width:     f.Width,
		Height:    f.Height,
		Distances: make([]float32, f.Distances.Len()),
		FormerMin: lo,
		FormerMax: hi,
	}

	span := hi - lo
	if span == 0 {
		for i := range n.Distances {
			n.Distances[i] = 0.5
		}
		n.Zero = 0.5
		return &n, nil
	}

	for i := range n.Distances {
		n.Distances[i] = (f.Distances.At(i) - lo) / span
	}
	n.Zero = -lo / span
	return &n, nil
}

// NormalizeClamped rescales the distances of the field so that
// -magnitude becomes 0, magnitude becomes 1, and the boundary becomes
// exactly 0.5. Distances beyond ±magnitude are clamped. FormerMin and
// FormerMax of the result are the extrema before clamping.
//
// This is useful when a fixed distance should always map to the same
// value, regardless of the shape, such as when storing font atlases.
func (f *Field[S]) NormalizeClamped(magnitude float32) (*Normalized, error) {
	if !(magnitude > 0) || math32.IsInf(magnitude, 1) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidMagnitude, magnitude)
	}

	lo, hi, err := f.extrema()
	if err != nil {
		return nil, err
	}

	n := Normalized{
		Width:     f.Width,
		Height:    f.Height,
		Distances: make([]float32, f.Distances.Len()),
		Zero:      0.5,
		FormerMin: lo,
		FormerMax: hi,
		Magnitude: magnitude,
	}
	for i := range n.Distances {
		d := clamp(f.Distances.At(i), -magnitude, magnitude)
		n.Distances[i] = (d + magnitude) / (2 * magnitude)
	}
	return &n, nil
}

// Denormalize maps a rescaled value back to a distance in pixels.
// Values produced by clamping map back to ±Magnitude.
func (n *Normalized) Denormalize(v float32) float32 {
	if n.Magnitude > 0 {
		return v*2*n.Magnitude - n.Magnitude
	}
	return v*(n.FormerMax-n.FormerMin) + n.FormerMin
}

// U8 scales the distances to [0, 255], rounding to the nearest value.
func (n *Normalized) U8() []byte {
	r := make([]byte, len(n.Distances))
	for i, v := range n.Distances {
		r[i] = uint8(clamp(math32.Round(v*0xFF), 0, 0xFF))
	}
	return r
}

// U16 scales the distances to [0, 65535], rounding to the nearest
// value.
func (n *Normalized) U16() []uint16 {
	r := make([]uint16, len(n.Distances))
	for i, v := range n.Distances {
		r[i] = uint16(clamp(math32.Round(v*0xFFFF), 0, 0xFFFF))
	}
	return r
}

func clamp[T constraints.Float](v, lo, hi T) T {
	return min(max(v, lo), hi)
}
