package xsdf

import (
	"fmt"

	"deedles.dev/xsdf/binimg"
	"deedles.dev/xsdf/geom"
	"github.com/chewxy/math32"
)

// Field is a signed distance field. Distances and Targets are indexed
// in row-major order, so the pixel at (x, y) is at index y*Width+x.
//
// A Field is only modified while it is being computed. Afterwards it
// may be read concurrently.
type Field[S Storage[S]] struct {
	Width, Height int

	// Distances holds the signed distance of each pixel to its
	// closest boundary pixel, measured in pixels.
	Distances S

	// Targets holds the closest boundary pixel of each pixel. The
	// entry for a pixel with an infinite distance is meaningless.
	Targets []geom.Point[uint16]

	insidePositive bool
}

func newField[S Storage[S]](width, height int, o options) *Field[S] {
	var zero S
	return &Field[S]{
		Width:          width,
		Height:         height,
		Distances:      zero.Make(width * height),
		Targets:        make([]geom.Point[uint16], width*height),
		insidePositive: o.insidePositive,
	}
}

// Bounds returns the rectangle covered by the field.
func (f *Field[S]) Bounds() geom.Rect[int] {
	return geom.Rt(0, 0, f.Width, f.Height)
}

// Index returns the index of the pixel at (x, y) in Distances and
// Targets.
func (f *Field[S]) Index(x, y int) int {
	return f.Width*y + x
}

func (f *Field[S]) check(x, y int) {
	if !geom.Pt(x, y).In(f.Bounds()) {
		panic(fmt.Errorf("xsdf: (%v,%v) out of bounds of %vx%v field", x, y, f.Width, f.Height))
	}
}

// At returns the signed distance of the pixel at (x, y). It is
// infinite if the image had no boundary. At panics if (x, y) is
// outside of the field.
func (f *Field[S]) At(x, y int) float32 {
	f.check(x, y)
	return f.Distances.At(f.Index(x, y))
}

// Target returns the closest boundary pixel to the pixel at (x, y).
// Target panics if (x, y) is outside of the field.
func (f *Field[S]) Target(x, y int) geom.Point[uint16] {
	f.check(x, y)
	return f.Targets[f.Index(x, y)]
}

// InsidePositive reports whether the field uses positive distances
// inside of the shape.
func (f *Field[S]) InsidePositive() bool {
	return f.insidePositive
}

// Empty reports whether the field contains no boundary, in which
// case every distance is infinite.
func (f *Field[S]) Empty() bool {
	for i := range f.Distances.Len() {
		if !math32.IsInf(f.Distances.At(i), 0) {
			return false
		}
	}
	return true
}

// Sign reconstructs the binary image that the field was computed
// from by treating every pixel on the inside side of the zero level
// as inside. Boundary pixels themselves are treated as outside.
func (f *Field[S]) Sign() *binimg.Bits {
	b := binimg.NewBits(f.Width, f.Height)
	for y := range f.Height {
		for x := range f.Width {
			d := f.Distances.At(f.Index(x, y))
			if (d < 0 && !f.insidePositive) || (d > 0 && f.insidePositive) {
				b.Set(x, y)
			}
		}
	}
	return b
}
