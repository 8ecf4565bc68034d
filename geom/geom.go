// Package geom provides small generic geometry types for raster
// work: points, rectangles, and neighbor edge masks.
//
// It is patterned heavily after image.Rectangle and image.Point, but
// works for any numeric type so that, for example, nearest-boundary
// coordinates can be stored compactly as Point[uint16].
package geom

import "golang.org/x/exp/constraints"

// Scalar is a constraint for the types that geom types and functions
// can handle.
type Scalar interface {
	constraints.Float | constraints.Integer
}

// Integer is a constraint for any integer type.
type Integer interface {
	constraints.Integer
}

// Edges is a bitmask representing zero or more edges of a rectangle
// or, equivalently, the four sides of a pixel.
type Edges uint32

const (
	EdgeNone Edges = 0
	EdgeTop  Edges = 1 << (iota - 1)
	EdgeBottom
	EdgeLeft
	EdgeRight
)

// Count returns the number of edges set in e.
func (e Edges) Count() int {
	var n int
	for _, edge := range [...]Edges{EdgeTop, EdgeBottom, EdgeLeft, EdgeRight} {
		if e&edge != 0 {
			n++
		}
	}
	return n
}

func (e Edges) String() string {
	if e == EdgeNone {
		return "none"
	}

	var buf []byte
	for _, edge := range [...]struct {
		e    Edges
		name string
	}{
		{EdgeTop, "top"},
		{EdgeBottom, "bottom"},
		{EdgeLeft, "left"},
		{EdgeRight, "right"},
	} {
		if e&edge.e == 0 {
			continue
		}
		if len(buf) > 0 {
			buf = append(buf, '|')
		}
		buf = append(buf, edge.name...)
	}
	return string(buf)
}
