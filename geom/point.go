package geom

import (
	"fmt"
	"image"
	"math"
)

// Point is a 2D point or vector.
type Point[T Scalar] struct {
	X, Y T
}

// Pt is shorthand for Point[T]{X: x, Y: y}.
func Pt[T Scalar](x, y T) Point[T] {
	return Point[T]{X: x, Y: y}
}

// PointOf converts an image.Point.
func PointOf[T Scalar](p image.Point) Point[T] {
	return Point[T]{X: T(p.X), Y: T(p.Y)}
}

// Convert converts a point from one numeric type to another.
func Convert[To, From Scalar](p Point[From]) Point[To] {
	return Point[To]{X: To(p.X), Y: To(p.Y)}
}

func (p Point[T]) String() string {
	return fmt.Sprintf("(%v,%v)", p.X, p.Y)
}

func (p Point[T]) Add(q Point[T]) Point[T] {
	return Point[T]{X: p.X + q.X, Y: p.Y + q.Y}
}

func (p Point[T]) Sub(q Point[T]) Point[T] {
	return Point[T]{X: p.X - q.X, Y: p.Y - q.Y}
}

// In reports whether p is in r.
func (p Point[T]) In(r Rect[T]) bool {
	return (r.Min.X <= p.X) && (p.X < r.Max.X) && (r.Min.Y <= p.Y) && (p.Y < r.Max.Y)
}

// Dist returns the Euclidean distance between p and q. Unsigned
// types are handled without wrapping.
func Dist[T Scalar](p, q Point[T]) float64 {
	dx := float64(p.X) - float64(q.X)
	dy := float64(p.Y) - float64(q.Y)
	return math.Hypot(dx, dy)
}

// ImagePoint converts p to an image.Point, truncating if necessary.
func (p Point[T]) ImagePoint() image.Point {
	return image.Pt(int(p.X), int(p.Y))
}
