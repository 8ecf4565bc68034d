package geom

import (
	"fmt"
	"image"
)

// Rect is a rectangle with Min inclusive and Max exclusive.
type Rect[T Scalar] struct {
	Min, Max Point[T]
}

// Rt is shorthand for Rect[T]{Min: Pt(x0, y0), Max: Pt(x1, y1)}.
func Rt[T Scalar](x0, y0, x1, y1 T) Rect[T] {
	return Rect[T]{Min: Pt(x0, y0), Max: Pt(x1, y1)}
}

// RectOf converts an image.Rectangle.
func RectOf[T Scalar](r image.Rectangle) Rect[T] {
	return Rect[T]{Min: PointOf[T](r.Min), Max: PointOf[T](r.Max)}
}

func (r Rect[T]) String() string {
	return fmt.Sprintf("%v-%v", r.Min, r.Max)
}

func (r Rect[T]) Dx() T { return r.Max.X - r.Min.X }

func (r Rect[T]) Dy() T { return r.Max.Y - r.Min.Y }

// Size returns the width and height of r as a point.
func (r Rect[T]) Size() Point[T] {
	return Pt(r.Dx(), r.Dy())
}

// Add returns r translated by p.
func (r Rect[T]) Add(p Point[T]) Rect[T] {
	return Rect[T]{Min: r.Min.Add(p), Max: r.Max.Add(p)}
}

// Resize returns r with its Min left alone and its size set to s.
func (r Rect[T]) Resize(s Point[T]) Rect[T] {
	return Rect[T]{Min: r.Min, Max: r.Min.Add(s)}
}

// ImageRect converts r to an image.Rectangle.
func (r Rect[T]) ImageRect() image.Rectangle {
	return image.Rectangle{Min: r.Min.ImagePoint(), Max: r.Max.ImagePoint()}
}
