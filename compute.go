package xsdf

import (
	"fmt"
	"math"
	"time"

	"deedles.dev/xsdf/binimg"
	"deedles.dev/xsdf/geom"
	"github.com/chewxy/math32"
)

// MaxSize is the largest width or height of an image that a field can
// be computed for. Distances in fields stored as F16 saturate at 65504
// pixels, slightly below it.
const MaxSize = math.MaxUint16 + 1

// Compute approximates the signed distance field of img, storing the
// distances in an S.
func Compute[S Storage[S]](img binimg.Image, opts ...Option) (*Field[S], error) {
	w, h := img.Width(), img.Height()
	if w < 0 || h < 0 {
		return nil, fmt.Errorf("%w: %vx%v", binimg.ErrInvalidSize, w, h)
	}
	if w > MaxSize || h > MaxSize {
		return nil, fmt.Errorf("%w: %vx%v exceeds %vx%v", ErrTooLarge, w, h, MaxSize, MaxSize)
	}

	start := time.Now()
	b := builder[S]{
		img:   img,
		field: newField[S](w, h, buildOptions(opts)),
		w:     w,
		h:     h,
	}
	boundary := b.seed()
	b.forward()
	b.backward()
	b.flip()

	logger := Logger()
	if boundary == 0 && w*h > 0 {
		logger.Warn("image has no boundary", "width", w, "height", h)
	}
	logger.Debug(
		"computed distance field",
		"width", w,
		"height", h,
		"boundary", boundary,
		"elapsed", time.Since(start),
	)

	return b.field, nil
}

// ComputeF32 approximates the signed distance field of img with
// 32-bit precision.
func ComputeF32(img binimg.Image, opts ...Option) (*Field[F32], error) {
	return Compute[F32](img, opts...)
}

// ComputeF16 approximates the signed distance field of img with
// 16-bit precision.
func ComputeF16(img binimg.Image, opts ...Option) (*Field[F16], error) {
	return Compute[F16](img, opts...)
}

// neighbor is the offset of an already visited pixel and its
// distance from the current one.
type neighbor struct {
	dx, dy int
	dist   float32
}

var (
	forwardNeighbors = [...]neighbor{
		{-1, -1, math32.Sqrt2},
		{0, -1, 1},
		{1, -1, math32.Sqrt2},
		{-1, 0, 1},
	}

	backwardNeighbors = [...]neighbor{
		{1, 0, 1},
		{-1, 1, math32.Sqrt2},
		{0, 1, 1},
		{1, 1, math32.Sqrt2},
	}
)

// builder owns a field while it is being computed.
type builder[S Storage[S]] struct {
	img   binimg.Image
	field *Field[S]
	w, h  int
}

// seed sets every pixel that differs from at least one of its direct
// neighbors to be its own target. It returns the number of such
// pixels.
func (b *builder[S]) seed() (n int) {
	for y := range b.h {
		for x := range b.w {
			if b.edges(x, y) == geom.EdgeNone {
				continue
			}
			b.setTarget(b.field.Index(x, y), x, y, geom.Pt(uint16(x), uint16(y)))
			n++
		}
	}
	return n
}

// edges returns the sides of the pixel at (x, y) on which its
// neighbor is classified differently from itself.
func (b *builder[S]) edges(x, y int) (edges geom.Edges) {
	inside := b.img.Inside(x, y)
	if x > 0 && b.img.Inside(x-1, y) != inside {
		edges |= geom.EdgeLeft
	}
	if x < b.w-1 && b.img.Inside(x+1, y) != inside {
		edges |= geom.EdgeRight
	}
	if y > 0 && b.img.Inside(x, y-1) != inside {
		edges |= geom.EdgeTop
	}
	if y < b.h-1 && b.img.Inside(x, y+1) != inside {
		edges |= geom.EdgeBottom
	}
	return edges
}

func (b *builder[S]) forward() {
	for y := 0; y < b.h; y++ {
		for x := 0; x < b.w; x++ {
			b.visit(x, y, &forwardNeighbors)
		}
	}
}

func (b *builder[S]) backward() {
	for y := b.h - 1; y >= 0; y-- {
		for x := b.w - 1; x >= 0; x-- {
			b.visit(x, y, &backwardNeighbors)
		}
	}
}

// visit updates the pixel at (x, y) from each of the given neighbors
// in order. A neighbor only wins if going through it is strictly
// shorter, in which case its target is adopted and the distance is
// recomputed from that target rather than accumulated.
func (b *builder[S]) visit(x, y int, neighbors *[4]neighbor) {
	i := b.field.Index(x, y)
	dist := b.field.Distances
	own := dist.At(i)
	for _, n := range neighbors {
		nx, ny := x+n.dx, y+n.dy
		if nx < 0 || ny < 0 || nx >= b.w || ny >= b.h {
			continue
		}

		j := i + n.dy*b.w + n.dx
		if dist.At(j)+n.dist < own {
			own = b.setTarget(i, x, y, b.field.Targets[j])
		}
	}
}

// setTarget records t as the closest boundary pixel of the pixel at
// (x, y) with index i. It returns the distance as it was stored.
func (b *builder[S]) setTarget(i, x, y int, t geom.Point[uint16]) float32 {
	dx := x - int(t.X)
	dy := y - int(t.Y)
	b.field.Distances.Set(i, math32.Sqrt(float32(dx*dx+dy*dy)))
	b.field.Targets[i] = t
	return b.field.Distances.At(i)
}

// flip negates the distances on the inside of the shape, or on the
// outside if the field has positive insides.
func (b *builder[S]) flip() {
	dist := b.field.Distances
	for y := range b.h {
		for x := range b.w {
			if b.img.Inside(x, y) == b.field.insidePositive {
				continue
			}
			i := b.field.Index(x, y)
			if d := dist.At(i); d != 0 {
				dist.Set(i, -d)
			}
		}
	}
}
