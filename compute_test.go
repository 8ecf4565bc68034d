package xsdf_test

import (
	"math"
	"testing"

	"deedles.dev/xsdf"
	"deedles.dev/xsdf/binimg"
	"deedles.dev/xsdf/geom"
	"github.com/stretchr/testify/require"
)

func byteImage(t testing.TB, w, h int, inside func(x, y int) bool) *binimg.Bytes {
	buf := make([]byte, w*h)
	for y := range h {
		for x := range w {
			if inside(x, y) {
				buf[w*y+x] = 255
			}
		}
	}

	img, err := binimg.FromBytes(buf, w, h)
	require.Nil(t, err)
	return img
}

func circle(cx, cy, r int) func(x, y int) bool {
	return func(x, y int) bool {
		dx, dy := x-cx, y-cy
		return dx*dx+dy*dy < r*r
	}
}

func rectangle(cx, cy, w, h int) func(x, y int) bool {
	return func(x, y int) bool {
		dx, dy := x-cx, y-cy
		return dx > -w && dx < w && dy > -h && dy < h
	}
}

func checker(w, h int) func(x, y int) bool {
	return func(x, y int) bool {
		return (x%w < w/2) != (y%h < h/2)
	}
}

func parse(t testing.TB, repr string) *binimg.Bits {
	img, err := binimg.ParseBits(repr, "X", ".")
	require.Nil(t, err)
	return img
}

func boundary(img binimg.Image, x, y int) bool {
	inside := img.Inside(x, y)
	for _, n := range [...]geom.Point[int]{{X: -1, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: -1}, {X: 0, Y: 1}} {
		nx, ny := x+n.X, y+n.Y
		if nx < 0 || ny < 0 || nx >= img.Width() || ny >= img.Height() {
			continue
		}
		if img.Inside(nx, ny) != inside {
			return true
		}
	}
	return false
}

// exact finds the true distance to the closest boundary pixel.
func exact(img binimg.Image) []float64 {
	var edges []geom.Point[int]
	for y := range img.Height() {
		for x := range img.Width() {
			if boundary(img, x, y) {
				edges = append(edges, geom.Pt(x, y))
			}
		}
	}

	r := make([]float64, img.Width()*img.Height())
	for y := range img.Height() {
		for x := range img.Width() {
			d := math.Inf(1)
			for _, e := range edges {
				d = min(d, geom.Dist(geom.Pt(x, y), e))
			}
			r[y*img.Width()+x] = d
		}
	}
	return r
}

func TestSinglePixel(t *testing.T) {
	img := parse(t, `
		. . . . .
		. . . . .
		. . X . .
		. . . . .
		. . . . .
	`)
	field, err := xsdf.ComputeF32(img)
	require.Nil(t, err)
	require.Equal(t, 5, field.Width)
	require.Equal(t, 5, field.Height)

	s5, s2 := float32(math.Sqrt(5)), float32(math.Sqrt2)
	expected := []float32{
		s5, s2, 1, s2, s5,
		s2, 1, 0, 1, s2,
		1, 0, 0, 0, 1,
		s2, 1, 0, 1, s2,
		s5, s2, 1, s2, s5,
	}
	for y := range 5 {
		for x := range 5 {
			require.InDelta(t, expected[y*5+x], field.At(x, y), 1e-6, "(%v,%v)", x, y)
		}
	}

	require.Equal(t, geom.Pt[uint16](2, 2), field.Target(2, 2))
	require.Equal(t, geom.Pt[uint16](2, 1), field.Target(0, 0))
	require.Equal(t, geom.Pt[uint16](3, 2), field.Target(4, 4))
	require.Equal(t, geom.Pt[uint16](2, 3), field.Target(2, 4))
}

func TestSignConvention(t *testing.T) {
	img := byteImage(t, 32, 32, rectangle(16, 16, 6, 6))

	neg, err := xsdf.ComputeF32(img)
	require.Nil(t, err)
	pos, err := xsdf.ComputeF32(img, xsdf.WithInsidePositive())
	require.Nil(t, err)
	require.True(t, pos.InsidePositive())
	require.False(t, neg.InsidePositive())

	require.Less(t, neg.At(16, 16), float32(0))
	require.Greater(t, neg.At(0, 0), float32(0))
	for i := range neg.Distances {
		require.Equal(t, -neg.Distances[i], pos.Distances[i], "index %v", i)
	}

	require.Equal(t, neg.Sign().String(), pos.Sign().String())
}

func TestBoundaryIsZero(t *testing.T) {
	for name, img := range map[string]binimg.Image{
		"circle":  byteImage(t, 96, 64, circle(40, 30, 17)),
		"checker": byteImage(t, 96, 64, checker(13, 9)),
		"corner":  byteImage(t, 96, 64, circle(0, 0, 20)),
	} {
		t.Run(name, func(t *testing.T) {
			field, err := xsdf.ComputeF16(img)
			require.Nil(t, err)

			for y := range img.Height() {
				for x := range img.Width() {
					d := field.At(x, y)
					if boundary(img, x, y) {
						require.Zero(t, d, "(%v,%v)", x, y)
						require.Equal(t, geom.Pt(uint16(x), uint16(y)), field.Target(x, y))
						continue
					}
					require.NotZero(t, d, "(%v,%v)", x, y)
					require.Equal(t, img.Inside(x, y), d < 0, "(%v,%v)", x, y)
				}
			}
		})
	}
}

func TestTargetConsistency(t *testing.T) {
	img := byteImage(t, 300, 200, func(x, y int) bool {
		return circle(80, 60, 31)(x, y) || rectangle(210, 140, 40, 22)(x, y) || checker(23, 17)(x/4, y/4) && x > 250
	})

	f32, err := xsdf.ComputeF32(img)
	require.Nil(t, err)
	f16, err := xsdf.ComputeF16(img)
	require.Nil(t, err)

	for y := range img.Height() {
		for x := range img.Width() {
			p := geom.Pt(x, y)

			d := float64(f32.At(x, y))
			require.False(t, math.IsInf(d, 0))
			target := geom.Convert[int](f32.Target(x, y))
			require.InDelta(t, geom.Dist(p, target), math.Abs(d), 1e-3, "(%v,%v)", x, y)
			require.True(t, boundary(img, target.X, target.Y), "target of (%v,%v) is not on the boundary", x, y)

			d = float64(f16.At(x, y))
			target = geom.Convert[int](f16.Target(x, y))
			require.InEpsilon(t, max(geom.Dist(p, target), 1e-9), max(math.Abs(d), 1e-9), 1e-3, "(%v,%v)", x, y)
		}
	}
}

func TestExact(t *testing.T) {
	// Rectangles are reproduced exactly, other shapes only
	// approximately.
	tests := []struct {
		name      string
		img       binimg.Image
		tolerance float64
	}{
		{"rectangle", byteImage(t, 40, 30, func(x, y int) bool { return x >= 5 && x < 30 && y >= 8 && y < 20 }), 1e-4},
		{"circle", byteImage(t, 40, 40, circle(20, 20, 10)), 1},
		{"ring", byteImage(t, 40, 40, func(x, y int) bool { return circle(20, 20, 12)(x, y) && !circle(20, 20, 7)(x, y) }), 1},
		{"two", byteImage(t, 40, 40, func(x, y int) bool { return circle(8, 8, 4)(x, y) || circle(30, 25, 5)(x, y) }), 1},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			field, err := xsdf.ComputeF32(test.img)
			require.Nil(t, err)

			truth := exact(test.img)
			for i, d := range field.Distances {
				require.InDelta(t, truth[i], math.Abs(float64(d)), test.tolerance, "index %v", i)
			}
		})
	}
}

func TestPrecisionAgreement(t *testing.T) {
	img := byteImage(t, 256, 256, func(x, y int) bool {
		return circle(100, 60, 40)(x, y) || circle(250, 250, 3)(x, y)
	})

	f32, err := xsdf.ComputeF32(img)
	require.Nil(t, err)
	f16, err := xsdf.ComputeF16(img)
	require.Nil(t, err)

	// Rounding can make the two precisions settle on different but
	// nearly equidistant targets for a handful of pixels.
	var off int
	var sum float64
	for i, d := range f32.Distances {
		diff := math.Abs(float64(d) - float64(f16.Distances.At(i)))
		sum += diff
		if diff > 1e-2*max(1, math.Abs(float64(d))) {
			off++
		}
	}
	require.Less(t, float64(off)/float64(len(f32.Distances)), 1e-3)
	require.Less(t, sum/float64(len(f32.Distances)), 0.1)
}

func TestNoShape(t *testing.T) {
	for _, v := range []byte{0, 255} {
		buf := make([]byte, 64*48)
		for i := range buf {
			buf[i] = v
		}
		img, err := binimg.FromBytes(buf, 64, 48)
		require.Nil(t, err)

		field, err := xsdf.ComputeF16(img)
		require.Nil(t, err)
		require.True(t, field.Empty())
		for y := range field.Height {
			for x := range field.Width {
				require.True(t, math.IsInf(float64(field.At(x, y)), 0))
			}
		}

		_, err = field.Normalize()
		require.ErrorIs(t, err, xsdf.ErrEmpty)
		_, err = field.NormalizeClamped(10)
		require.ErrorIs(t, err, xsdf.ErrEmpty)
	}
}

func TestEmptyImage(t *testing.T) {
	field, err := xsdf.ComputeF32(binimg.FromFunc(0, 0, nil))
	require.Nil(t, err)
	require.Empty(t, field.Distances)
	require.True(t, field.Empty())

	_, err = field.Normalize()
	require.ErrorIs(t, err, xsdf.ErrEmpty)
	_, err = field.NormalizeClamped(10)
	require.ErrorIs(t, err, xsdf.ErrEmpty)
}

func TestWideF16(t *testing.T) {
	img := binimg.FromFunc(xsdf.MaxSize, 1, func(x, y int) bool { return x == 0 })
	field, err := xsdf.ComputeF16(img)
	require.Nil(t, err)
	require.False(t, field.Empty())
	require.Equal(t, float32(65504), field.At(xsdf.MaxSize-1, 0))
	require.Equal(t, geom.Pt[uint16](1, 0), field.Target(xsdf.MaxSize-1, 0))

	norm, err := field.Normalize()
	require.Nil(t, err)
	require.Equal(t, float32(65504), norm.FormerMax)
}

func TestTooLarge(t *testing.T) {
	img := binimg.FromFunc(xsdf.MaxSize+1, 1, func(x, y int) bool { return false })
	_, err := xsdf.ComputeF32(img)
	require.ErrorIs(t, err, xsdf.ErrTooLarge)

	img = binimg.FromFunc(-1, 1, nil)
	_, err = xsdf.ComputeF32(img)
	require.ErrorIs(t, err, binimg.ErrInvalidSize)
}

func TestOutOfBounds(t *testing.T) {
	field, err := xsdf.ComputeF32(byteImage(t, 8, 4, circle(4, 2, 2)))
	require.Nil(t, err)

	require.NotPanics(t, func() { field.At(7, 3) })
	require.Panics(t, func() { field.At(8, 0) })
	require.Panics(t, func() { field.At(0, 4) })
	require.Panics(t, func() { field.At(-1, 0) })
	require.Panics(t, func() { field.Target(0, -1) })
}

func reconstructBinaryImage(t *testing.T, w, h int, tolerance float64, inside func(x, y int) bool) {
	if testing.Short() {
		t.Skip("skipping large image in short mode")
	}

	img := byteImage(t, w, h, inside)
	f16, err := xsdf.ComputeF16(img)
	require.Nil(t, err)
	f32, err := xsdf.ComputeF32(img)
	require.Nil(t, err)

	for _, sign := range []*binimg.Bits{f16.Sign(), f32.Sign()} {
		var wrong int
		for y := range h {
			for x := range w {
				if img.Inside(x, y) != sign.Inside(x, y) {
					wrong++
				}
			}
		}

		quality := float64(wrong) / float64(w*h)
		t.Logf("wrong pixels: %v of %v (%v)", wrong, w*h, quality)
		require.Less(t, quality, tolerance, "too many incorrect pixels")
	}
}

func TestReconstructCircle(t *testing.T) {
	reconstructBinaryImage(t, 2048, 2048, 0.05, circle(128, 128, 64))
}

func TestReconstructDot(t *testing.T) {
	reconstructBinaryImage(t, 2048, 2048, 0.05, circle(1024, 1024, 4))
}

func TestReconstructTopLeft(t *testing.T) {
	reconstructBinaryImage(t, 2048, 2048, 0.05, circle(0, 0, 14))
}

func TestReconstructTopRight(t *testing.T) {
	reconstructBinaryImage(t, 2048, 2048, 0.05, circle(2048, 0, 14))
}

func TestReconstructRectangle(t *testing.T) {
	reconstructBinaryImage(t, 2048, 2048, 0.05, rectangle(179, 179, 37, 37))
}

func TestReconstructChecker(t *testing.T) {
	reconstructBinaryImage(t, 2048, 2048, 0.07, checker(179, 37))
}

func reconstructDistanceField(t *testing.T, w, h int, tolerance float64, distance func(x, y int) float64) {
	if testing.Short() {
		t.Skip("skipping large image in short mode")
	}

	img := byteImage(t, w, h, func(x, y int) bool { return distance(x, y) < 0 })
	f16, err := xsdf.ComputeF16(img)
	require.Nil(t, err)
	f32, err := xsdf.ComputeF32(img)
	require.Nil(t, err)

	var sum16, sum32 float64
	for y := range h {
		for x := range w {
			truth := distance(x, y)
			sum16 += math.Abs(truth - float64(f16.At(x, y)))
			sum32 += math.Abs(truth - float64(f32.At(x, y)))
		}
	}

	for _, sum := range []float64{sum16, sum32} {
		perPixel := sum / float64(w*h)
		t.Logf("average error per pixel: %v", perPixel)
		require.Less(t, perPixel, tolerance)
	}
}

func circleDistance(cx, cy, r int) func(x, y int) float64 {
	return func(x, y int) float64 {
		return math.Hypot(float64(x-cx), float64(y-cy)) - float64(r)
	}
}

// rectangleDistance returns the signed distance to the boundary of a
// rectangle with the given center and half extents.
func rectangleDistance(cx, cy, hw, hh int) func(x, y int) float64 {
	return func(x, y int) float64 {
		qx := math.Abs(float64(x-cx)) - float64(hw)
		qy := math.Abs(float64(y-cy)) - float64(hh)
		outside := math.Hypot(max(qx, 0), max(qy, 0))
		inside := min(max(qx, qy), 0)
		return outside + inside
	}
}

func TestReconstructCircleDistance(t *testing.T) {
	reconstructDistanceField(t, 2048, 2048, 2, circleDistance(128, 128, 64))
}

func TestReconstructLargeCircleDistance(t *testing.T) {
	reconstructDistanceField(t, 2048, 2048, 2, circleDistance(128, 128, 128))
}

func TestReconstructDotDistance(t *testing.T) {
	reconstructDistanceField(t, 2048, 2048, 2, circleDistance(128, 128, 4))
}

func TestReconstructRectangleDistance(t *testing.T) {
	reconstructDistanceField(t, 2048, 2048, 2, rectangleDistance(1023, 179, 137, 137))
}

func TestReconstructSmallRectangleDistance(t *testing.T) {
	reconstructDistanceField(t, 2048, 2048, 2, rectangleDistance(179, 1023, 4, 7))
}

func TestReconstructLargeRectangleDistance(t *testing.T) {
	reconstructDistanceField(t, 2048, 2048, 2, rectangleDistance(1024, 1023, 613, 673))
}

func BenchmarkDot(b *testing.B) {
	const w, h = 1080, 1920
	img := byteImage(b, w, h, circle(w/2, h/2, 6))

	b.Run("F32", func(b *testing.B) {
		for b.Loop() {
			xsdf.ComputeF32(img)
		}
	})
	b.Run("F16", func(b *testing.B) {
		for b.Loop() {
			xsdf.ComputeF16(img)
		}
	})
}
