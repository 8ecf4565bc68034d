package binimg

import "fmt"

// Bytes is a binary image backed by a row-major buffer with one byte
// per pixel. A pixel is inside if its byte is strictly greater than
// Threshold.
type Bytes struct {
	Pix       []byte
	Stride    int
	W, H      int
	Threshold byte
}

// FromBytes returns a binary image that uses buf as its pixel data
// with the default threshold. It returns an error wrapping
// ErrDimensionMismatch if len(buf) != width*height.
func FromBytes(buf []byte, width, height int) (*Bytes, error) {
	return FromBytesThreshold(buf, width, height, DefaultThreshold)
}

// FromBytesThreshold is like FromBytes but with a custom threshold.
func FromBytesThreshold(buf []byte, width, height int, threshold byte) (*Bytes, error) {
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("%w: %vx%v", ErrInvalidSize, width, height)
	}
	if len(buf) != width*height {
		return nil, fmt.Errorf("%w: %v bytes for %vx%v pixels", ErrDimensionMismatch, len(buf), width, height)
	}

	return &Bytes{
		Pix:       buf,
		Stride:    width,
		W:         width,
		H:         height,
		Threshold: threshold,
	}, nil
}

func (img *Bytes) Width() int  { return img.W }
func (img *Bytes) Height() int { return img.H }

func (img *Bytes) Inside(x, y int) bool {
	return img.Pix[img.PixOffset(x, y)] > img.Threshold
}

// PixOffset returns the index of the byte for the pixel at (x, y).
func (img *Bytes) PixOffset(x, y int) int {
	return (img.Stride * y) + x
}

// SubImage returns a binary image that shares img's pixels but only
// covers the w x h region starting at (x, y). The region must lie
// within img.
func (img *Bytes) SubImage(x, y, w, h int) *Bytes {
	if x < 0 || y < 0 || w < 0 || h < 0 || x+w > img.W || y+h > img.H {
		panic(fmt.Errorf("binimg: sub-image %vx%v at (%v,%v) out of bounds of %vx%v", w, h, x, y, img.W, img.H))
	}
	if w == 0 || h == 0 {
		return &Bytes{Threshold: img.Threshold}
	}

	i := img.PixOffset(x, y)
	return &Bytes{
		Pix:       img.Pix[i : i+img.Stride*(h-1)+w],
		Stride:    img.Stride,
		W:         w,
		H:         h,
		Threshold: img.Threshold,
	}
}
