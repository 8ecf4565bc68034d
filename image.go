package xsdf

import (
	"encoding/binary"
	"image"
)

// Gray returns the normalized field as an 8-bit grayscale image, as
// scaled by U8.
func (n *Normalized) Gray() *image.Gray {
	return &image.Gray{
		Pix:    n.U8(),
		Stride: n.Width,
		Rect:   image.Rect(0, 0, n.Width, n.Height),
	}
}

// Gray16 returns the normalized field as a 16-bit grayscale image, as
// scaled by U16.
func (n *Normalized) Gray16() *image.Gray16 {
	const size = 2

	vals := n.U16()
	pix := make([]byte, size*len(vals))
	for i, v := range vals {
		binary.BigEndian.PutUint16(pix[size*i:], v)
	}

	return &image.Gray16{
		Pix:    pix,
		Stride: size * n.Width,
		Rect:   image.Rect(0, 0, n.Width, n.Height),
	}
}
