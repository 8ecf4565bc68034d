package binimg

import (
	"fmt"
	"math/bits"
	"strings"
)

// Bits is a binary image stored as a packed bit matrix with 32 pixels
// per word. The origin is at the top-left.
type Bits struct {
	w, h    int
	rowSize int
	data    []uint32
}

// NewBits returns a width x height bit matrix with every pixel
// outside.
func NewBits(width, height int) *Bits {
	if width < 0 || height < 0 {
		panic(fmt.Errorf("%w: %vx%v", ErrInvalidSize, width, height))
	}
	rowSize := (width + 31) / 32
	return &Bits{
		w:       width,
		h:       height,
		rowSize: rowSize,
		data:    make([]uint32, rowSize*height),
	}
}

// Snapshot classifies every pixel of img once and stores the result.
// Adapters that are expensive to query, such as Gray over a generic
// image.Image, can be snapshotted before computing a distance field.
func Snapshot(img Image) *Bits {
	b := NewBits(img.Width(), img.Height())
	for y := range b.h {
		for x := range b.w {
			if img.Inside(x, y) {
				b.Set(x, y)
			}
		}
	}
	return b
}

// ParseBits parses an ASCII picture of a binary image. Every
// non-empty line is a row. The string inside marks inside pixels and
// outside marks outside pixels; whitespace between tokens is ignored.
// The two markers must be non-empty and distinct.
func ParseBits(repr, inside, outside string) (*Bits, error) {
	if inside == "" || outside == "" || inside == outside {
		return nil, fmt.Errorf("%w: inside %q, outside %q", ErrInvalidToken, inside, outside)
	}

	var rows [][]bool
	for line := range strings.Lines(repr) {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		var row []bool
		for line != "" {
			switch {
			case strings.HasPrefix(line, inside):
				row = append(row, true)
				line = line[len(inside):]
			case strings.HasPrefix(line, outside):
				row = append(row, false)
				line = line[len(outside):]
			case line[0] == ' ' || line[0] == '\t':
				line = line[1:]
			default:
				return nil, fmt.Errorf("binimg: unexpected %q in row %v", line[0], len(rows))
			}
		}
		if len(rows) > 0 && len(row) != len(rows[0]) {
			return nil, fmt.Errorf("%w: row %v has %v pixels, expected %v", ErrDimensionMismatch, len(rows), len(row), len(rows[0]))
		}
		rows = append(rows, row)
	}

	if len(rows) == 0 {
		return NewBits(0, 0), nil
	}

	b := NewBits(len(rows[0]), len(rows))
	for y, row := range rows {
		for x, v := range row {
			if v {
				b.Set(x, y)
			}
		}
	}
	return b, nil
}

func (b *Bits) Width() int  { return b.w }
func (b *Bits) Height() int { return b.h }

func (b *Bits) Inside(x, y int) bool {
	offset := y*b.rowSize + (x / 32)
	return (b.data[offset]>>(x&0x1f))&1 != 0
}

// Set marks the pixel at (x, y) as inside.
func (b *Bits) Set(x, y int) {
	offset := y*b.rowSize + (x / 32)
	b.data[offset] |= 1 << (x & 0x1f)
}

// Unset marks the pixel at (x, y) as outside.
func (b *Bits) Unset(x, y int) {
	offset := y*b.rowSize + (x / 32)
	b.data[offset] &^= 1 << (x & 0x1f)
}

// Count returns the number of inside pixels.
func (b *Bits) Count() int {
	var n int
	for _, w := range b.data {
		n += bits.OnesCount32(w)
	}
	return n
}

// String renders b with one line per row, using "X" for inside pixels
// and "." for outside pixels.
func (b *Bits) String() string {
	var buf strings.Builder
	buf.Grow(b.h * (b.w + 1))
	for y := range b.h {
		for x := range b.w {
			if b.Inside(x, y) {
				buf.WriteByte('X')
			} else {
				buf.WriteByte('.')
			}
		}
		buf.WriteByte('\n')
	}
	return buf.String()
}
