// Package glyph rasterizes text into alpha masks that are suitable as
// the source of signed distance fields, such as for font atlases.
package glyph

import (
	"errors"
	"fmt"
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// ErrNoGlyph is returned when a font has no glyph for a rune.
var ErrNoGlyph = errors.New("glyph: no glyph for rune")

// Rasterizer renders glyphs of a single font at a single size.
type Rasterizer struct {
	face font.Face

	// Padding is the number of empty pixels added around every mask.
	// Distance fields need room outside of the shape to be useful, so
	// it should be at least the largest distance of interest.
	Padding int
}

// New returns a rasterizer for the Go Regular font.
func New(size float64, padding int) (*Rasterizer, error) {
	return NewFromTTF(goregular.TTF, size, padding)
}

// NewFromTTF returns a rasterizer for a TrueType or OpenType font.
// The size is in pixels per em.
func NewFromTTF(ttf []byte, size float64, padding int) (*Rasterizer, error) {
	if padding < 0 {
		return nil, fmt.Errorf("glyph: negative padding %v", padding)
	}

	f, err := opentype.Parse(ttf)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}

	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, fmt.Errorf("create face: %w", err)
	}

	return &Rasterizer{face: face, Padding: padding}, nil
}

// Close releases the font face.
func (r *Rasterizer) Close() error {
	return r.face.Close()
}

// Rune renders a single rune. The mask is exactly large enough to hold
// the glyph plus padding on every side.
func (r *Rasterizer) Rune(c rune) (*image.Alpha, error) {
	bounds, _, ok := r.face.GlyphBounds(c)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNoGlyph, c)
	}
	return r.draw(string(c), bounds), nil
}

// String renders s on a single line.
func (r *Rasterizer) String(s string) (*image.Alpha, error) {
	for _, c := range s {
		if _, ok := r.face.GlyphAdvance(c); !ok {
			return nil, fmt.Errorf("%w: %q", ErrNoGlyph, c)
		}
	}

	bounds, _ := font.BoundString(r.face, s)
	return r.draw(s, bounds), nil
}

func (r *Rasterizer) draw(s string, bounds fixed.Rectangle26_6) *image.Alpha {
	minX, minY := bounds.Min.X.Floor(), bounds.Min.Y.Floor()
	maxX, maxY := bounds.Max.X.Ceil(), bounds.Max.Y.Ceil()
	w := max(maxX-minX, 0) + 2*r.Padding
	h := max(maxY-minY, 0) + 2*r.Padding

	mask := image.NewAlpha(image.Rect(0, 0, w, h))
	d := font.Drawer{
		Dst:  mask,
		Src:  image.Opaque,
		Face: r.face,
		Dot:  fixed.P(r.Padding-minX, r.Padding-minY),
	}
	d.DrawString(s)

	return mask
}
