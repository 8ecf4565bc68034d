package binimg

import (
	"image"
	"image/color"
)

// Channel selects which component of a color is compared against a
// threshold.
type Channel int

const (
	// Luma compares the grayscale brightness of a pixel.
	Luma Channel = iota

	// Alpha compares the opacity of a pixel. It is useful for masks
	// such as rasterized glyphs.
	Alpha
)

func (c Channel) String() string {
	switch c {
	case Luma:
		return "luma"
	case Alpha:
		return "alpha"
	default:
		return "unknown"
	}
}

// Gray is a binary image backed by an arbitrary image.Image. A pixel
// is inside if the selected channel, reduced to 8 bits, is strictly
// greater than Threshold. Coordinates are relative to the minimum
// point of the source image's bounds.
type Gray struct {
	Src       image.Image
	Threshold uint8
	Channel   Channel

	rect image.Rectangle
}

// FromImage returns a binary image that classifies src by luma with
// the default threshold.
func FromImage(src image.Image) *Gray {
	return FromImageThreshold(src, DefaultThreshold, Luma)
}

// FromImageThreshold returns a binary image that classifies src by
// the given channel and threshold.
func FromImageThreshold(src image.Image, threshold uint8, channel Channel) *Gray {
	return &Gray{
		Src:       src,
		Threshold: threshold,
		Channel:   channel,
		rect:      src.Bounds(),
	}
}

func (img *Gray) Width() int  { return img.rect.Dx() }
func (img *Gray) Height() int { return img.rect.Dy() }

func (img *Gray) Inside(x, y int) bool {
	return img.value(x+img.rect.Min.X, y+img.rect.Min.Y) > img.Threshold
}

func (img *Gray) value(x, y int) uint8 {
	switch src := img.Src.(type) {
	case *image.Gray:
		if img.Channel == Luma {
			return src.Pix[src.PixOffset(x, y)]
		}
		return 0xFF

	case *image.Alpha:
		// Opaque alpha converts to white, so both channels agree.
		return src.Pix[src.PixOffset(x, y)]
	}

	c := img.Src.At(x, y)
	if img.Channel == Alpha {
		_, _, _, a := c.RGBA()
		return uint8(a >> 8)
	}
	return color.GrayModel.Convert(c).(color.Gray).Y
}
