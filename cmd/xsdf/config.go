package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"deedles.dev/xsdf/binimg"
)

type config struct {
	out       string
	inputs    []string
	threshold uint
	invert    bool
	channel   binimg.Channel
	precision string
	clamp     float64
	depth     int
	workers   int
	cols      int
	gap       int

	glyph   string
	size    float64
	padding int

	quality  int
	lossless bool
	verbose  bool
}

func parseConfig(name string, args []string, output io.Writer) (*config, error) {
	var c config
	var channel string

	fset := flag.NewFlagSet(name, flag.ContinueOnError)
	fset.SetOutput(output)
	fset.Usage = func() {
		fmt.Fprintf(fset.Output(), "usage: %s [flags] -out output.png input...\n", name)
		fmt.Fprintf(fset.Output(), "       %s [flags] -out output.png -glyph text\n", name)
		fset.PrintDefaults()
	}

	fset.StringVar(&c.out, "out", "", "output image path (png|jpg|tif|bmp|gif|webp)")
	fset.UintVar(&c.threshold, "threshold", binimg.DefaultThreshold, "pixels brighter than this are inside (0-255)")
	fset.BoolVar(&c.invert, "invert", false, "invert input images before thresholding")
	fset.StringVar(&channel, "channel", "luma", "channel compared against the threshold: luma|alpha")
	fset.StringVar(&c.precision, "precision", "f32", "distance storage precision: f16|f32")
	fset.Float64Var(&c.clamp, "clamp", 0, "clamp distances to ±N pixels around 0.5; 0 normalizes by extrema")
	fset.IntVar(&c.depth, "depth", 8, "output bit depth: 8|16")
	fset.IntVar(&c.workers, "workers", 0, "number of images computed concurrently, 0=GOMAXPROCS")
	fset.IntVar(&c.cols, "cols", 4, "columns of the contact sheet when several inputs are given")
	fset.IntVar(&c.gap, "gap", 2, "gap between contact sheet cells in pixels")

	fset.StringVar(&c.glyph, "glyph", "", "render text with the Go font instead of reading input images")
	fset.Float64Var(&c.size, "size", 64, "glyph size in pixels per em")
	fset.IntVar(&c.padding, "padding", 8, "empty pixels around rendered glyphs")

	fset.IntVar(&c.quality, "quality", 90, "JPEG/WebP output quality (1-100)")
	fset.BoolVar(&c.lossless, "lossless", false, "WebP lossless mode")
	fset.BoolVar(&c.verbose, "v", false, "log debug information")

	if err := fset.Parse(args); err != nil {
		return nil, err
	}
	c.inputs = fset.Args()

	switch strings.ToLower(channel) {
	case "luma":
		c.channel = binimg.Luma
	case "alpha":
		c.channel = binimg.Alpha
	default:
		return nil, fmt.Errorf("unknown channel %q", channel)
	}

	return &c, c.validate()
}

func (c *config) validate() error {
	var errs []error
	if c.out == "" {
		errs = append(errs, errors.New("no output path"))
	}
	if (c.glyph == "") == (len(c.inputs) == 0) {
		errs = append(errs, errors.New("exactly one of -glyph or input images is required"))
	}
	if c.threshold > 0xFF {
		errs = append(errs, fmt.Errorf("threshold %v out of range", c.threshold))
	}
	if c.precision != "f16" && c.precision != "f32" {
		errs = append(errs, fmt.Errorf("unknown precision %q", c.precision))
	}
	if c.clamp < 0 {
		errs = append(errs, fmt.Errorf("negative clamp %v", c.clamp))
	}
	if c.depth != 8 && c.depth != 16 {
		errs = append(errs, fmt.Errorf("unsupported depth %v", c.depth))
	}
	if c.quality < 1 || c.quality > 100 {
		errs = append(errs, fmt.Errorf("quality %v out of range", c.quality))
	}
	return errors.Join(errs...)
}
