// Command xsdf computes signed distance fields of images or text and
// writes them as grayscale images.
//
// With a single input, the field is written as is. With several, the
// fields are arranged in a contact sheet.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"image"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"slices"

	"deedles.dev/xsdf"
	"deedles.dev/xsdf/binimg"
	"deedles.dev/xsdf/glyph"
	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp"
)

func main() {
	c, err := parseConfig(filepath.Base(os.Args[0]), os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	level := slog.LevelInfo
	if c.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	xsdf.SetLogger(logger)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := run(ctx, c); err != nil {
		logger.Error("failed", "err", err)
		os.Exit(1)
	}
	logger.Info("wrote", "path", c.out)
}

func run(ctx context.Context, c *config) error {
	imgs, names, err := load(c)
	if err != nil {
		return err
	}

	var out []image.Image
	switch c.precision {
	case "f16":
		out, err = render[xsdf.F16](ctx, c, imgs, names)
	default:
		out, err = render[xsdf.F32](ctx, c, imgs, names)
	}
	if err != nil {
		return err
	}

	if len(out) == 1 {
		return save(c, out[0])
	}
	return save(c, sheet(out, c.cols, c.gap, c.depth))
}

// load reads and classifies the inputs. Classification is snapshotted
// so that the sweeps do not go through image.Image for every access.
func load(c *config) (imgs []binimg.Image, names []string, err error) {
	if c.glyph != "" {
		r, err := glyph.New(c.size, c.padding)
		if err != nil {
			return nil, nil, err
		}
		defer r.Close()

		mask, err := r.String(c.glyph)
		if err != nil {
			return nil, nil, fmt.Errorf("render %q: %w", c.glyph, err)
		}
		img := binimg.FromImageThreshold(mask, uint8(c.threshold), binimg.Alpha)
		return []binimg.Image{binimg.Snapshot(img)}, []string{c.glyph}, nil
	}

	for _, path := range c.inputs {
		src, err := imaging.Open(path, imaging.AutoOrientation(true))
		if err != nil {
			return nil, nil, fmt.Errorf("open %q: %w", path, err)
		}
		gray := imaging.Grayscale(src)
		if c.invert {
			gray = imaging.Invert(gray)
		}

		img := binimg.FromImageThreshold(gray, uint8(c.threshold), c.channel)
		imgs = append(imgs, binimg.Snapshot(img))
		names = append(names, path)
	}
	return imgs, names, nil
}

func render[S xsdf.Storage[S]](ctx context.Context, c *config, imgs []binimg.Image, names []string) ([]image.Image, error) {
	fields, err := xsdf.ComputeAll[S](ctx, slices.Values(imgs), c.workers)
	if err != nil {
		return nil, err
	}

	out := make([]image.Image, 0, len(fields))
	for i, field := range fields {
		var norm *xsdf.Normalized
		if c.clamp > 0 {
			norm, err = field.NormalizeClamped(float32(c.clamp))
		} else {
			norm, err = field.Normalize()
		}
		if err != nil {
			return nil, fmt.Errorf("normalize %q: %w", names[i], err)
		}

		xsdf.Logger().Debug(
			"normalized",
			"name", names[i],
			"min", norm.FormerMin,
			"max", norm.FormerMax,
			"zero", norm.Zero,
		)

		if c.depth == 16 {
			out = append(out, norm.Gray16())
			continue
		}
		out = append(out, norm.Gray())
	}
	return out, nil
}
