package main

import (
	"fmt"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"deedles.dev/xiter"
	"deedles.dev/xsdf/geom"
	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	"golang.org/x/image/draw"
)

// sheet arranges imgs in a grid of equally sized cells on a black
// background. Smaller images are centered in their cells.
func sheet(imgs []image.Image, cols, gap, depth int) image.Image {
	var cell geom.Point[int]
	for _, img := range imgs {
		size := geom.RectOf[int](img.Bounds()).Size()
		cell = geom.Pt(max(cell.X, size.X), max(cell.Y, size.Y))
	}

	bounds := geom.GridBounds(len(imgs), cols, geom.Pt(0, 0), cell, gap).ImageRect()
	var dst draw.Image = image.NewGray(bounds)
	if depth == 16 {
		dst = image.NewGray16(bounds)
	}
	draw.Draw(dst, bounds, image.NewUniform(color.Black), image.Point{}, draw.Src)

	for i, r := range xiter.Enumerate(geom.Grid(len(imgs), cols, geom.Pt(0, 0), cell, gap)) {
		src := imgs[i]
		size := geom.RectOf[int](src.Bounds()).Size()
		margin := r.Size().Sub(size)
		target := r.Add(geom.Pt(margin.X/2, margin.Y/2)).Resize(size)
		draw.Draw(dst, target.ImageRect(), src, src.Bounds().Min, draw.Src)
	}
	return dst
}

func save(c *config, img image.Image) error {
	if dir := filepath.Dir(c.out); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}

	switch strings.ToLower(filepath.Ext(c.out)) {
	case ".webp":
		file, err := os.Create(c.out)
		if err != nil {
			return fmt.Errorf("create %q: %w", c.out, err)
		}
		defer file.Close()

		opts := &webp.Options{Lossless: c.lossless, Quality: float32(c.quality)}
		if err := webp.Encode(file, img, opts); err != nil {
			return fmt.Errorf("encode %q: %w", c.out, err)
		}
		return file.Close()

	default:
		err := imaging.Save(img, c.out, imaging.JPEGQuality(c.quality))
		if err != nil {
			return fmt.Errorf("save %q: %w", c.out, err)
		}
		return nil
	}
}
