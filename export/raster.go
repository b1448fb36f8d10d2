// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package export

import (
	"fmt"
	"image/color"
	"image/jpeg"
	"io"

	"github.com/gogpu/ggplot"
	"github.com/gogpu/ggplot/surface"
)

// PNGEncoder rasterizes plots as PNG.
type PNGEncoder struct {
	// Scale is device pixels per unit; 0 means 1.
	Scale float64
	// Background fills the image first; nil keeps it transparent outside
	// the plot's own background.
	Background color.Color
}

var _ Encoder = PNGEncoder{}

// Encode implements Encoder.
func (e PNGEncoder) Encode(w io.Writer, plot *ggplot.PlotModel, rect ggplot.Rect) error {
	snap := render(plot, rect, e.Scale, e.Background)
	if snap.Empty() {
		return fmt.Errorf("png: %w", ggplot.ErrEmptySurface)
	}
	return snap.EncodePNG(w)
}

// Extension implements Encoder.
func (PNGEncoder) Extension() string { return "png" }

// MIMEType implements Encoder.
func (PNGEncoder) MIMEType() string { return "image/png" }

// JPEGEncoder rasterizes plots as JPEG on an opaque background.
type JPEGEncoder struct {
	Scale float64
	// Quality ranges 1..100; 0 means 90.
	Quality int
	// Background defaults to white.
	Background color.Color
}

var _ Encoder = JPEGEncoder{}

// Encode implements Encoder.
func (e JPEGEncoder) Encode(w io.Writer, plot *ggplot.PlotModel, rect ggplot.Rect) error {
	bg := e.Background
	if bg == nil {
		bg = color.White
	}
	snap := render(plot, rect, e.Scale, bg)
	if snap.Empty() {
		return fmt.Errorf("jpeg: %w", ggplot.ErrEmptySurface)
	}
	q := e.Quality
	if q <= 0 {
		q = 90
	}
	return jpeg.Encode(w, snap.Image(), &jpeg.Options{Quality: min(q, 100)})
}

// Extension implements Encoder.
func (JPEGEncoder) Extension() string { return "jpg" }

// MIMEType implements Encoder.
func (JPEGEncoder) MIMEType() string { return "image/jpeg" }

func render(plot *ggplot.PlotModel, rect ggplot.Rect, scale float64, bg color.Color) *surface.Snapshot {
	if scale == 0 {
		scale = 1
	}
	var opts []surface.Option
	if bg != nil {
		opts = append(opts, surface.WithBackground(bg))
	}
	return surface.RenderDetached(plot, rect, scale, opts...)
}
