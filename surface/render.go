// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"image"
	"math"

	"github.com/gogpu/gg"
	"golang.org/x/image/draw"

	"github.com/gogpu/ggplot"
)

// maxPixels bounds the buffer Render allocates.
const maxPixels = 1 << 28

// Render rasterizes plot into a buffer of target's size times pixelScale.
// It updates the plot's automatic ranges but keeps interactive ones.
//
// An empty or non-finite target, a non-positive or non-finite scale, or a
// nil plot yields an empty snapshot instead of an error.
func Render(plot *ggplot.PlotModel, target ggplot.Rect, pixelScale float64, opts ...Option) *Snapshot {
	return render(plot, target, pixelScale, false, opts)
}

// RenderDetached is Render for targets other than the live view: the
// plot's axis layout is left as the last display pass set it.
func RenderDetached(plot *ggplot.PlotModel, target ggplot.Rect, pixelScale float64, opts ...Option) *Snapshot {
	return render(plot, target, pixelScale, true, opts)
}

func render(plot *ggplot.PlotModel, target ggplot.Rect, pixelScale float64, detached bool, opts []Option) *Snapshot {
	w, h, ok := bufferSize(target, pixelScale)
	if plot == nil || !ok {
		ggplot.Logger().Debug("surface: blank snapshot",
			"width", target.Width, "height", target.Height, "scale", pixelScale)
		return &Snapshot{scale: pixelScale}
	}

	o := collect(opts)
	dc := gg.NewContext(w, h)
	defer func() { _ = dc.Close() }()

	if o.background != nil {
		dc.ClearWithColor(gg.FromColor(o.background))
	}
	rc := NewRenderContext(dc, target, pixelScale, opts...)
	plot.Update()
	if detached {
		plot.RenderDetached(rc, target)
	} else {
		plot.Render(rc, target)
	}

	return &Snapshot{img: toRGBA(dc.Image()), scale: pixelScale}
}

func bufferSize(target ggplot.Rect, scale float64) (w, h int, ok bool) {
	if target.Empty() || !(scale > 0) || math.IsInf(scale, 1) ||
		math.IsInf(target.Width, 1) || math.IsInf(target.Height, 1) {
		return 0, 0, false
	}
	fw, fh := math.Ceil(target.Width*scale), math.Ceil(target.Height*scale)
	if fw < 1 || fh < 1 || fw*fh > maxPixels {
		return 0, 0, false
	}
	return int(fw), int(fh), true
}

// toRGBA copies img into a buffer the snapshot owns.
func toRGBA(img image.Image) *image.RGBA {
	b := img.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(out, out.Rect, img, b.Min, draw.Src)
	return out
}
