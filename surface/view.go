// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"image"

	"golang.org/x/image/draw"

	"github.com/gogpu/ggplot"
)

// View is a drawable plot with a cached snapshot. The snapshot is
// re-rendered only when the view was invalidated or the requested size or
// scale changed, so any number of invalidations between two display passes
// cost one render.
//
// View is NOT safe for concurrent use; drive it from the UI goroutine.
type View struct {
	plot  *ggplot.PlotModel
	opts  []Option
	snap  *Snapshot
	rect  ggplot.Rect
	scale float64
	dirty bool
}

// NewView returns a dirty view of plot.
func NewView(plot *ggplot.PlotModel, opts ...Option) *View {
	return &View{plot: plot, opts: opts, dirty: true}
}

// Plot returns the plot model.
func (v *View) Plot() *ggplot.PlotModel { return v.plot }

// Invalidate marks the view for re-rendering on the next display pass.
func (v *View) Invalidate() { v.dirty = true }

// IsDirty reports whether the next Snapshot call re-renders.
func (v *View) IsDirty() bool { return v.dirty }

// Snapshot returns the plot rendered into rect at scale, reusing the
// cached snapshot when nothing changed.
func (v *View) Snapshot(rect ggplot.Rect, scale float64) *Snapshot {
	if !v.dirty && v.snap != nil && rect == v.rect && scale == v.scale {
		return v.snap
	}
	v.snap = Render(v.plot, rect, scale, v.opts...)
	v.rect, v.scale = rect, scale
	v.dirty = false
	return v.snap
}

// Draw renders the view into the device rectangle r of dst. The view
// rectangle is r's size divided by scale.
func (v *View) Draw(dst draw.Image, r image.Rectangle, scale float64) {
	if !(scale > 0) {
		ggplot.Logger().Debug("surface: draw with invalid scale", "scale", scale)
		return
	}
	rect := ggplot.Rect{Width: float64(r.Dx()) / scale, Height: float64(r.Dy()) / scale}
	v.Snapshot(rect, scale).Composite(dst, r)
}
