// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package surface rasterizes a ggplot.PlotModel into an off-screen pixel
// buffer using gg.
//
// Render allocates a buffer of the target size multiplied by the pixel
// scale, so plots stay sharp on high-density displays, and lets the plot
// model draw into it through a gg-backed ggplot.RenderContext. The result
// is an immutable Snapshot that can be composited into an on-screen image
// with high-quality interpolation or encoded as PNG.
//
// # Coordinate Systems
//
// Plot models draw in view coordinates: the target rectangle's units with
// the y axis pointing down. Axes map data "up" to smaller y values, so the
// default buffer (origin top-left) needs no extra flip. Hosts whose pixel
// buffers start at the bottom-left corner, such as OpenGL textures, pass
// WithOrigin(OriginBottomLeft); the device transform then translates to the
// buffer height and inverts the vertical scale.
//
// # Views
//
// View caches the last snapshot behind a dirty flag. Gesture handlers call
// Invalidate, and the next display pass re-renders once, no matter how many
// invalidations arrived in between.
//
//	v := surface.NewView(model, surface.WithBackground(color.White))
//	ctrl := interact.NewController(model, v)
//	...
//	v.Draw(screen, screen.Bounds(), 2)
//
// # Errors
//
// Rendering never fails. Zero-size or non-finite targets and non-positive
// scales yield an empty snapshot (Snapshot.Empty reports true), logged at
// debug level through ggplot.Logger.
package surface
