// Package ggplot provides an interactive 2D plot model for Go, rendered
// with the gogpu gg graphics library.
//
// # Overview
//
// ggplot keeps a plot as a model of axes, series and annotations. Each axis
// maps a data interval onto a pixel interval; panning and zooming mutate the
// data interval while the pixel interval is fixed per render pass by the
// plot margins. Drawing goes through a small device interface,
// [RenderContext], so the same model renders to a raster surface
// (package surface) or to a vector page (package export).
//
// # Quick Start
//
//	model := ggplot.NewPlotModel("Signal")
//	model.Axes = append(model.Axes,
//	    ggplot.NewLinearAxis(ggplot.AxisBottom, ggplot.WithRange(0, 10)),
//	    ggplot.NewLinearAxis(ggplot.AxisLeft, ggplot.WithRange(-1, 1)),
//	)
//	model.Series = append(model.Series, ggplot.NewFunctionSeries(math.Sin, 0, 10, 200))
//
//	snap := surface.Render(model, ggplot.Rect{Width: 320, Height: 240}, 2)
//	png, err := export.ToRaster(model, export.DefaultRect)
//
// # Coordinate System
//
// Screen coordinates follow gg: origin at the top-left, X increases right,
// Y increases down. Data coordinates are y-up; vertical axes map larger
// values to smaller pixel rows.
//
// # Interaction
//
// Package interact turns touch and pinch samples into [PanZoomable.Pan] and
// [PanZoomable.ZoomAt] calls on every axis and marks the view dirty. It never
// renders synchronously.
package ggplot
