package main

import (
	"image/color"
	"math"
	"sort"

	"github.com/gogpu/ggplot"
)

var (
	red    = color.RGBA{R: 0xff, A: 0xff}
	green  = color.RGBA{G: 0x80, A: 0xff}
	gold   = color.RGBA{R: 0xff, G: 0xd7, A: 0xff}
	orange = color.RGBA{R: 0xff, G: 0xa5, A: 0xff}
)

func translucent(c color.RGBA) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: 99}
}

// models maps a model name to its builder.
var models = map[string]func(opts ...ggplot.PlotOption) *ggplot.PlotModel{
	"lines":    linesModel,
	"log":      logModel,
	"bands":    bandsModel,
	"columns":  columnsModel,
	"arrows":   arrowsModel,
	"text":     textModel,
	"layers":   layersModel,
	"reversed": reversedModel,
}

func modelNames() []string {
	names := make([]string, 0, len(models))
	for name := range models {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func lineAnnotations(m *ggplot.PlotModel) {
	first := ggplot.NewLineAnnotation(ggplot.LineLinearEquation)
	first.Slope, first.Intercept = 0.1, 1
	first.Text = "First"

	second := ggplot.NewLineAnnotation(ggplot.LineLinearEquation)
	second.Slope, second.Intercept = 0.3, 2
	second.MaximumX = 40
	second.Color = red
	second.Text = "Second"

	vertical := ggplot.NewLineAnnotation(ggplot.LineVertical)
	vertical.X = 4
	vertical.MaximumY = 10
	vertical.Color = green
	vertical.Text = "Vertical"

	horizontal := ggplot.NewLineAnnotation(ggplot.LineHorizontal)
	horizontal.Y = 2
	horizontal.MaximumX = 4
	horizontal.Color = gold
	horizontal.Text = "Horizontal"

	m.Annotations = append(m.Annotations, first, second, vertical, horizontal)
}

func linesModel(opts ...ggplot.PlotOption) *ggplot.PlotModel {
	m := ggplot.NewPlotModel("LineAnnotations on linear axes", append(opts,
		ggplot.WithAxes(
			ggplot.NewLinearAxis(ggplot.AxisBottom, ggplot.WithRange(-20, 80), ggplot.WithGridlines(true, false)),
			ggplot.NewLinearAxis(ggplot.AxisLeft, ggplot.WithRange(-10, 10), ggplot.WithGridlines(true, false)),
		))...)
	lineAnnotations(m)
	m.Series = append(m.Series, ggplot.NewFunctionSeries(func(x float64) float64 {
		return 5 * math.Sin(x/8)
	}, -20, 80, 200))
	return m
}

func logModel(opts ...ggplot.PlotOption) *ggplot.PlotModel {
	m := ggplot.NewPlotModel("Annotations on logarithmic axes", append(opts,
		ggplot.WithAxes(
			ggplot.NewLogarithmicAxis(ggplot.AxisBottom, ggplot.WithRange(1, 80)),
			ggplot.NewLogarithmicAxis(ggplot.AxisLeft, ggplot.WithRange(1, 10)),
		))...)
	lineAnnotations(m)
	return m
}

func bandsModel(opts ...ggplot.PlotOption) *ggplot.PlotModel {
	m := ggplot.NewPlotModel("RectangleAnnotation - horizontal bands", append(opts,
		ggplot.WithAxes(
			ggplot.NewLinearAxis(ggplot.AxisBottom, ggplot.WithRange(0, 10)),
			ggplot.NewLinearAxis(ggplot.AxisLeft, ggplot.WithRange(87, 97), ggplot.WithTitle("Oxygen saturation (%)")),
		))...)
	bands := []struct {
		lo, hi float64
		c      color.RGBA
		text   string
	}{
		{89.5, 90.8, red, "Invalid"},
		{90.8, 92.1, orange, ""},
		{92.1, 94.6, gold, ""},
		{94.6, 96, green, "Ok"},
	}
	for _, b := range bands {
		r := ggplot.NewRectangleAnnotation()
		r.MinimumY, r.MaximumY = b.lo, b.hi
		r.Fill = translucent(b.c)
		r.Text = b.text
		m.Annotations = append(m.Annotations, r)
	}
	pts := make([]ggplot.DataPoint, 0, 11)
	for i := range 11 {
		pts = append(pts, ggplot.Dp(float64(i), 92+3*math.Cos(float64(i)/2)))
	}
	s := ggplot.NewLineSeries("Measurements", pts...)
	s.MarkerSize = 3
	m.Series = append(m.Series, s)
	return m
}

func columnsModel(opts ...ggplot.PlotOption) *ggplot.PlotModel {
	m := ggplot.NewPlotModel("ErrorColumnSeries", append(opts,
		ggplot.WithAxes(
			ggplot.NewCategoryAxis(ggplot.AxisBottom, []string{"Category A", "Category B", "Category C", "Category D"}),
			ggplot.NewLinearAxis(ggplot.AxisLeft, ggplot.WithPadding(0, 0.06), ggplot.WithAbsoluteRange(0, math.Inf(1))),
		))...)
	m.Series = append(m.Series,
		ggplot.NewErrorColumnSeries("Series 1",
			ggplot.ErrorColumnItem{Value: 25, Error: 2},
			ggplot.ErrorColumnItem{Value: 137, Error: 25},
			ggplot.ErrorColumnItem{Value: 18, Error: 4},
			ggplot.ErrorColumnItem{Value: 40, Error: 29},
		),
		ggplot.NewErrorColumnSeries("Series 2",
			ggplot.ErrorColumnItem{Value: 35, Error: 20},
			ggplot.ErrorColumnItem{Value: 17, Error: 7},
			ggplot.ErrorColumnItem{Value: 118, Error: 44},
			ggplot.ErrorColumnItem{Value: 49, Error: 29},
		),
	)
	return m
}

func arrowsModel(opts ...ggplot.PlotOption) *ggplot.PlotModel {
	m := ggplot.NewPlotModel("ArrowAnnotations", append(opts,
		ggplot.WithAxes(
			ggplot.NewLinearAxis(ggplot.AxisBottom, ggplot.WithRange(-20, 80)),
			ggplot.NewLinearAxis(ggplot.AxisLeft, ggplot.WithRange(-10, 10)),
		))...)

	a := ggplot.NewArrowAnnotation(ggplot.Dp(8, 4), ggplot.Dp(0, 0))
	a.Color = green
	a.Text = "StartPoint and EndPoint"

	undefined := ggplot.Dp(math.NaN(), math.NaN())
	b := ggplot.NewArrowAnnotation(undefined, ggplot.Dp(40, -3))
	b.ArrowDirection = ggplot.ScreenVector{X: 30, Y: 70}
	b.Text = "ArrowDirection and EndPoint"

	c := ggplot.NewArrowAnnotation(undefined, ggplot.Dp(10, -3))
	c.ArrowDirection = ggplot.ScreenVector{X: 30, Y: -70}
	c.HeadLength, c.HeadWidth, c.Veeness = 14, 6, 4
	c.Color = red
	c.Text = "HeadLength = 14, HeadWidth = 6, Veeness = 4"

	m.Annotations = append(m.Annotations, a, b, c)
	return m
}

func textModel(opts ...ggplot.PlotOption) *ggplot.PlotModel {
	m := ggplot.NewPlotModel("TextAnnotations", append(opts,
		ggplot.WithAxes(
			ggplot.NewLinearAxis(ggplot.AxisBottom, ggplot.WithRange(-15, 25)),
			ggplot.NewLinearAxis(ggplot.AxisLeft, ggplot.WithRange(-5, 10)),
		))...)
	add := func(p ggplot.DataPoint, rot float64, ha ggplot.HorizontalAlignment, va ggplot.VerticalAlignment, s string) {
		t := &ggplot.TextAnnotation{Position: p, Rotation: rot, HAlign: ha, VAlign: va}
		t.Text = s
		m.Annotations = append(m.Annotations, t)
	}
	add(ggplot.Dp(-6, 2), 0, ggplot.AlignCenter, ggplot.AlignMiddle, "Text annotation 1")
	add(ggplot.Dp(-7, 6), 60, ggplot.AlignCenter, ggplot.AlignMiddle, "Text annotation 2")

	hs := []struct {
		x    float64
		a    ggplot.HorizontalAlignment
		name string
	}{{2, ggplot.AlignRight, "Right"}, {6, ggplot.AlignCenter, "Center"}, {10, ggplot.AlignLeft, "Left"}}
	vs := []struct {
		y    float64
		a    ggplot.VerticalAlignment
		name string
	}{{2, ggplot.AlignTop, "Top"}, {4, ggplot.AlignMiddle, "Middle"}, {6, ggplot.AlignBottom, "Bottom"}}
	for _, h := range hs {
		for _, v := range vs {
			add(ggplot.Dp(h.x, v.y), 20, h.a, v.a, h.name+"/"+v.name)
		}
	}

	boxed := &ggplot.TextAnnotation{
		Position:   ggplot.Dp(15, -2),
		Background: color.NRGBA{R: 0xff, G: 0xff, B: 0xe0, A: 0xff},
		Stroke:     ggplot.Stroke{Color: color.Black, Thickness: 1},
		Padding:    4,
	}
	boxed.Text = "Boxed"
	m.Annotations = append(m.Annotations, boxed)
	return m
}

func layersModel(opts ...ggplot.PlotOption) *ggplot.PlotModel {
	m := ggplot.NewPlotModel("Annotation Layers", append(opts,
		ggplot.WithAxes(
			ggplot.NewLinearAxis(ggplot.AxisBottom, ggplot.WithRange(-20, 30), ggplot.WithGridlines(true, true)),
			ggplot.NewLinearAxis(ggplot.AxisLeft, ggplot.WithRange(-10, 10), ggplot.WithGridlines(true, true)),
		))...)
	polygons := []struct {
		layer ggplot.AnnotationLayer
		dx    float64
	}{
		{ggplot.LayerBelowAxes, -15},
		{ggplot.LayerBelowSeries, 0},
		{ggplot.LayerAboveSeries, 15},
	}
	for _, p := range polygons {
		a := &ggplot.PolygonAnnotation{
			Points: []ggplot.DataPoint{
				ggplot.Dp(p.dx+4, -2), ggplot.Dp(p.dx+8, -4), ggplot.Dp(p.dx+12, 7),
				ggplot.Dp(p.dx+5, 8), ggplot.Dp(p.dx+2, 5),
			},
			Fill: translucent(orange),
		}
		a.Layer = p.layer
		a.Text = "Layer = " + p.layer.String()
		m.Annotations = append(m.Annotations, a)
	}
	s := ggplot.NewFunctionSeries(math.Sin, -20, 30, 300)
	s.Title = "sin(x)"
	s.StrokeThickness = 3
	m.Series = append(m.Series, s)
	return m
}

func reversedModel(opts ...ggplot.PlotOption) *ggplot.PlotModel {
	m := ggplot.NewPlotModel("Annotations on reversed axes", append(opts,
		ggplot.WithAxes(
			ggplot.NewLinearAxis(ggplot.AxisBottom, ggplot.WithRange(-20, 80), ggplot.WithPositionRange(1, 0)),
			ggplot.NewLinearAxis(ggplot.AxisLeft, ggplot.WithRange(-10, 10), ggplot.WithPositionRange(1, 0)),
		))...)
	lineAnnotations(m)
	for _, a := range m.Annotations {
		la := a.(*ggplot.LineAnnotation)
		la.TextHAlign = ggplot.AlignLeft
	}
	return m
}
