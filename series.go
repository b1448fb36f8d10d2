package ggplot

import (
	"image/color"
	"math"
)

// Series is plotted data bound to a pair of axes. LineSeries,
// FunctionSeries and ErrorColumnSeries implement it.
type Series interface {
	Base() *SeriesBase
	// DataBounds returns the extent of the series' data.
	DataBounds() (xmin, xmax, ymin, ymax float64, ok bool)
	// Render draws the series. The model has already clipped rc to the
	// plot area.
	Render(rc RenderContext, x, y Axis)
	// LegendColor is the swatch color shown in the legend.
	LegendColor() color.Color

	setDefaultColor(c color.Color)
}

// SeriesBase holds the fields shared by every series.
type SeriesBase struct {
	// Title appears in the legend. Untitled series are not listed.
	Title string

	// XAxisKey and YAxisKey bind the series to keyed axes. Empty keys bind
	// to the default horizontal and vertical axes.
	XAxisKey, YAxisKey string
}

// Base returns s.
func (s *SeriesBase) Base() *SeriesBase { return s }

// transformPoint maps a data point through the axis pair, honouring
// transposed axes (x bound to a vertical axis).
func transformPoint(x, y Axis, p DataPoint) ScreenPoint {
	if x.Base().IsHorizontal() {
		return ScreenPoint{X: x.Transform(p.X), Y: y.Transform(p.Y)}
	}
	return ScreenPoint{X: y.Transform(p.Y), Y: x.Transform(p.X)}
}

// inverseTransformPoint maps a screen point back into data space.
func inverseTransformPoint(x, y Axis, p ScreenPoint) DataPoint {
	if x.Base().IsHorizontal() {
		return DataPoint{X: x.InverseTransform(p.X), Y: y.InverseTransform(p.Y)}
	}
	return DataPoint{X: x.InverseTransform(p.Y), Y: y.InverseTransform(p.X)}
}

// LineSeries connects data points with straight segments. Points with a
// NaN coordinate break the line.
type LineSeries struct {
	SeriesBase

	Points []DataPoint

	// Color of the line; nil picks the next palette color.
	Color           color.Color
	StrokeThickness float64
	LineJoin        LineJoin
	Dash            []float64

	// MarkerSize draws a circle of this radius at every point when > 0.
	MarkerSize float64

	actualColor color.Color
}

var _ Series = (*LineSeries)(nil)

// NewLineSeries returns a line series with a 2 unit round-joined stroke.
func NewLineSeries(title string, points ...DataPoint) *LineSeries {
	return &LineSeries{
		SeriesBase:      SeriesBase{Title: title},
		Points:          points,
		StrokeThickness: 2,
		LineJoin:        LineJoinRound,
	}
}

// DataBounds implements Series.
func (s *LineSeries) DataBounds() (xmin, xmax, ymin, ymax float64, ok bool) {
	return pointBounds(s.Points)
}

// LegendColor implements Series.
func (s *LineSeries) LegendColor() color.Color {
	if s.Color != nil {
		return s.Color
	}
	if s.actualColor != nil {
		return s.actualColor
	}
	return colorBlack
}

func (s *LineSeries) setDefaultColor(c color.Color) { s.actualColor = c }

// Render implements Series.
func (s *LineSeries) Render(rc RenderContext, x, y Axis) {
	stroke := Stroke{
		Color:     s.LegendColor(),
		Thickness: s.StrokeThickness,
		Dash:      s.Dash,
		Join:      s.LineJoin,
	}
	var segment []ScreenPoint
	flush := func() {
		if len(segment) > 1 && stroke.Visible() {
			rc.DrawLine(segment, stroke)
		}
		segment = nil
	}
	for _, p := range s.Points {
		if !p.IsDefined() {
			flush()
			continue
		}
		sp := transformPoint(x, y, p)
		if !sp.IsValid() {
			flush()
			continue
		}
		segment = append(segment, sp)
	}
	flush()

	if s.MarkerSize <= 0 {
		return
	}
	r := s.MarkerSize
	for _, p := range s.Points {
		if !p.IsDefined() {
			continue
		}
		sp := transformPoint(x, y, p)
		if !sp.IsValid() {
			continue
		}
		rc.DrawEllipse(Rect{Left: sp.X - r, Top: sp.Y - r, Width: 2 * r, Height: 2 * r}, stroke.Color, Stroke{})
	}
}

// FunctionSeries is a line series sampled from a function.
type FunctionSeries struct {
	LineSeries

	F      func(float64) float64
	X0, X1 float64
	N      int
}

// NewFunctionSeries samples f at n evenly spaced points over [x0, x1].
// Non-finite results become gaps.
func NewFunctionSeries(f func(float64) float64, x0, x1 float64, n int) *FunctionSeries {
	s := &FunctionSeries{
		LineSeries: *NewLineSeries(""),
		F:          f,
		X0:         x0,
		X1:         x1,
		N:          max(n, 2),
	}
	s.Resample()
	return s
}

// Resample recomputes Points from F. N below 2 samples the two ends.
func (s *FunctionSeries) Resample() {
	n := max(s.N, 2)
	s.Points = make([]DataPoint, 0, n)
	if s.F == nil {
		return
	}
	dx := (s.X1 - s.X0) / float64(n-1)
	for i := range n {
		x := s.X0 + dx*float64(i)
		v := s.F(x)
		if !isFinite(v) {
			v = math.NaN()
		}
		s.Points = append(s.Points, DataPoint{X: x, Y: v})
	}
}

func pointBounds(points []DataPoint) (xmin, xmax, ymin, ymax float64, ok bool) {
	xmin, ymin = math.Inf(1), math.Inf(1)
	xmax, ymax = math.Inf(-1), math.Inf(-1)
	for _, p := range points {
		if !isFinite(p.X) || !isFinite(p.Y) {
			continue
		}
		xmin, xmax = math.Min(xmin, p.X), math.Max(xmax, p.X)
		ymin, ymax = math.Min(ymin, p.Y), math.Max(ymax, p.Y)
		ok = true
	}
	return xmin, xmax, ymin, ymax, ok
}

func (s *LineSeries) points() []DataPoint { return s.Points }
