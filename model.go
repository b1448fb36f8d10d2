package ggplot

import (
	"image/color"
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// PlotModel is a plot: axes, series and annotations plus the styling
// needed to render them into a rectangle.
//
// A PlotModel is not safe for concurrent use. Interaction and rendering
// are expected to happen on the same goroutine.
type PlotModel struct {
	Title    string
	Subtitle string

	Axes        []Axis
	Series      []Series
	Annotations []Annotation

	// PlotMargins inset the draw rectangle to obtain the plot area.
	PlotMargins Margins

	// Background fills the whole draw rectangle; nil leaves it untouched.
	Background color.Color
	// PlotAreaBackground fills the plot area; nil leaves it untouched.
	PlotAreaBackground color.Color
	PlotAreaBorder     Stroke

	TextColor     color.Color
	FontSize      float64
	TitleFontSize float64

	IsLegendVisible bool

	// Locale selects the number format of tick labels.
	Locale language.Tag

	plotArea Rect
}

// NewPlotModel returns an empty plot with default margins, a black border
// and a visible legend.
func NewPlotModel(title string, opts ...PlotOption) *PlotModel {
	m := &PlotModel{
		Title:           title,
		PlotMargins:     DefaultMargins(),
		PlotAreaBorder:  Stroke{Color: colorBlack, Thickness: 1},
		TextColor:       colorBlack,
		FontSize:        DefaultFontSize,
		TitleFontSize:   18,
		IsLegendVisible: true,
		Locale:          language.English,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// PlotArea returns the plot area computed by the last Render.
func (m *PlotModel) PlotArea() Rect { return m.plotArea }

// PanZoomAxes returns every axis as a pan/zoom target.
func (m *PlotModel) PanZoomAxes() []PanZoomable {
	out := make([]PanZoomable, 0, len(m.Axes))
	for _, a := range m.Axes {
		out = append(out, a)
	}
	return out
}

// ResetAllAxes discards interactive ranges on every axis.
func (m *PlotModel) ResetAllAxes() {
	for _, a := range m.Axes {
		a.Base().Reset()
	}
}

// AxisByKey returns the axis with the given key, or nil.
func (m *PlotModel) AxisByKey(key string) Axis {
	for _, a := range m.Axes {
		if a.Base().Key == key {
			return a
		}
	}
	return nil
}

// defaultAxis returns the keyed axis, or the first axis of the requested
// orientation.
func (m *PlotModel) defaultAxis(key string, horizontal bool) Axis {
	if key != "" {
		if a := m.AxisByKey(key); a != nil {
			return a
		}
	}
	for _, a := range m.Axes {
		if a.Base().IsHorizontal() == horizontal {
			return a
		}
	}
	return nil
}

func (m *PlotModel) categoryAxis() *CategoryAxis {
	for _, a := range m.Axes {
		if ca, ok := a.(*CategoryAxis); ok {
			return ca
		}
	}
	return nil
}

// SeriesAxes returns the axes a series is bound to. Column series bind
// their x to the first category axis unless keyed.
func (m *PlotModel) SeriesAxes(s Series) (x, y Axis) {
	b := s.Base()
	if _, ok := s.(*ErrorColumnSeries); ok && b.XAxisKey == "" {
		if ca := m.categoryAxis(); ca != nil {
			return ca, m.defaultAxis(b.YAxisKey, !ca.IsHorizontal())
		}
	}
	x = m.defaultAxis(b.XAxisKey, true)
	if x == nil {
		return nil, nil
	}
	return x, m.defaultAxis(b.YAxisKey, !x.Base().IsHorizontal())
}

// AnnotationAxes returns the axes an annotation is bound to.
func (m *PlotModel) AnnotationAxes(a Annotation) (x, y Axis) {
	b := a.Base()
	return m.defaultAxis(b.XAxisKey, true), m.defaultAxis(b.YAxisKey, false)
}

func (m *PlotModel) printer() *message.Printer {
	if m.Locale == language.Und {
		return defaultPrinter
	}
	return message.NewPrinter(m.Locale)
}

// Update prepares the model for rendering: it adds missing default axes,
// resolves automatic axis ranges from the series data, assigns palette
// colors and lays out column slots. Interactive ranges are kept.
func (m *PlotModel) Update() {
	m.ensureDefaultAxes()

	p := m.printer()
	type bounds struct {
		lo, hi float64
		ok     bool
	}
	ranges := make(map[Axis]*bounds, len(m.Axes))
	for _, a := range m.Axes {
		a.Base().printer = p
		ranges[a] = &bounds{lo: math.Inf(1), hi: math.Inf(-1)}
		if ca, ok := a.(*CategoryAxis); ok {
			ca.columns = 0
		}
	}
	include := func(a Axis, lo, hi float64) {
		r := ranges[a]
		if r == nil {
			return
		}
		r.lo, r.hi, r.ok = math.Min(r.lo, lo), math.Max(r.hi, hi), true
	}

	var uncolored []Series
	for _, s := range m.Series {
		x, y := m.SeriesAxes(s)
		if x == nil || y == nil {
			Logger().Warn("ggplot: series has no axes", "title", s.Base().Title)
			continue
		}
		if xmin, xmax, ymin, ymax, ok := s.DataBounds(); ok {
			if _, ok := x.(*LogarithmicAxis); ok {
				xmin = positiveMin(s, xmin, true)
			}
			if _, ok := y.(*LogarithmicAxis); ok {
				ymin = positiveMin(s, ymin, false)
			}
			include(x, xmin, xmax)
			include(y, ymin, ymax)
		}
		if needsColor(s) {
			uncolored = append(uncolored, s)
		}
		if cs, ok := s.(*ErrorColumnSeries); ok {
			if ca, ok := x.(*CategoryAxis); ok {
				cs.slot = ca.columns
				ca.columns++
			}
		}
	}
	for _, a := range m.Axes {
		r := ranges[a]
		updateAxis(a, r.lo, r.hi, r.ok)
	}
	for i, c := range DefaultPalette(len(uncolored)) {
		uncolored[i].setDefaultColor(c)
	}
}

// positiveMin returns the smallest positive coordinate of s, so that
// non-positive values do not corrupt a logarithmic range.
func positiveMin(s Series, v float64, useX bool) float64 {
	if v > 0 {
		return v
	}
	ls, ok := s.(interface{ points() []DataPoint })
	if !ok {
		return v
	}
	out := math.Inf(1)
	for _, p := range ls.points() {
		c := p.Y
		if useX {
			c = p.X
		}
		if c > 0 {
			out = math.Min(out, c)
		}
	}
	if math.IsInf(out, 1) {
		return v
	}
	return out
}

func needsColor(s Series) bool {
	switch s := s.(type) {
	case *LineSeries:
		return s.Color == nil
	case *FunctionSeries:
		return s.Color == nil
	case *ErrorColumnSeries:
		return s.FillColor == nil
	}
	return false
}

func (m *PlotModel) ensureDefaultAxes() {
	var hasH, hasV bool
	for _, a := range m.Axes {
		if a.Base().IsHorizontal() {
			hasH = true
		} else {
			hasV = true
		}
	}
	if !hasH {
		var columns bool
		for _, s := range m.Series {
			if _, ok := s.(*ErrorColumnSeries); ok {
				columns = true
			}
		}
		if columns && m.categoryAxis() == nil {
			m.Axes = append(m.Axes, NewCategoryAxis(AxisBottom, nil))
		} else {
			m.Axes = append(m.Axes, NewLinearAxis(AxisBottom))
		}
	}
	if !hasV {
		m.Axes = append(m.Axes, NewLinearAxis(AxisLeft))
	}
}
