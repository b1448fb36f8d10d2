package ggplot

import (
	"image/color"
	"math"
)

// ErrorColumnItem is one column value with its symmetric error.
type ErrorColumnItem struct {
	Value, Error float64
}

// ErrorColumnSeries draws one column per category with an error whisker.
// Several column series bound to the same category axis are placed side by
// side within each category.
type ErrorColumnSeries struct {
	SeriesBase

	Items []ErrorColumnItem

	// FillColor of the columns; nil picks the next palette color.
	FillColor       color.Color
	StrokeColor     color.Color
	StrokeThickness float64

	// BaseValue is where columns start on the value axis.
	BaseValue float64

	// ErrorWidth is the whisker cap width relative to the column width.
	ErrorWidth           float64
	ErrorStrokeThickness float64

	actualColor color.Color
	slot        int
}

var _ Series = (*ErrorColumnSeries)(nil)

// NewErrorColumnSeries returns a column series with black whiskers whose
// caps span 40% of the column.
func NewErrorColumnSeries(title string, items ...ErrorColumnItem) *ErrorColumnSeries {
	return &ErrorColumnSeries{
		SeriesBase:           SeriesBase{Title: title},
		Items:                items,
		StrokeColor:          colorBlack,
		StrokeThickness:      1,
		ErrorWidth:           0.4,
		ErrorStrokeThickness: 1,
	}
}

// DataBounds implements Series. The x extent covers the category indices.
func (s *ErrorColumnSeries) DataBounds() (xmin, xmax, ymin, ymax float64, ok bool) {
	if len(s.Items) == 0 {
		return 0, 0, 0, 0, false
	}
	ymin, ymax = s.BaseValue, s.BaseValue
	for _, it := range s.Items {
		if !isFinite(it.Value) {
			continue
		}
		e := math.Abs(it.Error)
		if !isFinite(e) {
			e = 0
		}
		ymin = math.Min(ymin, it.Value-e)
		ymax = math.Max(ymax, it.Value+e)
	}
	return 0, float64(len(s.Items) - 1), ymin, ymax, true
}

// LegendColor implements Series.
func (s *ErrorColumnSeries) LegendColor() color.Color {
	if s.FillColor != nil {
		return s.FillColor
	}
	if s.actualColor != nil {
		return s.actualColor
	}
	return colorGridMajor
}

func (s *ErrorColumnSeries) setDefaultColor(c color.Color) { s.actualColor = c }

// Render implements Series. Without a category axis each column is half a
// unit wide.
func (s *ErrorColumnSeries) Render(rc RenderContext, x, y Axis) {
	width, offset := 0.5, 0.0
	if ca, ok := x.(*CategoryAxis); ok {
		width, offset = ca.SlotWidth(), ca.SlotOffset(s.slot)
	}
	outline := Stroke{Color: s.StrokeColor, Thickness: s.StrokeThickness}
	whisker := Stroke{Color: s.StrokeColor, Thickness: s.ErrorStrokeThickness}
	fill := s.LegendColor()

	for i, it := range s.Items {
		if !isFinite(it.Value) {
			continue
		}
		c := float64(i) + offset
		p0 := transformPoint(x, y, DataPoint{X: c - width/2, Y: s.BaseValue})
		p1 := transformPoint(x, y, DataPoint{X: c + width/2, Y: it.Value})
		rc.DrawRectangle(NewRect(p0, p1), fill, outline)

		e := math.Abs(it.Error)
		if !(e > 0) || !isFinite(e) || !whisker.Visible() {
			continue
		}
		lo := transformPoint(x, y, DataPoint{X: c, Y: it.Value - e})
		hi := transformPoint(x, y, DataPoint{X: c, Y: it.Value + e})
		rc.DrawLine([]ScreenPoint{lo, hi}, whisker)

		half := width * s.ErrorWidth / 2
		for _, v := range []float64{it.Value - e, it.Value + e} {
			a := transformPoint(x, y, DataPoint{X: c - half, Y: v})
			b := transformPoint(x, y, DataPoint{X: c + half, Y: v})
			rc.DrawLine([]ScreenPoint{a, b}, whisker)
		}
	}
}
