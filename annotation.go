package ggplot

import (
	"image/color"
	"math"
)

// AnnotationLayer orders annotations relative to axes and series.
type AnnotationLayer int

const (
	LayerAboveSeries AnnotationLayer = iota
	LayerBelowSeries
	LayerBelowAxes
)

// String returns the layer name.
func (l AnnotationLayer) String() string {
	switch l {
	case LayerAboveSeries:
		return "above-series"
	case LayerBelowSeries:
		return "below-series"
	case LayerBelowAxes:
		return "below-axes"
	}
	return "unknown"
}

// DefaultFontSize is used by text without an explicit size.
const DefaultFontSize = 12

// Annotation is a shape or text placed in data space on top of, between or
// below the series.
type Annotation interface {
	Base() *AnnotationBase
	// Render draws the annotation. area is the plot area; rc is clipped
	// to it.
	Render(rc RenderContext, x, y Axis, area Rect)
}

// AnnotationBase holds the fields shared by every annotation.
type AnnotationBase struct {
	Layer     AnnotationLayer
	Text      string
	TextColor color.Color
	FontSize  float64

	XAxisKey, YAxisKey string
}

// Base returns a.
func (a *AnnotationBase) Base() *AnnotationBase { return a }

func (a *AnnotationBase) textStyle() TextStyle {
	style := TextStyle{Color: a.TextColor, Size: a.FontSize}
	if style.Color == nil {
		style.Color = colorBlack
	}
	if !(style.Size > 0) {
		style.Size = DefaultFontSize
	}
	return style
}

// LineAnnotationType selects how a LineAnnotation is defined.
type LineAnnotationType int

const (
	// LineLinearEquation draws y = Slope*x + Intercept.
	LineLinearEquation LineAnnotationType = iota
	// LineVertical draws x = X.
	LineVertical
	// LineHorizontal draws y = Y.
	LineHorizontal
)

// TextOrientation controls the rotation of annotation text.
type TextOrientation int

const (
	TextAlongLine TextOrientation = iota
	TextHorizontal
	TextVertical
)

// LineAnnotation draws an infinite or bounded straight line.
type LineAnnotation struct {
	AnnotationBase

	Type             LineAnnotationType
	Slope, Intercept float64
	X, Y             float64

	// MinimumX, MaximumX, MinimumY and MaximumY limit the line in data
	// space.
	MinimumX, MaximumX float64
	MinimumY, MaximumY float64

	// ClipByXAxis and ClipByYAxis restrict the line to the visible range
	// of the respective axis.
	ClipByXAxis, ClipByYAxis bool

	Color           color.Color
	StrokeThickness float64
	Dash            []float64
	LineJoin        LineJoin

	// TextPosition is the fraction along the visible line where the text
	// is anchored.
	TextPosition    float64
	TextMargin      float64
	TextHAlign      HorizontalAlignment
	TextVAlign      VerticalAlignment
	TextOrientation TextOrientation
}

var _ Annotation = (*LineAnnotation)(nil)

// NewLineAnnotation returns an unbounded dashed blue line of the given type.
func NewLineAnnotation(typ LineAnnotationType) *LineAnnotation {
	return &LineAnnotation{
		Type:            typ,
		MinimumX:        math.Inf(-1),
		MaximumX:        math.Inf(1),
		MinimumY:        math.Inf(-1),
		MaximumY:        math.Inf(1),
		ClipByXAxis:     true,
		ClipByYAxis:     true,
		Color:           color.RGBA{B: 0xff, A: 0xff},
		StrokeThickness: 1,
		Dash:            []float64{4, 3},
		TextPosition:    1,
		TextMargin:      12,
		TextHAlign:      AlignRight,
		TextVAlign:      AlignBottom,
	}
}

// limits returns the data range the line may occupy along one axis.
func limits(a Axis, lo, hi float64, clip bool) (float64, float64) {
	b := a.Base()
	if clip || math.IsInf(lo, 0) || math.IsNaN(lo) {
		lo = math.Max(lo, b.DataMin())
	}
	if clip || math.IsInf(hi, 0) || math.IsNaN(hi) {
		hi = math.Min(hi, b.DataMax())
	}
	return lo, hi
}

// Points returns the visible part of the line in data space.
func (a *LineAnnotation) Points(x, y Axis) []DataPoint {
	x0, x1 := limits(x, a.MinimumX, a.MaximumX, a.ClipByXAxis)
	y0, y1 := limits(y, a.MinimumY, a.MaximumY, a.ClipByYAxis)
	if !(x0 <= x1) || !(y0 <= y1) {
		return nil
	}
	switch a.Type {
	case LineVertical:
		if a.X < x0 || a.X > x1 {
			return nil
		}
		return []DataPoint{{X: a.X, Y: y0}, {X: a.X, Y: y1}}
	case LineHorizontal:
		if a.Y < y0 || a.Y > y1 {
			return nil
		}
		return []DataPoint{{X: x0, Y: a.Y}, {X: x1, Y: a.Y}}
	}

	// Curved on logarithmic axes; sample it.
	n := 2
	if _, ok := x.(*LogarithmicAxis); ok {
		n = 101
	}
	if _, ok := y.(*LogarithmicAxis); ok {
		n = 101
	}
	var pts []DataPoint
	for i := 0; i < n; i++ {
		t := float64(i) / float64(n-1)
		xv := x0 + t*(x1-x0)
		if n > 2 {
			xv = x.Base().mapping.inverse(
				x.Base().mapping.forward(x0)*(1-t) + x.Base().mapping.forward(x1)*t)
		}
		pts = append(pts, DataPoint{X: xv, Y: a.Slope*xv + a.Intercept})
	}
	return clipY(pts, y0, y1)
}

// clipY cuts a polyline to the band y0 <= y <= y1, assuming straight
// segments in data space.
func clipY(pts []DataPoint, y0, y1 float64) []DataPoint {
	var out []DataPoint
	for i := 0; i+1 < len(pts); i++ {
		p, q, ok := clipSegmentY(pts[i], pts[i+1], y0, y1)
		if !ok {
			continue
		}
		appendPoint(&out, p)
		appendPoint(&out, q)
	}
	if len(out) < 2 {
		return nil
	}
	return out
}

func clipSegmentY(p, q DataPoint, y0, y1 float64) (DataPoint, DataPoint, bool) {
	if math.Max(p.Y, q.Y) < y0 || math.Min(p.Y, q.Y) > y1 {
		return p, q, false
	}
	at := func(yc float64) DataPoint {
		t := (yc - p.Y) / (q.Y - p.Y)
		return DataPoint{X: p.X + t*(q.X-p.X), Y: yc}
	}
	a, b := p, q
	if a.Y < y0 {
		a = at(y0)
	} else if a.Y > y1 {
		a = at(y1)
	}
	if b.Y < y0 {
		b = at(y0)
	} else if b.Y > y1 {
		b = at(y1)
	}
	return a, b, true
}

func appendPoint(out *[]DataPoint, p DataPoint) {
	if n := len(*out); n > 0 && (*out)[n-1] == p {
		return
	}
	*out = append(*out, p)
}

// Render implements Annotation.
func (a *LineAnnotation) Render(rc RenderContext, x, y Axis, _ Rect) {
	pts := a.Points(x, y)
	if len(pts) < 2 {
		return
	}
	screen := make([]ScreenPoint, 0, len(pts))
	for _, p := range pts {
		if sp := transformPoint(x, y, p); sp.IsValid() {
			screen = append(screen, sp)
		}
	}
	if len(screen) < 2 {
		return
	}
	rc.DrawLine(screen, Stroke{
		Color:     a.Color,
		Thickness: a.StrokeThickness,
		Dash:      a.Dash,
		Join:      a.LineJoin,
	})
	if a.Text == "" {
		return
	}
	p, dir := pointAlong(screen, a.TextPosition)
	angle := math.Atan2(dir.Y, dir.X) * 180 / math.Pi
	if angle > 90 {
		angle -= 180
	} else if angle <= -90 {
		angle += 180
	}
	switch a.TextOrientation {
	case TextHorizontal:
		angle = 0
	case TextVertical:
		angle = -90
	}
	// keep the text inside the line's extent
	if a.TextHAlign == AlignRight {
		p = p.Add(dir.Mul(-a.TextMargin))
	} else if a.TextHAlign == AlignLeft {
		p = p.Add(dir.Mul(a.TextMargin))
	}
	style := a.textStyle()
	style.Rotation = angle
	style.HAlign = a.TextHAlign
	style.VAlign = a.TextVAlign
	rc.DrawText(p, a.Text, style)
}

// pointAlong returns the point at fraction t of the polyline's length and
// the unit direction there, oriented left to right.
func pointAlong(pts []ScreenPoint, t float64) (ScreenPoint, ScreenVector) {
	t = math.Max(0, math.Min(1, t))
	total := 0.0
	for i := 1; i < len(pts); i++ {
		total += pts[i].Distance(pts[i-1])
	}
	first, last := pts[0], pts[len(pts)-1]
	reversed := last.X < first.X || (last.X == first.X && last.Y > first.Y)
	if reversed {
		t = 1 - t
	}
	target := t * total
	for i := 1; i < len(pts); i++ {
		seg := pts[i].Distance(pts[i-1])
		if target <= seg || i == len(pts)-1 {
			dir := pts[i].Sub(pts[i-1]).Normalize()
			if seg > 0 {
				f := math.Min(target/seg, 1)
				p := pts[i-1].Add(pts[i].Sub(pts[i-1]).Mul(f))
				if reversed {
					dir = dir.Mul(-1)
				}
				return p, dir
			}
		}
		target -= seg
	}
	return last, ScreenVector{X: 1}
}

// RectangleAnnotation fills a data-space rectangle. Infinite sides extend
// to the ends of the axes.
type RectangleAnnotation struct {
	AnnotationBase

	MinimumX, MaximumX float64
	MinimumY, MaximumY float64

	Fill   color.Color
	Stroke Stroke
}

var _ Annotation = (*RectangleAnnotation)(nil)

// NewRectangleAnnotation returns an unbounded translucent sky blue band.
func NewRectangleAnnotation() *RectangleAnnotation {
	return &RectangleAnnotation{
		MinimumX: math.Inf(-1),
		MaximumX: math.Inf(1),
		MinimumY: math.Inf(-1),
		MaximumY: math.Inf(1),
		Fill:     color.NRGBA{R: 0x87, G: 0xce, B: 0xeb, A: 0x80},
	}
}

// Render implements Annotation.
func (a *RectangleAnnotation) Render(rc RenderContext, x, y Axis, _ Rect) {
	x0, x1 := limits(x, a.MinimumX, a.MaximumX, false)
	y0, y1 := limits(y, a.MinimumY, a.MaximumY, false)
	r := NewRect(transformPoint(x, y, Dp(x0, y0)), transformPoint(x, y, Dp(x1, y1)))
	if !isFinite(r.Left) || !isFinite(r.Top) {
		return
	}
	rc.DrawRectangle(r, a.Fill, a.Stroke)
	if a.Text != "" {
		rc.DrawText(r.Center(), a.Text, a.textStyle())
	}
}

// PolygonAnnotation fills a closed data-space polygon.
type PolygonAnnotation struct {
	AnnotationBase

	Points []DataPoint
	Fill   color.Color
	Stroke Stroke
}

var _ Annotation = (*PolygonAnnotation)(nil)

// Render implements Annotation. The text is centered on the mean of the
// vertices.
func (a *PolygonAnnotation) Render(rc RenderContext, x, y Axis, _ Rect) {
	var pts []ScreenPoint
	var cx, cy float64
	for _, p := range a.Points {
		if !p.IsDefined() {
			continue
		}
		sp := transformPoint(x, y, p)
		pts = append(pts, sp)
		cx += sp.X
		cy += sp.Y
	}
	if len(pts) < 3 {
		return
	}
	rc.DrawPolygon(pts, a.Fill, a.Stroke)
	if a.Text != "" {
		n := float64(len(pts))
		rc.DrawText(Sp(cx/n, cy/n), a.Text, a.textStyle())
	}
}

// TextAnnotation places text at a data position.
type TextAnnotation struct {
	AnnotationBase

	Position DataPoint
	// Offset displaces the text in screen units.
	Offset   ScreenVector
	Rotation float64
	HAlign   HorizontalAlignment
	VAlign   VerticalAlignment

	// Background and Stroke box the text when set.
	Background color.Color
	Stroke     Stroke
	Padding    float64
}

var _ Annotation = (*TextAnnotation)(nil)

// Render implements Annotation.
func (a *TextAnnotation) Render(rc RenderContext, x, y Axis, _ Rect) {
	if a.Text == "" || !a.Position.IsDefined() {
		return
	}
	p := transformPoint(x, y, a.Position).Add(a.Offset)
	style := a.textStyle()
	style.Rotation = a.Rotation
	style.HAlign = a.HAlign
	style.VAlign = a.VAlign

	if (a.Background != nil || a.Stroke.Visible()) && a.Rotation == 0 {
		w, h := rc.MeasureText(a.Text, style.Size)
		dx, dy := TextOffset(w, h, a.HAlign, a.VAlign)
		pad := nonNegative(a.Padding)
		box := Rect{
			Left:   p.X + dx - pad,
			Top:    p.Y + dy - pad,
			Width:  w + 2*pad,
			Height: h + 2*pad,
		}
		rc.DrawRectangle(box, a.Background, a.Stroke)
	}
	rc.DrawText(p, a.Text, style)
}

// ArrowAnnotation draws an arrow ending at EndPoint. The tail is StartPoint,
// or, when StartPoint is undefined, EndPoint minus ArrowDirection in screen
// units.
type ArrowAnnotation struct {
	AnnotationBase

	StartPoint     DataPoint
	EndPoint       DataPoint
	ArrowDirection ScreenVector

	Color           color.Color
	StrokeThickness float64
	LineJoin        LineJoin

	// HeadLength and HeadWidth are multiples of StrokeThickness.
	HeadLength, HeadWidth float64
	// Veeness pulls the back of the head towards the tip.
	Veeness float64
}

var _ Annotation = (*ArrowAnnotation)(nil)

// NewArrowAnnotation returns a blue arrow from start to end.
func NewArrowAnnotation(start, end DataPoint) *ArrowAnnotation {
	return &ArrowAnnotation{
		StartPoint:      start,
		EndPoint:        end,
		Color:           color.RGBA{B: 0xff, A: 0xff},
		StrokeThickness: 2,
		LineJoin:        LineJoinMiter,
		HeadLength:      10,
		HeadWidth:       3,
	}
}

// Geometry returns the shaft and head polygon in screen space.
func (a *ArrowAnnotation) Geometry(x, y Axis) (shaft [2]ScreenPoint, head []ScreenPoint, ok bool) {
	if !a.EndPoint.IsDefined() {
		return shaft, nil, false
	}
	end := transformPoint(x, y, a.EndPoint)
	var start ScreenPoint
	if a.StartPoint.IsDefined() {
		start = transformPoint(x, y, a.StartPoint)
	} else {
		start = end.Add(a.ArrowDirection.Mul(-1))
	}
	d := end.Sub(start).Normalize()
	if d.IsZero() || !start.IsValid() || !end.IsValid() {
		return shaft, nil, false
	}
	n := ScreenVector{X: d.Y, Y: -d.X}
	t := a.StrokeThickness
	p1 := end.Add(d.Mul(-a.HeadLength * t))
	p2 := p1.Add(n.Mul(a.HeadWidth * t))
	p3 := p1.Add(n.Mul(-a.HeadWidth * t))
	p4 := p1.Add(d.Mul(a.Veeness * t))
	return [2]ScreenPoint{start, p4}, []ScreenPoint{p3, end, p2, p4}, true
}

// Render implements Annotation. The text sits at the tail, on the side
// away from the head.
func (a *ArrowAnnotation) Render(rc RenderContext, x, y Axis, _ Rect) {
	shaft, head, ok := a.Geometry(x, y)
	if !ok {
		return
	}
	rc.DrawLine(shaft[:], Stroke{Color: a.Color, Thickness: a.StrokeThickness, Join: a.LineJoin})
	rc.DrawPolygon(head, a.Color, Stroke{})
	if a.Text == "" {
		return
	}
	d := head[1].Sub(shaft[0])
	style := a.textStyle()
	style.HAlign, style.VAlign = AlignRight, AlignBottom
	if d.X < 0 {
		style.HAlign = AlignLeft
	}
	if d.Y < 0 {
		style.VAlign = AlignTop
	}
	rc.DrawText(shaft[0], a.Text, style)
}
