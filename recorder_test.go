package ggplot

import (
	"image/color"
	"math"
)

// op is one call recorded by recorder.
type op struct {
	kind   string
	points []ScreenPoint
	rect   Rect
	fill   color.Color
	stroke Stroke
	text   string
	style  TextStyle
}

// recorder is a RenderContext that records every call. Text is measured
// as 0.6 em per rune and 1.2 em per line.
type recorder struct {
	ops   []op
	clips []Rect
	clip  *Rect
}

var _ RenderContext = (*recorder)(nil)

func (r *recorder) DrawLine(points []ScreenPoint, s Stroke) {
	r.ops = append(r.ops, op{kind: "line", points: append([]ScreenPoint(nil), points...), stroke: s})
}

func (r *recorder) DrawPolygon(points []ScreenPoint, fill color.Color, s Stroke) {
	r.ops = append(r.ops, op{kind: "polygon", points: append([]ScreenPoint(nil), points...), fill: fill, stroke: s})
}

func (r *recorder) DrawRectangle(rect Rect, fill color.Color, s Stroke) {
	r.ops = append(r.ops, op{kind: "rect", rect: rect, fill: fill, stroke: s})
}

func (r *recorder) DrawEllipse(rect Rect, fill color.Color, s Stroke) {
	r.ops = append(r.ops, op{kind: "ellipse", rect: rect, fill: fill, stroke: s})
}

func (r *recorder) DrawText(p ScreenPoint, s string, style TextStyle) {
	r.ops = append(r.ops, op{kind: "text", points: []ScreenPoint{p}, text: s, style: style})
}

func (r *recorder) MeasureText(s string, size float64) (float64, float64) {
	return 0.6 * size * float64(len([]rune(s))), 1.2 * size
}

func (r *recorder) SetClip(rect Rect) {
	r.clip = &rect
	r.clips = append(r.clips, rect)
}

func (r *recorder) ResetClip() { r.clip = nil }

func (r *recorder) count(kind string) int {
	n := 0
	for _, o := range r.ops {
		if o.kind == kind {
			n++
		}
	}
	return n
}

func (r *recorder) texts() []string {
	var out []string
	for _, o := range r.ops {
		if o.kind == "text" {
			out = append(out, o.text)
		}
	}
	return out
}

func (r *recorder) hasText(s string) bool {
	for _, t := range r.texts() {
		if t == s {
			return true
		}
	}
	return false
}

func near(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}
