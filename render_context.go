package ggplot

import "image/color"

// LineJoin specifies the shape of polyline joins.
type LineJoin int

const (
	// LineJoinMiter specifies a sharp (mitered) join.
	LineJoinMiter LineJoin = iota
	// LineJoinRound specifies a rounded join.
	LineJoinRound
	// LineJoinBevel specifies a beveled join.
	LineJoinBevel
)

// Stroke describes how a line is drawn. A nil Color or a non-positive
// Thickness disables the stroke.
type Stroke struct {
	Color     color.Color
	Thickness float64
	Dash      []float64
	Join      LineJoin
}

// Visible reports whether the stroke draws anything.
func (s Stroke) Visible() bool {
	return s.Color != nil && s.Thickness > 0
}

// HorizontalAlignment positions text horizontally relative to its anchor.
type HorizontalAlignment int

const (
	AlignCenter HorizontalAlignment = iota
	AlignLeft
	AlignRight
)

// VerticalAlignment positions text vertically relative to its anchor.
type VerticalAlignment int

const (
	AlignMiddle VerticalAlignment = iota
	AlignTop
	AlignBottom
)

// TextStyle describes how DrawText renders a string.
type TextStyle struct {
	Color color.Color
	// Size is the font size in screen units.
	Size float64
	// Rotation in degrees, clockwise on screen, about the anchor.
	Rotation float64
	HAlign   HorizontalAlignment
	VAlign   VerticalAlignment
}

// RenderContext is the device a PlotModel draws into. Coordinates are
// screen coordinates of the rectangle passed to PlotModel.Render; the
// device applies its own pixel density and origin convention.
//
// A nil fill color means no fill; an invisible Stroke means no outline.
type RenderContext interface {
	DrawLine(points []ScreenPoint, stroke Stroke)
	DrawPolygon(points []ScreenPoint, fill color.Color, stroke Stroke)
	DrawRectangle(r Rect, fill color.Color, stroke Stroke)
	DrawEllipse(r Rect, fill color.Color, stroke Stroke)
	DrawText(p ScreenPoint, s string, style TextStyle)
	// MeasureText returns the advance width and line height of s.
	MeasureText(s string, size float64) (width, height float64)
	// SetClip restricts drawing to r, replacing any previous clip.
	SetClip(r Rect)
	ResetClip()
}

// TextOffset returns the offset from the anchor to the top-left corner of a
// w×h text box, in the text's own (unrotated) frame.
func TextOffset(w, h float64, ha HorizontalAlignment, va VerticalAlignment) (dx, dy float64) {
	switch ha {
	case AlignLeft:
		dx = 0
	case AlignRight:
		dx = -w
	default:
		dx = -w / 2
	}
	switch va {
	case AlignTop:
		dy = 0
	case AlignBottom:
		dy = -h
	default:
		dy = -h / 2
	}
	return dx, dy
}
