package ggplot

import "math"

// ScreenPoint is a position in device space, in pixels, y-down.
type ScreenPoint struct {
	X, Y float64
}

// Sp is a convenience function to create a ScreenPoint.
func Sp(x, y float64) ScreenPoint {
	return ScreenPoint{X: x, Y: y}
}

// Add returns the point displaced by v.
func (p ScreenPoint) Add(v ScreenVector) ScreenPoint {
	return ScreenPoint{X: p.X + v.X, Y: p.Y + v.Y}
}

// Sub returns the vector from q to p.
func (p ScreenPoint) Sub(q ScreenPoint) ScreenVector {
	return ScreenVector{X: p.X - q.X, Y: p.Y - q.Y}
}

// Distance returns the distance between two points.
func (p ScreenPoint) Distance(q ScreenPoint) float64 {
	return p.Sub(q).Length()
}

// IsValid reports whether both coordinates are finite.
func (p ScreenPoint) IsValid() bool {
	return isFinite(p.X) && isFinite(p.Y)
}

// ScreenVector is a displacement in device space.
type ScreenVector struct {
	X, Y float64
}

// Length returns the length of the vector.
func (v ScreenVector) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

// Mul returns the vector scaled by s.
func (v ScreenVector) Mul(s float64) ScreenVector {
	return ScreenVector{X: v.X * s, Y: v.Y * s}
}

// Normalize returns a unit vector in the same direction.
// The zero vector is returned unchanged.
func (v ScreenVector) Normalize() ScreenVector {
	l := v.Length()
	if l == 0 {
		return v
	}
	return ScreenVector{X: v.X / l, Y: v.Y / l}
}

// IsZero reports whether both components are zero.
func (v ScreenVector) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// DataPoint is a position in data space.
type DataPoint struct {
	X, Y float64
}

// Dp is a convenience function to create a DataPoint.
func Dp(x, y float64) DataPoint {
	return DataPoint{X: x, Y: y}
}

// IsDefined reports whether neither coordinate is NaN.
func (p DataPoint) IsDefined() bool {
	return !math.IsNaN(p.X) && !math.IsNaN(p.Y)
}

// Rect is an axis-aligned rectangle in screen units.
type Rect struct {
	Left, Top, Width, Height float64
}

// NewRect returns the rectangle spanning two corner points in any order.
func NewRect(a, b ScreenPoint) Rect {
	return Rect{
		Left:   math.Min(a.X, b.X),
		Top:    math.Min(a.Y, b.Y),
		Width:  math.Abs(b.X - a.X),
		Height: math.Abs(b.Y - a.Y),
	}
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 { return r.Left + r.Width }

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Top + r.Height }

// Center returns the center point.
func (r Rect) Center() ScreenPoint {
	return ScreenPoint{X: r.Left + r.Width/2, Y: r.Top + r.Height/2}
}

// Empty reports whether the rectangle has no area. NaN sizes count as empty.
func (r Rect) Empty() bool {
	return !(r.Width > 0) || !(r.Height > 0)
}

// Contains reports whether p lies inside r, edges included.
func (r Rect) Contains(p ScreenPoint) bool {
	return p.X >= r.Left && p.X <= r.Right() && p.Y >= r.Top && p.Y <= r.Bottom()
}

// Inset shrinks r by m. Margins that consume the whole rectangle leave a
// zero-size rectangle rather than a negative one.
func (r Rect) Inset(m Margins) Rect {
	m = m.Clamped()
	out := Rect{
		Left:   r.Left + m.Left,
		Top:    r.Top + m.Top,
		Width:  r.Width - m.Left - m.Right,
		Height: r.Height - m.Top - m.Bottom,
	}
	if !(out.Width > 0) {
		out.Width = 0
	}
	if !(out.Height > 0) {
		out.Height = 0
	}
	return out
}

// Intersect returns the overlap of r and o, or a zero-size rectangle.
func (r Rect) Intersect(o Rect) Rect {
	left := math.Max(r.Left, o.Left)
	top := math.Max(r.Top, o.Top)
	right := math.Min(r.Right(), o.Right())
	bottom := math.Min(r.Bottom(), o.Bottom())
	if right < left {
		right = left
	}
	if bottom < top {
		bottom = top
	}
	return Rect{Left: left, Top: top, Width: right - left, Height: bottom - top}
}

// Margins are pixel insets applied to a draw rectangle to obtain the plot
// area.
type Margins struct {
	Left, Top, Right, Bottom float64
}

// UniformMargins returns margins of v on every side.
func UniformMargins(v float64) Margins {
	return Margins{Left: v, Top: v, Right: v, Bottom: v}
}

// DefaultMargins returns the margins used by NewPlotModel: room for tick
// labels on the left and bottom axes.
func DefaultMargins() Margins {
	return Margins{Left: 50, Top: 20, Right: 20, Bottom: 50}
}

// Clamped returns m with negative or NaN insets replaced by zero.
func (m Margins) Clamped() Margins {
	return Margins{
		Left:   nonNegative(m.Left),
		Top:    nonNegative(m.Top),
		Right:  nonNegative(m.Right),
		Bottom: nonNegative(m.Bottom),
	}
}

func nonNegative(v float64) float64 {
	if !(v > 0) || math.IsInf(v, 1) {
		return 0
	}
	return v
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
