package ggplot

import (
	"image/color"
	"math"

	"golang.org/x/text/message"
)

// AxisPosition identifies where an axis is drawn relative to the plot area.
type AxisPosition int

const (
	AxisBottom AxisPosition = iota
	AxisLeft
	AxisTop
	AxisRight
)

// IsHorizontal reports whether the axis runs along the x direction.
func (p AxisPosition) IsHorizontal() bool {
	return p == AxisBottom || p == AxisTop
}

// String returns the position name.
func (p AxisPosition) String() string {
	switch p {
	case AxisBottom:
		return "bottom"
	case AxisLeft:
		return "left"
	case AxisTop:
		return "top"
	case AxisRight:
		return "right"
	}
	return "unknown"
}

// MinimumSpan is the narrowest data interval a zoom can produce, in data
// units. Runaway pinch gestures are clamped to it.
const MinimumSpan = 1e-6

// PanZoomable is the capability the interaction controller drives. Every
// axis variant implements it.
type PanZoomable interface {
	// Pan translates the visible data interval so that content follows the
	// pointer moving from previous to current. The axis uses the component
	// along its own orientation.
	Pan(previous, current ScreenPoint) error

	// ZoomAt rescales the visible data interval by factor about the data
	// value under anchor, keeping that value at the same screen position.
	// factor > 1 zooms in.
	ZoomAt(factor float64, anchor ScreenPoint) error
}

// Axis is one dimension of a plot: a mapping between a data interval and a
// screen interval. LinearAxis, LogarithmicAxis and CategoryAxis implement
// it.
type Axis interface {
	PanZoomable

	// Base returns the shared axis state.
	Base() *AxisBase

	// Transform maps a data value to a screen coordinate.
	Transform(v float64) float64

	// InverseTransform maps a screen coordinate to a data value.
	InverseTransform(s float64) float64

	// Ticks returns the major and minor tick values inside the current
	// data interval, in increasing order.
	Ticks() (major, minor []float64)

	// TickLabels formats the given major tick values.
	TickLabels(major []float64) []string

	// autoRange returns the range used when the axis has no explicit or
	// interactive range, given the bounds of the data bound to it.
	autoRange(lo, hi float64, ok bool) (float64, float64)
}

// mapping converts data values into the space where the axis is linear.
type mapping interface {
	forward(v float64) float64
	inverse(t float64) float64
	valid(v float64) bool
}

type linearMapping struct{}

func (linearMapping) forward(v float64) float64 { return v }
func (linearMapping) inverse(t float64) float64 { return t }
func (linearMapping) valid(v float64) bool      { return isFinite(v) }

type logMapping struct{}

func (logMapping) forward(v float64) float64 {
	if v <= 0 {
		return math.Inf(-1)
	}
	return math.Log(v)
}
func (logMapping) inverse(t float64) float64 { return math.Exp(t) }
func (logMapping) valid(v float64) bool      { return v > 0 && !math.IsInf(v, 1) }

// AxisBase holds the state shared by every axis variant. Exported fields
// are configuration; the data and screen intervals are reached through
// methods.
type AxisBase struct {
	Position AxisPosition
	// Key binds series and annotations to this axis. Empty keys bind to
	// the first axis of matching orientation.
	Key   string
	Title string

	// Minimum and Maximum fix the range; NaN means automatic.
	Minimum, Maximum float64

	// AbsoluteMinimum and AbsoluteMaximum bound panning and zooming.
	AbsoluteMinimum, AbsoluteMaximum float64

	// MinimumPadding and MaximumPadding widen an automatic range by a
	// fraction of the data span.
	MinimumPadding, MaximumPadding float64

	// StartPosition and EndPosition place the axis within the plot area as
	// fractions of its extent. Reversed axes use StartPosition > EndPosition.
	StartPosition, EndPosition float64

	// MajorStep and MinorStep fix the tick spacing; 0 means automatic.
	MajorStep, MinorStep float64

	// IntervalLength is the approximate screen distance between major
	// ticks used by automatic tick selection.
	IntervalLength float64

	MajorGridlines bool
	MinorGridlines bool

	TextColor color.Color
	LineColor color.Color

	DisablePan  bool
	DisableZoom bool

	// LabelFormatter overrides the default locale-aware tick labels.
	LabelFormatter func(float64) string

	mapping          mapping
	dataMin, dataMax float64
	baseMin, baseMax float64
	viewMin, viewMax float64

	screenStart, screenEnd float64

	printer *message.Printer
}

func (b *AxisBase) init(pos AxisPosition, m mapping, defMin, defMax float64, opts []AxisOption) {
	*b = AxisBase{
		Position:        pos,
		Minimum:         math.NaN(),
		Maximum:         math.NaN(),
		AbsoluteMinimum: math.Inf(-1),
		AbsoluteMaximum: math.Inf(1),
		MinimumPadding:  0.01,
		MaximumPadding:  0.01,
		StartPosition:   0,
		EndPosition:     1,
		IntervalLength:  60,
		mapping:         m,
		viewMin:         math.NaN(),
		viewMax:         math.NaN(),
	}
	for _, opt := range opts {
		opt(b)
	}
	lo, hi := defMin, defMax
	if !math.IsNaN(b.Minimum) {
		lo = b.Minimum
	}
	if !math.IsNaN(b.Maximum) {
		hi = b.Maximum
	}
	b.dataMin, b.dataMax = defMin, defMax
	b.setActual(lo, hi)
}

// Base returns b. It lets the Axis interface reach the shared state of any
// variant.
func (b *AxisBase) Base() *AxisBase { return b }

// DataMin returns the lower bound of the visible data interval.
func (b *AxisBase) DataMin() float64 { return b.dataMin }

// DataMax returns the upper bound of the visible data interval.
func (b *AxisBase) DataMax() float64 { return b.dataMax }

// ScreenStart returns the screen coordinate that DataMin maps to.
func (b *AxisBase) ScreenStart() float64 { return b.screenStart }

// ScreenEnd returns the screen coordinate that DataMax maps to.
func (b *AxisBase) ScreenEnd() float64 { return b.screenEnd }

// IsHorizontal reports whether the axis runs along x.
func (b *AxisBase) IsHorizontal() bool { return b.Position.IsHorizontal() }

// IsDegenerate reports whether the screen interval has zero length, in
// which case the transform is not invertible.
func (b *AxisBase) IsDegenerate() bool {
	return b.screenStart == b.screenEnd || !isFinite(b.screenEnd-b.screenStart)
}

// IsPanEnabled reports whether Pan moves the axis.
func (b *AxisBase) IsPanEnabled() bool { return !b.DisablePan }

// IsZoomEnabled reports whether ZoomAt rescales the axis.
func (b *AxisBase) IsZoomEnabled() bool { return !b.DisableZoom }

// IsZoomedOrPanned reports whether an interactive range overrides the
// configured or automatic one.
func (b *AxisBase) IsZoomedOrPanned() bool {
	return !math.IsNaN(b.viewMin)
}

// SetScreenRange fixes the screen interval for the current render pass.
func (b *AxisBase) SetScreenRange(start, end float64) {
	b.screenStart, b.screenEnd = start, end
}

// Layout positions the axis inside the plot area according to its
// position and StartPosition/EndPosition fractions. Vertical axes grow
// upwards from the bottom edge.
func (b *AxisBase) Layout(area Rect) {
	if b.IsHorizontal() {
		b.SetScreenRange(
			area.Left+b.StartPosition*area.Width,
			area.Left+b.EndPosition*area.Width,
		)
		return
	}
	b.SetScreenRange(
		area.Bottom()-b.StartPosition*area.Height,
		area.Bottom()-b.EndPosition*area.Height,
	)
}

// Scale returns screen units per unit of the axis' linear space (data
// units for linear axes, natural log units for logarithmic axes).
func (b *AxisBase) Scale() float64 {
	t0, t1 := b.span()
	return (b.screenEnd - b.screenStart) / (t1 - t0)
}

func (b *AxisBase) span() (float64, float64) {
	return b.mapping.forward(b.dataMin), b.mapping.forward(b.dataMax)
}

// Transform maps a data value to a screen coordinate.
func (b *AxisBase) Transform(v float64) float64 {
	t0, t1 := b.span()
	return b.screenStart + (b.mapping.forward(v)-t0)/(t1-t0)*(b.screenEnd-b.screenStart)
}

// InverseTransform maps a screen coordinate to a data value. A degenerate
// axis maps everything to DataMin.
func (b *AxisBase) InverseTransform(s float64) float64 {
	if b.IsDegenerate() {
		return b.dataMin
	}
	return b.mapping.inverse(b.toLinear(s))
}

func (b *AxisBase) toLinear(s float64) float64 {
	t0, t1 := b.span()
	return t0 + (s-b.screenStart)/(b.screenEnd-b.screenStart)*(t1-t0)
}

// Contains reports whether v lies inside the visible data interval.
func (b *AxisBase) Contains(v float64) bool {
	return v >= b.dataMin && v <= b.dataMax
}

func (b *AxisBase) component(p ScreenPoint) float64 {
	if b.IsHorizontal() {
		return p.X
	}
	return p.Y
}

// Pan implements PanZoomable.
func (b *AxisBase) Pan(previous, current ScreenPoint) error {
	return b.PanBy(b.component(current) - b.component(previous))
}

// PanBy shifts the visible interval by a screen displacement along the
// axis. Both ends move by -delta/Scale so content follows the pointer.
func (b *AxisBase) PanBy(delta float64) error {
	if b.DisablePan || delta == 0 || !isFinite(delta) {
		return nil
	}
	if b.IsDegenerate() {
		Logger().Debug("ggplot: pan on degenerate axis ignored", "position", b.Position)
		return ErrDegenerateAxis
	}
	t0, t1 := b.span()
	dt := delta / b.Scale()
	n0, n1 := t0-dt, t1-dt

	a0, a1 := b.absoluteSpan()
	if n0 < a0 {
		n1 += a0 - n0
		n0 = a0
	}
	if n1 > a1 {
		n0 -= n1 - a1
		n1 = a1
	}
	n0 = math.Max(n0, a0)

	b.setView(b.mapping.inverse(n0), b.mapping.inverse(n1))
	return nil
}

// ZoomAt implements PanZoomable.
func (b *AxisBase) ZoomAt(factor float64, anchor ScreenPoint) error {
	return b.ZoomAtScreen(factor, b.component(anchor))
}

// ZoomAtScreen rescales the visible interval by factor about the data value
// at screen coordinate s. Non-positive and non-finite factors are rejected;
// results narrower than MinimumSpan are clamped to it.
func (b *AxisBase) ZoomAtScreen(factor, s float64) error {
	if b.DisableZoom || factor == 1 {
		return nil
	}
	if !(factor > 0) || math.IsInf(factor, 1) {
		Logger().Debug("ggplot: zoom factor rejected", "factor", factor)
		return ErrInvalidZoomFactor
	}
	if b.IsDegenerate() {
		Logger().Debug("ggplot: zoom on degenerate axis ignored", "position", b.Position)
		return ErrDegenerateAxis
	}

	t0, t1 := b.span()
	at := b.toLinear(s)
	n0 := at - (at-t0)/factor
	n1 := at + (t1-at)/factor

	d0, d1 := b.mapping.inverse(n0), b.mapping.inverse(n1)
	if !(d1-d0 >= MinimumSpan) {
		// keep the anchor at the same fraction of the interval
		a := b.mapping.inverse(at)
		p := (at - t0) / (t1 - t0)
		d0 = a - p*MinimumSpan
		d1 = d0 + MinimumSpan
		n0, n1 = b.mapping.forward(d0), b.mapping.forward(d1)
	}

	a0, a1 := b.absoluteSpan()
	n0 = math.Max(n0, a0)
	n1 = math.Min(n1, a1)

	b.setView(b.mapping.inverse(n0), b.mapping.inverse(n1))
	return nil
}

// Zoom sets the visible interval explicitly. Invalid intervals are ignored.
func (b *AxisBase) Zoom(minimum, maximum float64) {
	if minimum > maximum {
		minimum, maximum = maximum, minimum
	}
	b.setView(minimum, maximum)
}

// Reset discards any interactive range and restores the configured or
// automatic one.
func (b *AxisBase) Reset() {
	b.viewMin, b.viewMax = math.NaN(), math.NaN()
	b.dataMin, b.dataMax = b.baseMin, b.baseMax
}

func (b *AxisBase) absoluteSpan() (float64, float64) {
	return b.mapping.forward(b.AbsoluteMinimum), b.mapping.forward(b.AbsoluteMaximum)
}

// setView installs an interactive range if it keeps dataMin < dataMax.
func (b *AxisBase) setView(minimum, maximum float64) {
	if !(minimum < maximum) || !b.mapping.valid(minimum) || !b.mapping.valid(maximum) {
		Logger().Debug("ggplot: axis range rejected", "min", minimum, "max", maximum)
		return
	}
	b.viewMin, b.viewMax = minimum, maximum
	b.dataMin, b.dataMax = minimum, maximum
}

// setActual installs a configured or automatic range, correcting values
// that would break dataMin < dataMax.
func (b *AxisBase) setActual(minimum, maximum float64) {
	minimum = math.Max(minimum, b.AbsoluteMinimum)
	maximum = math.Min(maximum, b.AbsoluteMaximum)
	if minimum > maximum {
		minimum, maximum = maximum, minimum
	}
	if !b.mapping.valid(minimum) || !b.mapping.valid(maximum) {
		Logger().Warn("ggplot: invalid axis range corrected",
			"position", b.Position, "min", minimum, "max", maximum)
		switch {
		case b.mapping.valid(maximum):
			minimum = b.mapping.inverse(b.mapping.forward(maximum) - 1)
		case b.mapping.valid(minimum):
			maximum = b.mapping.inverse(b.mapping.forward(minimum) + 1)
		default:
			minimum, maximum = b.dataMin, b.dataMax
		}
	}
	if minimum == maximum {
		t := b.mapping.forward(minimum)
		minimum, maximum = b.mapping.inverse(t-1), b.mapping.inverse(t+1)
	}
	if !(minimum < maximum) {
		return
	}
	b.baseMin, b.baseMax = minimum, maximum
	if !b.IsZoomedOrPanned() {
		b.dataMin, b.dataMax = minimum, maximum
	}
}

// updateAxis resolves the axis range from the bounds of the data bound to
// it. An interactive range survives updates.
func updateAxis(a Axis, lo, hi float64, ok bool) {
	b := a.Base()
	minimum, maximum := a.autoRange(lo, hi, ok)
	if !math.IsNaN(b.Minimum) {
		minimum = b.Minimum
	}
	if !math.IsNaN(b.Maximum) {
		maximum = b.Maximum
	}
	b.setActual(minimum, maximum)
}

// pad widens [lo, hi] in the axis' linear space.
func (b *AxisBase) pad(lo, hi float64) (float64, float64) {
	t0, t1 := b.mapping.forward(lo), b.mapping.forward(hi)
	d := t1 - t0
	return b.mapping.inverse(t0 - d*b.MinimumPadding), b.mapping.inverse(t1 + d*b.MaximumPadding)
}

// maxTicks returns the number of major ticks that fit the screen interval.
func (b *AxisBase) maxTicks() int {
	il := b.IntervalLength
	if il <= 0 {
		il = 60
	}
	n := int(math.Abs(b.screenEnd-b.screenStart) / il)
	return max(n, 2)
}

func (b *AxisBase) labelPrinter() *message.Printer {
	if b.printer != nil {
		return b.printer
	}
	return defaultPrinter
}
