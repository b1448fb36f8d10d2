package ggplot

import (
	"math"

	"github.com/aclements/go-moremath/scale"
)

// LinearAxis maps data to screen proportionally.
type LinearAxis struct {
	AxisBase
}

var _ Axis = (*LinearAxis)(nil)

// NewLinearAxis creates a linear axis at pos. Without a range option the
// axis shows [0, 100] until a plot update derives one from its series.
func NewLinearAxis(pos AxisPosition, opts ...AxisOption) *LinearAxis {
	a := &LinearAxis{}
	a.init(pos, linearMapping{}, 0, 100, opts)
	return a
}

// Ticks implements Axis.
func (a *LinearAxis) Ticks() (major, minor []float64) {
	if a.MajorStep > 0 {
		major = stepTicks(a.dataMin, a.dataMax, a.MajorStep)
		ms := a.MinorStep
		if ms <= 0 {
			ms = a.MajorStep / 5
		}
		return major, withoutMajor(stepTicks(a.dataMin, a.dataMax, ms), major)
	}
	s := scale.Linear{Min: a.dataMin, Max: a.dataMax, Base: 10}
	major, minor = s.Ticks(scale.TickOptions{Max: a.maxTicks()})
	major = clip(major, a.dataMin, a.dataMax)
	minor = clip(minor, a.dataMin, a.dataMax)
	return major, withoutMajor(minor, major)
}

// TickLabels implements Axis.
func (a *LinearAxis) TickLabels(major []float64) []string {
	step := a.MajorStep
	if step <= 0 && len(major) > 1 {
		step = major[1] - major[0]
	}
	labels := make([]string, len(major))
	for i, v := range major {
		if a.LabelFormatter != nil {
			labels[i] = a.LabelFormatter(v)
			continue
		}
		labels[i] = FormatTick(a.labelPrinter(), v, step)
	}
	return labels
}

func (a *LinearAxis) autoRange(lo, hi float64, ok bool) (float64, float64) {
	if !ok {
		return 0, 100
	}
	if lo == hi {
		d := math.Max(math.Abs(lo)*0.1, 1)
		return lo - d, hi + d
	}
	return a.pad(lo, hi)
}

// clip keeps the sorted values inside [lo, hi], allowing for rounding.
func clip(vs []float64, lo, hi float64) []float64 {
	out := vs[:0:0]
	for _, v := range vs {
		if (v >= lo || nearlyEqual(v, lo)) && (v <= hi || nearlyEqual(v, hi)) {
			out = append(out, v)
		}
	}
	return out
}
