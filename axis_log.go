package ggplot

import (
	"math"

	"github.com/aclements/go-moremath/scale"
)

// LogarithmicAxis maps data to screen through log10. Pan and zoom operate
// on the logarithm of the range, so equal screen distances cover equal
// ratios.
type LogarithmicAxis struct {
	AxisBase
}

var _ Axis = (*LogarithmicAxis)(nil)

// NewLogarithmicAxis creates a logarithmic axis at pos with the default
// range [1, 100]. Non-positive range bounds are corrected and logged.
func NewLogarithmicAxis(pos AxisPosition, opts ...AxisOption) *LogarithmicAxis {
	a := &LogarithmicAxis{}
	a.init(pos, logMapping{}, 1, 100, opts)
	return a
}

// Ticks implements Axis. Majors fall on decades when the range allows.
func (a *LogarithmicAxis) Ticks() (major, minor []float64) {
	s, err := scale.NewLog(a.dataMin, a.dataMax, 10)
	if err != nil {
		Logger().Debug("ggplot: log ticks unavailable", "err", err)
		return decades(a.dataMin, a.dataMax), nil
	}
	major, minor = s.Ticks(scale.TickOptions{Max: a.maxTicks()})
	major = clip(major, a.dataMin, a.dataMax)
	minor = clip(minor, a.dataMin, a.dataMax)
	return major, withoutMajor(minor, major)
}

// TickLabels implements Axis.
func (a *LogarithmicAxis) TickLabels(major []float64) []string {
	labels := make([]string, len(major))
	for i, v := range major {
		if a.LabelFormatter != nil {
			labels[i] = a.LabelFormatter(v)
			continue
		}
		labels[i] = FormatTick(a.labelPrinter(), v, math.Pow(10, math.Floor(math.Log10(v))))
	}
	return labels
}

func (a *LogarithmicAxis) autoRange(lo, hi float64, ok bool) (float64, float64) {
	if !ok || !(hi > 0) {
		return 1, 100
	}
	if !(lo > 0) {
		Logger().Warn("ggplot: non-positive data on logarithmic axis", "min", lo)
		lo = hi / 100
	}
	if lo == hi {
		return lo / 10, hi * 10
	}
	return a.pad(lo, hi)
}

func decades(lo, hi float64) []float64 {
	var out []float64
	for e := math.Ceil(math.Log10(lo)); e <= math.Floor(math.Log10(hi)) && len(out) < maxStepTicks; e++ {
		out = append(out, math.Pow(10, e))
	}
	return out
}
