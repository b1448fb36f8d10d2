package ggplot

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var defaultPrinter = message.NewPrinter(language.English)

// maxFractionDigits bounds the precision of generated tick labels.
const maxFractionDigits = 10

// maxStepTicks bounds the number of ticks an explicit step may produce.
const maxStepTicks = 1000

// FormatTick formats v with as many fraction digits as step needs, using
// the grouping and decimal conventions of p.
func FormatTick(p *message.Printer, v, step float64) string {
	if p == nil {
		p = defaultPrinter
	}
	step = math.Abs(step)
	if step > 0 && math.Abs(v) < step*1e-9 {
		v = 0
	}
	return p.Sprintf("%v", number.Decimal(v, number.MaxFractionDigits(fractionDigits(step))))
}

// fractionDigits returns the number of decimals that represent step exactly.
func fractionDigits(step float64) int {
	if !(step > 0) || math.IsInf(step, 0) {
		return 0
	}
	for d := 0; d < maxFractionDigits; d++ {
		s := step * math.Pow(10, float64(d))
		if math.Abs(s-math.Round(s)) <= 1e-6*math.Max(1, s) {
			return d
		}
	}
	return maxFractionDigits
}

// stepTicks returns the multiples of step inside [lo, hi].
func stepTicks(lo, hi, step float64) []float64 {
	if !(step > 0) || !isFinite(lo) || !isFinite(hi) {
		return nil
	}
	eps := step * 1e-9
	n0 := math.Ceil((lo - eps) / step)
	n1 := math.Floor((hi + eps) / step)
	if n1 < n0 || n1-n0 > maxStepTicks {
		return nil
	}
	ticks := make([]float64, 0, int(n1-n0)+1)
	for i := n0; i <= n1; i++ {
		v := i * step
		if v == 0 {
			v = 0 // drop the sign of -0
		}
		ticks = append(ticks, v)
	}
	return ticks
}

// withoutMajor removes from minor the values that coincide with a major
// tick.
func withoutMajor(minor, major []float64) []float64 {
	if len(major) == 0 {
		return minor
	}
	out := minor[:0:0]
	j := 0
	for _, v := range minor {
		for j < len(major) && major[j] < v {
			j++
		}
		if j < len(major) && nearlyEqual(major[j], v) {
			continue
		}
		if j > 0 && nearlyEqual(major[j-1], v) {
			continue
		}
		out = append(out, v)
	}
	return out
}

func nearlyEqual(a, b float64) bool {
	return math.Abs(a-b) <= 1e-9*math.Max(1, math.Max(math.Abs(a), math.Abs(b)))
}
