package ggplot

import (
	"math"
	"strconv"
)

// CategoryAxis places one slot per label at integer positions 0..n-1.
// Column series bound to it share each slot.
type CategoryAxis struct {
	AxisBase

	Labels []string

	// GapWidth is the gap between slot groups relative to a column width.
	GapWidth float64

	columns int
}

var _ Axis = (*CategoryAxis)(nil)

// NewCategoryAxis creates a category axis at pos with the given labels.
func NewCategoryAxis(pos AxisPosition, labels []string, opts ...AxisOption) *CategoryAxis {
	a := &CategoryAxis{Labels: labels, GapWidth: 1}
	n := max(len(labels), 1)
	a.init(pos, linearMapping{}, -0.5, float64(n)-0.5, opts)
	return a
}

// Ticks implements Axis. Majors sit on categories, minors on the
// boundaries between them.
func (a *CategoryAxis) Ticks() (major, minor []float64) {
	step := math.Max(1, a.MajorStep)
	for _, v := range stepTicks(a.dataMin, a.dataMax, step) {
		if v >= 0 {
			major = append(major, v)
		}
	}
	for _, v := range stepTicks(a.dataMin+0.5, a.dataMax+0.5, 1) {
		minor = append(minor, v-0.5)
	}
	return major, minor
}

// TickLabels implements Axis.
func (a *CategoryAxis) TickLabels(major []float64) []string {
	labels := make([]string, len(major))
	for i, v := range major {
		k := int(math.Round(v))
		switch {
		case a.LabelFormatter != nil:
			labels[i] = a.LabelFormatter(v)
		case k >= 0 && k < len(a.Labels):
			labels[i] = a.Labels[k]
		default:
			labels[i] = strconv.Itoa(k)
		}
	}
	return labels
}

// SlotWidth returns the width of one column in category units when n
// column series share each slot.
func (a *CategoryAxis) SlotWidth() float64 {
	n := max(a.columns, 1)
	return 1 / (1 + math.Max(a.GapWidth, 0)) / float64(n)
}

// SlotOffset returns the center offset of column i of n from its category.
func (a *CategoryAxis) SlotOffset(i int) float64 {
	n := max(a.columns, 1)
	w := a.SlotWidth()
	return -w*float64(n)/2 + w*(float64(i)+0.5)
}

func (a *CategoryAxis) autoRange(lo, hi float64, ok bool) (float64, float64) {
	n := len(a.Labels)
	if ok && int(math.Ceil(hi))+1 > n {
		n = int(math.Ceil(hi)) + 1
	}
	n = max(n, 1)
	return -0.5, float64(n) - 0.5
}
