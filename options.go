package ggplot

import (
	"image/color"

	"golang.org/x/text/language"
)

// PlotOption configures a PlotModel during creation.
//
// Example:
//
//	m := ggplot.NewPlotModel("Sine",
//	    ggplot.WithMargins(ggplot.UniformMargins(40)),
//	    ggplot.WithLocale(language.German),
//	)
type PlotOption func(*PlotModel)

// WithSubtitle sets the text drawn below the title.
func WithSubtitle(s string) PlotOption {
	return func(m *PlotModel) { m.Subtitle = s }
}

// WithMargins replaces the default plot margins. Negative insets are
// treated as zero.
func WithMargins(mg Margins) PlotOption {
	return func(m *PlotModel) { m.PlotMargins = mg.Clamped() }
}

// WithBackground sets the color filling the whole draw rectangle.
func WithBackground(c color.Color) PlotOption {
	return func(m *PlotModel) { m.Background = c }
}

// WithPlotAreaBackground sets the color filling the plot area.
func WithPlotAreaBackground(c color.Color) PlotOption {
	return func(m *PlotModel) { m.PlotAreaBackground = c }
}

// WithLocale selects the number format of tick labels.
func WithLocale(tag language.Tag) PlotOption {
	return func(m *PlotModel) { m.Locale = tag }
}

// WithLegend shows or hides the legend.
func WithLegend(visible bool) PlotOption {
	return func(m *PlotModel) { m.IsLegendVisible = visible }
}

// WithAxes adds axes to the plot.
func WithAxes(axes ...Axis) PlotOption {
	return func(m *PlotModel) { m.Axes = append(m.Axes, axes...) }
}

// AxisOption configures an axis during creation.
type AxisOption func(*AxisBase)

// WithRange fixes the axis range.
func WithRange(minimum, maximum float64) AxisOption {
	return func(b *AxisBase) {
		b.Minimum = minimum
		b.Maximum = maximum
	}
}

// WithAbsoluteRange bounds panning and zooming.
func WithAbsoluteRange(minimum, maximum float64) AxisOption {
	return func(b *AxisBase) {
		b.AbsoluteMinimum = minimum
		b.AbsoluteMaximum = maximum
	}
}

// WithPadding sets the automatic range padding fractions.
func WithPadding(minimum, maximum float64) AxisOption {
	return func(b *AxisBase) {
		b.MinimumPadding = minimum
		b.MaximumPadding = maximum
	}
}

// WithTitle sets the axis title.
func WithTitle(title string) AxisOption {
	return func(b *AxisBase) { b.Title = title }
}

// WithKey sets the axis key.
func WithKey(key string) AxisOption {
	return func(b *AxisBase) { b.Key = key }
}

// WithPositionRange places the axis on a fraction of the plot area.
func WithPositionRange(start, end float64) AxisOption {
	return func(b *AxisBase) {
		b.StartPosition = start
		b.EndPosition = end
	}
}

// WithSteps fixes the major and minor tick spacing.
func WithSteps(major, minor float64) AxisOption {
	return func(b *AxisBase) {
		b.MajorStep = major
		b.MinorStep = minor
	}
}

// WithGridlines enables major and minor gridlines.
func WithGridlines(major, minor bool) AxisOption {
	return func(b *AxisBase) {
		b.MajorGridlines = major
		b.MinorGridlines = minor
	}
}

// WithTextColor sets the color of tick labels and the axis title.
func WithTextColor(c color.Color) AxisOption {
	return func(b *AxisBase) { b.TextColor = c }
}
