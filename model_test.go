package ggplot

import (
	"image/color"
	"math"
	"slices"
	"testing"

	"golang.org/x/text/language"
)

func TestUpdateAddsDefaultAxes(t *testing.T) {
	tests := []struct {
		name   string
		series Series
		wantX  string
	}{
		{"line", NewLineSeries("l", Dp(0, 0), Dp(1, 1)), "*ggplot.LinearAxis"},
		{"columns", NewErrorColumnSeries("c", ErrorColumnItem{Value: 1}), "*ggplot.CategoryAxis"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewPlotModel("")
			m.Series = append(m.Series, tt.series)
			m.Update()
			if len(m.Axes) != 2 {
				t.Fatalf("len(Axes) = %d, want 2", len(m.Axes))
			}
			x, y := m.SeriesAxes(tt.series)
			if got := typeName(x); got != tt.wantX {
				t.Errorf("x axis = %s, want %s", got, tt.wantX)
			}
			if y == nil || y.Base().IsHorizontal() {
				t.Errorf("y axis = %v, want a vertical axis", y)
			}
		})
	}
}

func typeName(a Axis) string {
	switch a.(type) {
	case *LinearAxis:
		return "*ggplot.LinearAxis"
	case *LogarithmicAxis:
		return "*ggplot.LogarithmicAxis"
	case *CategoryAxis:
		return "*ggplot.CategoryAxis"
	}
	return "nil"
}

func TestUpdateAutoRangeWithPadding(t *testing.T) {
	m := NewPlotModel("")
	x := NewLinearAxis(AxisBottom)
	y := NewLinearAxis(AxisLeft, WithPadding(0, 0))
	m.Axes = []Axis{x, y}
	m.Series = []Series{NewLineSeries("", Dp(0, -2), Dp(10, 5), Dp(math.NaN(), 100))}
	m.Update()

	if !near(x.DataMin(), -0.1, 1e-12) || !near(x.DataMax(), 10.1, 1e-12) {
		t.Errorf("x range = [%v, %v], want [-0.1, 10.1]", x.DataMin(), x.DataMax())
	}
	if y.DataMin() != -2 || y.DataMax() != 5 {
		t.Errorf("y range = [%v, %v], want [-2, 5]", y.DataMin(), y.DataMax())
	}
}

func TestUpdateKeepsInteractiveRange(t *testing.T) {
	m := NewPlotModel("")
	x := NewLinearAxis(AxisBottom)
	m.Axes = []Axis{x, NewLinearAxis(AxisLeft)}
	m.Series = []Series{NewLineSeries("", Dp(0, 0), Dp(10, 10))}
	m.Update()
	x.SetScreenRange(0, 100)

	if err := x.ZoomAt(2, Sp(50, 0)); err != nil {
		t.Fatalf("ZoomAt() = %v", err)
	}
	lo, hi := x.DataMin(), x.DataMax()
	m.Update()
	if x.DataMin() != lo || x.DataMax() != hi {
		t.Errorf("Update replaced interactive range [%v, %v] with [%v, %v]", lo, hi, x.DataMin(), x.DataMax())
	}

	m.ResetAllAxes()
	if !near(x.DataMin(), -0.1, 1e-12) {
		t.Errorf("after reset DataMin = %v, want -0.1", x.DataMin())
	}
}

func TestUpdateFixedRangeWins(t *testing.T) {
	m := NewPlotModel("")
	x := NewLinearAxis(AxisBottom, WithRange(math.NaN(), 3))
	m.Axes = []Axis{x, NewLinearAxis(AxisLeft)}
	m.Series = []Series{NewLineSeries("", Dp(0, 0), Dp(10, 10))}
	m.Update()
	if x.DataMax() != 3 {
		t.Errorf("DataMax = %v, want 3", x.DataMax())
	}
	if !near(x.DataMin(), -0.1, 1e-12) {
		t.Errorf("DataMin = %v, want -0.1", x.DataMin())
	}
}

func TestUpdateAssignsPaletteColors(t *testing.T) {
	a := NewLineSeries("a", Dp(0, 0), Dp(1, 1))
	b := NewLineSeries("b", Dp(0, 1), Dp(1, 0))
	c := NewLineSeries("c", Dp(0, 1), Dp(1, 2))
	c.Color = color.RGBA{R: 1, A: 0xff}

	m := NewPlotModel("")
	m.Series = []Series{a, b, c}
	m.Update()

	if a.LegendColor() == b.LegendColor() {
		t.Error("series a and b share a palette color")
	}
	if c.LegendColor() != c.Color {
		t.Error("explicit color replaced")
	}
}

func TestUpdateLaysOutColumnSlots(t *testing.T) {
	s1 := NewErrorColumnSeries("s1", ErrorColumnItem{Value: 1, Error: 0.5}, ErrorColumnItem{Value: 2})
	s2 := NewErrorColumnSeries("s2", ErrorColumnItem{Value: 3}, ErrorColumnItem{Value: 4, Error: 1})
	ca := NewCategoryAxis(AxisBottom, []string{"A", "B"})
	va := NewLinearAxis(AxisLeft, WithPadding(0, 0))

	m := NewPlotModel("")
	m.Axes = []Axis{ca, va}
	m.Series = []Series{s1, s2}
	m.Update()

	if s1.slot != 0 || s2.slot != 1 || ca.columns != 2 {
		t.Errorf("slots = %d, %d of %d", s1.slot, s2.slot, ca.columns)
	}
	if va.DataMin() != 0 || va.DataMax() != 5 {
		t.Errorf("value range = [%v, %v], want [0, 5]", va.DataMin(), va.DataMax())
	}
	if ca.DataMin() != -0.5 || ca.DataMax() != 1.5 {
		t.Errorf("category range = [%v, %v], want [-0.5, 1.5]", ca.DataMin(), ca.DataMax())
	}
}

func TestUpdateIgnoresNonPositiveDataOnLogAxis(t *testing.T) {
	m := NewPlotModel("")
	y := NewLogarithmicAxis(AxisLeft, WithPadding(0, 0))
	m.Axes = []Axis{NewLinearAxis(AxisBottom), y}
	m.Series = []Series{NewLineSeries("", Dp(0, 0), Dp(1, 10), Dp(2, 1000))}
	m.Update()
	if !near(y.DataMin(), 10, 1e-9) || !near(y.DataMax(), 1000, 1e-9) {
		t.Errorf("range = [%v, %v], want [10, 1000]", y.DataMin(), y.DataMax())
	}
}

func TestPanZoomAxes(t *testing.T) {
	m := NewPlotModel("")
	m.Axes = []Axis{NewLinearAxis(AxisBottom), NewLinearAxis(AxisLeft), NewLinearAxis(AxisRight, WithKey("r"))}
	if got := len(m.PanZoomAxes()); got != 3 {
		t.Errorf("len(PanZoomAxes()) = %d, want 3", got)
	}
	if m.AxisByKey("r") != m.Axes[2] {
		t.Error("AxisByKey(\"r\") did not find the keyed axis")
	}
}

func TestRenderEmptyRect(t *testing.T) {
	m := NewPlotModel("t")
	m.Series = []Series{NewLineSeries("", Dp(0, 0), Dp(1, 1))}
	m.Update()

	for _, r := range []Rect{{}, {Width: 0, Height: 10}, {Width: math.NaN(), Height: 10}, {Width: -5, Height: 5}} {
		rec := &recorder{}
		m.Render(rec, r)
		if len(rec.ops) != 0 {
			t.Errorf("Render(%v) drew %d ops, want 0", r, len(rec.ops))
		}
	}
}

func TestRenderDegenerateMargins(t *testing.T) {
	m := NewPlotModel("", WithBackground(colorWhite), WithMargins(UniformMargins(60)))
	m.Series = []Series{NewLineSeries("s", Dp(0, 0), Dp(1, 1))}
	m.Update()

	rec := &recorder{}
	m.Render(rec, Rect{Width: 100, Height: 100})
	if !m.PlotArea().Empty() {
		t.Fatalf("PlotArea() = %v, want empty", m.PlotArea())
	}
	if rec.count("rect") != 1 || rec.count("line") != 0 {
		t.Errorf("ops = %+v, want the background only", rec.ops)
	}
}

func TestRenderDetachedKeepsLayout(t *testing.T) {
	m := NewPlotModel("", WithAxes(
		NewLinearAxis(AxisBottom, WithRange(0, 10)),
		NewLinearAxis(AxisLeft, WithRange(0, 10)),
	))
	m.Series = []Series{NewLineSeries("", Dp(0, 0), Dp(10, 10))}
	m.Update()
	m.Render(&recorder{}, Rect{Width: 170, Height: 170})

	type span struct{ start, end float64 }
	before := make([]span, len(m.Axes))
	for i, a := range m.Axes {
		before[i] = span{a.Base().ScreenStart(), a.Base().ScreenEnd()}
	}
	area := m.PlotArea()

	rec := &recorder{}
	m.RenderDetached(rec, Rect{Width: 800, Height: 600})
	if rec.count("line") == 0 {
		t.Fatalf("RenderDetached drew no lines: %+v", rec.ops)
	}
	for i, a := range m.Axes {
		got := span{a.Base().ScreenStart(), a.Base().ScreenEnd()}
		if got != before[i] {
			t.Errorf("axis %d screen range = %v, want %v", i, got, before[i])
		}
	}
	if m.PlotArea() != area {
		t.Errorf("PlotArea() = %v, want %v", m.PlotArea(), area)
	}
}

func TestRenderLayersInOrder(t *testing.T) {
	below := &RectangleAnnotation{
		AnnotationBase: AnnotationBase{Layer: LayerBelowAxes},
		MinimumX:       math.Inf(-1), MaximumX: math.Inf(1),
		MinimumY: math.Inf(-1), MaximumY: math.Inf(1),
		Fill: color.RGBA{R: 1, A: 0xff},
	}
	behind := &RectangleAnnotation{
		AnnotationBase: AnnotationBase{Layer: LayerBelowSeries},
		MinimumX:       math.Inf(-1), MaximumX: math.Inf(1),
		MinimumY: math.Inf(-1), MaximumY: math.Inf(1),
		Fill: color.RGBA{R: 2, A: 0xff},
	}
	above := &RectangleAnnotation{
		AnnotationBase: AnnotationBase{Layer: LayerAboveSeries},
		MinimumX:       math.Inf(-1), MaximumX: math.Inf(1),
		MinimumY: math.Inf(-1), MaximumY: math.Inf(1),
		Fill: color.RGBA{R: 3, A: 0xff},
	}
	series := NewLineSeries("", Dp(0, 0), Dp(1, 1))
	series.Color = color.RGBA{G: 9, A: 0xff}

	m := NewPlotModel("")
	m.Series = []Series{series}
	m.Annotations = []Annotation{above, behind, below}
	m.Update()

	rec := &recorder{}
	m.Render(rec, Rect{Width: 400, Height: 300})

	index := func(match func(op) bool) int {
		return slices.IndexFunc(rec.ops, match)
	}
	byFill := func(r uint8) int {
		return index(func(o op) bool { return o.kind == "rect" && o.fill == color.RGBA{R: r, A: 0xff} })
	}
	axisLine := index(func(o op) bool { return o.kind == "line" && o.stroke.Color == colorBlack })
	seriesLine := index(func(o op) bool { return o.kind == "line" && o.stroke.Color == series.Color })

	order := []int{byFill(1), axisLine, byFill(2), seriesLine, byFill(3)}
	for i, v := range order {
		if v < 0 {
			t.Fatalf("element %d not drawn: %v", i, order)
		}
	}
	if !slices.IsSorted(order) {
		t.Errorf("draw order = %v, want increasing", order)
	}
	if area := m.PlotArea(); !slices.Contains(rec.clips, area) {
		t.Errorf("clips = %v, want the plot area %v", rec.clips, area)
	}
}

func TestRenderSeriesMapsThroughAxes(t *testing.T) {
	s := NewLineSeries("", Dp(0, 0), Dp(10, 10))
	s.Color = colorWhite
	m := NewPlotModel("", WithMargins(Margins{}), WithLegend(false))
	m.PlotAreaBorder = Stroke{}
	m.Axes = []Axis{
		NewLinearAxis(AxisBottom, WithRange(0, 10)),
		NewLinearAxis(AxisLeft, WithRange(0, 10)),
	}
	m.Series = []Series{s}
	m.Update()

	rec := &recorder{}
	m.Render(rec, Rect{Width: 100, Height: 200})
	i := slices.IndexFunc(rec.ops, func(o op) bool { return o.kind == "line" && o.stroke.Color == colorWhite })
	if i < 0 {
		t.Fatal("series line not drawn")
	}
	got := rec.ops[i].points
	want := []ScreenPoint{{X: 0, Y: 200}, {X: 100, Y: 0}}
	if !slices.Equal(got, want) {
		t.Errorf("points = %v, want %v", got, want)
	}
}

func TestRenderTextElements(t *testing.T) {
	m := NewPlotModel("Title", WithSubtitle("Sub"), WithLocale(language.German))
	m.Axes = []Axis{
		NewLinearAxis(AxisBottom, WithRange(0, 2000), WithSteps(1000, 0), WithTitle("X")),
		NewLinearAxis(AxisLeft, WithRange(0, 1), WithTitle("Y")),
	}
	m.Series = []Series{NewLineSeries("series one", Dp(0, 0), Dp(2000, 1))}
	m.Update()

	rec := &recorder{}
	m.Render(rec, Rect{Width: 640, Height: 480})
	for _, want := range []string{"Title", "Sub", "X", "Y", "series one", "1.000", "2.000"} {
		if !rec.hasText(want) {
			t.Errorf("text %q not drawn; got %q", want, rec.texts())
		}
	}
	for _, o := range rec.ops {
		if o.kind == "text" && o.text == "Y" && o.style.Rotation != -90 {
			t.Errorf("left axis title rotation = %v, want -90", o.style.Rotation)
		}
	}
	if area := m.PlotArea(); !(area.Top > 20) {
		t.Errorf("plot area top = %v, want below the title block", area.Top)
	}
}

func TestRenderBreaksLinesAtGaps(t *testing.T) {
	s := NewLineSeries("", Dp(0, 0), Dp(1, 1), Dp(math.NaN(), 2), Dp(3, 3), Dp(4, 4), Dp(5, math.NaN()), Dp(6, 6))
	s.Color = colorWhite
	s.MarkerSize = 2
	rec := &recorder{}
	x := NewLinearAxis(AxisBottom, WithRange(0, 6))
	y := NewLinearAxis(AxisLeft, WithRange(0, 6))
	x.SetScreenRange(0, 60)
	y.SetScreenRange(60, 0)
	s.Render(rec, x, y)

	if got := rec.count("line"); got != 2 {
		t.Errorf("segments = %d, want 2", got)
	}
	if got := rec.count("ellipse"); got != 5 {
		t.Errorf("markers = %d, want 5", got)
	}
}

func TestFunctionSeriesSamples(t *testing.T) {
	s := NewFunctionSeries(func(x float64) float64 { return 1 / x }, -1, 1, 3)
	if len(s.Points) != 3 {
		t.Fatalf("len(Points) = %d, want 3", len(s.Points))
	}
	if s.Points[1].IsDefined() {
		t.Errorf("1/0 should become a gap, got %v", s.Points[1])
	}
	if s.Points[2] != Dp(1, 1) {
		t.Errorf("Points[2] = %v, want (1, 1)", s.Points[2])
	}
}

func TestFunctionSeriesResampleClampsSampleCount(t *testing.T) {
	for _, n := range []int{-1, 0, 1} {
		s := &FunctionSeries{F: func(x float64) float64 { return x }, X0: 0, X1: 1, N: n}
		s.Resample()
		if len(s.Points) != 2 {
			t.Fatalf("N=%d: len(Points) = %d, want 2", n, len(s.Points))
		}
		if s.Points[0] != Dp(0, 0) || s.Points[1] != Dp(1, 1) {
			t.Errorf("N=%d: Points = %v, want the two ends", n, s.Points)
		}
	}
}

func TestErrorColumnSeriesRender(t *testing.T) {
	s := NewErrorColumnSeries("", ErrorColumnItem{Value: 2, Error: 1})
	s.FillColor = colorWhite
	ca := NewCategoryAxis(AxisBottom, []string{"a"})
	ca.columns = 1
	va := NewLinearAxis(AxisLeft, WithRange(0, 4))
	ca.SetScreenRange(0, 100)
	va.SetScreenRange(100, 0)

	rec := &recorder{}
	s.Render(rec, ca, va)
	if rec.count("rect") != 1 || rec.count("line") != 3 {
		t.Fatalf("ops = %+v, want 1 column and 3 whisker lines", rec.ops)
	}
	col := rec.ops[0].rect
	want := Rect{Left: 25, Top: 50, Width: 50, Height: 50}
	if col != want {
		t.Errorf("column = %v, want %v", col, want)
	}
	whisker := rec.ops[1].points
	if whisker[0] != Sp(50, 75) || whisker[1] != Sp(50, 25) {
		t.Errorf("whisker = %v", whisker)
	}
}
