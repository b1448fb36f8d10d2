package ggplot

import (
	"image/color"
	"math"
)

const (
	majorTickLength = 7
	minorTickLength = 4
	labelGap        = 3
	titlePadding    = 6
	legendPadding   = 8
	legendSwatch    = 20
)

// RenderDetached draws like Render but restores every axis' screen
// interval and the plot area on return. Renders into a rectangle other
// than the live view use it so pan and zoom keep converting screen deltas
// against the on-screen layout.
func (m *PlotModel) RenderDetached(rc RenderContext, rect Rect) {
	type screenRange struct{ start, end float64 }
	saved := make([]screenRange, len(m.Axes))
	for i, a := range m.Axes {
		b := a.Base()
		saved[i] = screenRange{b.screenStart, b.screenEnd}
	}
	area := m.plotArea
	defer func() {
		for i, r := range saved {
			if i < len(m.Axes) {
				m.Axes[i].Base().SetScreenRange(r.start, r.end)
			}
		}
		m.plotArea = area
	}()
	m.Render(rc, rect)
}

// Render draws the plot into rect of rc. Axes are laid out against the
// plot area, which is rect inset by PlotMargins and the title block. An
// empty plot area renders backgrounds and titles only.
func (m *PlotModel) Render(rc RenderContext, rect Rect) {
	if rect.Empty() {
		Logger().Debug("ggplot: render into empty rect skipped")
		return
	}
	if m.Background != nil {
		rc.DrawRectangle(rect, m.Background, Stroke{})
	}

	area := rect.Inset(m.PlotMargins)
	if h := m.renderTitles(rc, area); h > 0 {
		area = area.Inset(Margins{Top: h})
	}
	m.plotArea = area
	for _, a := range m.Axes {
		a.Base().Layout(area)
	}
	if area.Empty() {
		Logger().Debug("ggplot: plot area is empty", "width", area.Width, "height", area.Height)
		return
	}

	m.renderAnnotations(rc, area, LayerBelowAxes)
	if m.PlotAreaBackground != nil {
		rc.DrawRectangle(area, m.PlotAreaBackground, Stroke{})
	}
	for _, a := range m.Axes {
		m.renderGridlines(rc, a, area)
	}
	for _, a := range m.Axes {
		m.renderAxis(rc, a, area)
	}
	m.renderAnnotations(rc, area, LayerBelowSeries)

	rc.SetClip(area)
	for _, s := range m.Series {
		x, y := m.SeriesAxes(s)
		if x == nil || y == nil {
			continue
		}
		s.Render(rc, x, y)
	}
	rc.ResetClip()

	m.renderAnnotations(rc, area, LayerAboveSeries)
	if m.PlotAreaBorder.Visible() {
		rc.DrawRectangle(area, nil, m.PlotAreaBorder)
	}
	if m.IsLegendVisible {
		m.renderLegend(rc, area)
	}
}

func (m *PlotModel) textColor(c color.Color) color.Color {
	switch {
	case c != nil:
		return c
	case m.TextColor != nil:
		return m.TextColor
	}
	return colorBlack
}

func (m *PlotModel) fontSize() float64 {
	if m.FontSize > 0 {
		return m.FontSize
	}
	return DefaultFontSize
}

// renderTitles draws the title block at the top of area and returns its
// height.
func (m *PlotModel) renderTitles(rc RenderContext, area Rect) float64 {
	if m.Title == "" && m.Subtitle == "" {
		return 0
	}
	cx := area.Left + area.Width/2
	y := area.Top
	if m.Title != "" {
		size := m.TitleFontSize
		if !(size > 0) {
			size = m.fontSize() * 1.5
		}
		_, h := rc.MeasureText(m.Title, size)
		rc.DrawText(Sp(cx, y), m.Title, TextStyle{
			Color:  m.textColor(nil),
			Size:   size,
			VAlign: AlignTop,
		})
		y += h
	}
	if m.Subtitle != "" {
		_, h := rc.MeasureText(m.Subtitle, m.fontSize())
		rc.DrawText(Sp(cx, y), m.Subtitle, TextStyle{
			Color:  m.textColor(nil),
			Size:   m.fontSize(),
			VAlign: AlignTop,
		})
		y += h
	}
	return y - area.Top + titlePadding
}

func (m *PlotModel) renderAnnotations(rc RenderContext, area Rect, layer AnnotationLayer) {
	clipped := false
	for _, an := range m.Annotations {
		if an.Base().Layer != layer {
			continue
		}
		x, y := m.AnnotationAxes(an)
		if x == nil || y == nil {
			continue
		}
		if !clipped {
			rc.SetClip(area)
			clipped = true
		}
		an.Render(rc, x, y, area)
	}
	if clipped {
		rc.ResetClip()
	}
}

// axisLine returns the fixed cross coordinate of an axis and the outward
// direction of its ticks.
func axisLine(b *AxisBase, area Rect) (pos, out float64) {
	switch b.Position {
	case AxisTop:
		return area.Top, -1
	case AxisLeft:
		return area.Left, -1
	case AxisRight:
		return area.Right(), 1
	}
	return area.Bottom(), 1
}

// visibleTicks keeps values that map inside the axis' screen interval.
func visibleTicks(a Axis, vs []float64) []float64 {
	b := a.Base()
	lo, hi := math.Min(b.ScreenStart(), b.ScreenEnd()), math.Max(b.ScreenStart(), b.ScreenEnd())
	out := vs[:0:0]
	for _, v := range vs {
		s := a.Transform(v)
		if s >= lo-0.5 && s <= hi+0.5 {
			out = append(out, v)
		}
	}
	return out
}

func (m *PlotModel) renderGridlines(rc RenderContext, a Axis, area Rect) {
	b := a.Base()
	if b.IsDegenerate() || (!b.MajorGridlines && !b.MinorGridlines) {
		return
	}
	major, minor := a.Ticks()
	line := func(v float64, stroke Stroke) {
		s := a.Transform(v)
		if b.IsHorizontal() {
			rc.DrawLine([]ScreenPoint{Sp(s, area.Top), Sp(s, area.Bottom())}, stroke)
			return
		}
		rc.DrawLine([]ScreenPoint{Sp(area.Left, s), Sp(area.Right(), s)}, stroke)
	}
	if b.MinorGridlines {
		stroke := Stroke{Color: Blend(colorGridMajor, colorWhite, 0.5), Thickness: 1, Dash: []float64{1, 2}}
		for _, v := range visibleTicks(a, minor) {
			line(v, stroke)
		}
	}
	if b.MajorGridlines {
		stroke := Stroke{Color: colorGridMajor, Thickness: 1}
		for _, v := range visibleTicks(a, major) {
			line(v, stroke)
		}
	}
}

func (m *PlotModel) renderAxis(rc RenderContext, a Axis, area Rect) {
	b := a.Base()
	if b.IsDegenerate() {
		return
	}
	pos, out := axisLine(b, area)
	lineColor := b.LineColor
	if lineColor == nil {
		lineColor = colorBlack
	}
	stroke := Stroke{Color: lineColor, Thickness: 1}
	pt := func(along, across float64) ScreenPoint {
		if b.IsHorizontal() {
			return Sp(along, across)
		}
		return Sp(across, along)
	}

	rc.DrawLine([]ScreenPoint{pt(b.ScreenStart(), pos), pt(b.ScreenEnd(), pos)}, stroke)

	major, minor := a.Ticks()
	major, minor = visibleTicks(a, major), visibleTicks(a, minor)
	for _, v := range minor {
		s := a.Transform(v)
		rc.DrawLine([]ScreenPoint{pt(s, pos), pt(s, pos+out*minorTickLength)}, stroke)
	}

	style := TextStyle{Color: m.textColor(b.TextColor), Size: m.fontSize()}
	switch b.Position {
	case AxisBottom:
		style.VAlign = AlignTop
	case AxisTop:
		style.VAlign = AlignBottom
	case AxisLeft:
		style.HAlign = AlignRight
	case AxisRight:
		style.HAlign = AlignLeft
	}

	labels := a.TickLabels(major)
	extent := 0.0
	for i, v := range major {
		s := a.Transform(v)
		rc.DrawLine([]ScreenPoint{pt(s, pos), pt(s, pos+out*majorTickLength)}, stroke)
		if labels[i] == "" {
			continue
		}
		w, h := rc.MeasureText(labels[i], style.Size)
		if b.IsHorizontal() {
			extent = math.Max(extent, h)
		} else {
			extent = math.Max(extent, w)
		}
		rc.DrawText(pt(s, pos+out*(majorTickLength+labelGap)), labels[i], style)
	}

	if b.Title == "" {
		return
	}
	title := TextStyle{Color: style.Color, Size: style.Size}
	offset := pos + out*(majorTickLength+labelGap+extent+labelGap)
	mid := (b.ScreenStart() + b.ScreenEnd()) / 2
	switch b.Position {
	case AxisBottom:
		title.VAlign = AlignTop
	case AxisTop:
		title.VAlign = AlignBottom
	case AxisLeft:
		title.Rotation, title.VAlign = -90, AlignBottom
	case AxisRight:
		title.Rotation, title.VAlign = -90, AlignTop
	}
	rc.DrawText(pt(mid, offset), b.Title, title)
}

func (m *PlotModel) renderLegend(rc RenderContext, area Rect) {
	var entries []Series
	for _, s := range m.Series {
		if s.Base().Title != "" {
			entries = append(entries, s)
		}
	}
	if len(entries) == 0 {
		return
	}
	size := m.fontSize()
	var w, lineH float64
	for _, s := range entries {
		tw, th := rc.MeasureText(s.Base().Title, size)
		w = math.Max(w, tw)
		lineH = math.Max(lineH, th)
	}
	box := Rect{
		Width:  legendPadding*3 + legendSwatch + w,
		Height: legendPadding*2 + lineH*float64(len(entries)),
	}
	box.Left = area.Right() - legendPadding - box.Width
	box.Top = area.Top + legendPadding
	rc.DrawRectangle(box, color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xc0}, Stroke{Color: colorBlack, Thickness: 1})

	for i, s := range entries {
		cy := box.Top + legendPadding + lineH*(float64(i)+0.5)
		x0 := box.Left + legendPadding
		c := s.LegendColor()
		if _, ok := s.(*ErrorColumnSeries); ok {
			rc.DrawRectangle(Rect{Left: x0, Top: cy - lineH/4, Width: legendSwatch, Height: lineH / 2}, c, Stroke{})
		} else {
			rc.DrawLine([]ScreenPoint{Sp(x0, cy), Sp(x0+legendSwatch, cy)}, Stroke{Color: c, Thickness: 2})
		}
		rc.DrawText(Sp(x0+legendSwatch+legendPadding, cy), s.Base().Title, TextStyle{
			Color:  m.textColor(nil),
			Size:   size,
			HAlign: AlignLeft,
		})
	}
}
