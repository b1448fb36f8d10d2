// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"image"
	"image/color"
	"math"
	"sync"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/draw"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/f64"

	"github.com/gogpu/ggplot"
	"github.com/gogpu/ggplot/internal/cache"
)

// maxTextPixels bounds the temporary buffer used for transformed text.
const maxTextPixels = 1 << 24

// faceKey identifies a face by font and device pixel size.
type faceKey struct {
	src *text.FontSource
	px  float64
}

// faces is shared by every RenderContext so repeated renders reuse faces.
var faces = cache.New[faceKey, text.Face](64)

var (
	defaultFontOnce sync.Once
	defaultFont     *text.FontSource
	defaultFontErr  error
)

// goRegular returns the built-in font, parsed once.
func goRegular() (*text.FontSource, error) {
	defaultFontOnce.Do(func() {
		defaultFont, defaultFontErr = text.NewFontSource(goregular.TTF)
	})
	return defaultFont, defaultFontErr
}

// RenderContext draws a plot into a gg.Context. Coordinates are view
// coordinates; the context's matrix carries the pixel scale and origin.
type RenderContext struct {
	dc    *gg.Context
	scale float64
	src   *text.FontSource
}

var _ ggplot.RenderContext = (*RenderContext)(nil)

// NewRenderContext prepares dc for drawing the view rectangle target at
// pixelScale device pixels per view unit.
func NewRenderContext(dc *gg.Context, target ggplot.Rect, pixelScale float64, opts ...Option) *RenderContext {
	o := collect(opts)
	src := o.font
	if src == nil {
		var err error
		if src, err = goRegular(); err != nil {
			ggplot.Logger().Warn("surface: built-in font unavailable", "err", err)
		}
	}
	dc.Identity()
	if o.origin == OriginBottomLeft {
		dc.InvertY()
	}
	dc.Scale(pixelScale, pixelScale)
	dc.Translate(-target.Left, -target.Top)
	return &RenderContext{
		dc:    dc,
		scale: pixelScale,
		src:   src,
	}
}

// face returns the font face for a view font size, sized in device pixels.
func (c *RenderContext) face(size float64) text.Face {
	if c.src == nil {
		return nil
	}
	if !(size > 0) {
		size = ggplot.DefaultFontSize
	}
	px := size * c.scale
	return faces.GetOrCreate(faceKey{c.src, px}, func() text.Face {
		return c.src.Face(px)
	})
}

func visible(c color.Color) bool {
	if c == nil {
		return false
	}
	_, _, _, a := c.RGBA()
	return a > 0
}

func toJoin(j ggplot.LineJoin) gg.LineJoin {
	switch j {
	case ggplot.LineJoinRound:
		return gg.LineJoinRound
	case ggplot.LineJoinBevel:
		return gg.LineJoinBevel
	}
	return gg.LineJoinMiter
}

func (c *RenderContext) applyStroke(s ggplot.Stroke) {
	c.dc.SetColor(s.Color)
	c.dc.SetLineWidth(s.Thickness)
	c.dc.SetLineJoin(toJoin(s.Join))
	if len(s.Dash) > 0 {
		c.dc.SetDash(s.Dash...)
	} else {
		c.dc.ClearDash()
	}
}

// paint fills and then strokes the path built by trace.
func (c *RenderContext) paint(trace func(), fill color.Color, stroke ggplot.Stroke) {
	if visible(fill) {
		c.dc.ClearPath()
		trace()
		c.dc.SetColor(fill)
		if err := c.dc.Fill(); err != nil {
			ggplot.Logger().Debug("surface: fill failed", "err", err)
		}
	}
	if stroke.Visible() && visible(stroke.Color) {
		c.dc.ClearPath()
		trace()
		c.applyStroke(stroke)
		if err := c.dc.Stroke(); err != nil {
			ggplot.Logger().Debug("surface: stroke failed", "err", err)
		}
	}
	c.dc.ClearPath()
}

// DrawLine implements ggplot.RenderContext.
func (c *RenderContext) DrawLine(points []ggplot.ScreenPoint, stroke ggplot.Stroke) {
	if len(points) < 2 {
		return
	}
	c.paint(func() {
		c.dc.MoveTo(points[0].X, points[0].Y)
		for _, p := range points[1:] {
			c.dc.LineTo(p.X, p.Y)
		}
	}, nil, stroke)
}

// DrawPolygon implements ggplot.RenderContext.
func (c *RenderContext) DrawPolygon(points []ggplot.ScreenPoint, fill color.Color, stroke ggplot.Stroke) {
	if len(points) < 3 {
		return
	}
	c.paint(func() {
		c.dc.MoveTo(points[0].X, points[0].Y)
		for _, p := range points[1:] {
			c.dc.LineTo(p.X, p.Y)
		}
		c.dc.ClosePath()
	}, fill, stroke)
}

// DrawRectangle implements ggplot.RenderContext.
func (c *RenderContext) DrawRectangle(r ggplot.Rect, fill color.Color, stroke ggplot.Stroke) {
	if r.Empty() {
		return
	}
	c.paint(func() {
		c.dc.DrawRectangle(r.Left, r.Top, r.Width, r.Height)
	}, fill, stroke)
}

// DrawEllipse implements ggplot.RenderContext.
func (c *RenderContext) DrawEllipse(r ggplot.Rect, fill color.Color, stroke ggplot.Stroke) {
	if r.Empty() {
		return
	}
	center := r.Center()
	c.paint(func() {
		c.dc.DrawEllipse(center.X, center.Y, r.Width/2, r.Height/2)
	}, fill, stroke)
}

// MeasureText implements ggplot.RenderContext.
func (c *RenderContext) MeasureText(s string, size float64) (width, height float64) {
	face := c.face(size)
	if face == nil || s == "" {
		return 0, 0
	}
	w, h := text.Measure(s, face)
	return w / c.scale, h / c.scale
}

// DrawText implements ggplot.RenderContext. Text upright in the buffer is
// drawn directly; rotated or flipped text is rasterized into a temporary
// image and resampled into place.
func (c *RenderContext) DrawText(p ggplot.ScreenPoint, s string, style ggplot.TextStyle) {
	face := c.face(style.Size)
	if face == nil || s == "" || !visible(style.Color) || !p.IsValid() {
		return
	}
	w, h := text.Measure(s, face)
	if !(w > 0) || !(h > 0) {
		return
	}
	dx, dy := ggplot.TextOffset(w/c.scale, h/c.scale, style.HAlign, style.VAlign)
	sin, cos := math.Sincos(style.Rotation * math.Pi / 180)
	device := func(u, v float64) (float64, float64) {
		u, v = u+dx, v+dy
		return c.dc.TransformPoint(p.X+u*cos-v*sin, p.Y+u*sin+v*cos)
	}
	x0, y0 := device(0, 0)
	x1, y1 := device(1, 0)
	x2, y2 := device(0, 1)
	ascent := face.Metrics().Ascent

	if y1 == y0 && x2 == x0 && x1 > x0 && y2 > y0 {
		c.dc.SetFont(face)
		c.dc.SetColor(style.Color)
		c.dc.DrawString(s, x0, y0+ascent)
		return
	}

	// one source pixel is 1/scale view units
	aff := f64.Aff3{
		(x1 - x0) / c.scale, (x2 - x0) / c.scale, x0,
		(y1 - y0) / c.scale, (y2 - y0) / c.scale, y0,
	}
	c.drawTransformed(s, face, w, h, ascent, style.Color, aff)
}

func (c *RenderContext) drawTransformed(s string, face text.Face, w, h, ascent float64, col color.Color, aff f64.Aff3) {
	sw, sh := int(math.Ceil(w)), int(math.Ceil(h))
	if sw*sh > maxTextPixels {
		ggplot.Logger().Debug("surface: text too large", "width", sw, "height", sh)
		return
	}
	src := image.NewRGBA(image.Rect(0, 0, sw, sh))
	text.Draw(src, s, face, 0, ascent, col)

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, q := range [][2]float64{{0, 0}, {w, 0}, {0, h}, {w, h}} {
		x := aff[0]*q[0] + aff[1]*q[1] + aff[2]
		y := aff[3]*q[0] + aff[4]*q[1] + aff[5]
		minX, maxX = math.Min(minX, x), math.Max(maxX, x)
		minY, maxY = math.Min(minY, y), math.Max(maxY, y)
	}
	ox, oy := math.Floor(minX), math.Floor(minY)
	dw, dh := int(math.Ceil(maxX-ox)), int(math.Ceil(maxY-oy))
	if dw <= 0 || dh <= 0 || dw*dh > maxTextPixels {
		return
	}
	dst := image.NewRGBA(image.Rect(0, 0, dw, dh))
	aff[2] -= ox
	aff[5] -= oy
	draw.CatmullRom.Transform(dst, aff, src, src.Bounds(), draw.Over, nil)

	c.dc.Push()
	c.dc.Identity()
	c.dc.DrawImage(gg.ImageBufFromImage(dst), ox, oy)
	c.dc.Pop()
}

// SetClip implements ggplot.RenderContext.
func (c *RenderContext) SetClip(r ggplot.Rect) {
	c.dc.ResetClip()
	c.dc.ClipRect(r.Left, r.Top, r.Width, r.Height)
}

// ResetClip implements ggplot.RenderContext.
func (c *RenderContext) ResetClip() {
	c.dc.ResetClip()
}
