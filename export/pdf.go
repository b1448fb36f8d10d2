// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package export

import (
	"fmt"
	"image/color"
	"io"

	"codeberg.org/go-pdf/fpdf"

	"github.com/gogpu/ggplot"
)

// PDFEncoder draws plots on a single PDF page whose size in points equals
// the export rectangle.
type PDFEncoder struct {
	// Creator is written to the document information dictionary.
	Creator string
}

var _ Encoder = PDFEncoder{}

// Encode implements Encoder.
func (e PDFEncoder) Encode(w io.Writer, plot *ggplot.PlotModel, rect ggplot.Rect) error {
	if rect.Empty() {
		return fmt.Errorf("pdf: %w", ggplot.ErrEmptySurface)
	}

	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           fpdf.SizeType{Wd: rect.Width, Ht: rect.Height},
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	creator := e.Creator
	if creator == "" {
		creator = "ggplot"
	}
	pdf.SetCreator(creator, true)
	if plot.Title != "" {
		pdf.SetTitle(plot.Title, true)
	}
	pdf.AddPage()

	rc := newPDFContext(pdf, rect)
	plot.Update()
	plot.RenderDetached(rc, rect)
	rc.ResetClip()

	if err := pdf.Error(); err != nil {
		return err
	}
	return pdf.Output(w)
}

// Extension implements Encoder.
func (PDFEncoder) Extension() string { return "pdf" }

// MIMEType implements Encoder.
func (PDFEncoder) MIMEType() string { return "application/pdf" }

// Helvetica metrics, in units of the font size.
const (
	pdfFontFamily = "Helvetica"
	pdfAscent     = 0.718
	pdfDescent    = 0.207
	pdfLineHeight = 1.2
)

// pdfContext implements ggplot.RenderContext on an fpdf page. Screen units
// map one to one onto points, offset by the export rectangle origin.
type pdfContext struct {
	pdf     *fpdf.Fpdf
	origin  ggplot.ScreenPoint
	tr      func(string) string
	clipped bool
}

var _ ggplot.RenderContext = (*pdfContext)(nil)

func newPDFContext(pdf *fpdf.Fpdf, rect ggplot.Rect) *pdfContext {
	pdf.SetFont(pdfFontFamily, "", ggplot.DefaultFontSize)
	return &pdfContext{
		pdf:    pdf,
		origin: ggplot.Sp(rect.Left, rect.Top),
		// Core fonts are cp1252 encoded.
		tr: pdf.UnicodeTranslatorFromDescriptor(""),
	}
}

func (c *pdfContext) pt(p ggplot.ScreenPoint) (float64, float64) {
	return p.X - c.origin.X, p.Y - c.origin.Y
}

func nrgba(col color.Color) (r, g, b int, alpha float64) {
	n := color.NRGBAModel.Convert(col).(color.NRGBA)
	return int(n.R), int(n.G), int(n.B), float64(n.A) / 255
}

// style prepares fill and stroke state and returns the fpdf style string,
// or "" when nothing would be drawn.
func (c *pdfContext) style(fill color.Color, stroke ggplot.Stroke) string {
	s := ""
	alpha := 1.0
	if fill != nil {
		r, g, b, a := nrgba(fill)
		if a > 0 {
			c.pdf.SetFillColor(r, g, b)
			alpha = a
			s += "F"
		}
	}
	if stroke.Visible() {
		r, g, b, a := nrgba(stroke.Color)
		if a > 0 {
			c.pdf.SetDrawColor(r, g, b)
			c.pdf.SetLineWidth(stroke.Thickness)
			c.pdf.SetLineJoinStyle(joinStyle(stroke.Join))
			c.pdf.SetDashPattern(stroke.Dash, 0)
			if s == "" {
				alpha = a
			}
			s += "D"
		}
	}
	c.pdf.SetAlpha(alpha, "Normal")
	return s
}

func joinStyle(j ggplot.LineJoin) string {
	switch j {
	case ggplot.LineJoinRound:
		return "round"
	case ggplot.LineJoinBevel:
		return "bevel"
	default:
		return "miter"
	}
}

func (c *pdfContext) DrawLine(points []ggplot.ScreenPoint, stroke ggplot.Stroke) {
	if len(points) < 2 || c.style(nil, stroke) == "" {
		return
	}
	c.pdf.MoveTo(c.pt(points[0]))
	for _, p := range points[1:] {
		c.pdf.LineTo(c.pt(p))
	}
	c.pdf.DrawPath("D")
}

func (c *pdfContext) DrawPolygon(points []ggplot.ScreenPoint, fill color.Color, stroke ggplot.Stroke) {
	if len(points) < 3 {
		return
	}
	s := c.style(fill, stroke)
	if s == "" {
		return
	}
	pts := make([]fpdf.PointType, len(points))
	for i, p := range points {
		pts[i].X, pts[i].Y = c.pt(p)
	}
	c.pdf.Polygon(pts, s)
}

func (c *pdfContext) DrawRectangle(r ggplot.Rect, fill color.Color, stroke ggplot.Stroke) {
	if r.Empty() {
		return
	}
	if s := c.style(fill, stroke); s != "" {
		x, y := c.pt(ggplot.Sp(r.Left, r.Top))
		c.pdf.Rect(x, y, r.Width, r.Height, s)
	}
}

func (c *pdfContext) DrawEllipse(r ggplot.Rect, fill color.Color, stroke ggplot.Stroke) {
	if r.Empty() {
		return
	}
	if s := c.style(fill, stroke); s != "" {
		x, y := c.pt(r.Center())
		c.pdf.Ellipse(x, y, r.Width/2, r.Height/2, 0, s)
	}
}

func (c *pdfContext) DrawText(p ggplot.ScreenPoint, s string, style ggplot.TextStyle) {
	if s == "" || style.Color == nil || !(style.Size > 0) {
		return
	}
	r, g, b, a := nrgba(style.Color)
	if a == 0 {
		return
	}
	c.pdf.SetFontSize(style.Size)
	c.pdf.SetTextColor(r, g, b)
	c.pdf.SetAlpha(a, "Normal")

	txt := c.tr(s)
	w, h := c.pdf.GetStringWidth(txt), style.Size*pdfLineHeight
	dx, dy := ggplot.TextOffset(w, h, style.HAlign, style.VAlign)
	baseline := dy + (h-(pdfAscent+pdfDescent)*style.Size)/2 + pdfAscent*style.Size

	x, y := c.pt(p)
	if style.Rotation != 0 {
		c.pdf.TransformBegin()
		c.pdf.TransformRotate(-style.Rotation, x, y)
		c.pdf.Text(x+dx, y+baseline, txt)
		c.pdf.TransformEnd()
		return
	}
	c.pdf.Text(x+dx, y+baseline, txt)
}

func (c *pdfContext) MeasureText(s string, size float64) (float64, float64) {
	if s == "" || !(size > 0) {
		return 0, 0
	}
	c.pdf.SetFontSize(size)
	return c.pdf.GetStringWidth(c.tr(s)), size * pdfLineHeight
}

func (c *pdfContext) SetClip(r ggplot.Rect) {
	c.ResetClip()
	x, y := c.pt(ggplot.Sp(r.Left, r.Top))
	c.pdf.ClipRect(x, y, r.Width, r.Height, false)
	c.clipped = true
}

func (c *pdfContext) ResetClip() {
	if c.clipped {
		c.pdf.ClipEnd()
		c.clipped = false
	}
}
