// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"image"
	"image/png"
	"io"

	"golang.org/x/image/draw"

	"github.com/gogpu/ggplot"
)

// Snapshot is a rendered plot: an immutable pixel buffer with the scale it
// was rendered at. The zero Snapshot is empty.
type Snapshot struct {
	img   *image.RGBA
	scale float64
}

// Empty reports whether the snapshot holds no pixels.
func (s *Snapshot) Empty() bool {
	return s == nil || s.img == nil || s.img.Rect.Empty()
}

// Width returns the buffer width in device pixels.
func (s *Snapshot) Width() int {
	if s.Empty() {
		return 0
	}
	return s.img.Rect.Dx()
}

// Height returns the buffer height in device pixels.
func (s *Snapshot) Height() int {
	if s.Empty() {
		return 0
	}
	return s.img.Rect.Dy()
}

// Scale returns the device pixels per view unit the snapshot was rendered
// at.
func (s *Snapshot) Scale() float64 {
	if s == nil {
		return 0
	}
	return s.scale
}

// Image returns the pixels. The image must not be modified.
func (s *Snapshot) Image() image.Image {
	if s.Empty() {
		return image.NewRGBA(image.Rectangle{})
	}
	return s.img
}

// Pix returns a copy of the RGBA pixel bytes, row-major without padding.
func (s *Snapshot) Pix() []byte {
	if s.Empty() {
		return nil
	}
	w, h := s.Width(), s.Height()
	out := make([]byte, 0, w*h*4)
	for y := 0; y < h; y++ {
		off := y * s.img.Stride
		out = append(out, s.img.Pix[off:off+w*4]...)
	}
	return out
}

// Composite draws the snapshot over dst, scaled into r with Catmull-Rom
// interpolation.
func (s *Snapshot) Composite(dst draw.Image, r image.Rectangle) {
	if s.Empty() || r.Empty() {
		return
	}
	if r.Size() == s.img.Rect.Size() {
		draw.Draw(dst, r, s.img, s.img.Rect.Min, draw.Over)
		return
	}
	draw.CatmullRom.Scale(dst, r, s.img, s.img.Rect, draw.Over, nil)
}

// EncodePNG writes the snapshot as PNG. An empty snapshot returns
// ggplot.ErrEmptySurface.
func (s *Snapshot) EncodePNG(w io.Writer) error {
	if s.Empty() {
		return ggplot.ErrEmptySurface
	}
	return png.Encode(w, s.img)
}
