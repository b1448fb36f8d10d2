// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package export

import (
	"bytes"
	"errors"
	"image/jpeg"
	"image/png"
	"io"
	"math"
	"slices"
	"strings"
	"testing"

	"github.com/gogpu/ggplot"
	"github.com/gogpu/ggplot/interact"
	"github.com/gogpu/ggplot/surface"
)

func samplePlot(title string) *ggplot.PlotModel {
	m := ggplot.NewPlotModel(title)
	m.Series = append(m.Series,
		ggplot.NewLineSeries("sin", ggplot.Dp(0, 0), ggplot.Dp(1, 0.84), ggplot.Dp(2, 0.91), ggplot.Dp(3, 0.14)),
	)
	line := ggplot.NewLineAnnotation(ggplot.LineVertical)
	line.X = 1.5
	line.Text = "x = 1.5"
	m.Annotations = append(m.Annotations, line)
	return m
}

func TestExportLeavesLiveLayout(t *testing.T) {
	tests := []struct {
		name   string
		export func(*ggplot.PlotModel, ggplot.Rect) ([]byte, error)
	}{
		{"raster", ToRaster},
		{"vector page", ToVectorPage},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x := ggplot.NewLinearAxis(ggplot.AxisBottom, ggplot.WithRange(0, 10))
			y := ggplot.NewLinearAxis(ggplot.AxisLeft, ggplot.WithRange(0, 10))
			m := ggplot.NewPlotModel("", ggplot.WithAxes(x, y))
			view := surface.NewView(m)
			view.Snapshot(ggplot.Rect{Width: 170, Height: 170}, 1)

			start, end := x.ScreenStart(), x.ScreenEnd()
			scale := x.Scale()
			if !(scale > 0) {
				t.Fatalf("live x scale = %v, want > 0", scale)
			}

			if _, err := tt.export(m, DefaultRect); err != nil {
				t.Fatalf("export: %v", err)
			}
			if x.ScreenStart() != start || x.ScreenEnd() != end {
				t.Fatalf("x screen range = [%v, %v] after export, want [%v, %v]",
					x.ScreenStart(), x.ScreenEnd(), start, end)
			}

			ctrl := interact.NewController(m, view)
			from := ggplot.Sp((start+end)/2, 60)
			to := ggplot.Sp(from.X+10, from.Y)
			ctrl.HandleTouch(interact.TouchEvent{Phase: interact.PhaseBegan, Touches: []interact.Touch{{Location: from, Previous: from}}})
			ctrl.HandleTouch(interact.TouchEvent{Phase: interact.PhaseMoved, Touches: []interact.Touch{{Location: to, Previous: from}}})

			shift := 10 / scale
			if math.Abs(x.DataMin()+shift) > 1e-9 || math.Abs(x.DataMax()-(10-shift)) > 1e-9 {
				t.Errorf("x = [%v, %v] after a 10px drag, want [%v, %v]", x.DataMin(), x.DataMax(), -shift, 10-shift)
			}
			if !view.IsDirty() {
				t.Error("drag did not invalidate the view")
			}
		})
	}
}

func TestToRasterDecodes(t *testing.T) {
	data, err := ToRaster(samplePlot("Waves"), DefaultRect)
	if err != nil {
		t.Fatalf("ToRaster: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("png.Decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 800 || b.Dy() != 600 {
		t.Errorf("bounds = %v, want 800x600", b)
	}
}

func TestToRasterUsesRect(t *testing.T) {
	a, err := ToRaster(samplePlot(""), ggplot.Rect{Width: 320, Height: 200})
	if err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(bytes.NewReader(a))
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 320 || b.Dy() != 200 {
		t.Errorf("bounds = %v, want 320x200", b)
	}
}

func TestToVectorPage(t *testing.T) {
	m := samplePlot("Waves")
	text := &ggplot.TextAnnotation{Position: ggplot.Dp(2, 0.5), Rotation: 30}
	text.Text = "rotated"
	m.Annotations = append(m.Annotations, text)

	data, err := ToVectorPage(m, DefaultRect)
	if err != nil {
		t.Fatalf("ToVectorPage: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		t.Errorf("missing PDF header: %q", data[:min(len(data), 8)])
	}
	if !bytes.Contains(data, []byte("%%EOF")) {
		t.Error("missing PDF trailer")
	}
}

func TestJPEGEncoder(t *testing.T) {
	data, err := Encode("jpeg", samplePlot("j"), ggplot.Rect{Width: 64, Height: 48})
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	img, err := jpeg.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("jpeg.Decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 64 || b.Dy() != 48 {
		t.Errorf("bounds = %v, want 64x48", b)
	}
}

func TestEncodeErrors(t *testing.T) {
	tests := []struct {
		name   string
		format string
		plot   *ggplot.PlotModel
		rect   ggplot.Rect
		want   error
	}{
		{"unknown format", "tiff", samplePlot(""), DefaultRect, ErrUnknownFormat},
		{"nil plot", "png", nil, DefaultRect, ErrNilPlot},
		{"empty png", "png", samplePlot(""), ggplot.Rect{}, ggplot.ErrEmptySurface},
		{"empty jpeg", "jpeg", samplePlot(""), ggplot.Rect{Width: 10}, ggplot.ErrEmptySurface},
		{"empty pdf", "pdf", samplePlot(""), ggplot.Rect{Height: 10}, ggplot.ErrEmptySurface},
		{"nan pdf", "pdf", samplePlot(""), ggplot.Rect{Width: math.NaN(), Height: 10}, ggplot.ErrEmptySurface},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := Encode(tt.format, tt.plot, tt.rect)
			if !errors.Is(err, tt.want) {
				t.Fatalf("err = %v, want %v", err, tt.want)
			}
			if data != nil {
				t.Errorf("data = %d bytes, want nil", len(data))
			}
		})
	}
}

func TestEncodeWrapsFormat(t *testing.T) {
	_, err := Encode("pdf", samplePlot(""), ggplot.Rect{})
	if err == nil || !strings.HasPrefix(err.Error(), "export: pdf:") {
		t.Errorf("err = %v, want export: pdf: prefix", err)
	}
}

func TestFileName(t *testing.T) {
	tests := []struct {
		title, ext, want string
	}{
		{"Waves", "png", "Waves.png"},
		{"", "pdf", "plot.pdf"},
		{"   ", "jpg", "plot.jpg"},
		{"a/b\\c:d", "png", "a_b_c_d.png"},
		{"Déjà vu", "pdf", "Déjà vu.pdf"},
	}
	for _, tt := range tests {
		if got := FileName(tt.title, tt.ext); got != tt.want {
			t.Errorf("FileName(%q, %q) = %q, want %q", tt.title, tt.ext, got, tt.want)
		}
	}
}

func TestNewAttachment(t *testing.T) {
	tests := []struct {
		format, title, file, mime string
	}{
		{"png", "Waves", "Waves.png", "image/png"},
		{"pdf", "", "plot.pdf", "application/pdf"},
		{"jpeg", "J", "J.jpg", "image/jpeg"},
	}
	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			a, err := NewAttachment(samplePlot(tt.title), tt.format, ggplot.Rect{Width: 120, Height: 90})
			if err != nil {
				t.Fatalf("NewAttachment: %v", err)
			}
			if a.FileName != tt.file || a.MIMEType != tt.mime {
				t.Errorf("got %q %q, want %q %q", a.FileName, a.MIMEType, tt.file, tt.mime)
			}
			if len(a.Data) == 0 {
				t.Error("empty data")
			}
		})
	}

	if _, err := NewAttachment(samplePlot(""), "bmp", DefaultRect); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("err = %v, want ErrUnknownFormat", err)
	}
}

type stubEncoder struct{}

func (stubEncoder) Encode(w io.Writer, _ *ggplot.PlotModel, _ ggplot.Rect) error {
	_, err := io.WriteString(w, "stub")
	return err
}
func (stubEncoder) Extension() string { return "txt" }
func (stubEncoder) MIMEType() string  { return "text/plain" }

func TestRegistry(t *testing.T) {
	for _, name := range []string{"jpeg", "pdf", "png"} {
		if !IsRegistered(name) {
			t.Errorf("%s not registered", name)
		}
	}

	Register("stub", stubEncoder{})
	t.Cleanup(func() { Unregister("stub") })

	formats := Formats()
	if !slices.IsSorted(formats) {
		t.Errorf("Formats() = %v, not sorted", formats)
	}
	if !slices.Contains(formats, "stub") {
		t.Errorf("Formats() = %v, missing stub", formats)
	}
	data, err := Encode("stub", samplePlot(""), DefaultRect)
	if err != nil || string(data) != "stub" {
		t.Errorf("Encode(stub) = %q, %v", data, err)
	}

	Unregister("stub")
	if IsRegistered("stub") {
		t.Error("stub still registered after Unregister")
	}
	Unregister("stub")
}

func TestRegisterPanics(t *testing.T) {
	tests := []struct {
		name string
		enc  Encoder
	}{
		{"png", stubEncoder{}},
		{"nil-encoder", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("Register did not panic")
				}
			}()
			Register(tt.name, tt.enc)
		})
	}
}
