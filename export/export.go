// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package export

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/gogpu/ggplot"
)

var (
	// ErrUnknownFormat is returned for formats missing from the registry.
	ErrUnknownFormat = errors.New("export: unknown format")

	// ErrNilPlot is returned when no plot model is given.
	ErrNilPlot = errors.New("export: nil plot")
)

// DefaultRect is the page used by hosts that export independently of the
// on-screen size.
var DefaultRect = ggplot.Rect{Width: 800, Height: 600}

// Encoder renders a plot into rect and writes the encoded result.
type Encoder interface {
	Encode(w io.Writer, plot *ggplot.PlotModel, rect ggplot.Rect) error
	// Extension is the file name extension without the dot.
	Extension() string
	MIMEType() string
}

// Encode renders plot with the encoder registered under format.
func Encode(format string, plot *ggplot.PlotModel, rect ggplot.Rect) ([]byte, error) {
	enc, ok := Lookup(format)
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownFormat, format)
	}
	if plot == nil {
		return nil, ErrNilPlot
	}
	var buf bytes.Buffer
	if err := enc.Encode(&buf, plot, rect); err != nil {
		return nil, fmt.Errorf("export: %s: %w", format, err)
	}
	ggplot.Logger().Info("export: encoded", "format", format, "bytes", buf.Len())
	return buf.Bytes(), nil
}

// ToRaster returns plot rendered into rect as PNG at one pixel per unit.
func ToRaster(plot *ggplot.PlotModel, rect ggplot.Rect) ([]byte, error) {
	return Encode("png", plot, rect)
}

// ToVectorPage returns plot drawn on a single PDF page the size of rect,
// in points.
func ToVectorPage(plot *ggplot.PlotModel, rect ggplot.Rect) ([]byte, error) {
	return Encode("pdf", plot, rect)
}

// Attachment is an encoded plot ready to be attached to a message.
type Attachment struct {
	FileName string
	MIMEType string
	Data     []byte
}

// NewAttachment encodes plot in format and names it after the plot title.
func NewAttachment(plot *ggplot.PlotModel, format string, rect ggplot.Rect) (Attachment, error) {
	enc, ok := Lookup(format)
	if !ok {
		return Attachment{}, fmt.Errorf("%w %q", ErrUnknownFormat, format)
	}
	data, err := Encode(format, plot, rect)
	if err != nil {
		return Attachment{}, err
	}
	return Attachment{
		FileName: FileName(plot.Title, enc.Extension()),
		MIMEType: enc.MIMEType(),
		Data:     data,
	}, nil
}

// FileName returns "<title>.<ext>", using "plot" for blank titles and
// replacing path separators.
func FileName(title, ext string) string {
	name := strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', 0:
			return '_'
		}
		return r
	}, strings.TrimSpace(title))
	if name == "" {
		name = "plot"
	}
	return name + "." + ext
}
