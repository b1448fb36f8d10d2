// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"image/color"

	"github.com/gogpu/gg/text"
)

// Origin is the corner of the pixel buffer that holds row zero.
type Origin int

const (
	// OriginTopLeft is the native raster layout.
	OriginTopLeft Origin = iota
	// OriginBottomLeft flips the buffer vertically for bottom-left hosts.
	OriginBottomLeft
)

// String returns the origin name.
func (o Origin) String() string {
	if o == OriginBottomLeft {
		return "bottom-left"
	}
	return "top-left"
}

// Option configures Render and View.
type Option func(*options)

type options struct {
	origin     Origin
	font       *text.FontSource
	background color.Color
}

func defaultOptions() options {
	return options{origin: OriginTopLeft}
}

func collect(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithOrigin selects the buffer origin.
func WithOrigin(origin Origin) Option {
	return func(o *options) { o.origin = origin }
}

// WithFont replaces the built-in Go Regular font.
func WithFont(src *text.FontSource) Option {
	return func(o *options) { o.font = src }
}

// WithBackground clears the buffer to c before the plot draws. Without it
// the buffer starts transparent.
func WithBackground(c color.Color) Option {
	return func(o *options) { o.background = c }
}
