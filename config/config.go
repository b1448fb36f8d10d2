// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package config loads plot host settings from TOML.
//
// A file only needs the keys it changes; everything else keeps the value
// from Default:
//
//	pixel_scale = 3
//	background = "#ffffff"
//
//	[export]
//	width = 1024
//	height = 768
//	formats = ["png"]
package config

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"log/slog"
	"math"
	"os"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"

	"github.com/gogpu/ggplot"
	"github.com/gogpu/ggplot/surface"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config holds the settings a host needs to show and export plots.
type Config struct {
	Margins    Margins `toml:"margins"`
	Background string  `toml:"background"`
	// PixelScale is device pixels per view unit.
	PixelScale float64 `toml:"pixel_scale"`
	// Origin is "top-left" or "bottom-left".
	Origin   string `toml:"origin"`
	Locale   string `toml:"locale"`
	Pinch    bool   `toml:"pinch"`
	LogLevel string `toml:"log_level"`
	Export   Export `toml:"export"`
}

// Margins mirrors ggplot.Margins with TOML keys.
type Margins struct {
	Left   float64 `toml:"left"`
	Top    float64 `toml:"top"`
	Right  float64 `toml:"right"`
	Bottom float64 `toml:"bottom"`
}

// Export configures on-demand exports.
type Export struct {
	Width   float64  `toml:"width"`
	Height  float64  `toml:"height"`
	Formats []string `toml:"formats"`
	Dir     string   `toml:"dir"`
}

// Default returns the built-in settings.
func Default() Config {
	m := ggplot.DefaultMargins()
	return Config{
		Margins:    Margins{Left: m.Left, Top: m.Top, Right: m.Right, Bottom: m.Bottom},
		Background: "#d3d3d3",
		PixelScale: 2,
		Origin:     "top-left",
		Locale:     "en",
		Pinch:      true,
		LogLevel:   "info",
		Export: Export{
			Width:   800,
			Height:  600,
			Formats: []string{"png", "pdf"},
			Dir:     ".",
		},
	}
}

// Load reads and validates the TOML file at path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes TOML over Default and validates the result. Unknown keys
// are rejected.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return Config{}, fmt.Errorf("%w: %s", ErrInvalidConfig, strict.String())
		}
		return Config{}, fmt.Errorf("config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Marshal encodes c as TOML.
func (c Config) Marshal() ([]byte, error) {
	return toml.Marshal(c)
}

// Validate reports every invalid setting, joined.
func (c Config) Validate() error {
	var errs []error
	bad := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...))
	}

	for name, v := range map[string]float64{
		"margins.left": c.Margins.Left, "margins.top": c.Margins.Top,
		"margins.right": c.Margins.Right, "margins.bottom": c.Margins.Bottom,
	} {
		if !(v >= 0) || math.IsInf(v, 1) {
			bad("%s = %v must be a non-negative number", name, v)
		}
	}
	if _, err := c.BackgroundColor(); err != nil {
		bad("background %q: %v", c.Background, err)
	}
	if !positive(c.PixelScale) {
		bad("pixel_scale = %v must be positive", c.PixelScale)
	}
	if _, err := c.SurfaceOrigin(); err != nil {
		bad("%v", err)
	}
	if _, err := language.Parse(c.Locale); err != nil {
		bad("locale %q: %v", c.Locale, err)
	}
	if _, err := c.SlogLevel(); err != nil {
		bad("log_level %q: %v", c.LogLevel, err)
	}
	if !positive(c.Export.Width) || !positive(c.Export.Height) {
		bad("export size %vx%v must be positive", c.Export.Width, c.Export.Height)
	}
	if len(c.Export.Formats) == 0 {
		bad("export.formats is empty")
	}
	return errors.Join(errs...)
}

func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}

// PlotMargins returns the margins for ggplot.WithMargins.
func (c Config) PlotMargins() ggplot.Margins {
	return ggplot.Margins{
		Left:   c.Margins.Left,
		Top:    c.Margins.Top,
		Right:  c.Margins.Right,
		Bottom: c.Margins.Bottom,
	}
}

// BackgroundColor parses Background as "#rrggbb" or "#rgb". An empty
// string means no background.
func (c Config) BackgroundColor() (color.Color, error) {
	if c.Background == "" {
		return nil, nil
	}
	col, err := colorful.Hex(c.Background)
	if err != nil {
		return nil, err
	}
	return col, nil
}

// SurfaceOrigin returns the configured render surface origin.
func (c Config) SurfaceOrigin() (surface.Origin, error) {
	switch strings.ToLower(c.Origin) {
	case "", "top-left":
		return surface.OriginTopLeft, nil
	case "bottom-left":
		return surface.OriginBottomLeft, nil
	default:
		return surface.OriginTopLeft, fmt.Errorf("unknown origin %q", c.Origin)
	}
}

// Language returns the tick label locale, falling back to English.
func (c Config) Language() language.Tag {
	tag, err := language.Parse(c.Locale)
	if err != nil {
		return language.English
	}
	return tag
}

// SlogLevel parses LogLevel ("debug", "info", "warn", "error").
func (c Config) SlogLevel() (slog.Level, error) {
	var l slog.Level
	if c.LogLevel == "" {
		return slog.LevelInfo, nil
	}
	err := l.UnmarshalText([]byte(c.LogLevel))
	return l, err
}

// ExportRect returns the export page rectangle.
func (c Config) ExportRect() ggplot.Rect {
	return ggplot.Rect{Width: c.Export.Width, Height: c.Export.Height}
}
