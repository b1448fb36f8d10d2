// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"golang.org/x/text/language"

	"github.com/gogpu/ggplot"
	"github.com/gogpu/ggplot/surface"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v", err)
	}
	if cfg.PlotMargins() != ggplot.DefaultMargins() {
		t.Errorf("PlotMargins() = %+v, want %+v", cfg.PlotMargins(), ggplot.DefaultMargins())
	}
	if r := cfg.ExportRect(); r.Width != 800 || r.Height != 600 {
		t.Errorf("ExportRect() = %+v, want 800x600", r)
	}
	bg, err := cfg.BackgroundColor()
	if err != nil {
		t.Fatal(err)
	}
	r, g, b, _ := bg.RGBA()
	if r>>8 != 0xd3 || g>>8 != 0xd3 || b>>8 != 0xd3 {
		t.Errorf("background = %v, want #d3d3d3", bg)
	}
}

func TestParseOverridesDefaults(t *testing.T) {
	cfg, err := Parse([]byte(`
pixel_scale = 3
origin = "bottom-left"
locale = "de"
pinch = false
log_level = "debug"

[margins]
left = 10

[export]
width = 1024
formats = ["pdf"]
`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.PixelScale != 3 || cfg.Pinch {
		t.Errorf("scale %v pinch %v", cfg.PixelScale, cfg.Pinch)
	}
	if cfg.Margins.Left != 10 || cfg.Margins.Bottom != 50 {
		t.Errorf("margins = %+v", cfg.Margins)
	}
	if cfg.Export.Width != 1024 || cfg.Export.Height != 600 {
		t.Errorf("export = %+v", cfg.Export)
	}
	if !slices.Equal(cfg.Export.Formats, []string{"pdf"}) {
		t.Errorf("formats = %v", cfg.Export.Formats)
	}
	if o, _ := cfg.SurfaceOrigin(); o != surface.OriginBottomLeft {
		t.Errorf("origin = %v", o)
	}
	if cfg.Language() != language.German {
		t.Errorf("language = %v", cfg.Language())
	}
	if l, _ := cfg.SlogLevel(); l != slog.LevelDebug {
		t.Errorf("level = %v", l)
	}
}

func TestParseRejects(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		invalid bool
	}{
		{"unknown key", `colour = "red"`, true},
		{"negative margin", "[margins]\nleft = -1", true},
		{"zero scale", "pixel_scale = 0", true},
		{"bad background", `background = "teal"`, true},
		{"bad origin", `origin = "center"`, true},
		{"bad locale", `locale = "not a locale"`, true},
		{"bad level", `log_level = "loud"`, true},
		{"empty export", "[export]\nwidth = 0", true},
		{"no formats", "[export]\nformats = []", true},
		{"syntax", "pixel_scale = ", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.input))
			if err == nil {
				t.Fatal("Parse succeeded")
			}
			if got := errors.Is(err, ErrInvalidConfig); got != tt.invalid {
				t.Errorf("errors.Is(ErrInvalidConfig) = %v, want %v (%v)", got, tt.invalid, err)
			}
		})
	}
}

func TestValidateJoinsErrors(t *testing.T) {
	cfg := Default()
	cfg.PixelScale = -1
	cfg.Export.Formats = nil
	err := cfg.Validate()
	var joined interface{ Unwrap() []error }
	if !errors.As(err, &joined) || len(joined.Unwrap()) != 2 {
		t.Errorf("Validate() = %v, want two joined errors", err)
	}
}

func TestLoadRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Background = "#102030"
	cfg.Export.Dir = "out"
	data, err := cfg.Marshal()
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	path := filepath.Join(t.TempDir(), "plot.toml")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Background != "#102030" || got.Export.Dir != "out" {
		t.Errorf("Load() = %+v", got)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("err = %v, want os.ErrNotExist", err)
	}
}

func TestEmptyBackground(t *testing.T) {
	cfg := Default()
	cfg.Background = ""
	bg, err := cfg.BackgroundColor()
	if bg != nil || err != nil {
		t.Errorf("BackgroundColor() = %v, %v, want nil, nil", bg, err)
	}
}
