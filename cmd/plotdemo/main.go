// Command plotdemo renders the example plots, replays a drag and a pinch on
// each, and writes the resulting view and exports to disk.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/gogpu/ggplot"
	"github.com/gogpu/ggplot/config"
	"github.com/gogpu/ggplot/export"
	"github.com/gogpu/ggplot/interact"
	"github.com/gogpu/ggplot/surface"
)

func main() {
	var (
		configPath  = flag.String("config", "", "TOML settings file")
		outDir      = flag.String("out", "", "output directory (overrides export.dir)")
		model       = flag.String("model", "all", "model to render: all, "+strings.Join(modelNames(), ", "))
		width       = flag.Float64("width", 320, "view width in points")
		height      = flag.Float64("height", 480, "view height in points")
		printConfig = flag.Bool("print-config", false, "print the effective settings and exit")
	)
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}
	if *outDir != "" {
		cfg.Export.Dir = *outDir
	}

	if *printConfig {
		data, err := cfg.Marshal()
		if err != nil {
			log.Fatalf("Failed to encode config: %v", err)
		}
		_, _ = os.Stdout.Write(data)
		return
	}

	level, _ := cfg.SlogLevel()
	ggplot.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	names := modelNames()
	if *model != "all" {
		names = []string{*model}
	}
	view := ggplot.Rect{Width: *width, Height: *height}
	for _, name := range names {
		files, err := run(cfg, name, view)
		if err != nil {
			log.Fatalf("%s: %v", name, err)
		}
		for _, f := range files {
			log.Printf("Wrote %s", f)
		}
	}
}

// run builds the named model, drives it through a scripted gesture and
// writes the view snapshot plus one file per export format. It returns the
// paths written.
func run(cfg config.Config, name string, view ggplot.Rect) ([]string, error) {
	build, ok := models[name]
	if !ok {
		return nil, fmt.Errorf("unknown model %q", name)
	}
	for _, f := range cfg.Export.Formats {
		if !export.IsRegistered(f) {
			return nil, fmt.Errorf("export format %q not available (have %v)", f, export.Formats())
		}
	}

	bg, err := cfg.BackgroundColor()
	if err != nil {
		return nil, err
	}
	origin, err := cfg.SurfaceOrigin()
	if err != nil {
		return nil, err
	}
	plot := build(
		ggplot.WithMargins(cfg.PlotMargins()),
		ggplot.WithBackground(bg),
		ggplot.WithLocale(cfg.Language()),
	)

	v := surface.NewView(plot, surface.WithOrigin(origin))
	ctrl := interact.NewController(plot, v, interact.WithPinch(cfg.Pinch))

	// First display pass lays out the axes.
	v.Snapshot(view, cfg.PixelScale)
	replay(ctrl, view)

	if err := os.MkdirAll(cfg.Export.Dir, 0o755); err != nil {
		return nil, err
	}

	var written []string
	viewPath := filepath.Join(cfg.Export.Dir, name+"-view.png")
	if err := writeSnapshot(viewPath, v.Snapshot(view, cfg.PixelScale)); err != nil {
		return nil, err
	}
	written = append(written, viewPath)

	for _, format := range cfg.Export.Formats {
		att, err := export.NewAttachment(plot, format, cfg.ExportRect())
		if err != nil {
			return written, err
		}
		path := filepath.Join(cfg.Export.Dir, att.FileName)
		if err := os.WriteFile(path, att.Data, 0o644); err != nil {
			return written, err
		}
		written = append(written, path)
	}
	return written, nil
}

// replay drags from the center towards the upper right, then pinches in
// around the center when pinch is enabled.
func replay(ctrl *interact.Controller, view ggplot.Rect) {
	c := view.Center()
	steps := []ggplot.ScreenVector{{X: 10, Y: -5}, {X: 10, Y: -5}, {X: 5, Y: -2}}

	prev := c
	ctrl.HandleTouch(interact.TouchEvent{Phase: interact.PhaseBegan, Touches: []interact.Touch{{Location: c, Previous: c}}})
	for i, d := range steps {
		cur := prev.Add(d)
		phase := interact.PhaseMoved
		if i == len(steps)-1 {
			phase = interact.PhaseEnded
		}
		ctrl.HandleTouch(interact.TouchEvent{Phase: phase, Touches: []interact.Touch{{Location: cur, Previous: prev}}})
		prev = cur
	}

	if r := ctrl.Pinch(); r != nil {
		for _, s := range []float64{1.1, 1.05, 1.05} {
			r.Update(s, c)
		}
	}
}

func writeSnapshot(path string, snap *surface.Snapshot) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := snap.EncodePNG(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
