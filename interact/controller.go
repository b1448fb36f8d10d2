// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package interact

import (
	"github.com/gogpu/ggplot"
)

// State is the drag state of a Controller.
type State int

const (
	// Idle waits for a single-finger touch.
	Idle State = iota
	// Dragging pans every axis with each touch sample.
	Dragging
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case Idle:
		return "Idle"
	case Dragging:
		return "Dragging"
	default:
		return "Unknown"
	}
}

// Target is the plot whose axes the controller moves.
// *ggplot.PlotModel implements it.
type Target interface {
	PanZoomAxes() []ggplot.PanZoomable
	ResetAllAxes()
}

// Invalidator schedules a redraw. *surface.View implements it.
type Invalidator interface {
	Invalidate()
}

// Option configures a Controller.
type Option func(*Controller)

// WithPlatformHandler installs the platform default handler. It sees every
// event before the controller interprets it.
func WithPlatformHandler(h TouchHandler) Option {
	return func(c *Controller) {
		c.platform = h
	}
}

// WithPinch attaches a pinch recognizer at construction.
func WithPinch(enabled bool) Option {
	return func(c *Controller) {
		c.SetPinchEnabled(enabled)
	}
}

// Controller maps touch and pinch gestures onto axis pan and zoom.
type Controller struct {
	target   Target
	inv      Invalidator
	platform TouchHandler
	state    State
	pinch    *PinchRecognizer
}

var _ TouchHandler = (*Controller)(nil)

// NewController returns an idle controller driving target. inv may be nil
// when the host polls for changes instead.
func NewController(target Target, inv Invalidator, opts ...Option) *Controller {
	c := &Controller{target: target, inv: inv}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// State returns the current drag state.
func (c *Controller) State() State { return c.state }

// HandleTouch runs the platform handler, then pans on single-finger drags.
func (c *Controller) HandleTouch(ev TouchEvent) {
	if c.platform != nil {
		c.platform.HandleTouch(ev)
	}

	switch ev.Phase {
	case PhaseBegan:
		if ev.active() != 1 {
			// Reserved for pinch.
			c.state = Idle
			return
		}
		c.state = Dragging
		c.pan(ev)
	case PhaseMoved:
		if c.state == Dragging {
			c.pan(ev)
		}
	case PhaseEnded:
		if c.state == Dragging {
			c.pan(ev)
		}
		c.state = Idle
	case PhaseCancelled:
		c.state = Idle
		c.invalidate()
	}
}

func (c *Controller) pan(ev TouchEvent) {
	if len(ev.Touches) == 0 {
		return
	}
	t := ev.Touches[0]
	for _, a := range c.axes() {
		if err := a.Pan(t.Previous, t.Location); err != nil {
			ggplot.Logger().Debug("interact: pan skipped", "err", err)
		}
	}
	c.invalidate()
}

func (c *Controller) zoom(scale float64, focal ggplot.ScreenPoint) {
	for _, a := range c.axes() {
		if err := a.ZoomAt(scale, focal); err != nil {
			ggplot.Logger().Debug("interact: zoom skipped", "scale", scale, "err", err)
		}
	}
	c.invalidate()
}

func (c *Controller) axes() []ggplot.PanZoomable {
	if c.target == nil {
		return nil
	}
	return c.target.PanZoomAxes()
}

func (c *Controller) invalidate() {
	if c.inv != nil {
		c.inv.Invalidate()
	}
}

// Reset restores every axis to its configured range and ends any drag.
func (c *Controller) Reset() {
	c.state = Idle
	if c.target != nil {
		c.target.ResetAllAxes()
	}
	c.invalidate()
}

// SetPinchEnabled attaches or detaches the pinch recognizer and returns
// the attached handle, or nil when disabled. Enabling twice returns the
// same handle. Handles detached by a disable are stale for good.
func (c *Controller) SetPinchEnabled(enabled bool) *PinchRecognizer {
	switch {
	case enabled && c.pinch == nil:
		c.pinch = &PinchRecognizer{owner: c, scale: 1}
	case !enabled && c.pinch != nil:
		c.pinch.owner = nil
		c.pinch = nil
	}
	return c.pinch
}

// PinchEnabled reports whether a pinch recognizer is attached.
func (c *Controller) PinchEnabled() bool { return c.pinch != nil }

// Pinch returns the attached recognizer, or nil.
func (c *Controller) Pinch() *PinchRecognizer { return c.pinch }
