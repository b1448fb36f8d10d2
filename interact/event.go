// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package interact

import "github.com/gogpu/ggplot"

// Phase is the stage of a touch sequence an event reports.
type Phase int

const (
	PhaseBegan Phase = iota
	PhaseMoved
	PhaseEnded
	PhaseCancelled
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseBegan:
		return "Began"
	case PhaseMoved:
		return "Moved"
	case PhaseEnded:
		return "Ended"
	case PhaseCancelled:
		return "Cancelled"
	default:
		return "Unknown"
	}
}

// Touch is one finger sample in view coordinates.
type Touch struct {
	Location ggplot.ScreenPoint
	// Previous is the location reported by the preceding sample.
	Previous ggplot.ScreenPoint
}

// Delta returns the displacement since the previous sample.
func (t Touch) Delta() ggplot.ScreenVector {
	return t.Location.Sub(t.Previous)
}

// TouchEvent carries the touches that changed in one platform callback.
type TouchEvent struct {
	Phase   Phase
	Touches []Touch
	// ActiveTouches counts every finger on the surface, changed or not.
	// Zero means len(Touches).
	ActiveTouches int
}

func (e TouchEvent) active() int {
	if e.ActiveTouches > 0 {
		return e.ActiveTouches
	}
	return len(e.Touches)
}

// TouchHandler receives touch events.
type TouchHandler interface {
	HandleTouch(ev TouchEvent)
}

// TouchHandlerFunc adapts a function to TouchHandler.
type TouchHandlerFunc func(ev TouchEvent)

// HandleTouch calls f(ev).
func (f TouchHandlerFunc) HandleTouch(ev TouchEvent) { f(ev) }
