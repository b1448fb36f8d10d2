// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package interact

import "github.com/gogpu/ggplot"

// PinchRecognizer is the controller end of a platform pinch gesture.
// The platform reports the scale accumulated since the last reset; the
// recognizer zooms by it and resets the baseline to 1, so every update
// applies only the change since the previous one.
type PinchRecognizer struct {
	owner *Controller
	scale float64
	focal ggplot.ScreenPoint
}

// Update applies a pinch sample. It returns false, doing nothing, when the
// recognizer has been detached from its controller.
func (r *PinchRecognizer) Update(scale float64, focal ggplot.ScreenPoint) bool {
	if r == nil || r.owner == nil || r.owner.pinch != r {
		return false
	}
	r.scale = scale
	r.focal = focal
	r.owner.zoom(scale, focal)
	r.scale = 1
	return true
}

// Scale returns the scale baseline the platform should report against.
// It is 1 after every applied update.
func (r *PinchRecognizer) Scale() float64 {
	if r == nil {
		return 1
	}
	return r.scale
}

// Focal returns the focal point of the last update.
func (r *PinchRecognizer) Focal() ggplot.ScreenPoint {
	if r == nil {
		return ggplot.ScreenPoint{}
	}
	return r.focal
}

// Attached reports whether the recognizer still drives its controller.
func (r *PinchRecognizer) Attached() bool {
	return r != nil && r.owner != nil
}
