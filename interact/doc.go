// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package interact turns touch and pinch input into pan and zoom of a
// plot's axes.
//
// A Controller is fed platform touch events through HandleTouch. A single
// finger drags every axis of the target; pinch updates arrive through a
// PinchRecognizer handle obtained from SetPinchEnabled. After every
// mutation the controller asks its Invalidator to redraw, and the host
// repaints on its next display pass.
//
// Controller is NOT safe for concurrent use. Feed it from the goroutine
// that owns the view.
package interact
