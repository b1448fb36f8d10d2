// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package export encodes plot models into byte payloads for sharing.
//
// ToRaster produces a PNG and ToVectorPage a single-page PDF, both rendered
// from the current plot state into a caller-chosen rectangle that does not
// depend on the live view size. NewAttachment wraps the payload with a file
// name and MIME type for mail or share sheets.
//
// Encoders are looked up by name in a registry following the database/sql
// driver pattern. The "png", "jpeg" and "pdf" encoders are built in;
// additional formats register themselves from init:
//
//	func init() {
//	    export.Register("svg", svgEncoder{})
//	}
//
// Unlike interactive rendering, export failures are returned to the
// caller, wrapped with the format name.
package export
