// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cursors defines the standard cursor shapes a plot surface
// requests from its host. The host maps them to whatever native
// cursors its platform provides.
package cursors

import "strconv"

// Cursor represents a standard cursor shape.
type Cursor int32

const (
	// None indicates no preference; the host keeps its current cursor.
	None Cursor = iota

	// Arrow is the standard arrow pointer.
	Arrow

	// Crosshair is a plus-shaped cursor for precise position actions.
	Crosshair

	// Pointer is a hand with a pointing index finger,
	// indicating something clickable.
	Pointer

	// Grab is an open hand, indicating something can be dragged.
	Grab

	// Grabbing is a closed hand, indicating an active drag.
	Grabbing

	// ResizeEW is a horizontal double-pointed arrow.
	ResizeEW

	// ResizeNS is a vertical double-pointed arrow.
	ResizeNS

	// Wait is a busy indicator.
	Wait

	// CursorN is the number of standard cursor shapes.
	CursorN
)

var cursorNames = []string{"none", "arrow", "crosshair", "pointer", "grab", "grabbing", "resize-ew", "resize-ns", "wait"}

func (c Cursor) String() string {
	if c < 0 || int(c) >= len(cursorNames) {
		return "cursor-" + strconv.Itoa(int(c))
	}
	return cursorNames[c]
}
