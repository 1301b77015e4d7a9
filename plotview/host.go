// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plotview

import (
	"cogentcore.org/plotview/cursors"
)

// Host is what a windowing backend provides to a [View]: presenting
// frames and the small set of window-level services the interaction
// machinery needs. A view with a nil host is headless and treats every
// host call as a no-op, so models and controllers can be exercised
// without any window system.
//
// Hosts obtain the frame to present through [View.Composite] or
// [View.Image].
type Host interface {

	// Refresh asks the host to present the current composited frame.
	// Called on the render goroutine after each completed pass.
	Refresh()

	// SetCursor sets the pointer cursor shown over the view.
	SetCursor(c cursors.Cursor)

	// RequestFocus asks for keyboard focus, so Escape and the other
	// key commands reach the view after a click.
	RequestFocus()

	// CapturePointer grabs (true) or releases (false) the pointer, so
	// drags keep streaming to the view after leaving its bounds.
	CapturePointer(capture bool)
}

// ClipboardSetter is an optional [Host] capability for copying tracker
// labels. Hosts without it make SetClipboardText report a failure
// through the view's Notify callback instead.
type ClipboardSetter interface {
	SetClipboardText(text string) error
}
