// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

// Types determines the type of GUI event, and also the
// level at which one can select which events to listen to.
// The type includes both the source / nature of the event
// and the "action" type of the event (e.g., MouseDown, MouseUp
// are separate event types). The standard
// [JavaScript Event](https://developer.mozilla.org/en-US/docs/Web/Events)
// names provide the basis for most of the event type names and categories.
// Most events use the same Base type and only need
// to set relevant fields and the type.
// Unless otherwise noted, all events are marked as Unique,
// meaning they are always sent. Non-Unique events are subject
// to compression, where if the last event added (and not yet
// processed and therefore removed from the queue) is of the same type
// then it is replaced with the new one, instead of adding.
type Types int64

const (
	// zero value is an unknown type
	UnknownType Types = iota

	// MouseDown happens when a mouse button is pressed down.
	// See Button() for which.
	MouseDown

	// MouseUp happens when a mouse button is released. See Button() for which.
	MouseUp

	// MouseMove is always sent when the mouse is moving but no button is down,
	// even if there might be other higher-level events too.
	// These can be numerous and thus it is typically more efficient
	// to listen to other events derived from this.
	// Not unique, and Prev position is updated during compression.
	MouseMove

	// MouseDrag is always sent when the mouse is moving and there
	// is a button down, even if there might be other higher-level events too.
	// The start pos indicates where (and when) button first was pressed.
	// Not unique and Prev position is updated during compression.
	MouseDrag

	// MouseEnter is when the mouse enters the bounding box of a new element.
	// It is used for setting the Hover state, and can trigger cursor changes.
	MouseEnter

	// MouseLeave is when the mouse leaves the bounding box of an element,
	// that previously had a MouseEnter event triggered.
	MouseLeave

	// Scroll is for scroll wheel or other scrolling events (gestures).
	// These are not unique and Delta is updated during compression.
	Scroll

	// KeyDown is when a key is pressed down.
	// This provides fine-grained data about each key as it happens.
	// KeyChord is recommended for a more complete Key event.
	KeyDown

	// KeyUp is when a key is released.
	// This provides fine-grained data about each key as it happens.
	// KeyChord is recommended for a more complete Key event.
	KeyUp

	// KeyChord is only generated when a non-modifier key is released,
	// and it also contains a string representation of the full chord,
	// suitable for translation into keyboard commands, emacs-style etc.
	KeyChord

	// TouchStart is when a touch event starts, for the low-level touch
	// event processing.
	TouchStart

	// TouchMove is when a touch event moves, for the low-level touch
	// event processing. Not unique.
	TouchMove

	// TouchEnd is when a touch event ends, for the low-level touch
	// event processing.
	TouchEnd

	// Magnify is a touch-based magnify event (e.g., pinch).
	// Not unique, and ScaleFactor is updated during compression.
	Magnify

	// WindowResize happens when the rendering surface has been resized,
	// which can happen continuously during a user resizing
	// episode. These are not Unique events, and are compressed
	// to minimize lag.
	WindowResize
)

var typeNames = []string{
	"UnknownType",
	"MouseDown",
	"MouseUp",
	"MouseMove",
	"MouseDrag",
	"MouseEnter",
	"MouseLeave",
	"Scroll",
	"KeyDown",
	"KeyUp",
	"KeyChord",
	"TouchStart",
	"TouchMove",
	"TouchEnd",
	"Magnify",
	"WindowResize",
}

func (tp Types) String() string {
	if tp < 0 || int(tp) >= len(typeNames) {
		return "TypesOutOfRange"
	}
	return typeNames[tp]
}

// EventFlags encode boolean event properties
type EventFlags int64

const (
	// Handled indicates that the event has been handled
	Handled EventFlags = 1 << iota

	// Unique indicates that the event is Unique and not
	// to be compressed with like events.
	Unique
)
