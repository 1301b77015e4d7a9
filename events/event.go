// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package events provides the neutral event records used to deliver
// keyboard, mouse, and touch input to rendering surfaces, independent
// of any particular windowing backend.
package events

import (
	"image"
	"time"

	"cogentcore.org/plotview/events/key"
)

// Event is the interface for GUI events: most are implemented
// by [Base], with other types extending it for their extra data.
type Event interface {

	// Type returns the type of event associated with given event
	Type() Types

	// AsBase returns this event as a [Base] event type,
	// which is used for most Event types.
	AsBase() *Base

	// IsUnique returns true if this event must always be sent,
	// by default, and not compressed with like events.
	IsUnique() bool

	// IsHandled returns whether this event has already been processed.
	IsHandled() bool

	// SetHandled marks the event as having been processed,
	// which stops any further dispatch.
	SetHandled()

	// ClearHandled clears the handled state, to reuse an event record.
	ClearHandled()

	// HasPos returns true if the event has a position associated with it.
	HasPos() bool

	// Pos returns the position of the event in the rendering surface,
	// in raw display dots (pixels).
	Pos() image.Point

	// StartPos returns the position at the start of the current
	// action (e.g., where the button was first pressed for a drag).
	StartPos() image.Point

	// PrevPos returns the previous event position.
	PrevPos() image.Point

	// StartDelta returns the position change from the start
	// of the current action.
	StartDelta() image.Point

	// PrevDelta returns the position change from the previous event.
	PrevDelta() image.Point

	// Time returns the time when the event was generated.
	Time() time.Time

	// MouseButton is the mouse button being pressed or released,
	// for mouse events.
	MouseButton() Buttons

	// Modifiers are the modifier keys held down at the time of the event.
	Modifiers() key.Modifiers

	// HasAnyModifier returns whether any of the given modifiers
	// were held down at the time of the event.
	HasAnyModifier(mods ...key.Modifiers) bool

	// KeyRune returns the meaning of the key event, for key events.
	KeyRune() rune

	// KeyCode returns the physical key code, for key events.
	KeyCode() key.Codes

	// KeyChord returns the [key.Chord] string for the event.
	KeyChord() key.Chord

	// String returns a descriptive string for the event.
	String() string
}
