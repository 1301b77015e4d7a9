// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"fmt"
	"image"
	"time"

	"cogentcore.org/plotview/events/key"
)

// Base is the base type for events, which can represent most event types
// directly: other event types add fields to this base by embedding it.
type Base struct {

	// Typ is the type of event, returned by Type()
	Typ Types

	// Flags records the event boolean state
	Flags EventFlags

	// GenTime is the time when the event was generated
	GenTime time.Time

	// Where is the mouse position in the rendering surface,
	// in raw display dots (pixels)
	Where image.Point

	// Start is the mouse position at the start of the current
	// action (e.g., the position at MouseDown for a MouseDrag)
	Start image.Point

	// Prev is the previous mouse position
	Prev image.Point

	// Button is the mouse button being pressed or released, for mouse events
	Button Buttons

	// Mods are the modifier keys held down at the time of the event
	Mods key.Modifiers

	// Rune is the meaning of the key event as determined by the
	// operating system, for key events
	Rune rune

	// Code is the identity of the physical key relative to a notional
	// "standard" keyboard, for key events
	Code key.Codes
}

// Init sets the event to its initial state, recording the generation time.
func (ev *Base) Init() {
	ev.GenTime = time.Now()
}

func (ev *Base) Type() Types {
	return ev.Typ
}

func (ev *Base) AsBase() *Base {
	return ev
}

func (ev *Base) IsUnique() bool {
	return ev.Flags&Unique != 0
}

// SetUnique marks the event as not subject to compression.
func (ev *Base) SetUnique() {
	ev.Flags |= Unique
}

func (ev *Base) IsHandled() bool {
	return ev.Flags&Handled != 0
}

// SetHandled marks the event as having been processed, which
// stops any further dispatch.
func (ev *Base) SetHandled() {
	ev.Flags |= Handled
}

// ClearHandled clears the handled state, to reuse an event record.
func (ev *Base) ClearHandled() {
	ev.Flags &^= Handled
}

func (ev *Base) HasPos() bool {
	return false
}

// Pos returns the position of the event in the rendering surface.
func (ev *Base) Pos() image.Point {
	return ev.Where
}

// StartPos returns the position at the start of the current action.
func (ev *Base) StartPos() image.Point {
	return ev.Start
}

// PrevPos returns the previous event position.
func (ev *Base) PrevPos() image.Point {
	return ev.Prev
}

// StartDelta returns the position change from the start of the
// current action.
func (ev *Base) StartDelta() image.Point {
	return ev.Where.Sub(ev.Start)
}

// PrevDelta returns the position change from the previous event.
func (ev *Base) PrevDelta() image.Point {
	return ev.Where.Sub(ev.Prev)
}

func (ev *Base) Time() time.Time {
	return ev.GenTime
}

func (ev *Base) MouseButton() Buttons {
	return ev.Button
}

func (ev *Base) Modifiers() key.Modifiers {
	return ev.Mods
}

// HasAnyModifier returns whether any of the given modifiers
// were held down at the time of the event.
func (ev *Base) HasAnyModifier(mods ...key.Modifiers) bool {
	return key.HasAnyModifier(ev.Mods, mods...)
}

// HasAllModifiers returns whether all of the given modifiers
// were held down at the time of the event.
func (ev *Base) HasAllModifiers(mods ...key.Modifiers) bool {
	return key.HasAllModifiers(ev.Mods, mods...)
}

// KeyRune returns the meaning of the key event, for key events.
func (ev *Base) KeyRune() rune {
	return ev.Rune
}

// KeyCode returns the physical key code, for key events.
func (ev *Base) KeyCode() key.Codes {
	return ev.Code
}

// KeyChord returns the [key.Chord] string for the event.
func (ev *Base) KeyChord() key.Chord {
	return key.NewChord(ev.Rune, ev.Code, ev.Mods)
}

func (ev *Base) String() string {
	return fmt.Sprintf("%v{Pos: %v, Time: %v}", ev.Type(), ev.Where, ev.Time().Format("04:05"))
}
