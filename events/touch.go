// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"fmt"
	"image"
)

// Touch is a touch event for the TouchStart, TouchMove,
// and TouchEnd event types.
type Touch struct {
	Base

	// Sequence is the sequence number of the touch: distinct touches
	// in progress have distinct sequence numbers.
	Sequence Sequence
}

// Sequence identifies a sequence of touch events: all events
// in the same finger-down through finger-up arc share one.
type Sequence int64

func NewTouch(typ Types, seq Sequence, where image.Point) *Touch {
	ev := &Touch{}
	ev.Typ = typ
	if typ != TouchMove {
		ev.SetUnique()
	}
	ev.Sequence = seq
	ev.Where = where
	return ev
}

func (ev *Touch) HasPos() bool {
	return true
}

func (ev *Touch) String() string {
	return fmt.Sprintf("%v{Seq: %v, Pos: %v, Time: %v}", ev.Type(), ev.Sequence, ev.Where, ev.Time().Format("04:05"))
}

// TouchMagnify is a touch-based magnify event (e.g., a two-finger pinch).
type TouchMagnify struct {
	Touch

	// ScaleFactor is the multiplicative scale factor relative to the
	// previous magnification state.
	ScaleFactor float32
}

func NewMagnify(scaleFactor float32, where image.Point) *TouchMagnify {
	ev := &TouchMagnify{}
	ev.Typ = Magnify
	// not unique: scale factors multiply during compression
	ev.ScaleFactor = scaleFactor
	ev.Where = where
	return ev
}

func (ev *TouchMagnify) String() string {
	return fmt.Sprintf("%v{ScaleFactor: %v, Pos: %v, Time: %v}", ev.Type(), ev.ScaleFactor, ev.Where, ev.Time().Format("04:05"))
}
