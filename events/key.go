// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"fmt"

	"cogentcore.org/plotview/events/key"
)

// Key is a low-level immediately generated key event, tracking press
// and release of keys, and the rune associated therewith, if any.
// The [Types] are KeyDown, KeyUp, and KeyChord, where KeyChord is sent
// when a non-modifier key is released, with the full chord recorded.
type Key struct {
	Base
}

func NewKey(typ Types, rn rune, code key.Codes, mods key.Modifiers) *Key {
	ev := &Key{}
	ev.Typ = typ
	ev.SetUnique()
	ev.Rune = rn
	ev.Code = code
	ev.Mods = mods
	return ev
}

func (ev *Key) String() string {
	return fmt.Sprintf("%v{Chord: %v, Rune: %d, Code: %v, Time: %v}", ev.Type(), ev.KeyChord(), ev.Rune, ev.Code, ev.Time().Format("04:05"))
}
