// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"fmt"
	"image"
)

// Resize is a [WindowResize] event, sent when the rendering surface has
// been resized, carrying the new size. These events are compressed during
// a continuous resizing episode, so only the latest size is processed.
type Resize struct {
	Base

	// Size is the new size of the rendering surface, in raw
	// display dots (pixels).
	Size image.Point
}

func NewResize(size image.Point) *Resize {
	ev := &Resize{}
	ev.Typ = WindowResize
	// not unique: only the final size matters
	ev.Size = size
	return ev
}

func (ev *Resize) String() string {
	return fmt.Sprintf("%v{Size: %v, Time: %v}", ev.Type(), ev.Size, ev.Time().Format("04:05"))
}
