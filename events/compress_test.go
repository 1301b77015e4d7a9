// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"image"
	"testing"

	"cogentcore.org/plotview/math32"
	"github.com/stretchr/testify/assert"
)

func TestCompressScroll(t *testing.T) {
	evs := []Event{
		NewScroll(image.Pt(5, 5), math32.Vec2(0, 2), 0),
		NewScroll(image.Pt(6, 5), math32.Vec2(0, 3), 0),
		NewScroll(image.Pt(7, 5), math32.Vec2(1, -1), 0),
	}
	out := CompressEvents(evs)
	assert.Len(t, out, 1)
	sc := out[0].(*MouseScroll)
	assert.Equal(t, math32.Vec2(1, 4), sc.Delta)
	assert.Equal(t, image.Pt(7, 5), sc.Pos())
}

func TestCompressMagnify(t *testing.T) {
	evs := []Event{
		NewMagnify(1.5, image.Pt(10, 10)),
		NewMagnify(2, image.Pt(10, 10)),
	}
	out := CompressEvents(evs)
	assert.Len(t, out, 1)
	assert.Equal(t, float32(3), out[0].(*TouchMagnify).ScaleFactor)
}

func TestCompressMoveChainsPrev(t *testing.T) {
	evs := []Event{
		NewMouseMove(NoButton, image.Pt(10, 0), image.Pt(0, 0), 0),
		NewMouseMove(NoButton, image.Pt(20, 0), image.Pt(10, 0), 0),
		NewMouseMove(NoButton, image.Pt(30, 0), image.Pt(20, 0), 0),
	}
	out := CompressEvents(evs)
	assert.Len(t, out, 1)
	assert.Equal(t, image.Pt(30, 0), out[0].Pos())
	assert.Equal(t, image.Pt(0, 0), out[0].PrevPos())
	assert.Equal(t, image.Pt(30, 0), out[0].PrevDelta())
}

func TestCompressUniqueBarrier(t *testing.T) {
	evs := []Event{
		NewMouseMove(NoButton, image.Pt(10, 0), image.Pt(0, 0), 0),
		NewMouse(MouseDown, Left, image.Pt(10, 0), 0),
		NewMouseMove(NoButton, image.Pt(20, 0), image.Pt(10, 0), 0),
	}
	out := CompressEvents(evs)
	assert.Len(t, out, 3)
}

func TestCompressMixedTypes(t *testing.T) {
	evs := []Event{
		NewMouseMove(NoButton, image.Pt(10, 0), image.Pt(0, 0), 0),
		NewScroll(image.Pt(10, 0), math32.Vec2(0, 1), 0),
		NewScroll(image.Pt(10, 0), math32.Vec2(0, 1), 0),
		NewResize(image.Pt(100, 50)),
		NewResize(image.Pt(200, 100)),
	}
	out := CompressEvents(evs)
	assert.Len(t, out, 3)
	assert.Equal(t, Scroll, out[1].Type())
	assert.Equal(t, math32.Vec2(0, 2), out[1].(*MouseScroll).Delta)
	assert.Equal(t, image.Pt(200, 100), out[2].(*Resize).Size)
}
