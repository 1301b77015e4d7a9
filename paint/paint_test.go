// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package paint

import (
	"image/color"
	"testing"

	"cogentcore.org/plotview/base/iox/imagex"
	"cogentcore.org/plotview/math32"
	"github.com/stretchr/testify/assert"
)

// RunTest makes a painter with the given size, calls the given function,
// and then asserts the image using [imagex.Assert] with the given name.
func RunTest(t *testing.T, nm string, width, height int, f func(pc *Painter)) {
	pc := NewPainter(width, height)
	f(pc)
	imagex.Assert(t, pc.Image, nm)
}

func TestShapes(t *testing.T) {
	RunTest(t, "shapes", 200, 200, func(pc *Painter) {
		pc.Clear(color.White)
		blue := color.RGBA{0, 0, 255, 255}
		red := color.RGBA{255, 0, 0, 255}
		green := color.RGBA{0, 128, 0, 255}
		gray := color.RGBA{128, 128, 128, 255}
		pc.Line(math32.Vec2(10, 10), math32.Vec2(190, 60), 1, blue)
		pc.Line(math32.Vec2(10, 190), math32.Vec2(190, 120), 3, red)
		pc.StrokeBox(math32.B2(20, 80, 80, 120), 1, gray)
		pc.FillBox(math32.B2(100, 80, 140, 120), green)
		pc.FillCircle(math32.Vec2(160, 100), 8, blue)
		pc.Polyline([]math32.Vector2{
			math32.Vec2(20, 160),
			math32.Vec2(60, 140),
			math32.Vec2(100, 170),
			math32.Vec2(140, 150),
		}, 2, green)
	})
}

func TestText(t *testing.T) {
	RunTest(t, "text", 150, 60, func(pc *Painter) {
		pc.Clear(color.White)
		pc.DrawText("X: 1, Y: 2", math32.Vec2(10, 10), color.Black)
		pc.DrawTextCentered("center", math32.Vec2(75, 40), color.Black)
	})
}

func TestTextSize(t *testing.T) {
	sz := TextSize("abc")
	assert.Equal(t, float32(21), sz.X)
	assert.Equal(t, float32(13), sz.Y)

	sz = TextSize("ab\ncdef")
	assert.Equal(t, float32(28), sz.X)
	assert.Equal(t, float32(26), sz.Y)
}

func TestLineDegenerate(t *testing.T) {
	pc := NewPainter(10, 10)
	pc.Clear(color.White)
	pc.Line(math32.Vec2(5, 5), math32.Vec2(5, 5), 1, color.Black)
	r, g, b, _ := pc.Image.At(5, 5).RGBA()
	assert.Equal(t, uint32(0xffff), r)
	assert.Equal(t, uint32(0xffff), g)
	assert.Equal(t, uint32(0xffff), b)
}
