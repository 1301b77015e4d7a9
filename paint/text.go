// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package paint

import (
	"image"
	"image/color"
	"strings"

	"cogentcore.org/plotview/math32"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// Face is the font face used for all text rendering.
// It defaults to the fixed-size [basicfont.Face7x13], which requires
// no font file loading and renders identically on all platforms.
var Face font.Face = basicfont.Face7x13

// TextSize returns the rendered size of the given text in pixels.
// Newlines separate lines; the size covers the widest line and
// the full height of all lines.
func TextSize(text string) math32.Vector2 {
	m := Face.Metrics()
	lh := math32.FromFixed(m.Height)
	sz := math32.Vector2{}
	for _, ln := range strings.Split(text, "\n") {
		w := math32.FromFixed(font.MeasureString(Face, ln))
		sz.X = math32.Max(sz.X, w)
		sz.Y += lh
	}
	return sz
}

// DrawText renders the given text with its top-left corner at pos.
// Newlines start new lines at the same X position.
func (pc *Painter) DrawText(text string, pos math32.Vector2, clr color.Color) {
	m := Face.Metrics()
	asc := math32.FromFixed(m.Ascent)
	lh := math32.FromFixed(m.Height)
	d := &font.Drawer{
		Dst:  pc.Image,
		Src:  image.NewUniform(clr),
		Face: Face,
	}
	for i, ln := range strings.Split(text, "\n") {
		d.Dot = math32.Vec2(pos.X, pos.Y+asc+float32(i)*lh).ToFixed()
		d.DrawString(ln)
	}
}

// DrawTextCentered renders the given text centered on the given position.
func (pc *Painter) DrawTextCentered(text string, center math32.Vector2, clr color.Color) {
	sz := TextSize(text)
	pc.DrawText(text, center.Sub(sz.MulScalar(0.5)), clr)
}
