// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plotview

import (
	"cogentcore.org/plotview/math32"
	"cogentcore.org/plotview/math32/minmax"
)

// ToScreen maps a data point to screen space: X linearly from xrng onto
// the horizontal extent of bounds, Y from yrng onto the vertical extent
// with the direction inverted (yrng.Max is at bounds.Min.Y). A
// degenerate range (Min == Max) maps to the midpoint of the screen
// extent for that axis. Points outside the ranges map to off-bounds
// coordinates; callers decide clipping.
func ToScreen(p DataPoint, xrng, yrng minmax.F64, bounds math32.Box2) math32.Vector2 {
	nx, ny := 0.5, 0.5
	if xr := xrng.Range(); xr != 0 {
		nx = (p.X - xrng.Min) / xr
	}
	if yr := yrng.Range(); yr != 0 {
		ny = (p.Y - yrng.Min) / yr
	}
	return math32.Vec2(bounds.ProjectX(float32(nx)), bounds.ProjectY(float32(1-ny)))
}

// FromScreen is the inverse of [ToScreen], mapping a screen position
// back to data space. A degenerate axis range maps to its midpoint,
// as does a zero screen extent.
func FromScreen(sp math32.Vector2, xrng, yrng minmax.F64, bounds math32.Box2) DataPoint {
	sz := bounds.Size()
	x := xrng.Midpoint()
	if xr := xrng.Range(); xr != 0 && sz.X != 0 {
		x = xrng.Min + float64((sp.X-bounds.Min.X)/sz.X)*xr
	}
	y := yrng.Midpoint()
	if yr := yrng.Range(); yr != 0 && sz.Y != 0 {
		y = yrng.Min + float64((bounds.Max.Y-sp.Y)/sz.Y)*yr
	}
	return DataPoint{x, y}
}
