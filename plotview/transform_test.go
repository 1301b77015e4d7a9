// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plotview

import (
	"testing"

	"cogentcore.org/plotview/base/tolassert"
	"cogentcore.org/plotview/math32"
	"cogentcore.org/plotview/math32/minmax"
	"github.com/stretchr/testify/assert"
)

func TestToScreen(t *testing.T) {
	xrng := minmax.F64{Min: 0, Max: 10}
	yrng := minmax.F64{Min: 0, Max: 100}
	bounds := math32.B2(0, 0, 200, 100)

	sp := ToScreen(DataPoint{X: 0, Y: 0}, xrng, yrng, bounds)
	assert.Equal(t, math32.Vec2(0, 100), sp)

	sp = ToScreen(DataPoint{X: 10, Y: 100}, xrng, yrng, bounds)
	assert.Equal(t, math32.Vec2(200, 0), sp)

	sp = ToScreen(DataPoint{X: 5, Y: 50}, xrng, yrng, bounds)
	assert.Equal(t, math32.Vec2(100, 50), sp)

	// no clamping: outside points land off bounds
	sp = ToScreen(DataPoint{X: 20, Y: -100}, xrng, yrng, bounds)
	assert.Equal(t, math32.Vec2(400, 200), sp)
}

func TestToScreenOffsetBounds(t *testing.T) {
	xrng := minmax.F64{Min: -1, Max: 1}
	yrng := minmax.F64{Min: -1, Max: 1}
	bounds := math32.B2(10, 20, 110, 120)

	sp := ToScreen(DataPoint{X: 0, Y: 0}, xrng, yrng, bounds)
	assert.Equal(t, math32.Vec2(60, 70), sp)

	sp = ToScreen(DataPoint{X: -1, Y: -1}, xrng, yrng, bounds)
	assert.Equal(t, math32.Vec2(10, 120), sp)
}

func TestTransformRoundTrip(t *testing.T) {
	xrng := minmax.F64{Min: -3, Max: 17}
	yrng := minmax.F64{Min: 0.5, Max: 2.5}
	bounds := math32.B2(5, 5, 405, 305)

	pts := []DataPoint{
		{X: -3, Y: 0.5},
		{X: 17, Y: 2.5},
		{X: 0, Y: 1},
		{X: 4.25, Y: 1.875},
		{X: 30, Y: -4}, // off bounds
	}
	for _, p := range pts {
		sp := ToScreen(p, xrng, yrng, bounds)
		rp := FromScreen(sp, xrng, yrng, bounds)
		tolassert.Equal(t, p.X, rp.X)
		tolassert.Equal(t, p.Y, rp.Y)
	}
}

func TestTransformDegenerate(t *testing.T) {
	xrng := minmax.F64{Min: 5, Max: 5}
	yrng := minmax.F64{Min: -2, Max: -2}
	bounds := math32.B2(0, 0, 200, 100)

	// degenerate ranges map to the screen-extent midpoint
	sp := ToScreen(DataPoint{X: 123, Y: 456}, xrng, yrng, bounds)
	assert.Equal(t, math32.Vec2(100, 50), sp)

	// and back to the range midpoint
	dp := FromScreen(math32.Vec2(33, 44), xrng, yrng, bounds)
	assert.Equal(t, DataPoint{X: 5, Y: -2}, dp)

	// zero screen extent is also safe
	dp = FromScreen(math32.Vec2(0, 0), minmax.F64{Min: 0, Max: 1}, minmax.F64{Min: 0, Max: 1}, math32.Box2{})
	assert.Equal(t, DataPoint{X: 0.5, Y: 0.5}, dp)
}
