// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package minmax

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestF64(t *testing.T) {
	mr := F64{}
	mr.Set(2, 10)
	assert.True(t, mr.IsValid())
	assert.Equal(t, 8.0, mr.Range())
	assert.Equal(t, 0.125, mr.Scale())
	assert.Equal(t, 6.0, mr.Midpoint())

	assert.True(t, mr.InRange(2))
	assert.True(t, mr.InRange(10))
	assert.False(t, mr.InRange(10.5))
	assert.True(t, mr.IsLow(1))
	assert.True(t, mr.IsHigh(11))
	assert.False(t, mr.IsHigh(5))

	assert.Equal(t, 0.5, mr.NormValue(6))
	assert.Equal(t, 6.0, mr.ProjValue(0.5))
	assert.Equal(t, 1.0, mr.NormValue(20))
	assert.Equal(t, 2.0, mr.ClipValue(-3))
}

func TestF64Degenerate(t *testing.T) {
	mr := F64{Min: 5, Max: 5}
	assert.Equal(t, 0.0, mr.Range())
	assert.Equal(t, 0.0, mr.Scale())
	assert.Equal(t, 5.0, mr.Midpoint())
	assert.Equal(t, 0.0, mr.NormValue(5))
}

func TestF64Fit(t *testing.T) {
	mr := F64{}
	mr.SetInfinity()
	assert.True(t, mr.FitValInRange(3))
	assert.True(t, mr.FitValInRange(-2))
	assert.False(t, mr.FitValInRange(1))
	assert.Equal(t, F64{-2, 3}, mr)

	assert.True(t, mr.FitInRange(F64{-5, 1}))
	assert.Equal(t, F64{-5, 3}, mr)
}

func TestF64ShiftZoom(t *testing.T) {
	mr := F64{Min: 0, Max: 10}
	mr.Shift(2.5)
	assert.Equal(t, F64{2.5, 12.5}, mr)

	mr = F64{Min: 0, Max: 10}
	mr.ZoomAbout(5, 0.5)
	assert.Equal(t, F64{2.5, 7.5}, mr)
	mr.ZoomAbout(5, 2)
	assert.Equal(t, F64{0, 10}, mr)

	// zooming about an endpoint keeps that endpoint fixed
	mr.ZoomAbout(0, 0.5)
	assert.Equal(t, F64{0, 5}, mr)
}
