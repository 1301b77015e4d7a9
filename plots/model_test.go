// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plots

import (
	"image"
	"image/color"
	"math"
	"testing"

	"cogentcore.org/plotview/base/iox/imagex"
	"cogentcore.org/plotview/math32"
	"cogentcore.org/plotview/plotview"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newXYView returns a laid-out headless view showing a model with one
// line series covering (0,0)..(10,10) on a 100x100 surface, so the
// middle data point (5,5) sits at screen (50,50).
func newXYView(t *testing.T) (*plotview.View, *XYModel, *XYSeries) {
	s := NewXYSeries(
		plotview.DataPoint{X: 0, Y: 0},
		plotview.DataPoint{X: 5, Y: 5},
		plotview.DataPoint{X: 10, Y: 10},
	)
	m := NewXYModel().AddSeries(s)
	m.XAxis.Title = "Time"
	m.YAxis.Title = "Value"
	pv := plotview.NewView(nil)
	pv.SetSize(image.Pt(100, 100))
	require.NoError(t, pv.SetModel(m))
	return pv, m, s
}

func TestXYModelAutoScale(t *testing.T) {
	pv, m, s := newXYView(t)

	// attaching rendered once, fitting the ranges to the data
	assert.Equal(t, 0.0, m.XAxis.Range.Min)
	assert.Equal(t, 10.0, m.XAxis.Range.Max)
	assert.Equal(t, 0.0, m.YAxis.Range.Min)
	assert.Equal(t, 10.0, m.YAxis.Range.Max)

	// growing the data refits on the next data invalidation
	require.NoError(t, s.SetXY([]plotview.DataPoint{{X: 0, Y: -5}, {X: 20, Y: 10}}))
	pv.InvalidatePlot(true)
	assert.Equal(t, 0.0, m.XAxis.Range.Min)
	assert.Equal(t, 20.0, m.XAxis.Range.Max)
	assert.Equal(t, -5.0, m.YAxis.Range.Min)

	// visual-only invalidations leave the ranges alone
	m.XAxis.Range.Set(2, 3)
	pv.InvalidatePlot(false)
	assert.Equal(t, 2.0, m.XAxis.Range.Min)
	assert.Equal(t, 3.0, m.XAxis.Range.Max)
}

func TestXYModelGestures(t *testing.T) {
	_, m, _ := newXYView(t)

	m.Pan(math32.Vec2(10, 0))
	assert.InDelta(t, -1, m.XAxis.Range.Min, 1e-6)
	assert.InDelta(t, 9, m.XAxis.Range.Max, 1e-6)

	m.Reset()
	assert.Equal(t, 0.0, m.XAxis.Range.Min)
	assert.Equal(t, 10.0, m.XAxis.Range.Max)

	m.Zoom(math32.Vec2(50, 50), 2)
	assert.InDelta(t, 2.5, m.XAxis.Range.Min, 1e-6)
	assert.InDelta(t, 7.5, m.XAxis.Range.Max, 1e-6)
	assert.InDelta(t, 2.5, m.YAxis.Range.Min, 1e-6)
	assert.InDelta(t, 7.5, m.YAxis.Range.Max, 1e-6)

	m.Reset()
	m.ZoomRect(math32.B2(10, 10, 60, 70))
	assert.InDelta(t, 1, m.XAxis.Range.Min, 1e-5)
	assert.InDelta(t, 6, m.XAxis.Range.Max, 1e-5)
	assert.InDelta(t, 3, m.YAxis.Range.Min, 1e-5)
	assert.InDelta(t, 9, m.YAxis.Range.Max, 1e-5)
}

func TestXYModelRefitPreservesZoom(t *testing.T) {
	pv, m, s := newXYView(t)

	m.Zoom(math32.Vec2(50, 50), 2)
	require.NoError(t, s.SetXY([]plotview.DataPoint{{X: 0, Y: 0}, {X: 40, Y: 40}}))
	pv.InvalidatePlot(true)

	// the gestured ranges stay; the home follows the new data
	assert.InDelta(t, 2.5, m.XAxis.Range.Min, 1e-6)
	assert.InDelta(t, 7.5, m.XAxis.Range.Max, 1e-6)
	m.Reset()
	assert.Equal(t, 0.0, m.XAxis.Range.Min)
	assert.Equal(t, 40.0, m.XAxis.Range.Max)
	assert.Equal(t, 40.0, m.YAxis.Range.Max)
}

func TestXYModelDetached(t *testing.T) {
	m := NewXYModel().AddSeries(NewXYSeries(
		plotview.DataPoint{X: 0, Y: 0},
		plotview.DataPoint{X: 10, Y: 10},
	))
	m.SetXRange(0, 10)
	m.SetYRange(-1, 1)

	// gestures without an attached view are no-ops
	m.Pan(math32.Vec2(10, 0))
	m.Zoom(math32.Vec2(5, 5), 2)
	m.ZoomRect(math32.B2(0, 0, 5, 5))
	assert.Equal(t, 0.0, m.XAxis.Range.Min)
	assert.Equal(t, 10.0, m.XAxis.Range.Max)

	// Reset restores the explicit home ranges
	m.XAxis.Range.Set(4, 6)
	m.YAxis.Range.Set(0, 0.5)
	m.Reset()
	assert.Equal(t, 0.0, m.XAxis.Range.Min)
	assert.Equal(t, 10.0, m.XAxis.Range.Max)
	assert.Equal(t, -1.0, m.YAxis.Range.Min)
	assert.Equal(t, 1.0, m.YAxis.Range.Max)
}

func TestXYModelTracker(t *testing.T) {
	pv, m, _ := newXYView(t)

	hit, ok := plotview.NearestHit(m, math32.Vec2(52, 49), pv.PlotBounds(), 10)
	require.True(t, ok)
	assert.Equal(t, 1, hit.Index)
	assert.Equal(t, 5.0, hit.Point.X)
	assert.Equal(t, 5.0, hit.Point.Y)

	label, err := plotview.FormatTrackerLabel(hit.Series, hit.Point, "")
	require.NoError(t, err)
	assert.Equal(t, "Time: 5, Value: 5", label)
}

func TestXYSeriesData(t *testing.T) {
	s := NewXYSeries(
		plotview.DataPoint{X: 1, Y: 2},
		plotview.DataPoint{X: math.NaN(), Y: 3},
		plotview.DataPoint{X: 4, Y: 5},
	)
	assert.Equal(t, 2, s.Len())
	x, y := s.XY(1)
	assert.Equal(t, 4.0, x)
	assert.Equal(t, 5.0, y)

	err := s.SetXY([]plotview.DataPoint{{X: math.Inf(1), Y: 0}})
	assert.ErrorIs(t, err, ErrInfinity)
	assert.Equal(t, 2, s.Len())

	require.NoError(t, s.SetXY(nil))
	assert.Equal(t, 0, s.Len())
}

func TestXYModelColors(t *testing.T) {
	m := NewXYModel()
	a := NewXYSeries()
	b := NewXYSeries()
	c := NewXYSeries()
	c.Color = color.Black
	m.AddSeries(a).AddSeries(b).AddSeries(c)
	assert.Equal(t, DefaultColors[0], a.Color)
	assert.Equal(t, DefaultColors[1], b.Color)
	assert.Equal(t, color.Black, c.Color)
	assert.Len(t, m.Series(), 3)
}

func TestTickCount(t *testing.T) {
	assert.Equal(t, 2, tickCount(30))
	assert.Equal(t, 4, tickCount(240))
	assert.Equal(t, 10, tickCount(1200))
}

func TestXYModelGolden(t *testing.T) {
	pv, m, _ := newXYView(t)
	scatter := NewXYSeries(
		plotview.DataPoint{X: 2, Y: 8},
		plotview.DataPoint{X: 7, Y: 3},
	)
	scatter.Lines = false
	scatter.PointRadius = 3
	m.AddSeries(scatter)
	pv.InvalidatePlot(true)
	imagex.Assert(t, pv.Image(), "xymodel")
}
