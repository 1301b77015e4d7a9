// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plotview

import (
	"image/color"
	"sync/atomic"

	"cogentcore.org/plotview/math32"
	"cogentcore.org/plotview/paint"
)

// testSeries is a mutable XY series fixture with its own axes.
type testSeries struct {
	xaxis, yaxis *Axis
	key          string
	untrackable  bool
	connected    bool
	points       [][2]float64
}

var (
	_ Series    = &testSeries{}
	_ XYer      = &testSeries{}
	_ Connected = &testSeries{}
)

// newTestSeries returns a trackable series with the given axis titles
// and points, with the axis ranges fit to the points.
func newTestSeries(xtitle, ytitle string, pts [][2]float64) *testSeries {
	s := &testSeries{
		xaxis:  &Axis{Title: xtitle},
		yaxis:  &Axis{Title: ytitle},
		points: pts,
	}
	if len(pts) > 0 {
		s.xaxis.Range.SetInfinity()
		s.yaxis.Range.SetInfinity()
		for _, p := range pts {
			s.xaxis.Range.FitValInRange(p[0])
			s.yaxis.Range.FitValInRange(p[1])
		}
	}
	return s
}

func (s *testSeries) XAxis() *Axis       { return s.xaxis }
func (s *testSeries) YAxis() *Axis       { return s.yaxis }
func (s *testSeries) Trackable() bool    { return !s.untrackable }
func (s *testSeries) TrackerKey() string { return s.key }
func (s *testSeries) Connected() bool    { return s.connected }
func (s *testSeries) Len() int           { return len(s.points) }

func (s *testSeries) XY(i int) (x, y float64) {
	return s.points[i][0], s.points[i][1]
}

// testModel is a Model fixture that renders its series as lines and
// counts Update and Render calls.
type testModel struct {
	ModelBase
	series  []Series
	updates atomic.Int32
	data    atomic.Int32
	renders atomic.Int32
}

var (
	_ Model        = &testModel{}
	_ SeriesSource = &testModel{}
)

func newTestModel(series ...Series) *testModel {
	return &testModel{series: series}
}

func (m *testModel) Series() []Series { return m.series }

func (m *testModel) Update(updateData bool) {
	m.updates.Add(1)
	if updateData {
		m.data.Add(1)
	}
}

func (m *testModel) Render(pc *paint.Painter, width, height float32) {
	m.renders.Add(1)
	bounds := math32.B2(0, 0, width, height)
	for _, s := range m.series {
		xy, ok := s.(XYer)
		if !ok {
			continue
		}
		pts := make([]math32.Vector2, xy.Len())
		for i := range pts {
			x, y := xy.XY(i)
			pts[i] = ToScreen(DataPoint{X: x, Y: y}, s.XAxis().Range, s.YAxis().Range, bounds)
		}
		pc.Polyline(pts, 2, color.RGBA{30, 100, 200, 255})
	}
}

// viewportModel adds pan/zoom support to testModel, recording the
// last calls.
type viewportModel struct {
	testModel
	pans   int
	zooms  int
	rects  int
	resets int
}

var _ Viewport = &viewportModel{}

func (m *viewportModel) bounds() math32.Box2 {
	v := m.AttachedView()
	if v == nil {
		return math32.Box2{}
	}
	return v.PlotBounds()
}

func (m *viewportModel) Pan(delta math32.Vector2) {
	m.pans++
	b := m.bounds()
	sz := b.Size()
	for _, s := range m.series {
		xr, yr := &s.XAxis().Range, &s.YAxis().Range
		if sz.X != 0 {
			xr.Shift(-float64(delta.X/sz.X) * xr.Range())
		}
		if sz.Y != 0 {
			yr.Shift(float64(delta.Y/sz.Y) * yr.Range())
		}
	}
}

func (m *viewportModel) Zoom(center math32.Vector2, factor float32) {
	m.zooms++
	if factor == 0 {
		return
	}
	b := m.bounds()
	for _, s := range m.series {
		xr, yr := &s.XAxis().Range, &s.YAxis().Range
		c := FromScreen(center, *xr, *yr, b)
		xr.ZoomAbout(c.X, 1/float64(factor))
		yr.ZoomAbout(c.Y, 1/float64(factor))
	}
}

func (m *viewportModel) ZoomRect(box math32.Box2) {
	m.rects++
	b := m.bounds()
	for _, s := range m.series {
		xr, yr := &s.XAxis().Range, &s.YAxis().Range
		min := FromScreen(math32.Vec2(box.Min.X, box.Max.Y), *xr, *yr, b)
		max := FromScreen(math32.Vec2(box.Max.X, box.Min.Y), *xr, *yr, b)
		xr.Set(min.X, max.X)
		yr.Set(min.Y, max.Y)
	}
}

func (m *viewportModel) Reset() { m.resets++ }
