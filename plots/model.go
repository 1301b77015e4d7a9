// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package plots provides ready-made models for the plotview surface:
// XY line and scatter series over shared axes, with automatic tick
// placement, pan, zoom, and tracker support.
package plots

import (
	"image/color"
	"sync/atomic"

	"cogentcore.org/plotview/math32"
	"cogentcore.org/plotview/math32/minmax"
	"cogentcore.org/plotview/paint"
	"cogentcore.org/plotview/plotview"
)

// chrome colors shared by all models.
var (
	frameColor = color.RGBA{120, 120, 120, 255}
	gridColor  = color.RGBA{228, 228, 228, 255}
	labelColor = color.RGBA{64, 64, 64, 255}
)

// XYModel is a [plotview.Model] that renders [XYSeries] over one
// shared pair of axes, with a frame, grid lines, and tick labels.
// It implements the viewport gestures of [plotview.DefaultController]:
// pan, zoom, zoom to rectangle, and reset to the home ranges.
//
// Axis state is confined to the view's loop goroutine: gestures and
// rendering happen there, and range refits after data updates are
// deferred to the next render pass. Configure the model and add series
// before attaching it to a view, or on the loop with
// [plotview.Loop.RunOnLoop]. Series data can be replaced from any
// goroutine with [XYSeries.SetXY] followed by
// [plotview.View.InvalidatePlot].
type XYModel struct {
	plotview.ModelBase

	// XAxis and YAxis are shared by all series of the model.
	XAxis, YAxis plotview.Axis

	// AutoScale refits the axis ranges to the data whenever the view
	// invalidates with updated data. Ranges narrowed by a gesture are
	// preserved; Reset returns to the latest fitted ranges.
	AutoScale bool

	// Grid draws grid lines across the plot at each tick.
	Grid bool

	refit atomic.Bool

	series    []*XYSeries
	list      []plotview.Series
	homeX     minmax.F64
	homeY     minmax.F64
	hasHomeX  bool
	hasHomeY  bool
	zoomed    bool
	nextColor int
}

var (
	_ plotview.Model        = &XYModel{}
	_ plotview.SeriesSource = &XYModel{}
	_ plotview.Viewport     = &XYModel{}
)

// NewXYModel returns an empty model with auto-scaling and grid
// lines enabled.
func NewXYModel() *XYModel {
	return &XYModel{AutoScale: true, Grid: true}
}

// AddSeries adds a series to the model, pointing it at the shared
// axes and, if it has no color, assigning the next [DefaultColors]
// entry. It returns the model for chaining.
func (m *XYModel) AddSeries(s *XYSeries) *XYModel {
	s.xaxis, s.yaxis = &m.XAxis, &m.YAxis
	if s.Color == nil {
		s.Color = DefaultColors[m.nextColor%len(DefaultColors)]
		m.nextColor++
	}
	m.series = append(m.series, s)
	m.list = append(m.list, s)
	m.refit.Store(true)
	return m
}

// Series returns the series for tracker hit testing.
func (m *XYModel) Series() []plotview.Series { return m.list }

// SetXRange sets the visible and home X range. Set AutoScale to false
// to keep explicit ranges across data updates.
func (m *XYModel) SetXRange(min, max float64) *XYModel {
	m.XAxis.Range.Set(min, max)
	m.homeX.Set(min, max)
	m.hasHomeX = true
	return m
}

// SetYRange sets the visible and home Y range.
func (m *XYModel) SetYRange(min, max float64) *XYModel {
	m.YAxis.Range.Set(min, max)
	m.homeY.Set(min, max)
	m.hasHomeY = true
	return m
}

// Update implements [plotview.Model]. Data updates mark the ranges
// for a refit on the next render pass.
func (m *XYModel) Update(updateData bool) {
	if updateData {
		m.refit.Store(true)
	}
}

// Render implements [plotview.Model]: grid and series first, then the
// frame and tick labels over them.
func (m *XYModel) Render(pc *paint.Painter, width, height float32) {
	if m.refit.Swap(false) && m.AutoScale {
		m.refitRanges()
	}
	bounds := math32.B2(0, 0, width, height)
	xticks, yticks := m.ticks(bounds)
	if m.Grid {
		m.renderGrid(pc, bounds, xticks, yticks)
	}
	for _, s := range m.series {
		renderSeries(pc, s, bounds)
	}
	pc.StrokeBox(bounds, 1, frameColor)
	m.renderTickLabels(pc, bounds, xticks, yticks)
}

// refitRanges fits the home ranges to the union of all series data.
// The visible ranges follow unless a gesture has narrowed them.
// Degenerate ranges are padded so that transforms stay usable.
func (m *XYModel) refitRanges() {
	var xr, yr minmax.F64
	xr.SetInfinity()
	yr.SetInfinity()
	n := 0
	for _, s := range m.series {
		for _, p := range s.points() {
			xr.FitValInRange(p.X)
			yr.FitValInRange(p.Y)
			n++
		}
	}
	if n == 0 {
		return
	}
	if xr.Min == xr.Max {
		xr.Min, xr.Max = xr.Min-1, xr.Max+1
	}
	if yr.Min == yr.Max {
		yr.Min, yr.Max = yr.Min-1, yr.Max+1
	}
	m.homeX, m.homeY = xr, yr
	m.hasHomeX, m.hasHomeY = true, true
	if !m.zoomed {
		m.XAxis.Range = xr
		m.YAxis.Range = yr
	}
}

//////// viewport gestures

// plotBounds returns the attached view's plot bounds, reporting false
// when the model is detached or the view has no size yet.
func (m *XYModel) plotBounds() (math32.Box2, bool) {
	v := m.AttachedView()
	if v == nil {
		return math32.Box2{}, false
	}
	b := v.PlotBounds()
	sz := b.Size()
	return b, sz.X > 0 && sz.Y > 0
}

// Pan shifts the visible ranges by the given screen-pixel delta.
func (m *XYModel) Pan(delta math32.Vector2) {
	b, ok := m.plotBounds()
	if !ok {
		return
	}
	sz := b.Size()
	m.XAxis.Range.Shift(-float64(delta.X/sz.X) * m.XAxis.Range.Range())
	m.YAxis.Range.Shift(float64(delta.Y/sz.Y) * m.YAxis.Range.Range())
	m.zoomed = true
}

// Zoom scales the visible ranges about the given screen position by
// the given factor, where factors above 1 zoom in.
func (m *XYModel) Zoom(center math32.Vector2, factor float32) {
	b, ok := m.plotBounds()
	if !ok || factor == 0 {
		return
	}
	c := plotview.FromScreen(center, m.XAxis.Range, m.YAxis.Range, b)
	m.XAxis.Range.ZoomAbout(c.X, 1/float64(factor))
	m.YAxis.Range.ZoomAbout(c.Y, 1/float64(factor))
	m.zoomed = true
}

// ZoomRect narrows the visible ranges to the given screen rectangle.
func (m *XYModel) ZoomRect(box math32.Box2) {
	b, ok := m.plotBounds()
	if !ok {
		return
	}
	min := plotview.FromScreen(math32.Vec2(box.Min.X, box.Max.Y), m.XAxis.Range, m.YAxis.Range, b)
	max := plotview.FromScreen(math32.Vec2(box.Max.X, box.Min.Y), m.XAxis.Range, m.YAxis.Range, b)
	m.XAxis.Range.Set(min.X, max.X)
	m.YAxis.Range.Set(min.Y, max.Y)
	m.zoomed = true
}

// Reset restores the home ranges: the latest auto-scaled fit, or the
// ranges set with [XYModel.SetXRange] and [XYModel.SetYRange].
func (m *XYModel) Reset() {
	if m.hasHomeX {
		m.XAxis.Range = m.homeX
	}
	if m.hasHomeY {
		m.YAxis.Range = m.homeY
	}
	m.zoomed = false
}

//////// axis rendering

// ticks computes the ticks for the current ranges, sized to the
// plot extent.
func (m *XYModel) ticks(bounds math32.Box2) (x, y []Tick) {
	sz := bounds.Size()
	if m.XAxis.Range.IsValid() && m.XAxis.Range.Range() > 0 {
		x = Ticks(m.XAxis.Range.Min, m.XAxis.Range.Max, tickCount(sz.X))
	}
	if m.YAxis.Range.IsValid() && m.YAxis.Range.Range() > 0 {
		y = Ticks(m.YAxis.Range.Min, m.YAxis.Range.Max, tickCount(sz.Y))
	}
	return x, y
}

// tickCount returns the desired tick count for an axis extent in
// pixels, about one tick per 60 pixels.
func tickCount(extent float32) int {
	return math32.Clamp(int(extent/60), 2, 10)
}

// screenX maps a data X value onto the screen.
func (m *XYModel) screenX(v float64, bounds math32.Box2) float32 {
	return plotview.ToScreen(plotview.DataPoint{X: v}, m.XAxis.Range, m.YAxis.Range, bounds).X
}

// screenY maps a data Y value onto the screen.
func (m *XYModel) screenY(v float64, bounds math32.Box2) float32 {
	return plotview.ToScreen(plotview.DataPoint{Y: v}, m.XAxis.Range, m.YAxis.Range, bounds).Y
}

// renderGrid draws grid lines across the plot at each tick that falls
// inside the bounds.
func (m *XYModel) renderGrid(pc *paint.Painter, bounds math32.Box2, xticks, yticks []Tick) {
	for _, t := range xticks {
		x := m.screenX(t.Value, bounds)
		if x < bounds.Min.X || x > bounds.Max.X {
			continue
		}
		pc.Line(math32.Vec2(x, bounds.Min.Y), math32.Vec2(x, bounds.Max.Y), 1, gridColor)
	}
	for _, t := range yticks {
		y := m.screenY(t.Value, bounds)
		if y < bounds.Min.Y || y > bounds.Max.Y {
			continue
		}
		pc.Line(math32.Vec2(bounds.Min.X, y), math32.Vec2(bounds.Max.X, y), 1, gridColor)
	}
}

// renderTickLabels draws the tick labels along the bottom and left
// edges, inside the frame.
func (m *XYModel) renderTickLabels(pc *paint.Painter, bounds math32.Box2, xticks, yticks []Tick) {
	const pad = 3
	for _, t := range xticks {
		x := m.screenX(t.Value, bounds)
		if x < bounds.Min.X || x > bounds.Max.X {
			continue
		}
		sz := paint.TextSize(t.Label)
		pos := math32.Vec2(x-sz.X/2, bounds.Max.Y-sz.Y-pad)
		pos.X = math32.Clamp(pos.X, bounds.Min.X+pad, bounds.Max.X-sz.X-pad)
		pc.DrawText(t.Label, pos, labelColor)
	}
	for _, t := range yticks {
		y := m.screenY(t.Value, bounds)
		if y < bounds.Min.Y || y > bounds.Max.Y {
			continue
		}
		sz := paint.TextSize(t.Label)
		pos := math32.Vec2(bounds.Min.X+pad, y-sz.Y/2)
		pos.Y = math32.Clamp(pos.Y, bounds.Min.Y+pad, bounds.Max.Y-sz.Y-pad)
		pc.DrawText(t.Label, pos, labelColor)
	}
}

// renderSeries draws one series as a polyline and point markers.
func renderSeries(pc *paint.Painter, s *XYSeries, bounds math32.Box2) {
	pts := s.points()
	if len(pts) == 0 {
		return
	}
	screen := make([]math32.Vector2, len(pts))
	for i, p := range pts {
		screen[i] = plotview.ToScreen(p, s.xaxis.Range, s.yaxis.Range, bounds)
	}
	if s.Lines && s.Width > 0 {
		pc.Polyline(screen, s.Width, s.Color)
	}
	if s.PointRadius > 0 {
		for _, sp := range screen {
			pc.FillCircle(sp, s.PointRadius, s.Color)
		}
	}
}
