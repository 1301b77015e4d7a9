// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plots

import (
	"image/color"
	"math"
	"sync/atomic"

	"cogentcore.org/plotview/base/errors"
	"cogentcore.org/plotview/plotview"
)

// ErrInfinity is returned when series data contains an infinite
// coordinate, which cannot be plotted.
var ErrInfinity = errors.New("plots: infinite data point")

// DefaultColors is the palette assigned to series added without an
// explicit color, in rotation order.
var DefaultColors = []color.RGBA{
	{41, 98, 255, 255},
	{230, 74, 25, 255},
	{46, 125, 50, 255},
	{123, 31, 162, 255},
	{2, 136, 209, 255},
	{191, 54, 12, 255},
}

// XYSeries is one line or scatter series of an [XYModel]. Style fields
// are read during rendering: set them before adding the series to a
// model, or on the view loop. Data is replaced wholesale with
// [XYSeries.SetXY], which is safe from any goroutine.
type XYSeries struct {

	// Color is the color of lines and point markers. Series added to a
	// model with a nil Color take the next color from [DefaultColors].
	Color color.Color

	// Width is the line width in pixels.
	Width float32

	// PointRadius is the point marker radius in pixels; zero draws
	// no markers.
	PointRadius float32

	// Lines connects consecutive points with line segments.
	Lines bool

	// Key selects the tracker label template for this series;
	// "" uses the default template.
	Key string

	// Untrackable excludes the series from tracker hit testing.
	Untrackable bool

	xaxis, yaxis *plotview.Axis
	data         atomic.Pointer[[]plotview.DataPoint]
}

var (
	_ plotview.Series    = &XYSeries{}
	_ plotview.XYer      = &XYSeries{}
	_ plotview.Connected = &XYSeries{}
)

// NewXYSeries returns a line series over the given points, with the
// default width and no point markers. Points with NaN coordinates are
// dropped; infinite coordinates are logged and leave the series empty.
func NewXYSeries(points ...plotview.DataPoint) *XYSeries {
	s := &XYSeries{Width: 2, Lines: true}
	errors.Log(s.SetXY(points))
	return s
}

// SetXY replaces the series data with a copy of points. Points with a
// NaN coordinate are dropped; an infinite coordinate returns
// [ErrInfinity] and leaves the data unchanged. SetXY may be called
// concurrently with rendering: the view sees either the old or the
// new data, never a mix.
func (s *XYSeries) SetXY(points []plotview.DataPoint) error {
	cpy := make([]plotview.DataPoint, 0, len(points))
	for _, p := range points {
		if math.IsNaN(p.X) || math.IsNaN(p.Y) {
			continue
		}
		if math.IsInf(p.X, 0) || math.IsInf(p.Y, 0) {
			return ErrInfinity
		}
		cpy = append(cpy, p)
	}
	s.data.Store(&cpy)
	return nil
}

// points returns the current data snapshot.
func (s *XYSeries) points() []plotview.DataPoint {
	if pts := s.data.Load(); pts != nil {
		return *pts
	}
	return nil
}

// XAxis returns the model's shared X axis. It is nil until the series
// has been added to a model.
func (s *XYSeries) XAxis() *plotview.Axis { return s.xaxis }

// YAxis returns the model's shared Y axis. It is nil until the series
// has been added to a model.
func (s *XYSeries) YAxis() *plotview.Axis { return s.yaxis }

// Trackable reports whether the series participates in tracker
// hit testing.
func (s *XYSeries) Trackable() bool { return !s.Untrackable }

// TrackerKey returns the tracker template key.
func (s *XYSeries) TrackerKey() string { return s.Key }

// Connected reports whether the segments between consecutive points
// are hit testing targets, which they are when drawn as lines.
func (s *XYSeries) Connected() bool { return s.Lines }

// Len returns the number of points.
func (s *XYSeries) Len() int { return len(s.points()) }

// XY returns the coordinates of point i.
func (s *XYSeries) XY(i int) (x, y float64) {
	p := s.points()[i]
	return p.X, p.Y
}
