// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plotview

import (
	"cogentcore.org/plotview/math32"
	"cogentcore.org/plotview/math32/minmax"
)

// data.go defines the data-side contracts between the view and the
// model: axes, series, and tracker hits.

// DataPoint is a point in data coordinates.
type DataPoint struct {
	X, Y float64
}

// Axis describes one data axis of a series: the current range that
// the transform maps onto the screen, and a title for labels.
type Axis struct {

	// Range is the current data range of the axis. It must satisfy
	// Min <= Max; a degenerate range (Min == Max) is valid and maps
	// every value to the screen-extent midpoint.
	Range minmax.F64

	// Title is the axis title, used in tracker labels.
	// Empty titles are shown as "X" or "Y".
	Title string
}

// Series is the contract the tracker needs from one series of a model.
type Series interface {

	// XAxis returns the axis for X values. The returned axis reflects
	// the current ranges at call time.
	XAxis() *Axis

	// YAxis returns the axis for Y values.
	YAxis() *Axis

	// Trackable returns whether this series participates in
	// tracker hit testing.
	Trackable() bool

	// TrackerKey returns the key selecting a [TrackerDefinition]
	// for this series, or "" for the default template.
	TrackerKey() string
}

// XYer is implemented by series that expose their data points
// for hit testing.
type XYer interface {

	// Len returns the number of points.
	Len() int

	// XY returns the data coordinates of point i.
	XY(i int) (x, y float64)
}

// Connected is an optional [Series] capability: series reporting true
// are drawn as connected lines, so hit testing also considers the
// segments between consecutive points, snapping to the nearer endpoint.
type Connected interface {
	Connected() bool
}

// SeriesSource is implemented by models that expose their series for
// tracker hit testing. Models without it simply produce no hits.
type SeriesSource interface {
	Series() []Series
}

// Viewport is an optional [Model] capability: controllers drive pan and
// zoom gestures through it. Arguments are in screen space; the model
// maps them onto its own axis ranges using the attached view's bounds.
type Viewport interface {

	// Pan shifts the visible ranges by the given screen-pixel delta.
	Pan(delta math32.Vector2)

	// Zoom scales the visible ranges about the given screen position
	// by the given factor (> 1 zooms in).
	Zoom(center math32.Vector2, factor float32)

	// ZoomRect narrows the visible ranges to the given screen rectangle.
	ZoomRect(box math32.Box2)

	// Reset restores the home ranges.
	Reset()
}

// TrackerHit is the result of locating the nearest trackable data
// point to a pointer position. Hits are transient values produced
// per pointer move; they are not retained.
type TrackerHit struct {

	// Series is the series the point belongs to.
	Series Series

	// Point is the data point that was hit.
	Point DataPoint

	// Index is the index of the point within the series data.
	Index int

	// ScreenPos is the screen position of Point at hit time.
	ScreenPos math32.Vector2

	// TrackerKey selects the tracker label template, from
	// [Series.TrackerKey].
	TrackerKey string
}

// TrackerDefinition binds a tracker key to a label template.
// Definitions are registered in order; the first one matching a hit's
// key is used, so duplicates resolve to the first registered.
type TrackerDefinition struct {

	// TrackerKey is the key this definition applies to.
	TrackerKey string

	// Template is the label template, using the four slots
	// {0} = x title, {1} = x value, {2} = y title, {3} = y value.
	Template string
}
