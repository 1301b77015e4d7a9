// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plotview

import (
	"cogentcore.org/plotview/math32"
)

// NearestHit finds the trackable data point nearest to the given
// screen position, within the given snap distance in pixels. It walks
// the series of models implementing [SeriesSource], skipping series
// that are not trackable or expose no points; for [Connected] series
// the segments between consecutive points are also considered,
// snapping to the nearer endpoint. Returns false if the model exposes
// no series or nothing is within the snap distance.
func NearestHit(m Model, sp math32.Vector2, bounds math32.Box2, snap float32) (TrackerHit, bool) {
	src, ok := m.(SeriesSource)
	if !ok {
		return TrackerHit{}, false
	}
	if snap <= 0 {
		snap = DefaultTrackerSnapDistance
	}
	var best TrackerHit
	bestd := snap
	found := false

	add := func(s Series, i int, p DataPoint, pos math32.Vector2, d float32) {
		if d > bestd {
			return
		}
		bestd = d
		best = TrackerHit{Series: s, Point: p, Index: i, ScreenPos: pos, TrackerKey: s.TrackerKey()}
		found = true
	}

	for _, s := range src.Series() {
		if !s.Trackable() {
			continue
		}
		xy, ok := s.(XYer)
		if !ok || xy.Len() == 0 {
			continue
		}
		xrng := s.XAxis().Range
		yrng := s.YAxis().Range
		connected := false
		if c, ok := s.(Connected); ok {
			connected = c.Connected()
		}

		prev := math32.Vector2{}
		for i := 0; i < xy.Len(); i++ {
			x, y := xy.XY(i)
			p := DataPoint{X: x, Y: y}
			pos := ToScreen(p, xrng, yrng, bounds)
			add(s, i, p, pos, pos.DistanceTo(sp))

			if connected && i > 0 {
				seg := math32.Line2{Start: prev, End: pos}
				if seg.DistanceToPoint(sp) < bestd {
					// snap to the nearer endpoint of the segment
					j, ep := i, pos
					if sp.DistanceTo(prev) < sp.DistanceTo(pos) {
						j, ep = i-1, prev
					}
					px, py := xy.XY(j)
					add(s, j, DataPoint{X: px, Y: py}, ep, seg.DistanceToPoint(sp))
				}
			}
			prev = pos
		}
	}
	return best, found
}
