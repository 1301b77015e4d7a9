// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plotview

import (
	"image/color"

	"cogentcore.org/plotview/math32"
	"cogentcore.org/plotview/paint"
)

// Tracker owns the cross-hair overlay shown while inspecting data
// points: a full-height vertical guide through the hit's x, a
// full-width horizontal guide through the hit's y, and a label
// anchored at the hit's own screen position.
type Tracker struct {

	// Visible is whether the tracker is currently shown. Guides and
	// label are always shown and hidden together.
	Visible bool

	// Hit is the hit the tracker is showing.
	Hit TrackerHit

	// VerticalGuide is the guide line through the hit's x,
	// from (x, yrange.Max) to (x, yrange.Min), in screen space.
	VerticalGuide math32.Line2

	// HorizontalGuide is the guide line through the hit's y,
	// from (xrange.Min, y) to (xrange.Max, y), in screen space.
	HorizontalGuide math32.Line2

	// LabelAnchor is the hit's own screen position, anchoring Label.
	LabelAnchor math32.Vector2

	// Label is the formatted label text; "" renders no label.
	Label string
}

// SetPosition computes the tracker geometry for the given hit within
// the given screen bounds, reading the hit series' axis ranges at call
// time, and makes the tracker visible. If template is nonempty the
// label is formatted through a [TrackerViewModel]; a template error is
// returned with the guides still shown and the label left empty.
func (tr *Tracker) SetPosition(hit TrackerHit, bounds math32.Box2, template string) error {
	xrng := hit.Series.XAxis().Range
	yrng := hit.Series.YAxis().Range

	top := ToScreen(DataPoint{X: hit.Point.X, Y: yrng.Max}, xrng, yrng, bounds)
	bottom := ToScreen(DataPoint{X: hit.Point.X, Y: yrng.Min}, xrng, yrng, bounds)
	left := ToScreen(DataPoint{X: xrng.Min, Y: hit.Point.Y}, xrng, yrng, bounds)
	right := ToScreen(DataPoint{X: xrng.Max, Y: hit.Point.Y}, xrng, yrng, bounds)

	tr.Hit = hit
	tr.VerticalGuide = math32.Line2{Start: top, End: bottom}
	tr.HorizontalGuide = math32.Line2{Start: left, End: right}
	tr.LabelAnchor = ToScreen(hit.Point, xrng, yrng, bounds)
	tr.Label = ""
	tr.Visible = true

	if template != "" {
		lbl, err := FormatTrackerLabel(hit.Series, hit.Point, template)
		if err != nil {
			return err
		}
		tr.Label = lbl
	}
	return nil
}

// Hide hides the tracker, clearing the guides and label together.
// Hiding an already hidden tracker is a no-op.
func (tr *Tracker) Hide() {
	*tr = Tracker{}
}

// Render draws the tracker onto the given overlay painter using the
// given color for the guides and label box.
func (tr *Tracker) Render(pc *paint.Painter, clr color.RGBA) {
	if !tr.Visible {
		return
	}
	pc.Line(tr.VerticalGuide.Start, tr.VerticalGuide.End, 1, clr)
	pc.Line(tr.HorizontalGuide.Start, tr.HorizontalGuide.End, 1, clr)
	if tr.Label == "" {
		return
	}

	const pad = 4
	sz := paint.TextSize(tr.Label).AddScalar(2 * pad)
	min := tr.LabelAnchor.Add(math32.Vec2(pad, -pad-sz.Y))
	box := math32.Box2{Min: min, Max: min.Add(sz)}
	// keep the label inside the image
	ib := math32.B2FromRect(pc.Image.Rect)
	if box.Max.X > ib.Max.X {
		box = box.Translate(math32.Vec2(ib.Max.X-box.Max.X, 0))
	}
	if box.Min.Y < ib.Min.Y {
		box = box.Translate(math32.Vec2(0, ib.Min.Y-box.Min.Y))
	}
	pc.FillBox(box, color.NRGBA{255, 255, 255, 230})
	pc.StrokeBox(box, 1, clr)
	pc.DrawText(tr.Label, box.Min.AddScalar(pad), color.RGBA{A: 255})
}
