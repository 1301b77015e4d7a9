// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plotview

import (
	"cogentcore.org/plotview/cursors"
	"cogentcore.org/plotview/events"
	"cogentcore.org/plotview/events/key"
	"cogentcore.org/plotview/math32"
)

// Controller turns input events into plot interaction. The view calls
// exactly one handler per event, on the event goroutine, and uses the
// returned bool to decide whether the platform event is consumed (see
// [View.HandleEvent] for the gating rules). Custom controllers can be
// set with [View.SetController]; otherwise a [DefaultController] is
// created lazily on first dispatch.
type Controller interface {
	HandleMouseDown(pv *View, e *events.Mouse) bool
	HandleMouseUp(pv *View, e *events.Mouse) bool
	HandleMouseMove(pv *View, e *events.Mouse) bool
	HandleMouseEnter(pv *View, e *events.Mouse) bool
	HandleMouseLeave(pv *View, e *events.Mouse) bool
	HandleMouseWheel(pv *View, e *events.MouseScroll) bool
	HandleKeyDown(pv *View, e *events.Key) bool
	HandleTouchStart(pv *View, e *events.Touch) bool
	HandleTouchDelta(pv *View, e *events.Touch) bool
	HandleTouchEnd(pv *View, e *events.Touch) bool
	HandleMagnify(pv *View, e *events.TouchMagnify) bool
}

// Interaction modes of the [DefaultController], set on press and
// cleared on release.
type mode int32

const (
	modeNone mode = iota
	modeTrack
	modePan
	modeZoomRect
)

// wheelZoomBase converts a wheel delta in dots into a zoom factor:
// factor = wheelZoomBase ** delta, so small deltas compose smoothly
// and opposite scrolls cancel exactly.
const wheelZoomBase = 1.002

// minZoomRectSize is the minimum width and height in dots a released
// zoom rectangle must have to commit; anything smaller is treated as
// an aborted drag.
const minZoomRectSize = 10

// DefaultController implements the standard gestures: left press and
// drag drives the tracker, right drag pans, middle or Shift+left drag
// selects a zoom rectangle, the wheel and pinch zoom about the
// pointer, Escape dismisses the tracker and zoom rectangle, and A or
// Home resets the viewport. Pan and zoom reach the model only if it
// implements [Viewport]. The zero value is ready to use.
type DefaultController struct {
	mode mode

	// start anchors the zoom rectangle at its press position.
	start math32.Vector2

	// lastTouch is the previous touch position, for pan deltas.
	lastTouch math32.Vector2
}

func (dc *DefaultController) HandleMouseDown(pv *View, e *events.Mouse) bool {
	pos := math32.Vector2FromPoint(e.Pos())
	switch {
	case e.MouseButton() == events.Middle,
		e.MouseButton() == events.Left && e.HasAnyModifier(key.Shift):
		dc.mode = modeZoomRect
		dc.start = pos
		pv.ShowZoomRectangle(math32.Box2{Min: pos, Max: pos})
		pv.SetCursor(pv.Options.ZoomRectangleCursor)
		return true
	case e.MouseButton() == events.Left:
		dc.mode = modeTrack
		dc.track(pv, pos)
		return true
	case e.MouseButton() == events.Right:
		dc.mode = modePan
		pv.SetCursor(pv.Options.PanCursor)
		return true
	}
	return false
}

func (dc *DefaultController) HandleMouseUp(pv *View, e *events.Mouse) bool {
	md := dc.mode
	dc.mode = modeNone
	switch md {
	case modeTrack:
		pv.HideTracker()
		return true
	case modePan:
		pv.SetCursor(cursors.Arrow)
		return true
	case modeZoomRect:
		pv.HideZoomRectangle()
		pv.SetCursor(cursors.Arrow)
		box := rectBetween(dc.start, math32.Vector2FromPoint(e.Pos()))
		sz := box.Size()
		if sz.X >= minZoomRectSize && sz.Y >= minZoomRectSize {
			if vp, ok := pv.Model().(Viewport); ok {
				vp.ZoomRect(box)
				pv.InvalidatePlot(false)
			}
		}
		return true
	}
	return false
}

func (dc *DefaultController) HandleMouseMove(pv *View, e *events.Mouse) bool {
	pos := math32.Vector2FromPoint(e.Pos())
	switch dc.mode {
	case modeTrack:
		dc.track(pv, pos)
		return true
	case modePan:
		d := e.PrevDelta()
		dc.pan(pv, math32.Vec2(float32(d.X), float32(d.Y)))
		return true
	case modeZoomRect:
		pv.ShowZoomRectangle(rectBetween(dc.start, pos))
		return true
	}
	return false
}

func (dc *DefaultController) HandleMouseEnter(pv *View, e *events.Mouse) bool {
	return false
}

func (dc *DefaultController) HandleMouseLeave(pv *View, e *events.Mouse) bool {
	return false
}

func (dc *DefaultController) HandleMouseWheel(pv *View, e *events.MouseScroll) bool {
	factor := math32.Pow(wheelZoomBase, e.Delta.Y)
	dc.zoom(pv, math32.Vector2FromPoint(e.Pos()), factor)
	return true
}

func (dc *DefaultController) HandleKeyDown(pv *View, e *events.Key) bool {
	switch e.KeyCode() {
	case key.CodeEscape:
		dc.mode = modeNone
		pv.HideTracker()
		pv.HideZoomRectangle()
		pv.SetCursor(cursors.Arrow)
		return true
	case key.CodeA, key.CodeHome:
		if vp, ok := pv.Model().(Viewport); ok {
			vp.Reset()
			pv.InvalidatePlot(false)
		}
		return true
	}
	return false
}

func (dc *DefaultController) HandleTouchStart(pv *View, e *events.Touch) bool {
	dc.mode = modePan
	dc.lastTouch = math32.Vector2FromPoint(e.Pos())
	return true
}

func (dc *DefaultController) HandleTouchDelta(pv *View, e *events.Touch) bool {
	if dc.mode != modePan {
		return false
	}
	pos := math32.Vector2FromPoint(e.Pos())
	dc.pan(pv, pos.Sub(dc.lastTouch))
	dc.lastTouch = pos
	return true
}

func (dc *DefaultController) HandleTouchEnd(pv *View, e *events.Touch) bool {
	dc.mode = modeNone
	return true
}

func (dc *DefaultController) HandleMagnify(pv *View, e *events.TouchMagnify) bool {
	dc.zoom(pv, math32.Vector2FromPoint(e.Pos()), e.ScaleFactor)
	return true
}

// track updates the tracker from a hit test at the given position.
func (dc *DefaultController) track(pv *View, pos math32.Vector2) {
	m := pv.Model()
	if m == nil {
		pv.HideTracker()
		return
	}
	hit, ok := NearestHit(m, pos, pv.PlotBounds(), pv.Options.TrackerSnapDistance)
	if ok {
		pv.ShowTracker(hit)
	} else {
		pv.HideTracker()
	}
}

func (dc *DefaultController) pan(pv *View, delta math32.Vector2) {
	if vp, ok := pv.Model().(Viewport); ok {
		vp.Pan(delta)
		pv.InvalidatePlot(false)
	}
}

func (dc *DefaultController) zoom(pv *View, center math32.Vector2, factor float32) {
	if vp, ok := pv.Model().(Viewport); ok {
		vp.Zoom(center, factor)
		pv.InvalidatePlot(false)
	}
}

// rectBetween returns the axis-aligned box spanned by two corners in
// either order.
func rectBetween(a, b math32.Vector2) math32.Box2 {
	bb := math32.B2Empty()
	bb.ExpandByPoint(a)
	bb.ExpandByPoint(b)
	return bb
}
