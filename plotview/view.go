// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package plotview provides an interactive 2D plotting surface with a
// strict model/view split: a [Model] draws the data, a [View] owns the
// canvas and overlay layers and schedules rendering through an atomic
// [Invalidator], and a [Controller] turns mouse, keyboard, and touch
// events into tracker, pan, and zoom actions. Views are headless by
// default; a [Host] connects one to a real windowing backend.
package plotview

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"log/slog"
	"sync"
	"sync/atomic"

	"cogentcore.org/plotview/base/errors"
	"cogentcore.org/plotview/cursors"
	"cogentcore.org/plotview/events"
	"cogentcore.org/plotview/math32"
	"cogentcore.org/plotview/paint"
)

// ErrNotImplemented is returned by operations the surface declares but
// does not provide, such as bitmap export.
var ErrNotImplemented = errors.New("not implemented")

// View is the plotting surface: it renders an attached [Model] into a
// canvas layer, draws the tracker and zoom rectangle into an overlay
// layer, and feeds input events to a [Controller].
//
// All rendering and event dispatch happen on the goroutine running the
// view's [Loop] (or on the calling goroutine when the loop is nil).
// [View.InvalidatePlot] and [View.SendEvent] are the only methods safe
// to call from other goroutines.
type View struct {

	// Options control interaction and overlay appearance.
	Options Options

	// Listeners are called on each event before the controller;
	// marking the event handled stops further dispatch.
	Listeners events.Listeners

	// Notify receives user-facing problems that have no error return
	// path, such as clipboard failures. Optional. Called on the
	// goroutine where the problem occurred and must not block.
	Notify func(err error)

	loop *Loop
	host Host
	iv   *Invalidator
	ctrl Controller

	// modelLock guards the model pointer swap only; it is never held
	// across Update or Render.
	modelLock sync.Mutex
	model     Model

	queue  events.Queue
	closed atomic.Bool

	// render state below is owned by the loop goroutine

	size    image.Point
	canvas  *paint.Painter
	overlay *paint.Painter

	tracker     Tracker
	zoomRect    math32.Box2
	zoomVisible bool

	trackerDefs map[string]string
	cursor      cursors.Cursor
}

// NewView returns a view posting its render passes to the given loop.
// A nil loop makes the view fully synchronous: renders and events run
// directly on the calling goroutine, which is the headless mode used
// for tests and offline drawing.
func NewView(lp *Loop) *View {
	pv := &View{loop: lp}
	pv.Options.Defaults()
	pv.queue.Init()
	pv.iv = NewInvalidator(pv.scheduleRender)
	pv.cursor = cursors.Arrow
	return pv
}

// SetHost connects the view to a windowing backend. A nil host leaves
// the view headless: all host calls are no-ops.
func (pv *View) SetHost(h Host) {
	pv.host = h
}

// SetController replaces the controller handling input events. Passing
// nil restores the lazily created [DefaultController].
func (pv *View) SetController(c Controller) {
	pv.ctrl = c
}

func (pv *View) controller() Controller {
	if pv.ctrl == nil {
		pv.ctrl = &DefaultController{}
	}
	return pv.ctrl
}

// SetModel attaches the given model, detaching any current one first.
// A model still attached to another view is rejected with
// [ErrModelInUse] and this view is left with no model. On success the
// plot is invalidated with a data update, outside the attach lock.
func (pv *View) SetModel(m Model) error {
	pv.modelLock.Lock()
	if pv.model != nil && pv.model != m {
		errors.Log(pv.model.AttachView(nil))
	}
	if m != nil {
		if err := m.AttachView(pv); err != nil {
			pv.model = nil
			pv.modelLock.Unlock()
			return fmt.Errorf("plotview.View.SetModel: %w", err)
		}
	}
	pv.model = m
	pv.modelLock.Unlock()
	pv.InvalidatePlot(true)
	return nil
}

// Model returns the currently attached model, or nil.
func (pv *View) Model() Model {
	pv.modelLock.Lock()
	defer pv.modelLock.Unlock()
	return pv.model
}

// InvalidatePlot requests a re-render. updateData indicates the
// model's data changed, not just its presentation. Safe to call from
// any goroutine: the model updates on the calling goroutine and any
// number of concurrent requests coalesce into one render pass.
func (pv *View) InvalidatePlot(updateData bool) {
	pv.iv.Invalidate(pv.Model(), updateData)
}

func (pv *View) scheduleRender() {
	if pv.loop == nil {
		pv.renderPass()
		return
	}
	pv.loop.Post(pv.renderPass)
}

// renderPass runs one scheduled render. A zero-size view keeps the
// request pending so the first real layout draws it; the consume runs
// before the draw so a panicking render cannot strand a pending
// request.
func (pv *View) renderPass() {
	if pv.closed.Load() {
		return
	}
	if pv.size.X <= 0 || pv.size.Y <= 0 {
		return
	}
	if !pv.iv.Consume() {
		return
	}
	pv.UpdateVisuals()
	pv.refresh()
}

// UpdateVisuals clears the canvas layer and renders the attached model
// into it. It silently does nothing before the first layout, when no
// layers exist yet. The overlay is untouched; see [View.ShowTracker]
// and friends for overlay updates.
func (pv *View) UpdateVisuals() {
	if pv.canvas == nil {
		return
	}
	sz := pv.canvas.Size()
	if sz.X <= 0 || sz.Y <= 0 {
		return
	}
	pv.canvas.Clear(color.White)
	if m := pv.Model(); m != nil {
		m.Render(pv.canvas, float32(sz.X), float32(sz.Y))
	}
}

// Show marks the surface as (re)attached and ready: the dirty cell
// resets to clean and one fresh invalidation covers any model set
// while the surface did not exist.
func (pv *View) Show() {
	pv.iv.Reset()
	pv.InvalidatePlot(false)
}

// SetSize lays the view out at the given pixel size, rebuilding the
// canvas and overlay layers, and runs a layout pass: it invalidates
// without a data update and immediately consumes the pending request,
// which also picks up any request left pending while the size was
// zero. A zero or negative size drops the layers; rendering resumes at
// the next real size.
func (pv *View) SetSize(size image.Point) {
	if size == pv.size && pv.canvas != nil {
		return
	}
	pv.size = size
	if size.X <= 0 || size.Y <= 0 {
		pv.canvas = nil
		pv.overlay = nil
		return
	}
	pv.canvas = paint.NewPainter(size.X, size.Y)
	pv.overlay = paint.NewPainter(size.X, size.Y)
	pv.redrawOverlay()
	pv.InvalidatePlot(false)
	pv.renderPass()
}

// Size returns the current layout size in pixels.
func (pv *View) Size() image.Point {
	return pv.size
}

// PlotBounds returns the plotting area in screen space, which is the
// full surface.
func (pv *View) PlotBounds() math32.Box2 {
	return math32.B2(0, 0, float32(pv.size.X), float32(pv.size.Y))
}

// Close tears the view down. Posted renders and queued events against
// a closed view are no-ops, and the model is detached so another view
// can take it.
func (pv *View) Close() {
	pv.closed.Store(true)
	errors.Log(pv.SetModel(nil))
}

//////// events

// SendEvent queues an event and arranges for it to be processed on the
// loop goroutine. Safe to call from any goroutine. Compressible events
// still queued from the last pass merge with this one at drain time.
func (pv *View) SendEvent(e events.Event) {
	pv.queue.Send(e)
	if pv.loop == nil {
		pv.processEvents()
		return
	}
	pv.loop.Post(pv.processEvents)
}

func (pv *View) processEvents() {
	var evs []events.Event
	for {
		e := pv.queue.NextEvent()
		if e == nil {
			break
		}
		evs = append(evs, e)
	}
	for _, e := range events.CompressEvents(evs) {
		pv.HandleEvent(e)
	}
}

// HandleEvent dispatches one event: first to [View.Listeners], then to
// the controller. The controller result marks the event handled, with
// three exceptions: move, enter, and leave results are discarded so
// these events stay visible to the host; right button results are
// dropped when [Options.HandleRightClicks] is off; and wheel events
// are not dispatched at all when [Options.MouseWheelEnabled] is off.
// MouseDown requests focus and pointer capture before the controller
// runs; MouseUp releases the capture after it.
func (pv *View) HandleEvent(e events.Event) {
	if pv.closed.Load() {
		return
	}
	pv.Listeners.Call(e)
	if e.IsHandled() {
		return
	}
	ctrl := pv.controller()
	switch e.Type() {
	case events.MouseDown:
		me := e.(*events.Mouse)
		pv.requestFocus()
		pv.capturePointer(true)
		if ctrl.HandleMouseDown(pv, me) && pv.rightClickOK(me) {
			e.SetHandled()
		}
	case events.MouseUp:
		me := e.(*events.Mouse)
		handled := ctrl.HandleMouseUp(pv, me)
		pv.capturePointer(false)
		if handled && pv.rightClickOK(me) {
			e.SetHandled()
		}
	case events.MouseMove, events.MouseDrag:
		ctrl.HandleMouseMove(pv, e.(*events.Mouse))
	case events.MouseEnter:
		ctrl.HandleMouseEnter(pv, e.(*events.Mouse))
	case events.MouseLeave:
		ctrl.HandleMouseLeave(pv, e.(*events.Mouse))
	case events.Scroll:
		if !pv.Options.MouseWheelEnabled {
			return
		}
		if ctrl.HandleMouseWheel(pv, e.(*events.MouseScroll)) {
			e.SetHandled()
		}
	case events.KeyDown:
		if ctrl.HandleKeyDown(pv, e.(*events.Key)) {
			e.SetHandled()
		}
	case events.TouchStart:
		if ctrl.HandleTouchStart(pv, e.(*events.Touch)) {
			e.SetHandled()
		}
	case events.TouchMove:
		if ctrl.HandleTouchDelta(pv, e.(*events.Touch)) {
			e.SetHandled()
		}
	case events.TouchEnd:
		if ctrl.HandleTouchEnd(pv, e.(*events.Touch)) {
			e.SetHandled()
		}
	case events.Magnify:
		if ctrl.HandleMagnify(pv, e.(*events.TouchMagnify)) {
			e.SetHandled()
		}
	case events.WindowResize:
		pv.SetSize(e.(*events.Resize).Size)
		e.SetHandled()
	}
}

func (pv *View) rightClickOK(me *events.Mouse) bool {
	return me.Button != events.Right || pv.Options.HandleRightClicks
}

//////// controller callbacks

// ShowTracker positions the tracker on the given hit, formatting its
// label through the tracker definition registered for the hit's key
// (default template otherwise), and redraws the overlay. A malformed
// template is logged; the guides still show, without a label.
func (pv *View) ShowTracker(hit TrackerHit) {
	errors.Log(pv.tracker.SetPosition(hit, pv.PlotBounds(), pv.TrackerTemplate(hit.TrackerKey)))
	pv.redrawOverlay()
	pv.refresh()
}

// HideTracker hides the tracker, guides and label together. Hiding an
// already hidden tracker does nothing.
func (pv *View) HideTracker() {
	if !pv.tracker.Visible {
		return
	}
	pv.tracker.Hide()
	pv.redrawOverlay()
	pv.refresh()
}

// Tracker exposes the tracker state, mainly for custom controllers and
// tests. The view owns it; do not mutate during dispatch.
func (pv *View) Tracker() *Tracker {
	return &pv.tracker
}

// ShowZoomRectangle shows the zoom selection rectangle at the given
// screen-space box and redraws the overlay.
func (pv *View) ShowZoomRectangle(box math32.Box2) {
	pv.zoomRect = box
	pv.zoomVisible = true
	pv.redrawOverlay()
	pv.refresh()
}

// HideZoomRectangle hides the zoom selection rectangle.
func (pv *View) HideZoomRectangle() {
	if !pv.zoomVisible {
		return
	}
	pv.zoomVisible = false
	pv.zoomRect = math32.Box2{}
	pv.redrawOverlay()
	pv.refresh()
}

// ZoomRectangle returns the current zoom selection rectangle and
// whether it is shown.
func (pv *View) ZoomRectangle() (math32.Box2, bool) {
	return pv.zoomRect, pv.zoomVisible
}

// SetCursor sets the pointer cursor, forwarding to the host only when
// it actually changes.
func (pv *View) SetCursor(c cursors.Cursor) {
	if c == pv.cursor {
		return
	}
	pv.cursor = c
	if pv.host != nil {
		pv.host.SetCursor(c)
	}
}

// AddTrackerDefinition registers a label template for series carrying
// the given tracker key. The first definition registered for a key
// wins; later ones for the same key are ignored.
func (pv *View) AddTrackerDefinition(def TrackerDefinition) {
	if pv.trackerDefs == nil {
		pv.trackerDefs = map[string]string{}
	}
	if _, exists := pv.trackerDefs[def.TrackerKey]; exists {
		return
	}
	pv.trackerDefs[def.TrackerKey] = def.Template
}

// TrackerTemplate returns the label template for the given tracker
// key: the registered definition if one exists, else
// [Options.TrackerTemplate]. The empty key always gets the default.
func (pv *View) TrackerTemplate(key string) string {
	if key != "" {
		if t, ok := pv.trackerDefs[key]; ok {
			return t
		}
	}
	return pv.Options.TrackerTemplate
}

// SetClipboardText copies the given text through the host's
// [ClipboardSetter]. Failures, including a host without clipboard
// support, are logged and reported through [View.Notify], never
// returned: clipboard trouble must not disturb the render pipeline.
// A nil (headless) host does nothing.
func (pv *View) SetClipboardText(text string) {
	if pv.host == nil {
		return
	}
	var err error
	if cs, ok := pv.host.(ClipboardSetter); ok {
		err = cs.SetClipboardText(text)
	} else {
		err = fmt.Errorf("host clipboard: %w", ErrNotImplemented)
	}
	if err == nil {
		return
	}
	slog.Warn("plotview: could not set clipboard text", "err", err)
	if pv.Notify != nil {
		pv.Notify(err)
	}
}

// SaveBitmap reports [ErrNotImplemented]: raster export belongs to the
// hosting toolkit, which has the frame via [View.Image].
func (pv *View) SaveBitmap(filename string) error {
	return fmt.Errorf("plotview.View.SaveBitmap: %w", ErrNotImplemented)
}

// CopyBitmap reports [ErrNotImplemented], like [View.SaveBitmap].
func (pv *View) CopyBitmap() error {
	return fmt.Errorf("plotview.View.CopyBitmap: %w", ErrNotImplemented)
}

//////// compositing

// redrawOverlay redraws the zoom rectangle and tracker into the
// overlay layer. It does not touch the canvas or the model.
func (pv *View) redrawOverlay() {
	if pv.overlay == nil {
		return
	}
	pv.overlay.Clear(color.RGBA{})
	if pv.zoomVisible {
		c := pv.Options.ZoomRectangleColor
		pv.overlay.FillBox(pv.zoomRect, color.NRGBA{c.R, c.G, c.B, 48})
		pv.overlay.StrokeBox(pv.zoomRect, 1, c)
	}
	pv.tracker.Render(pv.overlay, pv.Options.TrackerColor)
}

// Composite draws the current frame, canvas with overlay on top, onto
// dst at the view's own bounds. Does nothing before the first layout.
func (pv *View) Composite(dst draw.Image) {
	if pv.canvas == nil {
		return
	}
	draw.Draw(dst, pv.canvas.Image.Rect, pv.canvas.Image, image.Point{}, draw.Src)
	if pv.overlay != nil {
		draw.Draw(dst, pv.overlay.Image.Rect, pv.overlay.Image, image.Point{}, draw.Over)
	}
}

// Image returns the composited frame as a fresh image, or nil before
// the first layout.
func (pv *View) Image() *image.RGBA {
	if pv.canvas == nil {
		return nil
	}
	img := image.NewRGBA(pv.canvas.Image.Rect)
	pv.Composite(img)
	return img
}

func (pv *View) refresh() {
	if pv.host != nil {
		pv.host.Refresh()
	}
}

func (pv *View) requestFocus() {
	if pv.host != nil {
		pv.host.RequestFocus()
	}
}

func (pv *View) capturePointer(capture bool) {
	if pv.host != nil {
		pv.host.CapturePointer(capture)
	}
}
