// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plotview

import (
	"errors"
	"sync"

	"cogentcore.org/plotview/paint"
)

// ErrModelInUse is returned when attaching a model that is already
// attached to a different view. The first attachment stays intact.
var ErrModelInUse = errors.New("model is already attached to another view")

// Model is the data side of a plot. A view renders whatever its model
// draws and forwards gestures to it through the optional capability
// interfaces ([SeriesSource], [Viewport]). Implementations usually
// embed [ModelBase] and override Update and Render.
type Model interface {

	// AttachView records the view this model is shown in, or detaches
	// it when v is nil. Attaching to a second view while still
	// attached to a first fails with [ErrModelInUse]; re-attaching to
	// the same view is a no-op.
	AttachView(v *View) error

	// AttachedView returns the currently attached view, or nil.
	AttachedView() *View

	// Update recomputes whatever the model caches before a render
	// pass. It is called on the invalidating goroutine, before the
	// render is scheduled, so it must do its own locking if the model
	// is shared. updateData indicates the underlying data changed,
	// not just the presentation.
	Update(updateData bool)

	// Render draws the model onto the canvas, which is width by
	// height pixels. It is only called on the render goroutine.
	Render(pc *paint.Painter, width, height float32)
}

// ModelBase is a stub implementation of [Model] for embedding in
// concrete models. It handles the attach bookkeeping; Update and
// Render do nothing.
type ModelBase struct {
	mu   sync.Mutex
	view *View
}

func (mb *ModelBase) AttachView(v *View) error {
	mb.mu.Lock()
	defer mb.mu.Unlock()
	if v == nil {
		mb.view = nil
		return nil
	}
	if mb.view != nil && mb.view != v {
		return ErrModelInUse
	}
	mb.view = v
	return nil
}

func (mb *ModelBase) AttachedView() *View {
	mb.mu.Lock()
	defer mb.mu.Unlock()
	return mb.view
}

func (mb *ModelBase) Update(updateData bool) {}

func (mb *ModelBase) Render(pc *paint.Painter, width, height float32) {}
