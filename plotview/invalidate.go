// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plotview

import (
	"sync/atomic"
)

// Invalidation states. Transitions happen only by compare-and-swap,
// so concurrent invalidations collapse into one scheduled render.
const (
	stateClean int32 = iota
	statePendingRender
)

// Invalidator is the render scheduling core: an atomic dirty cell that
// coalesces any number of invalidation requests issued between two
// render passes into a single scheduled pass. It is safe to call
// [Invalidator.Invalidate] from any goroutine; everything else runs on
// the goroutine that owns drawing.
type Invalidator struct {
	state    atomic.Int32
	schedule func()
}

// NewInvalidator returns an [Invalidator] calling the given schedule
// function whenever a render pass needs to be arranged. schedule must
// not block; it typically posts to a [Loop].
func NewInvalidator(schedule func()) *Invalidator {
	return &Invalidator{schedule: schedule}
}

// Invalidate records that the plot needs to be re-rendered. It first
// calls the model's Update on the calling goroutine, with no lock
// held, so a slow update never blocks other invalidations from being
// recorded. It then transitions Clean to PendingRender; only the
// winning transition schedules a render pass, so any number of
// concurrent calls produce at most one request in flight.
func (iv *Invalidator) Invalidate(m Model, updateData bool) {
	if m != nil {
		m.Update(updateData)
	}
	if iv.state.CompareAndSwap(stateClean, statePendingRender) && iv.schedule != nil {
		iv.schedule()
	}
}

// Consume transitions PendingRender to Clean, returning whether the
// caller should draw this pass. It runs before the draw, so a
// panicking render cannot leave the cell stuck pending; a fresh
// invalidation arriving during the draw schedules another pass.
func (iv *Invalidator) Consume() bool {
	return iv.state.CompareAndSwap(statePendingRender, stateClean)
}

// Reset forces the cell back to Clean. Used when a view is (re)shown,
// before issuing the fresh invalidation that covers models set while
// the surface did not exist yet.
func (iv *Invalidator) Reset() {
	iv.state.Store(stateClean)
}

// Pending returns whether a render request is currently in flight.
func (iv *Invalidator) Pending() bool {
	return iv.state.Load() == statePendingRender
}
