// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plotview

import (
	"sync"
	"sync/atomic"
)

// funcRun pairs a function with a channel to signal on when it has
// finished running on the loop.
type funcRun struct {
	f    func()
	done chan struct{}
}

// Loop is a single goroutine that owns all rendering and event
// dispatch for the views attached to it. Hosts embedding a [View] in a
// real windowing system run their platform main loop instead and only
// need the posting semantics; headless programs and tests use Loop
// directly.
type Loop struct {
	queue   chan funcRun
	done    chan struct{}
	running atomic.Bool
	stop    sync.Once
}

// NewLoop returns a new loop, ready to [Loop.Run].
func NewLoop() *Loop {
	return &Loop{
		queue: make(chan funcRun),
		done:  make(chan struct{}),
	}
}

// Run processes posted functions until [Loop.Stop] is called. It
// blocks, so it is typically the last call in main or runs in a
// dedicated goroutine in tests.
func (lp *Loop) Run() {
	lp.running.Store(true)
	defer lp.running.Store(false)
	for {
		select {
		case <-lp.done:
			return
		case fr := <-lp.queue:
			fr.f()
			if fr.done != nil {
				close(fr.done)
			}
		}
	}
}

// Stop terminates the loop. Functions posted after Stop are dropped.
// Safe to call multiple times and from any goroutine.
func (lp *Loop) Stop() {
	lp.stop.Do(func() {
		close(lp.done)
	})
}

// RunOnLoop calls f on the loop goroutine and waits for it to
// complete. If the loop is not running, f is called directly on the
// calling goroutine, which keeps headless code paths synchronous.
func (lp *Loop) RunOnLoop(f func()) {
	if !lp.running.Load() {
		f()
		return
	}
	fr := funcRun{f: f, done: make(chan struct{})}
	select {
	case lp.queue <- fr:
		select {
		case <-fr.done:
		case <-lp.done:
		}
	case <-lp.done:
		f()
	}
}

// Post queues f to run on the loop goroutine without waiting for it.
// The send happens on a fresh goroutine so Post never blocks the
// caller, which matters when posting from inside a handler already
// running on the loop. Posts racing with [Loop.Stop] may be dropped.
func (lp *Loop) Post(f func()) {
	if !lp.running.Load() {
		f()
		return
	}
	go func() {
		select {
		case lp.queue <- funcRun{f: f}:
		case <-lp.done:
		}
	}()
}
