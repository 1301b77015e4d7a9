// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plotview

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoopInlineWhenNotRunning(t *testing.T) {
	lp := NewLoop()
	ran := false
	lp.RunOnLoop(func() { ran = true })
	assert.True(t, ran)

	ran = false
	lp.Post(func() { ran = true })
	assert.True(t, ran)
}

func TestLoopRunOnLoop(t *testing.T) {
	lp := NewLoop()
	go lp.Run()
	defer lp.Stop()

	// Wait for the loop goroutine to start accepting.
	for !lp.running.Load() {
		time.Sleep(time.Millisecond)
	}

	var order []int
	lp.RunOnLoop(func() { order = append(order, 1) })
	lp.RunOnLoop(func() { order = append(order, 2) })
	assert.Equal(t, []int{1, 2}, order)
}

func TestLoopPost(t *testing.T) {
	lp := NewLoop()
	go lp.Run()
	defer lp.Stop()
	for !lp.running.Load() {
		time.Sleep(time.Millisecond)
	}

	var n atomic.Int32
	for i := 0; i < 8; i++ {
		lp.Post(func() { n.Add(1) })
	}
	assert.Eventually(t, func() bool {
		return n.Load() == 8
	}, time.Second, time.Millisecond)
}

func TestLoopStop(t *testing.T) {
	lp := NewLoop()
	finished := make(chan struct{})
	go func() {
		lp.Run()
		close(finished)
	}()
	for !lp.running.Load() {
		time.Sleep(time.Millisecond)
	}

	lp.Stop()
	lp.Stop() // idempotent
	select {
	case <-finished:
	case <-time.After(time.Second):
		t.Fatal("loop did not stop")
	}
}
