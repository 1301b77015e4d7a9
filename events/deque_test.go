// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/sync/errgroup"
)

func TestQueue(t *testing.T) {
	q := Queue{}
	q.Init()
	assert.Nil(t, q.NextEvent())

	for i := 0; i < 4; i++ {
		q.Send(NewMouse(MouseDown, Left, image.Pt(i, 0), 0))
	}
	assert.Equal(t, uint64(4), q.Len())

	for i := 0; i < 4; i++ {
		ev := q.NextEvent()
		if assert.NotNil(t, ev) {
			assert.Equal(t, image.Pt(i, 0), ev.Pos())
		}
	}
	assert.Nil(t, q.NextEvent())
	assert.Equal(t, uint64(0), q.Len())
}

func TestQueueConcurrent(t *testing.T) {
	q := Queue{}
	q.Init()

	const senders = 8
	const each = 100

	g := errgroup.Group{}
	for s := 0; s < senders; s++ {
		g.Go(func() error {
			for i := 0; i < each; i++ {
				q.Send(NewMouse(MouseDown, Left, image.Pt(i, 0), 0))
			}
			return nil
		})
	}
	assert.NoError(t, g.Wait())

	n := 0
	for q.NextEvent() != nil {
		n++
	}
	assert.Equal(t, senders*each, n)
}
