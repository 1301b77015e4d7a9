// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plotview

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/sync/errgroup"
)

func TestInvalidatorCoalesces(t *testing.T) {
	var scheduled atomic.Int32
	iv := NewInvalidator(func() { scheduled.Add(1) })
	m := &testModel{}

	const n = 32
	var g errgroup.Group
	for i := 0; i < n; i++ {
		g.Go(func() error {
			iv.Invalidate(m, true)
			return nil
		})
	}
	assert.NoError(t, g.Wait())

	assert.Equal(t, int32(1), scheduled.Load())
	assert.Equal(t, int32(n), m.updates.Load())
	assert.Equal(t, int32(n), m.data.Load())
	assert.True(t, iv.Pending())

	assert.True(t, iv.Consume())
	assert.False(t, iv.Consume())
	assert.False(t, iv.Pending())
}

func TestInvalidatorReschedulesAfterConsume(t *testing.T) {
	var scheduled atomic.Int32
	iv := NewInvalidator(func() { scheduled.Add(1) })

	iv.Invalidate(nil, false)
	assert.Equal(t, int32(1), scheduled.Load())

	// Further invalidations before the pass are absorbed.
	iv.Invalidate(nil, false)
	iv.Invalidate(nil, false)
	assert.Equal(t, int32(1), scheduled.Load())

	assert.True(t, iv.Consume())

	// Once consumed, the next invalidation schedules again.
	iv.Invalidate(nil, false)
	assert.Equal(t, int32(2), scheduled.Load())
}

func TestInvalidatorReset(t *testing.T) {
	var scheduled atomic.Int32
	iv := NewInvalidator(func() { scheduled.Add(1) })

	iv.Invalidate(nil, false)
	assert.True(t, iv.Pending())

	iv.Reset()
	assert.False(t, iv.Pending())
	assert.False(t, iv.Consume())

	iv.Invalidate(nil, false)
	assert.Equal(t, int32(2), scheduled.Load())
}

func TestInvalidatorNilSchedule(t *testing.T) {
	iv := NewInvalidator(nil)
	m := &testModel{}
	iv.Invalidate(m, false)
	assert.True(t, iv.Pending())
	assert.Equal(t, int32(1), m.updates.Load())
}
