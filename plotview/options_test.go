// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plotview

import (
	"path/filepath"
	"testing"

	"cogentcore.org/plotview/cursors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptionsDefaults(t *testing.T) {
	o := (&Options{}).Defaults()
	assert.True(t, o.HandleRightClicks)
	assert.True(t, o.MouseWheelEnabled)
	assert.Equal(t, float32(DefaultTrackerSnapDistance), o.TrackerSnapDistance)
	assert.Equal(t, DefaultTrackerTemplate, o.TrackerTemplate)
	assert.Equal(t, cursors.Grab, o.PanCursor)
	assert.Equal(t, cursors.Crosshair, o.ZoomRectangleCursor)
}

func TestOptionsSaveOpen(t *testing.T) {
	for _, ext := range []string{".toml", ".yaml"} {
		fn := filepath.Join(t.TempDir(), "settings"+ext)
		o := (&Options{}).Defaults()
		o.HandleRightClicks = false
		o.TrackerSnapDistance = 24
		o.TrackerTemplate = "{1} / {3}"
		require.NoError(t, o.Save(fn))

		got := &Options{}
		require.NoError(t, got.Open(fn))
		assert.Equal(t, o, got, "format %s", ext)
	}
}

func TestOptionsUnknownExtension(t *testing.T) {
	o := (&Options{}).Defaults()
	assert.Error(t, o.Save("settings.json"))
	assert.Error(t, o.Open("settings.json"))
}
