// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plotview

import (
	"fmt"
	"image/color"
	"path/filepath"

	"cogentcore.org/plotview/base/iox/tomlx"
	"cogentcore.org/plotview/base/iox/yamlx"
	"cogentcore.org/plotview/cursors"
)

// DefaultTrackerSnapDistance is the hit-test snap radius in pixels
// used when [Options.TrackerSnapDistance] is zero or negative.
const DefaultTrackerSnapDistance = 10

// Options holds the interaction and appearance settings of a [View].
// The zero value is not useful; start from [Options.Defaults] and
// adjust, or load saved settings with [Options.Open].
type Options struct {

	// HandleRightClicks marks right button presses and releases as
	// consumed after dispatch, keeping the host's context menu from
	// opening over the plot.
	HandleRightClicks bool

	// MouseWheelEnabled routes wheel events to the controller.
	// When false they pass through to the host untouched.
	MouseWheelEnabled bool

	// TrackerSnapDistance is the maximum distance in pixels between
	// the pointer and a data point for the tracker to snap to it.
	TrackerSnapDistance float32

	// TrackerTemplate is the label template used for series without
	// a registered tracker definition. See [FormatTrackerLabel] for
	// the slot syntax.
	TrackerTemplate string

	// TrackerColor draws the tracker guides and label border.
	TrackerColor color.RGBA

	// ZoomRectangleColor draws the zoom rectangle outline; the fill
	// uses the same color at low alpha.
	ZoomRectangleColor color.RGBA

	// PanCursor shows while a pan drag is active.
	PanCursor cursors.Cursor

	// ZoomRectangleCursor shows while a zoom rectangle drag is active.
	ZoomRectangleCursor cursors.Cursor

	// ZoomHorizontalCursor shows during horizontal-only zoom gestures.
	ZoomHorizontalCursor cursors.Cursor

	// ZoomVerticalCursor shows during vertical-only zoom gestures.
	ZoomVerticalCursor cursors.Cursor
}

// Defaults sets standard values and returns the options for chaining.
func (o *Options) Defaults() *Options {
	o.HandleRightClicks = true
	o.MouseWheelEnabled = true
	o.TrackerSnapDistance = DefaultTrackerSnapDistance
	o.TrackerTemplate = DefaultTrackerTemplate
	o.TrackerColor = color.RGBA{80, 80, 80, 255}
	o.ZoomRectangleColor = color.RGBA{0, 120, 215, 255}
	o.PanCursor = cursors.Grab
	o.ZoomRectangleCursor = cursors.Crosshair
	o.ZoomHorizontalCursor = cursors.ResizeEW
	o.ZoomVerticalCursor = cursors.ResizeNS
	return o
}

// Open loads options from the given file, with the format determined
// by the extension: .toml, .yaml or .yml.
func (o *Options) Open(filename string) error {
	switch filepath.Ext(filename) {
	case ".toml":
		return tomlx.Open(o, filename)
	case ".yaml", ".yml":
		return yamlx.Open(o, filename)
	}
	return fmt.Errorf("plotview.Options: unknown settings file extension %q", filepath.Ext(filename))
}

// Save writes options to the given file, with the format determined
// by the extension: .toml, .yaml or .yml.
func (o *Options) Save(filename string) error {
	switch filepath.Ext(filename) {
	case ".toml":
		return tomlx.Save(o, filename)
	case ".yaml", ".yml":
		return yamlx.Save(o, filename)
	}
	return fmt.Errorf("plotview.Options: unknown settings file extension %q", filepath.Ext(filename))
}
