// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import "fmt"

// CompressEvents merges runs of adjacent compressible events of the
// same type in a drained batch, in order, and returns the compressed
// batch (reusing the given slice). Unique events are never merged.
// Merging keeps the newest event and integrates the older one into it:
// Scroll deltas add, Magnify scale factors multiply, move events chain
// their Prev position across the run, and for WindowResize only the
// final size survives.
func CompressEvents(evs []Event) []Event {
	if len(evs) < 2 {
		return evs
	}
	out := evs[:0]
	for _, e := range evs {
		if len(out) == 0 {
			out = append(out, e)
			continue
		}
		last := out[len(out)-1]
		if e.IsUnique() || last.IsUnique() || last.Type() != e.Type() {
			out = append(out, e)
			continue
		}
		switch typed := e.(type) {
		case *MouseScroll:
			typed.Delta.SetAdd(last.(*MouseScroll).Delta)
		case *TouchMagnify:
			typed.ScaleFactor *= last.(*TouchMagnify).ScaleFactor
		default:
			switch e.Type() {
			case MouseMove, MouseDrag, TouchMove:
				e.AsBase().Prev = last.AsBase().Prev
			}
		}
		if TraceEventCompression {
			fmt.Println("compressed event:", last)
		}
		out[len(out)-1] = e
	}
	return out
}
