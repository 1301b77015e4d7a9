// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plotview

import (
	"strconv"
	"strings"

	"cogentcore.org/plotview/base/errors"
)

// DefaultTrackerTemplate is the tracker label template used when no
// [TrackerDefinition] matches a hit's key: "x title: x, y title: y".
const DefaultTrackerTemplate = "{0}: {1}, {2}: {3}"

// TrackerViewModel formats one tracker hit into a display label.
// It is a transient value built per [Tracker.SetPosition] call.
type TrackerViewModel struct {

	// Series is the series the hit belongs to; its axis titles fill
	// the title slots. A nil series yields the "X"/"Y" defaults.
	Series Series

	// Point is the hit data point.
	Point DataPoint

	// Format is the label template; "" means [DefaultTrackerTemplate].
	Format string
}

// Label renders the label. The template has four positional slots:
// {0} = x axis title, {1} = x value, {2} = y axis title, {3} = y value.
// Empty axis titles are replaced by "X" and "Y". Values are formatted
// with at most 5 decimal digits, trailing zeros trimmed, and always a
// '.' decimal separator. {{ and }} escape literal braces. A slot index
// outside 0..3 or a malformed slot is an error.
func (tm *TrackerViewModel) Label() (string, error) {
	xtitle, ytitle := "", ""
	if tm.Series != nil {
		if ax := tm.Series.XAxis(); ax != nil {
			xtitle = ax.Title
		}
		if ax := tm.Series.YAxis(); ax != nil {
			ytitle = ax.Title
		}
	}
	if xtitle == "" {
		xtitle = "X"
	}
	if ytitle == "" {
		ytitle = "Y"
	}
	format := tm.Format
	if format == "" {
		format = DefaultTrackerTemplate
	}
	slots := [4]string{xtitle, FormatValue(tm.Point.X), ytitle, FormatValue(tm.Point.Y)}
	return expandSlots(format, slots)
}

// FormatTrackerLabel formats a tracker label for the given series,
// point, and template; see [TrackerViewModel.Label].
func FormatTrackerLabel(s Series, p DataPoint, format string) (string, error) {
	tm := &TrackerViewModel{Series: s, Point: p, Format: format}
	return tm.Label()
}

// FormatValue renders a data value for tracker labels: fixed notation
// with at most 5 decimal digits, trailing zeros (and a trailing '.')
// trimmed, always using '.' as the decimal separator.
func FormatValue(v float64) string {
	s := strconv.FormatFloat(v, 'f', 5, 64)
	if !strings.Contains(s, ".") {
		return s
	}
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}

// expandSlots expands the positional slots {0}..{3} in format with the
// given values. {{ and }} produce literal braces.
func expandSlots(format string, slots [4]string) (string, error) {
	var b strings.Builder
	for i := 0; i < len(format); i++ {
		c := format[i]
		switch c {
		case '{':
			if i+1 < len(format) && format[i+1] == '{' {
				b.WriteByte('{')
				i++
				continue
			}
			end := strings.IndexByte(format[i:], '}')
			if end < 0 {
				return "", errors.New("plotview: unterminated slot in tracker template " + strconv.Quote(format))
			}
			n, err := strconv.Atoi(format[i+1 : i+end])
			if err != nil {
				return "", errors.New("plotview: invalid slot " + strconv.Quote(format[i+1:i+end]) + " in tracker template")
			}
			if n < 0 || n > 3 {
				return "", errors.New("plotview: tracker template slot " + strconv.Itoa(n) + " outside 0..3")
			}
			b.WriteString(slots[n])
			i += end
		case '}':
			if i+1 < len(format) && format[i+1] == '}' {
				b.WriteByte('}')
				i++
				continue
			}
			return "", errors.New("plotview: unmatched '}' in tracker template " + strconv.Quote(format))
		default:
			b.WriteByte(c)
		}
	}
	return b.String(), nil
}
