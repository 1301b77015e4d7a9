// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"log/slog"

	"github.com/muesli/termenv"
)

// UseColor is whether to use color in logging and printing messages.
// It is on by default; terminals that do not support color degrade
// through the termenv profile.
var UseColor = true

// colorProfile is the termenv color profile of the current terminal,
// captured once at startup.
var colorProfile = termenv.ColorProfile()

// ApplyColor applies the given color to the given string
// if [UseColor] is on.
func ApplyColor(clr termenv.Color, str string) string {
	if !UseColor {
		return str
	}
	return termenv.String(str).Foreground(clr).String()
}

// LevelColor applies the color associated with the given level to the
// given string.
func LevelColor(level slog.Level, str string) string {
	switch {
	case level < slog.LevelInfo:
		return DebugColor(str)
	case level < slog.LevelWarn:
		return InfoColor(str)
	case level < slog.LevelError:
		return WarnColor(str)
	default:
		return ErrorColor(str)
	}
}

// DebugColor applies the color associated with debug messages (gray).
func DebugColor(str string) string {
	return ApplyColor(colorProfile.Color("8"), str)
}

// InfoColor applies the color associated with info messages, which is
// no color, under the assumption that such messages are standard output.
func InfoColor(str string) string {
	return str
}

// WarnColor applies the color associated with warning messages (yellow).
func WarnColor(str string) string {
	return ApplyColor(colorProfile.Color("3"), str)
}

// ErrorColor applies the color associated with error messages (red).
func ErrorColor(str string) string {
	return ApplyColor(colorProfile.Color("1"), str)
}

// SuccessColor applies the color associated with success messages (green).
func SuccessColor(str string) string {
	return ApplyColor(colorProfile.Color("2"), str)
}
