// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"fmt"
	"log/slog"
)

// Print is equivalent to [fmt.Print], but it is only displayed if
// [UserLevel] admits the given level, and it is colored by the level.
func Print(level slog.Level, a ...any) {
	if UserLevel > level {
		return
	}
	fmt.Print(LevelColor(level, fmt.Sprint(a...)))
}

// Println is equivalent to [fmt.Println], but it is only displayed if
// [UserLevel] admits the given level, and it is colored by the level.
func Println(level slog.Level, a ...any) {
	if UserLevel > level {
		return
	}
	fmt.Println(LevelColor(level, fmt.Sprint(a...)))
}

// Printf is equivalent to [fmt.Printf], but it is only displayed if
// [UserLevel] admits the given level, and it is colored by the level.
func Printf(level slog.Level, format string, a ...any) {
	if UserLevel > level {
		return
	}
	fmt.Print(LevelColor(level, fmt.Sprintf(format, a...)))
}

// PrintlnDebug prints the given arguments at [slog.LevelDebug].
func PrintlnDebug(a ...any) {
	Println(slog.LevelDebug, a...)
}

// PrintlnInfo prints the given arguments at [slog.LevelInfo].
func PrintlnInfo(a ...any) {
	Println(slog.LevelInfo, a...)
}

// PrintlnWarn prints the given arguments at [slog.LevelWarn].
func PrintlnWarn(a ...any) {
	Println(slog.LevelWarn, a...)
}

// PrintlnError prints the given arguments at [slog.LevelError].
func PrintlnError(a ...any) {
	Println(slog.LevelError, a...)
}
