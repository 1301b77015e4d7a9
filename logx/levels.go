// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx provides leveled logging and printing helpers built on
// log/slog, with a user-controllable verbosity level and colored output.
package logx

// UserLevel is the verbosity [slog.Level] that the user has selected for
// which logging and printing messages should be displayed. It defaults to
// [slog.LevelInfo], so standard informational messages are shown. Setting
// it to [slog.LevelDebug] (typically via a -v flag) shows debug messages,
// and setting it to [slog.LevelWarn] (typically via a -q flag) shows only
// warnings and errors. A [Handler] consults it on every record, so it can
// be changed at any time.
var UserLevel = defaultUserLevel
