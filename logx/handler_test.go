// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHandler(t *testing.T) {
	UseColor = false
	defer func() { UseColor = true }()

	b := &strings.Builder{}
	lg := slog.New(NewHandler(b, nil))
	lg.Info("hello", "answer", 42)

	out := b.String()
	assert.Contains(t, out, "INFO hello")
	assert.Contains(t, out, "answer=42")
	assert.True(t, strings.HasSuffix(out, "\n"))
}

func TestHandlerGroups(t *testing.T) {
	UseColor = false
	defer func() { UseColor = true }()

	b := &strings.Builder{}
	lg := slog.New(NewHandler(b, nil)).WithGroup("view").With("id", 3)
	lg.Warn("resize", "w", 100)

	out := b.String()
	assert.Contains(t, out, "view.id=3")
	assert.Contains(t, out, "view.w=100")
}

func TestHandlerUserLevel(t *testing.T) {
	UseColor = false
	defer func() { UseColor = true }()

	old := UserLevel
	defer func() { UserLevel = old }()

	b := &strings.Builder{}
	lg := slog.New(NewHandler(b, nil))

	UserLevel = slog.LevelWarn
	lg.Info("quiet")
	assert.Empty(t, b.String())

	UserLevel = slog.LevelDebug
	lg.Debug("loud")
	assert.Contains(t, b.String(), "loud")
}
