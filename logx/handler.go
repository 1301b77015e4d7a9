// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"context"
	"io"
	"log/slog"
	"runtime"
	"strconv"
	"sync"
)

// Handler is a [slog.Handler] whose output resembles that of [log.Logger],
// with colors keyed to the message level and the level filter taken from
// [UserLevel] unless overridden in the options.
type Handler struct {
	opts      slog.HandlerOptions
	prefix    string // preformatted group names followed by a dot
	preformat string // preformatted attrs, with an initial space
	mu        sync.Mutex
	w         io.Writer
}

// NewHandler makes a new [Handler] writing to the given writer
// with the given options. A nil options level defaults to the
// dynamic [UserLevel].
func NewHandler(w io.Writer, opts *slog.HandlerOptions) *Handler {
	h := &Handler{w: w}
	if opts != nil {
		h.opts = *opts
	}
	if h.opts.Level == nil {
		h.opts.Level = &UserLevel
	}
	return h
}

func (h *Handler) Enabled(ctx context.Context, level slog.Level) bool {
	return level >= h.opts.Level.Level()
}

func (h *Handler) WithGroup(name string) slog.Handler {
	h2 := *h
	h2.prefix = h.prefix + name + "."
	return &h2
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	h2 := *h
	pf := []byte(h.preformat)
	for _, a := range attrs {
		pf = h.appendAttr(pf, h.prefix, a)
	}
	h2.preformat = string(pf)
	return &h2
}

func (h *Handler) Handle(ctx context.Context, r slog.Record) error {
	var buf []byte
	if !r.Time.IsZero() {
		buf = r.Time.AppendFormat(buf, "15:04:05")
		buf = append(buf, ' ')
	}
	buf = append(buf, LevelColor(r.Level, r.Level.String())...)
	buf = append(buf, ' ')
	if h.opts.AddSource && r.PC != 0 {
		fs := runtime.CallersFrames([]uintptr{r.PC})
		f, _ := fs.Next()
		buf = append(buf, f.File...)
		buf = append(buf, ':')
		buf = strconv.AppendInt(buf, int64(f.Line), 10)
		buf = append(buf, ' ')
	}
	buf = append(buf, LevelColor(r.Level, r.Message)...)
	buf = append(buf, h.preformat...)
	r.Attrs(func(a slog.Attr) bool {
		buf = h.appendAttr(buf, h.prefix, a)
		return true
	})
	buf = append(buf, '\n')
	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := h.w.Write(buf)
	return err
}

func (h *Handler) appendAttr(buf []byte, prefix string, a slog.Attr) []byte {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return buf
	}
	if a.Value.Kind() != slog.KindGroup {
		buf = append(buf, ' ')
		buf = append(buf, prefix...)
		buf = append(buf, a.Key...)
		buf = append(buf, '=')
		buf = append(buf, a.Value.String()...)
		return buf
	}
	if a.Key != "" {
		prefix += a.Key + "."
	}
	for _, ga := range a.Value.Group() {
		buf = h.appendAttr(buf, prefix, ga)
	}
	return buf
}

// UseDefault installs a [Handler] writing to the given writer as the
// default [slog] handler.
func UseDefault(w io.Writer) {
	slog.SetDefault(slog.New(NewHandler(w, nil)))
}
