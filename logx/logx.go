// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx provides the user-selected logging verbosity level
// and helpers for building loggers that honor it.
package logx

import (
	"context"
	"io"
	"log/slog"
)

// UserLevel is the verbosity [slog.Level] that the user has selected
// for what logging messages should be shown. Messages at levels at or
// above this level will be shown. The default is [slog.LevelWarn], or
// [slog.LevelDebug] when built with the debug tag.
var UserLevel = defaultUserLevel

// LevelFromFlags returns the [slog.Level] corresponding to the given
// user flag options. The flags correspond to the following values:
//   - vv: [slog.LevelDebug]
//   - v: [slog.LevelInfo]
//   - q: [slog.LevelError]
//   - (default: [UserLevel])
//
// The flags are evaluated in that order, so, for example, if both
// vv and q are specified, it will still return [slog.LevelDebug].
func LevelFromFlags(vv, v, q bool) slog.Level {
	switch {
	case vv:
		return slog.LevelDebug
	case v:
		return slog.LevelInfo
	case q:
		return slog.LevelError
	default:
		return UserLevel
	}
}

// NewLogger returns a text logger writing to w that shows
// messages at or above the given level.
func NewLogger(w io.Writer, level slog.Leveler) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// LevelHandler is a [slog.Handler] that only passes records at or
// above its level on to the handler it wraps.
type LevelHandler struct {
	level   slog.Leveler
	handler slog.Handler
}

// NewLevelHandler returns a [LevelHandler] wrapping h at the given level.
func NewLevelHandler(level slog.Leveler, h slog.Handler) *LevelHandler {
	return &LevelHandler{level: level, handler: h}
}

func (h *LevelHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return level >= h.level.Level() && h.handler.Enabled(ctx, level)
}

func (h *LevelHandler) Handle(ctx context.Context, r slog.Record) error {
	return h.handler.Handle(ctx, r)
}

func (h *LevelHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return NewLevelHandler(h.level, h.handler.WithAttrs(attrs))
}

func (h *LevelHandler) WithGroup(name string) slog.Handler {
	return NewLevelHandler(h.level, h.handler.WithGroup(name))
}

// WithLevel returns a logger that writes to l, but only for messages
// at or above the given level.
func WithLevel(l *slog.Logger, level slog.Leveler) *slog.Logger {
	return slog.New(NewLevelHandler(level, l.Handler()))
}
