// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bvol

import (
	"log/slog"
	"sync/atomic"
)

// loggerPtr stores the logger set with SetLogger, or nil to use
// [slog.Default].
var loggerPtr atomic.Pointer[slog.Logger]

// SetLogger sets the logger used for reported conditions and frame
// summaries. It is safe for concurrent use. Pass nil to go back to
// [slog.Default].
//
// Levels used:
//   - [slog.LevelDebug]: frame summaries, empty geometry
//   - [slog.LevelWarn]: unusable attributes and out of range data
func SetLogger(l *slog.Logger) {
	loggerPtr.Store(l)
}

// Logger returns the current logger.
func Logger() *slog.Logger {
	if l := loggerPtr.Load(); l != nil {
		return l
	}
	return slog.Default()
}
