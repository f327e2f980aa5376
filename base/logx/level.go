// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx provides the user verbosity level and a colored
// [slog.Handler] that respects it.
package logx

import "log/slog"

// UserLevel is the lowest [slog.Level] shown by [Handler].
// Commands set it from their verbosity flags; it starts at
// [slog.LevelWarn] so that only problems are reported.
var UserLevel = slog.LevelWarn

// LevelFromFlags maps the -vv, -v, and -q command line flags onto a
// level: debug, info, and error respectively, or warn when none is
// set. A more verbose flag wins over -q.
func LevelFromFlags(vv, v, q bool) slog.Level {
	switch {
	case vv:
		return slog.LevelDebug
	case v:
		return slog.LevelInfo
	case q:
		return slog.LevelError
	}
	return slog.LevelWarn
}
