// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx installs the default structured logger used by the
// svgir tools and holds the user-facing log level.
package logx

import (
	"io"
	"log/slog"
	"strings"
)

// UserLevel is the verbosity level of log messages shown to the user.
// It is read each time a message is logged, so it can be changed
// after [SetDefault] has been called.
var UserLevel = defaultUserLevel

// levelVar adapts UserLevel to the [slog.Leveler] interface.
type levelVar struct{}

func (levelVar) Level() slog.Level { return UserLevel }

// SetDefault installs a text handler writing to w as the default
// [slog] logger, filtered by [UserLevel].
func SetDefault(w io.Writer) {
	h := slog.NewTextHandler(w, &slog.HandlerOptions{Level: levelVar{}})
	slog.SetDefault(slog.New(h))
}

// ParseLevel returns the level named by s (debug, info, warn or error),
// falling back to [slog.LevelInfo] for an empty or unknown name.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}
