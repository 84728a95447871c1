// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, ParseLevel(" warning"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel(""))
	assert.Equal(t, slog.LevelInfo, ParseLevel("loud"))
}

func TestSetDefault(t *testing.T) {
	prev := slog.Default()
	prevLevel := UserLevel
	defer func() {
		slog.SetDefault(prev)
		UserLevel = prevLevel
	}()

	var buf bytes.Buffer
	SetDefault(&buf)
	UserLevel = slog.LevelWarn
	slog.Info("hidden")
	assert.Empty(t, buf.String())

	UserLevel = slog.LevelDebug
	slog.Debug("shown")
	assert.Contains(t, buf.String(), "msg=shown")
}
