// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package units

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	vp := Viewport{Width: 200, Height: 100}
	assert.Equal(t, float32(100), Resolve(50, UnitPercent, Horizontal, vp))
	assert.Equal(t, float32(50), Resolve(50, UnitPercent, Vertical, vp))
	assert.Equal(t, float32(96), Resolve(1, UnitIn, Horizontal, vp))
	assert.Equal(t, float32(96), Resolve(1, UnitIn, Vertical, Viewport{}))
	assert.Equal(t, float32(96), Resolve(72, UnitPt, Other, vp))
	assert.Equal(t, float32(96), Resolve(72, UnitPt, Horizontal, Viewport{}))
	assert.Equal(t, float32(16), Resolve(1, UnitPc, Other, vp))
	assert.Equal(t, float32(7), Resolve(7, UnitPx, Vertical, vp))
	assert.InDelta(t, 96, Resolve(2.54, UnitCm, Horizontal, vp), 1e-4)
	assert.InDelta(t, 96, Resolve(25.4, UnitMm, Horizontal, vp), 1e-4)

	sq := Viewport{Width: 100, Height: 100}
	assert.InDelta(t, 50, Resolve(50, UnitPercent, Other, sq), 1e-4)
	assert.InDelta(t, 0.5*158.11388, Resolve(50, UnitPercent, Other, vp), 1e-3)
}

func TestToDots(t *testing.T) {
	vp := Viewport{Width: 1920, Height: 1080}
	tests := []struct {
		v    Value
		axis Axis
		want float32
	}{
		{Px(50), Horizontal, 50},
		{Pct(50), Horizontal, 960},
		{Pct(50), Vertical, 540},
		{Pt(36), Other, 48},
		{In(0.5), Vertical, 48},
		{New(3, UnitPc), Horizontal, 48},
	}
	for _, tt := range tests {
		v := tt.v
		have := v.ToDots(tt.axis, vp)
		assert.InDelta(t, tt.want, have, 0.001, tt.v.String())
		assert.Equal(t, have, v.Dots)
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want Value
	}{
		{"10", Px(10)},
		{" 10px ", Px(10)},
		{"2.5mm", New(2.5, UnitMm)},
		{"50%", Pct(50)},
		{"1IN", In(1)},
		{"-3pt", Pt(-3)},
		{"1e1cm", New(10, UnitCm)},
		{".5pc", New(0.5, UnitPc)},
	}
	for _, tt := range tests {
		v, err := Parse(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, v, tt.in)
	}
}

func TestParseErrors(t *testing.T) {
	for _, in := range []string{"", "px", "abc", "10furlongs", "5em", "1 2", "inf", "nan%"} {
		_, err := Parse(in)
		var pe *ParseError
		assert.True(t, errors.As(err, &pe), in)
		if pe != nil {
			assert.Equal(t, in, pe.Value)
		}
	}
}

func TestValueString(t *testing.T) {
	for _, un := range UnitsValues() {
		v1 := New(1.5, un)
		v2, err := Parse(v1.String())
		assert.NoError(t, err)
		assert.Equal(t, v1, v2)
	}
	var v Value
	assert.Error(t, v.SetString("12qq"))
	assert.Equal(t, Value{}, v)
	assert.NoError(t, v.SetString("12"))
	assert.Equal(t, Px(12), v)
}

func TestUnitsString(t *testing.T) {
	assert.Equal(t, "%", UnitPercent.String())
	assert.Equal(t, "Units(42)", Units(42).String())
	assert.Equal(t, "other", Other.String())
	var u Units
	assert.NoError(t, u.SetString("MM"))
	assert.Equal(t, UnitMm, u)
	assert.Error(t, u.SetString("furlong"))
}
