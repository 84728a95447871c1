// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

import (
	"testing"

	"cogentcore.org/svgir/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestViewBoxSetString(t *testing.T) {
	var vb ViewBox
	require.NoError(t, vb.SetString("0 0 100 50"))
	assert.True(t, vb.IsSet())
	assert.Equal(t, math32.Vec2(100, 50), vb.Size)
	assert.Equal(t, "0 0 100 50", vb.String())

	require.NoError(t, vb.SetString("-5,10 20,30"))
	assert.Equal(t, math32.Vec2(-5, 10), vb.Min)

	for _, s := range []string{"0 0 -1 5", "1 2 3", "0 0 0 0", "a b c d", ""} {
		assert.Error(t, vb.SetString(s), s)
	}
	// unchanged on error
	assert.Equal(t, math32.Vec2(20, 30), vb.Size)

	vb.Defaults()
	assert.False(t, vb.IsSet())
	assert.True(t, vb.Transform(10, 10).IsIdentity())
}

func TestPreserveAspectRatio(t *testing.T) {
	tests := []struct {
		str  string
		want ViewBoxPreserveAspectRatio
	}{
		{"xMidYMid", ViewBoxPreserveAspectRatio{}},
		{"xMinYMax slice", ViewBoxPreserveAspectRatio{X: AlignMin, Y: AlignMax, MeetOrSlice: Slice}},
		{"none", ViewBoxPreserveAspectRatio{NoAlign: true}},
		{"defer xMaxYMin meet", ViewBoxPreserveAspectRatio{X: AlignMax, Y: AlignMin}},
	}
	for _, test := range tests {
		var pa ViewBoxPreserveAspectRatio
		require.NoError(t, pa.SetString(test.str), test.str)
		assert.Equal(t, test.want, pa, test.str)
	}
	for _, s := range []string{"bogus", "xMinYMax meet extra", "xMinYMax stretch", "xLowYMid", ""} {
		var pa ViewBoxPreserveAspectRatio
		assert.Error(t, pa.SetString(s), s)
	}
}

func TestViewBoxTransformAspect(t *testing.T) {
	tests := []struct {
		par      string
		from, to math32.Vector2
	}{
		{"xMidYMid meet", math32.Vec2(0, 0), math32.Vec2(0, 50)},
		{"xMidYMid meet", math32.Vec2(100, 50), math32.Vec2(200, 150)},
		{"xMinYMin meet", math32.Vec2(100, 50), math32.Vec2(200, 100)},
		{"xMaxYMax meet", math32.Vec2(0, 0), math32.Vec2(0, 100)},
		{"none", math32.Vec2(100, 50), math32.Vec2(200, 200)},
		{"xMinYMin slice", math32.Vec2(100, 50), math32.Vec2(400, 200)},
		{"xMidYMid slice", math32.Vec2(0, 0), math32.Vec2(-100, 0)},
	}
	for _, test := range tests {
		var vb ViewBox
		require.NoError(t, vb.SetString("0 0 100 50"))
		require.NoError(t, vb.PreserveAspectRatio.SetString(test.par))
		pt := vb.Transform(200, 200).MulVector2AsPoint(test.from)
		assert.InDelta(t, test.to.X, pt.X, 1e-4, test.par)
		assert.InDelta(t, test.to.Y, pt.Y, 1e-4, test.par)
	}

	var vb ViewBox
	require.NoError(t, vb.SetString("10 20 100 100"))
	pt := vb.Transform(50, 50).MulVector2AsPoint(math32.Vec2(10, 20))
	assert.InDelta(t, 0, pt.X, 1e-4)
	assert.InDelta(t, 0, pt.Y, 1e-4)
}
