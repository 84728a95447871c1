// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package styles

import (
	"testing"

	"cogentcore.org/svgir/colors"
	"cogentcore.org/svgir/math32"
	"cogentcore.org/svgir/units"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePaint(t *testing.T) {
	tests := []struct {
		in   string
		want Paint
	}{
		{"none", Paint{Kind: PaintNone}},
		{" currentcolor ", Paint{Kind: PaintCurrentColor}},
		{"red", Solid(colors.RGB{R: 255, G: 0, B: 0})},
		{"#0f0", Solid(colors.RGB{R: 0, G: 255, B: 0})},
		{"url(#g1)", Paint{Kind: PaintURL, URL: "g1"}},
		{"url('#g1') blue", Paint{Kind: PaintURL, URL: "g1", Fallback: PaintColor, Color: colors.RGB{R: 0, G: 0, B: 255}}},
		{"url(#g1) none", Paint{Kind: PaintURL, URL: "g1"}},
		{"url(#g1) currentColor", Paint{Kind: PaintURL, URL: "g1", Fallback: PaintCurrentColor}},
	}
	for _, tt := range tests {
		p, err := ParsePaint(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, p, tt.in)
	}

	for _, in := range []string{"", "nocolor", "url(g1)", "url(#g1", "url(other.svg#g1)", "url(#a) url(#b)", "url(#a) bogus"} {
		_, err := ParsePaint(in)
		assert.Error(t, err, in)
	}
}

func TestPaintString(t *testing.T) {
	for _, s := range []string{"none", "currentColor", "#ff0000", "url(#g)", "url(#g) #0000ff", "url(#g) currentColor"} {
		p, err := ParsePaint(s)
		require.NoError(t, err)
		assert.Equal(t, s, p.String())
	}
}

func TestSetProperty(t *testing.T) {
	var s Style
	props := [][2]string{
		{"fill", "blue"},
		{"fill-rule", "evenodd"},
		{"fill-opacity", "50%"},
		{"opacity", "1.5"},
		{"stroke", "url(#grad)"},
		{"stroke-width", "2mm"},
		{"stroke-linejoin", "round"},
		{"stroke-linecap", "square"},
		{"stroke-opacity", "0.25"},
		{"stroke-dasharray", "5, 10 2"},
		{"stroke-miterlimit", "8"},
		{"transform", "translate(3 4)"},
		{"clip-path", "url(#clip)"},
		{"mask", "none"},
		{"display", "none"},
		{"color", "#010203"},
		{"font-size", "12px"},
	}
	for _, p := range props {
		require.NoError(t, s.SetProperty(p[0], p[1]), p[0])
	}
	assert.Equal(t, Of(Solid(colors.RGB{R: 0, G: 0, B: 255})), s.Fill)
	assert.Equal(t, Of(FillRuleEvenOdd), s.FillRule)
	assert.Equal(t, Of(float32(0.5)), s.FillOpacity)
	assert.Equal(t, Of(float32(1)), s.Opacity, "opacity is clamped")
	assert.Equal(t, "grad", s.Stroke.Val.URL)
	assert.Equal(t, Of(units.New(2, units.UnitMm)), s.StrokeWidth)
	assert.Equal(t, Of(LineJoinRound), s.StrokeLineJoin)
	assert.Equal(t, Of(LineCapSquare), s.StrokeLineCap)
	assert.Equal(t, Of(float32(0.25)), s.StrokeOpacity)
	assert.Equal(t, []units.Value{units.Px(5), units.Px(10), units.Px(2), units.Px(5), units.Px(10), units.Px(2)}, s.StrokeDashArray.Val)
	assert.Equal(t, Of(float32(8)), s.StrokeMiterLimit)
	assert.Equal(t, Of(math32.Translate2D(3, 4)), s.Transform)
	require.True(t, s.ClipPath.Set)
	assert.Equal(t, "clip", s.ClipPath.Val.URL)
	assert.Equal(t, Unresolved, s.ClipPath.Val.State)
	assert.True(t, s.Mask.Set)
	assert.Nil(t, s.Mask.Val)
	assert.Equal(t, Of(false), s.Display)
	assert.Equal(t, Of(colors.RGB{R: 1, G: 2, B: 3}), s.Color)
}

func TestSetPropertyInherit(t *testing.T) {
	var s Style
	require.NoError(t, s.SetProperty("fill", "red"))
	require.NoError(t, s.SetProperty("stroke-width", "3"))
	require.NoError(t, s.SetProperty("fill", " inherit "))
	assert.False(t, s.Fill.Set)
	assert.True(t, s.StrokeWidth.Set)

	require.NoError(t, s.SetProperty("color", "red"))
	require.NoError(t, s.SetProperty("color", "currentColor"))
	assert.False(t, s.Color.Set)
}

func TestSetPropertyErrors(t *testing.T) {
	var s Style
	require.NoError(t, s.SetProperty("stroke-width", "4"))
	bad := [][2]string{
		{"fill", "nocolor"},
		{"fill-rule", "sometimes"},
		{"opacity", "half"},
		{"stroke-width", "-1"},
		{"stroke-width", "3furlongs"},
		{"stroke-linecap", "pointy"},
		{"stroke-dasharray", "1 -2"},
		{"stroke-dasharray", ","},
		{"stroke-miterlimit", "0.5"},
		{"transform", "spin(3)"},
		{"clip-path", "#clip"},
		{"mask", "url(#m) extra"},
	}
	for _, p := range bad {
		assert.Error(t, s.SetProperty(p[0], p[1]), p[0]+": "+p[1])
	}
	assert.Equal(t, Of(units.Px(4)), s.StrokeWidth, "failed set keeps the previous value")
	assert.False(t, s.Fill.Set)
}

func TestDashArrayNone(t *testing.T) {
	d, err := ParseDashArray("none")
	require.NoError(t, err)
	assert.Empty(t, d)
	assert.NotNil(t, d)

	d, err = ParseDashArray("0 0")
	require.NoError(t, err)
	assert.Empty(t, d)
}

func TestSetStyleAttr(t *testing.T) {
	var s Style
	other, errs := s.SetStyleAttr("fill: red; stroke-width: 2px; stop-color: blue; stroke: wobbly")
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "stroke")
	require.Len(t, other, 1)
	assert.Equal(t, "stop-color", other[0].Property)
	assert.Equal(t, "blue", other[0].Value)
	assert.Equal(t, Of(Solid(colors.RGB{R: 255, G: 0, B: 0})), s.Fill)
	assert.Equal(t, Of(units.Px(2)), s.StrokeWidth)
	assert.False(t, s.Stroke.Set)
}

func TestParseStyleAttr(t *testing.T) {
	tests := []struct {
		str   string
		props []string
		vals  []string
	}{
		{"stroke-width:3", []string{"stroke-width"}, []string{"3"}},
		{"r: 4", []string{"r"}, []string{"4"}},
		{"fill: blue; opacity: 0.5", []string{"fill", "opacity"}, []string{"blue", "0.5"}},
		{"fill: blue; opacity: 0.5;", []string{"fill", "opacity"}, []string{"blue", "0.5"}},
		{" stop-color:blue; stop-opacity:0.5 ; ", []string{"stop-color", "stop-opacity"}, []string{"blue", "0.5"}},
		{"", nil, nil},
		{" ; ", nil, nil},
	}
	for _, test := range tests {
		decls, err := ParseStyleAttr(test.str)
		require.NoError(t, err, test.str)
		require.Len(t, decls, len(test.props), test.str)
		for i, d := range decls {
			assert.Equal(t, test.props[i], d.Property, test.str)
			assert.Equal(t, test.vals[i], d.Value, test.str)
		}
	}
}

func TestSetStyleAttrLast(t *testing.T) {
	var s Style
	other, errs := s.SetStyleAttr("fill: blue; opacity: 0.5")
	assert.Empty(t, errs)
	assert.Empty(t, other)
	assert.Equal(t, Of(float32(0.5)), s.Opacity)

	other, errs = s.SetStyleAttr("stroke-width: 3px")
	assert.Empty(t, errs)
	assert.Empty(t, other)
	assert.Equal(t, Of(units.Px(3)), s.StrokeWidth)
}

func TestDefaults(t *testing.T) {
	d := Defaults()
	assert.Equal(t, colors.Black, d.Color)
	assert.Equal(t, Solid(colors.Black), d.Fill.Paint)
	assert.Equal(t, float32(1), d.Fill.Opacity)
	assert.Equal(t, FillRuleNonZero, d.Fill.Rule)
	assert.True(t, d.Stroke.Paint.IsNone())
	assert.Equal(t, units.Px(1), d.Stroke.Width)
	assert.Equal(t, LineCapButt, d.Stroke.Cap)
	assert.Equal(t, LineJoinMiter, d.Stroke.Join)
	assert.Equal(t, float32(4), d.Stroke.MiterLimit)
	assert.Empty(t, d.Stroke.Dashes)
	assert.Equal(t, float32(1), d.Opacity)
	assert.True(t, d.Transform.IsIdentity())
	assert.Nil(t, d.ClipPath)
	assert.Nil(t, d.Mask)
	assert.True(t, d.Display)
}

func TestInherit(t *testing.T) {
	var rootStyle, midStyle, leafStyle Style
	require.NoError(t, rootStyle.SetProperty("fill", "black"))
	require.NoError(t, rootStyle.SetProperty("opacity", "1"))
	require.NoError(t, rootStyle.SetProperty("transform", "translate(10, 0)"))
	require.NoError(t, rootStyle.SetProperty("clip-path", "url(#c)"))
	require.NoError(t, midStyle.SetProperty("stroke", "red"))
	require.NoError(t, midStyle.SetProperty("transform", "scale(2)"))
	require.NoError(t, leafStyle.SetProperty("stroke-width", "5"))

	var root, mid, leaf Computed
	root.Inherit(nil, &rootStyle)
	mid.Inherit(&root, &midStyle)
	leaf.Inherit(&mid, &leafStyle)

	assert.Equal(t, Solid(colors.Black), leaf.Fill.Paint)
	assert.Equal(t, float32(1), leaf.Opacity)
	assert.Equal(t, units.Px(5), leaf.Stroke.Width)
	assert.Equal(t, Solid(colors.RGB{R: 255, G: 0, B: 0}), leaf.Stroke.Paint)
	assert.Equal(t, units.Px(1), mid.Stroke.Width)
	assert.Same(t, root.ClipPath, leaf.ClipPath)
	assert.Equal(t, math32.Vec2(12, 2), leaf.Transform.MulVector2AsPoint(math32.Vec2(1, 1)))
	assert.Equal(t, leaf.Transform, mid.Transform)
	assert.True(t, leaf.Display)
}

func TestInheritDisplay(t *testing.T) {
	var hidden, shown Style
	require.NoError(t, hidden.SetProperty("display", "none"))
	require.NoError(t, shown.SetProperty("display", "inline"))

	var a, b, c Computed
	a.Inherit(nil, &hidden)
	b.Inherit(&a, &shown)
	c.Inherit(&b, &Style{})
	assert.False(t, a.Display)
	assert.False(t, b.Display, "an ancestor with display none hides the subtree")
	assert.False(t, c.Display)
}
