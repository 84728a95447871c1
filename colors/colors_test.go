// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromString(t *testing.T) {
	tests := []struct {
		in   string
		want RGB
	}{
		{"black", Black},
		{"White", White},
		{" cornflowerblue ", RGB{100, 149, 237}},
		{"#f00", RGB{255, 0, 0}},
		{"#00FF7f", RGB{0, 255, 127}},
		{"rgb(1, 2, 3)", RGB{1, 2, 3}},
		{"RGB(100%,0%, 50%)", RGB{255, 0, 128}},
		{"rgb(300, -4, 12.4)", RGB{255, 0, 12}},
	}
	for _, tt := range tests {
		c, err := FromString(tt.in)
		assert.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, c, tt.in)
	}
}

func TestFromStringErrors(t *testing.T) {
	for _, in := range []string{"", "#12", "#12345g", "notacolor", "rgb(1,2)", "rgb(1,2,3", "rgb(a,b,c)", "none", "currentColor"} {
		_, err := FromString(in)
		assert.Error(t, err, in)
	}
}

func TestRGB(t *testing.T) {
	c := RGB{10, 20, 30}
	assert.Equal(t, "#0a141e", c.String())
	assert.Equal(t, color.NRGBA{10, 20, 30, 128}, c.WithOpacity(0.5))
	assert.Equal(t, color.NRGBA{10, 20, 30, 255}, c.WithOpacity(2))
	assert.Equal(t, c, FromColor(c))
	assert.Equal(t, c, MustFromHex("0a141e"))
	assert.Panics(t, func() { MustFromHex("zz") })
}
