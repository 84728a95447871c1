// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// color parsing is adapted from github.com/srwiley/oksvg:
//
// Copyright 2017 The oksvg Authors. All rights reserved.
//
// created: 2/12/2017 by S.R.Wiley

// Package colors provides the RGB color triple used by SVG paint
// and the parsing of SVG color strings.
package colors

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// RGB is an opaque 8-bit RGB color. Opacity is carried separately
// by the fill, stroke and stop opacity properties.
type RGB struct {
	R, G, B uint8
}

// Standard colors.
var (
	Black = RGB{0, 0, 0}
	White = RGB{255, 255, 255}
)

// RGBA implements [color.Color].
func (c RGB) RGBA() (r, g, b, a uint32) {
	return color.RGBA{c.R, c.G, c.B, 255}.RGBA()
}

// WithOpacity returns the color as a non-premultiplied [color.NRGBA]
// with the given opacity in [0, 1].
func (c RGB) WithOpacity(opacity float32) color.NRGBA {
	opacity = min(max(opacity, 0), 1)
	return color.NRGBA{c.R, c.G, c.B, uint8(opacity*255 + 0.5)}
}

// String returns the color in #rrggbb form.
func (c RGB) String() string {
	return AsHex(c)
}

// AsHex returns the color in lowercase #rrggbb form.
func AsHex(c RGB) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// FromColor converts any [color.Color] to RGB, un-premultiplying
// and dropping the alpha channel.
func FromColor(c color.Color) RGB {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return RGB{n.R, n.G, n.B}
}

// FromName returns the SVG named color (e.g. "cornflowerblue"),
// case-insensitively.
func FromName(name string) (RGB, bool) {
	c, ok := colornames.Map[strings.ToLower(name)]
	if !ok {
		return RGB{}, false
	}
	return RGB{c.R, c.G, c.B}, true
}

// FromString parses an SVG color: a named color, #rgb, #rrggbb or
// rgb(r, g, b) with integer or percentage components. Keywords that
// are not colors (none, currentColor, url(...)) are handled by the
// paint parser, not here.
func FromString(str string) (RGB, error) {
	s := strings.TrimSpace(str)
	if s == "" {
		return RGB{}, errors.New("colors.FromString: empty color")
	}
	lstr := strings.ToLower(s)
	switch {
	case lstr[0] == '#':
		return FromHex(lstr)
	case strings.HasPrefix(lstr, "rgb("):
		return fromRGBFunc(lstr)
	}
	if c, ok := FromName(lstr); ok {
		return c, nil
	}
	return RGB{}, fmt.Errorf("colors.FromString: unknown color %q", str)
}

// FromHex parses the given #rgb or #rrggbb color string,
// with or without the leading #.
func FromHex(hex string) (RGB, error) {
	hex = strings.TrimPrefix(hex, "#")
	switch len(hex) {
	case 3:
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	case 6:
	default:
		return RGB{}, errors.New("colors.FromHex: could not process: " + hex)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return RGB{}, errors.New("colors.FromHex: could not process: " + hex)
	}
	return RGB{uint8(v >> 16), uint8(v >> 8), uint8(v)}, nil
}

// MustFromHex parses the given hex color string
// and returns the resulting color. It panics on any
// resulting error; see [FromHex] for a version
// that returns an error.
func MustFromHex(hex string) RGB {
	c, err := FromHex(hex)
	if err != nil {
		panic(err)
	}
	return c
}

func fromRGBFunc(lstr string) (RGB, error) {
	val, ok := strings.CutSuffix(strings.TrimSpace(lstr[4:]), ")")
	if !ok {
		return RGB{}, fmt.Errorf("colors.FromString: missing ) in %q", lstr)
	}
	parts := strings.Split(val, ",")
	if len(parts) != 3 {
		return RGB{}, fmt.Errorf("colors.FromString: rgb() needs 3 components in %q", lstr)
	}
	var cv [3]uint8
	for i, p := range parts {
		c, err := parseComponent(strings.TrimSpace(p))
		if err != nil {
			return RGB{}, fmt.Errorf("colors.FromString: %w in %q", err, lstr)
		}
		cv[i] = c
	}
	return RGB{cv[0], cv[1], cv[2]}, nil
}

// parseComponent parses an rgb() component, either 0-255 or a
// percentage, clamping out-of-range values.
func parseComponent(v string) (uint8, error) {
	if pct, ok := strings.CutSuffix(v, "%"); ok {
		f, err := strconv.ParseFloat(strings.TrimSpace(pct), 32)
		if err != nil {
			return 0, err
		}
		return uint8(min(max(f, 0), 100)*255/100 + 0.5), nil
	}
	f, err := strconv.ParseFloat(v, 32)
	if err != nil {
		return 0, err
	}
	return uint8(min(max(f, 0), 255) + 0.5), nil
}
