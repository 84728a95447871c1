// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package units supports the SVG length units (px, %, pt, pc, mm, cm, in).

The unit is stored along with a value, and can be converted at a later point into
a resolved user-space value using the Viewport, which holds the reference extents
for percentages. Typically the value is parsed early from an attribute and then
converted once the document viewport is known. The Value also holds the
converted value (Dots) so it can be used directly without further re-conversion.

The physical units use the CSS reference of 96 px per inch.
*/
package units

import (
	"fmt"
	"strings"

	"cogentcore.org/svgir/math32"
)

// standard conversion factors, with Px as the DPI-independent user unit
const (
	PxPerInch = 96.0
	MmPerInch = 25.4
	CmPerInch = 2.54
	PtPerInch = 72.0
	PcPerInch = 6.0
)

// Units is an enum that represents a length unit (px, %, etc)
type Units int32

const (
	// UnitPx = pixels: 1px = 1/96th of 1in, the SVG user unit.
	// A unitless number is in px.
	UnitPx Units = iota

	// UnitPercent = percentage of the viewport extent along the axis
	// the length is measured on
	UnitPercent

	// UnitPt = points: 1pt = 1/72th of 1in
	UnitPt

	// UnitPc = picas: 1pc = 1/6th of 1in
	UnitPc

	// UnitMm = millimeters: 1mm = 1/10th of cm
	UnitMm

	// UnitCm = centimeters: 1cm = 96px/2.54
	UnitCm

	// UnitIn = inches: 1in = 2.54cm = 96px
	UnitIn

	unitsN
)

// UnitNames are the suffixes used for each unit in SVG syntax.
var UnitNames = [...]string{
	UnitPx:      "px",
	UnitPercent: "%",
	UnitPt:      "pt",
	UnitPc:      "pc",
	UnitMm:      "mm",
	UnitCm:      "cm",
	UnitIn:      "in",
}

// UnitsValues returns all possible values of [Units].
func UnitsValues() []Units {
	vals := make([]Units, unitsN)
	for i := range vals {
		vals[i] = Units(i)
	}
	return vals
}

// String returns the SVG suffix of the unit.
func (u Units) String() string {
	if u >= 0 && u < unitsN {
		return UnitNames[u]
	}
	return fmt.Sprintf("Units(%d)", int32(u))
}

// SetString sets the unit from its SVG suffix, case-insensitively.
// The empty string means px.
func (u *Units) SetString(s string) error {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		*u = UnitPx
		return nil
	}
	for i, nm := range UnitNames {
		if nm == s {
			*u = Units(i)
			return nil
		}
	}
	return fmt.Errorf("unknown unit %q", s)
}

// Axis is the direction a length is measured along, which determines
// the viewport extent a percentage refers to.
type Axis int32

const (
	// Horizontal lengths (x, width, cx, rx, ...) refer to the viewport width.
	Horizontal Axis = iota

	// Vertical lengths (y, height, cy, ry, ...) refer to the viewport height.
	Vertical

	// Other lengths (r, stroke-width, ...) refer to the normalized
	// viewport diagonal sqrt((w² + h²) / 2).
	Other
)

var axisNames = [...]string{"horizontal", "vertical", "other"}

func (a Axis) String() string {
	if a >= 0 && int(a) < len(axisNames) {
		return axisNames[a]
	}
	return fmt.Sprintf("Axis(%d)", int32(a))
}

// Viewport holds the extents that percentages are resolved against.
type Viewport struct {
	Width  float32
	Height float32
}

// Diagonal returns the normalized diagonal sqrt((w² + h²) / 2),
// used for percentages that are not along a single axis.
func (vp Viewport) Diagonal() float32 {
	return math32.Sqrt((vp.Width*vp.Width + vp.Height*vp.Height) / 2)
}

// Extent returns the reference extent for the given axis.
func (vp Viewport) Extent(axis Axis) float32 {
	switch axis {
	case Horizontal:
		return vp.Width
	case Vertical:
		return vp.Height
	default:
		return vp.Diagonal()
	}
}

// Resolve converts val in the given unit to user-space px.
// Percentages resolve against the viewport extent for the axis.
func Resolve(val float32, un Units, axis Axis, vp Viewport) float32 {
	switch un {
	case UnitPercent:
		return val / 100 * vp.Extent(axis)
	case UnitPt:
		return val * (PxPerInch / PtPerInch)
	case UnitPc:
		return val * (PxPerInch / PcPerInch)
	case UnitMm:
		return val * (PxPerInch / MmPerInch)
	case UnitCm:
		return val * (PxPerInch / CmPerInch)
	case UnitIn:
		return val * PxPerInch
	}
	return val
}
