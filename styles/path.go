// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package styles

import (
	"fmt"
	"slices"
	"strings"

	"cogentcore.org/svgir/units"
)

// FillRules are the rules for how to fill shapes with crossing lines:
// fill-rule property in SVG
type FillRules int32

const (
	FillRuleNonZero FillRules = iota
	FillRuleEvenOdd
)

var fillRuleNames = []string{"nonzero", "evenodd"}

func (fr FillRules) String() string { return enumString(fillRuleNames, int32(fr), "FillRules") }

// SetString sets the rule from its SVG name.
func (fr *FillRules) SetString(s string) error {
	return setEnum(fillRuleNames, s, "fill-rule", (*int32)(fr))
}

// LineCaps specifies end-cap of a line: stroke-linecap property in SVG
type LineCaps int32

const (
	// LineCapButt indicates to draw no line caps; it draws a
	// line with the length of the specified length.
	LineCapButt LineCaps = iota

	// LineCapRound indicates to draw a semicircle on each line
	// end with a diameter of the stroke width.
	LineCapRound

	// LineCapSquare indicates to draw a rectangle on each line end
	// with a height of the stroke width and a width of half of the
	// stroke width.
	LineCapSquare
)

var lineCapNames = []string{"butt", "round", "square"}

func (lc LineCaps) String() string { return enumString(lineCapNames, int32(lc), "LineCaps") }

// SetString sets the cap from its SVG name.
func (lc *LineCaps) SetString(s string) error {
	return setEnum(lineCapNames, s, "stroke-linecap", (*int32)(lc))
}

// LineJoins are the way in which lines are joined together:
// stroke-linejoin property in SVG
type LineJoins int32

const (
	LineJoinMiter LineJoins = iota
	LineJoinMiterClip
	LineJoinRound
	LineJoinBevel
	LineJoinArcs
)

var lineJoinNames = []string{"miter", "miter-clip", "round", "bevel", "arcs"}

func (lj LineJoins) String() string { return enumString(lineJoinNames, int32(lj), "LineJoins") }

// SetString sets the join from its SVG name.
func (lj *LineJoins) SetString(s string) error {
	return setEnum(lineJoinNames, s, "stroke-linejoin", (*int32)(lj))
}

func enumString(names []string, v int32, typ string) string {
	if v >= 0 && int(v) < len(names) {
		return names[v]
	}
	return fmt.Sprintf("%s(%d)", typ, v)
}

func setEnum(names []string, s, prop string, v *int32) error {
	i := slices.Index(names, strings.TrimSpace(s))
	if i < 0 {
		return fmt.Errorf("%q is not a valid %s", s, prop)
	}
	*v = int32(i)
	return nil
}

// Fill contains the effective properties for filling a region.
type Fill struct {

	// Paint is the fill paint; filling is off if it is none
	Paint Paint

	// global alpha opacity / transparency factor between 0 and 1
	Opacity float32

	// rule for how to fill more complex shapes with crossing lines
	Rule FillRules
}

// Defaults initializes default values for paint fill
func (pf *Fill) Defaults() {
	pf.Paint = Paint{Kind: PaintColor}
	pf.Rule = FillRuleNonZero
	pf.Opacity = 1.0
}

// Stroke contains the effective properties for painting a line.
type Stroke struct {

	// Paint is the stroke paint; stroking is off if it is none
	Paint Paint

	// global alpha opacity / transparency factor between 0 and 1
	Opacity float32

	// line width
	Width units.Value

	// Dashes are the dashes of the stroke. Each pair of values specifies
	// the amount to paint and then the amount to skip.
	Dashes []units.Value

	// how to draw the end cap of lines
	Cap LineCaps

	// how to join line segments
	Join LineJoins

	// limit of how far to miter: must be 1 or larger
	MiterLimit float32
}

// Defaults initializes default values for paint stroke
func (ss *Stroke) Defaults() {
	// stroking is off by default in svg
	ss.Paint = Paint{Kind: PaintNone}
	ss.Width = units.Px(1)
	ss.Dashes = nil
	ss.Cap = LineCapButt
	ss.Join = LineJoinMiter
	ss.MiterLimit = 4
	ss.Opacity = 1.0
}
