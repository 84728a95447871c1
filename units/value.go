// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package units

import (
	"fmt"
	"strconv"
	"strings"

	"cogentcore.org/svgir/base/numparse"
	"cogentcore.org/svgir/math32"
)

// Value and units, and converted value into user-space px (Dots).
// The zero value is 0px.
type Value struct {

	// Val is the value in terms of the units given
	Val float32

	// Un is the unit for the value
	Un Units

	// Dots is the computed value in px, set by ToDots
	Dots float32
}

// New creates a new value with given units
func New(val float32, un Units) Value {
	return Value{Val: val, Un: un}
}

// Px returns a new px value.
func Px(val float32) Value {
	return Value{Val: val, Un: UnitPx}
}

// Pct returns a new percent value.
func Pct(val float32) Value {
	return Value{Val: val, Un: UnitPercent}
}

// Pt returns a new pt value.
func Pt(val float32) Value {
	return Value{Val: val, Un: UnitPt}
}

// In returns a new in value.
func In(val float32) Value {
	return Value{Val: val, Un: UnitIn}
}

// Set sets the value and units of an existing value
func (v *Value) Set(val float32, un Units) {
	v.Val = val
	v.Un = un
}

// IsPercent returns whether the value is a percentage.
func (v Value) IsPercent() bool {
	return v.Un == UnitPercent
}

// ToDots converts the value into user-space px, given the axis and
// viewport for percentages. It stores the result in Dots and returns it.
func (v *Value) ToDots(axis Axis, vp Viewport) float32 {
	v.Dots = Resolve(v.Val, v.Un, axis, vp)
	return v.Dots
}

// String returns the value in SVG syntax, such as "12px" or "50%".
func (v Value) String() string {
	return strconv.FormatFloat(float64(v.Val), 'g', -1, 32) + v.Un.String()
}

// SetString parses the given string into the value, leaving it
// unchanged on error.
func (v *Value) SetString(str string) error {
	pv, err := Parse(str)
	if err != nil {
		return err
	}
	*v = pv
	return nil
}

// ParseError records a malformed length: a missing or invalid number,
// or an unrecognized unit suffix.
type ParseError struct {
	// Value is the text that failed to parse.
	Value string

	// Msg says what was wrong with it.
	Msg string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("units: %s in %q", e.Msg, e.Value)
}

// Parse parses a length such as "10", "2.5mm" or "50%". A unitless
// number is in px. Surrounding whitespace is ignored; unit suffixes
// are case-insensitive.
func Parse(str string) (Value, error) {
	s := strings.TrimSpace(str)
	val, n := numparse.Float32(s)
	if n == 0 {
		return Value{}, &ParseError{Value: str, Msg: "invalid number"}
	}
	if !math32.IsFinite(val) {
		return Value{}, &ParseError{Value: str, Msg: "non-finite number"}
	}
	var un Units
	if err := un.SetString(s[n:]); err != nil {
		return Value{}, &ParseError{Value: str, Msg: "unknown unit " + strconv.Quote(strings.TrimSpace(s[n:]))}
	}
	return Value{Val: val, Un: un}, nil
}
