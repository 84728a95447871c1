// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gradient provides the SVG linear and radial gradient
// definitions, their href inheritance and coordinate resolution.
package gradient

import (
	"fmt"
	"slices"
	"strings"

	"cogentcore.org/svgir/colors"
	"cogentcore.org/svgir/math32"
	"cogentcore.org/svgir/units"
)

// Kinds are the gradient variants.
type Kinds int32

const (
	// Linear is a <linearGradient>.
	Linear Kinds = iota

	// Radial is a <radialGradient>.
	Radial
)

func (k Kinds) String() string {
	switch k {
	case Linear:
		return "linear"
	case Radial:
		return "radial"
	}
	return fmt.Sprintf("Kinds(%d)", int32(k))
}

// Spreads are the spread methods used when a gradient reaches
// its end but the object isn't yet fully filled.
type Spreads int32

const (
	// Pad indicates to have the final color of the gradient fill
	// the object beyond the end of the gradient.
	Pad Spreads = iota
	// Reflect indicates to have a gradient repeat in reverse order
	// (offset 1 to 0) to fully fill an object beyond the end of the gradient.
	Reflect
	// Repeat indicates to have a gradient continue in its original order
	// (offset 0 to 1) by jumping back to the start to fully fill an object beyond
	// the end of the gradient.
	Repeat
)

var spreadNames = [...]string{"pad", "reflect", "repeat"}

func (s Spreads) String() string {
	if s >= 0 && int(s) < len(spreadNames) {
		return spreadNames[s]
	}
	return fmt.Sprintf("Spreads(%d)", int32(s))
}

// SetString sets the spread from its SVG spreadMethod name.
func (s *Spreads) SetString(str string) error {
	i := slices.Index(spreadNames[:], strings.TrimSpace(str))
	if i < 0 {
		return fmt.Errorf("%q is not a valid spreadMethod", str)
	}
	*s = Spreads(i)
	return nil
}

// Units are the types of units used for gradient coordinate values
type Units int32

const (
	// ObjectBoundingBox indicates that coordinate values are scaled
	// relative to the size of the object and are specified in the
	// normalized range of 0 to 1.
	ObjectBoundingBox Units = iota
	// UserSpaceOnUse indicates that coordinate values are specified
	// in the current user coordinate system when the gradient is used.
	UserSpaceOnUse
)

var unitsNames = [...]string{"objectBoundingBox", "userSpaceOnUse"}

func (u Units) String() string {
	if u >= 0 && int(u) < len(unitsNames) {
		return unitsNames[u]
	}
	return fmt.Sprintf("Units(%d)", int32(u))
}

// SetString sets the units from its SVG gradientUnits name.
func (u *Units) SetString(str string) error {
	i := slices.Index(unitsNames[:], strings.TrimSpace(str))
	if i < 0 {
		return fmt.Errorf("%q is not a valid gradientUnits", str)
	}
	*u = Units(i)
	return nil
}

// Fields is a bit set naming the gradient attributes that have
// a value, either authored or inherited through href.
type Fields uint32

const (
	SpreadField Fields = 1 << iota
	UnitsField
	TransformField
	X1Field
	Y1Field
	X2Field
	Y2Field
	CXField
	CYField
	FXField
	FYField
	RField
)

// Has returns whether all of the given fields are set.
func (f Fields) Has(fl Fields) bool {
	return f&fl == fl
}

// Stop represents a single stop in a gradient
type Stop struct {

	// Offset is the position of the stop, nominally between 0 and 1.
	// It is kept as authored: clamping and ordering are up to the renderer.
	Offset float32

	// Color of the stop, with opacity specified separately, as is done in SVG.
	Color colors.RGB

	// Opacity is the 0-1 level of opacity for this stop
	Opacity float32
}

// NewStop returns a stop with the SVG defaults: black, fully opaque.
func NewStop() Stop {
	return Stop{Color: colors.Black, Opacity: 1}
}

// LinearCoords are the end points of a linear gradient vector.
type LinearCoords struct {
	X1, Y1, X2, Y2 units.Value
}

// RadialCoords are the center, focal point and radius of a radial gradient.
type RadialCoords struct {
	CX, CY, FX, FY, R units.Value
}

// Gradient is a <linearGradient> or <radialGradient> definition.
type Gradient struct {

	// Kind is linear or radial, selecting which of Linear or Radial applies.
	Kind Kinds

	// ID is the element id the gradient is referenced by.
	ID string

	// Href is the id of the gradient this one inherits unset values from.
	Href string

	// Spread is the spread method used beyond the end of the gradient.
	Spread Spreads

	// Units is the coordinate system of the geometry.
	Units Units

	// Transform is the gradientTransform.
	Transform math32.Matrix2

	// Linear holds the geometry of a linear gradient.
	Linear LinearCoords

	// Radial holds the geometry of a radial gradient.
	Radial RadialCoords

	// Stops in document order.
	Stops []Stop

	// Set records which attributes have a value.
	Set Fields
}

// New returns a new gradient of the given kind with default values.
func New(kind Kinds) *Gradient {
	return &Gradient{Kind: kind, Transform: math32.Identity2()}
}

// AddStop appends the given stop.
func (g *Gradient) AddStop(st Stop) *Gradient {
	g.Stops = append(g.Stops, st)
	return g
}

// CopyStopsFrom copies the stops from the given gradient, making a new slice.
func (g *Gradient) CopyStopsFrom(cp *Gradient) {
	g.Stops = slices.Clone(cp.Stops)
}

// UsesPercentage returns whether any coordinate of the active
// geometry is expressed as a percentage.
func (g *Gradient) UsesPercentage() bool {
	for _, v := range g.coords() {
		if v.value.IsPercent() {
			return true
		}
	}
	return false
}

type coord struct {
	field Fields
	value *units.Value
	axis  units.Axis
}

// coords returns the geometry fields of the active kind.
func (g *Gradient) coords() []coord {
	if g.Kind == Radial {
		r := &g.Radial
		return []coord{
			{CXField, &r.CX, units.Horizontal},
			{CYField, &r.CY, units.Vertical},
			{FXField, &r.FX, units.Horizontal},
			{FYField, &r.FY, units.Vertical},
			{RField, &r.R, units.Other},
		}
	}
	l := &g.Linear
	return []coord{
		{X1Field, &l.X1, units.Horizontal},
		{Y1Field, &l.Y1, units.Vertical},
		{X2Field, &l.X2, units.Horizontal},
		{Y2Field, &l.Y2, units.Vertical},
	}
}

// SetAttr sets the gradient attribute of the given name from its
// SVG string value. Unknown attributes are ignored. On error the
// attribute is left unset.
func (g *Gradient) SetAttr(name, value string) error {
	switch name {
	case "href", "xlink:href":
		g.Href = RefID(value)
		return nil
	case "spreadMethod":
		if err := g.Spread.SetString(value); err != nil {
			return err
		}
		g.Set |= SpreadField
	case "gradientUnits":
		if err := g.Units.SetString(value); err != nil {
			return err
		}
		g.Set |= UnitsField
	case "gradientTransform":
		if err := g.Transform.SetString(value); err != nil {
			return err
		}
		g.Set |= TransformField
	default:
		for _, c := range g.coords() {
			if coordName(c.field) != name {
				continue
			}
			v, err := units.Parse(value)
			if err != nil {
				return err
			}
			*c.value = v
			g.Set |= c.field
		}
	}
	return nil
}

func coordName(f Fields) string {
	switch f {
	case X1Field:
		return "x1"
	case Y1Field:
		return "y1"
	case X2Field:
		return "x2"
	case Y2Field:
		return "y2"
	case CXField:
		return "cx"
	case CYField:
		return "cy"
	case FXField:
		return "fx"
	case FYField:
		return "fy"
	case RField:
		return "r"
	}
	return ""
}

// RefID returns the id referenced by an href value such as "#id",
// or "" if the value is not a same-document reference.
func RefID(href string) string {
	id, ok := strings.CutPrefix(strings.TrimSpace(href), "#")
	if !ok {
		return ""
	}
	return id
}

// inherit fills the unset fields of g from the set fields of from.
// Geometry is only inherited between gradients of the same kind.
func (g *Gradient) inherit(from *Gradient) {
	if !g.Set.Has(SpreadField) && from.Set.Has(SpreadField) {
		g.Spread = from.Spread
		g.Set |= SpreadField
	}
	if !g.Set.Has(UnitsField) && from.Set.Has(UnitsField) {
		g.Units = from.Units
		g.Set |= UnitsField
	}
	if !g.Set.Has(TransformField) && from.Set.Has(TransformField) {
		g.Transform = from.Transform
		g.Set |= TransformField
	}
	if g.Kind == from.Kind {
		fc := from.coords()
		for i, c := range g.coords() {
			if !g.Set.Has(c.field) && from.Set.Has(c.field) {
				*c.value = *fc[i].value
				g.Set |= c.field
			}
		}
	}
	if len(g.Stops) == 0 && len(from.Stops) > 0 {
		g.CopyStopsFrom(from)
	}
}

// applyDefaults sets the SVG default geometry for unset fields,
// without marking them as set, so that gradients referring to this
// one still look further along their chain.
func (g *Gradient) applyDefaults() {
	if g.Kind == Radial {
		r := &g.Radial
		if !g.Set.Has(CXField) {
			r.CX = units.Pct(50)
		}
		if !g.Set.Has(CYField) {
			r.CY = units.Pct(50)
		}
		if !g.Set.Has(RField) {
			r.R = units.Pct(50)
		}
		if !g.Set.Has(FXField) {
			r.FX = r.CX
		}
		if !g.Set.Has(FYField) {
			r.FY = r.CY
		}
		return
	}
	l := &g.Linear
	if !g.Set.Has(X1Field) {
		l.X1 = units.Pct(0)
	}
	if !g.Set.Has(Y1Field) {
		l.Y1 = units.Pct(0)
	}
	if !g.Set.Has(X2Field) {
		l.X2 = units.Pct(100)
	}
	if !g.Set.Has(Y2Field) {
		l.Y2 = units.Pct(0)
	}
}

// ResolveCoords computes the Dots of the geometry. In
// [ObjectBoundingBox] units a percentage is a fraction of the box,
// and plain numbers are already fractions. In [UserSpaceOnUse]
// units percentages refer to the given viewport.
func (g *Gradient) ResolveCoords(vp units.Viewport) {
	for _, c := range g.coords() {
		v := c.value
		if g.Units == ObjectBoundingBox && v.IsPercent() {
			v.Dots = v.Val / 100
			continue
		}
		v.ToDots(c.axis, vp)
	}
}

// NormalizedStops returns a copy of the stops with offsets clamped
// to [0, 1] and made non-decreasing, and opacities clamped to [0, 1].
func (g *Gradient) NormalizedStops() []Stop {
	stops := slices.Clone(g.Stops)
	last := float32(0)
	for i := range stops {
		st := &stops[i]
		st.Offset = max(math32.Clamp(st.Offset, 0, 1), last)
		st.Opacity = math32.Clamp(st.Opacity, 0, 1)
		last = st.Offset
	}
	return stops
}
