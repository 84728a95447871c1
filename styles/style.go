// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package styles provides the SVG style properties of a node: the
// authored values of each property category, and the effective values
// computed by cascading from the ancestors.
package styles

import (
	"cogentcore.org/svgir/colors"
	"cogentcore.org/svgir/math32"
	"cogentcore.org/svgir/units"
)

// Style holds the style properties authored on a node, from its
// presentation attributes and its style attribute. Each category is
// either authored (Set) or inherited from the nearest ancestor.
type Style struct {

	// Color is the color property, used by currentColor paints.
	Color Prop[colors.RGB]

	// Fill is the fill paint.
	Fill Prop[Paint]

	// FillRule is the rule for filling shapes with crossing lines.
	FillRule Prop[FillRules]

	// FillOpacity is the fill opacity in [0, 1].
	FillOpacity Prop[float32]

	// Opacity is the overall opacity in [0, 1].
	Opacity Prop[float32]

	// Stroke is the stroke paint.
	Stroke Prop[Paint]

	// StrokeWidth is the line width.
	StrokeWidth Prop[units.Value]

	// StrokeLineJoin is how line segments are joined.
	StrokeLineJoin Prop[LineJoins]

	// StrokeLineCap is how the ends of lines are drawn.
	StrokeLineCap Prop[LineCaps]

	// StrokeOpacity is the stroke opacity in [0, 1].
	StrokeOpacity Prop[float32]

	// StrokeDashArray is the dash pattern; an authored empty
	// pattern (none) means a solid line.
	StrokeDashArray Prop[[]units.Value]

	// StrokeMiterLimit is the miter limit, at least 1.
	StrokeMiterLimit Prop[float32]

	// Transform is the local transform of the node.
	Transform Prop[math32.Matrix2]

	// ClipPath is the clip-path reference; an authored nil
	// reference means clip-path: none.
	ClipPath Prop[*Composite]

	// Mask is the mask reference; an authored nil reference
	// means mask: none.
	Mask Prop[*Composite]

	// Display is false for display: none.
	Display Prop[bool]
}

// Computed holds the effective style of a node.
type Computed struct {

	// Color is the effective color property.
	Color colors.RGB

	// Fill has the fill paint, opacity and rule.
	Fill Fill

	// Stroke has the stroke paint and line properties.
	Stroke Stroke

	// Opacity is the overall opacity.
	Opacity float32

	// Transform is the full transform from the node to the
	// document: the parent's Transform times the local one.
	Transform math32.Matrix2

	// ClipPath is the clip-path in effect, or nil.
	ClipPath *Composite

	// Mask is the mask in effect, or nil.
	Mask *Composite

	// Display is false if the node or any ancestor is display: none.
	Display bool
}

// Defaults returns the effective style used for properties that are
// not authored anywhere up to the root: black fill, no stroke, full
// opacity, identity transform, no clip or mask, displayed.
func Defaults() *Computed {
	c := &Computed{}
	c.Defaults()
	return c
}

// Defaults initializes the built-in default values.
func (c *Computed) Defaults() {
	c.Color = colors.Black
	c.Fill.Defaults()
	c.Stroke.Defaults()
	c.Opacity = 1
	c.Transform = math32.Identity2()
	c.ClipPath = nil
	c.Mask = nil
	c.Display = true
}

// Inherit computes this effective style from the parent's finalized
// effective style and the node's own authored style: an authored value
// wins, and otherwise the parent's value is taken. A nil parent means
// the built-in defaults. The transform composes with the parent's, and
// display: none on any ancestor hides the node.
func (c *Computed) Inherit(parent *Computed, own *Style) {
	if parent == nil {
		parent = Defaults()
	}
	c.Color = own.Color.Or(parent.Color)

	c.Fill.Paint = own.Fill.Or(parent.Fill.Paint)
	c.Fill.Rule = own.FillRule.Or(parent.Fill.Rule)
	c.Fill.Opacity = own.FillOpacity.Or(parent.Fill.Opacity)
	c.Opacity = own.Opacity.Or(parent.Opacity)

	c.Stroke.Paint = own.Stroke.Or(parent.Stroke.Paint)
	c.Stroke.Width = own.StrokeWidth.Or(parent.Stroke.Width)
	c.Stroke.Join = own.StrokeLineJoin.Or(parent.Stroke.Join)
	c.Stroke.Cap = own.StrokeLineCap.Or(parent.Stroke.Cap)
	c.Stroke.Opacity = own.StrokeOpacity.Or(parent.Stroke.Opacity)
	c.Stroke.Dashes = own.StrokeDashArray.Or(parent.Stroke.Dashes)
	c.Stroke.MiterLimit = own.StrokeMiterLimit.Or(parent.Stroke.MiterLimit)

	c.Transform = parent.Transform
	if own.Transform.Set {
		c.Transform = parent.Transform.Mul(own.Transform.Val)
	}

	c.ClipPath = own.ClipPath.Or(parent.ClipPath)
	c.Mask = own.Mask.Or(parent.Mask)
	c.Display = parent.Display && own.Display.Or(true)
}
