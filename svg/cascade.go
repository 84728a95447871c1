// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

import (
	"slices"

	"cogentcore.org/svgir/config"
	"cogentcore.org/svgir/math32"
	"cogentcore.org/svgir/styles"
	"cogentcore.org/svgir/units"
)

// resolveViewport sets the document viewport: the root viewBox size
// if there is one, and otherwise the root width and height. Percentages
// in the root size refer to the configured viewport.
func (d *Document) resolveViewport(cfg *config.Config) {
	outer := units.Viewport{Width: cfg.ViewportWidth, Height: cfg.ViewportHeight}
	d.Viewport = outer
	dd, ok := Data[*DocumentData](d.Node(d.Root()))
	if !ok {
		return
	}
	dd.resolve(outer)
	switch {
	case dd.ViewBox.IsSet():
		d.Viewport = units.Viewport{Width: dd.ViewBox.Size.X, Height: dd.ViewBox.Size.Y}
	case dd.Width.Dots > 0 && dd.Height.Dots > 0:
		d.Viewport = units.Viewport{Width: dd.Width.Dots, Height: dd.Height.Dots}
	}
}

// ResolveLengths computes the Dots of all payload lengths relative to
// the document Viewport. The root size is left as computed against the
// outer viewport.
func (d *Document) ResolveLengths() {
	d.WalkDown(d.Root(), func(id NodeID, n *Node) bool {
		if n.Type != DocumentType {
			n.Payload.resolve(d.Viewport)
		}
		return Continue
	})
}

// Cascade computes the effective style of every node in one pre-order
// pass: each node is computed once, from its own authored style and the
// finalized effective style of its parent. Hidden subtrees are computed
// too, with Display false.
func (d *Document) Cascade() {
	d.WalkDown(d.Root(), func(id NodeID, n *Node) bool {
		var parent *styles.Computed
		if p := d.Node(n.Parent); p != nil {
			parent = p.Computed
		}
		c := &styles.Computed{}
		c.Inherit(parent, &n.Style)
		if n.Type == UseType || n.Type == SymbolType {
			pt := math32.Identity2()
			if parent != nil {
				pt = parent.Transform
			}
			c.Transform = pt.Mul(d.LocalTransform(id))
		}
		c.Stroke.Width.ToDots(units.Other, d.Viewport)
		if len(c.Stroke.Dashes) > 0 {
			// the dashes are shared with the authoring node
			c.Stroke.Dashes = slices.Clone(c.Stroke.Dashes)
			for i := range c.Stroke.Dashes {
				c.Stroke.Dashes[i].ToDots(units.Other, d.Viewport)
			}
		}
		n.Computed = c
		return Continue
	})
}
