// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

import (
	"cogentcore.org/svgir/math32"
)

// LocalBBox returns the bounding box of the geometry of a node in its
// own user space, without the stroke. It is false for nodes without
// geometry of their own, and for paths, whose data is not parsed.
func (d *Document) LocalBBox(id NodeID) (math32.Box2, bool) {
	n := d.Node(id)
	if n == nil {
		return math32.Box2{}, false
	}
	switch pd := n.Payload.(type) {
	case *RectData:
		return math32.B2(pd.X.Dots, pd.Y.Dots, pd.X.Dots+pd.Width.Dots, pd.Y.Dots+pd.Height.Dots), true
	case *ImageData:
		return math32.B2(pd.X.Dots, pd.Y.Dots, pd.X.Dots+pd.Width.Dots, pd.Y.Dots+pd.Height.Dots), true
	case *CircleData:
		cx, cy, r := pd.CX.Dots, pd.CY.Dots, pd.R.Dots
		return math32.B2(cx-r, cy-r, cx+r, cy+r), true
	case *EllipseData:
		cx, cy := pd.CX.Dots, pd.CY.Dots
		return math32.B2(cx-pd.RX.Dots, cy-pd.RY.Dots, cx+pd.RX.Dots, cy+pd.RY.Dots), true
	case *LineData:
		var b math32.Box2
		b.SetFromPoints([]math32.Vector2{math32.Vec2(pd.X1.Dots, pd.Y1.Dots), math32.Vec2(pd.X2.Dots, pd.Y2.Dots)})
		return b, true
	case *PolyData:
		if len(pd.Points) == 0 {
			return math32.Box2{}, false
		}
		var b math32.Box2
		b.SetFromPoints(pd.Points)
		return b, true
	}
	return math32.Box2{}, false
}

// BBox returns the bounding box of the displayed geometry in the subtree
// at id, in the root user space. Definitions below id are not included:
// defs, clip paths, masks, and symbols that are not drawn by a <use>.
// It uses the effective transforms, so it must be called after
// [Document.Cascade]. The box is empty if there is no geometry.
func (d *Document) BBox(id NodeID) math32.Box2 {
	bb := math32.B2Empty()
	d.WalkDown(id, func(cid NodeID, n *Node) bool {
		if n.Computed == nil || !n.Computed.Display {
			return Break
		}
		if cid != id && d.isDefinition(n) {
			return Break
		}
		if lb, ok := d.LocalBBox(cid); ok {
			tb := lb.MulMatrix2(n.Computed.Transform)
			bb.ExpandByPoint(tb.Min)
			bb.ExpandByPoint(tb.Max)
		}
		return Continue
	})
	return bb
}

// isDefinition returns whether the node is only drawn by reference.
func (d *Document) isDefinition(n *Node) bool {
	switch n.Type {
	case DefsType, ClipPathType, MaskType:
		return true
	case SymbolType:
		p := d.Node(n.Parent)
		return p == nil || p.Type != UseType
	}
	return false
}
