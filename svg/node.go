// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

import (
	"cogentcore.org/svgir/math32"
	"cogentcore.org/svgir/styles"
)

// NodeTypes are the kinds of SVG nodes.
type NodeTypes int32

const (
	// DocumentType is the root <svg> element.
	DocumentType NodeTypes = iota
	GroupType
	DefsType
	CircleType
	EllipseType
	RectType
	LineType
	PathType
	PolygonType
	PolylineType
	UseType
	ImageType
	TextType
	SymbolType
	ClipPathType
	MaskType

	// UnknownType is any element that is not otherwise supported.
	// It is kept in the tree so that its children are.
	UnknownType

	NodeTypesN
)

var nodeTypeNames = []string{"svg", "g", "defs", "circle", "ellipse", "rect", "line", "path",
	"polygon", "polyline", "use", "image", "text", "symbol", "clipPath", "mask", "unknown"}

// String returns the element name of the node type.
func (nt NodeTypes) String() string {
	if nt < 0 || nt >= NodeTypesN {
		return "unknown"
	}
	return nodeTypeNames[nt]
}

// NodeTypeFromTag returns the node type for the given element name,
// and false if it is not a supported element. The root <svg> is
// [DocumentType]; nested ones are handled by the [Loader].
func NodeTypeFromTag(tag string) (NodeTypes, bool) {
	for i, nm := range nodeTypeNames[:UnknownType] {
		if nm == tag {
			return NodeTypes(i), true
		}
	}
	return UnknownType, false
}

// NodeID is the handle of a node in its [Document].
type NodeID int

// NoNode is the NodeID of no node, the parent of the root.
const NoNode NodeID = -1

// Node is one element of the SVG tree. Nodes are owned by their [Document]
// and refer to each other by [NodeID], so that references by id, like
// those of clip paths, never own what they point to.
type Node struct {

	// Type is the node type; Payload always holds the matching data.
	Type NodeTypes

	// Parent is the parent node, or [NoNode] for the root.
	Parent NodeID `copier:"-"`

	// Children are the child nodes in document order, which is
	// also the paint order.
	Children []NodeID `copier:"-"`

	// ID is the id attribute. A node whose id was already taken
	// keeps it here, but cannot be found by it.
	ID string

	// Style is the style authored on the element.
	Style styles.Style

	// Computed is the effective style, set by [Document.Cascade].
	Computed *styles.Computed `copier:"-"`

	// Transform is the local transform, if the element has one.
	Transform *math32.Matrix2

	// Payload has the type-specific data.
	Payload Payload `copier:"-"`
}

// Visible returns whether the node is displayed: its effective display
// once the cascade has run, and its own display property before.
func (n *Node) Visible() bool {
	if n.Computed != nil {
		return n.Computed.Display
	}
	return n.Style.Display.Or(true)
}

// Data returns the payload of the node as the given type, and false
// if the node is of another type.
func Data[T Payload](n *Node) (T, bool) {
	d, ok := n.Payload.(T)
	return d, ok
}
