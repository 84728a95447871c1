// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

import (
	"cogentcore.org/svgir/base/ordmap"
	"cogentcore.org/svgir/colors/gradient"
	"cogentcore.org/svgir/math32"
	"cogentcore.org/svgir/units"
)

const (
	// Continue = true can be returned from tree iteration functions to continue
	// processing down the tree, as compared to Break = false which stops this branch.
	Continue = true

	// Break = false can be returned from tree iteration functions to stop processing
	// this branch of the tree.
	Break = false
)

// Document is a loaded SVG document: the node tree, held in an arena
// indexed by [NodeID] with the root at 0, the document-wide id registry,
// and the gradient definitions.
type Document struct {

	// Gradients are the gradient definitions by id, in document order.
	Gradients gradient.Table

	// Viewport is the extent that percentage lengths refer to.
	Viewport units.Viewport

	nodes []*Node

	// ids maps element ids to nodes, in document order.
	// Gradient ids are in the same namespace.
	ids ordmap.Map[string, NodeID]
}

// NewDocument returns a new empty document.
func NewDocument() *Document {
	return &Document{Viewport: units.Viewport{Width: 100, Height: 100}}
}

// Root returns the root node, or [NoNode] for an empty document.
func (d *Document) Root() NodeID {
	if len(d.nodes) == 0 {
		return NoNode
	}
	return 0
}

// Len returns the number of nodes, including <use> clones.
func (d *Document) Len() int {
	return len(d.nodes)
}

// Node returns the node with the given handle, or nil if there is none.
func (d *Document) Node(id NodeID) *Node {
	if id < 0 || int(id) >= len(d.nodes) {
		return nil
	}
	return d.nodes[id]
}

// NewNode adds a node of the given type with its default payload as the
// last child of parent, which is [NoNode] only for the root.
func (d *Document) NewNode(nt NodeTypes, parent NodeID) NodeID {
	id := NodeID(len(d.nodes))
	d.nodes = append(d.nodes, &Node{Type: nt, Parent: parent, Payload: NewPayload(nt)})
	if p := d.Node(parent); p != nil {
		p.Children = append(p.Children, id)
	}
	return id
}

// RegisterID makes the node discoverable by the given id. The first
// element to register an id keeps it: a later registration returns a
// [*DuplicateIDError] and leaves the registry unchanged.
func (d *Document) RegisterID(id string, node NodeID) error {
	if id == "" {
		return nil
	}
	_, isGrad := d.Gradients.Get(id)
	if isGrad || !d.ids.AddNew(id, node) {
		return &DuplicateIDError{ID: id, Elem: d.Node(node).Type.String()}
	}
	return nil
}

// RegisterGradient adds the gradient to the gradient table under its id,
// which shares the namespace of the element ids.
func (d *Document) RegisterGradient(g *gradient.Gradient) error {
	if g.ID == "" {
		return nil
	}
	if d.ids.Has(g.ID) || !d.Gradients.Add(g) {
		return &DuplicateIDError{ID: g.ID, Elem: g.Kind.String() + "Gradient"}
	}
	return nil
}

// LookupID returns the node registered with the given id.
func (d *Document) LookupID(id string) (NodeID, bool) {
	return d.ids.ValueByKeyTry(id)
}

// LookupNode returns the node registered with the given id, or nil.
func (d *Document) LookupNode(id string) *Node {
	nid, ok := d.LookupID(id)
	if !ok {
		return nil
	}
	return d.Node(nid)
}

// IDs returns the registered ids in document order.
func (d *Document) IDs() []string {
	return d.ids.Keys()
}

// WalkDown calls fun on start and its descendants in depth-first
// pre-order, which is document order. If fun returns [Break] the
// children of that node are skipped.
func (d *Document) WalkDown(start NodeID, fun func(id NodeID, n *Node) bool) {
	if d.Node(start) == nil {
		return
	}
	stack := []NodeID{start}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		n := d.nodes[id]
		if !fun(id, n) {
			continue
		}
		for i := len(n.Children) - 1; i >= 0; i-- {
			stack = append(stack, n.Children[i])
		}
	}
}

// IsAncestor returns whether anc is node or one of its ancestors.
func (d *Document) IsAncestor(anc, node NodeID) bool {
	for cur := node; cur != NoNode; cur = d.nodes[cur].Parent {
		if cur == anc {
			return true
		}
	}
	return false
}

// ViewBoxTransform returns the transform from the root user space to
// the document viewport, given by the root viewBox and its
// preserveAspectRatio. It is the identity without a viewBox.
func (d *Document) ViewBoxTransform() math32.Matrix2 {
	root := d.Node(d.Root())
	if root == nil {
		return math32.Identity2()
	}
	dd, ok := Data[*DocumentData](root)
	if !ok {
		return math32.Identity2()
	}
	return dd.ViewBox.Transform(dd.Width.Dots, dd.Height.Dots)
}
