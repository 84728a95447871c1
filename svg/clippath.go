// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

import (
	"cogentcore.org/svgir/styles"
)

// compositeFrame is a clip path or mask being applied: the
// target node, and the reference that led to it.
type compositeFrame struct {
	target NodeID
	comp   *styles.Composite
}

// compositeResolver resolves the clip-path and mask references
// of a document. Each resolution call gets the guard of the targets
// being applied along its path, so no state is left on the nodes.
type compositeResolver struct {
	doc  *Document
	errs []error
}

// ResolveComposites resolves every authored clip-path and mask reference
// to its target node. A target must exist and be a <clipPath> (or <mask>);
// otherwise the reference records an [UnresolvedReferenceError] and has no
// effect. The references within the target are resolved too, and a
// reference back to a target being applied records a
// [CircularReferenceError], with every reference on the cycle having no
// effect. Each reference is resolved once; nodes that inherit a reference
// share it and see its state.
func (d *Document) ResolveComposites() []error {
	r := &compositeResolver{doc: d}
	d.WalkDown(d.Root(), func(id NodeID, n *Node) bool {
		r.resolveNode(n, nil)
		return Continue
	})
	return r.errs
}

// resolveNode resolves the references authored on the node.
func (r *compositeResolver) resolveNode(n *Node, guard []compositeFrame) {
	if cp := n.Style.ClipPath; cp.Set && cp.Val != nil {
		r.resolve(n, "clip-path", ClipPathType, cp.Val, guard)
	}
	if mk := n.Style.Mask; mk.Set && mk.Val != nil {
		r.resolve(n, "mask", MaskType, mk.Val, guard)
	}
}

func (r *compositeResolver) resolve(from *Node, kind string, want NodeTypes, c *styles.Composite, guard []compositeFrame) {
	if c.State != styles.Unresolved {
		return
	}
	target, ok := r.doc.LookupID(c.URL)
	if !ok || r.doc.Node(target).Type != want {
		c.State = styles.NoOp
		r.errs = append(r.errs, &UnresolvedReferenceError{Kind: kind, From: from.ID, ID: c.URL})
		return
	}
	for i, f := range guard {
		if f.target != target {
			continue
		}
		chain := make([]string, 0, len(guard)-i+1)
		for _, g := range guard[i:] {
			chain = append(chain, r.doc.Node(g.target).ID)
		}
		chain = append(chain, c.URL)
		r.errs = append(r.errs, &CircularReferenceError{Kind: kind, Chain: chain})
		for _, g := range guard[i+1:] {
			g.comp.State = styles.NoOp
		}
		c.State = styles.NoOp
		return
	}

	guard = append(guard, compositeFrame{target: target, comp: c})
	r.doc.WalkDown(target, func(id NodeID, n *Node) bool {
		r.resolveNode(n, guard)
		return Continue
	})
	if c.State == styles.Unresolved {
		c.State = styles.Resolved
		c.Target = int(target)
	}
}
