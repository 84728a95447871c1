// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

import (
	"slices"

	"cogentcore.org/svgir/base/errors"
	"cogentcore.org/svgir/math32"
	"github.com/jinzhu/copier"
)

// useStates are the states of a <use> during cloning.
type useStates int32

const (
	usePending useStates = iota
	useActive
	useDone
)

// cloneUses clones the content referenced by each <use> under it, in
// document order. A <use> inside the referenced content is cloned first,
// so that the clone includes its content. References to an ancestor and
// loops of <use> elements are circular and get no clone. The only
// error returned is the fatal [ErrTooManyNodes].
func (l *Loader) cloneUses() error {
	states := make(map[NodeID]useStates, len(l.uses))
	for _, u := range l.uses {
		if _, err := l.cloneUse(u, nil, states); err != nil {
			return err
		}
	}
	return nil
}

// cloneUse clones the content of the use node u. The chain has the hrefs
// followed to get to u. If u is part of a loop that is still open, the
// <use> the loop returns to is returned as loop, and u is not cloned.
func (l *Loader) cloneUse(u NodeID, chain []string, states map[NodeID]useStates) (loop NodeID, err error) {
	if states[u] != usePending {
		return NoNode, nil
	}
	d := l.doc
	n := d.Node(u)
	ud := n.Payload.(*UseData)
	if ud.Href == "" {
		states[u] = useDone
		return NoNode, nil
	}
	chain = append(slices.Clip(chain), ud.Href)
	target, ok := d.LookupID(ud.Href)
	if !ok {
		states[u] = useDone
		l.addError(&UnresolvedReferenceError{Kind: "use", From: n.ID, ID: ud.Href})
		return NoNode, nil
	}
	if d.IsAncestor(target, u) {
		states[u] = useDone
		l.addError(&CircularReferenceError{Kind: "use", Chain: append(slices.Clip(chain), ud.Href)})
		return NoNode, nil
	}

	states[u] = useActive
	loop = NoNode
	var nested []NodeID
	d.WalkDown(target, func(id NodeID, n *Node) bool {
		if n.Type == UseType {
			nested = append(nested, id)
		}
		return Continue
	})
	for _, v := range nested {
		vl := NoNode
		switch states[v] {
		case useActive:
			vl = v
			l.addError(&CircularReferenceError{Kind: "use", Chain: append(slices.Clip(chain), d.Node(v).Payload.(*UseData).Href)})
		case usePending:
			vl, err = l.cloneUse(v, chain, states)
			if err != nil {
				return NoNode, err
			}
		}
		if vl != NoNode && loop == NoNode {
			loop = vl
		}
	}
	states[u] = useDone
	if loop != NoNode {
		if loop == u {
			loop = NoNode
		}
		return loop, nil
	}
	if d.Len()+d.subtreeSize(target) > l.Config.MaxNodes {
		return NoNode, ErrTooManyNodes
	}
	d.cloneSubtree(target, u)
	return NoNode, nil
}

// subtreeSize returns the number of nodes in the subtree at id.
func (d *Document) subtreeSize(id NodeID) int {
	sz := 0
	d.WalkDown(id, func(NodeID, *Node) bool {
		sz++
		return Continue
	})
	return sz
}

// cloneSubtree adds a deep copy of the subtree at src as the last child
// of parent, returning the copy. Copies keep the ids of their originals,
// but are not registered.
func (d *Document) cloneSubtree(src, parent NodeID) NodeID {
	sn := d.nodes[src]
	id := d.NewNode(sn.Type, parent)
	nn := d.nodes[id]
	// Parent, Children and Payload are excluded by their copier tags
	errors.Log(copier.CopyWithOption(nn, sn, copier.Option{CaseSensitive: true, DeepCopy: true}))
	nn.Payload = sn.Payload.clone()
	for _, c := range slices.Clone(sn.Children) {
		d.cloneSubtree(c, id)
	}
	return id
}

// LocalTransform returns the transform from the user space of the node
// to that of its parent. It is the transform property, followed for a
// <use> by its x, y offset, and for a <symbol> cloned under a <use>
// by the mapping of its viewBox into the use viewport.
func (d *Document) LocalTransform(id NodeID) math32.Matrix2 {
	n := d.Node(id)
	m := n.Style.Transform.Or(math32.Identity2())
	switch pd := n.Payload.(type) {
	case *UseData:
		if pd.X.Dots != 0 || pd.Y.Dots != 0 {
			m = m.Mul(math32.Translate2D(pd.X.Dots, pd.Y.Dots))
		}
	case *SymbolData:
		if p := d.Node(n.Parent); p != nil {
			if ud, ok := p.Payload.(*UseData); ok {
				m = m.Mul(d.symbolTransform(pd, ud))
			}
		}
	}
	return m
}

// symbolTransform returns the viewBox transform of a symbol drawn by the
// given use. The use size wins over the symbol size, which wins over the
// document viewport.
func (d *Document) symbolTransform(sd *SymbolData, ud *UseData) math32.Matrix2 {
	w, h := d.Viewport.Width, d.Viewport.Height
	if sd.HasWidth {
		w = sd.Width.Dots
	}
	if sd.HasHeight {
		h = sd.Height.Dots
	}
	if ud.HasWidth {
		w = ud.Width.Dots
	}
	if ud.HasHeight {
		h = ud.Height.Dots
	}
	return sd.ViewBox.Transform(w, h)
}
