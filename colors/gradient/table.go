// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gradient

import (
	"fmt"
	"iter"

	"cogentcore.org/svgir/base/errors"
	"cogentcore.org/svgir/base/ordmap"
)

// Table is the document-wide table of gradients by id,
// in document order.
type Table struct {
	grads ordmap.Map[string, *Gradient]
}

// Add adds the gradient under its id, returning false if
// the id is already taken, in which case the first one is kept.
func (t *Table) Add(g *Gradient) bool {
	return t.grads.AddNew(g.ID, g)
}

// Get returns the gradient with the given id.
func (t *Table) Get(id string) (*Gradient, bool) {
	return t.grads.ValueByKeyTry(id)
}

// Len returns the number of gradients.
func (t *Table) Len() int {
	return t.grads.Len()
}

// All iterates over the gradients in document order.
func (t *Table) All() iter.Seq2[string, *Gradient] {
	return t.grads.All()
}

// Resolve merges every gradient with its href chain, filling each unset
// field from the first gradient along the chain that sets it, and taking
// the first non-empty stop list. Then the default geometry is applied.
//
// A chain that repeats an id yields a [CircularReferenceError] and the
// gradient is left without stops. A chain that names a missing id
// yields an [UnresolvedReferenceError] and the gradient keeps what was
// gathered before it. A chain longer than maxChain is cut there.
func (t *Table) Resolve(maxChain int) []error {
	var errs []error
	for _, g := range t.All() {
		if err := t.resolveChain(g, maxChain); err != nil {
			errs = append(errs, err)
		}
	}
	for _, g := range t.All() {
		g.applyDefaults()
	}
	return errs
}

func (t *Table) resolveChain(g *Gradient, maxChain int) error {
	if g.Href == "" {
		return nil
	}
	visited := map[string]bool{g.ID: true}
	chain := []string{g.ID}
	cur := g
	for cur.Href != "" {
		href := cur.Href
		chain = append(chain, href)
		if visited[href] {
			g.Stops = nil
			return &CircularReferenceError{Kind: "href", Chain: chain}
		}
		if maxChain > 0 && len(chain) > maxChain+1 {
			errors.Warn(fmt.Errorf("gradient %q: href chain cut at %d links", g.ID, maxChain))
			return nil
		}
		next, ok := t.Get(href)
		if !ok {
			return &UnresolvedReferenceError{Kind: "href", From: cur.ID, ID: href}
		}
		visited[href] = true
		g.inherit(next)
		cur = next
	}
	return nil
}
