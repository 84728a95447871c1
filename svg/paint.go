// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

import (
	"cogentcore.org/svgir/colors"
	"cogentcore.org/svgir/styles"
)

// ResolvePaints turns the effective fill and stroke of every displayed
// node into a paint a renderer can use directly: currentColor becomes
// the effective color, and a url reference points to its gradient.
// It must run after [Document.Cascade] and the gradient resolution.
//
// A reference to a missing gradient falls back to the paint fallback,
// or none, and is reported once per id as an [UnresolvedReferenceError].
// A gradient without stops, including one emptied by a circular href,
// paints nothing.
func (d *Document) ResolvePaints() []error {
	var errs []error
	reported := map[string]bool{}
	d.WalkDown(d.Root(), func(id NodeID, n *Node) bool {
		c := n.Computed
		if c == nil {
			return Continue
		}
		if !c.Display {
			return Break
		}
		for _, pp := range []struct {
			kind  string
			paint *styles.Paint
		}{{"fill", &c.Fill.Paint}, {"stroke", &c.Stroke.Paint}} {
			url := pp.paint.URL
			if d.resolvePaint(pp.paint, c.Color) || reported[url] {
				continue
			}
			reported[url] = true
			errs = append(errs, &UnresolvedReferenceError{Kind: pp.kind, From: n.ID, ID: url})
		}
		return Continue
	})
	return errs
}

// resolvePaint resolves the paint in place given the effective color,
// returning false if it references a gradient that does not exist.
func (d *Document) resolvePaint(p *styles.Paint, color colors.RGB) bool {
	switch p.Kind {
	case styles.PaintCurrentColor:
		*p = styles.Solid(color)
	case styles.PaintURL:
		g, ok := d.Gradients.Get(p.URL)
		if ok {
			if len(g.Stops) == 0 {
				*p = styles.Paint{Kind: styles.PaintNone}
				return true
			}
			p.Gradient = g
			return true
		}
		switch p.Fallback {
		case styles.PaintColor:
			*p = styles.Solid(p.Color)
		case styles.PaintCurrentColor:
			*p = styles.Solid(color)
		default:
			*p = styles.Paint{Kind: styles.PaintNone}
		}
		return false
	}
	return true
}
