// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

import (
	"fmt"

	"cogentcore.org/svgir/colors/gradient"
	"cogentcore.org/svgir/styles"
)

// Snapshot is a plain copy of a resolved document, for
// printing as YAML or JSON.
type Snapshot struct {
	Width     float32             `json:"width" yaml:"width"`
	Height    float32             `json:"height" yaml:"height"`
	Root      *NodeSnapshot       `json:"root" yaml:"root"`
	Gradients []*GradientSnapshot `json:"gradients,omitempty" yaml:"gradients,omitempty"`
}

// NodeSnapshot is a plain copy of a node and its effective style.
type NodeSnapshot struct {
	Type        string          `json:"type" yaml:"type"`
	ID          string          `json:"id,omitempty" yaml:"id,omitempty"`
	Hidden      bool            `json:"hidden,omitempty" yaml:"hidden,omitempty"`
	Fill        string          `json:"fill,omitempty" yaml:"fill,omitempty"`
	Stroke      string          `json:"stroke,omitempty" yaml:"stroke,omitempty"`
	StrokeWidth float32         `json:"strokeWidth,omitempty" yaml:"strokeWidth,omitempty"`
	Opacity     float32         `json:"opacity" yaml:"opacity"`
	Transform   string          `json:"transform,omitempty" yaml:"transform,omitempty"`
	BBox        []float32       `json:"bbox,omitempty" yaml:"bbox,flow,omitempty"`
	ClipPath    string          `json:"clipPath,omitempty" yaml:"clipPath,omitempty"`
	Mask        string          `json:"mask,omitempty" yaml:"mask,omitempty"`
	Attrs       map[string]any  `json:"attrs,omitempty" yaml:"attrs,omitempty"`
	Children    []*NodeSnapshot `json:"children,omitempty" yaml:"children,omitempty"`
}

// GradientSnapshot is a plain copy of a resolved gradient.
type GradientSnapshot struct {
	ID     string             `json:"id" yaml:"id"`
	Kind   string             `json:"kind" yaml:"kind"`
	Href   string             `json:"href,omitempty" yaml:"href,omitempty"`
	Spread string             `json:"spread" yaml:"spread"`
	Units  string             `json:"units" yaml:"units"`
	Coords map[string]float32 `json:"coords" yaml:"coords"`
	Stops  []string           `json:"stops,omitempty" yaml:"stops,omitempty"`
}

// Snapshot returns a plain copy of the document. It is meant for a
// resolved document; before the cascade, the style fields are empty.
func (d *Document) Snapshot() *Snapshot {
	s := &Snapshot{Width: d.Viewport.Width, Height: d.Viewport.Height}
	if d.Root() != NoNode {
		s.Root = d.snapshotNode(d.Root())
	}
	for _, g := range d.Gradients.All() {
		s.Gradients = append(s.Gradients, snapshotGradient(g))
	}
	return s
}

func (d *Document) snapshotNode(id NodeID) *NodeSnapshot {
	n := d.Node(id)
	ns := &NodeSnapshot{Type: n.Type.String(), ID: n.ID, Attrs: n.Payload.attrs()}
	if c := n.Computed; c != nil {
		ns.Hidden = !c.Display
		ns.Fill = paintString(c.Fill.Paint)
		ns.Stroke = paintString(c.Stroke.Paint)
		if !c.Stroke.Paint.IsNone() {
			ns.StrokeWidth = c.Stroke.Width.Dots
		}
		ns.Opacity = c.Opacity
		if !c.Transform.IsIdentity() {
			ns.Transform = c.Transform.String()
		}
		ns.ClipPath = compositeString(c.ClipPath)
		ns.Mask = compositeString(c.Mask)
		if lb, ok := d.LocalBBox(id); ok {
			b := lb.MulMatrix2(c.Transform)
			ns.BBox = []float32{b.Min.X, b.Min.Y, b.Max.X, b.Max.Y}
		}
	}
	for _, ch := range n.Children {
		ns.Children = append(ns.Children, d.snapshotNode(ch))
	}
	return ns
}

func paintString(p styles.Paint) string {
	if p.Kind == styles.PaintURL && p.Gradient == nil {
		return p.String() + " (unresolved)"
	}
	return p.String()
}

func compositeString(c *styles.Composite) string {
	if c == nil {
		return ""
	}
	return fmt.Sprintf("%s %s", c, c.State)
}

func snapshotGradient(g *gradient.Gradient) *GradientSnapshot {
	gs := &GradientSnapshot{ID: g.ID, Kind: g.Kind.String(), Href: g.Href,
		Spread: g.Spread.String(), Units: g.Units.String(), Coords: map[string]float32{}}
	if g.Kind == gradient.Radial {
		r := &g.Radial
		gs.Coords["cx"], gs.Coords["cy"], gs.Coords["fx"], gs.Coords["fy"], gs.Coords["r"] =
			r.CX.Dots, r.CY.Dots, r.FX.Dots, r.FY.Dots, r.R.Dots
	} else {
		l := &g.Linear
		gs.Coords["x1"], gs.Coords["y1"], gs.Coords["x2"], gs.Coords["y2"] =
			l.X1.Dots, l.Y1.Dots, l.X2.Dots, l.Y2.Dots
	}
	for _, st := range g.Stops {
		gs.Stops = append(gs.Stops, fmt.Sprintf("%g %s %g", st.Offset, st.Color, st.Opacity))
	}
	return gs
}
