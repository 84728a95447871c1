// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

import (
	"testing"

	"cogentcore.org/svgir/styles"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComposites(t *testing.T) {
	res := load(t, `<svg>
  <defs>
    <clipPath id="A" clip-path="url(#B)"><rect width="1" height="1"/></clipPath>
    <clipPath id="B" clip-path="url(#A)"><rect width="1" height="1"/></clipPath>
    <clipPath id="C"><circle r="5"/></clipPath>
    <mask id="M"><rect width="1" height="1"/></mask>
  </defs>
  <g id="g" clip-path="url(#C)" mask="url(#M)"><rect id="r2" width="1" height="1"/></g>
  <rect id="r3" clip-path="url(#M)" mask="url(#nothere)" width="1" height="1"/>
</svg>`)
	d := res.Document

	a := mustNode(t, d, "A").Style.ClipPath.Val
	b := mustNode(t, d, "B").Style.ClipPath.Val
	assert.Equal(t, styles.NoOp, a.State)
	assert.Equal(t, styles.NoOp, b.State)

	circ := errorsOf[*CircularReferenceError](res.Errors)
	require.Len(t, circ, 1)
	assert.Equal(t, "clip-path", circ[0].Kind)
	assert.Equal(t, []string{"B", "A", "B"}, circ[0].Chain)

	g := mustNode(t, d, "g").Computed
	cid, _ := d.LookupID("C")
	mid, _ := d.LookupID("M")
	require.True(t, g.ClipPath.Active())
	assert.Equal(t, int(cid), g.ClipPath.Target)
	require.True(t, g.Mask.Active())
	assert.Equal(t, int(mid), g.Mask.Target)

	r2 := mustNode(t, d, "r2").Computed
	assert.Same(t, g.ClipPath, r2.ClipPath)
	assert.True(t, r2.Mask.Active())

	r3 := mustNode(t, d, "r3").Computed
	assert.Equal(t, styles.NoOp, r3.ClipPath.State)
	assert.False(t, r3.Mask.Active())

	unres := errorsOf[*UnresolvedReferenceError](res.Errors)
	require.Len(t, unres, 2)
	assert.Equal(t, "clip-path", unres[0].Kind)
	assert.Equal(t, "M", unres[0].ID)
	assert.Equal(t, "mask", unres[1].Kind)
	assert.Equal(t, "nothere", unres[1].ID)
	assert.Len(t, res.Errors, 3)

	// resolution is done once
	assert.Empty(t, d.ResolveComposites())
}

func TestCompositeThroughCycle(t *testing.T) {
	res := load(t, `<svg>
  <clipPath id="A" clip-path="url(#B)"><rect/></clipPath>
  <clipPath id="B" clip-path="url(#A)"><rect/></clipPath>
  <rect id="r" clip-path="url(#A)"/>
</svg>`)
	d := res.Document
	r := mustNode(t, d, "r").Computed
	aid, _ := d.LookupID("A")
	require.True(t, r.ClipPath.Active())
	assert.Equal(t, int(aid), r.ClipPath.Target)
	assert.Len(t, errorsOf[*CircularReferenceError](res.Errors), 1)
}

func TestCompositeSelf(t *testing.T) {
	res := load(t, `<svg>
  <clipPath id="X"><rect id="in" clip-path="url(#X)"/></clipPath>
  <mask id="Y" mask="url(#Y)"><rect/></mask>
  <rect id="r" clip-path="url(#X)" mask="url(#Y)"/>
</svg>`)
	d := res.Document
	circ := errorsOf[*CircularReferenceError](res.Errors)
	require.Len(t, circ, 2)
	assert.Equal(t, []string{"X", "X"}, circ[0].Chain)
	assert.Equal(t, "mask", circ[1].Kind)

	assert.Equal(t, styles.NoOp, mustNode(t, d, "in").Style.ClipPath.Val.State)
	r := mustNode(t, d, "r").Computed
	assert.True(t, r.ClipPath.Active())
	assert.True(t, r.Mask.Active())
}
