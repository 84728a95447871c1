// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"cogentcore.org/svgir/colors"
	"cogentcore.org/svgir/config"
	"cogentcore.org/svgir/styles"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// load reads the given SVG source with the default configuration.
func load(t *testing.T, src string) *Result {
	t.Helper()
	res, err := Read(strings.NewReader(src), nil)
	require.NoError(t, err)
	require.NotNil(t, res.Document)
	return res
}

// mustNode returns the node registered with the given id.
func mustNode(t *testing.T, d *Document, id string) *Node {
	t.Helper()
	n := d.LookupNode(id)
	require.NotNil(t, n, "no node with id %q", id)
	return n
}

// errorsOf returns the errors of type T.
func errorsOf[T error](errs []error) []T {
	var out []T
	for _, err := range errs {
		var te T
		if errors.As(err, &te) {
			out = append(out, te)
		}
	}
	return out
}

func TestLoadTree(t *testing.T) {
	res := load(t, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" xmlns:xlink="http://www.w3.org/1999/xlink" width="200" height="100">
  <g id="g1" fill="red">
    <rect id="r1" x="10" y="20" width="30" height="40" rx="5"/>
    <circle id="c1" cx="50%" cy="50%" r="10"/>
  </g>
  <path id="p1" d="M0 0 L10 10"/>
  <polygon id="pg" points="0,0 10,0 10,10"/>
  <foo id="f1"><line id="l1" x1="0" y1="0" x2="1in" y2="0"/></foo>
</svg>`)
	assert.True(t, res.OK)
	assert.Empty(t, res.Errors)

	d := res.Document
	root := d.Node(d.Root())
	require.NotNil(t, root)
	assert.Equal(t, DocumentType, root.Type)
	assert.Equal(t, NoNode, root.Parent)
	assert.Equal(t, float32(200), d.Viewport.Width)
	assert.Equal(t, float32(100), d.Viewport.Height)

	var kids []string
	for _, c := range root.Children {
		kids = append(kids, d.Node(c).ID)
	}
	assert.Equal(t, []string{"g1", "p1", "pg", "f1"}, kids)
	assert.Equal(t, []string{"g1", "r1", "c1", "p1", "pg", "f1", "l1"}, d.IDs())

	g1, _ := d.LookupID("g1")
	r1 := mustNode(t, d, "r1")
	assert.Equal(t, RectType, r1.Type)
	assert.Equal(t, g1, r1.Parent)
	rd, ok := Data[*RectData](r1)
	require.True(t, ok)
	assert.Equal(t, float32(30), rd.Width.Dots)
	assert.Equal(t, float32(5), rd.RX.Dots)
	assert.Equal(t, float32(5), rd.RY.Dots, "ry defaults to rx")

	_, ok = Data[*CircleData](r1)
	assert.False(t, ok)

	cd, ok := Data[*CircleData](mustNode(t, d, "c1"))
	require.True(t, ok)
	assert.Equal(t, float32(100), cd.CX.Dots)
	assert.Equal(t, float32(50), cd.CY.Dots)

	pd, ok := Data[*PathData](mustNode(t, d, "p1"))
	require.True(t, ok)
	assert.Equal(t, "M0 0 L10 10", pd.D)

	pg, ok := Data[*PolyData](mustNode(t, d, "pg"))
	require.True(t, ok)
	assert.Len(t, pg.Points, 3)
	assert.True(t, pg.Closed)

	f1 := mustNode(t, d, "f1")
	assert.Equal(t, UnknownType, f1.Type)
	ud, _ := Data[*UnknownData](f1)
	assert.Equal(t, "foo", ud.Tag)

	ld, ok := Data[*LineData](mustNode(t, d, "l1"))
	require.True(t, ok)
	assert.Equal(t, float32(96), ld.X2.Dots)
}

func TestNodeTypes(t *testing.T) {
	for nt := DocumentType; nt < NodeTypesN; nt++ {
		if nt == UnknownType {
			continue
		}
		got, ok := NodeTypeFromTag(nt.String())
		assert.True(t, ok, nt.String())
		assert.Equal(t, nt, got)
		assert.Equal(t, nt, NewPayload(nt).NodeType())
	}
	_, ok := NodeTypeFromTag("blink")
	assert.False(t, ok)
}

func TestDuplicateID(t *testing.T) {
	res := load(t, `<svg>
  <rect id="a" width="1" height="1"/>
  <circle id="a" r="2"/>
  <linearGradient id="a"><stop offset="0"/></linearGradient>
  <linearGradient id="lg"><stop offset="0"/></linearGradient>
  <ellipse id="lg" rx="1" ry="1"/>
</svg>`)
	assert.False(t, res.OK)
	dups := errorsOf[*DuplicateIDError](res.Errors)
	require.Len(t, dups, 3)
	assert.Equal(t, "a", dups[0].ID)
	assert.Equal(t, "circle", dups[0].Elem)
	assert.Equal(t, "linearGradient", dups[1].Elem)
	assert.Equal(t, "lg", dups[2].ID)

	d := res.Document
	assert.Equal(t, RectType, mustNode(t, d, "a").Type)
	assert.Nil(t, d.LookupNode("lg"))
	_, ok := d.Gradients.Get("lg")
	assert.True(t, ok)
	assert.Equal(t, 1, d.Gradients.Len())
}

func TestNoRoot(t *testing.T) {
	for _, src := range []string{"", "<html><body/></html>", "  \n"} {
		_, err := Read(strings.NewReader(src), nil)
		assert.ErrorIs(t, err, ErrNoRoot, "%q", src)
	}
}

func TestTooDeep(t *testing.T) {
	cfg := config.Default()
	cfg.MaxDepth = 3
	_, err := Read(strings.NewReader(`<svg><g><g><g/></g></g></svg>`), cfg)
	assert.ErrorIs(t, err, ErrTooDeep)

	cfg.MaxDepth = 4
	res, err := Read(strings.NewReader(`<svg><g><g><g/></g></g></svg>`), cfg)
	require.NoError(t, err)
	assert.Equal(t, 4, res.Document.Len())
}

func TestTooManyNodes(t *testing.T) {
	cfg := config.Default()
	cfg.MaxNodes = 3
	_, err := Read(strings.NewReader(`<svg><g/><g/><g/></svg>`), cfg)
	assert.ErrorIs(t, err, ErrTooManyNodes)

	// the clones count too
	cfg.MaxNodes = 5
	_, err = Read(strings.NewReader(`<svg><g id="a"><rect/><rect/></g><use href="#a"/></svg>`), cfg)
	assert.ErrorIs(t, err, ErrTooManyNodes)
}

func TestZeroConfig(t *testing.T) {
	res, err := Read(strings.NewReader(`<svg><g><rect id="r" width="50%"/></g></svg>`), &config.Config{})
	require.NoError(t, err)
	assert.True(t, res.OK, "%v", res.Errors)
	assert.Equal(t, 3, res.Document.Len())
	rd, _ := Data[*RectData](mustNode(t, res.Document, "r"))
	assert.Equal(t, float32(50), rd.Width.Dots)
}

func TestOutsideRoot(t *testing.T) {
	res := load(t, `<wrapper><rect id="before"/><svg><rect id="in"/></svg><rect id="after"/></wrapper>`)
	d := res.Document
	assert.Nil(t, d.LookupNode("before"))
	assert.Nil(t, d.LookupNode("after"))
	assert.NotNil(t, d.LookupNode("in"))
	assert.Equal(t, 2, d.Len())
}

func TestNestedSVG(t *testing.T) {
	res := load(t, `<svg><svg id="inner" fill="blue"><rect id="r"/></svg></svg>`)
	d := res.Document
	assert.Equal(t, GroupType, mustNode(t, d, "inner").Type)
	assert.Equal(t, "#0000ff", mustNode(t, d, "r").Computed.Fill.Paint.String())
}

func TestSkippedElements(t *testing.T) {
	res := load(t, `<svg>
  <style>rect { fill: red }</style>
  <title>x<rect id="hidden"/></title>
  <desc>about</desc>
  <rect id="r"/>
</svg>`)
	d := res.Document
	assert.Nil(t, d.LookupNode("hidden"))
	assert.Len(t, d.Node(d.Root()).Children, 1)
	assert.Equal(t, "#000000", mustNode(t, d, "r").Computed.Fill.Paint.String())
}

func TestDefsShared(t *testing.T) {
	res := load(t, `<svg>
  <defs><rect id="a"/></defs>
  <g id="g"/>
  <defs><rect id="b"/></defs>
</svg>`)
	d := res.Document
	a := mustNode(t, d, "a")
	b := mustNode(t, d, "b")
	assert.Equal(t, a.Parent, b.Parent)
	assert.Equal(t, DefsType, d.Node(a.Parent).Type)
	assert.Len(t, d.Node(d.Root()).Children, 2)
}

func TestDefsAttrs(t *testing.T) {
	res := load(t, `<svg>
  <defs id="d1" style="fill: red"><rect id="a"/></defs>
  <defs><rect id="b"/></defs>
  <defs id="d2" stroke="blue"><rect id="c"/></defs>
</svg>`)
	require.True(t, res.OK, "%v", res.Errors)
	d := res.Document
	d1, ok := d.LookupID("d1")
	require.True(t, ok)
	d2, ok := d.LookupID("d2")
	require.True(t, ok)
	assert.Equal(t, d1, d2)
	assert.Equal(t, DefsType, d.Node(d1).Type)
	assert.Equal(t, "d2", d.Node(d1).ID)

	for _, id := range []string{"a", "b", "c"} {
		c := mustNode(t, d, id).Computed
		assert.Equal(t, styles.Solid(colors.RGB{R: 255, G: 0, B: 0}), c.Fill.Paint, id)
		assert.Equal(t, styles.Solid(colors.RGB{R: 0, G: 0, B: 255}), c.Stroke.Paint, id)
	}
}

func TestText(t *testing.T) {
	res := load(t, `<svg><text id="t" x="5" y="10" font-family="Serif" font-size="20">
  Hello <tspan>big</tspan>
  world</text></svg>`)
	n := mustNode(t, res.Document, "t")
	assert.Empty(t, n.Children)
	td, ok := Data[*TextData](n)
	require.True(t, ok)
	assert.Equal(t, "Hello big world", td.Text)
	assert.Equal(t, "Serif", td.FontFamily)
	assert.Equal(t, float32(20), td.FontSize.Dots)
	assert.Equal(t, float32(5), td.X.Dots)
}

func TestParseErrors(t *testing.T) {
	res := load(t, `<svg>
  <rect id="r" width="abc" height="-5" fill="nocolor" style="stroke: blue; stroke-width: x"/>
</svg>`)
	assert.False(t, res.OK)
	perrs := errorsOf[*ParseError](res.Errors)
	require.Len(t, perrs, 4)
	var attrs []string
	for _, pe := range perrs {
		attrs = append(attrs, pe.Attr)
		assert.Equal(t, "rect", pe.Elem)
		assert.Equal(t, "r", pe.ID)
		assert.NotNil(t, pe.Err)
	}
	assert.ElementsMatch(t, []string{"width", "height", "fill", "style"}, attrs)

	n := mustNode(t, res.Document, "r")
	rd, _ := Data[*RectData](n)
	assert.Equal(t, float32(0), rd.Width.Dots)
	assert.Equal(t, float32(0), rd.Height.Dots)
	// the valid declarations still apply
	assert.Equal(t, "#0000ff", n.Computed.Stroke.Paint.String())
	assert.Equal(t, float32(1), n.Computed.Stroke.Width.Dots)
	assert.Equal(t, "#000000", n.Computed.Fill.Paint.String())
}

func TestStyleAttrWins(t *testing.T) {
	res := load(t, `<svg>
  <rect id="r" style="fill: blue; opacity: 0.5" fill="red" opacity="1"/>
  <circle id="c" style="r: 4" r="2"/>
</svg>`)
	d := res.Document
	r := mustNode(t, d, "r")
	assert.Equal(t, "#0000ff", r.Computed.Fill.Paint.String())
	assert.Equal(t, float32(0.5), r.Computed.Opacity)
	cd, _ := Data[*CircleData](mustNode(t, d, "c"))
	assert.Equal(t, float32(4), cd.R.Dots)
}

func TestWalkDown(t *testing.T) {
	res := load(t, `<svg id="root">
  <g id="a"><rect id="a1"/><rect id="a2"/></g>
  <g id="b"><rect id="b1"/></g>
  <rect id="c"/>
</svg>`)
	d := res.Document
	var order []string
	d.WalkDown(d.Root(), func(id NodeID, n *Node) bool {
		order = append(order, n.ID)
		return n.ID != "a"
	})
	assert.Equal(t, []string{"root", "a", "b", "b1", "c"}, order)

	a, _ := d.LookupID("a")
	a1, _ := d.LookupID("a1")
	b1, _ := d.LookupID("b1")
	assert.True(t, d.IsAncestor(a, a1))
	assert.True(t, d.IsAncestor(a, a))
	assert.False(t, d.IsAncestor(a, b1))
	assert.True(t, d.IsAncestor(d.Root(), b1))
}

func TestLoaderEvents(t *testing.T) {
	l := NewLoader(nil)
	require.NoError(t, l.StartElement("svg", nil))
	id := l.CreateNode(GroupType)
	l.CloseNode()
	l.EndElement("svg")
	d := l.Document()
	assert.Equal(t, d.Root(), d.Node(id).Parent)

	res, err := l.Finish()
	require.NoError(t, err)
	assert.True(t, res.OK)
	assert.Equal(t, 2, res.Document.Len())

	_, err = l.Finish()
	assert.Error(t, err)
}

func TestLoadContextCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := LoadContext(ctx, strings.NewReader(`<svg/>`), nil)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestOpen(t *testing.T) {
	dir := t.TempDir()
	fn := filepath.Join(dir, "test.svg")
	require.NoError(t, os.WriteFile(fn, []byte(`<svg width="10" height="20"><rect id="r"/></svg>`), 0666))
	res, err := Open(fn, nil)
	require.NoError(t, err)
	assert.Equal(t, float32(20), res.Document.Viewport.Height)

	_, err = Open(dir, nil)
	assert.Error(t, err)
	_, err = Open(filepath.Join(dir, "missing.svg"), nil)
	assert.Error(t, err)

	fsys := fstest.MapFS{"icons/a.svg": {Data: []byte(`<svg><circle id="c" r="1"/></svg>`)}}
	res, err = OpenFS(fsys, "icons/a.svg", nil)
	require.NoError(t, err)
	assert.NotNil(t, res.Document.LookupNode("c"))
}

func TestSnapshot(t *testing.T) {
	res := load(t, `<svg width="50" height="40">
  <linearGradient id="lg" x2="1"><stop offset="0" stop-color="red"/></linearGradient>
  <clipPath id="cp"><rect width="1" height="1"/></clipPath>
  <g id="g" fill="url(#lg)" transform="translate(1,2)" clip-path="url(#cp)">
    <rect id="r" stroke="blue" stroke-width="2" width="5" height="5"/>
  </g>
</svg>`)
	require.True(t, res.OK, "%v", res.Errors)
	s := res.Document.Snapshot()
	assert.Equal(t, float32(50), s.Width)
	assert.Equal(t, float32(40), s.Height)
	require.NotNil(t, s.Root)
	assert.Equal(t, "svg", s.Root.Type)

	g := s.Root.Children[1]
	assert.Equal(t, "g", g.ID)
	assert.Equal(t, "url(#lg)", g.Fill)
	assert.Equal(t, "none", g.Stroke)
	assert.Equal(t, "url(#cp) resolved", g.ClipPath)
	assert.NotEmpty(t, g.Transform)

	r := g.Children[0]
	assert.Equal(t, "#0000ff", r.Stroke)
	assert.Equal(t, float32(2), r.StrokeWidth)
	assert.Equal(t, float32(5), r.Attrs["width"])
	assert.Equal(t, []float32{1, 2, 6, 7}, r.BBox)

	require.Len(t, s.Gradients, 1)
	assert.Equal(t, "lg", s.Gradients[0].ID)
	assert.Equal(t, "linear", s.Gradients[0].Kind)
	assert.Len(t, s.Gradients[0].Stops, 1)
}
