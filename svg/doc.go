// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package svg provides an intermediate representation of SVG documents:
the node tree built from the markup, with every style, paint, gradient,
clip path, mask and length resolved, ready for a renderer.

It does not render, and it does not parse path data, which is kept as
authored. CSS selectors in <style> elements are not applied; only
presentation attributes and style attributes are.

A [Loader] receives the elements in document order, through
[Loader.StartElement], [Loader.EndElement] and [Loader.CharData], and
builds the tree of [Node]s in a [Document], registering ids as it goes.
[Read] and [Open] drive a Loader from XML. Once the tree is built,
[Loader.Finish] resolves it in stages:

  - the content referenced by each <use> is cloned under it
  - the viewport is set from the root, and lengths are converted to px
  - [Document.Cascade] computes the effective style of every node
  - the gradient href chains are merged, and [Document.ResolvePaints]
    resolves the fill and stroke paints
  - [Document.ResolveComposites] resolves the clip-path and mask references

Problems in the document, like a malformed attribute or a reference to a
missing id, do not stop the load: a default or no-op is used, and the
error is recorded in the [Result].

[Document.BBox] gives the bounding box of a subtree in root user space,
and [Document.Snapshot] a plain tree for YAML or JSON output.
*/
package svg
