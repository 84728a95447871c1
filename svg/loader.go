// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

import (
	"context"
	"encoding/xml"
	"log/slog"
	"strings"

	"cogentcore.org/svgir/base/errors"
	"cogentcore.org/svgir/colors/gradient"
	"cogentcore.org/svgir/config"
	"cogentcore.org/svgir/styles"
)

// frameKinds are what an open element turned into.
type frameKinds int32

const (
	// frameIgnored is an element that made no node, such as a <tspan>
	// or <stop>, or anything outside the root.
	frameIgnored frameKinds = iota

	// frameNode is an element that pushed a node.
	frameNode

	// frameText is a <text>, which also pushed a node.
	frameText

	// frameGradient is a gradient definition.
	frameGradient

	// frameSkipped is an element whose content is skipped,
	// like <style> or <title>.
	frameSkipped

	// frameRoot is the root <svg>.
	frameRoot
)

// elements whose whole content is skipped
var skippedElements = map[string]bool{
	"style": true, "title": true, "desc": true, "metadata": true, "script": true,
}

// Loader builds a [Document] from element events, then resolves it in
// [Loader.Finish]. A Loader is used for one document, on one goroutine.
type Loader struct {

	// Config is the configuration of the load.
	Config *config.Config

	doc *Document

	// stack is the construction stack of open nodes.
	stack []NodeID

	// frames has one entry per open element.
	frames []frameKinds

	// defs is the single <defs> node, created on first use.
	defs NodeID

	// uses are the <use> nodes to clone, in document order.
	uses []NodeID

	// skipping is the depth of the outermost skipped element, or 0.
	skipping int

	rootClosed bool
	curGrad    *gradient.Gradient
	text       NodeID
	textBuf    strings.Builder

	ok    bool
	errs  []error
	fatal error
}

// NewLoader returns a new loader with the given configuration,
// or the default one if it is nil. Unset fields of cfg take their
// default values.
func NewLoader(cfg *config.Config) *Loader {
	if cfg == nil {
		cfg = config.Default()
	} else {
		cfg = cfg.WithDefaults()
	}
	return &Loader{Config: cfg, doc: NewDocument(), defs: NoNode, text: NoNode}
}

// Document returns the document under construction.
func (l *Loader) Document() *Document {
	return l.doc
}

// Errors returns the errors recorded so far.
func (l *Loader) Errors() []error {
	return l.errs
}

// CreateNode adds a node of the given type as the last child of the
// current node, and makes it the current node.
func (l *Loader) CreateNode(nt NodeTypes) NodeID {
	parent := NoNode
	if len(l.stack) > 0 {
		parent = l.stack[len(l.stack)-1]
	}
	id := l.doc.NewNode(nt, parent)
	l.stack = append(l.stack, id)
	return id
}

// CloseNode makes the parent of the current node the current node.
func (l *Loader) CloseNode() {
	if len(l.stack) > 0 {
		l.stack = l.stack[:len(l.stack)-1]
	}
}

// addError records a recoverable error.
func (l *Loader) addError(err error) {
	if err == nil {
		return
	}
	slog.Debug("svg: recoverable error", "err", err)
	l.errs = append(l.errs, err)
}

// attrError records a malformed attribute of the given node.
func (l *Loader) attrError(elem, id, attr, value string, err error) {
	if uw := errors.Unwrap(err); uw != nil {
		err = uw
	}
	l.addError(&ParseError{Elem: elem, ID: id, Attr: attr, Value: value, Err: err})
}

// StartElement processes the start of an element with the given
// local name. It only returns an error for fatal conditions, which
// end the load.
func (l *Loader) StartElement(name string, attrs []xml.Attr) error {
	if l.fatal != nil {
		return l.fatal
	}
	if len(l.frames) >= l.Config.MaxDepth {
		l.fatal = ErrTooDeep
		return l.fatal
	}
	if l.doc.Len() >= l.Config.MaxNodes {
		l.fatal = ErrTooManyNodes
		return l.fatal
	}
	l.frames = append(l.frames, l.startElement(name, attrs))
	return nil
}

func (l *Loader) startElement(name string, attrs []xml.Attr) frameKinds {
	switch {
	case l.skipping > 0:
		return frameIgnored
	case l.doc.Root() == NoNode:
		if name != "svg" {
			return frameIgnored
		}
		l.setAttrs(l.CreateNode(DocumentType), attrs)
		return frameRoot
	case l.rootClosed:
		return frameIgnored
	case skippedElements[name]:
		l.skipping = len(l.frames) + 1
		return frameSkipped
	case l.curGrad != nil:
		if name == "stop" {
			l.addStop(attrs)
		}
		return frameIgnored
	}

	switch name {
	case "svg":
		l.setAttrs(l.CreateNode(GroupType), attrs)
	case "defs":
		l.stack = append(l.stack, l.defsNode(attrs))
	case "linearGradient":
		l.startGradient(gradient.Linear, name, attrs)
		return frameGradient
	case "radialGradient":
		l.startGradient(gradient.Radial, name, attrs)
		return frameGradient
	case "text":
		l.text = l.CreateNode(TextType)
		l.textBuf.Reset()
		l.setAttrs(l.text, attrs)
		return frameText
	case "tspan":
		if l.text != NoNode {
			return frameIgnored
		}
		l.unknownNode(name, attrs)
	case "stop":
		slog.Debug("svg: ignoring <stop> outside of a gradient")
		return frameIgnored
	default:
		nt, ok := NodeTypeFromTag(name)
		if !ok || nt == DocumentType || nt == DefsType {
			l.unknownNode(name, attrs)
			break
		}
		id := l.CreateNode(nt)
		l.setAttrs(id, attrs)
		if nt == UseType {
			l.uses = append(l.uses, id)
		}
	}
	return frameNode
}

// EndElement processes the end of the current element.
func (l *Loader) EndElement(name string) {
	if l.fatal != nil || len(l.frames) == 0 {
		return
	}
	fk := l.frames[len(l.frames)-1]
	if l.skipping == len(l.frames) {
		l.skipping = 0
	}
	l.frames = l.frames[:len(l.frames)-1]
	switch fk {
	case frameNode:
		l.CloseNode()
	case frameRoot:
		l.CloseNode()
		l.rootClosed = true
	case frameText:
		if td, ok := Data[*TextData](l.doc.Node(l.text)); ok {
			td.Text = strings.Join(strings.Fields(l.textBuf.String()), " ")
		}
		l.text = NoNode
		l.CloseNode()
	case frameGradient:
		l.curGrad = nil
	}
}

// CharData processes character data, which is only kept within <text>.
func (l *Loader) CharData(data []byte) {
	if l.text != NoNode && l.skipping == 0 {
		l.textBuf.Write(data)
	}
}

// defsNode returns the <defs> node, creating it under the root if needed,
// and applies the attributes of a <defs> element to it. All <defs>
// elements share it, so later attributes override earlier ones, and the
// node can be looked up by the id of any of them.
func (l *Loader) defsNode(attrs []xml.Attr) NodeID {
	if l.defs == NoNode {
		l.defs = l.doc.NewNode(DefsType, l.doc.Root())
	}
	n := l.doc.Node(l.defs)
	prev := n.ID
	n.ID = ""
	l.setAttrs(l.defs, attrs)
	if n.ID == "" {
		n.ID = prev
	}
	return l.defs
}

func (l *Loader) unknownNode(name string, attrs []xml.Attr) {
	id := l.CreateNode(UnknownType)
	l.doc.Node(id).Payload.(*UnknownData).Tag = name
	l.setAttrs(id, attrs)
}

// setAttrs applies the attributes of an element to its node: the id,
// the presentation attributes, the element attributes, and last the
// style attribute, whose declarations win over the attributes.
func (l *Loader) setAttrs(id NodeID, attrs []xml.Attr) {
	n := l.doc.Node(id)
	elem := n.Type.String()
	if ud, ok := n.Payload.(*UnknownData); ok {
		elem = ud.Tag
	}
	style := ""
	for _, attr := range attrs {
		name := attr.Name.Local
		switch {
		case name == "id":
			n.ID = strings.TrimSpace(attr.Value)
		case name == "style":
			style = attr.Value
		case name == "class" || name == "xmlns" || attr.Name.Space == "xmlns":
		case styles.IsStyleProperty(name):
			if err := n.Style.SetProperty(name, attr.Value); err != nil {
				l.attrError(elem, n.ID, name, attr.Value, err)
			}
		default:
			ok, err := n.Payload.setAttr(name, attr.Value)
			if err != nil {
				l.attrError(elem, n.ID, name, attr.Value, err)
			} else if !ok {
				slog.Debug("svg: ignoring attribute", "elem", elem, "attr", name)
			}
		}
	}
	if style != "" {
		other, errs := n.Style.SetStyleAttr(style)
		for _, err := range errs {
			l.attrError(elem, n.ID, "style", style, err)
		}
		for _, d := range other {
			if _, err := n.Payload.setAttr(d.Property, d.Value); err != nil {
				l.attrError(elem, n.ID, d.Property, d.Value, err)
			}
		}
	}
	if n.Style.Transform.Set {
		m := n.Style.Transform.Val
		n.Transform = &m
	}
	l.addError(l.doc.RegisterID(n.ID, id))
}

// startGradient starts a gradient definition, whose <stop>
// children are added to it until it ends.
func (l *Loader) startGradient(kind gradient.Kinds, elem string, attrs []xml.Attr) {
	g := gradient.New(kind)
	for _, attr := range attrs {
		name := attr.Name.Local
		if name == "id" {
			g.ID = strings.TrimSpace(attr.Value)
			continue
		}
		if err := g.SetAttr(name, attr.Value); err != nil {
			l.attrError(elem, g.ID, name, attr.Value, err)
		}
	}
	l.addError(l.doc.RegisterGradient(g))
	l.curGrad = g
}

// addStop adds a <stop> to the current gradient. The style
// attribute wins over the stop attributes.
func (l *Loader) addStop(attrs []xml.Attr) {
	st := gradient.NewStop()
	style := ""
	for _, attr := range attrs {
		name := attr.Name.Local
		if name == "style" {
			style = attr.Value
			continue
		}
		if err := st.SetAttr(name, attr.Value); err != nil {
			l.attrError("stop", "", name, attr.Value, err)
		}
	}
	if style != "" {
		decls, err := styles.ParseStyleAttr(style)
		if err != nil {
			l.attrError("stop", "", "style", style, err)
		}
		for _, d := range decls {
			if err := st.SetAttr(d.Property, d.Value); err != nil {
				l.attrError("stop", "", d.Property, d.Value, err)
			}
		}
	}
	l.curGrad.AddStop(st)
}

// Finish resolves the document once all elements have been processed.
// See [Loader.FinishContext].
func (l *Loader) Finish() (*Result, error) {
	return l.FinishContext(context.Background())
}

// FinishContext resolves the document once all elements have been
// processed, in order: the <use> clones, the viewport and lengths, the
// style cascade, the gradients and paints, and the clip paths and masks.
// The context is checked between stages. Recoverable errors are
// returned in the [Result]; the error return is only for fatal ones.
// The loader cannot be used afterwards.
func (l *Loader) FinishContext(ctx context.Context) (*Result, error) {
	if l.fatal != nil {
		return nil, l.fatal
	}
	d := l.doc
	if d == nil {
		return nil, errors.New("svg: loader already finished")
	}
	if d.Root() == NoNode {
		return nil, ErrNoRoot
	}
	if err := l.cloneUses(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	d.resolveViewport(l.Config)
	d.ResolveLengths()
	d.Cascade()
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	for _, err := range d.Gradients.Resolve(l.Config.MaxHrefChain) {
		l.addError(err)
	}
	for _, g := range d.Gradients.All() {
		g.ResolveCoords(d.Viewport)
	}
	for _, err := range d.ResolvePaints() {
		l.addError(err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	for _, err := range d.ResolveComposites() {
		l.addError(err)
	}
	l.ok = len(l.errs) == 0
	res := &Result{Document: d, OK: l.ok, Errors: l.errs}
	l.doc = nil
	return res, nil
}

// Result is the outcome of a load.
type Result struct {

	// Document is the resolved document.
	Document *Document

	// OK is true if no errors were recorded.
	OK bool

	// Errors are the recoverable errors, in the order found. They are
	// of the types [*ParseError], [*DuplicateIDError],
	// [*UnresolvedReferenceError] and [*CircularReferenceError].
	Errors []error
}
