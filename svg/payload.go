// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

import (
	"fmt"
	"slices"
	"strings"

	"cogentcore.org/svgir/base/numparse"
	"cogentcore.org/svgir/colors/gradient"
	"cogentcore.org/svgir/math32"
	"cogentcore.org/svgir/units"
)

// Payload is the type-specific data of a [Node]. The set of payloads
// is closed: each [NodeTypes] value has exactly one payload type.
type Payload interface {

	// NodeType returns the node type this payload belongs to.
	NodeType() NodeTypes

	// setAttr sets the element attribute of the given name,
	// returning false if it is not an attribute of the element.
	setAttr(name, value string) (bool, error)

	// resolve computes the Dots of all lengths.
	resolve(vp units.Viewport)

	// clone returns a deep copy.
	clone() Payload

	// attrs returns the resolved values, for snapshots.
	attrs() map[string]any
}

// NewPayload returns the default payload for the given node type.
func NewPayload(nt NodeTypes) Payload {
	switch nt {
	case DocumentType:
		return &DocumentData{Width: units.Pct(100), Height: units.Pct(100)}
	case GroupType:
		return &GroupData{}
	case DefsType:
		return &DefsData{}
	case CircleType:
		return &CircleData{}
	case EllipseType:
		return &EllipseData{}
	case RectType:
		return &RectData{}
	case LineType:
		return &LineData{}
	case PathType:
		return &PathData{}
	case PolygonType:
		return &PolyData{Closed: true}
	case PolylineType:
		return &PolyData{}
	case UseType:
		return &UseData{}
	case ImageType:
		return &ImageData{}
	case TextType:
		return &TextData{FontSize: units.Px(16)}
	case SymbolType:
		return &SymbolData{}
	case ClipPathType:
		return &ClipPathData{Units: gradient.UserSpaceOnUse}
	case MaskType:
		return &MaskData{Units: gradient.ObjectBoundingBox, ContentUnits: gradient.UserSpaceOnUse}
	}
	return &UnknownData{}
}

// DocumentData is the payload of the root <svg> element.
type DocumentData struct {

	// Width is the width of the document viewport, 100% by default.
	Width units.Value

	// Height is the height of the document viewport, 100% by default.
	Height units.Value

	// ViewBox is the user coordinate system.
	ViewBox ViewBox
}

func (d *DocumentData) NodeType() NodeTypes { return DocumentType }

func (d *DocumentData) setAttr(name, value string) (bool, error) {
	switch name {
	case "width":
		return true, setLength(&d.Width, value, true)
	case "height":
		return true, setLength(&d.Height, value, true)
	case "viewBox":
		return true, d.ViewBox.SetString(value)
	case "preserveAspectRatio":
		return true, d.ViewBox.PreserveAspectRatio.SetString(value)
	}
	return false, nil
}

func (d *DocumentData) resolve(vp units.Viewport) {
	d.Width.ToDots(units.Horizontal, vp)
	d.Height.ToDots(units.Vertical, vp)
}

func (d *DocumentData) clone() Payload { c := *d; return &c }

func (d *DocumentData) attrs() map[string]any {
	m := map[string]any{"width": d.Width.Dots, "height": d.Height.Dots}
	if d.ViewBox.IsSet() {
		m["viewBox"] = d.ViewBox.String()
	}
	return m
}

// GroupData is the payload of a <g>, and of a nested <svg>.
type GroupData struct{}

func (d *GroupData) NodeType() NodeTypes                      { return GroupType }
func (d *GroupData) setAttr(name, value string) (bool, error) { return false, nil }
func (d *GroupData) resolve(vp units.Viewport)                {}
func (d *GroupData) clone() Payload                           { return &GroupData{} }
func (d *GroupData) attrs() map[string]any                    { return nil }

// DefsData is the payload of the <defs> container.
type DefsData struct{}

func (d *DefsData) NodeType() NodeTypes                      { return DefsType }
func (d *DefsData) setAttr(name, value string) (bool, error) { return false, nil }
func (d *DefsData) resolve(vp units.Viewport)                {}
func (d *DefsData) clone() Payload                           { return &DefsData{} }
func (d *DefsData) attrs() map[string]any                    { return nil }

// CircleData is the payload of a <circle>.
type CircleData struct {
	CX, CY, R units.Value
}

func (d *CircleData) NodeType() NodeTypes { return CircleType }

func (d *CircleData) setAttr(name, value string) (bool, error) {
	switch name {
	case "cx":
		return true, setLength(&d.CX, value, false)
	case "cy":
		return true, setLength(&d.CY, value, false)
	case "r":
		return true, setLength(&d.R, value, true)
	}
	return false, nil
}

func (d *CircleData) resolve(vp units.Viewport) {
	d.CX.ToDots(units.Horizontal, vp)
	d.CY.ToDots(units.Vertical, vp)
	d.R.ToDots(units.Other, vp)
}

func (d *CircleData) clone() Payload { c := *d; return &c }

func (d *CircleData) attrs() map[string]any {
	return map[string]any{"cx": d.CX.Dots, "cy": d.CY.Dots, "r": d.R.Dots}
}

// EllipseData is the payload of an <ellipse>.
type EllipseData struct {
	CX, CY, RX, RY units.Value
}

func (d *EllipseData) NodeType() NodeTypes { return EllipseType }

func (d *EllipseData) setAttr(name, value string) (bool, error) {
	switch name {
	case "cx":
		return true, setLength(&d.CX, value, false)
	case "cy":
		return true, setLength(&d.CY, value, false)
	case "rx":
		return true, setLength(&d.RX, value, true)
	case "ry":
		return true, setLength(&d.RY, value, true)
	}
	return false, nil
}

func (d *EllipseData) resolve(vp units.Viewport) {
	d.CX.ToDots(units.Horizontal, vp)
	d.CY.ToDots(units.Vertical, vp)
	d.RX.ToDots(units.Horizontal, vp)
	d.RY.ToDots(units.Vertical, vp)
}

func (d *EllipseData) clone() Payload { c := *d; return &c }

func (d *EllipseData) attrs() map[string]any {
	return map[string]any{"cx": d.CX.Dots, "cy": d.CY.Dots, "rx": d.RX.Dots, "ry": d.RY.Dots}
}

// RectData is the payload of a <rect>. HasRX and HasRY record which
// corner radii were given: a missing one takes the value of the other.
type RectData struct {
	X, Y, Width, Height units.Value
	RX, RY              units.Value
	HasRX, HasRY        bool
}

func (d *RectData) NodeType() NodeTypes { return RectType }

func (d *RectData) setAttr(name, value string) (bool, error) {
	switch name {
	case "x":
		return true, setLength(&d.X, value, false)
	case "y":
		return true, setLength(&d.Y, value, false)
	case "width":
		return true, setLength(&d.Width, value, true)
	case "height":
		return true, setLength(&d.Height, value, true)
	case "rx":
		err := setLength(&d.RX, value, true)
		d.HasRX = err == nil
		return true, err
	case "ry":
		err := setLength(&d.RY, value, true)
		d.HasRY = err == nil
		return true, err
	}
	return false, nil
}

// resolve computes the lengths, applying the corner radius rules:
// a missing radius takes the other one, and each is at most half
// of the corresponding side.
func (d *RectData) resolve(vp units.Viewport) {
	d.X.ToDots(units.Horizontal, vp)
	d.Y.ToDots(units.Vertical, vp)
	d.Width.ToDots(units.Horizontal, vp)
	d.Height.ToDots(units.Vertical, vp)
	d.RX.ToDots(units.Horizontal, vp)
	d.RY.ToDots(units.Vertical, vp)
	switch {
	case d.HasRX && !d.HasRY:
		d.RY.Dots = d.RX.Dots
	case d.HasRY && !d.HasRX:
		d.RX.Dots = d.RY.Dots
	}
	d.RX.Dots = min(d.RX.Dots, d.Width.Dots/2)
	d.RY.Dots = min(d.RY.Dots, d.Height.Dots/2)
}

func (d *RectData) clone() Payload { c := *d; return &c }

func (d *RectData) attrs() map[string]any {
	return map[string]any{"x": d.X.Dots, "y": d.Y.Dots, "width": d.Width.Dots, "height": d.Height.Dots,
		"rx": d.RX.Dots, "ry": d.RY.Dots}
}

// LineData is the payload of a <line>.
type LineData struct {
	X1, Y1, X2, Y2 units.Value
}

func (d *LineData) NodeType() NodeTypes { return LineType }

func (d *LineData) setAttr(name, value string) (bool, error) {
	switch name {
	case "x1":
		return true, setLength(&d.X1, value, false)
	case "y1":
		return true, setLength(&d.Y1, value, false)
	case "x2":
		return true, setLength(&d.X2, value, false)
	case "y2":
		return true, setLength(&d.Y2, value, false)
	}
	return false, nil
}

func (d *LineData) resolve(vp units.Viewport) {
	d.X1.ToDots(units.Horizontal, vp)
	d.Y1.ToDots(units.Vertical, vp)
	d.X2.ToDots(units.Horizontal, vp)
	d.Y2.ToDots(units.Vertical, vp)
}

func (d *LineData) clone() Payload { c := *d; return &c }

func (d *LineData) attrs() map[string]any {
	return map[string]any{"x1": d.X1.Dots, "y1": d.Y1.Dots, "x2": d.X2.Dots, "y2": d.Y2.Dots}
}

// PathData is the payload of a <path>. The path data is kept as
// authored, for the renderer to parse.
type PathData struct {
	D string
}

func (d *PathData) NodeType() NodeTypes { return PathType }

func (d *PathData) setAttr(name, value string) (bool, error) {
	if name != "d" {
		return false, nil
	}
	d.D = value
	return true, nil
}

func (d *PathData) resolve(vp units.Viewport) {}
func (d *PathData) clone() Payload            { c := *d; return &c }
func (d *PathData) attrs() map[string]any     { return map[string]any{"d": d.D} }

// PolyData is the payload of a <polygon> (Closed) or a <polyline>.
type PolyData struct {
	Points []math32.Vector2
	Closed bool
}

func (d *PolyData) NodeType() NodeTypes {
	if d.Closed {
		return PolygonType
	}
	return PolylineType
}

// setAttr reads the points. As for rendering, the points read
// before an error are kept.
func (d *PolyData) setAttr(name, value string) (bool, error) {
	if name != "points" {
		return false, nil
	}
	pts, ok := numparse.Floats(value)
	d.Points = make([]math32.Vector2, len(pts)/2)
	for i := range d.Points {
		d.Points[i].Set(pts[2*i], pts[2*i+1])
	}
	switch {
	case !ok:
		return true, fmt.Errorf("invalid number after %d values", len(pts))
	case len(pts)%2 != 0:
		return true, fmt.Errorf("odd number of coordinates: %d", len(pts))
	}
	return true, nil
}

func (d *PolyData) resolve(vp units.Viewport) {}

func (d *PolyData) clone() Payload {
	c := *d
	c.Points = slices.Clone(d.Points)
	return &c
}

func (d *PolyData) attrs() map[string]any {
	pts := make([]string, len(d.Points))
	for i, p := range d.Points {
		pts[i] = fmt.Sprintf("%g,%g", p.X, p.Y)
	}
	return map[string]any{"points": strings.Join(pts, " ")}
}

// UseData is the payload of a <use>. The referenced content is
// cloned under the node once the document is built.
type UseData struct {

	// Href is the id of the referenced element.
	Href string

	X, Y, Width, Height units.Value

	// HasWidth and HasHeight record whether the size was given,
	// which overrides the size of a referenced <symbol>.
	HasWidth, HasHeight bool
}

func (d *UseData) NodeType() NodeTypes { return UseType }

func (d *UseData) setAttr(name, value string) (bool, error) {
	switch name {
	case "href":
		id, err := hrefID(value)
		d.Href = id
		return true, err
	case "x":
		return true, setLength(&d.X, value, false)
	case "y":
		return true, setLength(&d.Y, value, false)
	case "width":
		err := setLength(&d.Width, value, true)
		d.HasWidth = err == nil
		return true, err
	case "height":
		err := setLength(&d.Height, value, true)
		d.HasHeight = err == nil
		return true, err
	}
	return false, nil
}

func (d *UseData) resolve(vp units.Viewport) {
	d.X.ToDots(units.Horizontal, vp)
	d.Y.ToDots(units.Vertical, vp)
	d.Width.ToDots(units.Horizontal, vp)
	d.Height.ToDots(units.Vertical, vp)
}

func (d *UseData) clone() Payload { c := *d; return &c }

func (d *UseData) attrs() map[string]any {
	m := map[string]any{"href": d.Href, "x": d.X.Dots, "y": d.Y.Dots}
	if d.HasWidth {
		m["width"] = d.Width.Dots
	}
	if d.HasHeight {
		m["height"] = d.Height.Dots
	}
	return m
}

// ImageData is the payload of an <image>. Data URIs are decoded
// into Data, with the MimeType they declare or, failing that, the
// one detected from the content. Other references are kept in Href.
type ImageData struct {
	Href                string
	X, Y, Width, Height units.Value
	MimeType            string
	Data                []byte
}

func (d *ImageData) NodeType() NodeTypes { return ImageType }

func (d *ImageData) setAttr(name, value string) (bool, error) {
	switch name {
	case "href":
		return true, d.SetHref(value)
	case "x":
		return true, setLength(&d.X, value, false)
	case "y":
		return true, setLength(&d.Y, value, false)
	case "width":
		return true, setLength(&d.Width, value, true)
	case "height":
		return true, setLength(&d.Height, value, true)
	}
	return false, nil
}

func (d *ImageData) resolve(vp units.Viewport) {
	d.X.ToDots(units.Horizontal, vp)
	d.Y.ToDots(units.Vertical, vp)
	d.Width.ToDots(units.Horizontal, vp)
	d.Height.ToDots(units.Vertical, vp)
}

func (d *ImageData) clone() Payload {
	c := *d
	c.Data = slices.Clone(d.Data)
	return &c
}

func (d *ImageData) attrs() map[string]any {
	m := map[string]any{"x": d.X.Dots, "y": d.Y.Dots, "width": d.Width.Dots, "height": d.Height.Dots}
	if d.Data != nil {
		m["mimeType"] = d.MimeType
		m["size"] = len(d.Data)
	} else {
		m["href"] = d.Href
	}
	return m
}

// TextData is the payload of a <text>, including the character
// data of its <tspan> elements, with white space collapsed.
type TextData struct {
	X, Y       units.Value
	FontSize   units.Value
	FontFamily string
	Text       string
}

func (d *TextData) NodeType() NodeTypes { return TextType }

func (d *TextData) setAttr(name, value string) (bool, error) {
	switch name {
	case "x":
		return true, setLength(&d.X, value, false)
	case "y":
		return true, setLength(&d.Y, value, false)
	case "font-size":
		return true, setLength(&d.FontSize, value, true)
	case "font-family":
		d.FontFamily = strings.TrimSpace(value)
		return true, nil
	}
	return false, nil
}

func (d *TextData) resolve(vp units.Viewport) {
	d.X.ToDots(units.Horizontal, vp)
	d.Y.ToDots(units.Vertical, vp)
	d.FontSize.ToDots(units.Other, vp)
}

func (d *TextData) clone() Payload { c := *d; return &c }

func (d *TextData) attrs() map[string]any {
	m := map[string]any{"x": d.X.Dots, "y": d.Y.Dots, "fontSize": d.FontSize.Dots, "text": d.Text}
	if d.FontFamily != "" {
		m["fontFamily"] = d.FontFamily
	}
	return m
}

// SymbolData is the payload of a <symbol>, which is only
// drawn through a <use>.
type SymbolData struct {
	ViewBox             ViewBox
	Width, Height       units.Value
	HasWidth, HasHeight bool

	// OverflowVisible is set for overflow: visible, meaning the
	// content is not clipped to the symbol viewport.
	OverflowVisible bool
}

func (d *SymbolData) NodeType() NodeTypes { return SymbolType }

func (d *SymbolData) setAttr(name, value string) (bool, error) {
	switch name {
	case "viewBox":
		return true, d.ViewBox.SetString(value)
	case "preserveAspectRatio":
		return true, d.ViewBox.PreserveAspectRatio.SetString(value)
	case "width":
		err := setLength(&d.Width, value, true)
		d.HasWidth = err == nil
		return true, err
	case "height":
		err := setLength(&d.Height, value, true)
		d.HasHeight = err == nil
		return true, err
	case "overflow":
		v := strings.TrimSpace(value)
		d.OverflowVisible = v == "visible" || v == "auto"
		return true, nil
	}
	return false, nil
}

func (d *SymbolData) resolve(vp units.Viewport) {
	d.Width.ToDots(units.Horizontal, vp)
	d.Height.ToDots(units.Vertical, vp)
}

func (d *SymbolData) clone() Payload { c := *d; return &c }

func (d *SymbolData) attrs() map[string]any {
	m := map[string]any{"overflowVisible": d.OverflowVisible}
	if d.ViewBox.IsSet() {
		m["viewBox"] = d.ViewBox.String()
	}
	return m
}

// ClipPathData is the payload of a <clipPath>.
type ClipPathData struct {

	// Units is the coordinate system of the content,
	// user space by default.
	Units gradient.Units
}

func (d *ClipPathData) NodeType() NodeTypes { return ClipPathType }

func (d *ClipPathData) setAttr(name, value string) (bool, error) {
	if name != "clipPathUnits" {
		return false, nil
	}
	return true, d.Units.SetString(strings.TrimSpace(value))
}

func (d *ClipPathData) resolve(vp units.Viewport) {}
func (d *ClipPathData) clone() Payload            { c := *d; return &c }
func (d *ClipPathData) attrs() map[string]any {
	return map[string]any{"clipPathUnits": d.Units.String()}
}

// MaskTypes are the ways the mask content is turned into opacity.
type MaskTypes int32

const (
	// MaskLuminance uses the luminance of the content.
	MaskLuminance MaskTypes = iota

	// MaskAlpha uses the alpha of the content.
	MaskAlpha
)

func (mt MaskTypes) String() string {
	if mt == MaskAlpha {
		return "alpha"
	}
	return "luminance"
}

// MaskData is the payload of a <mask>.
type MaskData struct {

	// Units is the coordinate system of the mask rectangle,
	// the object bounding box by default.
	Units gradient.Units

	// ContentUnits is the coordinate system of the content,
	// user space by default.
	ContentUnits gradient.Units

	// Type is the mask type.
	Type MaskTypes
}

func (d *MaskData) NodeType() NodeTypes { return MaskType }

func (d *MaskData) setAttr(name, value string) (bool, error) {
	v := strings.TrimSpace(value)
	switch name {
	case "maskUnits":
		return true, d.Units.SetString(v)
	case "maskContentUnits":
		return true, d.ContentUnits.SetString(v)
	case "mask-type":
		switch v {
		case "luminance":
			d.Type = MaskLuminance
		case "alpha":
			d.Type = MaskAlpha
		default:
			return true, fmt.Errorf("invalid mask type %q", v)
		}
		return true, nil
	}
	return false, nil
}

func (d *MaskData) resolve(vp units.Viewport) {}
func (d *MaskData) clone() Payload            { c := *d; return &c }
func (d *MaskData) attrs() map[string]any {
	return map[string]any{"maskUnits": d.Units.String(), "maskContentUnits": d.ContentUnits.String(),
		"type": d.Type.String()}
}

// UnknownData is the payload of an unsupported element.
type UnknownData struct {

	// Tag is the element name.
	Tag string
}

func (d *UnknownData) NodeType() NodeTypes                      { return UnknownType }
func (d *UnknownData) setAttr(name, value string) (bool, error) { return false, nil }
func (d *UnknownData) resolve(vp units.Viewport)                {}
func (d *UnknownData) clone() Payload                           { c := *d; return &c }
func (d *UnknownData) attrs() map[string]any                    { return map[string]any{"tag": d.Tag} }

// setLength parses a length attribute into v, leaving v unchanged on error.
func setLength(v *units.Value, value string, nonNegative bool) error {
	nv, err := units.Parse(value)
	if err != nil {
		return err
	}
	if nonNegative && nv.Val < 0 {
		return fmt.Errorf("negative length %q", value)
	}
	*v = nv
	return nil
}

// hrefID returns the id of a same-document href of the form "#id".
func hrefID(href string) (string, error) {
	id, ok := strings.CutPrefix(strings.TrimSpace(href), "#")
	if !ok || id == "" {
		return "", fmt.Errorf("only same-document references are supported, got %q", href)
	}
	return id, nil
}
