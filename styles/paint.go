// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package styles

import (
	"fmt"
	"strings"

	"cogentcore.org/svgir/colors"
	"cogentcore.org/svgir/colors/gradient"
)

// PaintKinds are the variants of an SVG paint.
type PaintKinds int32

const (
	// PaintNone means nothing is painted.
	PaintNone PaintKinds = iota

	// PaintColor is a solid color.
	PaintColor

	// PaintURL is a reference by id to a gradient.
	PaintURL

	// PaintCurrentColor paints with the effective color property.
	PaintCurrentColor
)

var paintKindNames = []string{"none", "color", "url", "currentColor"}

func (pk PaintKinds) String() string { return enumString(paintKindNames, int32(pk), "PaintKinds") }

// Paint is the value of a fill or stroke property.
type Paint struct {

	// Kind selects the variant.
	Kind PaintKinds

	// Color is the solid color for [PaintColor], and the fallback
	// color for [PaintURL] when Fallback is [PaintColor].
	Color colors.RGB

	// URL is the referenced id for [PaintURL].
	URL string

	// Fallback is what a [PaintURL] paints if the reference cannot be
	// resolved: [PaintNone] (the default), [PaintColor] or [PaintCurrentColor].
	Fallback PaintKinds

	// Gradient is set on a [PaintURL] paint when it has been resolved.
	// It points into the document gradient table and is not owned.
	Gradient *gradient.Gradient `copier:"-"`
}

// IsNone returns whether the paint paints nothing.
func (p Paint) IsNone() bool {
	return p.Kind == PaintNone
}

// Solid returns a solid color paint.
func Solid(c colors.RGB) Paint {
	return Paint{Kind: PaintColor, Color: c}
}

// String returns the paint in SVG syntax.
func (p Paint) String() string {
	switch p.Kind {
	case PaintColor:
		return p.Color.String()
	case PaintCurrentColor:
		return "currentColor"
	case PaintURL:
		s := "url(#" + p.URL + ")"
		switch p.Fallback {
		case PaintColor:
			s += " " + p.Color.String()
		case PaintCurrentColor:
			s += " currentColor"
		}
		return s
	}
	return "none"
}

// ParsePaint parses an SVG paint: none, currentColor, a color, or
// url(#id) with an optional fallback of none, currentColor or a color.
func ParsePaint(str string) (Paint, error) {
	s := strings.TrimSpace(str)
	switch {
	case s == "":
		return Paint{}, fmt.Errorf("empty paint")
	case strings.EqualFold(s, "none"):
		return Paint{Kind: PaintNone}, nil
	case strings.EqualFold(s, "currentColor"):
		return Paint{Kind: PaintCurrentColor}, nil
	case strings.HasPrefix(s, "url("):
		id, rest, err := ParseURL(s)
		if err != nil {
			return Paint{}, err
		}
		p := Paint{Kind: PaintURL, URL: id}
		if rest == "" {
			return p, nil
		}
		fb, err := ParsePaint(rest)
		if err != nil {
			return Paint{}, fmt.Errorf("invalid paint fallback: %w", err)
		}
		if fb.Kind == PaintURL {
			return Paint{}, fmt.Errorf("paint fallback %q cannot be a url", rest)
		}
		p.Fallback = fb.Kind
		p.Color = fb.Color
		return p, nil
	}
	c, err := colors.FromString(s)
	if err != nil {
		return Paint{}, err
	}
	return Solid(c), nil
}

// ParseURL parses a leading url(#id) reference, returning the id and
// the trimmed remainder of the string. Quotes around the reference
// are allowed.
func ParseURL(str string) (id, rest string, err error) {
	s := strings.TrimSpace(str)
	inner, ok := strings.CutPrefix(s, "url(")
	if !ok {
		return "", "", fmt.Errorf("%q is not a url reference", str)
	}
	end := strings.IndexByte(inner, ')')
	if end < 0 {
		return "", "", fmt.Errorf("missing ) in %q", str)
	}
	ref := strings.Trim(strings.TrimSpace(inner[:end]), `"'`)
	id, ok = strings.CutPrefix(ref, "#")
	if !ok || id == "" {
		return "", "", fmt.Errorf("only same-document references are supported, got %q", ref)
	}
	return id, strings.TrimSpace(inner[end+1:]), nil
}
