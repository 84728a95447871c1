// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package styles

import (
	"fmt"
	"log/slog"
	"strings"

	"cogentcore.org/svgir/base/numparse"
	"cogentcore.org/svgir/colors"
	"cogentcore.org/svgir/math32"
	"cogentcore.org/svgir/units"
)

// StyleFunc sets one property of the style from its string value.
// The value has already been trimmed and is never "inherit".
type StyleFunc func(s *Style, val string) error

// StyleFuncs are the setters for the supported style properties,
// keyed by SVG property name.
var StyleFuncs = map[string]StyleFunc{
	"color": func(s *Style, val string) error {
		if strings.EqualFold(val, "currentColor") {
			s.Color.Unset()
			return nil
		}
		return setProp(&s.Color, val, colors.FromString)
	},
	"fill": func(s *Style, val string) error {
		return setProp(&s.Fill, val, ParsePaint)
	},
	"fill-rule": StyleFuncEnum(func(s *Style) *Prop[FillRules] { return &s.FillRule }),
	"fill-opacity": StyleFuncOpacity(func(s *Style) *Prop[float32] { return &s.FillOpacity }),
	"opacity": StyleFuncOpacity(func(s *Style) *Prop[float32] { return &s.Opacity }),
	"stroke": func(s *Style, val string) error {
		return setProp(&s.Stroke, val, ParsePaint)
	},
	"stroke-width": func(s *Style, val string) error {
		return setProp(&s.StrokeWidth, val, parseNonNegativeLength)
	},
	"stroke-linejoin": StyleFuncEnum(func(s *Style) *Prop[LineJoins] { return &s.StrokeLineJoin }),
	"stroke-linecap": StyleFuncEnum(func(s *Style) *Prop[LineCaps] { return &s.StrokeLineCap }),
	"stroke-opacity": StyleFuncOpacity(func(s *Style) *Prop[float32] { return &s.StrokeOpacity }),
	"stroke-dasharray": func(s *Style, val string) error {
		return setProp(&s.StrokeDashArray, val, ParseDashArray)
	},
	"stroke-miterlimit": func(s *Style, val string) error {
		return setProp(&s.StrokeMiterLimit, val, func(v string) (float32, error) {
			f, ok := numparse.Whole(v)
			if !ok || f < 1 {
				return 0, fmt.Errorf("%q is not a number of at least 1", v)
			}
			return f, nil
		})
	},
	"transform": func(s *Style, val string) error {
		return setProp(&s.Transform, val, math32.ParseTransform)
	},
	"clip-path": func(s *Style, val string) error {
		return setProp(&s.ClipPath, val, parseComposite)
	},
	"mask": func(s *Style, val string) error {
		return setProp(&s.Mask, val, parseComposite)
	},
	"display": func(s *Style, val string) error {
		s.Display = Of(val != "none")
		return nil
	},
}

// StyleFuncEnum returns a style function for any enum value with a SetString method.
func StyleFuncEnum[E any, PE interface {
	*E
	SetString(string) error
}](getField func(s *Style) *Prop[E]) StyleFunc {
	return func(s *Style, val string) error {
		return setProp(getField(s), val, func(v string) (E, error) {
			var e E
			err := PE(&e).SetString(v)
			return e, err
		})
	}
}

// StyleFuncOpacity returns a style function for an opacity value: a
// number or percentage, clamped to [0, 1].
func StyleFuncOpacity(getField func(s *Style) *Prop[float32]) StyleFunc {
	return func(s *Style, val string) error {
		return setProp(getField(s), val, ParseOpacity)
	}
}

// setProp parses val and sets p to it, leaving p unchanged on error.
func setProp[T any](p *Prop[T], val string, parse func(string) (T, error)) error {
	v, err := parse(val)
	if err != nil {
		return err
	}
	*p = Of(v)
	return nil
}

// IsStyleProperty returns whether name is a supported style property.
func IsStyleProperty(name string) bool {
	_, ok := StyleFuncs[name]
	return ok
}

// SetProperty sets the style property of the given name from its SVG
// string value. The value "inherit" clears the property so that it is
// inherited. On a malformed value the property is left unchanged and
// an error is returned. Unsupported properties are ignored.
func (s *Style) SetProperty(name, value string) error {
	sfunc, ok := StyleFuncs[name]
	if !ok {
		slog.Debug("styles: ignoring unsupported property", "name", name)
		return nil
	}
	val := strings.TrimSpace(value)
	if val == "inherit" {
		s.unset(name)
		return nil
	}
	if err := sfunc(s, val); err != nil {
		return fmt.Errorf("invalid %s %q: %w", name, value, err)
	}
	return nil
}

// unset clears the property of the given name.
func (s *Style) unset(name string) {
	switch name {
	case "color":
		s.Color.Unset()
	case "fill":
		s.Fill.Unset()
	case "fill-rule":
		s.FillRule.Unset()
	case "fill-opacity":
		s.FillOpacity.Unset()
	case "opacity":
		s.Opacity.Unset()
	case "stroke":
		s.Stroke.Unset()
	case "stroke-width":
		s.StrokeWidth.Unset()
	case "stroke-linejoin":
		s.StrokeLineJoin.Unset()
	case "stroke-linecap":
		s.StrokeLineCap.Unset()
	case "stroke-opacity":
		s.StrokeOpacity.Unset()
	case "stroke-dasharray":
		s.StrokeDashArray.Unset()
	case "stroke-miterlimit":
		s.StrokeMiterLimit.Unset()
	case "transform":
		s.Transform.Unset()
	case "clip-path":
		s.ClipPath.Unset()
	case "mask":
		s.Mask.Unset()
	case "display":
		s.Display.Unset()
	}
}

// ParseOpacity parses an opacity: a number or a percentage,
// clamped to [0, 1].
func ParseOpacity(val string) (float32, error) {
	v := strings.TrimSpace(val)
	d := float32(1)
	if s, ok := strings.CutSuffix(v, "%"); ok {
		v, d = s, 100
	}
	f, ok := numparse.Whole(v)
	if !ok || math32.IsNaN(f) {
		return 0, fmt.Errorf("%q is not a number", val)
	}
	return math32.Clamp(f/d, 0, 1), nil
}

func parseNonNegativeLength(val string) (units.Value, error) {
	v, err := units.Parse(val)
	if err != nil {
		return v, err
	}
	if v.Val < 0 {
		return units.Value{}, fmt.Errorf("negative length %q", val)
	}
	return v, nil
}

// ParseDashArray parses a stroke-dasharray: none, or a list of
// non-negative lengths separated by commas and/or whitespace.
// A list with an odd number of values is repeated to make it even.
// A list that sums to zero is the same as none.
func ParseDashArray(val string) ([]units.Value, error) {
	if val == "none" {
		return []units.Value{}, nil
	}
	fields := strings.FieldsFunc(val, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	if len(fields) == 0 {
		return nil, fmt.Errorf("empty dash array")
	}
	dashes := make([]units.Value, 0, len(fields))
	var sum float32
	for _, f := range fields {
		v, err := parseNonNegativeLength(f)
		if err != nil {
			return nil, err
		}
		sum += v.Val
		dashes = append(dashes, v)
	}
	if sum == 0 {
		return []units.Value{}, nil
	}
	if len(dashes)%2 == 1 {
		dashes = append(dashes, dashes...)
	}
	return dashes, nil
}
