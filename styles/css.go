// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package styles

import (
	"fmt"
	"strings"

	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
)

// ParseStyleAttr parses the declarations of an SVG style attribute,
// such as "fill: red; stroke-width: 2", in order. The last declaration
// does not need a closing semicolon.
func ParseStyleAttr(str string) ([]*css.Declaration, error) {
	body := strings.TrimRight(strings.TrimSpace(str), "; \t\n\r")
	if body == "" {
		return nil, nil
	}
	// douceur only keeps a value once it reaches the closing ';'
	decls, err := parser.ParseDeclarations(body + ";")
	if err != nil {
		return nil, fmt.Errorf("invalid style attribute %q: %w", str, err)
	}
	return decls, nil
}

// SetStyleAttr applies the declarations of the given style attribute,
// returning the errors for declarations that could not be applied.
// Declarations that are not style properties are returned in other,
// for the caller to apply as element attributes.
func (s *Style) SetStyleAttr(str string) (other []*css.Declaration, errs []error) {
	decls, err := ParseStyleAttr(str)
	if err != nil {
		return nil, []error{err}
	}
	for _, d := range decls {
		if !IsStyleProperty(d.Property) {
			other = append(other, d)
			continue
		}
		if err := s.SetProperty(d.Property, d.Value); err != nil {
			errs = append(errs, err)
		}
	}
	return other, errs
}
