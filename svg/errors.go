// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

import (
	"fmt"

	"cogentcore.org/svgir/base/errors"
	"cogentcore.org/svgir/colors/gradient"
)

var (
	// ErrNoRoot is returned when the input has no <svg> element.
	ErrNoRoot = errors.New("svg: no <svg> root element")

	// ErrTooDeep is returned when elements are nested
	// more deeply than the configured MaxDepth.
	ErrTooDeep = errors.New("svg: elements nested too deeply")

	// ErrTooManyNodes is returned when the document, with its
	// <use> clones, has more than the configured MaxNodes.
	ErrTooManyNodes = errors.New("svg: too many nodes")
)

// UnresolvedReferenceError records a reference to an id that does not
// exist, or names an element of the wrong type. The paint, clip or mask
// falls back to none.
type UnresolvedReferenceError = gradient.UnresolvedReferenceError

// CircularReferenceError records a gradient href chain, a clip-path or
// mask application, or a <use> that refers back to itself. The gradient
// is emptied and the clip or mask has no effect.
type CircularReferenceError = gradient.CircularReferenceError

// ParseError records a malformed attribute or property value. The
// value is ignored and the default (or inherited) one is used instead.
type ParseError struct {

	// Elem is the element name.
	Elem string

	// ID is the id of the element, if any.
	ID string

	// Attr is the attribute or property name.
	Attr string

	// Value is the malformed value.
	Value string

	// Err is the underlying error.
	Err error
}

func (e *ParseError) Error() string {
	el := e.Elem
	if e.ID != "" {
		el += "#" + e.ID
	}
	return fmt.Sprintf("<%s> %s=%q: %v", el, e.Attr, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// DuplicateIDError records an id given to more than one element.
// The first element keeps the id; later ones cannot be referenced.
type DuplicateIDError struct {

	// ID is the duplicated id.
	ID string

	// Elem is the element name of the later element.
	Elem string
}

func (e *DuplicateIDError) Error() string {
	return fmt.Sprintf("duplicate id %q on <%s>: the first element with it is used", e.ID, e.Elem)
}
