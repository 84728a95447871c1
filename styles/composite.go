// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package styles

import "fmt"

// CompositeStates are the resolution states of a clip-path or mask reference.
type CompositeStates int32

const (
	// Unresolved is the state before reference resolution.
	Unresolved CompositeStates = iota

	// Resolved means Target is a valid clipPath or mask node
	// whose own references resolved without a cycle.
	Resolved

	// NoOp means the reference is missing, of the wrong type or part
	// of a cycle, and is treated as no clip (or no mask).
	NoOp
)

var compositeStateNames = []string{"unresolved", "resolved", "no-op"}

func (cs CompositeStates) String() string {
	return enumString(compositeStateNames, int32(cs), "CompositeStates")
}

// Composite is a clip-path or mask reference authored on a node.
// Nodes that inherit the property share the same *Composite, so
// they all observe its resolved state.
type Composite struct {

	// URL is the referenced id.
	URL string

	// Target is the document node handle of the referenced
	// clipPath or mask, valid when State is Resolved.
	Target int

	// State is the resolution state.
	State CompositeStates
}

// NewComposite returns an unresolved reference to the given id.
func NewComposite(id string) *Composite {
	return &Composite{URL: id, Target: -1}
}

// Active returns whether the reference resolved to a target
// that should be applied.
func (c *Composite) Active() bool {
	return c != nil && c.State == Resolved
}

func (c *Composite) String() string {
	if c == nil {
		return "none"
	}
	return fmt.Sprintf("url(#%s)", c.URL)
}

// parseComposite parses a clip-path or mask value: none or url(#id).
// None yields a nil *Composite.
func parseComposite(s string) (*Composite, error) {
	if s == "none" {
		return nil, nil
	}
	id, rest, err := ParseURL(s)
	if err != nil {
		return nil, err
	}
	if rest != "" {
		return nil, fmt.Errorf("unexpected %q after reference", rest)
	}
	return NewComposite(id), nil
}
