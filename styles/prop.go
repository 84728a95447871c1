// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package styles

// Prop is a style property that is either authored on a node
// (Set is true) or inherited from the nearest ancestor that
// authors it.
type Prop[T any] struct {

	// Val is the authored value, meaningful only when Set.
	Val T

	// Set is whether the value was authored on this node.
	Set bool
}

// Of returns an authored property with the given value.
func Of[T any](v T) Prop[T] {
	return Prop[T]{Val: v, Set: true}
}

// Or returns the authored value if set, and otherwise the given
// inherited value.
func (p Prop[T]) Or(inherited T) T {
	if p.Set {
		return p.Val
	}
	return inherited
}

// Unset clears the property, so that it is inherited.
func (p *Prop[T]) Unset() {
	var zv T
	p.Val = zv
	p.Set = false
}
