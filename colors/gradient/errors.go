// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gradient

import (
	"fmt"
	"strings"
)

// UnresolvedReferenceError records a reference to an id that does
// not exist in the document, or names an element of the wrong type.
type UnresolvedReferenceError struct {

	// Kind is the property or attribute holding the reference,
	// such as "href", "fill" or "clip-path".
	Kind string

	// From is the id of the referring element, if it has one.
	From string

	// ID is the referenced id.
	ID string
}

func (e *UnresolvedReferenceError) Error() string {
	if e.From == "" {
		return fmt.Sprintf("unresolved %s reference to #%s", e.Kind, e.ID)
	}
	return fmt.Sprintf("unresolved %s reference from #%s to #%s", e.Kind, e.From, e.ID)
}

// CircularReferenceError records a chain of references that
// returns to an id already on the chain.
type CircularReferenceError struct {

	// Kind is the property or attribute forming the chain.
	Kind string

	// Chain lists the ids in order, ending with the repeated one.
	Chain []string
}

func (e *CircularReferenceError) Error() string {
	return fmt.Sprintf("circular %s reference: #%s", e.Kind, strings.Join(e.Chain, " -> #"))
}
