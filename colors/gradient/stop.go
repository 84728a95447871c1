// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gradient

import (
	"fmt"
	"strings"

	"cogentcore.org/svgir/base/numparse"
	"cogentcore.org/svgir/colors"
)

// SetAttr sets the stop property of the given name (offset, stop-color
// or stop-opacity) from its SVG string value. Unknown properties are
// ignored. On error the property keeps its previous value.
func (st *Stop) SetAttr(name, value string) error {
	switch name {
	case "offset":
		off, err := readFraction(value)
		if err != nil {
			return fmt.Errorf("invalid offset: %w", err)
		}
		st.Offset = off
	case "stop-color":
		if strings.TrimSpace(value) == "inherit" {
			return nil
		}
		clr, err := colors.FromString(value)
		if err != nil {
			return fmt.Errorf("invalid stop-color: %w", err)
		}
		st.Color = clr
	case "stop-opacity":
		op, err := readFraction(value)
		if err != nil {
			return fmt.Errorf("invalid stop-opacity: %w", err)
		}
		st.Opacity = op
	}
	return nil
}

// readFraction reads a number or a percentage, returning the
// percentage as a fraction.
func readFraction(v string) (float32, error) {
	v = strings.TrimSpace(v)
	d := float32(1)
	if s, ok := strings.CutSuffix(v, "%"); ok {
		d = 100
		v = s
	}
	f, ok := numparse.Whole(v)
	if !ok {
		return 0, fmt.Errorf("%q is not a number", v)
	}
	return f / d, nil
}
