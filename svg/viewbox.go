// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

import (
	"fmt"
	"strings"

	"cogentcore.org/svgir/base/numparse"
	"cogentcore.org/svgir/math32"
)

// ViewBox is used in SVG to define the coordinate system
type ViewBox struct {

	// Min is the offset or starting point of the view box
	Min math32.Vector2

	// Size is the size of the view box; a zero size means there is none
	Size math32.Vector2

	// PreserveAspectRatio is how to scale the view box within its viewport
	PreserveAspectRatio ViewBoxPreserveAspectRatio
}

// Defaults returns viewbox to defaults
func (vb *ViewBox) Defaults() {
	vb.Min = math32.Vector2{}
	vb.Size = math32.Vector2{}
	vb.PreserveAspectRatio = ViewBoxPreserveAspectRatio{}
}

// IsSet returns whether the view box has a usable size.
func (vb *ViewBox) IsSet() bool {
	return vb.Size.X > 0 && vb.Size.Y > 0
}

// SetString sets the view box from the viewBox attribute: four numbers
// for min-x, min-y, width and height, with a positive size.
// On error the view box is unchanged.
func (vb *ViewBox) SetString(str string) error {
	pts, ok := numparse.Floats(str)
	if !ok || len(pts) != 4 {
		return fmt.Errorf("viewBox needs 4 numbers, got %q", str)
	}
	if pts[2] <= 0 || pts[3] <= 0 {
		return fmt.Errorf("viewBox size must be positive, got %q", str)
	}
	vb.Min.Set(pts[0], pts[1])
	vb.Size.Set(pts[2], pts[3])
	return nil
}

func (vb *ViewBox) String() string {
	return fmt.Sprintf("%g %g %g %g", vb.Min.X, vb.Min.Y, vb.Size.X, vb.Size.Y)
}

// Transform returns the transform that maps the view box into a viewport
// of the given size, following PreserveAspectRatio. Without a view box it
// is the identity.
func (vb *ViewBox) Transform(width, height float32) math32.Matrix2 {
	if !vb.IsSet() || width <= 0 || height <= 0 {
		return math32.Identity2()
	}
	par := &vb.PreserveAspectRatio
	sx := width / vb.Size.X
	sy := height / vb.Size.Y
	if !par.NoAlign {
		if (par.MeetOrSlice == Meet) == (sx < sy) {
			sy = sx
		} else {
			sx = sy
		}
	}
	tx := vb.Min.X * sx
	ty := vb.Min.Y * sy
	if !par.NoAlign {
		tx -= par.X.offset(width - vb.Size.X*sx)
		ty -= par.Y.offset(height - vb.Size.Y*sy)
	}
	return math32.Matrix2{XX: sx, YY: sy, X0: -tx, Y0: -ty}
}

// ViewBoxAligns are the alignments of the view box along one axis
type ViewBoxAligns int32

const (
	// AlignMid aligns the midpoint of the view box with the midpoint of the viewport
	AlignMid ViewBoxAligns = iota

	// AlignMin aligns the view box min with the smallest value of the viewport
	AlignMin

	// AlignMax aligns the view box max with the maximum value of the viewport
	AlignMax
)

// offset returns the shift for the given amount of free space.
func (a ViewBoxAligns) offset(free float32) float32 {
	switch a {
	case AlignMid:
		return free * 0.5
	case AlignMax:
		return free
	}
	return 0
}

// ViewBoxMeetOrSlice defines values for the PreserveAspectRatio meet or slice factor
type ViewBoxMeetOrSlice int32

const (
	// Meet means the entire ViewBox is visible within Viewport, and it is
	// scaled up as much as possible to meet the align constraints
	Meet ViewBoxMeetOrSlice = iota

	// Slice means the entire Viewport is covered by the ViewBox, and the
	// ViewBox is scaled down as much as possible, while still meeting the
	// align constraints
	Slice
)

// ViewBoxPreserveAspectRatio determines how to scale the view box within its viewport.
// The zero value is the default, xMidYMid meet.
type ViewBoxPreserveAspectRatio struct {

	// NoAlign is set for "none": the view box is scaled non-uniformly to fill the viewport
	NoAlign bool

	// X is the horizontal alignment
	X ViewBoxAligns

	// Y is the vertical alignment
	Y ViewBoxAligns

	// MeetOrSlice is how to scale the view box relative to the viewport
	MeetOrSlice ViewBoxMeetOrSlice
}

var alignNames = map[string]ViewBoxAligns{"Min": AlignMin, "Mid": AlignMid, "Max": AlignMax}

// SetString sets from a preserveAspectRatio attribute value, such as
// "xMinYMax slice". A leading "defer" is ignored. On error the value
// is unchanged.
func (pa *ViewBoxPreserveAspectRatio) SetString(str string) error {
	fs := strings.Fields(str)
	if len(fs) > 0 && fs[0] == "defer" {
		fs = fs[1:]
	}
	if len(fs) == 0 || len(fs) > 2 {
		return fmt.Errorf("invalid preserveAspectRatio %q", str)
	}
	var np ViewBoxPreserveAspectRatio
	if fs[0] == "none" {
		np.NoAlign = true
	} else {
		al := fs[0]
		if len(al) != 8 || al[0] != 'x' || al[4] != 'Y' {
			return fmt.Errorf("invalid preserveAspectRatio alignment %q", al)
		}
		x, okx := alignNames[al[1:4]]
		y, oky := alignNames[al[5:8]]
		if !okx || !oky {
			return fmt.Errorf("invalid preserveAspectRatio alignment %q", al)
		}
		np.X, np.Y = x, y
	}
	if len(fs) == 2 {
		switch fs[1] {
		case "meet":
			np.MeetOrSlice = Meet
		case "slice":
			np.MeetOrSlice = Slice
		default:
			return fmt.Errorf("invalid preserveAspectRatio %q", str)
		}
	}
	*pa = np
	return nil
}
