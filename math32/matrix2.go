// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"fmt"
	"strconv"
	"strings"

	"cogentcore.org/svgir/base/numparse"
)

// Matrix2 is a 3x2 affine transform matrix, in the layout used by the
// SVG matrix(a, b, c, d, e, f) transform: a point is transformed as
//
//	x' = XX*x + XY*y + X0
//	y' = YX*x + YY*y + Y0
type Matrix2 struct {
	XX, YX, XY, YY, X0, Y0 float32
}

// Identity2 returns a new identity [Matrix2] matrix.
func Identity2() Matrix2 {
	return Matrix2{
		1, 0,
		0, 1,
		0, 0,
	}
}

// Translate2D returns a translation matrix.
func Translate2D(x, y float32) Matrix2 {
	return Matrix2{
		1, 0,
		0, 1,
		x, y,
	}
}

// Scale2D returns a scaling matrix.
func Scale2D(x, y float32) Matrix2 {
	return Matrix2{
		x, 0,
		0, y,
		0, 0,
	}
}

// Rotate2D returns a rotation matrix for the given angle in radians.
func Rotate2D(angle float32) Matrix2 {
	c := Cos(angle)
	s := Sin(angle)
	return Matrix2{
		c, s,
		-s, c,
		0, 0,
	}
}

// Skew2D returns a skewing matrix for the given angles in radians.
func Skew2D(x, y float32) Matrix2 {
	return Matrix2{
		1, Tan(y),
		Tan(x), 1,
		0, 0,
	}
}

// IsIdentity returns true if this is the identity matrix.
func (a Matrix2) IsIdentity() bool {
	return a == Identity2()
}

// Mul returns a * b: the result applies b first and then a.
func (a Matrix2) Mul(b Matrix2) Matrix2 {
	return Matrix2{
		XX: a.XX*b.XX + a.XY*b.YX,
		YX: a.YX*b.XX + a.YY*b.YX,
		XY: a.XX*b.XY + a.XY*b.YY,
		YY: a.YX*b.XY + a.YY*b.YY,
		X0: a.XX*b.X0 + a.XY*b.Y0 + a.X0,
		Y0: a.YX*b.X0 + a.YY*b.Y0 + a.Y0,
	}
}

// MulVector2AsPoint multiplies the Vector2 as a point, including translation.
func (a Matrix2) MulVector2AsPoint(v Vector2) Vector2 {
	return Vector2{
		X: a.XX*v.X + a.XY*v.Y + a.X0,
		Y: a.YX*v.X + a.YY*v.Y + a.Y0,
	}
}

// MulVector2AsVector multiplies the Vector2 as a vector, without translation.
func (a Matrix2) MulVector2AsVector(v Vector2) Vector2 {
	return Vector2{
		X: a.XX*v.X + a.XY*v.Y,
		Y: a.YX*v.X + a.YY*v.Y,
	}
}

// Translate returns a with a translation appended, in the SVG
// transform-list sense (applied before a).
func (a Matrix2) Translate(x, y float32) Matrix2 {
	return a.Mul(Translate2D(x, y))
}

// Rotate returns a with a rotation (in radians) appended.
func (a Matrix2) Rotate(angle float32) Matrix2 {
	return a.Mul(Rotate2D(angle))
}

// Det returns the determinant of the matrix.
func (a Matrix2) Det() float32 {
	return a.XX*a.YY - a.XY*a.YX
}

// Inverse returns the inverse of the matrix. A singular matrix
// yields the identity.
func (a Matrix2) Inverse() Matrix2 {
	det := a.Det()
	if det == 0 {
		return Identity2()
	}
	inv := 1 / det
	return Matrix2{
		XX: a.YY * inv,
		YX: -a.YX * inv,
		XY: -a.XY * inv,
		YY: a.XX * inv,
		X0: (a.XY*a.Y0 - a.YY*a.X0) * inv,
		Y0: (a.YX*a.X0 - a.XX*a.Y0) * inv,
	}
}

// ExtractRot extracts the rotation component from a given matrix.
func (a Matrix2) ExtractRot() float32 {
	return Atan2(-a.XY, a.XX)
}

// ExtractScale extracts the x and y scaling factors.
func (a Matrix2) ExtractScale() (scx, scy float32) {
	return Hypot(a.XX, a.YX), Hypot(a.XY, a.YY)
}

// String returns the matrix in SVG transform syntax, using
// the simplest form that represents it.
func (a Matrix2) String() string {
	if a.IsIdentity() {
		return "none"
	}
	if a.YX != 0 || a.XY != 0 {
		return fmt.Sprintf("matrix(%s,%s,%s,%s,%s,%s)", fmtf(a.XX), fmtf(a.YX), fmtf(a.XY), fmtf(a.YY), fmtf(a.X0), fmtf(a.Y0))
	}
	var parts []string
	if a.X0 != 0 || a.Y0 != 0 {
		parts = append(parts, fmt.Sprintf("translate(%s,%s)", fmtf(a.X0), fmtf(a.Y0)))
	}
	if a.XX != 1 || a.YY != 1 {
		parts = append(parts, fmt.Sprintf("scale(%s,%s)", fmtf(a.XX), fmtf(a.YY)))
	}
	return strings.Join(parts, " ")
}

func fmtf(v float32) string {
	return strconv.FormatFloat(float64(v), 'g', -1, 32)
}

// SetString sets the matrix from an SVG transform list such as
// "translate(10, 20) rotate(45)". On error the matrix is set to
// the identity.
func (a *Matrix2) SetString(str string) error {
	m, err := ParseTransform(str)
	if err != nil {
		*a = Identity2()
		return err
	}
	*a = m
	return nil
}

// ParseTransform parses an SVG transform list. The transforms are
// composed left to right, so the rightmost one is applied first.
// An empty string or "none" yields the identity.
func ParseTransform(str string) (Matrix2, error) {
	m := Identity2()
	str = strings.TrimSpace(str)
	if str == "" || strings.EqualFold(str, "none") {
		return m, nil
	}
	for _, t := range strings.Split(str, ")") {
		t = strings.Trim(t, " \t\n\r,")
		if t == "" {
			continue
		}
		name, args, ok := strings.Cut(t, "(")
		if !ok {
			return Identity2(), fmt.Errorf("math32: badly formed transform %q", t)
		}
		name = strings.ToLower(strings.TrimSpace(name))
		pts, ok := numparse.Floats(args)
		if !ok {
			return Identity2(), fmt.Errorf("math32: invalid %s arguments %q", name, args)
		}
		tm, err := transformFunc(name, pts)
		if err != nil {
			return Identity2(), err
		}
		m = m.Mul(tm)
	}
	return m, nil
}

// transformFunc returns the matrix for one transform function.
func transformFunc(name string, pts []float32) (Matrix2, error) {
	n := len(pts)
	switch {
	case name == "matrix" && n == 6:
		return Matrix2{pts[0], pts[1], pts[2], pts[3], pts[4], pts[5]}, nil
	case name == "translate" && n == 1:
		return Translate2D(pts[0], 0), nil
	case name == "translate" && n == 2:
		return Translate2D(pts[0], pts[1]), nil
	case name == "scale" && n == 1:
		return Scale2D(pts[0], pts[0]), nil
	case name == "scale" && n == 2:
		return Scale2D(pts[0], pts[1]), nil
	case name == "rotate" && n == 1:
		return Rotate2D(DegToRad(pts[0])), nil
	case name == "rotate" && n == 3:
		return Translate2D(pts[1], pts[2]).Rotate(DegToRad(pts[0])).Translate(-pts[1], -pts[2]), nil
	case name == "skewx" && n == 1:
		return Skew2D(DegToRad(pts[0]), 0), nil
	case name == "skewy" && n == 1:
		return Skew2D(0, DegToRad(pts[0])), nil
	}
	return Identity2(), fmt.Errorf("math32: unknown transform %s with %d arguments", name, n)
}
