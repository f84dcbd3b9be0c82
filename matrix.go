// Copyright 2018 The oksvg Authors. All rights reserved.
//
// Implements SVG style matrix transformations.
// https://developer.mozilla.org/en-US/docs/Web/SVG/Attribute/transform
package svg2vd

import (
	"math"
)

// Matrix2D is a 2D affine transform. A point maps as
//
//	x' = A*x + C*y + E
//	y' = B*x + D*y + F
type Matrix2D struct {
	A, B, C, D, E, F float64
}

// Identity is the neutral transform.
var Identity = Matrix2D{1, 0, 0, 1, 0, 0}

// Mult returns the transform that applies b first and then a.
func (a Matrix2D) Mult(b Matrix2D) Matrix2D {
	return Matrix2D{
		A: a.A*b.A + a.C*b.B,
		B: a.B*b.A + a.D*b.B,
		C: a.A*b.C + a.C*b.D,
		D: a.B*b.C + a.D*b.D,
		E: a.A*b.E + a.C*b.F + a.E,
		F: a.B*b.E + a.D*b.F + a.F}
}

// Compose returns the transform equivalent to applying child, then parent.
func Compose(parent, child Matrix2D) Matrix2D {
	return parent.Mult(child)
}

// Transform maps the point (x1, y1).
func (m Matrix2D) Transform(x1, y1 float64) (x2, y2 float64) {
	x2 = x1*m.A + y1*m.C + m.E
	y2 = x1*m.B + y1*m.D + m.F
	return
}

// TransformVector maps (x1, y1) through the linear part only.
func (m Matrix2D) TransformVector(x1, y1 float64) (x2, y2 float64) {
	x2 = x1*m.A + y1*m.C
	y2 = x1*m.B + y1*m.D
	return
}

// Determinant is negative when m flips handedness.
func (m Matrix2D) Determinant() float64 {
	return m.A*m.D - m.B*m.C
}

// ArcParams maps the radii and x-axis rotation (degrees) of an elliptical arc.
// Both ellipse axes are rotated, pushed through the linear part of m, and
// measured again. For non-uniform scaling combined with rotation the result is
// an approximation: the true image of the ellipse has different axes.
func (m Matrix2D) ArcParams(rx, ry, rotDeg float64) (rx2, ry2, rot2 float64) {
	rad := rotDeg * math.Pi / 180
	sin, cos := math.Sincos(rad)
	ax, ay := m.TransformVector(rx*cos, rx*sin)
	bx, by := m.TransformVector(-ry*sin, ry*cos)
	rx2 = math.Hypot(ax, ay)
	ry2 = math.Hypot(bx, by)
	rot2 = math.Atan2(ay, ax) * 180 / math.Pi
	return
}

// Scale post-multiplies a scaling.
func (a Matrix2D) Scale(x, y float64) Matrix2D {
	return a.Mult(Matrix2D{
		A: x,
		B: 0,
		C: 0,
		D: y,
		E: 0,
		F: 0})
}

// SkewY post-multiplies a vertical skew of theta radians.
func (a Matrix2D) SkewY(theta float64) Matrix2D {
	return a.Mult(Matrix2D{
		A: 1,
		B: math.Tan(theta),
		C: 0,
		D: 1,
		E: 0,
		F: 0})
}

// SkewX post-multiplies a horizontal skew of theta radians.
func (a Matrix2D) SkewX(theta float64) Matrix2D {
	return a.Mult(Matrix2D{
		A: 1,
		B: 0,
		C: math.Tan(theta),
		D: 1,
		E: 0,
		F: 0})
}

// Translate post-multiplies a translation.
func (a Matrix2D) Translate(x, y float64) Matrix2D {
	return a.Mult(Matrix2D{
		A: 1,
		B: 0,
		C: 0,
		D: 1,
		E: x,
		F: y})
}

// Rotate post-multiplies a rotation of theta radians, clockwise on screen.
func (a Matrix2D) Rotate(theta float64) Matrix2D {
	sin, cos := math.Sincos(theta)
	return a.Mult(Matrix2D{
		A: cos,
		B: sin,
		C: -sin,
		D: cos,
		E: 0,
		F: 0})
}
