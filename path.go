// Copyright 2018 The oksvg Authors. All rights reserved.

package svg2vd

import (
	"strconv"
	"strings"

	"golang.org/x/image/math/f64"
)

// This file defines the flattened path structure: every operation
// carries absolute coordinates in the viewport space.

// Operation is one flattened path command.
type Operation interface {
	appendTo(sb *strings.Builder)
}

type MoveTo f64.Vec2

type LineTo f64.Vec2

// QuadTo holds the control point then the end point.
type QuadTo [2]f64.Vec2

// CubicTo holds both control points then the end point.
type CubicTo [3]f64.Vec2

// ArcTo is an elliptical arc; Rot is in degrees.
type ArcTo struct {
	Rx, Ry, Rot  float64
	Large, Sweep bool
	To           f64.Vec2
}

type Close struct{}

func writePoint(sb *strings.Builder, p f64.Vec2) {
	sb.WriteString(formatNum(p[0]))
	sb.WriteByte(',')
	sb.WriteString(formatNum(p[1]))
}

func writeFlag(sb *strings.Builder, b bool) {
	if b {
		sb.WriteByte('1')
	} else {
		sb.WriteByte('0')
	}
}

func (op MoveTo) appendTo(sb *strings.Builder) {
	sb.WriteByte('M')
	writePoint(sb, f64.Vec2(op))
}

func (op LineTo) appendTo(sb *strings.Builder) {
	sb.WriteByte('L')
	writePoint(sb, f64.Vec2(op))
}

func (op QuadTo) appendTo(sb *strings.Builder) {
	sb.WriteByte('Q')
	writePoint(sb, op[0])
	sb.WriteByte(' ')
	writePoint(sb, op[1])
}

func (op CubicTo) appendTo(sb *strings.Builder) {
	sb.WriteByte('C')
	writePoint(sb, op[0])
	sb.WriteByte(' ')
	writePoint(sb, op[1])
	sb.WriteByte(' ')
	writePoint(sb, op[2])
}

func (op ArcTo) appendTo(sb *strings.Builder) {
	sb.WriteByte('A')
	sb.WriteString(formatNum(op.Rx))
	sb.WriteByte(',')
	sb.WriteString(formatNum(op.Ry))
	sb.WriteByte(' ')
	sb.WriteString(formatNum(op.Rot))
	sb.WriteByte(' ')
	writeFlag(sb, op.Large)
	sb.WriteByte(',')
	writeFlag(sb, op.Sweep)
	sb.WriteByte(' ')
	writePoint(sb, op.To)
}

func (Close) appendTo(sb *strings.Builder) {
	sb.WriteByte('Z')
}

// Path describes a sequence of flattened operations.
type Path []Operation

// String returns the path data, e.g. "M0,0 L10,0 Z".
func (p Path) String() string {
	var sb strings.Builder
	for i, op := range p {
		if i > 0 {
			sb.WriteByte(' ')
		}
		op.appendTo(&sb)
	}
	return sb.String()
}

// formatNum rounds to three decimals and drops trailing zeros.
func formatNum(f float64) string {
	s := strconv.FormatFloat(f, 'f', 3, 64)
	if strings.IndexByte(s, '.') >= 0 {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	if s == "-0" {
		s = "0"
	}
	return s
}
