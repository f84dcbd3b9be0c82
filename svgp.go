// Copyright 2017 The oksvg Authors. All rights reserved.

// svgp.go implements flattening of an SVG path description: every
// coordinate is resolved to absolute form and pushed through a transform.

package svg2vd

import (
	"fmt"
	"math"

	"golang.org/x/image/math/f64"
)

// PathCursor interprets SVG path data under a fixed transform M and
// accumulates the flattened Path and its BoundingBox.
type PathCursor struct {
	Path     Path
	Bounds   BoundingBox
	Warnings []Warning
	M        Matrix2D

	sc                     scanner
	placeX, placeY         float64 // current point, before transform
	cntlPtX, cntlPtY       float64 // last control point, before transform
	pathStartX, pathStartY float64
	points                 []float64
	lastKey                byte
}

// FlattenPath flattens the path data d under m. Malformed commands are
// skipped and reported as warnings; it never fails.
func FlattenPath(d string, m Matrix2D) (Path, BoundingBox, []Warning) {
	c := &PathCursor{}
	c.CompilePath(d, m)
	return c.Path, c.Bounds, c.Warnings
}

// argCount is the number of arguments one repetition of k takes,
// or -1 when k is not a path command.
func argCount(k byte) int {
	switch k {
	case 'Z', 'z':
		return 0
	case 'H', 'h', 'V', 'v':
		return 1
	case 'M', 'm', 'L', 'l', 'T', 't':
		return 2
	case 'S', 's', 'Q', 'q':
		return 4
	case 'C', 'c':
		return 6
	case 'A', 'a':
		return 7
	}
	return -1
}

func upper(k byte) byte {
	if k >= 'a' && k <= 'z' {
		return k - 'a' + 'A'
	}
	return k
}

func reflect(px, py, rx, ry float64) (x, y float64) {
	return px*2 - rx, py*2 - ry
}

func (c *PathCursor) init(m Matrix2D) {
	c.Path = c.Path[:0]
	c.Bounds = EmptyBox()
	c.Warnings = c.Warnings[:0]
	c.M = m
	c.placeX, c.placeY = 0, 0
	c.cntlPtX, c.cntlPtY = 0, 0
	c.pathStartX, c.pathStartY = 0, 0
	c.points = c.points[:0]
	c.lastKey = ' '
}

func (c *PathCursor) warn(kind WarningKind, format string, args ...interface{}) {
	c.Warnings = append(c.Warnings, Warning{Kind: kind, Msg: fmt.Sprintf(format, args...)})
}

// CompilePath interprets svgPath from scratch under m.
func (c *PathCursor) CompilePath(svgPath string, m Matrix2D) {
	c.init(m)
	c.sc = scanner{s: svgPath}
	var cmd byte
	for !c.sc.done() {
		if c.sc.atLetter() {
			k := c.sc.next()
			if argCount(k) < 0 {
				c.warn(UnknownCommand, "ignoring path command %q", k)
				cmd = 0
				continue
			}
			cmd = k
			if argCount(k) == 0 {
				c.addSeg(k)
				continue
			}
		} else if cmd == 0 || argCount(cmd) == 0 {
			if _, ok := c.sc.number(); !ok {
				c.sc.next()
			}
			c.warn(MalformedPath, "stray value at offset %d", c.sc.pos)
			continue
		}
		if !c.readArgs(cmd) {
			c.warn(MalformedPath, "command %q is missing arguments", cmd)
			c.skipToLetter()
			continue
		}
		c.addSeg(cmd)
		// a moveto followed by more pairs repeats as lineto
		switch cmd {
		case 'M':
			cmd = 'L'
		case 'm':
			cmd = 'l'
		}
	}
}

func (c *PathCursor) skipToLetter() {
	for c.sc.pos < len(c.sc.s) && !isLetter(c.sc.s[c.sc.pos]) {
		c.sc.pos++
	}
}

// readArgs fills c.points with one set of arguments for k.
func (c *PathCursor) readArgs(k byte) bool {
	c.points = c.points[:0]
	n := argCount(k)
	for i := 0; i < n; i++ {
		var (
			f  float64
			ok bool
		)
		if upper(k) == 'A' && (i == 3 || i == 4) {
			f, ok = c.sc.flag()
		} else {
			if !c.sc.atNumber() {
				return false
			}
			f, ok = c.sc.number()
		}
		if !ok {
			return false
		}
		c.points = append(c.points, f)
	}
	return true
}

// tr transforms a point and records it in the bounding box.
func (c *PathCursor) tr(x, y float64) f64.Vec2 {
	tx, ty := c.M.Transform(x, y)
	c.Bounds.Add(tx, ty)
	return f64.Vec2{tx, ty}
}

func (c *PathCursor) lineTo(x, y float64) {
	c.Path = append(c.Path, LineTo(c.tr(x, y)))
	c.placeX, c.placeY = x, y
}

// addSeg emits one command whose arguments are in c.points.
func (c *PathCursor) addSeg(k byte) {
	p := c.points
	rel := k >= 'a'
	if rel {
		c.pointsToAbs(k)
	}
	switch upper(k) {
	case 'Z':
		c.Path = append(c.Path, Close{})
		c.placeX, c.placeY = c.pathStartX, c.pathStartY
	case 'M':
		c.Path = append(c.Path, MoveTo(c.tr(p[0], p[1])))
		c.placeX, c.placeY = p[0], p[1]
		c.pathStartX, c.pathStartY = p[0], p[1]
	case 'L':
		c.lineTo(p[0], p[1])
	case 'H':
		c.lineTo(p[0], c.placeY)
	case 'V':
		c.lineTo(c.placeX, p[0])
	case 'C':
		c.Path = append(c.Path, CubicTo{c.tr(p[0], p[1]), c.tr(p[2], p[3]), c.tr(p[4], p[5])})
		c.cntlPtX, c.cntlPtY = p[2], p[3]
		c.placeX, c.placeY = p[4], p[5]
	case 'S':
		switch upper(c.lastKey) {
		case 'C', 'S':
			c.cntlPtX, c.cntlPtY = reflect(c.placeX, c.placeY, c.cntlPtX, c.cntlPtY)
		default:
			c.cntlPtX, c.cntlPtY = c.placeX, c.placeY
		}
		c.Path = append(c.Path, CubicTo{c.tr(c.cntlPtX, c.cntlPtY), c.tr(p[0], p[1]), c.tr(p[2], p[3])})
		c.cntlPtX, c.cntlPtY = p[0], p[1]
		c.placeX, c.placeY = p[2], p[3]
	case 'Q':
		c.Path = append(c.Path, QuadTo{c.tr(p[0], p[1]), c.tr(p[2], p[3])})
		c.cntlPtX, c.cntlPtY = p[0], p[1]
		c.placeX, c.placeY = p[2], p[3]
	case 'T':
		switch upper(c.lastKey) {
		case 'Q', 'T':
			c.cntlPtX, c.cntlPtY = reflect(c.placeX, c.placeY, c.cntlPtX, c.cntlPtY)
		default:
			c.cntlPtX, c.cntlPtY = c.placeX, c.placeY
		}
		c.Path = append(c.Path, QuadTo{c.tr(c.cntlPtX, c.cntlPtY), c.tr(p[0], p[1])})
		c.placeX, c.placeY = p[0], p[1]
	case 'A':
		c.addArc(p)
	}
	// So we know how to extend some segment types
	c.lastKey = k
}

// pointsToAbs offsets the relative arguments of k by the current point.
func (c *PathCursor) pointsToAbs(k byte) {
	p := c.points
	switch upper(k) {
	case 'H':
		p[0] += c.placeX
	case 'V':
		p[0] += c.placeY
	case 'A':
		p[5] += c.placeX
		p[6] += c.placeY
	default:
		for i := 0; i+1 < len(p); i += 2 {
			p[i] += c.placeX
			p[i+1] += c.placeY
		}
	}
}

// addArc emits an arc with radii and rotation mapped through M. A mirroring
// transform reverses the direction of travel, so the sweep flag flips.
func (c *PathCursor) addArc(p []float64) {
	rx, ry := math.Abs(p[0]), math.Abs(p[1])
	x, y := p[5], p[6]
	if x == c.placeX && y == c.placeY {
		return // zero length arc draws nothing
	}
	if rx == 0 || ry == 0 {
		c.lineTo(x, y)
		return
	}
	rx2, ry2, rot2 := c.M.ArcParams(rx, ry, p[2])
	sweep := p[4] != 0
	if c.M.Determinant() < 0 {
		sweep = !sweep
	}
	c.Path = append(c.Path, ArcTo{
		Rx: rx2, Ry: ry2, Rot: rot2,
		Large: p[3] != 0,
		Sweep: sweep,
		To:    c.tr(x, y),
	})
	c.placeX, c.placeY = x, y
}
