// Copyright 2018 The oksvg Authors. All rights reserved.

package svg2vd

import (
	"math"
	"strings"
)

// ParseTransform reads an SVG transform list such as
// "translate(10,20) rotate(45 5 5) scale(2)" into one matrix. Each listed
// transform is multiplied onto the result in order, so the right-most entry
// is the first one applied to coordinates. Unknown names and entries with a
// wrong argument count are skipped; an empty list is the identity.
func ParseTransform(v string) Matrix2D {
	m := Identity
	sc := scanner{s: v}
	for !sc.done() {
		name, args, ok := readTransformFunc(&sc)
		if !ok {
			continue
		}
		if t, ok := transformFunc(name, args); ok {
			m = m.Mult(t)
		}
	}
	return m
}

// readTransformFunc reads one name(args) entry. On malformed input it
// consumes up to and including the next ')' so parsing can resume.
func readTransformFunc(sc *scanner) (name string, args []float64, ok bool) {
	sc.skipSep()
	start := sc.pos
	for sc.pos < len(sc.s) && isLetter(sc.s[sc.pos]) {
		sc.pos++
	}
	name = strings.ToLower(sc.s[start:sc.pos])
	for sc.pos < len(sc.s) && isSpace(sc.s[sc.pos]) {
		sc.pos++
	}
	if name == "" || sc.pos >= len(sc.s) || sc.s[sc.pos] != '(' {
		skipPastParen(sc)
		return "", nil, false
	}
	sc.pos++
	for sc.atNumber() {
		f, ok := sc.number()
		if !ok {
			break
		}
		args = append(args, f)
	}
	sc.skipSep()
	if sc.pos >= len(sc.s) || sc.s[sc.pos] != ')' {
		skipPastParen(sc)
		return "", nil, false
	}
	sc.pos++
	return name, args, true
}

func skipPastParen(sc *scanner) {
	i := strings.IndexByte(sc.s[sc.pos:], ')')
	if i < 0 {
		sc.pos = len(sc.s)
		return
	}
	sc.pos += i + 1
}

func transformFunc(name string, p []float64) (Matrix2D, bool) {
	ln := len(p)
	switch name {
	case "translate":
		switch ln {
		case 1:
			return Identity.Translate(p[0], 0), true
		case 2:
			return Identity.Translate(p[0], p[1]), true
		}
	case "rotate":
		switch ln {
		case 1:
			return Identity.Rotate(p[0] * math.Pi / 180), true
		case 3:
			return Identity.Translate(p[1], p[2]).
				Rotate(p[0]*math.Pi/180).
				Translate(-p[1], -p[2]), true
		}
	case "scale":
		switch ln {
		case 1:
			return Identity.Scale(p[0], p[0]), true
		case 2:
			return Identity.Scale(p[0], p[1]), true
		}
	case "skewx":
		if ln == 1 {
			return Identity.SkewX(p[0] * math.Pi / 180), true
		}
	case "skewy":
		if ln == 1 {
			return Identity.SkewY(p[0] * math.Pi / 180), true
		}
	case "matrix":
		if ln == 6 {
			return Matrix2D{p[0], p[1], p[2], p[3], p[4], p[5]}, true
		}
	}
	return Identity, false
}
