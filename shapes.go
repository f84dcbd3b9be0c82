// Copyright 2018 The oksvg Authors. All rights reserved.

package svg2vd

import (
	"fmt"
	"strconv"
	"strings"
)

// This file implements the transformation from
// high level shapes to their path equivalent

// parseLength reads a plain or px suffixed number. Empty is zero.
func parseLength(v string) (float64, error) {
	v = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(v), "px"))
	if v == "" {
		return 0, nil
	}
	return parseFloat(v)
}

// lengths reads the named attributes of n, in order.
func lengths(n *SourceNode, names ...string) ([]float64, error) {
	vals := make([]float64, len(names))
	for i, name := range names {
		f, err := parseLength(n.Attrs.Get(name, ""))
		if err != nil {
			return nil, fmt.Errorf("attribute %s: %w", name, err)
		}
		vals[i] = f
	}
	return vals, nil
}

// ShapePath rewrites a basic shape element as path data in its own
// coordinates. ok is false when the element draws nothing, such as a rect
// of zero width or a circle of zero radius.
func ShapePath(n *SourceNode) (d string, ok bool, err error) {
	switch n.Tag {
	case "path":
		d = n.Attrs.Get("d", "")
		return d, strings.TrimSpace(d) != "", nil
	case "rect":
		v, err := lengths(n, "x", "y", "width", "height")
		if err != nil {
			return "", false, err
		}
		rx, hasRx := n.Attrs.Lookup("rx")
		ry, hasRy := n.Attrs.Lookup("ry")
		switch {
		case !hasRx && hasRy:
			rx = ry
		case hasRx && !hasRy:
			ry = rx
		}
		r, err := parseRadii(rx, ry)
		if err != nil {
			return "", false, err
		}
		return rectPath(v[0], v[1], v[2], v[3], r[0], r[1])
	case "circle":
		v, err := lengths(n, "cx", "cy", "r")
		if err != nil {
			return "", false, err
		}
		return ellipsePath(v[0], v[1], v[2], v[2])
	case "ellipse":
		v, err := lengths(n, "cx", "cy", "rx", "ry")
		if err != nil {
			return "", false, err
		}
		return ellipsePath(v[0], v[1], v[2], v[3])
	case "line":
		v, err := lengths(n, "x1", "y1", "x2", "y2")
		if err != nil {
			return "", false, err
		}
		return fmt.Sprintf("M %s,%s L %s,%s", num(v[0]), num(v[1]), num(v[2]), num(v[3])), true, nil
	case "polyline", "polygon":
		return polyPath(n.Attrs.Get("points", ""), n.Tag == "polygon")
	}
	return "", false, fmt.Errorf("<%s> is not a shape", n.Tag)
}

func parseRadii(rx, ry string) ([2]float64, error) {
	var r [2]float64
	for i, v := range []string{rx, ry} {
		v = strings.TrimSpace(v)
		if v == "" || v == "auto" {
			continue
		}
		f, err := parseLength(v)
		if err != nil {
			return r, fmt.Errorf("corner radius: %w", err)
		}
		if f > 0 {
			r[i] = f
		}
	}
	return r, nil
}

// num formats a local coordinate without rounding.
func num(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

func rectPath(x, y, w, h, rx, ry float64) (string, bool, error) {
	if w <= 0 || h <= 0 {
		return "", false, nil
	}
	if rx <= 0 || ry <= 0 {
		return fmt.Sprintf("M %s,%s h %s v %s h %s z", num(x), num(y), num(w), num(h), num(-w)), true, nil
	}
	rx = clamp(rx, 0, w/2)
	ry = clamp(ry, 0, h/2)
	arc := func(ex, ey float64) string {
		return fmt.Sprintf("A %s,%s 0 0,1 %s,%s", num(rx), num(ry), num(ex), num(ey))
	}
	return strings.Join([]string{
		fmt.Sprintf("M %s,%s", num(x+rx), num(y)),
		"H " + num(x+w-rx),
		arc(x+w, y+ry),
		"V " + num(y+h-ry),
		arc(x+w-rx, y+h),
		"H " + num(x+rx),
		arc(x, y+h-ry),
		"V " + num(y+ry),
		arc(x+rx, y),
		"Z",
	}, " "), true, nil
}

func ellipsePath(cx, cy, rx, ry float64) (string, bool, error) {
	if rx <= 0 || ry <= 0 {
		return "", false, nil
	}
	return fmt.Sprintf("M %s,%s A %s,%s 0 1,0 %s,%s A %s,%s 0 1,0 %s,%s Z",
		num(cx-rx), num(cy),
		num(rx), num(ry), num(cx+rx), num(cy),
		num(rx), num(ry), num(cx-rx), num(cy)), true, nil
}

// polyPath joins a points list; an odd trailing value is dropped.
func polyPath(points string, closed bool) (string, bool, error) {
	p := parseNumbers(points)
	if len(p) < 2 {
		return "", false, nil
	}
	var sb strings.Builder
	for i := 0; i+1 < len(p); i += 2 {
		if i == 0 {
			sb.WriteString("M ")
		} else {
			sb.WriteString(" L ")
		}
		sb.WriteString(num(p[i]))
		sb.WriteByte(',')
		sb.WriteString(num(p[i+1]))
	}
	if closed {
		sb.WriteString(" Z")
	}
	return sb.String(), true, nil
}
