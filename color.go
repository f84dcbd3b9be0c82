// Copyright 2018 The oksvg Authors. All rights reserved.

package svg2vd

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
	"golang.org/x/image/colornames"
)

var errBadColor = errors.New("unrecognized color")

func clamp[T constraints.Ordered](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ParseSVGColorNum reads a hex color string such as #FBD9BD, #FB9 or the
// four and eight digit forms carrying alpha.
func ParseSVGColorNum(colorStr string) (c color.NRGBA, err error) {
	s := strings.TrimPrefix(colorStr, "#")
	switch len(s) {
	case 3, 4:
		// SVG specs say duplicate characters in case of 3 digit hex number
		b := make([]byte, 0, 8)
		for i := 0; i < len(s); i++ {
			b = append(b, s[i], s[i])
		}
		s = string(b)
	case 6, 8:
	default:
		return c, fmt.Errorf("%w: %q", errBadColor, colorStr)
	}
	c.A = 0xFF
	for i, p := range []*uint8{&c.R, &c.G, &c.B, &c.A} {
		if 2*i+2 > len(s) {
			break
		}
		t, err := strconv.ParseUint(s[2*i:2*i+2], 16, 8)
		if err != nil {
			return color.NRGBA{}, fmt.Errorf("%w: %q", errBadColor, colorStr)
		}
		*p = uint8(t)
	}
	return c, nil
}

// ParseSVGColor parses an SVG color string in hex, rgb(), rgba() or named
// form, including all SVG1.1 names obtained from the colornames package.
// A nil color signals that the paint is off: "none" and "transparent".
// currentColor and url() references are resolved by the caller.
func ParseSVGColor(colorStr string) (color.Color, error) {
	v := strings.ToLower(strings.TrimSpace(colorStr))
	switch v {
	case "", "none", "transparent":
		return nil, nil
	}
	if cn, ok := colornames.Map[v]; ok {
		return color.NRGBA{cn.R, cn.G, cn.B, 0xFF}, nil
	}
	if v[0] == '#' {
		return ParseSVGColorNum(v)
	}
	var args string
	switch {
	case strings.HasPrefix(v, "rgba(") && strings.HasSuffix(v, ")"):
		args = v[5 : len(v)-1]
	case strings.HasPrefix(v, "rgb(") && strings.HasSuffix(v, ")"):
		args = v[4 : len(v)-1]
	default:
		return nil, fmt.Errorf("%w: %q", errBadColor, colorStr)
	}
	vals := strings.FieldsFunc(args, func(r rune) bool {
		return r == ',' || r == ' ' || r == '/' || r == '\t'
	})
	if len(vals) != 3 && len(vals) != 4 {
		return nil, fmt.Errorf("%w: %q", errBadColor, colorStr)
	}
	var c color.NRGBA
	c.A = 0xFF
	for i, p := range []*uint8{&c.R, &c.G, &c.B} {
		n, err := parseColorValue(vals[i])
		if err != nil {
			return nil, fmt.Errorf("%w: %q", errBadColor, colorStr)
		}
		*p = n
	}
	if len(vals) == 4 {
		a, err := readFraction(vals[3])
		if err != nil {
			return nil, fmt.Errorf("%w: %q", errBadColor, colorStr)
		}
		c.A = uint8(math.Round(clamp(a, 0, 1) * 0xFF))
	}
	return c, nil
}

// parseColorValue reads one rgb() channel, either 0-255 or a percentage.
func parseColorValue(v string) (uint8, error) {
	v = strings.TrimSpace(v)
	if strings.HasSuffix(v, "%") {
		f, err := parseFloat(v[:len(v)-1])
		if err != nil {
			return 0, err
		}
		return uint8(math.Round(clamp(f, 0, 100) * 0xFF / 100)), nil
	}
	f, err := parseFloat(v)
	if err != nil {
		return 0, err
	}
	return uint8(math.Round(clamp(f, 0, 255))), nil
}

// readFraction reads a number or a percentage as a fraction.
func readFraction(v string) (float64, error) {
	v = strings.TrimSpace(v)
	d := 1.0
	if strings.HasSuffix(v, "%") {
		d = 100
		v = strings.TrimSuffix(v, "%")
	}
	f, err := parseFloat(v)
	return f / d, err
}

// ARGB encodes c as the #AARRGGBB token used by VectorDrawable, with the
// alpha channel multiplied by opacity.
func ARGB(c color.NRGBA, opacity float64) string {
	a := uint8(math.Round(float64(c.A) * clamp(opacity, 0, 1)))
	return fmt.Sprintf("#%02X%02X%02X%02X", a, c.R, c.G, c.B)
}
