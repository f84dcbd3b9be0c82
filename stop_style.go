package svg2vd

import (
	"fmt"
	"image/color"
	"strings"
)

// ParseStop reads a stop from its resolved style: offset, stop-color and
// stop-opacity, whether given as attributes or in a style attribute.
// Unreadable values keep their defaults and are reported in err.
func ParseStop(s StyleSet) (stop GradStop, err error) {
	stop.Color = color.NRGBA{A: 0xFF}
	stop.Opacity = 1
	if v, ok := s["offset"]; ok {
		f, perr := readFraction(v)
		if perr != nil {
			err = fmt.Errorf("stop offset %q: %w", v, perr)
		}
		stop.Offset = clamp(f, 0, 1)
	}
	if v, ok := s["stop-color"]; ok {
		if strings.EqualFold(v, "currentColor") {
			v = s.Get("color", "black")
		}
		c, perr := ParseSVGColor(v)
		switch {
		case perr != nil:
			err = fmt.Errorf("stop color: %w", perr)
		case c == nil:
			stop.Color = color.NRGBA{}
		default:
			stop.Color = c.(color.NRGBA)
		}
	}
	if v, ok := s["stop-opacity"]; ok {
		f, perr := readFraction(v)
		if perr != nil {
			err = fmt.Errorf("stop opacity %q: %w", v, perr)
			f = 1
		}
		stop.Opacity = clamp(f, 0, 1)
	}
	return stop, err
}

// ARGB is the stop color with its opacity folded into the alpha byte.
func (s GradStop) ARGB() string {
	return ARGB(s.Color, s.Opacity)
}
