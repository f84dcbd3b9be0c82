// Copyright 2018 The oksvg Authors. All rights reserved.
//
// created: 5/12/2018 by S.R.Wiley
package svg2vd

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"
)

const (
	ObjectBoundingBox GradientUnits = iota
	UserSpaceOnUse
)

const (
	PadSpread SpreadMethod = iota
	ReflectSpread
	RepeatSpread
)

type (
	SpreadMethod  byte
	GradientUnits byte

	// GradStop is one color stop; Offset is in [0, 1].
	GradStop struct {
		Offset  float64
		Color   color.NRGBA
		Opacity float64
	}

	// GradientDef is a linearGradient or radialGradient definition. Coords
	// holds only the coordinate attributes present on the element, so that
	// inheritance can tell an absent value from a default one.
	GradientDef struct {
		ID       string
		IsRadial bool
		Stops    []GradStop
		Coords   map[string]string
		Units    GradientUnits
		Spread   SpreadMethod
		Href     string

		unitsSet, spreadSet bool
	}
)

// TileMode is the VectorDrawable name of the spread method.
func (s SpreadMethod) TileMode() string {
	switch s {
	case ReflectSpread:
		return "mirror"
	case RepeatSpread:
		return "repeat"
	default:
		return "clamp"
	}
}

var (
	linearCoords = []string{"x1", "y1", "x2", "y2"}
	radialCoords = []string{"cx", "cy", "r", "fx", "fy"}
)

// readGradient collects the attributes and stops of a gradient element.
func readGradient(n *SourceNode, sheet StyleSheet) (*GradientDef, []Warning) {
	g := &GradientDef{
		ID:       n.ID(),
		IsRadial: n.Tag == "radialGradient",
		Coords:   make(map[string]string),
		Href:     n.Href(),
	}
	names := linearCoords
	if g.IsRadial {
		names = radialCoords
	}
	for _, k := range names {
		if v, ok := n.Attrs.Lookup(k); ok && strings.TrimSpace(v) != "" {
			g.Coords[k] = strings.TrimSpace(v)
		}
	}
	if v, ok := n.Attrs.Lookup("gradientUnits"); ok {
		switch strings.TrimSpace(v) {
		case "userSpaceOnUse":
			g.Units, g.unitsSet = UserSpaceOnUse, true
		case "objectBoundingBox":
			g.Units, g.unitsSet = ObjectBoundingBox, true
		}
	}
	if v, ok := n.Attrs.Lookup("spreadMethod"); ok {
		switch strings.TrimSpace(v) {
		case "pad":
			g.Spread, g.spreadSet = PadSpread, true
		case "reflect":
			g.Spread, g.spreadSet = ReflectSpread, true
		case "repeat":
			g.Spread, g.spreadSet = RepeatSpread, true
		}
	}
	var warns []Warning
	prev := 0.0
	for _, c := range n.Children {
		if c.Tag != "stop" {
			continue
		}
		stop, err := ParseStop(sheet.Resolve(c))
		if err != nil {
			warns = append(warns, Warning{Kind: BadValue, Element: g.ID, Msg: err.Error()})
		}
		// offsets never decrease along the gradient
		stop.Offset = math.Max(stop.Offset, prev)
		prev = stop.Offset
		g.Stops = append(g.Stops, stop)
	}
	return g, warns
}

// GradientRegistry holds every gradient of a document by id.
type GradientRegistry struct {
	defs     map[string]*GradientDef
	resolved map[string]*GradientDef
	Warnings []Warning
}

// NewGradientRegistry collects the gradient elements found anywhere below
// root, in document order. Stop styles are resolved through sheet.
func NewGradientRegistry(root *SourceNode, sheet StyleSheet) *GradientRegistry {
	r := &GradientRegistry{
		defs:     make(map[string]*GradientDef),
		resolved: make(map[string]*GradientDef),
	}
	root.Walk(func(n *SourceNode) {
		if n.Foreign || (n.Tag != "linearGradient" && n.Tag != "radialGradient") {
			return
		}
		g, warns := readGradient(n, sheet)
		r.Warnings = append(r.Warnings, warns...)
		if g.ID == "" {
			return
		}
		if _, dup := r.defs[g.ID]; !dup {
			r.defs[g.ID] = g
		}
	})
	return r
}

// Resolve returns the gradient id with its href chain applied: the furthest
// ancestor first, then each nearer one, the gradient itself last. A missing
// or revisited reference ends the chain and records a warning.
func (r *GradientRegistry) Resolve(id string) (*GradientDef, bool) {
	if g, ok := r.resolved[id]; ok {
		return g, true
	}
	g, ok := r.defs[id]
	if !ok {
		return nil, false
	}
	chain := []*GradientDef{g}
	seen := map[string]bool{id: true}
	for cur := g; cur.Href != ""; {
		if seen[cur.Href] {
			r.Warnings = append(r.Warnings, Warning{Kind: GradientCycle, Element: id,
				Msg: fmt.Sprintf("reference to %q loops", cur.Href)})
			break
		}
		next, ok := r.defs[cur.Href]
		if !ok {
			r.Warnings = append(r.Warnings, Warning{Kind: GradientMissing, Element: id,
				Msg: fmt.Sprintf("referenced gradient %q not found", cur.Href)})
			break
		}
		seen[cur.Href] = true
		chain = append(chain, next)
		cur = next
	}
	out := &GradientDef{ID: g.ID, IsRadial: g.IsRadial, Href: g.Href, Coords: make(map[string]string)}
	for i := len(chain) - 1; i >= 0; i-- {
		out.inherit(chain[i])
	}
	r.resolved[id] = out
	return out, true
}

func (g *GradientDef) inherit(src *GradientDef) {
	if len(src.Stops) > 0 {
		g.Stops = src.Stops
	}
	for k, v := range src.Coords {
		g.Coords[k] = v
	}
	if src.unitsSet {
		g.Units, g.unitsSet = src.Units, true
	}
	if src.spreadSet {
		g.Spread, g.spreadSet = src.Spread, true
	}
}

// Coordinates maps the gradient geometry into absolute coordinates for a
// shape with bounding box bbox. For a linear gradient the result is
// x1, y1, x2, y2; for a radial one cx, cy, fx, fy, r with the focus placed
// on the center. origin is the viewport transform whose translation shifts
// user space values.
func (g *GradientDef) Coordinates(bbox BoundingBox, origin Matrix2D) (pts [5]float64) {
	x := axis{min: bbox.MinX, size: bbox.W(), offset: origin.E}
	y := axis{min: bbox.MinY, size: bbox.H(), offset: origin.F}
	if !g.IsRadial {
		pts[0] = g.coord("x1", "0", x)
		pts[1] = g.coord("y1", "0", y)
		pts[2] = g.coord("x2", "1", x)
		pts[3] = g.coord("y2", "0", y)
		return
	}
	r := axis{size: math.Hypot(bbox.W(), bbox.H())}
	pts[0] = g.coord("cx", "0.5", x)
	pts[1] = g.coord("cy", "0.5", y)
	pts[2], pts[3] = pts[0], pts[1]
	pts[4] = g.coord("r", "0.5", r)
	return
}

type axis struct {
	min, size, offset float64
}

func (g *GradientDef) coord(name, def string, a axis) float64 {
	raw, ok := g.Coords[name]
	if !ok {
		// defaults are bounding box fractions whatever the units
		f, _ := strconv.ParseFloat(def, 64)
		return a.min + f*a.size
	}
	if strings.HasSuffix(raw, "%") {
		f, _ := parseFloat(strings.TrimSuffix(raw, "%"))
		return a.min + f/100*a.size
	}
	f, err := parseFloat(strings.TrimSuffix(raw, "px"))
	if err != nil {
		return a.min
	}
	if g.Units == ObjectBoundingBox {
		return a.min + f*a.size
	}
	return f + a.offset
}
