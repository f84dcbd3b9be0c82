// Copyright 2017 The oksvg Authors. All rights reserved.
//
// The svg2vd package converts SVG documents into Android VectorDrawable
// XML. Nested transforms, gradients and the style cascade are baked into a
// flat list of paths in absolute viewport coordinates. Clipping, masks,
// filters, markers, patterns, text and embedded images are not converted.

package svg2vd

import (
	"fmt"
	"image/color"
	"io"
	"math"
	"os"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/exp/slices"
)

var (
	// skippedTags are never drawn; definitions among them are read by the
	// collection passes instead.
	skippedTags = []string{
		"defs", "style", "metadata", "title", "desc",
		"linearGradient", "radialGradient", "stop",
		"symbol", "clipPath", "mask", "pattern", "filter", "marker", "script",
	}
	// unsupportedTags are skipped with a warning.
	unsupportedTags = []string{"text", "image", "foreignObject"}
	containerTags   = []string{"g", "a", "switch", "svg"}
	shapeTags       = []string{"rect", "circle", "ellipse", "line", "polyline", "polygon", "path"}
)

// Converter turns SVG documents into VectorDrawables. It holds no per
// document state and is safe for concurrent use.
type Converter struct {
	logger      *zap.Logger
	mode        ErrorMode
	defaultSize float64
}

// NewConverter returns a Converter configured by opts.
func NewConverter(opts ...Option) *Converter {
	c := &Converter{
		logger:      zap.NewNop().Named("svg2vd"),
		mode:        WarnErrorMode,
		defaultSize: 24,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

var defaultConverter = NewConverter()

// Convert converts an SVG document to VectorDrawable XML with the default
// Converter.
func Convert(src string) (string, error) {
	return defaultConverter.Convert(src)
}

// Convert converts an SVG document to VectorDrawable XML.
func (c *Converter) Convert(src string) (string, error) {
	vd, err := c.Decode(src)
	if err != nil {
		return "", err
	}
	return vd.String(), nil
}

// Decode converts an SVG document and returns the structured result along
// with the warnings raised on the way.
func (c *Converter) Decode(src string) (*VectorDrawable, error) {
	return c.DecodeReader(strings.NewReader(src))
}

// ReadFile converts the named SVG file.
func (c *Converter) ReadFile(name string) (*VectorDrawable, error) {
	fin, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer fin.Close()
	return c.DecodeReader(fin)
}

// DecodeReader converts the SVG document read from r.
func (c *Converter) DecodeReader(r io.Reader) (*VectorDrawable, error) {
	root, err := ParseSource(r)
	if err != nil {
		return nil, err
	}
	cursor := newIconCursor(c, root)
	cursor.drawRoot(root)
	if cursor.err != nil {
		return nil, cursor.err
	}
	c.logger.Debug("converted document",
		zap.Int("paths", len(cursor.vd.Paths)),
		zap.Int("warnings", len(cursor.vd.Warnings)))
	return cursor.vd, nil
}

// drawContext is what a node inherits from its ancestors. It is passed by
// value; children get a fresh copy.
type drawContext struct {
	m       Matrix2D
	style   StyleSet
	opacity float64
}

// iconCursor holds the state of one conversion.
type iconCursor struct {
	conv   *Converter
	sheet  StyleSheet
	grads  *GradientRegistry
	ids    map[string]*SourceNode
	using  map[*SourceNode]bool
	origin Matrix2D
	vd     *VectorDrawable
	err    error
}

func newIconCursor(conv *Converter, root *SourceNode) *iconCursor {
	c := &iconCursor{
		conv:  conv,
		ids:   make(map[string]*SourceNode),
		using: make(map[*SourceNode]bool),
		vd:    &VectorDrawable{},
	}
	var css strings.Builder
	root.Walk(func(n *SourceNode) {
		if n.Foreign {
			return
		}
		if n.Tag == "style" {
			css.WriteString(n.Text)
			css.WriteByte('\n')
		}
		if id := n.ID(); id != "" {
			if _, dup := c.ids[id]; !dup {
				c.ids[id] = n
			}
		}
	})
	c.sheet = ParseStyleSheet(css.String())
	c.grads = NewGradientRegistry(root, c.sheet)
	c.flushGradientWarnings()
	return c
}

func label(n *SourceNode) string {
	if id := n.ID(); id != "" {
		return n.Tag + "#" + id
	}
	return n.Tag
}

// warn records w and applies the error mode.
func (c *iconCursor) warn(w Warning) {
	c.vd.Warnings = append(c.vd.Warnings, w)
	switch c.conv.mode {
	case WarnErrorMode:
		c.conv.logger.Warn("skipped input",
			zap.Stringer("kind", w.Kind),
			zap.String("element", w.Element),
			zap.String("msg", w.Msg))
	case StrictErrorMode:
		if c.err == nil {
			c.err = fmt.Errorf("%w: %s", ErrStrict, w)
		}
	}
}

func (c *iconCursor) warnf(kind WarningKind, n *SourceNode, format string, args ...interface{}) {
	c.warn(Warning{Kind: kind, Element: label(n), Msg: fmt.Sprintf(format, args...)})
}

func (c *iconCursor) flushGradientWarnings() {
	for _, w := range c.grads.Warnings {
		c.warn(w)
	}
	c.grads.Warnings = c.grads.Warnings[:0]
}

// readDimension reads a width or height, dropping a unit suffix.
// Percentages are relative to an unknown container and yield false.
func readDimension(v string) (float64, bool) {
	v = strings.TrimSpace(v)
	if v == "" || strings.HasSuffix(v, "%") {
		return 0, false
	}
	v = strings.TrimRightFunc(v, func(r rune) bool {
		return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
	})
	f, err := parseLength(v)
	if err != nil || f <= 0 {
		return 0, false
	}
	return f, true
}

// drawRoot sets up the viewport from the root element and draws its
// children.
func (c *iconCursor) drawRoot(root *SourceNode) {
	var vbX, vbY, vbW, vbH float64
	width, hasW := readDimension(root.Attrs.Get("width", ""))
	height, hasH := readDimension(root.Attrs.Get("height", ""))
	if vb := parseNumbers(root.Attrs.Get("viewBox", "")); len(vb) == 4 && vb[2] > 0 && vb[3] > 0 {
		vbX, vbY, vbW, vbH = vb[0], vb[1], vb[2], vb[3]
	} else {
		if root.Attrs.Get("viewBox", "") != "" {
			c.warnf(BadValue, root, "ignoring viewBox %q", root.Attrs.Get("viewBox", ""))
		}
		vbW, vbH = c.conv.defaultSize, c.conv.defaultSize
		if hasW {
			vbW = width
		}
		if hasH {
			vbH = height
		}
	}
	c.vd.ViewportWidth, c.vd.ViewportHeight = vbW, vbH
	c.vd.Width, c.vd.Height = vbW, vbH
	if hasW {
		c.vd.Width = width
	}
	if hasH {
		c.vd.Height = height
	}

	c.origin = Identity.Translate(-vbX, -vbY)
	style := Cascade(StyleSet{}, c.sheet.Resolve(root))
	if style.hidden() {
		return
	}
	ctx := drawContext{
		m:       c.origin.Mult(ParseTransform(root.Attrs.Get("transform", ""))),
		style:   style,
		opacity: clamp(c.number(root, style, "opacity", 1, true), 0, 1),
	}
	for _, ch := range root.Children {
		c.draw(ch, ctx, false)
	}
}

// draw visits n under the inherited context. viaUse is set when n is the
// target of a use element, which makes symbols drawable.
func (c *iconCursor) draw(n *SourceNode, parent drawContext, viaUse bool) {
	if c.err != nil || n.Foreign {
		return
	}
	tag := n.Tag
	isContainer := slices.Contains(containerTags, tag) || (viaUse && tag == "symbol")
	switch {
	case isContainer, tag == "use", slices.Contains(shapeTags, tag):
	case slices.Contains(skippedTags, tag):
		return
	case slices.Contains(unsupportedTags, tag):
		c.warnf(UnknownElement, n, "<%s> is not supported", tag)
		return
	default:
		c.warnf(UnknownElement, n, "cannot process svg element <%s>", tag)
		return
	}

	style := Cascade(parent.style, c.sheet.Resolve(n))
	if style.hidden() {
		return
	}
	ctx := drawContext{
		m:       parent.m.Mult(ParseTransform(n.Attrs.Get("transform", ""))),
		style:   style,
		opacity: parent.opacity * clamp(c.number(n, style, "opacity", 1, true), 0, 1),
	}
	switch {
	case tag == "use":
		c.drawUse(n, ctx)
	case isContainer:
		if tag == "svg" {
			xy, err := lengths(n, "x", "y")
			if err != nil {
				c.warnf(BadValue, n, "%v", err)
			} else {
				ctx.m = ctx.m.Translate(xy[0], xy[1])
			}
		}
		for _, ch := range n.Children {
			if c.err != nil {
				return
			}
			c.draw(ch, ctx, false)
			// a switch renders its first direct child only
			if tag == "switch" && !ch.Foreign && !slices.Contains(skippedTags, ch.Tag) {
				return
			}
		}
	default:
		c.drawShape(n, ctx)
	}
}

// drawUse draws the element referenced by n as if it were a child of n,
// shifted by n's x and y.
func (c *iconCursor) drawUse(n *SourceNode, ctx drawContext) {
	id := n.Href()
	ref, ok := c.ids[id]
	if !ok {
		c.warnf(BadReference, n, "referenced element %q not found", id)
		return
	}
	if c.using[ref] {
		c.warnf(BadReference, n, "reference to %q loops", id)
		return
	}
	xy, err := lengths(n, "x", "y")
	if err != nil {
		c.warnf(BadValue, n, "%v", err)
		return
	}
	ctx.m = ctx.m.Translate(xy[0], xy[1])
	c.using[ref] = true
	c.draw(ref, ctx, true)
	delete(c.using, ref)
}

// drawShape flattens a leaf element and appends it to the output when it
// paints anything.
func (c *iconCursor) drawShape(n *SourceNode, ctx drawContext) {
	if ctx.style.invisible() {
		return
	}
	d, ok, err := ShapePath(n)
	if err != nil {
		c.warnf(BadValue, n, "%v", err)
		return
	}
	if !ok {
		return
	}
	path, bbox, warns := FlattenPath(d, ctx.m)
	for _, w := range warns {
		w.Element = label(n)
		c.warn(w)
	}
	if len(path) == 0 {
		return
	}
	vp := VectorPath{PathData: path.String(), FillAlpha: 1, StrokeAlpha: 1}
	fill := c.readPaint(n, ctx.style, "fill", "black", bbox)
	fillAlpha := ctx.opacity * clamp(c.number(n, ctx.style, "fill-opacity", 1, true), 0, 1)
	if fillAlpha <= 0 {
		fill = paint{}
	}
	stroke := c.readPaint(n, ctx.style, "stroke", "none", bbox)
	strokeAlpha := ctx.opacity * clamp(c.number(n, ctx.style, "stroke-opacity", 1, true), 0, 1)
	strokeWidth := c.number(n, ctx.style, "stroke-width", 1, false) * math.Sqrt(math.Abs(ctx.m.Determinant()))
	if strokeWidth <= 0 || strokeAlpha <= 0 {
		stroke = paint{}
	}
	if fill.none() && stroke.none() {
		return
	}
	if !fill.none() {
		vp.FillColor, vp.FillGradient = fill.color, fill.gradient
		vp.FillAlpha = fillAlpha
		if strings.TrimSpace(ctx.style.Get("fill-rule", "")) == "evenodd" {
			vp.FillType = "evenOdd"
		}
	}
	if !stroke.none() {
		vp.StrokeColor, vp.StrokeGradient = stroke.color, stroke.gradient
		vp.StrokeWidth = strokeWidth
		vp.StrokeAlpha = strokeAlpha
		vp.StrokeLineCap = lineCap(ctx.style.Get("stroke-linecap", ""))
		vp.StrokeLineJoin = lineJoin(ctx.style.Get("stroke-linejoin", ""))
		vp.StrokeMiterLimit = c.number(n, ctx.style, "stroke-miterlimit", 4, false)
	}
	c.vd.Paths = append(c.vd.Paths, vp)
}

// paint is a resolved fill or stroke; the zero value paints nothing.
type paint struct {
	color    string
	gradient *VectorGradient
}

// none reports whether p leaves the shape untouched: no color, a color
// with a zero alpha byte, or a gradient whose stops are all clear.
func (p paint) none() bool {
	if p.gradient != nil {
		for _, it := range p.gradient.Items {
			if !clearARGB(it.Color) {
				return false
			}
		}
		return true
	}
	return clearARGB(p.color)
}

func clearARGB(c string) bool {
	return c == "" || strings.HasPrefix(c, "#00")
}

// number reads a numeric style property of n. Unreadable values are
// reported and replaced by def.
func (c *iconCursor) number(n *SourceNode, style StyleSet, key string, def float64, frac bool) float64 {
	f, ok, err := style.readNumber(key, frac)
	if !ok {
		return def
	}
	if err != nil {
		c.warnf(BadValue, n, "%s: %v", key, err)
		return def
	}
	return f
}

// readPaint resolves the fill or stroke property of a shape.
func (c *iconCursor) readPaint(n *SourceNode, style StyleSet, key, def string, bbox BoundingBox) paint {
	v := strings.TrimSpace(style.Get(key, def))
	if strings.HasPrefix(v, "url(") {
		id, fallback := readURL(v)
		g, ok := c.grads.Resolve(id)
		c.flushGradientWarnings()
		switch {
		case !ok:
			c.warnf(GradientMissing, n, "%s references missing gradient %q", key, id)
			if fallback == "" {
				return paint{}
			}
			v = fallback
		case len(g.Stops) == 0:
			return paint{}
		case len(g.Stops) == 1:
			return paint{color: g.Stops[0].ARGB()}
		default:
			return paint{gradient: vectorGradient(g, bbox, c.origin)}
		}
	}
	if strings.EqualFold(v, "currentColor") {
		v = style.Get("color", "black")
	}
	col, err := ParseSVGColor(v)
	if err != nil {
		c.warnf(BadValue, n, "%s: %v", key, err)
		if col, err = ParseSVGColor(def); err != nil {
			return paint{}
		}
	}
	if col == nil {
		return paint{}
	}
	return paint{color: ARGB(col.(color.NRGBA), 1)}
}

// readURL splits "url(#id) fallback" into the id and the fallback color.
func readURL(v string) (id, fallback string) {
	end := strings.IndexByte(v, ')')
	if end < 0 {
		return strings.TrimPrefix(strings.TrimSpace(v[4:]), "#"), ""
	}
	id = strings.Trim(strings.TrimSpace(v[4:end]), `"'`)
	return strings.TrimPrefix(id, "#"), strings.TrimSpace(v[end+1:])
}

func vectorGradient(g *GradientDef, bbox BoundingBox, origin Matrix2D) *VectorGradient {
	pts := g.Coordinates(bbox, origin)
	vg := &VectorGradient{Radial: g.IsRadial, TileMode: g.Spread.TileMode()}
	if g.IsRadial {
		vg.CenterX, vg.CenterY, vg.Radius = pts[0], pts[1], pts[4]
	} else {
		vg.StartX, vg.StartY, vg.EndX, vg.EndY = pts[0], pts[1], pts[2], pts[3]
	}
	for _, s := range g.Stops {
		vg.Items = append(vg.Items, GradientItem{Offset: s.Offset, Color: s.ARGB()})
	}
	return vg
}

func lineCap(v string) string {
	switch strings.TrimSpace(v) {
	case "round":
		return "round"
	case "square":
		return "square"
	default:
		return "butt"
	}
}

func lineJoin(v string) string {
	switch strings.TrimSpace(v) {
	case "round", "arc":
		return "round"
	case "bevel":
		return "bevel"
	default:
		return "miter"
	}
}
