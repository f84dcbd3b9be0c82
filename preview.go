// Copyright 2018 The oksvg Authors. All rights reserved.

package svg2vd

import (
	"image"
	"image/color"
	"math"
	"strings"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"
)

// Render rasterizes a converted drawable into a w by h image, stretching
// the viewport over the whole image as a device would.
func Render(vd *VectorDrawable, w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	if vd.ViewportWidth <= 0 || vd.ViewportHeight <= 0 {
		return img
	}
	scanner := rasterx.NewScannerGV(w, h, img, img.Bounds())
	d := rasterx.NewDasher(w, h, scanner)
	m := Identity.Scale(float64(w)/vd.ViewportWidth, float64(h)/vd.ViewportHeight)
	for i := range vd.Paths {
		drawVectorPath(d, &vd.Paths[i], m)
	}
	return img
}

func drawVectorPath(d *rasterx.Dasher, vp *VectorPath, m Matrix2D) {
	// path data is already absolute, so this only rebuilds the operations
	p, _, _ := FlattenPath(vp.PathData, Identity)
	if vp.FillColor != "" || vp.FillGradient != nil {
		d.Clear()
		rf := &d.Filler
		rf.SetWinding(vp.FillType != "evenOdd")
		addPath(rf, p, m)
		rf.SetColor(rasterPaint(vp.FillColor, vp.FillGradient, vp.FillAlpha, m))
		rf.Draw()
		// default is true
		rf.SetWinding(true)
	}
	if vp.StrokeColor != "" || vp.StrokeGradient != nil {
		d.Clear()
		width := vp.StrokeWidth * math.Sqrt(math.Abs(m.Determinant()))
		miter := vp.StrokeMiterLimit
		if miter <= 0 {
			miter = 4
		}
		capFn := rasterCap(vp.StrokeLineCap)
		d.SetStroke(fixed.Int26_6(width*64), fixed.Int26_6(miter*64),
			capFn, capFn, rasterx.FlatGap, rasterJoin(vp.StrokeLineJoin), nil, 0)
		addPath(d, p, m)
		d.SetColor(rasterPaint(vp.StrokeColor, vp.StrokeGradient, vp.StrokeAlpha, m))
		d.Draw()
	}
}

func toFixedP(x, y float64) fixed.Point26_6 {
	return fixed.Point26_6{X: fixed.Int26_6(x * 64), Y: fixed.Int26_6(y * 64)}
}

// addPath sends p, mapped through m, to a rasterx path consumer.
func addPath(a rasterx.Adder, p Path, m Matrix2D) {
	var (
		px, py, sx, sy float64
		open           bool
	)
	begin := func() {
		if !open {
			a.Start(toFixedP(px, py))
			sx, sy = px, py
			open = true
		}
	}
	for _, op := range p {
		switch op := op.(type) {
		case MoveTo:
			if open {
				a.Stop(false)
				open = false
			}
			px, py = m.Transform(op[0], op[1])
			begin()
		case LineTo:
			begin()
			px, py = m.Transform(op[0], op[1])
			a.Line(toFixedP(px, py))
		case QuadTo:
			begin()
			cx, cy := m.Transform(op[0][0], op[0][1])
			px, py = m.Transform(op[1][0], op[1][1])
			a.QuadBezier(toFixedP(cx, cy), toFixedP(px, py))
		case CubicTo:
			begin()
			c1x, c1y := m.Transform(op[0][0], op[0][1])
			c2x, c2y := m.Transform(op[1][0], op[1][1])
			px, py = m.Transform(op[2][0], op[2][1])
			a.CubeBezier(toFixedP(c1x, c1y), toFixedP(c2x, c2y), toFixedP(px, py))
		case ArcTo:
			begin()
			px, py = addArc(a, op, m, px, py)
		case Close:
			if open {
				a.Stop(true)
				open = false
			}
			px, py = sx, sy
		}
	}
	if open {
		a.Stop(false)
	}
}

func addArc(a rasterx.Adder, op ArcTo, m Matrix2D, px, py float64) (lx, ly float64) {
	rx, ry, rot := m.ArcParams(op.Rx, op.Ry, op.Rot)
	x, y := m.Transform(op.To[0], op.To[1])
	sweep := op.Sweep
	if m.Determinant() < 0 {
		sweep = !sweep
	}
	points := []float64{rx, ry, rot, 0, 0, x, y}
	if op.Large {
		points[3] = 1
	}
	if sweep {
		points[4] = 1
	}
	cx, cy := rasterx.FindEllipseCenter(&points[0], &points[1], rot*math.Pi/180, px, py,
		x, y, points[4] == 0, points[3] == 0)
	return rasterx.AddArc(points, cx, cy, px, py, a)
}

func rasterCap(v string) rasterx.CapFunc {
	switch v {
	case "round":
		return rasterx.RoundCap
	case "square":
		return rasterx.SquareCap
	default:
		return rasterx.ButtCap
	}
}

func rasterJoin(v string) rasterx.JoinMode {
	switch v {
	case "round":
		return rasterx.Round
	case "bevel":
		return rasterx.Bevel
	default:
		return rasterx.Miter
	}
}

// parseARGB reads a #AARRGGBB token.
func parseARGB(s string) color.NRGBA {
	c, err := ParseSVGColorNum(s)
	if err != nil {
		return color.NRGBA{}
	}
	if len(strings.TrimPrefix(s, "#")) == 8 {
		// the alpha byte comes first
		c = color.NRGBA{R: c.G, G: c.B, B: c.A, A: c.R}
	}
	return c
}

func applyOpacity(c color.NRGBA, opacity float64) color.NRGBA {
	c.A = uint8(math.Round(float64(c.A) * clamp(opacity, 0, 1)))
	return c
}

// rasterPaint builds the rasterx color or color function of a paint.
func rasterPaint(argb string, vg *VectorGradient, opacity float64, m Matrix2D) interface{} {
	if vg == nil {
		return applyOpacity(parseARGB(argb), opacity)
	}
	g := rasterx.Gradient{
		Matrix:   rasterx.Identity,
		Units:    rasterx.UserSpaceOnUse,
		IsRadial: vg.Radial,
	}
	if vg.Radial {
		cx, cy := m.Transform(vg.CenterX, vg.CenterY)
		g.Points = [5]float64{cx, cy, cx, cy, vg.Radius * math.Sqrt(math.Abs(m.Determinant()))}
	} else {
		x1, y1 := m.Transform(vg.StartX, vg.StartY)
		x2, y2 := m.Transform(vg.EndX, vg.EndY)
		g.Points = [5]float64{x1, y1, x2, y2, 0}
	}
	switch vg.TileMode {
	case "mirror":
		g.Spread = rasterx.ReflectSpread
	case "repeat":
		g.Spread = rasterx.RepeatSpread
	default:
		g.Spread = rasterx.PadSpread
	}
	for _, it := range vg.Items {
		c := parseARGB(it.Color)
		g.Stops = append(g.Stops, rasterx.GradStop{
			StopColor: color.NRGBA{c.R, c.G, c.B, 0xFF},
			Offset:    it.Offset,
			Opacity:   float64(c.A) / 0xFF,
		})
	}
	return g.GetColorFunction(clamp(opacity, 0, 1))
}

// RenderSource rasterizes an SVG document directly, for comparison with
// the Render output of its conversion.
func RenderSource(src string, w, h int) (*image.RGBA, error) {
	icon, err := oksvg.ReadIconStream(strings.NewReader(src), oksvg.IgnoreErrorMode)
	if err != nil {
		return nil, err
	}
	icon.SetTarget(0, 0, float64(w), float64(h))
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	scanner := rasterx.NewScannerGV(w, h, img, img.Bounds())
	raster := rasterx.NewDasher(w, h, scanner)
	icon.Draw(raster, 1.0)
	return img, nil
}

// Diff returns the fraction of pixels whose channels differ by more than a
// small tolerance. Images of different sizes differ completely.
func Diff(a, b image.Image) float64 {
	ra, rb := a.Bounds(), b.Bounds()
	if ra.Dx() != rb.Dx() || ra.Dy() != rb.Dy() {
		return 1
	}
	if ra.Empty() {
		return 0
	}
	const tolerance = 0x0800
	differ := 0
	for y := 0; y < ra.Dy(); y++ {
		for x := 0; x < ra.Dx(); x++ {
			r1, g1, b1, a1 := a.At(ra.Min.X+x, ra.Min.Y+y).RGBA()
			r2, g2, b2, a2 := b.At(rb.Min.X+x, rb.Min.Y+y).RGBA()
			if absDiff(r1, r2) > tolerance || absDiff(g1, g2) > tolerance ||
				absDiff(b1, b2) > tolerance || absDiff(a1, a2) > tolerance {
				differ++
			}
		}
	}
	return float64(differ) / float64(ra.Dx()*ra.Dy())
}

func absDiff(a, b uint32) uint32 {
	if a > b {
		return a - b
	}
	return b - a
}
