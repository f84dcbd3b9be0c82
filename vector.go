// Copyright 2018 The oksvg Authors. All rights reserved.

package svg2vd

import (
	"bytes"
	"encoding/xml"
	"io"
	"strings"
)

const (
	androidNS = "http://schemas.android.com/apk/res/android"
	aaptNS    = "http://schemas.android.com/aapt"
)

type (
	// VectorDrawable is the converted document.
	VectorDrawable struct {
		Width, Height                 float64 // in dp
		ViewportWidth, ViewportHeight float64
		Paths                         []VectorPath
		Warnings                      []Warning
	}

	// VectorPath is one flattened drawable. Empty colors are omitted and
	// alphas of 1 are left out of the output.
	VectorPath struct {
		PathData       string
		FillColor      string
		FillGradient   *VectorGradient
		FillAlpha      float64
		FillType       string
		StrokeColor    string
		StrokeGradient *VectorGradient
		StrokeWidth    float64
		StrokeAlpha    float64
		StrokeLineCap  string
		StrokeLineJoin string

		// StrokeMiterLimit is written when it differs from 4.
		StrokeMiterLimit float64
	}

	// VectorGradient is the body of an aapt:attr gradient block. Linear
	// gradients use the start and end points, radial ones the center and
	// radius.
	VectorGradient struct {
		Radial           bool
		StartX, StartY   float64
		EndX, EndY       float64
		CenterX, CenterY float64
		Radius           float64
		TileMode         string
		Items            []GradientItem
	}

	GradientItem struct {
		Offset float64
		Color  string
	}
)

// HasGradient reports whether any path paints with a gradient.
func (vd *VectorDrawable) HasGradient() bool {
	for _, p := range vd.Paths {
		if p.FillGradient != nil || p.StrokeGradient != nil {
			return true
		}
	}
	return false
}

// xmlWriter writes indented markup; attribute values are escaped.
type xmlWriter struct {
	bytes.Buffer
	depth int
}

func (w *xmlWriter) indent() {
	w.WriteString(strings.Repeat("    ", w.depth))
}

func (w *xmlWriter) attr(name, value string) {
	w.WriteByte('\n')
	w.indent()
	w.WriteString("    ")
	w.WriteString(name)
	w.WriteString(`="`)
	_ = xml.EscapeText(w, []byte(value))
	w.WriteByte('"')
}

func (w *xmlWriter) open(tag string) {
	w.indent()
	w.WriteByte('<')
	w.WriteString(tag)
}

// WriteTo writes the VectorDrawable XML document to out.
func (vd *VectorDrawable) WriteTo(out io.Writer) (int64, error) {
	w := &xmlWriter{}
	w.open("vector xmlns:android=\"" + androidNS + "\"")
	if vd.HasGradient() {
		w.attr("xmlns:aapt", aaptNS)
	}
	w.attr("android:width", formatNum(vd.Width)+"dp")
	w.attr("android:height", formatNum(vd.Height)+"dp")
	w.attr("android:viewportWidth", formatNum(vd.ViewportWidth))
	w.attr("android:viewportHeight", formatNum(vd.ViewportHeight))
	w.WriteString(">\n")
	w.depth++
	for i := range vd.Paths {
		vd.Paths[i].write(w)
	}
	w.depth--
	w.WriteString("</vector>\n")
	return w.WriteTo(out)
}

func (vd *VectorDrawable) String() string {
	var sb strings.Builder
	_, _ = vd.WriteTo(&sb)
	return sb.String()
}

func (p *VectorPath) write(w *xmlWriter) {
	w.open("path")
	w.attr("android:pathData", p.PathData)
	if p.FillColor != "" && p.FillGradient == nil {
		w.attr("android:fillColor", p.FillColor)
	}
	if p.FillAlpha != 1 {
		w.attr("android:fillAlpha", formatNum(p.FillAlpha))
	}
	if p.FillType != "" {
		w.attr("android:fillType", p.FillType)
	}
	if p.StrokeColor != "" || p.StrokeGradient != nil {
		if p.StrokeGradient == nil {
			w.attr("android:strokeColor", p.StrokeColor)
		}
		w.attr("android:strokeWidth", formatNum(p.StrokeWidth))
		if p.StrokeAlpha != 1 {
			w.attr("android:strokeAlpha", formatNum(p.StrokeAlpha))
		}
		if p.StrokeLineCap != "" {
			w.attr("android:strokeLineCap", p.StrokeLineCap)
		}
		if p.StrokeLineJoin != "" {
			w.attr("android:strokeLineJoin", p.StrokeLineJoin)
		}
		if p.StrokeMiterLimit != 0 && p.StrokeMiterLimit != 4 {
			w.attr("android:strokeMiterLimit", formatNum(p.StrokeMiterLimit))
		}
	}
	if p.FillGradient == nil && p.StrokeGradient == nil {
		w.WriteString("/>\n")
		return
	}
	w.WriteString(">\n")
	w.depth++
	if p.FillGradient != nil {
		p.FillGradient.write(w, "android:fillColor")
	}
	if p.StrokeGradient != nil {
		p.StrokeGradient.write(w, "android:strokeColor")
	}
	w.depth--
	w.indent()
	w.WriteString("</path>\n")
}

func (g *VectorGradient) write(w *xmlWriter, target string) {
	w.open(`aapt:attr name="` + target + `">` + "\n")
	w.depth++
	w.open("gradient")
	if g.Radial {
		w.attr("android:type", "radial")
		w.attr("android:centerX", formatNum(g.CenterX))
		w.attr("android:centerY", formatNum(g.CenterY))
		w.attr("android:gradientRadius", formatNum(g.Radius))
	} else {
		w.attr("android:type", "linear")
		w.attr("android:startX", formatNum(g.StartX))
		w.attr("android:startY", formatNum(g.StartY))
		w.attr("android:endX", formatNum(g.EndX))
		w.attr("android:endY", formatNum(g.EndY))
	}
	if g.TileMode != "" {
		w.attr("android:tileMode", g.TileMode)
	}
	w.WriteString(">\n")
	w.depth++
	for _, it := range g.Items {
		w.open("item")
		w.WriteString(` android:offset="` + formatNum(it.Offset) + `"`)
		w.WriteString(` android:color="` + it.Color + `"/>` + "\n")
	}
	w.depth--
	w.indent()
	w.WriteString("</gradient>\n")
	w.depth--
	w.indent()
	w.WriteString("</aapt:attr>\n")
}
