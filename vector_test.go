// Copyright 2018 The oksvg Authors. All rights reserved.

package svg2vd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestVectorDrawableWriteTo(t *testing.T) {
	vd := &VectorDrawable{
		Width:          48,
		Height:         24.5,
		ViewportWidth:  24,
		ViewportHeight: 12,
		Paths: []VectorPath{
			{
				PathData:         "M0,0 L1,1",
				FillColor:        "#FF000000",
				FillAlpha:        0.25,
				FillType:         "evenOdd",
				StrokeColor:      "#FFFF0000",
				StrokeWidth:      1.5,
				StrokeAlpha:      0.5,
				StrokeLineCap:    "round",
				StrokeLineJoin:   "bevel",
				StrokeMiterLimit: 10,
			},
			{
				PathData:         "M2,2 L3,3",
				FillAlpha:        1,
				StrokeColor:      "#FF00FF00",
				StrokeWidth:      2,
				StrokeAlpha:      1,
				StrokeLineCap:    "butt",
				StrokeLineJoin:   "miter",
				StrokeMiterLimit: 4,
			},
		},
	}
	want := `<vector xmlns:android="http://schemas.android.com/apk/res/android"
    android:width="48dp"
    android:height="24.5dp"
    android:viewportWidth="24"
    android:viewportHeight="12">
    <path
        android:pathData="M0,0 L1,1"
        android:fillColor="#FF000000"
        android:fillAlpha="0.25"
        android:fillType="evenOdd"
        android:strokeColor="#FFFF0000"
        android:strokeWidth="1.5"
        android:strokeAlpha="0.5"
        android:strokeLineCap="round"
        android:strokeLineJoin="bevel"
        android:strokeMiterLimit="10"/>
    <path
        android:pathData="M2,2 L3,3"
        android:strokeColor="#FF00FF00"
        android:strokeWidth="2"
        android:strokeLineCap="butt"
        android:strokeLineJoin="miter"/>
</vector>
`
	var buf bytes.Buffer
	n, err := vd.WriteTo(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if n != int64(buf.Len()) {
		t.Errorf("WriteTo reported %d bytes, wrote %d", n, buf.Len())
	}
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("WriteTo (-want +got):\n%s", diff)
	}
	if vd.String() != want {
		t.Error("String differs from WriteTo")
	}
}

func TestVectorDrawableEmpty(t *testing.T) {
	vd := &VectorDrawable{Width: 24, Height: 24, ViewportWidth: 24, ViewportHeight: 24}
	out := vd.String()
	if !strings.HasSuffix(out, `android:viewportHeight="24">
</vector>
`) {
		t.Errorf("unexpected output:\n%s", out)
	}
	if strings.Contains(out, "xmlns:aapt") || vd.HasGradient() {
		t.Error("aapt namespace declared without a gradient")
	}
}

func TestVectorPathEscaping(t *testing.T) {
	vd := &VectorDrawable{Paths: []VectorPath{{PathData: `M0,0 "<&>"`, FillColor: "#FF000000", FillAlpha: 1}}}
	if out := vd.String(); !strings.Contains(out, `android:pathData="M0,0 &#34;&lt;&amp;&gt;&#34;"`) {
		t.Errorf("path data not escaped:\n%s", out)
	}
}

func TestVectorGradientItems(t *testing.T) {
	vd := &VectorDrawable{Paths: []VectorPath{{
		PathData:  "M0,0",
		FillAlpha: 1,
		FillGradient: &VectorGradient{
			Radial:   true,
			CenterX:  1,
			CenterY:  2,
			Radius:   3.25,
			TileMode: "mirror",
			Items:    []GradientItem{{0, "#FF000000"}, {0.333333, "#80FFFFFF"}},
		},
	}}}
	out := vd.String()
	for _, s := range []string{
		`android:type="radial"`,
		`android:centerX="1"`,
		`android:centerY="2"`,
		`android:gradientRadius="3.25"`,
		`android:tileMode="mirror"`,
		`<item android:offset="0.333" android:color="#80FFFFFF"/>`,
	} {
		if !strings.Contains(out, s) {
			t.Errorf("output lacks %s:\n%s", s, out)
		}
	}
	if strings.Contains(out, "startX") || strings.Contains(out, `android:fillColor="`) {
		t.Errorf("unexpected linear or solid attributes:\n%s", out)
	}
}
