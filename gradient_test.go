// Copyright 2018 The oksvg Authors. All rights reserved.

package svg2vd

import (
	"image/color"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const testGradients = `<svg xmlns="http://www.w3.org/2000/svg" xmlns:xlink="http://www.w3.org/1999/xlink">
  <style>.mid { stop-color: #00ff00; stop-opacity: .5 }</style>
  <defs>
    <linearGradient id="base" x1="0%" x2="100%" spreadMethod="reflect">
      <stop offset="0" stop-color="red"/>
      <stop offset="50%" class="mid"/>
      <stop offset="0.2" stop-color="blue"/>
    </linearGradient>
    <linearGradient id="child" xlink:href="#base" x2="50%" gradientUnits="userSpaceOnUse"/>
    <linearGradient id="loopA" href="#loopB"><stop offset="0" stop-color="red"/></linearGradient>
    <linearGradient id="loopB" href="#loopA"/>
    <linearGradient id="lost" href="#nowhere"/>
    <radialGradient id="radial" spreadMethod="repeat"/>
  </defs>
</svg>`

func testRegistry(t *testing.T) *GradientRegistry {
	t.Helper()
	root, err := ParseSource(strings.NewReader(testGradients))
	if err != nil {
		t.Fatal(err)
	}
	var css strings.Builder
	root.Walk(func(n *SourceNode) {
		if n.Tag == "style" {
			css.WriteString(n.Text)
		}
	})
	return NewGradientRegistry(root, ParseStyleSheet(css.String()))
}

func TestGradientStops(t *testing.T) {
	r := testRegistry(t)
	g, ok := r.Resolve("base")
	if !ok {
		t.Fatal("base not found")
	}
	want := []GradStop{
		{Offset: 0, Color: color.NRGBA{0xFF, 0, 0, 0xFF}, Opacity: 1},
		{Offset: 0.5, Color: color.NRGBA{0, 0xFF, 0, 0xFF}, Opacity: 0.5},
		{Offset: 0.5, Color: color.NRGBA{0, 0, 0xFF, 0xFF}, Opacity: 1},
	}
	if diff := cmp.Diff(want, g.Stops); diff != "" {
		t.Errorf("stops (-want +got):\n%s", diff)
	}
	if g.Spread.TileMode() != "mirror" {
		t.Errorf("TileMode() = %q, want mirror", g.Spread.TileMode())
	}
	if len(r.Warnings) != 0 {
		t.Errorf("unexpected warnings %v", r.Warnings)
	}
}

func TestGradientInheritance(t *testing.T) {
	r := testRegistry(t)
	g, ok := r.Resolve("child")
	if !ok {
		t.Fatal("child not found")
	}
	if len(g.Stops) != 3 {
		t.Errorf("child has %d stops, want the 3 of its parent", len(g.Stops))
	}
	if diff := cmp.Diff(map[string]string{"x1": "0%", "x2": "50%"}, g.Coords); diff != "" {
		t.Errorf("coords (-want +got):\n%s", diff)
	}
	if g.Units != UserSpaceOnUse || g.Spread != ReflectSpread {
		t.Errorf("units %v spread %v, want user space and reflect", g.Units, g.Spread)
	}
	if again, _ := r.Resolve("child"); again != g {
		t.Error("Resolve does not return the cached definition")
	}

	// the parent is left as declared
	base, _ := r.Resolve("base")
	if base.Coords["x2"] != "100%" || base.Units != ObjectBoundingBox {
		t.Errorf("base changed by inheritance: %v %v", base.Coords, base.Units)
	}
}

func TestGradientBrokenReferences(t *testing.T) {
	r := testRegistry(t)
	g, ok := r.Resolve("loopA")
	if !ok {
		t.Fatal("loopA not found")
	}
	if len(g.Stops) != 1 {
		t.Errorf("loopA has %d stops, want 1", len(g.Stops))
	}
	if _, ok := r.Resolve("lost"); !ok {
		t.Fatal("lost not found")
	}
	if _, ok := r.Resolve("nothing"); ok {
		t.Error("Resolve(nothing) succeeded")
	}
	var kinds []WarningKind
	for _, w := range r.Warnings {
		kinds = append(kinds, w.Kind)
	}
	if diff := cmp.Diff([]WarningKind{GradientCycle, GradientMissing}, kinds); diff != "" {
		t.Errorf("warning kinds (-want +got):\n%s", diff)
	}
}

func TestGradientCoordinates(t *testing.T) {
	bbox := BoundingBox{MinX: 2, MinY: 0, MaxX: 12, MaxY: 10}
	tests := []struct {
		name   string
		g      GradientDef
		bbox   BoundingBox
		origin Matrix2D
		want   [5]float64
	}{
		{"linear defaults", GradientDef{}, bbox, Identity, [5]float64{2, 0, 12, 0}},
		{"linear percent", GradientDef{Coords: map[string]string{"x1": "0%", "x2": "100%", "y2": "50%"}},
			bbox, Identity, [5]float64{2, 0, 12, 5}},
		{"linear fractions", GradientDef{Coords: map[string]string{"x1": "0.25", "y1": "1"}},
			bbox, Identity, [5]float64{4.5, 10, 12, 0}},
		{"user space", GradientDef{Units: UserSpaceOnUse, Coords: map[string]string{"x1": "10", "x2": "20px"}},
			bbox, Identity.Translate(-5, 3), [5]float64{5, 0, 15, 0}},
		{"user space percent", GradientDef{Units: UserSpaceOnUse, Coords: map[string]string{"x2": "50%"}},
			bbox, Identity.Translate(-5, 3), [5]float64{2, 0, 7, 0}},
		{"unreadable", GradientDef{Coords: map[string]string{"x2": "wide"}},
			bbox, Identity, [5]float64{2, 0, 2, 0}},
		{"radial defaults", GradientDef{IsRadial: true},
			BoundingBox{MaxX: 30, MaxY: 40}, Identity, [5]float64{15, 20, 15, 20, 25}},
		{"radial user space", GradientDef{IsRadial: true, Units: UserSpaceOnUse,
			Coords: map[string]string{"cx": "10", "cy": "10", "r": "4"}},
			BoundingBox{MaxX: 30, MaxY: 40}, Identity.Translate(1, 2), [5]float64{11, 12, 11, 12, 4}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := test.g.Coordinates(test.bbox, test.origin)
			if diff := cmp.Diff(test.want, got, approx); diff != "" {
				t.Errorf("Coordinates (-want +got):\n%s", diff)
			}
		})
	}
}

func TestTileMode(t *testing.T) {
	for s, want := range map[SpreadMethod]string{
		PadSpread:     "clamp",
		ReflectSpread: "mirror",
		RepeatSpread:  "repeat",
	} {
		if got := s.TileMode(); got != want {
			t.Errorf("%d.TileMode() = %q, want %q", s, got, want)
		}
	}
}
