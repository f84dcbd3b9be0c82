// Copyright 2018 The oksvg Authors. All rights reserved.

package svg2vd

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

const testArco = `M150,350 l 50,-55
           a25,25 -30 0,1 50,-25 l 50,-25
           a25,50 -30 0,1 50,-25 l 50,-25
           a25,75 -30 0,1 50,-25 l 50,-25
           a25,100 -30 0,1 50,-25 l 50,15z`

const testArco2 = `M150,350 l 50,-55
           a35,25 -30 0,0 50,-25 l 50,-25
           a25,50 -30 0,1 50,-25 l 50,-25
           a25,75 -30 0,1 50,-25 l 50,-25
           a25,100 -30 0,1 50,-25, l 50,15z`

const testArcoS = `M150,350 l 50,-55
           a35,25 -30 0,0 50,-25,
           25,50 -30 0,1 50,-25
           a25,75 -30 0,1 50,-25 l 50,-25
           a25,100 -30 0,1 50,-25 l 50,15,0,25,-15,-15  z`

// Explicitly call each command in abs and rel mode and concatenated forms
const testSVG0 = `m20,20,0,400,400,0z`
const testSVG1 = `M20,20 L500,800 L800,200z`
const testSVG2 = `M20,20 Q200,800 800,800z`
const testSVG3 = `M20,50 C200,200 800,200 800,500z`
const testSVG4 = `M20,50 S200,1400 400,500 S700,800 800,400z`
const testSVG5 = `M50,20 Q 800,500 500,800z`
const testSVG6 = `M20,50 c200,200 800,200 400,300z`
const testSVG7 = `M20,20 c0,500 500,0 500,500z`
const testSVG8 = `M20,50 c200,200 800,200 400,300c200,200 800,200 400,300z`
const testSVG9 = `M20,50 c200,200 800,200 400,300,200,200 800,200 400,300z`
const testSVG10 = `M20,50 c200,200 800,200 400,300,200,200 800,200 400,300s500,300 200,200s600,300 200,200z`
const testSVG11 = `M20,50 c200,200 800,200 400,300,200,200 800,200 400,300s500,300 200,200,600,300 200,200z`
const testSVG12 = `M100,100 Q400,100 250,250 T400,400z`
const testSVG13 = `M100,100 Q400,100 250,250 t150,150,150,150z`

var testPaths = []string{testArco, testArco2, testArcoS,
	testSVG0, testSVG1, testSVG2, testSVG3, testSVG4, testSVG5,
	testSVG6, testSVG7, testSVG8, testSVG9, testSVG10,
	testSVG11, testSVG12, testSVG13,
}

func TestFlattenPath(t *testing.T) {
	tests := []struct {
		name string
		d    string
		m    Matrix2D
		want string
	}{
		{"implicit lineto", testSVG0, Identity, "M20,20 L20,420 L420,420 Z"},
		{"absolute", testSVG1, Identity, "M20,20 L500,800 L800,200 Z"},
		{"relative cubic", testSVG6, Identity, "M20,50 C220,250 820,250 420,350 Z"},
		{"smooth quad", testSVG12, Identity, "M100,100 Q400,100 250,250 Q100,400 400,400 Z"},
		{"smooth quad relative", testSVG13, Identity,
			"M100,100 Q400,100 250,250 Q100,400 400,400 Q700,400 550,550 Z"},
		{"smooth cubic", "M0,0 C10,0 20,10 20,20 S30,40 40,40", Identity,
			"M0,0 C10,0 20,10 20,20 C20,30 30,40 40,40"},
		{"smooth cubic without predecessor", "M5,5 S10,10 20,20", Identity,
			"M5,5 C5,5 10,10 20,20"},
		{"smooth quad without predecessor", "M5,5 T20,20", Identity,
			"M5,5 Q5,5 20,20"},
		{"horizontal and vertical", "M1,1 H5 V6 h-2 v-3", Identity,
			"M1,1 L5,1 L5,6 L3,6 L3,3"},
		{"relative move after close", "M10,10 l5,0 z m2,2 l1,0", Identity,
			"M10,10 L15,10 Z M12,12 L13,12"},
		{"compact numbers", "M1.5.5L-1-2", Identity, "M1.5,0.5 L-1,-2"},
		{"exponent", "M1e1,2E-1", Identity, "M10,0.2"},
		{"compact arc flags", "M0,0 a5,5 0 0110,0", Identity, "M0,0 A5,5 0 0,1 10,0"},
		{"arc mirrored", "M0,0 A5,5 0 0,1 10,0", Identity.Scale(-1, 1), "M0,0 A5,5 180 0,0 -10,0"},
		{"arc scaled", "M0,0 A5,5 0 1,0 10,0", Identity.Scale(2, 2), "M0,0 A10,10 0 1,0 20,0"},
		{"arc zero radius", "M0,0 A0,5 0 0,1 10,0", Identity, "M0,0 L10,0"},
		{"arc zero length", "M3,3 A5,5 0 0,1 3,3 L4,4", Identity, "M3,3 L4,4"},
		{"arc negative radius", "M0,0 A-5,-5 0 0,1 10,0", Identity, "M0,0 A5,5 0 0,1 10,0"},
		{"translate", "M0,0 L10,10", Identity.Translate(5, -5), "M5,-5 L15,5"},
		{"rounding", "M0.12345,1.0006 L-0.0001,2", Identity, "M0.123,1.001 L0,2"},
		{"empty", "", Identity, ""},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			p, _, warnings := FlattenPath(test.d, test.m)
			if got := p.String(); got != test.want {
				t.Errorf("FlattenPath(%q) = %q, want %q", test.d, got, test.want)
			}
			if len(warnings) != 0 {
				t.Errorf("unexpected warnings %v", warnings)
			}
		})
	}
}

func TestFlattenPathWarnings(t *testing.T) {
	tests := []struct {
		name  string
		d     string
		want  string
		kinds []WarningKind
	}{
		{"unknown command", "M0,0 X5 L1,1", "M0,0 L1,1", []WarningKind{UnknownCommand, MalformedPath}},
		{"stray values after close", "M0,0 L1,1 Z 5 5 L2,2", "M0,0 L1,1 Z L2,2", []WarningKind{MalformedPath, MalformedPath}},
		{"missing arguments", "M0,0 L1 C1,2 Q3,3 4,4", "M0,0 Q3,3 4,4", []WarningKind{MalformedPath, MalformedPath}},
		{"bad arc flag", "M0,0 A5,5 0 2,1 10,0 L3,3", "M0,0 L3,3", []WarningKind{MalformedPath}},
		{"leading number", "5 M1,1", "M1,1", []WarningKind{MalformedPath}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			p, _, warnings := FlattenPath(test.d, Identity)
			if got := p.String(); got != test.want {
				t.Errorf("FlattenPath(%q) = %q, want %q", test.d, got, test.want)
			}
			var kinds []WarningKind
			for _, w := range warnings {
				kinds = append(kinds, w.Kind)
			}
			if diff := cmp.Diff(test.kinds, kinds); diff != "" {
				t.Errorf("warning kinds (-want +got):\n%s", diff)
			}
		})
	}
}

// Flattened output reads back as the same path.
func TestFlattenPathStable(t *testing.T) {
	for i, d := range testPaths {
		p, _, warnings := FlattenPath(d, Identity)
		if len(warnings) != 0 {
			t.Errorf("path %d: unexpected warnings %v", i, warnings)
		}
		first := p.String()
		p2, _, _ := FlattenPath(first, Identity)
		if second := p2.String(); second != first {
			t.Errorf("path %d: reflattened %q, want %q", i, second, first)
		}
	}
}

func TestFlattenPathBounds(t *testing.T) {
	_, b, _ := FlattenPath(testSVG0, Identity)
	want := BoundingBox{MinX: 20, MinY: 20, MaxX: 420, MaxY: 420}
	if diff := cmp.Diff(want, b); diff != "" {
		t.Errorf("bounds (-want +got):\n%s", diff)
	}

	// control points count toward the box
	_, b, _ = FlattenPath("M0,0 Q50,-20 10,0", Identity.Scale(2, 1))
	want = BoundingBox{MinX: 0, MinY: -20, MaxX: 100, MaxY: 0}
	if diff := cmp.Diff(want, b, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Errorf("bounds (-want +got):\n%s", diff)
	}

	_, b, _ = FlattenPath("", Identity)
	if !b.Empty() {
		t.Errorf("bounds of empty path = %+v, want empty", b)
	}
}

func TestPathCursorReuse(t *testing.T) {
	c := &PathCursor{}
	c.CompilePath(testSVG1, Identity)
	c.CompilePath("M1,1 L2,2", Identity.Translate(1, 1))
	if got, want := c.Path.String(), "M2,2 L3,3"; got != want {
		t.Errorf("Path = %q, want %q", got, want)
	}
	if c.Bounds.MinX != 2 || c.Bounds.MaxX != 3 {
		t.Errorf("Bounds = %+v, want x in [2, 3]", c.Bounds)
	}
}

func TestFormatNum(t *testing.T) {
	for _, test := range []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{10, "10"},
		{-2.5, "-2.5"},
		{1.23456, "1.235"},
		{0.1 + 0.2, "0.3"},
		{-0.0001, "0"},
		{1e6, "1000000"},
	} {
		if got := formatNum(test.in); got != test.want {
			t.Errorf("formatNum(%v) = %q, want %q", test.in, got, test.want)
		}
	}
}
