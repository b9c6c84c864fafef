package symbols

import (
	"math"
	"testing"

	"github.com/gogpu/gg"

	"github.com/gogpu/schematic"
)

func TestNewEarth_Bars(t *testing.T) {
	e := NewEarth("gnd")

	if got := e.Terminal().End(); !approxPoint(got, gg.Pt(0, 0.5), 1e-9) {
		t.Errorf("terminal end = %v, want (0, 0.5)", got)
	}

	// Three bars shorten with depth.
	type bar struct{ y, half float64 }
	want := []bar{
		{0, 0.175},
		{-0.0875, 0.7 / 6},
		{-0.175, 0.7 / 12},
	}
	segs := lineSegments(e.Body())
	if len(segs) != len(want) {
		t.Fatalf("bar count = %d, want %d", len(segs), len(want))
	}
	for i, s := range segs {
		if math.Abs(s[0].Y-want[i].y) > 1e-9 || math.Abs(s[1].Y-want[i].y) > 1e-9 {
			t.Errorf("bar %d at y %v/%v, want %v", i, s[0].Y, s[1].Y, want[i].y)
		}
		if got := math.Abs(s[1].X-s[0].X) / 2; math.Abs(got-want[i].half) > 1e-9 {
			t.Errorf("bar %d half-width = %v, want %v", i, got, want[i].half)
		}
	}

	if got := anchorOf(t, e, schematic.AnchorLabel); !approxPoint(got, gg.Pt(0, -0.175), 1e-9) {
		t.Errorf("label anchor = %v, want (0, -0.175)", got)
	}
}

func TestNewChassis_Hatches(t *testing.T) {
	c := NewChassis("gnd")

	if !hasSegment(c.Body(), gg.Pt(-0.175, 0), gg.Pt(0.175, 0)) {
		t.Error("no rail")
	}
	for i := range 3 {
		x := -0.175 + float64(i)*0.175
		if !hasSegment(c.Body(), gg.Pt(x, 0), gg.Pt(x-0.0875, -0.0875)) {
			t.Errorf("no hatch at x = %v", x)
		}
	}
}

func TestMonopole_NoAnnotationAnchor(t *testing.T) {
	e := NewEarth("gnd")
	for _, a := range e.Anchors() {
		if a.Kind == schematic.AnchorAnnotation {
			t.Fatal("monopole reports an annotation anchor")
		}
	}
}
