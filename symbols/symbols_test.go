package symbols

import (
	"math"
	"testing"

	"github.com/gogpu/gg"

	"github.com/gogpu/schematic"
)

// Compile-time interface checks for the catalog's scaffolding.
var (
	_ schematic.Connectable = (*Resistor)(nil)
	_ schematic.Revealable  = (*Inductor)(nil)
	_ schematic.Markable    = (*Capacitor)(nil)
	_ schematic.Toggleable  = (*Switch)(nil)
	_ schematic.Toggleable  = (*PushSwitch)(nil)
	_ schematic.Connectable = (*Earth)(nil)
)

func approxPoint(a, b gg.Point, eps float64) bool {
	return math.Abs(a.X-b.X) <= eps && math.Abs(a.Y-b.Y) <= eps
}

// pathPoints collects a path's on-curve points in order, ignoring curve
// controls and Close elements.
func pathPoints(p *gg.Path) []gg.Point {
	var pts []gg.Point
	for _, e := range p.Elements() {
		switch el := e.(type) {
		case gg.MoveTo:
			pts = append(pts, el.Point)
		case gg.LineTo:
			pts = append(pts, el.Point)
		case gg.QuadTo:
			pts = append(pts, el.Point)
		case gg.CubicTo:
			pts = append(pts, el.Point)
		}
	}
	return pts
}

// lineSegments collects a path's straight edges, one per LineTo.
func lineSegments(p *gg.Path) [][2]gg.Point {
	var segs [][2]gg.Point
	var cur gg.Point
	for _, e := range p.Elements() {
		switch el := e.(type) {
		case gg.MoveTo:
			cur = el.Point
		case gg.LineTo:
			segs = append(segs, [2]gg.Point{cur, el.Point})
			cur = el.Point
		case gg.QuadTo:
			cur = el.Point
		case gg.CubicTo:
			cur = el.Point
		}
	}
	return segs
}

// hasSegment reports whether the path contains the straight edge a-b in
// either direction.
func hasSegment(p *gg.Path, a, b gg.Point) bool {
	const eps = 1e-9
	for _, s := range lineSegments(p) {
		if approxPoint(s[0], a, eps) && approxPoint(s[1], b, eps) {
			return true
		}
		if approxPoint(s[0], b, eps) && approxPoint(s[1], a, eps) {
			return true
		}
	}
	return false
}

// verticalPlates returns the path's vertical edges in order as (x,
// half-height) pairs. Plate-style symbols are built from these.
func verticalPlates(p *gg.Path) [][2]float64 {
	var plates [][2]float64
	for _, s := range lineSegments(p) {
		if math.Abs(s[0].X-s[1].X) > 1e-9 {
			continue
		}
		plates = append(plates, [2]float64{s[0].X, math.Abs(s[1].Y-s[0].Y) / 2})
	}
	return plates
}

// anchorOf returns the element's first anchor of the given kind.
func anchorOf(t *testing.T, el schematic.Element, kind schematic.AnchorKind) gg.Point {
	t.Helper()
	for _, a := range el.Anchors() {
		if a.Kind == kind {
			return a.Pos
		}
	}
	t.Fatalf("no %v anchor", kind)
	return gg.Point{}
}

// american runs fn with the package style switched to the american
// convention.
func american(fn func()) {
	s := schematic.DefaultStyle()
	s.Convention = schematic.American
	schematic.TempStyle(s, fn)
}

func TestNewResistor_EuropeanBox(t *testing.T) {
	r := NewResistor("R1")

	pts := pathPoints(r.Body())
	if len(pts) == 0 {
		t.Fatal("empty body")
	}
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range pts {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	if minX != -0.5 || maxX != 0.5 || minY != -0.2 || maxY != 0.2 {
		t.Errorf("box spans (%v, %v)-(%v, %v), want (-0.5, -0.2)-(0.5, 0.2)", minX, minY, maxX, maxY)
	}

	if got := r.Left().Start(); !approxPoint(got, gg.Pt(-0.5, 0), 1e-9) {
		t.Errorf("left start = %v, want (-0.5, 0)", got)
	}
	if got := r.Left().End(); !approxPoint(got, gg.Pt(-1, 0), 1e-9) {
		t.Errorf("left end = %v, want (-1, 0)", got)
	}
	if got := r.Right().End(); !approxPoint(got, gg.Pt(1, 0), 1e-9) {
		t.Errorf("right end = %v, want (1, 0)", got)
	}
}

func TestNewResistor_AmericanZigzag(t *testing.T) {
	var r *Resistor
	american(func() { r = NewResistor("R1") })

	pts := pathPoints(r.Body())
	if len(pts) != 8 {
		t.Fatalf("zigzag has %d points, want 8", len(pts))
	}
	if !approxPoint(pts[0], gg.Pt(-0.5, 0), 1e-9) {
		t.Errorf("start = %v, want (-0.5, 0)", pts[0])
	}
	if !approxPoint(pts[7], gg.Pt(0.5, 0), 1e-9) {
		t.Errorf("end = %v, want (0.5, 0)", pts[7])
	}
	y := 0.2
	for i := range 6 {
		want := gg.Pt(-0.5+(1+2*float64(i))/12, y)
		if !approxPoint(pts[1+i], want, 1e-9) {
			t.Errorf("peak %d = %v, want %v", i, pts[1+i], want)
		}
		y = -y
	}
}

func TestNewThermistor_Tick(t *testing.T) {
	th := NewThermistor("Th1")

	pts := pathPoints(th.Body())
	if len(pts) < 3 {
		t.Fatalf("body has %d points", len(pts))
	}
	tick := pts[len(pts)-3:]
	want := []gg.Point{gg.Pt(-0.5, -0.32), gg.Pt(-0.2, -0.32), gg.Pt(0.5, 0.32)}
	for i, p := range tick {
		if !approxPoint(p, want[i], 1e-9) {
			t.Errorf("tick[%d] = %v, want %v", i, p, want[i])
		}
	}
}

func TestNewVariableResistor_Arrow(t *testing.T) {
	v := NewVariableResistor("R1")

	tail := gg.Pt(-0.35, -0.4)
	apex := gg.Pt(0.35, 0.4)
	dir := gg.PointToVec2(apex.Sub(tail)).Normalize()
	base := apex.Sub(dir.Mul(0.15).ToPoint())
	if !hasSegment(v.Body(), tail, base) {
		t.Errorf("no arrow shaft from %v to %v", tail, base)
	}
}

func TestNewCapacitor_Plates(t *testing.T) {
	c := NewCapacitor("C1")

	if !hasSegment(c.Body(), gg.Pt(-0.1, -0.3), gg.Pt(-0.1, 0.3)) {
		t.Error("no left plate at x = -0.1")
	}
	if !hasSegment(c.Body(), gg.Pt(0.1, -0.3), gg.Pt(0.1, 0.3)) {
		t.Error("no right plate at x = 0.1")
	}
	// The stems run from the plates outward, leaving the gap clear.
	if got := c.Left().Start(); !approxPoint(got, gg.Pt(-0.1, 0), 1e-9) {
		t.Errorf("left start = %v, want (-0.1, 0)", got)
	}
	if got := c.Left().End(); !approxPoint(got, gg.Pt(-0.6, 0), 1e-9) {
		t.Errorf("left end = %v, want (-0.6, 0)", got)
	}
	if got := anchorOf(t, c, schematic.AnchorLabel); !approxPoint(got, gg.Pt(0, 0.3), 1e-9) {
		t.Errorf("label anchor = %v, want (0, 0.3)", got)
	}
}

func TestNewVariableCapacitor_Arrow(t *testing.T) {
	v := NewVariableCapacitor("C1")

	tail := gg.Pt(-0.35, -0.4)
	apex := gg.Pt(0.35, 0.4)
	dir := gg.PointToVec2(apex.Sub(tail)).Normalize()
	base := apex.Sub(dir.Mul(0.15).ToPoint())
	if !hasSegment(v.Body(), tail, base) {
		t.Errorf("no arrow shaft from %v to %v", tail, base)
	}
}

func TestNewInductor_Humps(t *testing.T) {
	l := NewInductor("L1")

	pts := pathPoints(l.Body())
	if len(pts) == 0 {
		t.Fatal("empty body")
	}
	if !approxPoint(pts[0], gg.Pt(-0.5, 0), 1e-9) {
		t.Errorf("first point = %v, want (-0.5, 0)", pts[0])
	}
	if last := pts[len(pts)-1]; !approxPoint(last, gg.Pt(0.5, 0), 1e-9) {
		t.Errorf("last point = %v, want (0.5, 0)", last)
	}
	// Four semicircles of radius 1/8 put their crests at y = 0.125.
	maxY := math.Inf(-1)
	for _, p := range pts {
		maxY = math.Max(maxY, p.Y)
	}
	if math.Abs(maxY-0.125) > 1e-9 {
		t.Errorf("crest = %v, want 0.125", maxY)
	}
	crests := 0
	for _, p := range pts {
		if math.Abs(p.Y-0.125) < 1e-9 {
			crests++
		}
	}
	if crests != 4 {
		t.Errorf("crest count = %d, want 4", crests)
	}
}
