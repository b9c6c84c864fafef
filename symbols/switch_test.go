package symbols

import (
	"math"
	"testing"

	"github.com/gogpu/gg"
)

func leverEnd(t *testing.T, s *Switch) gg.Point {
	t.Helper()
	pts := pathPoints(s.Body())
	if len(pts) != 2 {
		t.Fatalf("lever has %d points, want 2", len(pts))
	}
	return pts[1]
}

func TestNewSwitch_StartsOpen(t *testing.T) {
	s := NewSwitch("s")

	if !s.Open() {
		t.Error("switch starts closed")
	}
	if s.Throw() != 1 {
		t.Errorf("throw = %v, want 1", s.Throw())
	}
	want := gg.Pt(-0.35+0.7*math.Cos(math.Pi/6), 0.7*math.Sin(math.Pi/6))
	if got := leverEnd(t, s); !approxPoint(got, want, 1e-9) {
		t.Errorf("lever end = %v, want %v", got, want)
	}
}

func TestSwitch_SetOpenAndToggle(t *testing.T) {
	s := NewSwitch("s")

	s.SetOpen(false)
	if s.Open() || s.Throw() != 0 {
		t.Errorf("after close: open = %v, throw = %v", s.Open(), s.Throw())
	}
	if got := leverEnd(t, s); !approxPoint(got, gg.Pt(0.35, 0), 1e-9) {
		t.Errorf("closed lever end = %v, want (0.35, 0)", got)
	}

	s.Toggle()
	if !s.Open() {
		t.Error("toggle did not open")
	}
	if got := leverEnd(t, s); math.Abs(got.Y-0.35) > 1e-9 {
		t.Errorf("open lever end y = %v, want 0.35", got.Y)
	}
}

func TestSwitch_SetThrowPosesLever(t *testing.T) {
	s := NewSwitch("s")
	s.SetOpen(false)

	s.SetThrow(0.5)
	if s.Open() {
		t.Error("posing the lever changed the logical state")
	}
	angle := 0.5 * openLeverAngle
	want := gg.Pt(-0.35+0.7*math.Cos(angle), 0.7*math.Sin(angle))
	if got := leverEnd(t, s); !approxPoint(got, want, 1e-9) {
		t.Errorf("lever end = %v, want %v", got, want)
	}

	s.SetThrow(2)
	if s.Throw() != 1 {
		t.Errorf("throw = %v, want clamped to 1", s.Throw())
	}
}

func TestSwitch_BoundsIncludeContactDots(t *testing.T) {
	s := NewSwitch("s")
	s.SetOpen(false)

	// With the lever flat only the contact dots reach below the axis.
	b := s.Bounds()
	if math.Abs(b.Min.Y+0.06) > 1e-9 {
		t.Errorf("bounds min y = %v, want -0.06", b.Min.Y)
	}
}

func TestNewPushToMakeSwitch_Poses(t *testing.T) {
	s := NewPushToMakeSwitch("s")

	if !s.Open() {
		t.Error("push-to-make starts closed")
	}
	if !s.PushToMake() {
		t.Error("PushToMake() = false")
	}
	// At rest the bar floats one travel above the contacts, the cap one
	// travel above the bar.
	if !hasSegment(s.Body(), gg.Pt(-0.35, 0.15), gg.Pt(0.35, 0.15)) {
		t.Error("no bar at y = 0.15")
	}
	if !hasSegment(s.Body(), gg.Pt(0, 0.15), gg.Pt(0, 0.24)) {
		t.Error("no stem")
	}
	if !hasSegment(s.Body(), gg.Pt(-0.0875, 0.24), gg.Pt(0.0875, 0.24)) {
		t.Error("no cap at y = 0.24")
	}

	s.SetOpen(false)
	if !hasSegment(s.Body(), gg.Pt(-0.35, 0.06), gg.Pt(0.35, 0.06)) {
		t.Error("pressed bar not at y = 0.06")
	}
	if !hasSegment(s.Body(), gg.Pt(-0.0875, 0.15), gg.Pt(0.0875, 0.15)) {
		t.Error("pressed cap not at y = 0.15")
	}
}

func TestNewPushToBreakSwitch_Poses(t *testing.T) {
	s := NewPushToBreakSwitch("s")

	if s.Open() {
		t.Error("push-to-break starts open")
	}
	if s.PushToMake() {
		t.Error("PushToMake() = true")
	}
	// At rest the bar sits pushed through below the contacts, the stem
	// crossing between them to the cap above.
	if !hasSegment(s.Body(), gg.Pt(-0.35, -0.06), gg.Pt(0.35, -0.06)) {
		t.Error("no bar at y = -0.06")
	}
	if !hasSegment(s.Body(), gg.Pt(0, -0.06), gg.Pt(0, 0.24)) {
		t.Error("no stem crossing the contacts")
	}
	if !hasSegment(s.Body(), gg.Pt(-0.0875, 0.24), gg.Pt(0.0875, 0.24)) {
		t.Error("no cap at y = 0.24")
	}

	s.SetOpen(true)
	if !hasSegment(s.Body(), gg.Pt(-0.35, -0.15), gg.Pt(0.35, -0.15)) {
		t.Error("pressed bar not at y = -0.15")
	}
	if !hasSegment(s.Body(), gg.Pt(-0.0875, 0.15), gg.Pt(0.0875, 0.15)) {
		t.Error("pressed cap not at y = 0.15")
	}
}
