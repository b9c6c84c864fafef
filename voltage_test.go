package schematic

import (
	"errors"
	"math"
	"testing"

	"github.com/gogpu/gg"
)

func TestNewVoltage_SameTerminal(t *testing.T) {
	b := NewBipole("R")
	if _, err := NewVoltage(b.Right(), b.Right(), "V"); !errors.Is(err, ErrSameTerminal) {
		t.Fatalf("NewVoltage error = %v, want ErrSameTerminal", err)
	}
	if _, err := NewVoltageBetween(gg.Pt(1, 1), gg.Pt(1, 1), "V"); !errors.Is(err, ErrSameTerminal) {
		t.Fatalf("NewVoltageBetween error = %v, want ErrSameTerminal", err)
	}
}

func TestVoltage_DefaultArc(t *testing.T) {
	v, err := NewVoltageBetween(gg.Pt(-1, 0), gg.Pt(1, 0), "V")
	if err != nil {
		t.Fatalf("NewVoltageBetween: %v", err)
	}
	g, ok := v.arc()
	if !ok {
		t.Fatal("arc() not ok")
	}
	// A 60 degree arc over a chord of 2 has radius 2 and its centre
	// root-3 above the chord.
	if math.Abs(g.radius-2) > 1e-9 {
		t.Errorf("radius = %v, want 2", g.radius)
	}
	if !approxPoint(g.centre, gg.Pt(0, math.Sqrt(3)), 1e-9) {
		t.Errorf("centre = %v, want (0, sqrt3)", g.centre)
	}
	if math.Abs(g.sweep-math.Pi/3) > 1e-9 {
		t.Errorf("sweep = %v, want pi/3", g.sweep)
	}
	if got := g.point(g.start); !approxPoint(got, gg.Pt(-1, 0), 1e-9) {
		t.Errorf("arc start = %v, want (-1, 0)", got)
	}
	if got := g.point(g.start + g.sweep); !approxPoint(got, gg.Pt(1, 0), 1e-9) {
		t.Errorf("arc end = %v, want (1, 0)", got)
	}
	// Anticlockwise bows below the chord.
	if bow := g.point(g.start + g.sweep/2); bow.Y >= 0 {
		t.Errorf("bow = %v, want below the chord", bow)
	}
}

func TestVoltage_ClockwiseMirrorsArc(t *testing.T) {
	v, err := NewVoltageBetween(gg.Pt(-1, 0), gg.Pt(1, 0), "V", WithClockwise())
	if err != nil {
		t.Fatalf("NewVoltageBetween: %v", err)
	}
	g, ok := v.arc()
	if !ok {
		t.Fatal("arc() not ok")
	}
	if g.sweep >= 0 {
		t.Errorf("sweep = %v, want negative", g.sweep)
	}
	if !approxPoint(g.centre, gg.Pt(0, -math.Sqrt(3)), 1e-9) {
		t.Errorf("centre = %v, want (0, -sqrt3)", g.centre)
	}
	if bow := g.point(g.start + g.sweep/2); bow.Y <= 0 {
		t.Errorf("bow = %v, want above the chord", bow)
	}
}

func TestVoltage_AvoidPassesComponent(t *testing.T) {
	b := NewBipole("R")
	b.Body().Rectangle(-0.5, -0.2, 1, 0.4)

	v, err := NewVoltage(b.Left(), b.Right(), "V", WithAvoid(&b.Component))
	if err != nil {
		t.Fatalf("NewVoltage: %v", err)
	}
	g, ok := v.arc()
	if !ok {
		t.Fatal("arc() not ok")
	}
	// The bow must clear the bounding box bottom by the avoid buffer.
	bow := g.point(g.start + g.sweep/2)
	want := b.Bounds().Min.Y - v.avoidBuffer
	if math.Abs(bow.Y-want) > 1e-9 {
		t.Errorf("bow y = %v, want %v", bow.Y, want)
	}
	if math.Abs(bow.X) > 1e-9 {
		t.Errorf("bow x = %v, want 0", bow.X)
	}
}

func TestComponent_VoltageConvenience(t *testing.T) {
	b := NewBipole("R")

	v, err := b.Voltage("left", "right", "V")
	if err != nil {
		t.Fatalf("Voltage: %v", err)
	}
	if v.avoid != &b.Component {
		t.Error("convenience voltage does not avoid its component")
	}

	if _, err := b.Voltage("left", "left", "V"); !errors.Is(err, ErrSameTerminal) {
		t.Errorf("same-name error = %v, want ErrSameTerminal", err)
	}
	var unknown *UnknownTerminalError
	if _, err := b.Voltage("lfet", "right", "V"); !errors.As(err, &unknown) {
		t.Errorf("unknown-name error = %v, want *UnknownTerminalError", err)
	}
}

func TestVoltage_FlipDirection(t *testing.T) {
	b := NewBipole("R")
	v, err := NewVoltage(b.Left(), b.Right(), "V")
	if err != nil {
		t.Fatalf("NewVoltage: %v", err)
	}
	from, _ := v.endpoints()
	v.FlipDirection(true)
	flippedFrom, _ := v.endpoints()
	if approxPoint(from, flippedFrom, 1e-12) {
		t.Error("FlipDirection did not swap the endpoints")
	}
	if !v.Clockwise() {
		t.Error("FlipDirection(true) did not flip the sense")
	}
	v.FlipDirection(false)
	if !v.Clockwise() {
		t.Error("FlipDirection(false) flipped the sense")
	}
}

func TestVoltage_LabelAndFades(t *testing.T) {
	v, err := NewVoltageBetween(gg.Pt(0, 0), gg.Pt(2, 0), "V1")
	if err != nil {
		t.Fatalf("NewVoltageBetween: %v", err)
	}
	if v.Label().Text() != "V1" {
		t.Errorf("label = %q, want V1", v.Label().Text())
	}
	v.SetLabel("V2")
	if v.Label().Text() != "V2" {
		t.Errorf("label = %q, want V2", v.Label().Text())
	}
	v.SetOpacity(2)
	v.SetReveal(-1)
	if v.Opacity() != 1 || v.Reveal() != 0 {
		t.Errorf("opacity, reveal = %v, %v, want 1, 0", v.Opacity(), v.Reveal())
	}
}

func TestVoltage_AnchorsAtBow(t *testing.T) {
	v, err := NewVoltageBetween(gg.Pt(-1, 0), gg.Pt(1, 0), "V")
	if err != nil {
		t.Fatalf("NewVoltageBetween: %v", err)
	}
	anchors := v.Anchors()
	if len(anchors) != 2 {
		t.Fatalf("anchors = %v, want centre and voltage", anchors)
	}
	if anchors[0].Kind != AnchorCentre || !approxPoint(anchors[0].Pos, gg.Pt(0, 0), 1e-12) {
		t.Errorf("centre anchor = %v, want kind centre at origin", anchors[0])
	}
	if anchors[1].Kind != AnchorVoltage || anchors[1].Pos.Y >= 0 {
		t.Errorf("voltage anchor = %v, want below the chord", anchors[1])
	}
}
