package schematic

import (
	"math"

	"github.com/gogpu/gg"

	"github.com/gogpu/schematic/internal/geom"
)

// VoltageOption configures a voltage arrow.
type VoltageOption func(*Voltage)

// WithClockwise arcs the arrow clockwise from its first endpoint
// instead of anticlockwise.
func WithClockwise() VoltageOption {
	return func(v *Voltage) { v.clockwise = true }
}

// WithArcBuffer sets the gap between the arrow ends and the endpoints,
// measured along the arc in diagram units.
func WithArcBuffer(buffer float64) VoltageOption {
	return func(v *Voltage) { v.arcBuffer = buffer }
}

// WithAvoid routes the arc around the given component's bounding box.
func WithAvoid(c *Component) VoltageOption {
	return func(v *Voltage) { v.avoid = c }
}

// WithAvoidBuffer sets the clearance kept between the arc and an
// avoided component.
func WithAvoidBuffer(buffer float64) VoltageOption {
	return func(v *Voltage) { v.avoidBuffer = buffer }
}

// Voltage is an arced arrow between two endpoints, tip at the second,
// with a label at the outside of the bow. Endpoints given as terminals
// are re-read every draw, so the arrow follows its component.
//
// Without a component to avoid, the arc subtends the style's default
// voltage angle. With one, the arc passes the component's bounding box
// on the bow side with a small clearance.
type Voltage struct {
	fromT, toT *Terminal
	fromP, toP gg.Point
	fixed      bool

	label       *Mark
	clockwise   bool
	arcBuffer   float64
	avoid       *Component
	avoidBuffer float64

	style   Style
	opacity float64
	reveal  float64
}

func newVoltage(text string, opts []VoltageOption) *Voltage {
	v := &Voltage{
		label:   newMark(text),
		style:   CurrentStyle(),
		opacity: 1,
		reveal:  1,
	}
	v.arcBuffer = v.style.Mark.Buffer
	v.avoidBuffer = v.style.Mark.Buffer
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// NewVoltage returns a voltage arrow from one terminal's end to
// another's. The terminals must differ.
func NewVoltage(from, to *Terminal, text string, opts ...VoltageOption) (*Voltage, error) {
	if from == to {
		return nil, ErrSameTerminal
	}
	v := newVoltage(text, opts)
	v.fromT, v.toT = from, to
	return v, nil
}

// NewVoltageBetween returns a voltage arrow between two fixed points in
// diagram units. The points must differ.
func NewVoltageBetween(from, to gg.Point, text string, opts ...VoltageOption) (*Voltage, error) {
	if from == to {
		return nil, ErrSameTerminal
	}
	v := newVoltage(text, opts)
	v.fixed = true
	v.fromP, v.toP = from, to
	return v, nil
}

// Label returns the voltage's label mark.
func (v *Voltage) Label() *Mark { return v.label }

// SetLabel replaces the label text.
func (v *Voltage) SetLabel(text string) { v.label.SetText(text) }

// Clockwise reports the arrow's sense.
func (v *Voltage) Clockwise() bool { return v.clockwise }

// SetClockwise sets the arrow's sense.
func (v *Voltage) SetClockwise(clockwise bool) { v.clockwise = clockwise }

// FlipDirection swaps the arrow's endpoints. With flipSense the sense
// flips too, keeping the bow on the same side.
func (v *Voltage) FlipDirection(flipSense bool) {
	v.fromT, v.toT = v.toT, v.fromT
	v.fromP, v.toP = v.toP, v.fromP
	if flipSense {
		v.clockwise = !v.clockwise
	}
}

// Opacity returns the arrow's opacity.
func (v *Voltage) Opacity() float64 { return v.opacity }

// SetOpacity sets the arrow's opacity, clamped to [0, 1].
func (v *Voltage) SetOpacity(opacity float64) { v.opacity = clamp01(opacity) }

// Reveal returns the drawn fraction of the arrow.
func (v *Voltage) Reveal() float64 { return v.reveal }

// SetReveal sets the drawn fraction of the arrow, clamped to [0, 1].
// The arc grows from its first endpoint.
func (v *Voltage) SetReveal(reveal float64) { v.reveal = clamp01(reveal) }

func (v *Voltage) endpoints() (gg.Point, gg.Point) {
	if v.fixed {
		return v.fromP, v.toP
	}
	return v.fromT.End(), v.toT.End()
}

// arcGeom is a circular arc in sweep form. Positive sweep runs
// anticlockwise.
type arcGeom struct {
	centre gg.Point
	radius float64
	start  float64
	sweep  float64
}

func (g arcGeom) point(angle float64) gg.Point {
	return g.centre.Add(gg.Pt(g.radius*math.Cos(angle), g.radius*math.Sin(angle)))
}

// arc resolves the arrow's arc from the current endpoints. ok is false
// when the endpoints coincide.
func (v *Voltage) arc() (arcGeom, bool) {
	a, b := v.endpoints()
	chord := gg.PointToVec2(b.Sub(a))
	if chord.IsZero() {
		return arcGeom{}, false
	}
	angle := v.style.VoltageAngle()
	if v.avoid != nil {
		if phi, ok := v.avoidAngle(a, b); ok {
			angle = phi
		}
	}
	if v.clockwise {
		angle = -angle
	}

	radius := chord.Length() / (2 * math.Abs(math.Sin(angle/2)))
	offset := radius * math.Cos(angle/2)
	normal := chord.Normalize().Perp()
	centre := a.Lerp(b, 0.5).Add(normal.Mul(math.Copysign(offset, angle)).ToPoint())
	start := geom.AngleOf(gg.PointToVec2(a.Sub(centre)))
	return arcGeom{centre: centre, radius: radius, start: start, sweep: angle}, true
}

// avoidAngle returns the arc angle needed to pass the avoided
// component's bounding box on the bow side, with the avoid buffer of
// clearance. ok is false when the three arc points are collinear.
func (v *Voltage) avoidAngle(a, b gg.Point) (float64, bool) {
	chord := gg.PointToVec2(b.Sub(a))
	chordAngle := geom.AngleOf(chord)
	bounds := v.avoid.Bounds()
	centre := bounds.Min.Lerp(bounds.Max, 0.5)

	// The critical point of the box in the chord frame: rotate the
	// corners about the box centre and take the extreme on the bow side.
	var frame geom.Bounds
	for _, corner := range []gg.Point{
		bounds.Min,
		gg.Pt(bounds.Max.X, bounds.Min.Y),
		bounds.Max,
		gg.Pt(bounds.Min.X, bounds.Max.Y),
	} {
		rel := gg.PointToVec2(corner.Sub(centre)).Rotate(-chordAngle)
		frame.Add(rel.ToPoint())
	}
	box := frame.Rect()
	critical := gg.Pt((box.Min.X+box.Max.X)/2, box.Min.Y)
	if v.clockwise {
		critical.Y = box.Max.Y
	}
	middle := centre.Add(gg.PointToVec2(critical).Rotate(chordAngle).ToPoint())

	rel := gg.PointToVec2(middle.Sub(centre))
	if !rel.IsZero() {
		middle = centre.Add(rel.Normalize().Mul(rel.Length() + v.avoidBuffer).ToPoint())
	}

	_, radius, ok := geom.CircleThrough(a, middle, b)
	if !ok || radius == 0 {
		Logger().Debug("voltage avoid points collinear, using default angle")
		return 0, false
	}
	sine := chord.Length() / (2 * radius)
	if sine > 1 {
		sine = 1
	}
	return 2 * math.Asin(sine), true
}

// Draw renders the arc, the tip, and the label.
func (v *Voltage) Draw(dc *gg.Context) error {
	if v.opacity <= 0 || v.reveal <= 0 {
		return nil
	}
	g, ok := v.arc()
	if !ok {
		return nil
	}
	style := &v.style
	sign := math.Copysign(1, g.sweep)
	trim := sign * v.arcBuffer / g.radius
	tip := sign * style.Symbol.ArrowTipLength / g.radius
	shaftStart := g.start + trim
	apex := g.start + g.sweep - trim
	shaftEnd := apex - tip
	if (shaftEnd-shaftStart)*sign <= 0 {
		return nil
	}

	col := style.StrokeColor()
	col.A *= v.opacity
	dc.SetColor(col.Color())
	dc.SetStroke(gg.RoundStroke().WithWidth(style.Symbol.ArrowStrokeWidth))
	shaft := gg.NewPath()
	AppendArc(shaft, g.centre.X, g.centre.Y, g.radius, shaftStart, shaftEnd-shaftStart)
	if err := strokeRevealed(dc, shaft, v.reveal); err != nil {
		return err
	}

	col.A *= v.reveal
	dc.SetColor(col.Color())
	tangent := geom.FromAngle(apex).Perp().Mul(sign)
	tipRadius := style.Symbol.ArrowTipLength / 1.5
	tipCentre := g.point(apex).Sub(tangent.Mul(tipRadius).ToPoint())
	appendTriangle(dc, tipCentre, geom.AngleOf(tangent), tipRadius)
	if err := dc.Fill(); err != nil {
		return err
	}

	a, b := v.endpoints()
	anchor := g.point(g.start + g.sweep/2)
	dir := markDirection(anchor, a.Lerp(b, 0.5), style)
	return drawMark(dc, v.label, anchor, dir, style, v.opacity*v.reveal)
}

// Bounds returns the arc's bounding box, control points included.
func (v *Voltage) Bounds() gg.Rect {
	g, ok := v.arc()
	if !ok {
		return gg.Rect{}
	}
	shaft := gg.NewPath()
	AppendArc(shaft, g.centre.X, g.centre.Y, g.radius, g.start, g.sweep)
	var b geom.Bounds
	pathBounds(&b, shaft, gg.Identity())
	return b.Rect()
}

// Anchors returns the chord centre and the label anchor at the bow.
func (v *Voltage) Anchors() []Anchor {
	g, ok := v.arc()
	if !ok {
		return nil
	}
	a, b := v.endpoints()
	return []Anchor{
		{Kind: AnchorCentre, Pos: a.Lerp(b, 0.5)},
		{Kind: AnchorVoltage, Pos: g.point(g.start + g.sweep/2)},
	}
}
