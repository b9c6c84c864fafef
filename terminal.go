package schematic

import (
	"math"

	"github.com/gogpu/gg"

	"github.com/gogpu/schematic/internal/geom"
)

// CurrentDirection selects whether a terminal's current arrow points into
// or out of its component.
type CurrentDirection int

const (
	// CurrentOff hides the current arrow.
	CurrentOff CurrentDirection = iota
	// CurrentIn points the arrow along the terminal toward the component.
	CurrentIn
	// CurrentOut points the arrow along the terminal away from the
	// component.
	CurrentOut
)

// String returns the direction name.
func (d CurrentDirection) String() string {
	switch d {
	case CurrentIn:
		return "in"
	case CurrentOut:
		return "out"
	}
	return "off"
}

// Terminal is a connection point of a component. The stem runs from the
// component's body edge outward; wires attach at its end. Terminals are
// created by their owning component and share its pose.
//
// A terminal can carry a current arrow at the middle of its stem, with an
// optional mark beside it.
type Terminal struct {
	owner     *Component
	name      string
	start     gg.Point
	direction gg.Vec2
	length    float64

	attached int

	current      CurrentDirection
	currentLabel *Mark
	currentBelow bool
}

// Name returns the terminal's name within its component.
func (t *Terminal) Name() string { return t.name }

// Owner returns the component the terminal belongs to.
func (t *Terminal) Owner() *Component { return t.owner }

// Start returns the world-space point where the stem leaves the body.
func (t *Terminal) Start() gg.Point {
	return t.owner.toWorld(t.start)
}

// End returns the world-space tip of the stem. Wires attach here.
func (t *Terminal) End() gg.Point {
	return t.owner.toWorld(t.localEnd())
}

// Direction returns the terminal's outward unit direction in world space.
func (t *Terminal) Direction() gg.Vec2 {
	return t.owner.toWorldVec(t.direction)
}

// Attached returns the number of wires currently connected.
func (t *Terminal) Attached() int { return t.attached }

// Current returns the terminal's current arrow direction.
func (t *Terminal) Current() CurrentDirection { return t.current }

// SetCurrent shows, redirects, or hides the terminal's current arrow.
func (t *Terminal) SetCurrent(d CurrentDirection) { t.current = d }

// CurrentLabel returns the mark drawn beside the current arrow, or nil.
func (t *Terminal) CurrentLabel() *Mark { return t.currentLabel }

// SetCurrentLabel attaches a mark beside the current arrow, creating it
// on first use. Setting a label on a terminal with the arrow off turns
// the arrow on, pointing into the component.
func (t *Terminal) SetCurrentLabel(text string) {
	if t.current == CurrentOff {
		t.current = CurrentIn
	}
	if t.currentLabel == nil {
		t.currentLabel = newMark(text)
		return
	}
	t.currentLabel.SetText(text)
}

// SetCurrentBelow moves the current label to the other side of the stem.
// Below is defined with the terminal pointing right; the label follows
// the component's rotation.
func (t *Terminal) SetCurrentBelow(below bool) { t.currentBelow = below }

// ClearCurrent hides the current arrow and drops its label.
func (t *Terminal) ClearCurrent() {
	t.current = CurrentOff
	t.currentLabel = nil
}

func (t *Terminal) attach() { t.attached++ }
func (t *Terminal) detach() { t.attached-- }

func (t *Terminal) localEnd() gg.Point {
	return t.start.Add(t.direction.Mul(t.length).ToPoint())
}

// currentMid returns the local-space centre of the current arrow, halfway
// along the stem.
func (t *Terminal) currentMid() gg.Point {
	return t.start.Add(t.direction.Mul(t.length / 2).ToPoint())
}

// currentLabelAnchor returns the local-space point the current label
// anchors to, at the arrow's edge perpendicular to the stem.
func (t *Terminal) currentLabelAnchor(style *Style) gg.Point {
	// An equilateral triangle's height is 1.5 times its circumradius.
	offset := 0.75 * style.Symbol.CurrentArrowRadius
	perp := t.direction.Perp()
	if t.currentBelow {
		perp = perp.Neg()
	}
	return t.currentMid().Add(perp.Mul(offset).ToPoint())
}

// drawLocal renders the stem and current arrow. The context transform
// must hold the owner's pose. alpha is the resolved stroke opacity and
// reveal trims the stem from its start.
func (t *Terminal) drawLocal(dc *gg.Context, style *Style, alpha, reveal float64) error {
	col := style.StrokeColor()
	col.A *= alpha
	dc.SetColor(col.Color())
	dc.SetStroke(gg.RoundStroke().WithWidth(style.Symbol.WireStrokeWidth))

	end := t.start.Add(t.direction.Mul(t.length * reveal).ToPoint())
	dc.MoveTo(t.start.X, t.start.Y)
	dc.LineTo(end.X, end.Y)
	if err := dc.Stroke(); err != nil {
		return err
	}

	if t.current == CurrentOff {
		return nil
	}
	col.A *= reveal
	dc.SetColor(col.Color())
	dir := t.direction
	if t.current == CurrentIn {
		dir = dir.Neg()
	}
	appendTriangle(dc, t.currentMid(), geom.AngleOf(dir), style.Symbol.CurrentArrowRadius)
	return dc.Fill()
}

// drawMarks renders the current label upright in world space. The context
// transform must hold the view only, without the owner's pose.
func (t *Terminal) drawMarks(dc *gg.Context, style *Style, alpha float64) error {
	if t.currentLabel == nil || t.current == CurrentOff {
		return nil
	}
	anchor := t.owner.toWorld(t.currentLabelAnchor(style))
	centre := t.owner.toWorld(t.currentMid())
	dir := markDirection(anchor, centre, style)
	return drawMark(dc, t.currentLabel, anchor, dir, style, alpha)
}

// SetCurrent points a terminal's current arrow and labels it in one
// call. An empty text leaves any existing label alone.
func SetCurrent(t *Terminal, d CurrentDirection, text string) {
	t.SetCurrent(d)
	if text != "" {
		t.SetCurrentLabel(text)
	}
}

// appendTriangle adds an equilateral triangle with the given circumradius
// to the current path, one vertex pointing along angle.
func appendTriangle(dc *gg.Context, center gg.Point, angle, radius float64) {
	for i := range 3 {
		a := angle + float64(i)*2*math.Pi/3
		p := center.Add(gg.Pt(radius*math.Cos(a), radius*math.Sin(a)))
		if i == 0 {
			dc.MoveTo(p.X, p.Y)
		} else {
			dc.LineTo(p.X, p.Y)
		}
	}
	dc.ClosePath()
}
