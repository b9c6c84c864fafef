package schematic

import (
	"math"

	"github.com/gogpu/gg"

	"github.com/gogpu/schematic/internal/geom"
)

// wireEndExtension is how far a wire reaches past each terminal end,
// back along the stem, so the two strokes join without a visible seam.
const wireEndExtension = 0.001

// Wire connects two terminals with horizontal and vertical segments.
// The route is recomputed from the terminals' current world poses on
// every draw, so a wire follows its components when they move.
//
// Wires are normally created through [Circuit.Connect]. A standalone
// wire works too, but does not maintain terminal attachment counts
// unless Attach is called.
type Wire struct {
	from, to *Terminal
	style    Style
	opacity  float64
	reveal   float64

	manual  bool
	corners []gg.Point
}

// ManualWire is a wire whose corner points are fixed by the caller
// instead of routed automatically. The ends still follow their
// terminals; only the corners stay put.
type ManualWire struct {
	Wire
}

// NewWire returns an auto-routed wire between two distinct terminals.
func NewWire(from, to *Terminal) (*Wire, error) {
	if from == to {
		return nil, ErrSameTerminal
	}
	return &Wire{
		from:    from,
		to:      to,
		style:   CurrentStyle(),
		opacity: 1,
		reveal:  1,
	}, nil
}

// NewManualWire returns a wire running through the given corner points,
// in order from the first terminal to the second. Corners are in
// diagram units. With no corners the wire is a straight segment.
func NewManualWire(from, to *Terminal, corners ...gg.Point) (*ManualWire, error) {
	w, err := NewWire(from, to)
	if err != nil {
		return nil, err
	}
	w.manual = true
	w.corners = append([]gg.Point(nil), corners...)
	return &ManualWire{Wire: *w}, nil
}

// From returns the terminal the wire starts at.
func (w *Wire) From() *Terminal { return w.from }

// To returns the terminal the wire ends at.
func (w *Wire) To() *Terminal { return w.to }

// Attach records the wire on both terminals' attachment counts.
// [Circuit.Connect] calls this; standalone wires may call it directly.
func (w *Wire) Attach() {
	w.from.attach()
	w.to.attach()
}

// Detach removes the wire from both terminals' attachment counts.
func (w *Wire) Detach() {
	w.from.detach()
	w.to.detach()
}

// Opacity returns the wire's opacity.
func (w *Wire) Opacity() float64 { return w.opacity }

// SetOpacity sets the wire's opacity, clamped to [0, 1].
func (w *Wire) SetOpacity(opacity float64) { w.opacity = clamp01(opacity) }

// Reveal returns the revealed fraction of the wire.
func (w *Wire) Reveal() float64 { return w.reveal }

// SetReveal sets the drawn fraction of the wire, clamped to [0, 1].
// The wire grows from its first terminal.
func (w *Wire) SetReveal(reveal float64) { w.reveal = clamp01(reveal) }

// Points returns the wire's polyline in world space, recomputed from
// the terminals' current poses. The first and last points extend
// slightly into the terminal stems.
func (w *Wire) Points() []gg.Point {
	fromEnd, toEnd := w.from.End(), w.to.End()
	pts := []gg.Point{
		fromEnd.Sub(w.from.Direction().Mul(wireEndExtension).ToPoint()),
		fromEnd,
	}
	pts = append(pts, w.cornerPoints()...)
	return append(pts,
		toEnd,
		toEnd.Sub(w.to.Direction().Mul(wireEndExtension).ToPoint()),
	)
}

// cornerPoints routes the wire between its terminal ends. Terminal
// directions snap to the nearest cardinal, so routes use only
// horizontal and vertical segments.
func (w *Wire) cornerPoints() []gg.Point {
	if w.manual {
		return w.corners
	}
	fromEnd, toEnd := w.from.End(), w.to.End()
	fromDir := geom.Cardinalize(geom.Normalize(w.from.Direction()), math.Pi/4)
	toDir := geom.Cardinalize(geom.Normalize(w.to.Direction()), math.Pi/4)

	if math.Abs(fromDir.Dot(toDir)) < 0.5 {
		// Perpendicular terminals meet at a single corner.
		corner, ok := geom.RayIntersection(fromEnd, fromDir, toEnd, toDir)
		if !ok {
			return nil
		}
		if geom.Behind(corner, fromEnd, fromDir) || geom.Behind(corner, toEnd, toDir) {
			// The natural corner is behind a terminal; take the
			// opposite corner of the endpoints' bounding box.
			if corner.X == fromEnd.X {
				corner = gg.Pt(toEnd.X, fromEnd.Y)
			} else {
				corner = gg.Pt(fromEnd.X, toEnd.Y)
			}
			Logger().Debug("wire corner flipped",
				"from", w.from.Owner().Name(), "to", w.to.Owner().Name())
		}
		return []gg.Point{corner}
	}

	// Parallel terminals take an S-route across a crossbar through the
	// midpoint.
	mid := fromEnd.Lerp(toEnd, 0.5)
	toBehind := geom.Behind(toEnd, fromEnd, fromDir)
	fromBehind := geom.Behind(fromEnd, toEnd, toDir)
	switch {
	case toBehind && fromBehind:
		// Each end is behind the other's plane; route around with an
		// elbow instead.
		fromDir = fromDir.Rotate(math.Pi / 2)
		toDir = toDir.Rotate(math.Pi / 2)
		Logger().Debug("wire elbow route",
			"from", w.from.Owner().Name(), "to", w.to.Owner().Name())
	case toBehind:
		mid = geom.ForwardOfPlane(mid, fromEnd, fromDir)
	case fromBehind:
		mid = geom.ForwardOfPlane(mid, toEnd, toDir)
	}
	crossbar := fromDir.Perp().Neg()
	c1, ok1 := geom.RayIntersection(fromEnd, fromDir, mid, crossbar)
	c2, ok2 := geom.RayIntersection(toEnd, toDir, mid, crossbar)
	if !ok1 || !ok2 {
		return nil
	}
	return []gg.Point{c1, c2}
}

// Draw renders the wire as a stroked polyline.
func (w *Wire) Draw(dc *gg.Context) error {
	if w.opacity <= 0 || w.reveal <= 0 {
		return nil
	}
	pts := w.Points()
	col := w.style.StrokeColor()
	col.A *= w.opacity
	dc.SetColor(col.Color())
	dc.SetStroke(gg.RoundStroke().WithWidth(w.style.Symbol.WireStrokeWidth))

	path := gg.NewPath()
	path.MoveTo(pts[0].X, pts[0].Y)
	for _, p := range pts[1:] {
		path.LineTo(p.X, p.Y)
	}
	return strokeRevealed(dc, path, w.reveal)
}

// Bounds returns the bounding box of the wire's polyline.
func (w *Wire) Bounds() gg.Rect {
	var b geom.Bounds
	for _, p := range w.Points() {
		b.Add(p)
	}
	return b.Rect()
}

// Anchors returns nil; wires expose no attachment points of their own.
func (w *Wire) Anchors() []Anchor { return nil }
