package schematic

import (
	"github.com/agnivade/levenshtein"
	"github.com/gogpu/gg"

	"github.com/gogpu/schematic/internal/geom"
	"github.com/gogpu/schematic/internal/pathtrim"
)

// Component is the base of every drawn circuit symbol. It owns the
// symbol's stroked geometry in local coordinates, the terminals wires
// attach to, and the label and annotation marks.
//
// Local coordinates are diagram units with the component's centre at the
// origin; the pose set with SetPosition and SetRotation maps them to
// world space. Geometry is laid down once, by the symbol constructors in
// package symbols or by custom component code, through Body, Arrows,
// AddFill, and AddTerminal.
//
// A Component captures the package style when constructed, so style
// changes never restyle existing elements.
type Component struct {
	name     string
	style    Style
	position gg.Point
	rotation float64
	opacity  float64
	reveal   float64

	body   *gg.Path
	arrows *gg.Path
	fills  []*gg.Path
	dots   []gg.Point

	terminals []*Terminal

	label            *Mark
	annotation       *Mark
	labelAnchor      gg.Point
	annotationAnchor gg.Point

	monopole bool
}

func initComponent(c *Component, name string) {
	c.name = name
	c.style = CurrentStyle()
	c.opacity = 1
	c.reveal = 1
	c.body = gg.NewPath()
	c.arrows = gg.NewPath()
}

// Name returns the component's display name, used in error messages.
func (c *Component) Name() string { return c.name }

// Style returns the style captured when the component was constructed.
func (c *Component) Style() Style { return c.style }

// Position returns the component's centre in world space.
func (c *Component) Position() gg.Point { return c.position }

// SetPosition moves the component's centre to p.
func (c *Component) SetPosition(p gg.Point) { c.position = p }

// Shift moves the component by delta.
func (c *Component) Shift(delta gg.Point) { c.position = c.position.Add(delta) }

// Rotation returns the component's rotation about its centre, in
// radians counter-clockwise.
func (c *Component) Rotation() float64 { return c.rotation }

// SetRotation sets the component's rotation about its centre.
func (c *Component) SetRotation(angle float64) { c.rotation = angle }

// RotateBy rotates the component about its centre by delta radians.
func (c *Component) RotateBy(delta float64) { c.rotation += delta }

// Opacity returns the component's opacity.
func (c *Component) Opacity() float64 { return c.opacity }

// SetOpacity sets the component's opacity, clamped to [0, 1]. Opacity
// scales every stroke, fill, and mark the component draws.
func (c *Component) SetOpacity(o float64) { c.opacity = clamp01(o) }

// Reveal returns the fraction of the component's strokes drawn.
func (c *Component) Reveal() float64 { return c.reveal }

// SetReveal sets the fraction of the component's strokes drawn, clamped
// to [0, 1]. Partially revealed strokes grow from their path starts;
// fills and marks fade in proportionally.
func (c *Component) SetReveal(fraction float64) { c.reveal = clamp01(fraction) }

// Body returns the symbol's main outline path, stroked at the style's
// component stroke width. Symbol constructors build into it.
func (c *Component) Body() *gg.Path { return c.body }

// Arrows returns the symbol's adornment path, stroked at the style's
// arrow stroke width. Variable-marking arrows and similar thin strokes
// build into it.
func (c *Component) Arrows() *gg.Path { return c.arrows }

// AddFill registers a closed path filled with the stroke color, such as
// an arrow tip or a solid plate.
func (c *Component) AddFill(p *gg.Path) { c.fills = append(c.fills, p) }

// AddContactDot registers an open circle of the style's node radius
// centred at the local point centre, drawn over the body with a
// background fill. Switch contacts use these.
func (c *Component) AddContactDot(centre gg.Point) { c.dots = append(c.dots, centre) }

// AddTerminal creates a terminal named name with its stem starting at
// the local point start and running along the unit direction dir, away
// from the body. The stem takes the style's terminal length.
func (c *Component) AddTerminal(name string, start gg.Point, dir gg.Vec2) *Terminal {
	t := &Terminal{
		owner:     c,
		name:      name,
		start:     start,
		direction: dir,
		length:    c.style.Symbol.TerminalLength,
	}
	c.terminals = append(c.terminals, t)
	return t
}

// Terminals returns the component's terminals in creation order.
func (c *Component) Terminals() []*Terminal { return c.terminals }

// terminalSuggestionMax is the largest edit distance at which a terminal
// name lookup failure still proposes the closest existing name.
const terminalSuggestionMax = 3

// TerminalNamed returns the terminal with the given name. Unknown names
// produce an *UnknownTerminalError carrying the closest existing name
// when one is plausibly a typo.
func (c *Component) TerminalNamed(name string) (*Terminal, error) {
	for _, t := range c.terminals {
		if t.name == name {
			return t, nil
		}
	}
	best, bestDist := "", 0
	for _, t := range c.terminals {
		d := levenshtein.ComputeDistance(name, t.name)
		if best == "" || d < bestDist {
			best, bestDist = t.name, d
		}
	}
	suggestion := ""
	if best != "" && bestDist <= terminalSuggestionMax {
		suggestion = best
	}
	return nil, &UnknownTerminalError{Component: c.name, Name: name, Suggestion: suggestion}
}

// Label returns the component's label mark, or nil if none is set.
func (c *Component) Label() *Mark { return c.label }

// SetLabel sets the component's label text, creating the mark on first
// use. The label sits against the label anchor, outside the body.
func (c *Component) SetLabel(text string) {
	if c.label == nil {
		c.label = newMark(text)
		return
	}
	c.label.SetText(text)
}

// ClearLabel removes the label mark.
func (c *Component) ClearLabel() { c.label = nil }

// Annotation returns the component's annotation mark, or nil.
func (c *Component) Annotation() *Mark { return c.annotation }

// SetAnnotation sets the component's annotation text, creating the mark
// on first use. The annotation sits against the annotation anchor, on
// the opposite side of the body from the label. Single-terminal
// components have no annotation side and return ErrMonopoleAnnotation.
func (c *Component) SetAnnotation(text string) error {
	if c.monopole {
		return ErrMonopoleAnnotation
	}
	if c.annotation == nil {
		c.annotation = newMark(text)
		return nil
	}
	c.annotation.SetText(text)
	return nil
}

// ClearAnnotation removes the annotation mark.
func (c *Component) ClearAnnotation() { c.annotation = nil }

// Voltage builds a voltage arrow across two of the component's own
// terminals, named as for TerminalNamed, arcing around the body. The
// component is always the arc's avoid target, overriding any WithAvoid
// option.
func (c *Component) Voltage(fromName, toName, text string, opts ...VoltageOption) (*Voltage, error) {
	from, err := c.TerminalNamed(fromName)
	if err != nil {
		return nil, err
	}
	to, err := c.TerminalNamed(toName)
	if err != nil {
		return nil, err
	}
	opts = append(opts, WithAvoid(c))
	return NewVoltage(from, to, text, opts...)
}

// SetMarkAnchors places the label and annotation attachment points, in
// local coordinates. Symbol constructors call this once with points just
// outside the body's top and bottom edges.
func (c *Component) SetMarkAnchors(label, annotation gg.Point) {
	c.labelAnchor = label
	c.annotationAnchor = annotation
}

// pose returns the local-to-world transform.
func (c *Component) pose() gg.Matrix {
	return gg.Translate(c.position.X, c.position.Y).Multiply(gg.Rotate(c.rotation))
}

func (c *Component) toWorld(p gg.Point) gg.Point {
	return c.pose().TransformPoint(p)
}

func (c *Component) toWorldVec(v gg.Vec2) gg.Vec2 {
	return gg.PointToVec2(c.pose().TransformVector(v.ToPoint()))
}

// Draw renders the component: terminal stems, body, arrows, and fills
// under the pose, then the marks upright in world space.
func (c *Component) Draw(dc *gg.Context) error {
	if c.opacity <= 0 || c.reveal <= 0 {
		return nil
	}
	if err := c.drawPosed(dc); err != nil {
		return err
	}
	style := &c.style
	markAlpha := c.opacity * c.reveal
	if err := c.drawMarks(dc, style, markAlpha); err != nil {
		return err
	}
	for _, t := range c.terminals {
		if err := t.drawMarks(dc, style, markAlpha); err != nil {
			return err
		}
	}
	if style.Debug.Anchors {
		drawDebugAnchors(dc, c.Anchors())
	}
	return nil
}

// drawPosed renders everything that rotates with the component.
func (c *Component) drawPosed(dc *gg.Context) error {
	style := &c.style
	dc.Push()
	defer dc.Pop()
	dc.Translate(c.position.X, c.position.Y)
	dc.Rotate(c.rotation)

	for _, t := range c.terminals {
		if err := t.drawLocal(dc, style, c.opacity, c.reveal); err != nil {
			return err
		}
	}

	col := style.StrokeColor()
	col.A *= c.opacity
	dc.SetColor(col.Color())
	dc.SetStroke(gg.RoundStroke().WithWidth(style.Symbol.ComponentStrokeWidth))
	if err := strokeRevealed(dc, c.body, c.reveal); err != nil {
		return err
	}
	dc.SetStroke(gg.RoundStroke().WithWidth(style.Symbol.ArrowStrokeWidth))
	if err := strokeRevealed(dc, c.arrows, c.reveal); err != nil {
		return err
	}

	col.A *= c.reveal
	dc.SetColor(col.Color())
	for _, f := range c.fills {
		appendPath(dc, f)
		if err := dc.Fill(); err != nil {
			return err
		}
	}

	if len(c.dots) > 0 {
		fill := style.BackgroundColor()
		fill.A *= c.opacity * c.reveal
		dc.SetStroke(gg.RoundStroke().WithWidth(style.Symbol.WireStrokeWidth))
		for _, d := range c.dots {
			dc.DrawCircle(d.X, d.Y, style.Symbol.NodeRadius)
			dc.SetColor(fill.Color())
			if err := dc.FillPreserve(); err != nil {
				return err
			}
			dc.SetColor(col.Color())
			if err := dc.Stroke(); err != nil {
				return err
			}
		}
	}
	return nil
}

func (c *Component) drawMarks(dc *gg.Context, style *Style, alpha float64) error {
	if c.label != nil {
		anchor := c.toWorld(c.labelAnchor)
		dir := markDirection(anchor, c.position, style)
		if err := drawMark(dc, c.label, anchor, dir, style, alpha); err != nil {
			return err
		}
	}
	if c.annotation != nil {
		anchor := c.toWorld(c.annotationAnchor)
		dir := markDirection(anchor, c.position, style)
		if err := drawMark(dc, c.annotation, anchor, dir, style, alpha); err != nil {
			return err
		}
	}
	return nil
}

// Anchors returns the component's attachment points in world space: the
// centre, each terminal end, current arrow centres, and the mark anchors.
func (c *Component) Anchors() []Anchor {
	anchors := []Anchor{{Kind: AnchorCentre, Pos: c.position}}
	for _, t := range c.terminals {
		anchors = append(anchors, Anchor{Kind: AnchorTerminal, Pos: t.End()})
		if t.current != CurrentOff {
			anchors = append(anchors, Anchor{Kind: AnchorCurrent, Pos: c.toWorld(t.currentMid())})
		}
	}
	anchors = append(anchors, Anchor{Kind: AnchorLabel, Pos: c.toWorld(c.labelAnchor)})
	if !c.monopole {
		anchors = append(anchors, Anchor{Kind: AnchorAnnotation, Pos: c.toWorld(c.annotationAnchor)})
	}
	return anchors
}

// Bounds returns the world-space bounding box of the component's
// geometry, terminals included. Curve control points are included, so
// the box is conservative for curved symbols.
func (c *Component) Bounds() gg.Rect {
	m := c.pose()
	var b geom.Bounds
	pathBounds(&b, c.body, m)
	pathBounds(&b, c.arrows, m)
	for _, f := range c.fills {
		pathBounds(&b, f, m)
	}
	for _, t := range c.terminals {
		b.Add(t.Start())
		b.Add(t.End())
	}
	r := c.style.Symbol.NodeRadius
	for _, d := range c.dots {
		w := m.TransformPoint(d)
		b.Add(gg.Pt(w.X-r, w.Y-r))
		b.Add(gg.Pt(w.X+r, w.Y+r))
	}
	b.Add(c.position)
	return b.Rect()
}

// strokeRevealed strokes p, trimmed to the leading reveal fraction of
// its arc length. The stroke style must already be set.
func strokeRevealed(dc *gg.Context, p *gg.Path, reveal float64) error {
	if p == nil || len(p.Elements()) == 0 {
		return nil
	}
	if reveal < 1 {
		p = pathtrim.Trim(p, 0, reveal)
	}
	appendPath(dc, p)
	return dc.Stroke()
}

// appendPath replays p's elements onto the context's current path,
// mapping them through the context transform.
func appendPath(dc *gg.Context, p *gg.Path) {
	for _, el := range p.Elements() {
		switch e := el.(type) {
		case gg.MoveTo:
			dc.MoveTo(e.Point.X, e.Point.Y)
		case gg.LineTo:
			dc.LineTo(e.Point.X, e.Point.Y)
		case gg.QuadTo:
			dc.QuadraticTo(e.Control.X, e.Control.Y, e.Point.X, e.Point.Y)
		case gg.CubicTo:
			dc.CubicTo(e.Control1.X, e.Control1.Y, e.Control2.X, e.Control2.Y, e.Point.X, e.Point.Y)
		case gg.Close:
			dc.ClosePath()
		}
	}
}

// pathBounds folds p's points, transformed by m, into b.
func pathBounds(b *geom.Bounds, p *gg.Path, m gg.Matrix) {
	if p == nil {
		return
	}
	for _, el := range p.Elements() {
		switch e := el.(type) {
		case gg.MoveTo:
			b.Add(m.TransformPoint(e.Point))
		case gg.LineTo:
			b.Add(m.TransformPoint(e.Point))
		case gg.QuadTo:
			b.Add(m.TransformPoint(e.Control))
			b.Add(m.TransformPoint(e.Point))
		case gg.CubicTo:
			b.Add(m.TransformPoint(e.Control1))
			b.Add(m.TransformPoint(e.Control2))
			b.Add(m.TransformPoint(e.Point))
		}
	}
}
