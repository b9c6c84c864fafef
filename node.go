package schematic

import (
	"fmt"
	"math"
	"sort"

	"github.com/gogpu/gg"

	"github.com/gogpu/schematic/internal/geom"
)

// BlobMode controls when a node draws its junction blob.
type BlobMode int

const (
	// BlobAuto shows the blob once more than two terminals exist.
	BlobAuto BlobMode = iota
	// BlobAlways shows the blob unconditionally.
	BlobAlways
	// BlobNever hides the blob unconditionally.
	BlobNever
)

// Node is a junction point wires meet at. Terminals are created on
// demand, one per distinct direction, and a repeated request for the
// same direction returns the existing terminal. Once more than two
// terminals exist, a solid blob marks the junction; SetBlob overrides
// that rule.
//
// An open node draws a hollow circle instead of a blob, marking an
// unconnected endpoint. Use NewOpenNode, or toggle with SetOpen.
type Node struct {
	Component
	open bool
	blob BlobMode
}

// NewNode returns a junction node.
func NewNode() *Node { return newNode("Node", false) }

// NewOpenNode returns an open-terminal node.
func NewOpenNode() *Node { return newNode("OpenNode", true) }

func newNode(name string, open bool) *Node {
	n := &Node{open: open}
	initComponent(&n.Component, name)
	n.monopole = true
	return n
}

// Toward returns the node's terminal pointing along dir, creating it on
// first use. Directions within rounding error of an existing terminal
// reuse it. A zero direction is treated as up.
func (n *Node) Toward(dir gg.Vec2) *Terminal {
	if dir.IsZero() {
		dir = Up
	}
	local := dir.Normalize().Rotate(-n.rotation)
	for _, t := range n.terminals {
		if t.direction.Approx(local, 1e-9) {
			return t
		}
	}
	return n.AddTerminal(directionName(local), gg.Pt(0, 0), local)
}

// TowardAngle returns the terminal at the given angle in radians,
// measured anticlockwise from the positive x axis, creating it on first
// use.
func (n *Node) TowardAngle(angle float64) *Terminal {
	return n.Toward(geom.FromAngle(angle))
}

// Right returns the terminal pointing right, creating it on first use.
func (n *Node) Right() *Terminal { return n.Toward(Right) }

// UpRight returns the terminal pointing up and right, creating it on
// first use.
func (n *Node) UpRight() *Terminal { return n.Toward(UpRight) }

// Up returns the terminal pointing up, creating it on first use.
func (n *Node) Up() *Terminal { return n.Toward(Up) }

// UpLeft returns the terminal pointing up and left, creating it on
// first use.
func (n *Node) UpLeft() *Terminal { return n.Toward(UpLeft) }

// Left returns the terminal pointing left, creating it on first use.
func (n *Node) Left() *Terminal { return n.Toward(Left) }

// DownLeft returns the terminal pointing down and left, creating it on
// first use.
func (n *Node) DownLeft() *Terminal { return n.Toward(DownLeft) }

// Down returns the terminal pointing down, creating it on first use.
func (n *Node) Down() *Terminal { return n.Toward(Down) }

// DownRight returns the terminal pointing down and right, creating it
// on first use.
func (n *Node) DownRight() *Terminal { return n.Toward(DownRight) }

// directionName names a terminal after its direction, using compass
// names for the cardinals and diagonals and degrees otherwise.
func directionName(dir gg.Vec2) string {
	named := []struct {
		dir  gg.Vec2
		name string
	}{
		{Right, "right"},
		{UpRight, "up-right"},
		{Up, "up"},
		{UpLeft, "up-left"},
		{Left, "left"},
		{DownLeft, "down-left"},
		{Down, "down"},
		{DownRight, "down-right"},
	}
	for _, c := range named {
		if dir.Approx(c.dir, 1e-9) {
			return c.name
		}
	}
	return fmt.Sprintf("%.1fdeg", geom.AngleOf(dir)*180/math.Pi)
}

// Open reports whether the node is open.
func (n *Node) Open() bool { return n.open }

// SetOpen switches the node between open and closed. Closing restores
// automatic blob visibility.
func (n *Node) SetOpen(open bool) {
	n.open = open
	if !open {
		n.blob = BlobAuto
	}
}

// Toggle flips the node between open and closed.
func (n *Node) Toggle() { n.SetOpen(!n.open) }

// Blob returns the node's blob mode.
func (n *Node) Blob() BlobMode { return n.blob }

// SetBlob overrides when the junction blob is shown.
func (n *Node) SetBlob(mode BlobMode) { n.blob = mode }

// blobShown reports whether the junction blob is drawn. Open nodes
// always draw their hollow circle.
func (n *Node) blobShown() bool {
	if n.open {
		return true
	}
	switch n.blob {
	case BlobAlways:
		return true
	case BlobNever:
		return false
	}
	return len(n.terminals) > 2
}

// Draw renders the stems, the blob, and the label. The label sits in
// the widest angular gap between stems, so it never crosses a wire.
func (n *Node) Draw(dc *gg.Context) error {
	if n.opacity <= 0 || n.reveal <= 0 {
		return nil
	}
	if err := n.drawPosed(dc); err != nil {
		return err
	}
	if err := n.drawBlob(dc); err != nil {
		return err
	}
	style := &n.style
	alpha := n.opacity * n.reveal
	if n.label != nil {
		dir := n.labelDirection()
		anchor := n.position.Add(dir.Mul(style.Symbol.NodeRadius).ToPoint())
		if err := drawMark(dc, n.label, anchor, dir, style, alpha); err != nil {
			return err
		}
	}
	for _, t := range n.terminals {
		if err := t.drawMarks(dc, style, alpha); err != nil {
			return err
		}
	}
	if style.Debug.Anchors {
		drawDebugAnchors(dc, n.Anchors())
	}
	return nil
}

func (n *Node) drawBlob(dc *gg.Context) error {
	if !n.blobShown() {
		return nil
	}
	style := &n.style
	alpha := n.opacity * n.reveal
	fill := style.StrokeColor()
	if n.open {
		fill = style.BackgroundColor()
	}
	fill.A *= alpha
	dc.SetColor(fill.Color())
	dc.DrawCircle(n.position.X, n.position.Y, style.Symbol.NodeRadius)
	if err := dc.FillPreserve(); err != nil {
		return err
	}
	col := style.StrokeColor()
	col.A *= alpha
	dc.SetColor(col.Color())
	dc.SetStroke(gg.RoundStroke().WithWidth(style.Symbol.WireStrokeWidth))
	return dc.Stroke()
}

const gapAngleEps = 1e-9

// labelDirection returns the placement direction for the node's label:
// the middle of the widest angular gap between stems. Among equally
// wide gaps the topmost wins, then the leftmost. A node with no
// terminals places its label above.
func (n *Node) labelDirection() gg.Vec2 {
	var angles []float64
	for _, t := range n.terminals {
		angles = append(angles, geom.AngleOf(t.Direction()))
	}
	if len(angles) == 0 {
		return Up
	}
	sort.Float64s(angles)

	maxGap := -1.0
	var candidates []gg.Vec2
	for i := range angles {
		a := angles[i]
		b := angles[(i+1)%len(angles)]
		if i == len(angles)-1 {
			b += 2 * math.Pi
		}
		gap := b - a
		mid := geom.FromAngle(a + gap/2)
		switch {
		case gap > maxGap+gapAngleEps:
			maxGap = gap
			candidates = append(candidates[:0], mid)
		case gap > maxGap-gapAngleEps:
			candidates = append(candidates, mid)
		}
	}

	best := candidates[0]
	for _, d := range candidates[1:] {
		if d.Y > best.Y+gapAngleEps {
			best = d
			continue
		}
		if math.Abs(d.Y-best.Y) <= gapAngleEps && d.X < best.X-gapAngleEps {
			best = d
		}
	}
	return geom.Cardinalize(best, n.style.CardinalMargin())
}

// Anchors returns the node's attachment points: the centre, terminal
// ends, and the computed label position.
func (n *Node) Anchors() []Anchor {
	anchors := []Anchor{{Kind: AnchorCentre, Pos: n.position}}
	for _, t := range n.terminals {
		anchors = append(anchors, Anchor{Kind: AnchorTerminal, Pos: t.End()})
		if t.current != CurrentOff {
			anchors = append(anchors, Anchor{Kind: AnchorCurrent, Pos: n.toWorld(t.currentMid())})
		}
	}
	dir := n.labelDirection()
	pos := n.position.Add(dir.Mul(n.style.Symbol.NodeRadius).ToPoint())
	anchors = append(anchors, Anchor{Kind: AnchorLabel, Pos: pos})
	return anchors
}

// Bounds returns the node's bounding box, blob included.
func (n *Node) Bounds() gg.Rect {
	r := n.style.Symbol.NodeRadius
	blob := gg.Rect{
		Min: gg.Pt(n.position.X-r, n.position.Y-r),
		Max: gg.Pt(n.position.X+r, n.position.Y+r),
	}
	return n.Component.Bounds().Union(blob)
}
