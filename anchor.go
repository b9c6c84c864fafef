package schematic

import "github.com/gogpu/gg"

// AnchorKind identifies what an anchor is for. Anchors are the attachment
// points that marks, wires, and indicators position themselves against.
type AnchorKind int

const (
	// AnchorTerminal sits at the outer end of a terminal.
	AnchorTerminal AnchorKind = iota
	// AnchorCentre sits at the component's centre of rotation.
	AnchorCentre
	// AnchorLabel is the attachment point for the label mark.
	AnchorLabel
	// AnchorAnnotation is the attachment point for the annotation mark.
	AnchorAnnotation
	// AnchorCurrent sits on a terminal's current arrow.
	AnchorCurrent
	// AnchorVoltage sits at the outer midpoint of a voltage arc.
	AnchorVoltage
)

// String returns the anchor kind name.
func (k AnchorKind) String() string {
	switch k {
	case AnchorTerminal:
		return "terminal"
	case AnchorCentre:
		return "centre"
	case AnchorLabel:
		return "label"
	case AnchorAnnotation:
		return "annotation"
	case AnchorCurrent:
		return "current"
	case AnchorVoltage:
		return "voltage"
	}
	return "unknown"
}

// debugColor returns the dot color used when Style.Debug.Anchors is on.
// Each kind keeps a fixed color so diagrams can be read at a glance.
func (k AnchorKind) debugColor() gg.RGBA {
	switch k {
	case AnchorTerminal:
		return gg.Green
	case AnchorCentre:
		return gg.Magenta
	case AnchorLabel:
		return gg.Red
	case AnchorAnnotation:
		return gg.Blue
	case AnchorCurrent:
		return gg.RGB(1, 0.5, 0)
	case AnchorVoltage:
		return gg.Cyan
	}
	return gg.White
}

// Anchor is a world-space snapshot of an attachment point, as reported by
// an element's Anchors method.
type Anchor struct {
	Kind AnchorKind
	Pos  gg.Point
}

// debugAnchorRadius is the dot radius for debug anchor rendering, in
// diagram units.
const debugAnchorRadius = 0.03

// drawDebugAnchors dots each anchor in its kind color. The context
// transform must already map diagram units to the device.
func drawDebugAnchors(dc *gg.Context, anchors []Anchor) {
	for _, a := range anchors {
		dc.SetColor(a.Kind.debugColor().Color())
		dc.DrawCircle(a.Pos.X, a.Pos.Y, debugAnchorRadius)
		dc.Fill()
	}
}
