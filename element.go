package schematic

import "github.com/gogpu/gg"

// Unit direction vectors in the diagram plane. Y points up. The diagonal
// directions are unit length, not component sums.
var (
	Up        = gg.V2(0, 1)
	Down      = gg.V2(0, -1)
	Left      = gg.V2(-1, 0)
	Right     = gg.V2(1, 0)
	UpLeft    = gg.V2(-halfSqrt2, halfSqrt2)
	UpRight   = gg.V2(halfSqrt2, halfSqrt2)
	DownLeft  = gg.V2(-halfSqrt2, -halfSqrt2)
	DownRight = gg.V2(halfSqrt2, -halfSqrt2)
)

const halfSqrt2 = 0.7071067811865476

// Element is anything a Circuit can own and render.
type Element interface {
	// Draw renders the element through dc. The context transform must
	// already map diagram units to the device.
	Draw(dc *gg.Context) error
	// Bounds returns the element's world-space bounding box.
	Bounds() gg.Rect
	// Anchors returns the element's attachment points in world space.
	Anchors() []Anchor
}

// Connectable is an element that exposes terminals for wiring.
type Connectable interface {
	Element
	// Terminals returns the element's terminals.
	Terminals() []*Terminal
	// TerminalNamed returns the terminal with the given name, or an
	// *UnknownTerminalError naming the closest match.
	TerminalNamed(name string) (*Terminal, error)
}

// Transformable is an element with a pose in the diagram plane.
type Transformable interface {
	Position() gg.Point
	SetPosition(p gg.Point)
	Rotation() float64
	SetRotation(angle float64)
}

// Fadeable is anything whose opacity can be set, including marks.
type Fadeable interface {
	Opacity() float64
	SetOpacity(o float64)
}

// Revealable is an element whose strokes can be drawn partially, from
// fraction 0 (nothing) to 1 (complete). Used by stroke-growing
// animations.
type Revealable interface {
	Reveal() float64
	SetReveal(fraction float64)
}

// Markable is an element that carries a label mark.
type Markable interface {
	Label() *Mark
	SetLabel(text string)
}

// Toggleable is an element with an open and a closed state.
type Toggleable interface {
	Open() bool
	SetOpen(open bool)
	Toggle()
}
