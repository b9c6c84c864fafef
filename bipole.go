package schematic

import "github.com/gogpu/gg"

// Bipole is the scaffold of a two-terminal component: left and right
// terminals flanking a body built by a symbol constructor.
type Bipole struct {
	Component
}

// NewBipole returns a bipole scaffold for wide symbols. The terminal
// stems start a bipole width apart, so the body should span that width.
func NewBipole(name string) *Bipole {
	b := &Bipole{}
	InitBipole(b, name)
	return b
}

// NewSquareBipole returns a bipole scaffold for round and square symbols
// such as sources, whose body spans the style's square bipole side
// length.
func NewSquareBipole(name string) *Bipole {
	b := &Bipole{}
	InitSquareBipole(b, name)
	return b
}

// InitBipole initializes b in place as a bipole scaffold spanning the
// style's bipole width. Symbol types embedding Bipole by value
// initialize through this so the terminals keep pointing at the
// embedded component.
func InitBipole(b *Bipole, name string) {
	InitBipoleSpan(b, name, CurrentStyle().Symbol.BipoleWidth/2)
}

// InitSquareBipole initializes b in place as a bipole scaffold spanning
// the style's square bipole side length.
func InitSquareBipole(b *Bipole, name string) {
	half := CurrentStyle().Symbol.SquareBipoleSideLength / 2
	InitBipoleSpan(b, name, half)
	b.SetMarkAnchors(gg.Pt(0, half), gg.Pt(0, -half))
}

// InitBipoleSpan initializes b in place with terminal stems starting
// halfWidth either side of the origin. Narrow symbols whose terminals
// reach into the body, such as capacitor plates, use this directly.
func InitBipoleSpan(b *Bipole, name string, halfWidth float64) {
	initComponent(&b.Component, name)
	b.AddTerminal("left", gg.Pt(-halfWidth, 0), Left)
	b.AddTerminal("right", gg.Pt(halfWidth, 0), Right)
	edge := b.style.Symbol.BipoleHeight / 2
	b.SetMarkAnchors(gg.Pt(0, edge), gg.Pt(0, -edge))
}

// Left returns the terminal extending leftward in local coordinates.
func (b *Bipole) Left() *Terminal { return b.terminals[0] }

// Right returns the terminal extending rightward in local coordinates.
func (b *Bipole) Right() *Terminal { return b.terminals[1] }

// Monopole is the scaffold of a single-terminal component such as a
// ground symbol. The terminal starts at the local origin and the body
// hangs opposite it. Monopoles take labels but not annotations.
type Monopole struct {
	Component
}

// NewMonopole returns a monopole scaffold whose terminal points along
// the unit direction dir.
func NewMonopole(name string, dir gg.Vec2) *Monopole {
	m := &Monopole{}
	InitMonopole(m, name, dir)
	return m
}

// InitMonopole initializes m in place. Like InitBipole, it exists for
// symbol types that embed Monopole by value.
func InitMonopole(m *Monopole, name string, dir gg.Vec2) {
	initComponent(&m.Component, name)
	m.monopole = true
	m.AddTerminal("terminal", gg.Pt(0, 0), dir)
	half := m.style.Symbol.SquareBipoleSideLength / 2
	m.SetMarkAnchors(dir.Neg().Mul(half).ToPoint(), gg.Pt(0, 0))
}

// Terminal returns the monopole's sole terminal.
func (m *Monopole) Terminal() *Terminal { return m.terminals[0] }
