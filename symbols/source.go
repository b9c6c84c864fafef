package symbols

import (
	"github.com/gogpu/gg"

	"github.com/gogpu/schematic"
)

// VoltageSource is the circuit symbol for an independent voltage source.
// European styling draws a line along the terminal axis with a polarity
// arrow above the body pointing at the positive terminal; american
// styling draws plus and minus marks inside the body.
type VoltageSource struct {
	schematic.Bipole
}

// NewVoltageSource returns a voltage source with a round body.
func NewVoltageSource(name string) *VoltageSource {
	v := &VoltageSource{}
	schematic.InitSquareBipole(&v.Bipole, name)
	roundBody(&v.Bipole)
	voltageInterior(&v.Bipole)
	return v
}

// Positive returns the right terminal.
func (v *VoltageSource) Positive() *schematic.Terminal { return v.Right() }

// Negative returns the left terminal.
func (v *VoltageSource) Negative() *schematic.Terminal { return v.Left() }

// SetVoltage sets the source's voltage label. Under the european
// convention the label sits on the polarity arrow.
func (v *VoltageSource) SetVoltage(text string) { v.SetLabel(text) }

// ClearVoltage removes the voltage label.
func (v *VoltageSource) ClearVoltage() { v.ClearLabel() }

// ControlledVoltageSource is a voltage source with a diamond body,
// marking its voltage as dependent on another quantity.
type ControlledVoltageSource struct {
	schematic.Bipole
}

// NewControlledVoltageSource returns a controlled voltage source.
func NewControlledVoltageSource(name string) *ControlledVoltageSource {
	v := &ControlledVoltageSource{}
	schematic.InitSquareBipole(&v.Bipole, name)
	diamondBody(&v.Bipole)
	voltageInterior(&v.Bipole)
	return v
}

// Positive returns the right terminal.
func (v *ControlledVoltageSource) Positive() *schematic.Terminal { return v.Right() }

// Negative returns the left terminal.
func (v *ControlledVoltageSource) Negative() *schematic.Terminal { return v.Left() }

// SetVoltage sets the source's voltage label.
func (v *ControlledVoltageSource) SetVoltage(text string) { v.SetLabel(text) }

// ClearVoltage removes the voltage label.
func (v *ControlledVoltageSource) ClearVoltage() { v.ClearLabel() }

// CurrentSource is the circuit symbol for an independent current source.
// European styling draws a line across the body perpendicular to the
// terminal axis; american styling draws an arrow along the axis.
type CurrentSource struct {
	schematic.Bipole
}

// NewCurrentSource returns a current source with a round body.
func NewCurrentSource(name string) *CurrentSource {
	c := &CurrentSource{}
	schematic.InitSquareBipole(&c.Bipole, name)
	roundBody(&c.Bipole)
	currentInterior(&c.Bipole)
	return c
}

// Positive returns the right terminal, which the current leaves.
func (c *CurrentSource) Positive() *schematic.Terminal { return c.Right() }

// Negative returns the left terminal.
func (c *CurrentSource) Negative() *schematic.Terminal { return c.Left() }

// SetCurrentLabel labels the source's current. European sources put the
// label on an arrow out of the positive terminal; american sources use
// the component label, as the body already carries an arrow.
func (c *CurrentSource) SetCurrentLabel(text string) {
	if c.Style().Convention == schematic.American {
		c.SetLabel(text)
		return
	}
	c.Positive().SetCurrent(schematic.CurrentOut)
	c.Positive().SetCurrentLabel(text)
}

// ClearCurrentLabel removes the current label.
func (c *CurrentSource) ClearCurrentLabel() {
	if c.Style().Convention == schematic.American {
		c.ClearLabel()
		return
	}
	c.Positive().ClearCurrent()
}

// ControlledCurrentSource is a current source with a diamond body.
type ControlledCurrentSource struct {
	schematic.Bipole
}

// NewControlledCurrentSource returns a controlled current source.
func NewControlledCurrentSource(name string) *ControlledCurrentSource {
	c := &ControlledCurrentSource{}
	schematic.InitSquareBipole(&c.Bipole, name)
	diamondBody(&c.Bipole)
	currentInterior(&c.Bipole)
	return c
}

// Positive returns the right terminal, which the current leaves.
func (c *ControlledCurrentSource) Positive() *schematic.Terminal { return c.Right() }

// Negative returns the left terminal.
func (c *ControlledCurrentSource) Negative() *schematic.Terminal { return c.Left() }

// SetCurrentLabel labels the source's current.
func (c *ControlledCurrentSource) SetCurrentLabel(text string) {
	if c.Style().Convention == schematic.American {
		c.SetLabel(text)
		return
	}
	c.Positive().SetCurrent(schematic.CurrentOut)
	c.Positive().SetCurrentLabel(text)
}

// ClearCurrentLabel removes the current label.
func (c *ControlledCurrentSource) ClearCurrentLabel() {
	if c.Style().Convention == schematic.American {
		c.ClearLabel()
		return
	}
	c.Positive().ClearCurrent()
}

// ACSource is the circuit symbol for an alternating voltage source: a
// round body crossed by one cycle of a sine wave under either
// convention.
type ACSource struct {
	schematic.Bipole
}

// NewACSource returns an alternating voltage source.
func NewACSource(name string) *ACSource {
	a := &ACSource{}
	schematic.InitSquareBipole(&a.Bipole, name)
	roundBody(&a.Bipole)

	half := a.Style().Symbol.SquareBipoleSideLength / 2
	span := half / 2
	amp := half / 4
	p := a.Body()
	p.MoveTo(-span, 0)
	p.QuadraticTo(-span/2, 2*amp, 0, 0)
	p.QuadraticTo(span/2, -2*amp, span, 0)
	return a
}

// SetVoltage sets the source's voltage label.
func (a *ACSource) SetVoltage(text string) { a.SetLabel(text) }

// ClearVoltage removes the voltage label.
func (a *ACSource) ClearVoltage() { a.ClearLabel() }

func roundBody(b *schematic.Bipole) {
	half := b.Style().Symbol.SquareBipoleSideLength / 2
	b.Body().Circle(0, 0, half)
}

func diamondBody(b *schematic.Bipole) {
	half := b.Style().Symbol.SquareBipoleSideLength / 2
	p := b.Body()
	p.MoveTo(-half, 0)
	p.LineTo(0, half)
	p.LineTo(half, 0)
	p.LineTo(0, -half)
	p.Close()
}

// voltageInterior lays the convention's voltage-source markings.
func voltageInterior(b *schematic.Bipole) {
	half := b.Style().Symbol.SquareBipoleSideLength / 2
	if b.Style().Convention == schematic.American {
		plusMinusMarks(b, half)
		return
	}
	line(b.Body(), -half, 0, half, 0)
	polarityArrow(b)
}

// polarityArrow lays the european voltage arrow above the body, pointing
// at the positive terminal, and moves the label anchor to its midpoint.
func polarityArrow(b *schematic.Bipole) {
	sym := b.Style().Symbol
	half := sym.SquareBipoleSideLength / 2
	mid := gg.Pt(0, 1.4*half)
	halfLength := 0.9 * half
	tips := gg.NewPath()
	appendArrow(b.Arrows(), tips, gg.Pt(-halfLength, mid.Y), gg.Pt(halfLength, mid.Y), sym.ArrowTipLength)
	b.AddFill(tips)
	b.SetMarkAnchors(mid, gg.Pt(0, -half))
}

// plusMinusMarks lays the american polarity marks: a plus on the
// positive side of the body, a minus on the negative side.
func plusMinusMarks(b *schematic.Bipole, half float64) {
	markHalf := half / 4
	cx := half / 2
	p := b.Arrows()
	line(p, cx-markHalf, 0, cx+markHalf, 0)
	line(p, cx, -markHalf, cx, markHalf)
	line(p, -cx-markHalf, 0, -cx+markHalf, 0)
}

// currentInterior lays the convention's current-source markings.
func currentInterior(b *schematic.Bipole) {
	sym := b.Style().Symbol
	half := sym.SquareBipoleSideLength / 2
	if b.Style().Convention == schematic.American {
		tips := gg.NewPath()
		appendArrow(b.Arrows(), tips, gg.Pt(-half/2, 0), gg.Pt(half/2, 0), sym.ArrowTipLength)
		b.AddFill(tips)
		return
	}
	line(b.Body(), 0, -half, 0, half)
}
