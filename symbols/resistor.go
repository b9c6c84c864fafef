package symbols

import (
	"github.com/gogpu/gg"

	"github.com/gogpu/schematic"
)

// Resistor is the circuit symbol for a resistor: a rectangular box under
// the european convention, a six-peak zigzag under the american one.
type Resistor struct {
	schematic.Bipole
}

// NewResistor returns a resistor.
func NewResistor(name string) *Resistor {
	r := &Resistor{}
	schematic.InitBipole(&r.Bipole, name)
	resistorBody(&r.Bipole)
	return r
}

// Thermistor is the circuit symbol for a thermistor: a resistor crossed
// by a bent tick.
type Thermistor struct {
	schematic.Bipole
}

// NewThermistor returns a thermistor.
func NewThermistor(name string) *Thermistor {
	t := &Thermistor{}
	schematic.InitBipole(&t.Bipole, name)
	resistorBody(&t.Bipole)

	sym := t.Style().Symbol
	halfWidth := 0.5 * sym.BipoleWidth
	halfHeight := 0.8 * sym.BipoleHeight
	base := 0.3 * sym.BipoleWidth

	p := t.Body()
	p.MoveTo(-halfWidth, -halfHeight)
	p.LineTo(-halfWidth+base, -halfHeight)
	p.LineTo(halfWidth, halfHeight)
	return t
}

// VariableResistor is the circuit symbol for a variable resistor: a
// resistor crossed by a diagonal arrow.
type VariableResistor struct {
	schematic.Bipole
}

// NewVariableResistor returns a variable resistor.
func NewVariableResistor(name string) *VariableResistor {
	v := &VariableResistor{}
	schematic.InitBipole(&v.Bipole, name)
	resistorBody(&v.Bipole)
	variableArrow(&v.Bipole)
	return v
}

// resistorBody lays the convention's resistor outline into b.
func resistorBody(b *schematic.Bipole) {
	sym := b.Style().Symbol
	if b.Style().Convention == schematic.American {
		zigzag(b.Body(), sym.BipoleWidth, sym.BipoleHeight)
		return
	}
	b.Body().Rectangle(-sym.BipoleWidth/2, -sym.BipoleHeight/2, sym.BipoleWidth, sym.BipoleHeight)
}

// zigzag appends the american resistor stroke: six peaks spanning width
// w, alternating between the symbol's top and bottom edges.
func zigzag(p *gg.Path, w, h float64) {
	const peaks = 6
	dx := w / (2 * peaks)
	p.MoveTo(-w/2, 0)
	y := h / 2
	for i := range peaks {
		p.LineTo(-w/2+dx*float64(1+2*i), y)
		y = -y
	}
	p.LineTo(w/2, 0)
}

// variableArrow lays the diagonal adjustment arrow across a symbol body,
// rising at twice the body height over seven tenths of its width.
func variableArrow(b *schematic.Bipole) {
	sym := b.Style().Symbol
	tail := gg.Pt(-0.35*sym.BipoleWidth, -sym.BipoleHeight)
	apex := gg.Pt(0.35*sym.BipoleWidth, sym.BipoleHeight)
	tips := gg.NewPath()
	appendArrow(b.Body(), tips, tail, apex, sym.ArrowTipLength)
	b.AddFill(tips)
}
