package symbols

import (
	"github.com/gogpu/gg"

	"github.com/gogpu/schematic"
)

// Capacitor is the circuit symbol for a capacitor: two parallel plates.
// The terminal stems run from the plates outward, so the plate gap sits
// at the symbol's centre.
type Capacitor struct {
	schematic.Bipole
}

// NewCapacitor returns a capacitor.
func NewCapacitor(name string) *Capacitor {
	c := &Capacitor{}
	initCapacitor(&c.Bipole, name)
	return c
}

// VariableCapacitor is the circuit symbol for a variable capacitor: a
// capacitor crossed by a diagonal arrow.
type VariableCapacitor struct {
	schematic.Bipole
}

// NewVariableCapacitor returns a variable capacitor.
func NewVariableCapacitor(name string) *VariableCapacitor {
	v := &VariableCapacitor{}
	initCapacitor(&v.Bipole, name)
	variableArrow(&v.Bipole)
	return v
}

func initCapacitor(b *schematic.Bipole, name string) {
	sym := schematic.CurrentStyle().Symbol
	halfGap := sym.PlateGap / 2
	halfHeight := sym.PlateHeight / 2
	schematic.InitBipoleSpan(b, name, halfGap)

	p := b.Body()
	line(p, -halfGap, -halfHeight, -halfGap, halfHeight)
	line(p, halfGap, -halfHeight, halfGap, halfHeight)
	b.SetMarkAnchors(gg.Pt(0, halfHeight), gg.Pt(0, -halfHeight))
}
