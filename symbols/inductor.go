package symbols

import (
	"math"

	"github.com/gogpu/schematic"
)

// Inductor is the circuit symbol for an inductor: four semicircular
// humps along the terminal axis.
type Inductor struct {
	schematic.Bipole
}

// NewInductor returns an inductor.
func NewInductor(name string) *Inductor {
	l := &Inductor{}
	schematic.InitBipole(&l.Bipole, name)
	r := l.Style().Symbol.BipoleWidth / 8
	// Humps run left to right so the stroke grows terminal to terminal.
	for i := range 4 {
		cx := r * float64(-3+2*i)
		schematic.AppendArc(l.Body(), cx, 0, r, math.Pi, -math.Pi)
	}
	return l
}
