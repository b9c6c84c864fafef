package symbols

import (
	"github.com/gogpu/gg"

	"github.com/gogpu/schematic"
)

// Diode is the circuit symbol for a diode: a filled triangle conducting
// left to right into a bar. The left terminal is the anode.
type Diode struct {
	schematic.Bipole
}

// NewDiode returns a diode.
func NewDiode(name string) *Diode {
	d := &Diode{}
	initDiode(&d.Bipole, name)
	return d
}

// Anode returns the left terminal, conducting into the triangle.
func (d *Diode) Anode() *schematic.Terminal { return d.Left() }

// Cathode returns the right terminal, at the bar.
func (d *Diode) Cathode() *schematic.Terminal { return d.Right() }

// LED is the circuit symbol for a light-emitting diode: a diode with two
// diagonal arrows leaving the body.
type LED struct {
	schematic.Bipole
}

// NewLED returns a light-emitting diode.
func NewLED(name string) *LED {
	l := &LED{}
	initDiode(&l.Bipole, name)
	lightArrows(&l.Bipole, true)
	return l
}

// Anode returns the left terminal.
func (l *LED) Anode() *schematic.Terminal { return l.Left() }

// Cathode returns the right terminal.
func (l *LED) Cathode() *schematic.Terminal { return l.Right() }

// Photodiode is the circuit symbol for a photodiode: a diode with two
// diagonal arrows striking the body.
type Photodiode struct {
	schematic.Bipole
}

// NewPhotodiode returns a photodiode.
func NewPhotodiode(name string) *Photodiode {
	p := &Photodiode{}
	initDiode(&p.Bipole, name)
	lightArrows(&p.Bipole, false)
	return p
}

// Anode returns the left terminal.
func (p *Photodiode) Anode() *schematic.Terminal { return p.Left() }

// Cathode returns the right terminal.
func (p *Photodiode) Cathode() *schematic.Terminal { return p.Right() }

func initDiode(b *schematic.Bipole, name string) {
	sym := schematic.CurrentStyle().Symbol
	halfLen := sym.SquareBipoleSideLength / 4
	halfHeight := sym.BipoleHeight / 2
	schematic.InitBipoleSpan(b, name, halfLen)

	p := b.Body()
	p.MoveTo(-halfLen, halfHeight)
	p.LineTo(halfLen, 0)
	p.LineTo(-halfLen, -halfHeight)
	p.Close()
	line(p, halfLen, -halfHeight, halfLen, halfHeight)

	tri := gg.NewPath()
	tri.MoveTo(-halfLen, halfHeight)
	tri.LineTo(halfLen, 0)
	tri.LineTo(-halfLen, -halfHeight)
	tri.Close()
	b.AddFill(tri)

	b.SetMarkAnchors(gg.Pt(0, halfHeight), gg.Pt(0, -halfHeight))
}

// lightArrows lays the two diagonal light arrows, outward from the body
// for emitters and inward for detectors, and lifts the label anchor
// clear of them.
func lightArrows(b *schematic.Bipole, outward bool) {
	sym := b.Style().Symbol
	s := sym.SquareBipoleSideLength
	halfHeight := sym.BipoleHeight / 2
	length := 0.35 * s
	tipLen := sym.ArrowTipLength / 2
	dir := schematic.UpRight

	tips := gg.NewPath()
	for i := range 2 {
		inner := gg.Pt(-s/8+float64(i)*s/8, halfHeight+s/16)
		outer := inner.Add(dir.Mul(length).ToPoint())
		if outward {
			appendArrow(b.Arrows(), tips, inner, outer, tipLen)
		} else {
			appendArrow(b.Arrows(), tips, outer, inner, tipLen)
		}
	}
	b.AddFill(tips)
	b.SetMarkAnchors(gg.Pt(0, halfHeight+s/16+length*dir.Y), gg.Pt(0, -halfHeight))
}
