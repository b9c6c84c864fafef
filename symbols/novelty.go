package symbols

import (
	"github.com/gogpu/gg"

	"github.com/gogpu/schematic"
)

// Mandatory xkcd: https://xkcd.com/2818/.
// The symbols (or aliases) of Randall Munroe's circuit diagram.

// PlateSource is a cell-like symbol with an arbitrary pattern of long
// and short plates, one plate gap apart. True marks a long plate.
type PlateSource struct {
	schematic.Bipole
}

// NewPlateSource returns a plate source drawing the given pattern left
// to right. An empty pattern gets a single long plate.
func NewPlateSource(name string, pattern []bool) *PlateSource {
	if len(pattern) == 0 {
		pattern = []bool{true}
	}
	p := &PlateSource{}
	sym := schematic.CurrentStyle().Symbol
	halfWidth := 0.5 * float64(len(pattern)-1) * sym.PlateGap
	schematic.InitBipoleSpan(&p.Bipole, name, halfWidth)

	longHalf := sym.PlateHeight / 2
	shortHalf := longHalf / 2
	body := p.Body()
	x := -halfWidth
	for _, long := range pattern {
		half := shortHalf
		if long {
			half = longHalf
		}
		line(body, x, -half, x, half)
		x += sym.PlateGap
	}
	p.SetMarkAnchors(gg.Pt(0, longHalf), gg.Pt(0, -longHalf))
	return p
}

// Positive returns the right terminal.
func (p *PlateSource) Positive() *schematic.Terminal { return p.Right() }

// Negative returns the left terminal.
func (p *PlateSource) Negative() *schematic.Terminal { return p.Left() }

// SetVoltage sets the source's voltage label.
func (p *PlateSource) SetVoltage(text string) { p.SetLabel(text) }

// ClearVoltage removes the voltage label.
func (p *PlateSource) ClearVoltage() { p.ClearLabel() }

// Baertty is Randall Munroe's baertty.
type Baertty = PlateSource

// NewBaertty returns a baertty.
func NewBaertty(name string) *Baertty {
	return NewPlateSource(name, []bool{false, false, true, true})
}

// Battttttttttttery is Randall Munroe's battttttttttttery.
type Battttttttttttery = PlateSource

// NewBattttttttttttery returns a battttttttttttery.
func NewBattttttttttttery(name string) *Battttttttttttery {
	pattern := []bool{false, true}
	for range 6 {
		pattern = append(pattern, false)
	}
	pattern = append(pattern, true)
	return NewPlateSource(name, pattern)
}

// Drawbridge is Randall Munroe's drawbridge.
type Drawbridge = Switch

// NewDrawbridge returns a drawbridge, which is to say a switch.
func NewDrawbridge(name string) *Drawbridge { return NewSwitch(name) }

// Overpass is Randall Munroe's overpass.
type Overpass = Capacitor

// NewOverpass returns an overpass, which is to say a capacitor.
func NewOverpass(name string) *Overpass { return NewCapacitor(name) }

// PogoStick is Randall Munroe's pogo stick.
type PogoStick = Earth

// NewPogoStick returns a pogo stick, which is to say an earth ground.
func NewPogoStick(name string) *PogoStick { return NewEarth(name) }

// CheckOutThisReallyCoolDiode is worth checking out.
type CheckOutThisReallyCoolDiode = Photodiode

// NewCheckOutThisReallyCoolDiode returns a really cool diode.
func NewCheckOutThisReallyCoolDiode(name string) *CheckOutThisReallyCoolDiode {
	return NewPhotodiode(name)
}
