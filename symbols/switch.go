package symbols

import (
	"math"

	"github.com/gogpu/gg"

	"github.com/gogpu/schematic"
)

// openLeverAngle is the lever's rest angle above the axis when open.
const openLeverAngle = 30 * math.Pi / 180

// switchMech is the shared open/closed state of a switch, posed by a
// normalized throw running from 0 (closed pose) to 1 (open pose).
type switchMech struct {
	open    bool
	throw   float64
	rebuild func()
}

// Open reports whether the switch is open.
func (m *switchMech) Open() bool { return m.open }

// SetOpen opens or closes the switch, snapping the mechanism to the
// matching end of its travel.
func (m *switchMech) SetOpen(open bool) {
	m.open = open
	if open {
		m.SetThrow(1)
	} else {
		m.SetThrow(0)
	}
}

// Toggle flips the switch position.
func (m *switchMech) Toggle() { m.SetOpen(!m.open) }

// Throw returns the mechanism's position along its travel, 0 at the
// closed pose to 1 at the open pose.
func (m *switchMech) Throw() float64 { return m.throw }

// SetThrow poses the mechanism partway through its travel without
// changing the logical state. Switch animations sweep it.
func (m *switchMech) SetThrow(fraction float64) {
	m.throw = clamp01(fraction)
	if m.rebuild != nil {
		m.rebuild()
	}
}

// Switch is the circuit symbol for a lever-arm switch: a lever hinged at
// the left of two contact dots, raised when open.
type Switch struct {
	schematic.Bipole
	switchMech
}

// NewSwitch returns an open lever-arm switch.
func NewSwitch(name string) *Switch {
	s := &Switch{}
	schematic.InitSquareBipole(&s.Bipole, name)
	half := s.Style().Symbol.SquareBipoleSideLength / 2
	s.AddContactDot(gg.Pt(-half, 0))
	s.AddContactDot(gg.Pt(half, 0))
	s.rebuild = s.rebuildLever
	s.open = true
	s.throw = 1
	s.rebuildLever()
	return s
}

func (s *Switch) rebuildLever() {
	sym := s.Style().Symbol
	span := sym.SquareBipoleSideLength
	angle := s.throw * openLeverAngle
	p := s.Body()
	p.Clear()
	p.MoveTo(-span/2, 0)
	p.LineTo(-span/2+span*math.Cos(angle), span*math.Sin(angle))
}

// PushSwitch is the circuit symbol for a push-button switch: a contact
// bar on a stem with a button cap, sliding by the travel between poses.
// Push-to-make bars rest above the contacts; push-to-break bars rest
// pushed through below them.
type PushSwitch struct {
	schematic.Bipole
	switchMech
	pushToMake bool
}

// NewPushToMakeSwitch returns a push switch whose contacts meet when the
// button is pressed. It starts open, its rest state.
func NewPushToMakeSwitch(name string) *PushSwitch {
	return newPushSwitch(name, true, true)
}

// NewPushToBreakSwitch returns a push switch whose contacts part when
// the button is pressed. It starts closed, its rest state.
func NewPushToBreakSwitch(name string) *PushSwitch {
	return newPushSwitch(name, false, false)
}

func newPushSwitch(name string, pushToMake, open bool) *PushSwitch {
	s := &PushSwitch{pushToMake: pushToMake}
	schematic.InitSquareBipole(&s.Bipole, name)
	half := s.Style().Symbol.SquareBipoleSideLength / 2
	s.AddContactDot(gg.Pt(-half, 0))
	s.AddContactDot(gg.Pt(half, 0))
	s.rebuild = s.rebuildButton
	s.open = open
	if open {
		s.throw = 1
	}
	s.rebuildButton()
	return s
}

// PushToMake reports whether pressing the button closes the switch.
func (s *PushSwitch) PushToMake() bool { return s.pushToMake }

func (s *PushSwitch) rebuildButton() {
	sym := s.Style().Symbol
	half := sym.SquareBipoleSideLength / 2
	capHalf := sym.SquareBipoleSideLength / 8
	travel := 1.5 * sym.NodeRadius

	// barY and capY give the open pose; dy slides the assembly toward
	// the contacts as the throw closes.
	var barY, capY, dy float64
	if s.pushToMake {
		barY = sym.NodeRadius + travel
		capY = barY + travel
		dy = -travel * (1 - s.throw)
	} else {
		barY = -sym.NodeRadius - travel
		capY = sym.NodeRadius + travel
		dy = travel * (1 - s.throw)
	}

	p := s.Body()
	p.Clear()
	line(p, -half, barY+dy, half, barY+dy)
	line(p, 0, barY+dy, 0, capY+dy)
	line(p, -capHalf, capY+dy, capHalf, capY+dy)
}
