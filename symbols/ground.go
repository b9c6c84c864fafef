package symbols

import (
	"github.com/gogpu/gg"

	"github.com/gogpu/schematic"
)

// Earth is the earth-ground monopole: three shortening bars below the
// terminal.
type Earth struct {
	schematic.Monopole
}

// NewEarth returns an earth ground whose terminal points up.
func NewEarth(name string) *Earth {
	e := &Earth{}
	schematic.InitMonopole(&e.Monopole, name, schematic.Up)
	s := e.Style().Symbol.SquareBipoleSideLength
	gap := s / 8
	p := e.Body()
	line(p, -s/4, 0, s/4, 0)
	line(p, -s/6, -gap, s/6, -gap)
	line(p, -s/12, -2*gap, s/12, -2*gap)
	e.SetMarkAnchors(gg.Pt(0, -2*gap), gg.Pt(0, 0))
	return e
}

// Chassis is the chassis-ground monopole: a rail with three hatches.
type Chassis struct {
	schematic.Monopole
}

// NewChassis returns a chassis ground whose terminal points up.
func NewChassis(name string) *Chassis {
	c := &Chassis{}
	schematic.InitMonopole(&c.Monopole, name, schematic.Up)
	s := c.Style().Symbol.SquareBipoleSideLength
	hatch := s / 8
	p := c.Body()
	line(p, -s/4, 0, s/4, 0)
	for i := range 3 {
		x := -s/4 + float64(i)*s/4
		line(p, x, 0, x-hatch, -hatch)
	}
	c.SetMarkAnchors(gg.Pt(0, -hatch), gg.Pt(0, 0))
	return c
}
