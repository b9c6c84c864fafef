package symbols

import (
	"github.com/gogpu/gg"

	"github.com/gogpu/schematic"
)

// Cells is the circuit symbol for a stack of electrochemical cells: a
// short and a long plate per cell, the long plate facing the positive
// (right) terminal.
type Cells struct {
	schematic.Bipole
}

// NewCells returns a stack of n cells. n below one is treated as one.
func NewCells(name string, n int) *Cells {
	if n < 1 {
		n = 1
	}
	c := &Cells{}
	sym := schematic.CurrentStyle().Symbol
	halfGap := sym.BipoleWidth / 12
	longHalf := 5 * halfGap
	shortHalf := longHalf / 2
	halfWidth := float64(2*n-1) * halfGap
	schematic.InitBipoleSpan(&c.Bipole, name, halfWidth)

	p := c.Body()
	for i := range n {
		shortX := -halfWidth + 4*float64(i)*halfGap
		longX := shortX + 2*halfGap
		line(p, shortX, -shortHalf, shortX, shortHalf)
		line(p, longX, -longHalf, longX, longHalf)
	}
	c.SetMarkAnchors(gg.Pt(0, longHalf), gg.Pt(0, -longHalf))
	return c
}

// NewCell returns a single cell.
func NewCell(name string) *Cells { return NewCells(name, 1) }

// NewDoubleCell returns two cells.
func NewDoubleCell(name string) *Cells { return NewCells(name, 2) }

// NewTripleCell returns three cells.
func NewTripleCell(name string) *Cells { return NewCells(name, 3) }

// NewQuadrupleCell returns four cells.
func NewQuadrupleCell(name string) *Cells { return NewCells(name, 4) }

// NewBattery returns a double cell, the conventional battery symbol.
func NewBattery(name string) *Cells { return NewDoubleCell(name) }

// Positive returns the right terminal, at the long plate.
func (c *Cells) Positive() *schematic.Terminal { return c.Right() }

// Negative returns the left terminal, at the short plate.
func (c *Cells) Negative() *schematic.Terminal { return c.Left() }

// SetVoltage sets the cell stack's voltage label.
func (c *Cells) SetVoltage(text string) { c.SetLabel(text) }

// ClearVoltage removes the voltage label.
func (c *Cells) ClearVoltage() { c.ClearLabel() }
