package schematic

import (
	"fmt"

	"github.com/gogpu/gg"

	"github.com/gogpu/schematic/internal/geom"
)

// Circuit groups components, nodes, and the wires connecting them, and
// renders them in a fixed order: components first, then wires, then
// nodes so junction blobs sit on top, then indicator overlays.
//
// Elements keep their own pose and style; the circuit only manages
// membership and connections.
type Circuit struct {
	elems []Element
	wires []*Wire
	style Style
}

// NewCircuit returns a circuit containing the given elements.
func NewCircuit(elems ...Element) *Circuit {
	c := &Circuit{style: CurrentStyle()}
	c.Add(elems...)
	return c
}

// Add inserts elements into the circuit. Wires, manual ones included,
// join the wire layer and attach to their terminals. Elements already
// present are skipped.
func (c *Circuit) Add(elems ...Element) {
	for _, e := range elems {
		switch w := e.(type) {
		case *Wire:
			c.addWire(w)
		case *ManualWire:
			c.addWire(&w.Wire)
		default:
			if c.indexOf(e) < 0 {
				c.elems = append(c.elems, e)
			}
		}
	}
}

// Remove takes elements out of the circuit. Removing a connectable
// element first removes every wire touching its terminals; removing a
// wire detaches both its ends.
func (c *Circuit) Remove(elems ...Element) {
	for _, e := range elems {
		switch w := e.(type) {
		case *Wire:
			c.removeWire(w)
		case *ManualWire:
			c.removeWire(&w.Wire)
		default:
			if conn, ok := e.(Connectable); ok {
				c.Isolate(conn.Terminals()...)
			}
			if i := c.indexOf(e); i >= 0 {
				c.elems = append(c.elems[:i], c.elems[i+1:]...)
			}
		}
	}
}

// Elements returns the circuit's elements, wires excluded, in insertion
// order.
func (c *Circuit) Elements() []Element {
	return append([]Element(nil), c.elems...)
}

// Wires returns the circuit's wires in insertion order.
func (c *Circuit) Wires() []*Wire {
	return append([]*Wire(nil), c.wires...)
}

func (c *Circuit) indexOf(e Element) int {
	for i, have := range c.elems {
		if have == e {
			return i
		}
	}
	return -1
}

func (c *Circuit) addWire(w *Wire) {
	for _, have := range c.wires {
		if have == w {
			return
		}
	}
	w.Attach()
	c.wires = append(c.wires, w)
}

func (c *Circuit) removeWire(w *Wire) {
	for i, have := range c.wires {
		if have == w {
			w.Detach()
			c.wires = append(c.wires[:i], c.wires[i+1:]...)
			return
		}
	}
}

// owns reports whether t belongs to an element in the circuit.
func (c *Circuit) owns(t *Terminal) bool {
	for _, e := range c.elems {
		conn, ok := e.(Connectable)
		if !ok {
			continue
		}
		for _, have := range conn.Terminals() {
			if have == t {
				return true
			}
		}
	}
	return false
}

// Connect wires two terminals together. Both must belong to elements
// already in the circuit, and they must differ.
func (c *Circuit) Connect(from, to *Terminal) (*Wire, error) {
	if !c.owns(from) {
		return nil, fmt.Errorf("%w: from terminal %q of %s", ErrForeignTerminal, from.Name(), from.Owner().Name())
	}
	if !c.owns(to) {
		return nil, fmt.Errorf("%w: to terminal %q of %s", ErrForeignTerminal, to.Name(), to.Owner().Name())
	}
	w, err := NewWire(from, to)
	if err != nil {
		return nil, err
	}
	c.addWire(w)
	return w, nil
}

// ConnectWire adds an externally built wire, such as a manual one, with
// the same terminal validation as Connect.
func (c *Circuit) ConnectWire(w *Wire) error {
	if !c.owns(w.From()) {
		return fmt.Errorf("%w: from terminal %q of %s", ErrForeignTerminal, w.From().Name(), w.From().Owner().Name())
	}
	if !c.owns(w.To()) {
		return fmt.Errorf("%w: to terminal %q of %s", ErrForeignTerminal, w.To().Name(), w.To().Owner().Name())
	}
	c.addWire(w)
	return nil
}

// Disconnect removes every wire running between the given terminals,
// that is, wires with both ends in the set. Terminals outside the
// circuit are ignored.
func (c *Circuit) Disconnect(terminals ...*Terminal) {
	set := terminalSet(terminals)
	c.dropWires(func(w *Wire) bool { return set[w.from] && set[w.to] })
}

// Isolate removes every wire touching any of the given terminals.
func (c *Circuit) Isolate(terminals ...*Terminal) {
	set := terminalSet(terminals)
	c.dropWires(func(w *Wire) bool { return set[w.from] || set[w.to] })
}

func terminalSet(terminals []*Terminal) map[*Terminal]bool {
	set := make(map[*Terminal]bool, len(terminals))
	for _, t := range terminals {
		set[t] = true
	}
	return set
}

func (c *Circuit) dropWires(drop func(*Wire) bool) {
	kept := c.wires[:0]
	for _, w := range c.wires {
		if drop(w) {
			w.Detach()
			continue
		}
		kept = append(kept, w)
	}
	c.wires = kept
}

// Draw renders every member onto dc in the circuit's layer order.
func (c *Circuit) Draw(dc *gg.Context) error {
	for _, want := range []int{layerComponent, layerWire, layerNode, layerOverlay} {
		if want == layerWire {
			for _, w := range c.wires {
				if err := w.Draw(dc); err != nil {
					return err
				}
			}
			continue
		}
		for _, e := range c.elems {
			if layerOf(e) != want {
				continue
			}
			if err := e.Draw(dc); err != nil {
				return err
			}
		}
	}
	return nil
}

const (
	layerComponent = iota
	layerWire
	layerNode
	layerOverlay
)

func layerOf(e Element) int {
	switch e.(type) {
	case *Node:
		return layerNode
	case *Voltage:
		return layerOverlay
	default:
		return layerComponent
	}
}

// Bounds returns the union of every member's bounding box.
func (c *Circuit) Bounds() gg.Rect {
	var b geom.Bounds
	for _, e := range c.elems {
		b.AddRect(e.Bounds())
	}
	for _, w := range c.wires {
		b.AddRect(w.Bounds())
	}
	return b.Rect()
}

// Anchors returns nil; circuits expose their members' anchors instead.
func (c *Circuit) Anchors() []Anchor { return nil }

// InstallView sets dc's transform for diagram drawing: the origin at
// the canvas centre, y up, and pixelsPerUnit device pixels per diagram
// unit.
func InstallView(dc *gg.Context, pixelsPerUnit float64) {
	dc.InvertY()
	dc.Translate(float64(dc.Width())/2, float64(dc.Height())/2)
	dc.Scale(pixelsPerUnit, pixelsPerUnit)
}

// Render draws the circuit on a fresh context of the given size,
// cleared to the style background, with the view installed by
// InstallView.
func (c *Circuit) Render(width, height int, pixelsPerUnit float64) (*gg.Context, error) {
	dc := gg.NewContext(width, height)
	dc.ClearWithColor(c.style.BackgroundColor())
	InstallView(dc, pixelsPerUnit)
	if err := c.Draw(dc); err != nil {
		return nil, err
	}
	return dc, nil
}
