package anim

import (
	"github.com/gogpu/gg"

	"github.com/gogpu/schematic"
)

// Animation is a single effect driven by a timeline stage. Start runs
// once when the stage begins, Update receives the eased alpha in [0, 1],
// and Finish snaps the end state when the stage completes. A timeline
// may call Start again when seeking; implementations capture their
// starting state only on the first call.
type Animation interface {
	Start()
	Update(alpha float64)
	Finish()
}

// reveal sweeps a Revealable's stroke fraction between fixed endpoints.
type reveal struct {
	el       schematic.Revealable
	from, to float64
}

// Create returns an animation that draws el on, growing its strokes
// from nothing to complete.
func Create(el schematic.Revealable) Animation {
	return &reveal{el: el, from: 0, to: 1}
}

// Uncreate returns an animation that erases el, shrinking its strokes
// back to nothing.
func Uncreate(el schematic.Revealable) Animation {
	return &reveal{el: el, from: 1, to: 0}
}

// Grow returns an animation that sweeps a voltage indicator's arc and
// tip out from its starting terminal.
func Grow(v *schematic.Voltage) Animation {
	return &reveal{el: v, from: 0, to: 1}
}

func (r *reveal) Start()               { r.el.SetReveal(r.from) }
func (r *reveal) Update(alpha float64) { r.el.SetReveal(r.from + (r.to-r.from)*alpha) }
func (r *reveal) Finish()              { r.el.SetReveal(r.to) }

// fade ramps a Fadeable's opacity.
type fade struct {
	el       schematic.Fadeable
	in       bool
	end      float64
	captured bool
}

// FadeIn returns an animation that fades el up from transparent to its
// current opacity, or to fully opaque if it is currently invisible.
func FadeIn(el schematic.Fadeable) Animation {
	return &fade{el: el, in: true}
}

// FadeOut returns an animation that fades el to transparent.
func FadeOut(el schematic.Fadeable) Animation {
	return &fade{el: el}
}

func (f *fade) Start() {
	if !f.captured {
		f.end = f.el.Opacity()
		if f.in && f.end == 0 {
			f.end = 1
		}
		f.captured = true
	}
	f.Update(0)
}

func (f *fade) Update(alpha float64) {
	if f.in {
		f.el.SetOpacity(f.end * alpha)
		return
	}
	f.el.SetOpacity(f.end * (1 - alpha))
}

func (f *fade) Finish() {
	if f.in {
		f.el.SetOpacity(f.end)
		return
	}
	f.el.SetOpacity(0)
}

// move slides a Transformable between positions.
type move struct {
	el       schematic.Transformable
	delta    gg.Point
	to       gg.Point
	absolute bool
	from     gg.Point
	captured bool
}

// Shift returns an animation that slides el by delta from wherever it
// is when the stage starts.
func Shift(el schematic.Transformable, delta gg.Point) Animation {
	return &move{el: el, delta: delta}
}

// MoveTo returns an animation that slides el to the position to.
func MoveTo(el schematic.Transformable, to gg.Point) Animation {
	return &move{el: el, to: to, absolute: true}
}

func (m *move) Start() {
	if !m.captured {
		m.from = m.el.Position()
		if !m.absolute {
			m.to = m.from.Add(m.delta)
		}
		m.captured = true
	}
	m.el.SetPosition(m.from)
}

func (m *move) Update(alpha float64) {
	m.el.SetPosition(gg.Pt(
		m.from.X+(m.to.X-m.from.X)*alpha,
		m.from.Y+(m.to.Y-m.from.Y)*alpha,
	))
}

func (m *move) Finish() { m.el.SetPosition(m.to) }

// rotate turns a Transformable between angles. Marks reposition
// themselves from the current pose on every draw, so they stay upright
// throughout the turn.
type rotate struct {
	el       schematic.Transformable
	delta    float64
	to       float64
	absolute bool
	from     float64
	captured bool
}

// RotateBy returns an animation that turns el by delta radians,
// anticlockwise positive.
func RotateBy(el schematic.Transformable, delta float64) Animation {
	return &rotate{el: el, delta: delta}
}

// RotateTo returns an animation that turns el to the absolute angle.
func RotateTo(el schematic.Transformable, angle float64) Animation {
	return &rotate{el: el, to: angle, absolute: true}
}

func (r *rotate) Start() {
	if !r.captured {
		r.from = r.el.Rotation()
		if !r.absolute {
			r.to = r.from + r.delta
		}
		r.captured = true
	}
	r.el.SetRotation(r.from)
}

func (r *rotate) Update(alpha float64) {
	r.el.SetRotation(r.from + (r.to-r.from)*alpha)
}

func (r *rotate) Finish() { r.el.SetRotation(r.to) }

// relabel swaps a label's text through a dip to transparent. Elements
// carry a single label mark, so the outgoing text fades out over the
// first half and the incoming text fades in over the second.
type relabel struct {
	el       schematic.Markable
	text     string
	old      string
	hasOld   bool
	captured bool
}

// SetLabel returns an animation that replaces el's label text,
// crossfading at the midpoint.
func SetLabel(el schematic.Markable, text string) Animation {
	return &relabel{el: el, text: text}
}

func (r *relabel) Start() {
	if !r.captured {
		if m := r.el.Label(); m != nil {
			r.old = m.Text()
			r.hasOld = true
		}
		r.captured = true
	}
	r.Update(0)
}

func (r *relabel) Update(alpha float64) {
	if !r.hasOld {
		r.el.SetLabel(r.text)
		r.el.Label().SetOpacity(alpha)
		return
	}
	if alpha < 0.5 {
		r.el.SetLabel(r.old)
		r.el.Label().SetOpacity(1 - 2*alpha)
		return
	}
	r.el.SetLabel(r.text)
	r.el.Label().SetOpacity(2*alpha - 1)
}

func (r *relabel) Finish() {
	r.el.SetLabel(r.text)
	r.el.Label().SetOpacity(1)
}

// thrower is the optional mechanism surface switches expose for posing
// partway through their travel.
type thrower interface {
	Throw() float64
	SetThrow(fraction float64)
}

// sweep drives a Toggleable to a target state, sweeping the mechanism
// through its travel when the element exposes one.
type sweep struct {
	el       schematic.Toggleable
	open     bool
	auto     bool
	decided  bool
	from     float64
	captured bool
}

// OpenSwitch returns an animation that opens el, sweeping its lever or
// button through the travel.
func OpenSwitch(el schematic.Toggleable) Animation {
	return &sweep{el: el, open: true}
}

// CloseSwitch returns an animation that closes el.
func CloseSwitch(el schematic.Toggleable) Animation {
	return &sweep{el: el}
}

// Toggle returns an animation that flips el to the opposite of the
// state it holds when the stage starts.
func Toggle(el schematic.Toggleable) Animation {
	return &sweep{el: el, auto: true}
}

func (s *sweep) Start() {
	if s.auto && !s.decided {
		s.open = !s.el.Open()
		s.decided = true
	}
	if th, ok := s.el.(thrower); ok && !s.captured {
		s.from = th.Throw()
		s.captured = true
	}
	s.Update(0)
}

func (s *sweep) Update(alpha float64) {
	th, ok := s.el.(thrower)
	if !ok {
		return
	}
	target := 0.0
	if s.open {
		target = 1
	}
	th.SetThrow(s.from + (target-s.from)*alpha)
}

func (s *sweep) Finish() { s.el.SetOpen(s.open) }
