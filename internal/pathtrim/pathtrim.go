// Package pathtrim measures paths by arc length and extracts partial paths.
// It backs the draw-on reveal used by creation animations: revealing a
// fraction f of an element strokes Trim(path, 0, f).
package pathtrim

import (
	"github.com/gogpu/gg"
)

// flattenTolerance bounds the difference between a curve's chord and its
// control polygon before subdivision stops during length measurement.
const flattenTolerance = 1e-4

// segment is one drawable piece of a path with its measured length.
type segment struct {
	element gg.PathElement
	start   gg.Point
	length  float64
}

// Length returns the total arc length of p. Move elements contribute
// nothing; Close elements contribute the closing line.
func Length(p *gg.Path) float64 {
	total := 0.0
	for _, seg := range segments(p) {
		total += seg.length
	}
	return total
}

// Trim returns the portion of p between fractions f0 and f1 of its total
// arc length, both clamped to [0, 1]. Curves are split at the exact
// arc-length positions. An empty range returns an empty path. Close
// elements that are cut become explicit lines.
func Trim(p *gg.Path, f0, f1 float64) *gg.Path {
	f0 = clamp01(f0)
	f1 = clamp01(f1)
	out := gg.NewPath()
	if f1 <= f0 {
		return out
	}

	segs := segments(p)
	total := 0.0
	for _, seg := range segs {
		total += seg.length
	}
	if total == 0 {
		return out
	}
	s0 := f0 * total
	s1 := f1 * total

	walked := 0.0
	open := false
	for _, seg := range segs {
		if _, isMove := seg.element.(gg.MoveTo); isMove {
			// Starting a new subpath breaks any open run.
			open = false
			continue
		}
		segStart := walked
		segEnd := walked + seg.length
		walked = segEnd
		if segEnd <= s0 || segStart >= s1 || seg.length == 0 {
			continue
		}

		t0, t1 := 0.0, 1.0
		if segStart < s0 {
			t0 = paramAtLength(seg, s0-segStart)
		}
		if segEnd > s1 {
			t1 = paramAtLength(seg, s1-segStart)
		}

		piece, from := subsegment(seg, t0, t1)
		if !open || t0 > 0 {
			out.MoveTo(from.X, from.Y)
		}
		appendElement(out, piece)
		open = true
	}
	return out
}

// segments flattens p into measured drawable segments. Close elements are
// rewritten as lines back to the subpath start.
func segments(p *gg.Path) []segment {
	var segs []segment
	var current, subpathStart gg.Point
	for _, el := range p.Elements() {
		switch e := el.(type) {
		case gg.MoveTo:
			current = e.Point
			subpathStart = e.Point
			segs = append(segs, segment{element: e, start: current})
		case gg.LineTo:
			segs = append(segs, segment{element: e, start: current, length: current.Distance(e.Point)})
			current = e.Point
		case gg.QuadTo:
			q := gg.NewQuadBez(current, e.Control, e.Point)
			segs = append(segs, segment{element: e, start: current, length: quadLength(q)})
			current = e.Point
		case gg.CubicTo:
			c := gg.NewCubicBez(current, e.Control1, e.Control2, e.Point)
			segs = append(segs, segment{element: e, start: current, length: cubicLength(c)})
			current = e.Point
		case gg.Close:
			line := gg.LineTo{Point: subpathStart}
			segs = append(segs, segment{element: line, start: current, length: current.Distance(subpathStart)})
			current = subpathStart
		}
	}
	return segs
}

// paramAtLength finds the curve parameter t where the arc length from the
// segment start reaches want, by bisection.
func paramAtLength(seg segment, want float64) float64 {
	if want <= 0 {
		return 0
	}
	if want >= seg.length {
		return 1
	}
	lengthTo := func(t float64) float64 {
		piece, _ := subsegment(seg, 0, t)
		switch e := piece.(type) {
		case gg.LineTo:
			return seg.start.Distance(e.Point)
		case gg.QuadTo:
			return quadLength(gg.NewQuadBez(seg.start, e.Control, e.Point))
		case gg.CubicTo:
			return cubicLength(gg.NewCubicBez(seg.start, e.Control1, e.Control2, e.Point))
		}
		return 0
	}
	lo, hi := 0.0, 1.0
	for range 40 {
		mid := (lo + hi) / 2
		if lengthTo(mid) < want {
			lo = mid
		} else {
			hi = mid
		}
	}
	return (lo + hi) / 2
}

// subsegment returns seg restricted to [t0, t1] along with its start point.
func subsegment(seg segment, t0, t1 float64) (gg.PathElement, gg.Point) {
	switch e := seg.element.(type) {
	case gg.LineTo:
		line := gg.NewLine(seg.start, e.Point).Subsegment(t0, t1)
		return gg.LineTo{Point: line.End()}, line.Start()
	case gg.QuadTo:
		q := gg.NewQuadBez(seg.start, e.Control, e.Point).Subsegment(t0, t1)
		return gg.QuadTo{Control: q.P1, Point: q.P2}, q.P0
	case gg.CubicTo:
		c := gg.NewCubicBez(seg.start, e.Control1, e.Control2, e.Point).Subsegment(t0, t1)
		return gg.CubicTo{Control1: c.P1, Control2: c.P2, Point: c.P3}, c.P0
	}
	return seg.element, seg.start
}

func appendElement(p *gg.Path, el gg.PathElement) {
	switch e := el.(type) {
	case gg.LineTo:
		p.LineTo(e.Point.X, e.Point.Y)
	case gg.QuadTo:
		p.QuadraticTo(e.Control.X, e.Control.Y, e.Point.X, e.Point.Y)
	case gg.CubicTo:
		p.CubicTo(e.Control1.X, e.Control1.Y, e.Control2.X, e.Control2.Y, e.Point.X, e.Point.Y)
	}
}

func quadLength(q gg.QuadBez) float64 {
	chord := q.Start().Distance(q.End())
	poly := q.P0.Distance(q.P1) + q.P1.Distance(q.P2)
	if poly-chord < flattenTolerance {
		return (chord + poly) / 2
	}
	left, right := q.Subdivide()
	return quadLength(left) + quadLength(right)
}

func cubicLength(c gg.CubicBez) float64 {
	chord := c.Start().Distance(c.End())
	poly := c.P0.Distance(c.P1) + c.P1.Distance(c.P2) + c.P2.Distance(c.P3)
	if poly-chord < flattenTolerance {
		return (chord + poly) / 2
	}
	left, right := c.Subdivide()
	return cubicLength(left) + cubicLength(right)
}

func clamp01(f float64) float64 {
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}
