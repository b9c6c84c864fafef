// Package geom provides the planar helpers shared by the schematic element
// implementations: cardinal direction snapping, plane and ray tests, and
// circle construction for arced indicators.
//
// All functions are pure and operate on the engine's float64 geometry types.
package geom

import (
	"math"

	"github.com/gogpu/gg"
)

// Normalize returns v scaled to unit length.
// The zero vector is returned unchanged.
func Normalize(v gg.Vec2) gg.Vec2 {
	if v.IsZero() {
		return v
	}
	return v.Normalize()
}

// Cardinalize snaps v to the nearest cardinal direction (up, down, left, or
// right) when the angle it makes with that direction is at most margin
// radians, preserving the vector's magnitude. Vectors outside the margin are
// returned unchanged. When both components tie in magnitude the horizontal
// axis wins.
func Cardinalize(v gg.Vec2, margin float64) gg.Vec2 {
	angle := math.Atan2(v.Y, v.X)
	folded := math.Mod(angle+margin, math.Pi/2)
	if folded < 0 {
		folded += math.Pi / 2
	}
	if folded > 2*margin {
		return v
	}
	length := v.Length()
	if math.Abs(v.X) >= math.Abs(v.Y) {
		return gg.V2(math.Copysign(length, v.X), 0)
	}
	return gg.V2(0, math.Copysign(length, v.Y))
}

// ZeroSmall returns v with every component of magnitude at most tolerance
// replaced by exactly zero.
func ZeroSmall(v gg.Vec2, tolerance float64) gg.Vec2 {
	if math.Abs(v.X) <= tolerance {
		v.X = 0
	}
	if math.Abs(v.Y) <= tolerance {
		v.Y = 0
	}
	return v
}

// Behind reports whether p lies strictly behind the line through origin with
// outward normal n.
func Behind(p, origin gg.Point, n gg.Vec2) bool {
	return n.Dot(gg.PointToVec2(p.Sub(origin))) < 0
}

// ForwardOfPlane returns p moved along n so that it lies on or in front of
// the line through origin with outward normal n. Points already in front are
// returned unchanged.
func ForwardOfPlane(p, origin gg.Point, n gg.Vec2) gg.Point {
	unit := Normalize(n)
	distance := -unit.Dot(gg.PointToVec2(p.Sub(origin)))
	if distance <= 0 {
		return p
	}
	return p.Add(unit.Mul(distance).ToPoint())
}

// RayIntersection returns the intersection of the lines p1 + t*d1 and
// p2 + s*d2. ok is false when the directions are parallel.
func RayIntersection(p1 gg.Point, d1 gg.Vec2, p2 gg.Point, d2 gg.Vec2) (gg.Point, bool) {
	denom := d1.Cross(d2)
	if math.Abs(denom) < 1e-12 {
		return gg.Point{}, false
	}
	t := gg.PointToVec2(p2.Sub(p1)).Cross(d2) / denom
	return p1.Add(d1.Mul(t).ToPoint()), true
}

// CircleThrough returns the center and radius of the circle passing through
// a, m, and b, found by intersecting the perpendicular bisectors of the two
// chords. ok is false when the points are collinear.
func CircleThrough(a, m, b gg.Point) (center gg.Point, radius float64, ok bool) {
	bisector1 := gg.PointToVec2(m.Sub(a)).Perp()
	bisector2 := gg.PointToVec2(b.Sub(m)).Perp()
	center, ok = RayIntersection(a.Lerp(m, 0.5), bisector1, m.Lerp(b, 0.5), bisector2)
	if !ok {
		return gg.Point{}, 0, false
	}
	return center, center.Distance(a), true
}

// AngleOf returns the angle of v measured counter-clockwise from the
// positive x axis, in (-pi, pi].
func AngleOf(v gg.Vec2) float64 {
	return math.Atan2(v.Y, v.X)
}

// Bounds accumulates an axis-aligned bounding box over points.
// The zero value is an empty box.
type Bounds struct {
	min, max gg.Point
	seen     bool
}

// Add grows the box to include p.
func (b *Bounds) Add(p gg.Point) {
	if !b.seen {
		b.min, b.max = p, p
		b.seen = true
		return
	}
	b.min.X = math.Min(b.min.X, p.X)
	b.min.Y = math.Min(b.min.Y, p.Y)
	b.max.X = math.Max(b.max.X, p.X)
	b.max.Y = math.Max(b.max.Y, p.Y)
}

// AddRect grows the box to include r.
func (b *Bounds) AddRect(r gg.Rect) {
	b.Add(r.Min)
	b.Add(r.Max)
}

// Empty reports whether nothing has been added.
func (b *Bounds) Empty() bool { return !b.seen }

// Rect returns the accumulated box, or the zero rectangle when empty.
func (b *Bounds) Rect() gg.Rect {
	if !b.seen {
		return gg.Rect{}
	}
	return gg.Rect{Min: b.min, Max: b.max}
}

// FromAngle returns the unit vector at the given angle from the positive
// x axis.
func FromAngle(angle float64) gg.Vec2 {
	return gg.V2(math.Cos(angle), math.Sin(angle))
}
