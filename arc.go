package schematic

import (
	"math"

	"github.com/gogpu/gg"
)

// AppendArc adds a circular arc to p, starting at the given angle on the
// circle of radius r about (cx, cy) and sweeping by sweep radians.
// Negative sweep runs clockwise. The arc begins a new subpath, so
// consecutive arcs meeting end to start join cleanly under a round
// stroke. Symbol constructors and indicators build curved strokes
// through it.
func AppendArc(p *gg.Path, cx, cy, r, start, sweep float64) {
	const maxStep = math.Pi / 2
	steps := int(math.Ceil(math.Abs(sweep) / maxStep))
	if steps < 1 {
		steps = 1
	}
	da := sweep / float64(steps)
	a := start
	p.MoveTo(cx+r*math.Cos(a), cy+r*math.Sin(a))
	for range steps {
		b := a + da
		alpha := math.Sin(b-a) * (math.Sqrt(4+3*math.Tan((b-a)/2)*math.Tan((b-a)/2)) - 1) / 3
		cos1, sin1 := math.Cos(a), math.Sin(a)
		cos2, sin2 := math.Cos(b), math.Sin(b)
		p.CubicTo(
			cx+r*(cos1-alpha*sin1), cy+r*(sin1+alpha*cos1),
			cx+r*(cos2+alpha*sin2), cy+r*(sin2-alpha*cos2),
			cx+r*cos2, cy+r*sin2,
		)
		a = b
	}
}
