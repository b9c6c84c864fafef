package symbols

import (
	"math"

	"github.com/gogpu/gg"

	"github.com/gogpu/schematic/internal/geom"
)

// line appends the segment from (x0, y0) to (x1, y1) as its own subpath.
func line(p *gg.Path, x0, y0, x1, y1 float64) {
	p.MoveTo(x0, y0)
	p.LineTo(x1, y1)
}

// appendTip appends a filled arrowhead: an equilateral triangle with its
// apex at apex, pointing along the unit direction dir, tipLen tall from
// base to apex.
func appendTip(p *gg.Path, apex gg.Point, dir gg.Vec2, tipLen float64) {
	radius := tipLen / 1.5
	centre := apex.Sub(dir.Mul(radius).ToPoint())
	angle := geom.AngleOf(dir)
	for i := range 3 {
		v := centre.Add(geom.FromAngle(angle + float64(i)*2*math.Pi/3).Mul(radius).ToPoint())
		if i == 0 {
			p.MoveTo(v.X, v.Y)
		} else {
			p.LineTo(v.X, v.Y)
		}
	}
	p.Close()
}

// appendArrow appends a straight arrow from tail to apex: the shaft into
// strokes, stopping a tip length short of the apex, and the filled head
// into tips.
func appendArrow(strokes, tips *gg.Path, tail, apex gg.Point, tipLen float64) {
	dir := geom.Normalize(gg.PointToVec2(apex.Sub(tail)))
	base := apex.Sub(dir.Mul(tipLen).ToPoint())
	line(strokes, tail.X, tail.Y, base.X, base.Y)
	appendTip(tips, apex, dir, tipLen)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
