package schematic

import (
	"github.com/gogpu/gg"

	"github.com/gogpu/schematic/internal/geom"
)

// Mark is a piece of upright text attached to an element, such as a
// component label or annotation. Marks do not rotate with their owner:
// however the element is posed, the text stays readable and is pushed
// outward from the element on the side its anchor faces.
type Mark struct {
	text     string
	fontSize float64
	opacity  float64
}

func newMark(text string) *Mark {
	return &Mark{text: text, opacity: 1}
}

// Text returns the mark's current text.
func (m *Mark) Text() string { return m.text }

// SetText replaces the mark's text.
func (m *Mark) SetText(s string) { m.text = s }

// FontSize returns the mark's font size in device pixels, or 0 if the
// mark uses the style default.
func (m *Mark) FontSize() float64 { return m.fontSize }

// SetFontSize overrides the style's mark font size for this mark alone.
// A size of 0 restores the style default.
func (m *Mark) SetFontSize(size float64) { m.fontSize = size }

// Opacity returns the mark's own opacity. The effective opacity when
// drawing is this multiplied by the owner's opacity.
func (m *Mark) Opacity() float64 { return m.opacity }

// SetOpacity sets the mark's own opacity, clamped to [0, 1].
func (m *Mark) SetOpacity(o float64) { m.opacity = clamp01(o) }

// markDirection derives the placement direction for a mark anchored at
// anchor on an element centred at centre, snapped toward the nearest
// axis within the style's cardinal margin. Coincident points place the
// mark above.
func markDirection(anchor, centre gg.Point, style *Style) gg.Vec2 {
	d := gg.PointToVec2(anchor.Sub(centre))
	if d.IsZero() {
		return Up
	}
	return geom.Cardinalize(geom.Normalize(d), style.CardinalMargin())
}

// drawMark renders m next to the world-space point anchor, offset along
// dir by the style's mark buffer. Text rendering bypasses the context
// transform, so the anchor is mapped to device coordinates here and the
// text box is aligned against the device-space direction.
func drawMark(dc *gg.Context, m *Mark, anchor gg.Point, dir gg.Vec2, style *Style, alpha float64) error {
	if m == nil || m.text == "" {
		return nil
	}
	alpha *= m.opacity
	if alpha <= 0 {
		return nil
	}
	src, err := MarkFont()
	if err != nil {
		return err
	}
	size := m.fontSize
	if size <= 0 {
		size = style.Mark.FontSize
	}
	dc.SetFont(src.Face(size))

	pos := anchor.Add(dir.Mul(style.Mark.Buffer).ToPoint())
	ctm := dc.GetTransform()
	dev := ctm.TransformPoint(pos)
	devDir := ctm.TransformVector(dir.ToPoint())
	ax, ay := anchorFractions(gg.PointToVec2(devDir))

	col := style.StrokeColor()
	col.A *= alpha
	dc.SetColor(col.Color())
	dc.DrawStringAnchored(m.text, dev.X, dev.Y, ax, ay)
	return nil
}

// anchorFractions maps a device-space placement direction to the text
// box anchor fractions expected by Context.DrawStringAnchored, so that
// the box edge (or corner) nearest the anchor faces it. Device y grows
// downward.
func anchorFractions(devDir gg.Vec2) (ax, ay float64) {
	const eps = 1e-9
	switch {
	case devDir.X > eps:
		ax = 0
	case devDir.X < -eps:
		ax = 1
	default:
		ax = 0.5
	}
	switch {
	case devDir.Y > eps:
		ay = 1
	case devDir.Y < -eps:
		ay = 0
	default:
		ay = 0.5
	}
	return ax, ay
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
