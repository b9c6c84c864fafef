package anim

import (
	"fmt"
	"time"

	"github.com/gogpu/gg"

	"github.com/gogpu/schematic"
)

// RenderFrames steps tl at the given frame rate, drawing el through dc
// between steps and calling frame after each draw with the frame index,
// starting at zero. The canvas is cleared to the style background
// before every frame. Frame zero shows the timeline's starting pose;
// rendering stops after the frame on which the timeline finishes.
func RenderFrames(dc *gg.Context, el schematic.Element, tl *Timeline, fps int, frame func(i int) error) error {
	if fps <= 0 {
		return fmt.Errorf("anim: fps %d out of range", fps)
	}
	st := schematic.CurrentStyle()
	step := time.Second / time.Duration(fps)
	schematic.Logger().Debug("rendering frames", "fps", fps, "timeline", tl.Duration())
	for i := 0; ; i++ {
		var dt time.Duration
		if i > 0 {
			dt = step
		}
		more := tl.Advance(dt)
		dc.ClearWithColor(st.BackgroundColor())
		if err := el.Draw(dc); err != nil {
			return fmt.Errorf("anim: frame %d: %w", i, err)
		}
		if frame != nil {
			if err := frame(i); err != nil {
				return err
			}
		}
		if !more {
			return nil
		}
	}
}
