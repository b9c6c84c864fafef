package anim

import (
	"errors"
	"testing"
	"time"

	"github.com/gogpu/gg"

	"github.com/gogpu/schematic/symbols"
)

func TestRenderFrames_StepsTimeline(t *testing.T) {
	dc := gg.NewContext(64, 64)
	r := symbols.NewResistor("R1")

	tl := NewTimeline()
	tl.Play(Create(r)).WithDuration(100 * time.Millisecond).WithEasing(Linear)

	var frames []int
	err := RenderFrames(dc, r, tl, 10, func(i int) error {
		frames = append(frames, i)
		return nil
	})
	if err != nil {
		t.Fatalf("RenderFrames: %v", err)
	}
	// One step per frame at 10 fps: the start pose, then the frame on
	// which the 100ms stage completes.
	if len(frames) != 2 || frames[0] != 0 || frames[1] != 1 {
		t.Errorf("frames = %v, want [0 1]", frames)
	}
	if got := r.Reveal(); got != 1 {
		t.Errorf("reveal after render = %v, want 1", got)
	}
	if !tl.Done() {
		t.Error("timeline not done after render")
	}
}

func TestRenderFrames_ZeroDurationTimeline(t *testing.T) {
	dc := gg.NewContext(32, 32)
	r := symbols.NewResistor("R1")

	tl := NewTimeline()
	tl.Play(FadeOut(r)).WithDuration(0)

	count := 0
	if err := RenderFrames(dc, r, tl, 30, func(int) error { count++; return nil }); err != nil {
		t.Fatalf("RenderFrames: %v", err)
	}
	if count != 1 {
		t.Errorf("frame count = %d, want 1", count)
	}
	if got := r.Opacity(); got != 0 {
		t.Errorf("opacity = %v, want 0", got)
	}
}

func TestRenderFrames_BadFPS(t *testing.T) {
	dc := gg.NewContext(8, 8)
	r := symbols.NewResistor("R1")

	if err := RenderFrames(dc, r, NewTimeline(), 0, nil); err == nil {
		t.Error("fps 0 accepted")
	}
}

func TestRenderFrames_CallbackErrorStops(t *testing.T) {
	dc := gg.NewContext(8, 8)
	r := symbols.NewResistor("R1")

	tl := NewTimeline()
	tl.Play(Create(r))

	boom := errors.New("boom")
	calls := 0
	err := RenderFrames(dc, r, tl, 30, func(int) error {
		calls++
		return boom
	})
	if !errors.Is(err, boom) {
		t.Errorf("err = %v, want the callback error", err)
	}
	if calls != 1 {
		t.Errorf("callback ran %d times, want 1", calls)
	}
}
