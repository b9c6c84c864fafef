// Package anim animates schematic elements over a staged timeline.
//
// A Timeline is a sequence of stages. Each stage runs a group of
// animations in parallel for a duration under an easing curve, and the
// next stage begins when it completes:
//
//	tl := anim.NewTimeline()
//	tl.Play(anim.Create(wire), anim.Create(other))
//	tl.Play(anim.CloseSwitch(sw)).WithDuration(300 * time.Millisecond)
//	tl.Wait(time.Second)
//
// The timeline is driven manually with Advance or Seek, so the caller
// owns the clock. RenderFrames steps a timeline at a fixed frame rate
// and redraws an element between steps, which is how frame sequences
// for encoding are produced.
//
// Animations capture their starting state the first time they run, so
// seeking a timeline backward and replaying is deterministic.
package anim
