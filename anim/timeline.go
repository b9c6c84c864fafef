package anim

import (
	"time"

	"github.com/gogpu/schematic"
)

// DefaultDuration is the stage duration Play assigns until WithDuration
// overrides it.
const DefaultDuration = time.Second

// Stage is one step of a timeline: a group of animations run in
// parallel for a duration under an easing curve.
type Stage struct {
	anims    []Animation
	duration time.Duration
	easing   Easing
	started  bool
}

// WithDuration sets the stage's duration. Negative durations are
// treated as zero, which applies the stage's end state immediately.
func (s *Stage) WithDuration(d time.Duration) *Stage {
	if d < 0 {
		d = 0
	}
	s.duration = d
	return s
}

// WithEasing sets the stage's easing curve. Nil keeps the current one.
func (s *Stage) WithEasing(e Easing) *Stage {
	if e != nil {
		s.easing = e
	}
	return s
}

// Timeline is an ordered sequence of stages, advanced under the
// caller's clock.
type Timeline struct {
	stages  []*Stage
	index   int
	elapsed time.Duration
}

// NewTimeline returns an empty timeline.
func NewTimeline() *Timeline { return &Timeline{} }

// Play appends a stage running the given animations in parallel, one
// second long with Smooth easing until the returned stage is adjusted.
func (tl *Timeline) Play(anims ...Animation) *Stage {
	s := &Stage{anims: anims, duration: DefaultDuration, easing: Smooth}
	tl.stages = append(tl.stages, s)
	return s
}

// Wait appends a hold of the given duration.
func (tl *Timeline) Wait(d time.Duration) *Timeline {
	tl.Play().WithDuration(d)
	return tl
}

// Duration returns the total length of all stages.
func (tl *Timeline) Duration() time.Duration {
	var total time.Duration
	for _, s := range tl.stages {
		total += s.duration
	}
	return total
}

// Done reports whether every stage has completed.
func (tl *Timeline) Done() bool { return tl.index >= len(tl.stages) }

// Advance moves the timeline forward by dt, starting, updating, and
// finishing stages as their boundaries pass. It returns false once the
// timeline has finished; advancing past the end clamps there.
func (tl *Timeline) Advance(dt time.Duration) bool {
	if dt > 0 {
		tl.elapsed += dt
	}
	for tl.index < len(tl.stages) {
		s := tl.stages[tl.index]
		if !s.started {
			s.started = true
			schematic.Logger().Debug("timeline stage starting",
				"stage", tl.index, "animations", len(s.anims), "duration", s.duration)
			for _, a := range s.anims {
				a.Start()
			}
		}
		if tl.elapsed < s.duration {
			alpha := s.easing(float64(tl.elapsed) / float64(s.duration))
			for _, a := range s.anims {
				a.Update(alpha)
			}
			return true
		}
		for _, a := range s.anims {
			a.Update(1)
			a.Finish()
		}
		tl.elapsed -= s.duration
		tl.index++
	}
	tl.elapsed = 0
	return false
}

// Seek rewinds the timeline and replays it to the absolute time t.
// Animations keep the starting state they captured on first run, so
// seeking is deterministic in either direction.
func (tl *Timeline) Seek(t time.Duration) {
	if t < 0 {
		t = 0
	}
	// Put every started stage back to its captured start state, latest
	// first so earlier stages win, then replay forward.
	for i := len(tl.stages) - 1; i >= 0; i-- {
		s := tl.stages[i]
		if !s.started {
			continue
		}
		for _, a := range s.anims {
			a.Start()
		}
		s.started = false
	}
	tl.index = 0
	tl.elapsed = 0
	tl.Advance(t)
}
