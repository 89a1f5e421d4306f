package motion

import (
	"errors"
	"fmt"
	"math"
	"slices"
)

var ErrSeekBackward = errors.New("motion: timeline can only move forward")

type step struct {
	anim  Animation
	start float64
	dur   float64
}

// Scene is a display list plus a timeline of steps. Steps are recorded by
// Play and Wait and executed in order by Seek.
type Scene struct {
	objects []*Mobject
	steps   []step
	total   float64

	cursor int
	begun  bool
	now    float64
}

func NewScene() *Scene { return &Scene{} }

// Mobjects is the current display list in draw order.
func (s *Scene) Mobjects() []*Mobject { return s.objects }

// Add appends mobjects that are not already displayed, directly or as part
// of a displayed group.
func (s *Scene) Add(ms ...*Mobject) {
	for _, m := range ms {
		if !s.Contains(m) {
			s.objects = append(s.objects, m)
		}
	}
}

func (s *Scene) Contains(m *Mobject) bool {
	for _, o := range s.objects {
		if slices.Contains(o.Family(), m) {
			return true
		}
	}
	return false
}

// Remove takes mobjects out of the display list and out of any displayed
// group.
func (s *Scene) Remove(ms ...*Mobject) {
	for _, m := range ms {
		s.objects = slices.DeleteFunc(s.objects, func(o *Mobject) bool { return o == m })
		for _, o := range s.objects {
			for _, f := range o.Family() {
				f.Children = slices.DeleteFunc(f.Children, func(c *Mobject) bool { return c == m })
			}
		}
	}
}

// Replace swaps old for m wherever old is displayed. It reports whether old
// was found.
func (s *Scene) Replace(old, m *Mobject) bool {
	for i, o := range s.objects {
		if o == old {
			s.objects[i] = m
			return true
		}
	}
	for _, o := range s.objects {
		for _, f := range o.Family() {
			for i, c := range f.Children {
				if c == old {
					f.Children[i] = m
					return true
				}
			}
		}
	}
	return false
}

// Play records animations to run together with their default timing.
func (s *Scene) Play(anims ...Animation) {
	if len(anims) == 1 {
		s.push(anims[0])
		return
	}
	s.push(Parallel(anims...))
}

// PlayWith records animations sharing a run time. A nil rate keeps each
// animation's own rate function.
func (s *Scene) PlayWith(runTime float64, rate RateFunc, anims ...Animation) {
	timedAnims := make([]Animation, len(anims))
	for i, a := range anims {
		timedAnims[i] = Timed(a, runTime, rate)
	}
	s.Play(timedAnims...)
}

func (s *Scene) Wait(seconds float64) { s.push(Wait(seconds)) }

func (s *Scene) push(a Animation) {
	dur := math.Max(0, a.RunTime())
	s.steps = append(s.steps, step{anim: a, start: s.total, dur: dur})
	s.total += dur
}

// Duration is the total length of the timeline in seconds.
func (s *Scene) Duration() float64 { return s.total }

// FrameCount is the number of frames needed to cover the timeline at fps.
func (s *Scene) FrameCount(fps int) int {
	return int(math.Ceil(s.total*float64(fps) - 1e-9))
}

// Seek advances the timeline to time t, finishing every step that ends at
// or before t.
func (s *Scene) Seek(t float64) error {
	if t < s.now {
		return fmt.Errorf("%w: at %.3fs, asked for %.3fs", ErrSeekBackward, s.now, t)
	}
	s.now = t
	for s.cursor < len(s.steps) {
		st := s.steps[s.cursor]
		if !s.begun {
			st.anim.Begin(s)
			s.begun = true
		}
		rate := st.anim.Rate()
		if t >= st.start+st.dur {
			st.anim.Interpolate(rate(1))
			st.anim.Finish(s)
			s.cursor++
			s.begun = false
			continue
		}
		st.anim.Interpolate(rate((t - st.start) / st.dur))
		return nil
	}
	return nil
}
