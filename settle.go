package loupe

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// settler eases the on-screen transform toward the committed one, the way a
// CSS "transform ... ease-out" transition would.
type settler struct {
	shown  Transform
	target Transform
	tweens [3]*gween.Tween
	done   [3]bool
	active bool
}

// snap jumps straight to t and cancels any running transition.
func (s *settler) snap(t Transform) {
	s.shown = t
	s.target = t
	s.active = false
	s.tweens = [3]*gween.Tween{}
}

// retarget starts a transition from the currently shown transform to t.
func (s *settler) retarget(t Transform, seconds float64) {
	if t == s.shown {
		s.snap(t)
		return
	}
	d := float32(seconds)
	s.target = t
	s.tweens = [3]*gween.Tween{
		gween.New(float32(s.shown.Scale), float32(t.Scale), d, ease.OutQuad),
		gween.New(float32(s.shown.TranslateX), float32(t.TranslateX), d, ease.OutQuad),
		gween.New(float32(s.shown.TranslateY), float32(t.TranslateY), d, ease.OutQuad),
	}
	s.done = [3]bool{}
	s.active = true
}

// update advances the transition by dt seconds.
func (s *settler) update(dt float32) {
	if !s.active {
		return
	}
	vals := [3]float64{s.shown.Scale, s.shown.TranslateX, s.shown.TranslateY}
	for i, tw := range s.tweens {
		if s.done[i] || tw == nil {
			continue
		}
		v, finished := tw.Update(dt)
		vals[i] = float64(v)
		s.done[i] = finished
	}
	if s.done[0] && s.done[1] && s.done[2] {
		// float32 tween values are only for display; land exactly.
		s.snap(s.target)
		return
	}
	s.shown = Transform{Scale: vals[0], TranslateX: vals[1], TranslateY: vals[2]}
}

// settling reports whether a transition is in progress.
func (s *settler) settling() bool {
	return s.active
}
