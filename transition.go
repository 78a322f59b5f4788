package pinwheel

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// transition tracks the close tween. The menu sits in StateClosing while the
// tween runs and only reaches StateClosed (and hides the overlay) once it
// finishes. A zero duration skips the tween and closes synchronously.
//
// Presenters read Progress to drive their own fade-out; the menu attaches no
// meaning to intermediate values.
type transition struct {
	tween    *gween.Tween
	progress float32
	active   bool
}

// start begins a close transition. Returns false when the duration is zero
// or negative, meaning the caller should close immediately.
func (t *transition) start(duration float32, fn ease.TweenFunc) bool {
	if duration <= 0 {
		t.active = false
		t.progress = 1
		return false
	}
	if fn == nil {
		fn = ease.Linear
	}
	t.tween = gween.New(0, 1, duration, fn)
	t.progress = 0
	t.active = true
	return true
}

// update advances the tween by dt seconds and reports whether the
// transition just completed.
func (t *transition) update(dt float32) bool {
	if !t.active {
		return false
	}
	val, finished := t.tween.Update(dt)
	t.progress = val
	if finished {
		t.active = false
	}
	return finished
}

// reset abandons any in-flight transition, e.g. when the menu reopens
// mid-close.
func (t *transition) reset() {
	t.tween = nil
	t.progress = 0
	t.active = false
}
