package animation

import (
	"slices"
	"time"
)

// stepper is the common surface of Tween and ColorTween.
type stepper interface {
	Update(dt float32) bool
}

// Runner advances a set of active tweens. The host pumps it once per
// processing turn, either with an explicit delta through Advance or with
// wall-clock time through Tick. Like the rest of the toolkit the runner is
// single-threaded; it must only be touched from the host's dispatch thread.
type Runner struct {
	active []stepper
	last   time.Time
}

// NewRunner creates an empty runner.
func NewRunner() *Runner {
	return &Runner{}
}

// Add registers a tween. Finished tweens are removed automatically on the
// advance that completes them.
func (r *Runner) Add(t stepper) {
	if t == nil || slices.Contains(r.active, t) {
		return
	}
	r.active = append(r.active, t)
}

// Remove unregisters a tween before it finishes.
func (r *Runner) Remove(t stepper) {
	i := slices.Index(r.active, t)
	if i >= 0 {
		r.active = slices.Delete(r.active, i, i+1)
	}
}

// Active returns the number of unfinished tweens.
func (r *Runner) Active() int {
	return len(r.active)
}

// Advance steps every active tween by dt seconds and drops the ones that
// finished. Returns true while unfinished tweens remain, so the host knows
// to keep scheduling turns.
func (r *Runner) Advance(dt float32) bool {
	if dt < 0 {
		dt = 0
	}
	r.active = slices.DeleteFunc(r.active, func(t stepper) bool {
		return t.Update(dt)
	})
	return len(r.active) > 0
}

// Tick advances by the wall-clock time elapsed since the previous Tick.
// The first call establishes the baseline and advances by zero.
func (r *Runner) Tick() bool {
	now := Now()
	var dt float32
	if !r.last.IsZero() {
		dt = float32(now.Sub(r.last).Seconds())
	}
	r.last = now
	return r.Advance(dt)
}
