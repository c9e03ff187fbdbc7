// Package animation animates property cells over time. A Tween drives one
// cell toward a target value through an easing function; a Runner advances
// active tweens once per processing turn. Because every write goes through
// the cell's equality-gated Set, an animation frame that lands on the same
// value as the previous one produces no repaint.
package animation

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/go-drift/easel/pkg/control"
	"github.com/go-drift/easel/pkg/graphics"
)

// Tween drives a float64 cell from its current value to a target.
type Tween struct {
	cell  *control.Cell[float64]
	tween *gween.Tween
	done  bool

	// OnComplete fires once, when the tween reaches its target.
	OnComplete func()
}

// NewTween creates a tween from the cell's current value to the target
// over the given duration in seconds. A nil easing means linear.
func NewTween(cell *control.Cell[float64], to float64, duration float32, easing ease.TweenFunc) *Tween {
	if easing == nil {
		easing = ease.Linear
	}
	return &Tween{
		cell:  cell,
		tween: gween.New(float32(cell.Get()), float32(to), duration, easing),
	}
}

// Update advances the tween by dt seconds, writing the interpolated value
// into the cell. Returns true once the target is reached; further calls
// are no-ops.
func (t *Tween) Update(dt float32) bool {
	if t.done {
		return true
	}
	value, finished := t.tween.Update(dt)
	t.cell.Set(float64(value))
	if finished {
		t.done = true
		if t.OnComplete != nil {
			t.OnComplete()
		}
	}
	return t.done
}

// Done reports whether the tween has reached its target.
func (t *Tween) Done() bool { return t.done }

// ColorTween drives a color cell along a channel-wise interpolation. The
// progress curve runs through gween like the float tween.
type ColorTween struct {
	cell  *control.Cell[graphics.Color]
	from  graphics.Color
	to    graphics.Color
	tween *gween.Tween
	done  bool
}

// NewColorTween creates a tween from the cell's current color to the
// target over the given duration in seconds.
func NewColorTween(cell *control.Cell[graphics.Color], to graphics.Color, duration float32, easing ease.TweenFunc) *ColorTween {
	if easing == nil {
		easing = ease.Linear
	}
	return &ColorTween{
		cell:  cell,
		from:  cell.Get(),
		to:    to,
		tween: gween.New(0, 1, duration, easing),
	}
}

// Update advances the tween by dt seconds. Returns true once finished.
func (t *ColorTween) Update(dt float32) bool {
	if t.done {
		return true
	}
	progress, finished := t.tween.Update(dt)
	t.cell.Set(t.from.Lerp(t.to, float64(progress)))
	if finished {
		t.done = true
	}
	return t.done
}

// Done reports whether the tween has reached its target.
func (t *ColorTween) Done() bool { return t.done }
