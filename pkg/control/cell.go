package control

import "slices"

type cellListener[T any] struct {
	id int
	fn func(old, next T)
}

// Cell is an observable value slot with equality-gated mutation.
//
// Set compares the incoming value to the stored one and does nothing when
// they are equal, so wiring a cell's listeners to a control's invalidation
// API cannot produce redundant repaint storms. Listeners fire in
// registration order, after the new value is stored and before Set returns.
//
// Cell is NOT thread-safe. Like the rest of the toolkit it must only be
// touched from the host's dispatch thread.
type Cell[T any] struct {
	value     T
	equal     func(a, b T) bool
	listeners []cellListener[T]
	nextID    int
}

// NewCell creates a cell holding an initial value, compared with ==.
func NewCell[T comparable](initial T) *Cell[T] {
	return &Cell[T]{
		value: initial,
		equal: func(a, b T) bool { return a == b },
	}
}

// NewCellFunc creates a cell for types that need an explicit equality
// function. A nil equal treats every Set as a change.
func NewCellFunc[T any](initial T, equal func(a, b T) bool) *Cell[T] {
	return &Cell[T]{value: initial, equal: equal}
}

// Get returns the current value with no side effects.
func (c *Cell[T]) Get() T {
	return c.value
}

// Set stores a new value and notifies listeners with (old, new).
// If the value compares equal to the stored one, Set returns false with
// no observable effect: no listener fires, no invalidation happens.
func (c *Cell[T]) Set(value T) bool {
	if c.equal != nil && c.equal(c.value, value) {
		return false
	}
	old := c.value
	c.value = value

	// Snapshot so a listener unsubscribing mid-notification doesn't skip
	// its neighbors.
	for _, l := range slices.Clone(c.listeners) {
		l.fn(old, value)
	}
	return true
}

// OnChange registers a listener invoked after each effective mutation.
// The returned function unsubscribes the listener.
func (c *Cell[T]) OnChange(fn func(old, next T)) (unsubscribe func()) {
	if fn == nil {
		return func() {}
	}
	c.nextID++
	id := c.nextID
	c.listeners = append(c.listeners, cellListener[T]{id: id, fn: fn})
	return func() {
		c.listeners = slices.DeleteFunc(c.listeners, func(l cellListener[T]) bool {
			return l.id == id
		})
	}
}

// RepaintOnChange wires a cell to a control so every effective mutation
// marks the whole control dirty. This is the seam through which "changing
// a color repaints the control" is expressed without baking invalidation
// into every property. Returns the listener's unsubscribe function.
func RepaintOnChange[T any](ctrl Control, cell *Cell[T]) func() {
	return cell.OnChange(func(T, T) {
		ctrl.InvalidateAll()
	})
}
