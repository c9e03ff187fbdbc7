package control

import (
	"fmt"
	"slices"

	"github.com/go-drift/easel/pkg/errors"
	"github.com/go-drift/easel/pkg/graphics"
)

// Notifier receives "this control has pending work" signals. The host's
// redraw scheduler implements it; notifications within one processing turn
// coalesce there, so controls may notify freely.
type Notifier interface {
	Notify(c Control, d Damage)
}

// Control is an independently invalidatable on-screen element. Concrete
// controls embed ControlBase, which provides the full lifecycle, and
// implement Painter for their drawing.
type Control interface {
	// Bounds returns the control's current rectangle in surface coordinates.
	Bounds() graphics.Rect

	// Resize updates bounds and marks the union of the old and new bounds
	// dirty. Negative dimensions are rejected with an InvalidArgument error
	// and leave bounds unchanged.
	Resize(bounds graphics.Rect) error

	// HandleInput dispatches an input event to the control's registered
	// handlers. Besides property setters and Resize, this is the only path
	// that introduces dirtiness.
	HandleInput(event InputEvent)

	// Render draws the control's current state onto the canvas. Render is a
	// pure function of state: it must not mutate the control or invalidate.
	Render(canvas graphics.Canvas)

	// Invalidate marks a region dirty and notifies the scheduler.
	Invalidate(region graphics.Rect)

	// InvalidateAll marks the whole surface dirty and notifies the scheduler.
	InvalidateAll()

	// Dirty reports whether a redraw is owed.
	Dirty() bool

	// ConsumeDamage returns pending damage and resets the control to clean.
	// The host calls this strictly after Render returns, never before.
	ConsumeDamage() Damage

	// Attach connects the control to a scheduler. Called on registration.
	Attach(n Notifier)

	// Detach disconnects the control. Invalidation after Detach is an
	// invariant violation.
	Detach()
}

// Painter is implemented by concrete controls embedding ControlBase.
// Paint receives the loaned canvas for exactly one render call.
type Painter interface {
	Paint(canvas graphics.Canvas)
}

// ControlBase provides the redraw lifecycle shared by all controls: bounds,
// the invalidation tracker, scheduler notification, input dispatch, and the
// render purity guard. Embed it and call Init with the outer value:
//
//	type Swatch struct {
//	    control.ControlBase
//	    Fill *control.Cell[graphics.Color]
//	}
//
//	func NewSwatch(bounds graphics.Rect) *Swatch {
//	    s := &Swatch{Fill: control.NewCell(graphics.ColorRed)}
//	    s.Init(s)
//	    ...
//	}
//
//	func (s *Swatch) Paint(canvas graphics.Canvas) { ... }
type ControlBase struct {
	bounds   graphics.Rect
	tracker  InvalidationTracker
	notifier Notifier
	self     Control

	rendering bool
	detached  bool

	pointerHandlers []pointerHandler
	keyHandlers     []keyHandler
	nextHandlerID   int
}

type pointerHandler struct {
	id int
	fn func(PointerEvent)
}

type keyHandler struct {
	id int
	fn func(KeyEvent)
}

// Init registers the concrete control so ControlBase can dispatch Paint
// and report the right type in invariant violations. A newly constructed
// control is clean: it owes no redraw until the host first requests one.
func (b *ControlBase) Init(self Control) {
	b.self = self
}

// Bounds returns the control's current rectangle.
func (b *ControlBase) Bounds() graphics.Rect {
	return b.bounds
}

// SetInitialBounds places the control without marking anything dirty.
// Intended for constructors; later geometry changes go through Resize.
func (b *ControlBase) SetInitialBounds(bounds graphics.Rect) {
	b.bounds = bounds
}

// Resize updates the bounds and marks the union of the vacated and newly
// occupied area dirty. A request with negative width or height is rejected
// with an InvalidArgument error and no state change, so callers discover
// sizing bugs immediately.
func (b *ControlBase) Resize(bounds graphics.Rect) error {
	if bounds.Width() < 0 || bounds.Height() < 0 {
		return errors.InvalidArgument("control.Resize",
			"negative dimensions %gx%g", bounds.Width(), bounds.Height())
	}
	if b.rendering {
		b.violate("control.Resize", "resize from inside Render")
		return nil
	}
	if bounds == b.bounds {
		return nil
	}
	old := b.bounds
	b.bounds = bounds
	b.Invalidate(old.Union(bounds))
	return nil
}

// Invalidate marks a region dirty and notifies the scheduler that this
// control has pending work.
func (b *ControlBase) Invalidate(region graphics.Rect) {
	if !b.mutationAllowed("control.Invalidate") {
		return
	}
	b.tracker.MarkDirty(region)
	if !region.IsEmpty() {
		b.notify(RegionDamage(region))
	}
}

// InvalidateAll marks the whole surface dirty and notifies the scheduler.
func (b *ControlBase) InvalidateAll() {
	if !b.mutationAllowed("control.InvalidateAll") {
		return
	}
	b.tracker.MarkWholeDirty()
	b.notify(WholeDamage())
}

// Dirty reports whether the control owes a redraw.
func (b *ControlBase) Dirty() bool {
	return b.tracker.IsDirty()
}

// ConsumeDamage returns the pending damage and resets the tracker.
func (b *ControlBase) ConsumeDamage() Damage {
	return b.tracker.Consume()
}

// Render dispatches to the concrete control's Paint inside the purity
// guard: any invalidation or resize attempted while the guard is active is
// an invariant violation, because a render that dirties its own control
// would repaint forever.
func (b *ControlBase) Render(canvas graphics.Canvas) {
	if b.self == nil {
		return
	}
	b.rendering = true
	defer func() { b.rendering = false }()
	if painter, ok := b.self.(Painter); ok {
		painter.Paint(canvas)
	}
}

// HandleInput dispatches the event to the registered handlers for its
// variant, in registration order.
func (b *ControlBase) HandleInput(event InputEvent) {
	switch ev := event.(type) {
	case PointerEvent:
		for _, h := range slices.Clone(b.pointerHandlers) {
			h.fn(ev)
		}
	case KeyEvent:
		for _, h := range slices.Clone(b.keyHandlers) {
			h.fn(ev)
		}
	}
}

// OnPointer appends a pointer handler. Handlers run in registration order;
// the returned function unsubscribes.
func (b *ControlBase) OnPointer(fn func(PointerEvent)) (unsubscribe func()) {
	if fn == nil {
		return func() {}
	}
	b.nextHandlerID++
	id := b.nextHandlerID
	b.pointerHandlers = append(b.pointerHandlers, pointerHandler{id: id, fn: fn})
	return func() {
		b.pointerHandlers = slices.DeleteFunc(b.pointerHandlers, func(h pointerHandler) bool {
			return h.id == id
		})
	}
}

// OnKey appends a key handler. Handlers run in registration order; the
// returned function unsubscribes.
func (b *ControlBase) OnKey(fn func(KeyEvent)) (unsubscribe func()) {
	if fn == nil {
		return func() {}
	}
	b.nextHandlerID++
	id := b.nextHandlerID
	b.keyHandlers = append(b.keyHandlers, keyHandler{id: id, fn: fn})
	return func() {
		b.keyHandlers = slices.DeleteFunc(b.keyHandlers, func(h keyHandler) bool {
			return h.id == id
		})
	}
}

// Attach connects the control to a scheduler.
func (b *ControlBase) Attach(n Notifier) {
	b.notifier = n
	b.detached = false
}

// Detach disconnects the control from its scheduler. Subsequent
// invalidation is an invariant violation.
func (b *ControlBase) Detach() {
	b.notifier = nil
	b.detached = true
}

func (b *ControlBase) notify(d Damage) {
	if b.notifier != nil && b.self != nil {
		b.notifier.Notify(b.self, d)
	}
}

// mutationAllowed enforces the purity and lifetime contracts. It returns
// false after reporting when the mutation must be dropped.
func (b *ControlBase) mutationAllowed(op string) bool {
	if b.rendering {
		b.violate(op, "invalidation from inside Render")
		return false
	}
	if b.detached {
		b.violate(op, "invalidation on a detached control")
		return false
	}
	return true
}

func (b *ControlBase) violate(op, detail string) {
	err := &errors.InvariantError{
		Op:      op,
		Control: fmt.Sprintf("%T", b.self),
		Detail:  detail,
	}
	if DebugChecks {
		panic(err)
	}
	errors.ReportInvariant(err)
}
