package host

import (
	"slices"

	"github.com/go-drift/easel/pkg/control"
	"github.com/go-drift/easel/pkg/errors"
	"github.com/go-drift/easel/pkg/graphics"
)

// Host is the boundary between the native windowing system and the
// control toolkit. The native side owns the message loop and decides when
// paint turns are serviced; Host reacts: it routes input in, forwards
// repaint requests out through the RedrawScheduler, and sequences the
// render-then-consume contract when the native side services a paint.
type Host struct {
	scheduler *RedrawScheduler
	controls  []control.Control
}

// New creates a host forwarding repaint requests to the given callback.
func New(repaint RepaintFunc) *Host {
	return &Host{scheduler: NewRedrawScheduler(repaint)}
}

// Scheduler exposes the redraw scheduler, mainly for tests and for native
// glue that drives FlushTurn directly.
func (h *Host) Scheduler() *RedrawScheduler {
	return h.scheduler
}

// Register attaches a control to this host's scheduler. Registering an
// already registered control is a no-op.
func (h *Host) Register(c control.Control) {
	if c == nil || slices.Contains(h.controls, c) {
		return
	}
	h.controls = append(h.controls, c)
	c.Attach(h.scheduler)
}

// Unregister detaches a control. The control must not be invalidated
// afterwards; no control outlives its registration.
func (h *Host) Unregister(c control.Control) {
	if c == nil {
		return
	}
	i := slices.Index(h.controls, c)
	if i < 0 {
		return
	}
	h.controls = slices.Delete(h.controls, i, i+1)
	c.Detach()
}

// Controls returns the registered controls in registration order.
func (h *Host) Controls() []control.Control {
	return slices.Clone(h.controls)
}

// DeliverInput routes an input event to a control. A panicking handler is
// recovered and reported rather than tearing down the event loop.
func (h *Host) DeliverInput(c control.Control, event control.InputEvent) {
	if c == nil {
		return
	}
	defer errors.Recover("host.DeliverInput")
	c.HandleInput(event)
}

// RequestRender services one paint for a control: render against the
// loaned canvas, then consume the tracker. Consumption is sequenced
// strictly after rendering completes, so a mutation arriving between the
// two (impossible on a single thread, but the ordering is the contract)
// is never lost. Returns the damage the paint satisfied.
func (h *Host) RequestRender(c control.Control, canvas graphics.Canvas) control.Damage {
	if c == nil {
		return control.Damage{}
	}
	c.Render(canvas)
	return c.ConsumeDamage()
}

// FlushTurn marks a processing-turn boundary: all coalesced repaint
// requests are forwarded to the native side.
func (h *Host) FlushTurn() {
	h.scheduler.FlushTurn()
}
