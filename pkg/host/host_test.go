package host

import (
	"testing"

	"github.com/go-drift/easel/pkg/control"
	easelerrors "github.com/go-drift/easel/pkg/errors"
	"github.com/go-drift/easel/pkg/graphics"
)

type silentHandler struct{ easelerrors.LogHandler }

func (h *silentHandler) HandlePanic(err *easelerrors.PanicError)         {}
func (h *silentHandler) HandleInvariant(err *easelerrors.InvariantError) {}

func TestRegisterAttachesScheduler(t *testing.T) {
	log := &repaintLog{}
	h := New(log.record)
	c := newStubControl("a")
	h.Register(c)

	c.InvalidateAll()
	h.FlushTurn()
	if len(log.controls) != 1 || log.controls[0] != c {
		t.Fatalf("repaint log = %+v, want one entry for the control", log.controls)
	}
}

func TestRegisterIsIdempotent(t *testing.T) {
	h := New(nil)
	c := newStubControl("a")
	h.Register(c)
	h.Register(c)
	if len(h.Controls()) != 1 {
		t.Fatalf("control registered %d times", len(h.Controls()))
	}
}

func TestUnregisterDetaches(t *testing.T) {
	easelerrors.SetHandler(&silentHandler{})
	defer easelerrors.SetHandler(nil)

	log := &repaintLog{}
	h := New(log.record)
	c := newStubControl("a")
	h.Register(c)
	h.Unregister(c)

	if len(h.Controls()) != 0 {
		t.Fatal("control still registered")
	}
	// Invalidation after unregistration is dropped (and reported).
	c.InvalidateAll()
	h.FlushTurn()
	if len(log.controls) != 0 {
		t.Fatal("detached control must not reach the repaint log")
	}
}

func TestRequestRenderConsumesAfterRender(t *testing.T) {
	h := New(nil)
	c := newStubControl("a")
	h.Register(c)
	c.Invalidate(graphics.RectFromLTWH(0, 0, 10, 10))

	var recorder graphics.Recorder
	canvas := recorder.BeginRecording(graphics.Size{Width: 100, Height: 100})
	d := h.RequestRender(c, canvas)
	recorder.EndRecording()

	if d.IsZero() {
		t.Fatal("RequestRender must return the damage the paint satisfied")
	}
	if c.Dirty() {
		t.Fatal("control must be clean after RequestRender")
	}
}

func TestRequestRenderOnCleanControl(t *testing.T) {
	h := New(nil)
	c := newStubControl("a")
	h.Register(c)

	var recorder graphics.Recorder
	d := h.RequestRender(c, recorder.BeginRecording(graphics.Size{Width: 100, Height: 100}))
	recorder.EndRecording()
	if !d.IsZero() {
		t.Fatalf("clean control returned damage %+v", d)
	}
}

func TestDeliverInputRecoversPanics(t *testing.T) {
	easelerrors.SetHandler(&silentHandler{})
	defer easelerrors.SetHandler(nil)

	h := New(nil)
	c := newStubControl("a")
	h.Register(c)
	c.OnPointer(func(control.PointerEvent) { panic("handler bug") })

	// Must not propagate.
	h.DeliverInput(c, control.PointerEvent{Phase: control.PointerPhaseDown})
}
