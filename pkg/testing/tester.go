package testing

import (
	"testing"
	"time"

	"github.com/go-drift/easel/pkg/animation"
	"github.com/go-drift/easel/pkg/control"
	"github.com/go-drift/easel/pkg/graphics"
	"github.com/go-drift/easel/pkg/host"
	"github.com/go-drift/easel/pkg/raster"
)

// RepaintRequest is one forwarded repaint, as the native side would see it.
type RepaintRequest struct {
	Control control.Control
	Damage  control.Damage
}

// ControlTester stands in for the native windowing layer: it hosts
// controls, captures the repaint requests they emit, and drives animation
// time through a fake clock. Create one per test with NewControlTester.
type ControlTester struct {
	t         *testing.T
	host      *host.Host
	runner    *animation.Runner
	clock     *FakeClock
	prevClock animation.Clock
	requests  []RepaintRequest
}

// NewControlTester creates a tester and installs its fake clock as the
// animation time source. The clock is restored via t.Cleanup.
func NewControlTester(t *testing.T) *ControlTester {
	ct := &ControlTester{
		t:      t,
		runner: animation.NewRunner(),
		clock:  NewFakeClock(),
	}
	ct.host = host.New(func(c control.Control, d control.Damage) {
		ct.requests = append(ct.requests, RepaintRequest{Control: c, Damage: d})
	})
	ct.prevClock = animation.SetClock(ct.clock)
	t.Cleanup(func() { animation.SetClock(ct.prevClock) })
	return ct
}

// Host returns the underlying host.
func (ct *ControlTester) Host() *host.Host { return ct.host }

// Runner returns the animation runner pumped by PumpFor.
func (ct *ControlTester) Runner() *animation.Runner { return ct.runner }

// Clock returns the fake clock for advancing time directly.
func (ct *ControlTester) Clock() *FakeClock { return ct.clock }

// Mount registers a control with the tester's host.
func (ct *ControlTester) Mount(c control.Control) {
	ct.host.Register(c)
}

// Unmount detaches a control from the tester's host.
func (ct *ControlTester) Unmount(c control.Control) {
	ct.host.Unregister(c)
}

// Requests returns the repaint requests captured so far.
func (ct *ControlTester) Requests() []RepaintRequest {
	return ct.requests
}

// TakeRequests returns the captured repaint requests and clears the log.
func (ct *ControlTester) TakeRequests() []RepaintRequest {
	reqs := ct.requests
	ct.requests = nil
	return reqs
}

// Pump ends the current processing turn, forwarding coalesced repaint
// requests into the log.
func (ct *ControlTester) Pump() {
	ct.host.FlushTurn()
}

// PumpFor advances the fake clock over the given duration in fixed steps,
// ticking the animation runner and ending a turn after each step. A zero
// or negative step defaults to 16 milliseconds.
func (ct *ControlTester) PumpFor(d, step time.Duration) {
	if step <= 0 {
		step = 16 * time.Millisecond
	}
	ct.runner.Tick() // establish the baseline before the first step
	for elapsed := time.Duration(0); elapsed < d; elapsed += step {
		remaining := d - elapsed
		if remaining < step {
			ct.clock.Advance(remaining)
		} else {
			ct.clock.Advance(step)
		}
		ct.runner.Tick()
		ct.host.FlushTurn()
	}
}

// Click delivers a primary-button click to a control and ends the turn.
func (ct *ControlTester) Click(c control.Control, at graphics.Offset) {
	ct.host.DeliverInput(c, control.PointerEvent{
		Phase:    control.PointerPhaseClick,
		Button:   control.ButtonPrimary,
		Position: at,
	})
	ct.host.FlushTurn()
}

// PressKey delivers a named key event to a control and ends the turn.
func (ct *ControlTester) PressKey(c control.Control, name string) {
	ct.host.DeliverInput(c, control.KeyEvent{Name: name})
	ct.host.FlushTurn()
}

// RenderFrame services one paint into a fresh software canvas and returns
// it for pixel assertions. The control is clean afterwards.
func (ct *ControlTester) RenderFrame(c control.Control, width, height int) *raster.Canvas {
	canvas := raster.New(width, height)
	ct.host.RequestRender(c, canvas)
	return canvas
}

// Record services one paint into a display list, for structural
// assertions on the emitted operations.
func (ct *ControlTester) Record(c control.Control, size graphics.Size) *graphics.DisplayList {
	var recorder graphics.Recorder
	ct.host.RequestRender(c, recorder.BeginRecording(size))
	return recorder.EndRecording()
}

// MustRepaint fails the test unless the log holds exactly one request for
// the control, and returns its damage.
func (ct *ControlTester) MustRepaint(c control.Control) control.Damage {
	ct.t.Helper()
	var matched []control.Damage
	for _, req := range ct.requests {
		if req.Control == c {
			matched = append(matched, req.Damage)
		}
	}
	if len(matched) != 1 {
		ct.t.Fatalf("control received %d repaint requests, want exactly 1", len(matched))
	}
	return matched[0]
}
