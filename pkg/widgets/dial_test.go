package widgets

import (
	"math"
	"testing"

	"github.com/go-drift/easel/pkg/control"
	"github.com/go-drift/easel/pkg/graphics"
	"github.com/go-drift/easel/pkg/host"
)

func TestSetValueClamps(t *testing.T) {
	d := NewDial(graphics.RectFromLTWH(0, 0, 60, 60))
	d.SetValue(1.5)
	if got := d.Value.Get(); got != 1 {
		t.Fatalf("Value = %v, want clamped to 1", got)
	}
	d.SetValue(-0.2)
	if got := d.Value.Get(); got != 0 {
		t.Fatalf("Value = %v, want clamped to 0", got)
	}
}

func TestSetValueReportsChange(t *testing.T) {
	d := NewDial(graphics.RectFromLTWH(0, 0, 60, 60))
	if !d.SetValue(0.5) {
		t.Fatal("first SetValue(0.5) must report a change")
	}
	if d.SetValue(0.5) {
		t.Fatal("repeated SetValue(0.5) must be a no-op")
	}
	// Clamped duplicates gate too.
	d.SetValue(1)
	if d.SetValue(2) {
		t.Fatal("SetValue(2) clamps to 1, which is already stored")
	}
}

func TestArrowKeysStepValue(t *testing.T) {
	d := NewDial(graphics.RectFromLTWH(0, 0, 60, 60))
	d.Step = 0.1

	d.HandleInput(control.KeyEvent{Name: "up"})
	d.HandleInput(control.KeyEvent{Name: "right"})
	if got := d.Value.Get(); math.Abs(got-0.2) > 1e-9 {
		t.Fatalf("Value = %v, want 0.2", got)
	}
	d.HandleInput(control.KeyEvent{Name: "down"})
	if got := d.Value.Get(); math.Abs(got-0.1) > 1e-9 {
		t.Fatalf("Value = %v, want 0.1", got)
	}
	d.HandleInput(control.KeyEvent{Name: "end"})
	if got := d.Value.Get(); got != 1 {
		t.Fatalf("Value = %v, want 1", got)
	}
	d.HandleInput(control.KeyEvent{Name: "home"})
	if got := d.Value.Get(); got != 0 {
		t.Fatalf("Value = %v, want 0", got)
	}
}

func TestPointerDownSetsValueFromAngle(t *testing.T) {
	d := NewDial(graphics.RectFromLTWH(0, 0, 100, 100))

	// Straight up from the center is the track's midpoint.
	d.HandleInput(control.PointerEvent{
		Phase:    control.PointerPhaseDown,
		Button:   control.ButtonPrimary,
		Position: graphics.Offset{X: 50, Y: 10},
	})
	if got := d.Value.Get(); math.Abs(got-0.5) > 0.01 {
		t.Fatalf("Value = %v, want ~0.5 for pointer straight above center", got)
	}
}

func TestValueChangeRepaintsDial(t *testing.T) {
	log := &repaintLog{}
	h := host.New(log.record)
	d := NewDial(graphics.RectFromLTWH(0, 0, 60, 60))
	h.Register(d)

	d.SetValue(0.3)
	h.FlushTurn()
	if len(log.controls) != 1 {
		t.Fatalf("forwarded %d repaint requests, want 1", len(log.controls))
	}

	canvas := &captureCanvas{size: graphics.Size{Width: 60, Height: 60}}
	h.RequestRender(d, canvas)
	if len(canvas.strokes) == 0 || len(canvas.fills) == 0 {
		t.Fatal("dial paint must stroke the track and fill the needle")
	}
}

func TestOnValueChangedFires(t *testing.T) {
	d := NewDial(graphics.RectFromLTWH(0, 0, 60, 60))
	var seen []float64
	d.OnValueChanged = func(_ *Dial, v float64) { seen = append(seen, v) }

	d.SetValue(0.4)
	d.SetValue(0.4)
	d.SetValue(0.7)
	if len(seen) != 2 || seen[0] != 0.4 || seen[1] != 0.7 {
		t.Fatalf("OnValueChanged saw %v, want [0.4 0.7]", seen)
	}
}
