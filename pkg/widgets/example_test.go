package widgets_test

import (
	"fmt"

	"github.com/go-drift/easel/pkg/control"
	"github.com/go-drift/easel/pkg/graphics"
	"github.com/go-drift/easel/pkg/host"
	"github.com/go-drift/easel/pkg/widgets"
)

// A click handler mutates a property cell; the change flows through the
// invalidation tracker to the scheduler, which forwards one coalesced
// repaint request when the turn ends.
func Example() {
	h := host.New(func(c control.Control, d control.Damage) {
		fmt.Printf("repaint requested, whole=%v\n", d.Whole)
	})

	swatch := widgets.NewSwatch(graphics.RectFromLTWH(10, 10, 40, 40), graphics.ColorRed)
	swatch.OnClick = func(s *widgets.Swatch) {
		s.Fill.Set(graphics.ColorBlue)
	}
	h.Register(swatch)

	h.DeliverInput(swatch, control.PointerEvent{
		Phase:    control.PointerPhaseClick,
		Button:   control.ButtonPrimary,
		Position: graphics.Offset{X: 20, Y: 20},
	})
	h.FlushTurn()

	var recorder graphics.Recorder
	canvas := recorder.BeginRecording(graphics.Size{Width: 100, Height: 100})
	damage := h.RequestRender(swatch, canvas)
	recorder.EndRecording()

	fmt.Printf("damage consumed, whole=%v dirty=%v\n", damage.Whole, swatch.Dirty())
	// Output:
	// repaint requested, whole=true
	// damage consumed, whole=true dirty=false
}
