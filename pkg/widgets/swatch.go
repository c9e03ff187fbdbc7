// Package widgets provides ready-made controls built on the control
// package: a color swatch, a text badge, and a value dial. They double as
// reference implementations for wiring property cells to invalidation.
package widgets

import (
	"github.com/go-drift/easel/pkg/control"
	"github.com/go-drift/easel/pkg/graphics"
)

// Swatch is a clickable color patch with a one-pixel border. Both colors
// are property cells: assigning a new value repaints the control,
// assigning the current value does nothing.
type Swatch struct {
	control.ControlBase

	Fill   *control.Cell[graphics.Color]
	Border *control.Cell[graphics.Color]

	// OnClick fires on a primary-button click anywhere in the control.
	OnClick func(s *Swatch)
}

// NewSwatch creates a swatch at the given bounds. The control starts
// clean; it owes no redraw until the host first requests one.
func NewSwatch(bounds graphics.Rect, fill graphics.Color) *Swatch {
	s := &Swatch{
		Fill:   control.NewCell(fill),
		Border: control.NewCell(graphics.ColorBlack),
	}
	s.Init(s)
	s.SetInitialBounds(bounds)
	control.RepaintOnChange(s, s.Fill)
	control.RepaintOnChange(s, s.Border)
	s.OnPointer(s.handlePointer)
	return s
}

func (s *Swatch) handlePointer(ev control.PointerEvent) {
	if ev.Phase != control.PointerPhaseClick || ev.Button != control.ButtonPrimary {
		return
	}
	if s.OnClick != nil {
		s.OnClick(s)
	}
}

// SwapColors exchanges the fill and border colors. Both mutations land in
// the same processing turn, so the scheduler coalesces them into a single
// repaint request.
func (s *Swatch) SwapColors() {
	fill := s.Fill.Get()
	s.Fill.Set(s.Border.Get())
	s.Border.Set(fill)
}

// Paint draws the filled patch and its border.
func (s *Swatch) Paint(canvas graphics.Canvas) {
	bounds := s.Bounds()
	canvas.FillRect(bounds, graphics.SolidFill(s.Fill.Get()))
	canvas.StrokeRect(bounds.Inset(0.5), graphics.Stroke{Color: s.Border.Get(), Width: 1})
}

// Properties publishes the designer descriptor table.
func (s *Swatch) Properties() []control.PropertyInfo {
	return []control.PropertyInfo{
		{Name: "FillColor", Category: "Appearance", Description: "Interior color of the swatch.", Browsable: true},
		{Name: "BorderColor", Category: "Appearance", Description: "Outline color of the swatch.", Browsable: true},
	}
}
