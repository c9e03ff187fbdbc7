package widgets

import (
	"github.com/go-drift/easel/pkg/control"
	"github.com/go-drift/easel/pkg/graphics"
)

// Badge is an elliptical label. The background accepts any fill kind the
// paint model supports, including gradients and hatch patterns.
//
// Background is compared with ==, so gradient and pattern fills gate on
// pointer identity: build a new descriptor to change them.
type Badge struct {
	control.ControlBase

	Label      *control.Cell[string]
	TextColor  *control.Cell[graphics.Color]
	Background *control.Cell[graphics.Fill]
}

// NewBadge creates a badge at the given bounds.
func NewBadge(bounds graphics.Rect, label string) *Badge {
	b := &Badge{
		Label:      control.NewCell(label),
		TextColor:  control.NewCell(graphics.ColorWhite),
		Background: control.NewCell(graphics.SolidFill(graphics.ColorGray)),
	}
	b.Init(b)
	b.SetInitialBounds(bounds)
	control.RepaintOnChange(b, b.Label)
	control.RepaintOnChange(b, b.TextColor)
	control.RepaintOnChange(b, b.Background)
	return b
}

// Paint draws the ellipse and the centered label.
func (b *Badge) Paint(canvas graphics.Canvas) {
	bounds := b.Bounds()
	canvas.FillEllipse(bounds, b.Background.Get())

	label := b.Label.Get()
	if label == "" {
		return
	}
	style := graphics.TextStyle{Color: b.TextColor.Get()}
	size := graphics.MeasureText(label, style)
	center := bounds.Center()
	canvas.DrawText(label, style, graphics.Offset{
		X: center.X - size.Width/2,
		Y: center.Y - size.Height/2,
	})
}

// Properties publishes the designer descriptor table.
func (b *Badge) Properties() []control.PropertyInfo {
	return []control.PropertyInfo{
		{Name: "Label", Category: "Content", Description: "Text shown in the badge.", Browsable: true},
		{Name: "TextColor", Category: "Appearance", Description: "Label color.", Browsable: true},
		{Name: "Background", Category: "Appearance", Description: "Fill behind the label.", Browsable: true},
	}
}
