package widgets

import (
	"math"

	"github.com/go-drift/easel/pkg/control"
	"github.com/go-drift/easel/pkg/graphics"
)

// dialSweep is the angular range of the dial track, a three-quarter circle
// opening downward.
const (
	dialStartAngle = 3 * math.Pi / 4
	dialSweepAngle = 3 * math.Pi / 2
)

// Dial is a rotary value control. Value holds the position in [0, 1];
// SetValue clamps out-of-range input instead of rejecting it, so dragging
// past either end simply pins the needle.
type Dial struct {
	control.ControlBase

	Value      *control.Cell[float64]
	TrackColor *control.Cell[graphics.Color]
	Needle     *control.Cell[graphics.Color]

	// Step is the increment applied by arrow-key input. Defaults to 0.05.
	Step float64

	// OnValueChanged fires after Value actually changes.
	OnValueChanged func(d *Dial, value float64)
}

// NewDial creates a dial at the given bounds with the needle at zero.
func NewDial(bounds graphics.Rect) *Dial {
	d := &Dial{
		Value:      control.NewCell(0.0),
		TrackColor: control.NewCell(graphics.ColorGray),
		Needle:     control.NewCell(graphics.ColorBlack),
		Step:       0.05,
	}
	d.Init(d)
	d.SetInitialBounds(bounds)
	control.RepaintOnChange(d, d.Value)
	control.RepaintOnChange(d, d.TrackColor)
	control.RepaintOnChange(d, d.Needle)
	d.OnPointer(d.handlePointer)
	d.OnKey(d.handleKey)
	d.Value.OnChange(func(_, v float64) {
		if d.OnValueChanged != nil {
			d.OnValueChanged(d, v)
		}
	})
	return d
}

// SetValue moves the needle, clamping to [0, 1]. Returns true when the
// stored value changed.
func (d *Dial) SetValue(v float64) bool {
	return d.Value.Set(clamp01(v))
}

func (d *Dial) handlePointer(ev control.PointerEvent) {
	if ev.Phase != control.PointerPhaseDown && ev.Phase != control.PointerPhaseMove {
		return
	}
	if ev.Phase == control.PointerPhaseMove && ev.Button != control.ButtonPrimary {
		return
	}
	d.SetValue(d.valueAt(ev.Position))
}

func (d *Dial) handleKey(ev control.KeyEvent) {
	step := d.Step
	if step <= 0 {
		step = 0.05
	}
	switch ev.Name {
	case "up", "right":
		d.SetValue(d.Value.Get() + step)
	case "down", "left":
		d.SetValue(d.Value.Get() - step)
	case "home":
		d.SetValue(0)
	case "end":
		d.SetValue(1)
	}
}

// valueAt converts a pointer position to the dial value whose needle angle
// is nearest the pointer's angle from the center.
func (d *Dial) valueAt(p graphics.Offset) float64 {
	center := d.Bounds().Center()
	angle := math.Atan2(p.Y-center.Y, p.X-center.X)
	// Normalize relative to the track start, into [0, 2π).
	rel := math.Mod(angle-dialStartAngle+4*math.Pi, 2*math.Pi)
	if rel > dialSweepAngle {
		// In the dead zone below the track: snap to the nearer end.
		if rel-dialSweepAngle < 2*math.Pi-rel {
			return 1
		}
		return 0
	}
	return rel / dialSweepAngle
}

// needleAngle returns the current needle angle in radians.
func (d *Dial) needleAngle() float64 {
	return dialStartAngle + clamp01(d.Value.Get())*dialSweepAngle
}

// Paint draws the track arc and the needle polygon.
func (d *Dial) Paint(canvas graphics.Canvas) {
	bounds := d.Bounds()
	track := bounds.Inset(4)
	canvas.StrokeArc(track, dialStartAngle, dialSweepAngle, graphics.Stroke{
		Color: d.TrackColor.Get(),
		Width: 3,
		Cap:   graphics.CapRound,
	})

	center := bounds.Center()
	radius := math.Min(track.Width(), track.Height()) / 2
	angle := d.needleAngle()
	tip := graphics.Offset{
		X: center.X + math.Cos(angle)*radius,
		Y: center.Y + math.Sin(angle)*radius,
	}
	// A thin triangle from the hub to the tip.
	side := angle + math.Pi/2
	half := 2.5
	canvas.FillPolygon([]graphics.Offset{
		{X: center.X + math.Cos(side)*half, Y: center.Y + math.Sin(side)*half},
		tip,
		{X: center.X - math.Cos(side)*half, Y: center.Y - math.Sin(side)*half},
	}, graphics.SolidFill(d.Needle.Get()))
}

// Properties publishes the designer descriptor table.
func (d *Dial) Properties() []control.PropertyInfo {
	return []control.PropertyInfo{
		{Name: "Value", Category: "Behavior", Description: "Needle position in [0, 1].", Browsable: true},
		{Name: "TrackColor", Category: "Appearance", Description: "Color of the track arc.", Browsable: true},
		{Name: "NeedleColor", Category: "Appearance", Description: "Color of the needle.", Browsable: true},
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
