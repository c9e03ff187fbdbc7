package graphics

import "fmt"

// StrokeCap describes how stroke endpoints are drawn.
type StrokeCap int

const (
	CapButt   StrokeCap = iota // Flat edge at endpoint (default)
	CapRound                   // Semicircle at endpoint
	CapSquare                  // Square extending past endpoint
)

// String returns a human-readable representation of the stroke cap.
func (c StrokeCap) String() string {
	switch c {
	case CapButt:
		return "butt"
	case CapRound:
		return "round"
	case CapSquare:
		return "square"
	default:
		return fmt.Sprintf("StrokeCap(%d)", int(c))
	}
}

// DashPattern defines a stroke dash pattern as alternating on/off lengths.
//
// The pattern repeats along the stroke. For example, Intervals of [10, 5]
// draws 10 pixels on, 5 pixels off, repeating. Intervals of [10, 5, 5, 5]
// draws 10 on, 5 off, 5 on, 5 off, repeating.
type DashPattern struct {
	Intervals []float64 // Alternating on/off lengths; must have even count >= 2, all > 0
	Phase     float64   // Starting offset into the pattern in pixels
}

// IsValid reports whether the pattern has a usable interval list.
func (d *DashPattern) IsValid() bool {
	if d == nil || len(d.Intervals) < 2 || len(d.Intervals)%2 != 0 {
		return false
	}
	for _, v := range d.Intervals {
		if v <= 0 {
			return false
		}
	}
	return true
}

// Stroke describes how shape outlines are drawn.
type Stroke struct {
	Color Color
	Width float64      // Width in pixels; 0 defaults to 1
	Cap   StrokeCap    // How endpoints are drawn; 0 = CapButt
	Dash  *DashPattern // Dash pattern; nil = solid stroke
}

// DefaultStroke returns a one-pixel solid black stroke.
func DefaultStroke() Stroke {
	return Stroke{Color: ColorBlack, Width: 1}
}

// EffectiveWidth returns the stroke width with the zero-value default applied.
func (s Stroke) EffectiveWidth() float64 {
	if s.Width <= 0 {
		return 1
	}
	return s.Width
}

// HatchStyle selects the line arrangement of a hatch pattern fill.
type HatchStyle int

const (
	HatchHorizontal HatchStyle = iota // Horizontal lines
	HatchVertical                     // Vertical lines
	HatchCross                        // Horizontal and vertical grid
	HatchDiagonal                     // Forward diagonal lines
)

// String returns a human-readable representation of the hatch style.
func (h HatchStyle) String() string {
	switch h {
	case HatchHorizontal:
		return "horizontal"
	case HatchVertical:
		return "vertical"
	case HatchCross:
		return "cross"
	case HatchDiagonal:
		return "diagonal"
	default:
		return fmt.Sprintf("HatchStyle(%d)", int(h))
	}
}

// Pattern describes a two-color hatch pattern fill.
type Pattern struct {
	Style      HatchStyle
	Foreground Color
	Background Color
	Spacing    float64 // Distance between hatch lines in pixels; 0 defaults to 4
}

// EffectiveSpacing returns the line spacing with the zero-value default applied.
func (p *Pattern) EffectiveSpacing() float64 {
	if p == nil || p.Spacing <= 0 {
		return 4
	}
	return p.Spacing
}

// Fill describes how shape interiors are painted: a solid color, a
// gradient, or a hatch pattern. Gradient takes precedence over Pattern,
// and both take precedence over Color.
type Fill struct {
	Color    Color
	Gradient *Gradient // If set, overrides Color
	Pattern  *Pattern  // If set (and Gradient is nil), overrides Color
}

// SolidFill returns a plain single-color fill.
func SolidFill(c Color) Fill {
	return Fill{Color: c}
}
