package raster

import (
	"image"
	"image/color"
	"math"

	"github.com/go-drift/easel/pkg/graphics"
)

// fillSource builds the paint source image for a fill descriptor.
// Precedence follows the descriptor: gradient, then pattern, then solid
// color.
func fillSource(fill graphics.Fill) image.Image {
	switch {
	case fill.Gradient.IsValid():
		return &gradientSource{gradient: fill.Gradient}
	case fill.Pattern != nil:
		return &patternSource{pattern: fill.Pattern}
	default:
		return image.NewUniform(toNRGBA(fill.Color))
	}
}

func toNRGBA(c graphics.Color) color.NRGBA {
	r, g, b, a := c.Components()
	return color.NRGBA{R: r, G: g, B: b, A: a}
}

// gradientSource evaluates a gradient at every pixel. It is an infinite
// image; the rasterizer samples only covered pixels.
type gradientSource struct {
	gradient *graphics.Gradient
}

func (s *gradientSource) ColorModel() color.Model { return color.NRGBAModel }

func (s *gradientSource) Bounds() image.Rectangle {
	return image.Rect(math.MinInt32, math.MinInt32, math.MaxInt32, math.MaxInt32)
}

func (s *gradientSource) At(x, y int) color.Color {
	// Sample at the pixel center.
	return toNRGBA(s.gradient.ColorAt(s.position(float64(x)+0.5, float64(y)+0.5)))
}

// position projects a point into the gradient's [0, 1] parameter space.
func (s *gradientSource) position(x, y float64) float64 {
	switch s.gradient.Type {
	case graphics.GradientTypeLinear:
		lin := s.gradient.Linear
		dx := lin.End.X - lin.Start.X
		dy := lin.End.Y - lin.Start.Y
		lenSq := dx*dx + dy*dy
		if lenSq == 0 {
			return 0
		}
		return ((x-lin.Start.X)*dx + (y-lin.Start.Y)*dy) / lenSq
	case graphics.GradientTypeRadial:
		rad := s.gradient.Radial
		dx := x - rad.Center.X
		dy := y - rad.Center.Y
		return math.Sqrt(dx*dx+dy*dy) / rad.Radius
	default:
		return 0
	}
}

// patternSource draws one-pixel hatch lines on the pattern's background.
type patternSource struct {
	pattern *graphics.Pattern
}

func (s *patternSource) ColorModel() color.Model { return color.NRGBAModel }

func (s *patternSource) Bounds() image.Rectangle {
	return image.Rect(math.MinInt32, math.MinInt32, math.MaxInt32, math.MaxInt32)
}

func (s *patternSource) At(x, y int) color.Color {
	if s.onLine(x, y) {
		return toNRGBA(s.pattern.Foreground)
	}
	return toNRGBA(s.pattern.Background)
}

func (s *patternSource) onLine(x, y int) bool {
	spacing := int(s.pattern.EffectiveSpacing())
	if spacing < 1 {
		spacing = 1
	}
	mod := func(v int) int {
		m := v % spacing
		if m < 0 {
			m += spacing
		}
		return m
	}
	switch s.pattern.Style {
	case graphics.HatchHorizontal:
		return mod(y) == 0
	case graphics.HatchVertical:
		return mod(x) == 0
	case graphics.HatchCross:
		return mod(x) == 0 || mod(y) == 0
	case graphics.HatchDiagonal:
		return mod(x+y) == 0
	default:
		return false
	}
}
