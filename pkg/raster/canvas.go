// Package raster is a software implementation of the graphics.Canvas
// surface. It rasterizes into an in-memory RGBA image, which hosts blit to
// the native surface and tests inspect pixel by pixel. Shapes go through
// an anti-aliased scanline rasterizer; strokes are expanded to filled
// outlines with round joins.
package raster

import (
	"image"
	"image/draw"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/go-drift/easel/pkg/graphics"
)

// kappa is the control-point distance for approximating a quarter circle
// with one cubic segment.
const kappa = 0.5522847498

// Canvas rasterizes drawing operations into an RGBA image.
type Canvas struct {
	img *image.RGBA
	z   *vector.Rasterizer
}

// New creates a canvas of the given pixel size. Width and height must be
// positive.
func New(width, height int) *Canvas {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	return &Canvas{
		img: image.NewRGBA(image.Rect(0, 0, width, height)),
		z:   vector.NewRasterizer(width, height),
	}
}

// Image returns the backing image. The canvas keeps drawing into it; copy
// before mutating.
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

// Size returns the surface size in pixels.
func (c *Canvas) Size() graphics.Size {
	b := c.img.Bounds()
	return graphics.Size{Width: float64(b.Dx()), Height: float64(b.Dy())}
}

// Clear fills the entire surface with the given color.
func (c *Canvas) Clear(col graphics.Color) {
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(toNRGBA(col)), image.Point{}, draw.Src)
}

// FillRect paints the interior of a rectangle.
func (c *Canvas) FillRect(rect graphics.Rect, fill graphics.Fill) {
	if rect.IsEmpty() {
		return
	}
	c.beginPath()
	c.moveTo(rect.Left, rect.Top)
	c.lineTo(rect.Right, rect.Top)
	c.lineTo(rect.Right, rect.Bottom)
	c.lineTo(rect.Left, rect.Bottom)
	c.z.ClosePath()
	c.fillPath(fill)
}

// StrokeRect draws the outline of a rectangle.
func (c *Canvas) StrokeRect(rect graphics.Rect, stroke graphics.Stroke) {
	if rect.IsEmpty() {
		return
	}
	c.strokePolyline([]graphics.Offset{
		{X: rect.Left, Y: rect.Top},
		{X: rect.Right, Y: rect.Top},
		{X: rect.Right, Y: rect.Bottom},
		{X: rect.Left, Y: rect.Bottom},
	}, true, stroke)
}

// FillEllipse paints the interior of the ellipse inscribed in rect.
func (c *Canvas) FillEllipse(rect graphics.Rect, fill graphics.Fill) {
	if rect.IsEmpty() {
		return
	}
	cx, cy := rect.Center().X, rect.Center().Y
	rx, ry := rect.Width()/2, rect.Height()/2

	c.beginPath()
	c.moveTo(cx+rx, cy)
	c.cubeTo(cx+rx, cy+ry*kappa, cx+rx*kappa, cy+ry, cx, cy+ry)
	c.cubeTo(cx-rx*kappa, cy+ry, cx-rx, cy+ry*kappa, cx-rx, cy)
	c.cubeTo(cx-rx, cy-ry*kappa, cx-rx*kappa, cy-ry, cx, cy-ry)
	c.cubeTo(cx+rx*kappa, cy-ry, cx+rx, cy-ry*kappa, cx+rx, cy)
	c.z.ClosePath()
	c.fillPath(fill)
}

// StrokeEllipse draws the outline of the ellipse inscribed in rect.
func (c *Canvas) StrokeEllipse(rect graphics.Rect, stroke graphics.Stroke) {
	if rect.IsEmpty() {
		return
	}
	c.strokePolyline(flattenArc(rect, 0, 2*math.Pi), true, stroke)
}

// StrokeArc draws a portion of the ellipse inscribed in rect, from
// startAngle over sweepAngle, both in radians.
func (c *Canvas) StrokeArc(rect graphics.Rect, startAngle, sweepAngle float64, stroke graphics.Stroke) {
	if rect.IsEmpty() || sweepAngle == 0 {
		return
	}
	c.strokePolyline(flattenArc(rect, startAngle, sweepAngle), false, stroke)
}

// StrokePolygon draws the closed outline through the given points. Two
// points degenerate to a single line segment.
func (c *Canvas) StrokePolygon(points []graphics.Offset, stroke graphics.Stroke) {
	if len(points) < 2 {
		return
	}
	c.strokePolyline(points, len(points) > 2, stroke)
}

// FillPolygon paints the interior of the closed polygon through the given
// points.
func (c *Canvas) FillPolygon(points []graphics.Offset, fill graphics.Fill) {
	if len(points) < 3 {
		return
	}
	c.beginPath()
	c.moveTo(points[0].X, points[0].Y)
	for _, p := range points[1:] {
		c.lineTo(p.X, p.Y)
	}
	c.z.ClosePath()
	c.fillPath(fill)
}

// DrawText draws a single line of text with its top-left corner at the
// given position.
func (c *Canvas) DrawText(text string, style graphics.TextStyle, position graphics.Offset) {
	if text == "" {
		return
	}
	face := style.EffectiveFace()
	metrics := face.Metrics()
	drawer := &font.Drawer{
		Dst:  c.img,
		Src:  image.NewUniform(toNRGBA(style.Color)),
		Face: face,
		Dot: fixed.Point26_6{
			X: floatToFixed(position.X),
			Y: floatToFixed(position.Y) + metrics.Ascent,
		},
	}
	drawer.DrawString(text)
}

// beginPath resets the rasterizer for a fresh path.
func (c *Canvas) beginPath() {
	b := c.img.Bounds()
	c.z.Reset(b.Dx(), b.Dy())
	c.z.DrawOp = draw.Over
}

func (c *Canvas) moveTo(x, y float64) { c.z.MoveTo(float32(x), float32(y)) }
func (c *Canvas) lineTo(x, y float64) { c.z.LineTo(float32(x), float32(y)) }

func (c *Canvas) cubeTo(x1, y1, x2, y2, x3, y3 float64) {
	c.z.CubeTo(float32(x1), float32(y1), float32(x2), float32(y2), float32(x3), float32(y3))
}

// fillPath rasterizes the accumulated path with the fill's paint source.
func (c *Canvas) fillPath(fill graphics.Fill) {
	c.z.Draw(c.img, c.img.Bounds(), fillSource(fill), image.Point{})
}

func floatToFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(math.Round(v * 64))
}

// flattenArc samples the ellipse inscribed in rect from startAngle over
// sweepAngle into a polyline. Sampling density scales with the sweep.
func flattenArc(rect graphics.Rect, startAngle, sweepAngle float64) []graphics.Offset {
	center := rect.Center()
	rx, ry := rect.Width()/2, rect.Height()/2

	segments := int(math.Ceil(math.Abs(sweepAngle) / (math.Pi / 32)))
	if segments < 8 {
		segments = 8
	}
	points := make([]graphics.Offset, segments+1)
	for i := 0; i <= segments; i++ {
		theta := startAngle + sweepAngle*float64(i)/float64(segments)
		points[i] = graphics.Offset{
			X: center.X + rx*math.Cos(theta),
			Y: center.Y + ry*math.Sin(theta),
		}
	}
	return points
}
