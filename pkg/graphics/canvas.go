// Package graphics provides the drawing-surface abstraction controls render
// through: geometry, color, stroke/fill descriptors, the Canvas capability
// set, and a replayable display list recorder.
package graphics

// Canvas is the drawing surface loaned to a control for the duration of one
// render call. Implementations rasterize immediately or record operations
// for later replay; controls must not retain the canvas past the call that
// received it.
type Canvas interface {
	// Clear fills the entire surface with the given color.
	Clear(color Color)

	// StrokeRect draws the outline of a rectangle.
	StrokeRect(rect Rect, stroke Stroke)

	// FillRect paints the interior of a rectangle.
	FillRect(rect Rect, fill Fill)

	// StrokeEllipse draws the outline of the ellipse inscribed in rect.
	StrokeEllipse(rect Rect, stroke Stroke)

	// FillEllipse paints the interior of the ellipse inscribed in rect.
	FillEllipse(rect Rect, fill Fill)

	// StrokeArc draws a portion of the ellipse inscribed in rect, from
	// startAngle over sweepAngle, both in radians. Angle 0 points along
	// the positive X axis; positive sweep is clockwise in screen space.
	StrokeArc(rect Rect, startAngle, sweepAngle float64, stroke Stroke)

	// StrokePolygon draws the closed outline through the given points.
	// Fewer than two points is a no-op.
	StrokePolygon(points []Offset, stroke Stroke)

	// FillPolygon paints the interior of the closed polygon through the
	// given points. Fewer than three points is a no-op.
	FillPolygon(points []Offset, fill Fill)

	// DrawText draws a single line of text with its top-left corner at
	// the given position.
	DrawText(text string, style TextStyle, position Offset)

	// Size returns the size of the surface in pixels.
	Size() Size
}
