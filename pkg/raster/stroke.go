package raster

import (
	"image"
	"math"

	"github.com/go-drift/easel/pkg/graphics"
)

// strokePolyline renders a stroked path by expanding it into filled
// geometry: one quad per segment, a disc at every join, and the requested
// cap at open ends. Dashed strokes are split into on-segments first, each
// capped like a miniature stroke.
func (c *Canvas) strokePolyline(points []graphics.Offset, closed bool, stroke graphics.Stroke) {
	if len(points) < 2 {
		return
	}
	half := stroke.EffectiveWidth() / 2

	var lines [][]graphics.Offset
	if stroke.Dash.IsValid() {
		lines = dashPolyline(points, closed, stroke.Dash)
		closed = false
	} else if closed {
		lines = [][]graphics.Offset{closeLoop(points)}
	} else {
		lines = [][]graphics.Offset{points}
	}

	c.beginPath()
	for _, line := range lines {
		c.addStrokeGeometry(line, closed, half, stroke.Cap)
	}
	c.z.Draw(c.img, c.img.Bounds(), image.NewUniform(toNRGBA(stroke.Color)), image.Point{})
}

func (c *Canvas) addStrokeGeometry(points []graphics.Offset, closed bool, half float64, capStyle graphics.StrokeCap) {
	n := len(points)
	for i := 0; i+1 < n; i++ {
		extendStart := !closed && i == 0 && capStyle == graphics.CapSquare
		extendEnd := !closed && i+2 == n && capStyle == graphics.CapSquare
		c.addSegmentQuad(points[i], points[i+1], half, extendStart, extendEnd)
	}

	// Discs fill the gaps between adjacent quads.
	for i := 1; i+1 < n; i++ {
		c.addDisc(points[i], half)
	}
	if closed {
		c.addDisc(points[0], half)
		return
	}
	if capStyle == graphics.CapRound {
		c.addDisc(points[0], half)
		c.addDisc(points[n-1], half)
	}
}

// addSegmentQuad appends the rectangle covering one stroked segment.
func (c *Canvas) addSegmentQuad(p0, p1 graphics.Offset, half float64, extendStart, extendEnd bool) {
	dx := p1.X - p0.X
	dy := p1.Y - p0.Y
	length := math.Hypot(dx, dy)
	if length == 0 {
		return
	}
	ux, uy := dx/length, dy/length
	if extendStart {
		p0.X -= ux * half
		p0.Y -= uy * half
	}
	if extendEnd {
		p1.X += ux * half
		p1.Y += uy * half
	}
	nx, ny := -uy*half, ux*half

	// Same winding as addDisc: coverage sums instead of canceling where
	// subpaths overlap.
	c.moveTo(p0.X-nx, p0.Y-ny)
	c.lineTo(p1.X-nx, p1.Y-ny)
	c.lineTo(p1.X+nx, p1.Y+ny)
	c.lineTo(p0.X+nx, p0.Y+ny)
	c.z.ClosePath()
}

// addDisc appends a circular subpath.
func (c *Canvas) addDisc(center graphics.Offset, r float64) {
	if r <= 0 {
		return
	}
	cx, cy := center.X, center.Y
	c.moveTo(cx+r, cy)
	c.cubeTo(cx+r, cy+r*kappa, cx+r*kappa, cy+r, cx, cy+r)
	c.cubeTo(cx-r*kappa, cy+r, cx-r, cy+r*kappa, cx-r, cy)
	c.cubeTo(cx-r, cy-r*kappa, cx-r*kappa, cy-r, cx, cy-r)
	c.cubeTo(cx+r*kappa, cy-r, cx+r, cy-r*kappa, cx+r, cy)
	c.z.ClosePath()
}

// closeLoop returns the polyline with the first point appended, dropping a
// duplicate endpoint if the caller already closed it.
func closeLoop(points []graphics.Offset) []graphics.Offset {
	last := points[len(points)-1]
	if last == points[0] {
		return points
	}
	out := make([]graphics.Offset, len(points)+1)
	copy(out, points)
	out[len(points)] = points[0]
	return out
}

// dashPolyline splits a polyline into the "on" runs of a dash pattern.
// Even-indexed intervals are drawn, odd-indexed are gaps; the phase skips
// into the cycle.
func dashPolyline(points []graphics.Offset, closed bool, dash *graphics.DashPattern) [][]graphics.Offset {
	if closed {
		points = closeLoop(points)
	}
	intervals := dash.Intervals

	// Position the phase within the cycle.
	var total float64
	for _, v := range intervals {
		total += v
	}
	phase := math.Mod(dash.Phase, total)
	if phase < 0 {
		phase += total
	}
	idx := 0
	remaining := intervals[0]
	for phase > 0 {
		if phase < remaining {
			remaining -= phase
			break
		}
		phase -= remaining
		idx = (idx + 1) % len(intervals)
		remaining = intervals[idx]
	}

	var runs [][]graphics.Offset
	var current []graphics.Offset
	on := idx%2 == 0
	if on {
		current = append(current, points[0])
	}

	flush := func() {
		if len(current) >= 2 {
			runs = append(runs, current)
		}
		current = nil
	}

	for i := 0; i+1 < len(points); i++ {
		p0, p1 := points[i], points[i+1]
		segLen := math.Hypot(p1.X-p0.X, p1.Y-p0.Y)
		if segLen == 0 {
			continue
		}
		ux := (p1.X - p0.X) / segLen
		uy := (p1.Y - p0.Y) / segLen

		traveled := 0.0
		for segLen-traveled > remaining {
			traveled += remaining
			boundary := graphics.Offset{X: p0.X + ux*traveled, Y: p0.Y + uy*traveled}
			if on {
				current = append(current, boundary)
				flush()
			} else {
				current = []graphics.Offset{boundary}
			}
			on = !on
			idx = (idx + 1) % len(intervals)
			remaining = intervals[idx]
		}
		remaining -= segLen - traveled
		if on {
			current = append(current, p1)
		}
	}
	flush()
	return runs
}
