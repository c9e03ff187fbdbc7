package graphics

import "reflect"

// DisplayList is an immutable list of drawing operations.
// It can be replayed onto any Canvas implementation.
type DisplayList struct {
	ops  []displayOp
	size Size
}

// Replay executes the recorded operations against the provided canvas.
func (d *DisplayList) Replay(canvas Canvas) {
	for _, op := range d.ops {
		op.execute(canvas)
	}
}

// Size returns the size recorded when the display list was created.
func (d *DisplayList) Size() Size {
	return d.size
}

// Len returns the number of recorded operations.
func (d *DisplayList) Len() int {
	return len(d.ops)
}

// Equal reports whether two display lists contain identical operation
// sequences. Used to verify that repeated renders of unchanged state
// produce identical output.
func (d *DisplayList) Equal(other *DisplayList) bool {
	if d == nil || other == nil {
		return d == other
	}
	if len(d.ops) != len(other.ops) {
		return false
	}
	return reflect.DeepEqual(d.ops, other.ops)
}

// Recorder records drawing commands into a display list.
type Recorder struct {
	ops       []displayOp
	recording bool
	size      Size
}

// BeginRecording starts a new recording session.
func (r *Recorder) BeginRecording(size Size) Canvas {
	r.ops = r.ops[:0]
	r.recording = true
	r.size = size
	return &recordingCanvas{recorder: r, size: size}
}

// EndRecording finishes the recording and returns a display list.
func (r *Recorder) EndRecording() *DisplayList {
	if !r.recording {
		return &DisplayList{size: r.size}
	}
	r.recording = false
	ops := make([]displayOp, len(r.ops))
	copy(ops, r.ops)
	return &DisplayList{
		ops:  ops,
		size: r.size,
	}
}

func (r *Recorder) append(op displayOp) {
	if !r.recording {
		return
	}
	r.ops = append(r.ops, op)
}

type displayOp interface {
	execute(canvas Canvas)
}

type recordingCanvas struct {
	recorder *Recorder
	size     Size
}

func (c *recordingCanvas) Clear(color Color) {
	c.recorder.append(opClear{color: color})
}

func (c *recordingCanvas) StrokeRect(rect Rect, stroke Stroke) {
	c.recorder.append(opStrokeRect{rect: rect, stroke: stroke})
}

func (c *recordingCanvas) FillRect(rect Rect, fill Fill) {
	c.recorder.append(opFillRect{rect: rect, fill: fill})
}

func (c *recordingCanvas) StrokeEllipse(rect Rect, stroke Stroke) {
	c.recorder.append(opStrokeEllipse{rect: rect, stroke: stroke})
}

func (c *recordingCanvas) FillEllipse(rect Rect, fill Fill) {
	c.recorder.append(opFillEllipse{rect: rect, fill: fill})
}

func (c *recordingCanvas) StrokeArc(rect Rect, startAngle, sweepAngle float64, stroke Stroke) {
	c.recorder.append(opStrokeArc{rect: rect, start: startAngle, sweep: sweepAngle, stroke: stroke})
}

func (c *recordingCanvas) StrokePolygon(points []Offset, stroke Stroke) {
	c.recorder.append(opStrokePolygon{points: clonePoints(points), stroke: stroke})
}

func (c *recordingCanvas) FillPolygon(points []Offset, fill Fill) {
	c.recorder.append(opFillPolygon{points: clonePoints(points), fill: fill})
}

func (c *recordingCanvas) DrawText(text string, style TextStyle, position Offset) {
	c.recorder.append(opText{text: text, style: style, position: position})
}

func (c *recordingCanvas) Size() Size {
	return c.size
}

func clonePoints(points []Offset) []Offset {
	if len(points) == 0 {
		return nil
	}
	clone := make([]Offset, len(points))
	copy(clone, points)
	return clone
}

type opClear struct {
	color Color
}

func (op opClear) execute(canvas Canvas) {
	canvas.Clear(op.color)
}

type opStrokeRect struct {
	rect   Rect
	stroke Stroke
}

func (op opStrokeRect) execute(canvas Canvas) {
	canvas.StrokeRect(op.rect, op.stroke)
}

type opFillRect struct {
	rect Rect
	fill Fill
}

func (op opFillRect) execute(canvas Canvas) {
	canvas.FillRect(op.rect, op.fill)
}

type opStrokeEllipse struct {
	rect   Rect
	stroke Stroke
}

func (op opStrokeEllipse) execute(canvas Canvas) {
	canvas.StrokeEllipse(op.rect, op.stroke)
}

type opFillEllipse struct {
	rect Rect
	fill Fill
}

func (op opFillEllipse) execute(canvas Canvas) {
	canvas.FillEllipse(op.rect, op.fill)
}

type opStrokeArc struct {
	rect   Rect
	start  float64
	sweep  float64
	stroke Stroke
}

func (op opStrokeArc) execute(canvas Canvas) {
	canvas.StrokeArc(op.rect, op.start, op.sweep, op.stroke)
}

type opStrokePolygon struct {
	points []Offset
	stroke Stroke
}

func (op opStrokePolygon) execute(canvas Canvas) {
	canvas.StrokePolygon(op.points, op.stroke)
}

type opFillPolygon struct {
	points []Offset
	fill   Fill
}

func (op opFillPolygon) execute(canvas Canvas) {
	canvas.FillPolygon(op.points, op.fill)
}

type opText struct {
	text     string
	style    TextStyle
	position Offset
}

func (op opText) execute(canvas Canvas) {
	canvas.DrawText(op.text, op.style, op.position)
}
