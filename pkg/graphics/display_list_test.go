package graphics

import "testing"

func recordSample(r *Recorder) *DisplayList {
	canvas := r.BeginRecording(Size{Width: 100, Height: 100})
	canvas.Clear(ColorWhite)
	canvas.FillRect(RectFromLTWH(10, 10, 50, 50), SolidFill(ColorRed))
	canvas.StrokeEllipse(RectFromLTWH(20, 20, 30, 30), DefaultStroke())
	canvas.StrokePolygon([]Offset{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 5, Y: 10}}, DefaultStroke())
	canvas.DrawText("hi", TextStyle{Color: ColorBlack}, Offset{X: 5, Y: 5})
	return r.EndRecording()
}

func TestRecorderRoundTrip(t *testing.T) {
	var recorder Recorder
	list := recordSample(&recorder)
	if list.Len() != 5 {
		t.Fatalf("recorded %d ops, want 5", list.Len())
	}

	var replayTarget Recorder
	canvas := replayTarget.BeginRecording(list.Size())
	list.Replay(canvas)
	replayed := replayTarget.EndRecording()

	if !list.Equal(replayed) {
		t.Fatal("replaying a display list must reproduce the same op sequence")
	}
}

func TestDisplayListEqual(t *testing.T) {
	var a, b Recorder
	listA := recordSample(&a)
	listB := recordSample(&b)
	if !listA.Equal(listB) {
		t.Fatal("identical recordings must compare equal")
	}

	canvas := b.BeginRecording(Size{Width: 100, Height: 100})
	canvas.Clear(ColorBlack)
	different := b.EndRecording()
	if listA.Equal(different) {
		t.Fatal("different recordings must not compare equal")
	}
}

func TestRecorderPolygonPointsAreCopied(t *testing.T) {
	var recorder Recorder
	points := []Offset{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 5, Y: 10}}
	canvas := recorder.BeginRecording(Size{Width: 20, Height: 20})
	canvas.FillPolygon(points, SolidFill(ColorGreen))
	list := recorder.EndRecording()

	points[0].X = 999

	var check Recorder
	canvas = check.BeginRecording(Size{Width: 20, Height: 20})
	canvas.FillPolygon([]Offset{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 5, Y: 10}}, SolidFill(ColorGreen))
	want := check.EndRecording()

	if !list.Equal(want) {
		t.Fatal("recorded polygon must not alias the caller's slice")
	}
}

func TestEndRecordingWithoutBegin(t *testing.T) {
	var recorder Recorder
	list := recorder.EndRecording()
	if list.Len() != 0 {
		t.Fatalf("expected empty list, got %d ops", list.Len())
	}
}

func TestMeasureText(t *testing.T) {
	size := MeasureText("hello", TextStyle{Color: ColorBlack})
	if size.Width <= 0 || size.Height <= 0 {
		t.Fatalf("expected positive text size, got %+v", size)
	}
	wider := MeasureText("hello world", TextStyle{Color: ColorBlack})
	if wider.Width <= size.Width {
		t.Fatal("longer text must measure wider")
	}
	if TextBaseline(TextStyle{}) <= 0 {
		t.Fatal("baseline must be positive")
	}
}
