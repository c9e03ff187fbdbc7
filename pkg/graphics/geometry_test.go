package graphics

import "testing"

func TestRectFromLTWH(t *testing.T) {
	r := RectFromLTWH(10, 20, 30, 40)
	if r.Left != 10 || r.Top != 20 || r.Right != 40 || r.Bottom != 60 {
		t.Fatalf("unexpected rect: %+v", r)
	}
	if r.Width() != 30 || r.Height() != 40 {
		t.Fatalf("unexpected dimensions: %v x %v", r.Width(), r.Height())
	}
}

func TestRectUnion(t *testing.T) {
	a := RectFromLTWH(0, 0, 10, 10)
	b := RectFromLTWH(20, 5, 10, 10)
	u := a.Union(b)
	want := Rect{Left: 0, Top: 0, Right: 30, Bottom: 15}
	if u != want {
		t.Fatalf("union = %+v, want %+v", u, want)
	}
	if !u.ContainsRect(a) || !u.ContainsRect(b) {
		t.Fatal("union must contain both inputs")
	}
}

func TestRectUnionEmptyIsIdentity(t *testing.T) {
	a := RectFromLTWH(5, 5, 10, 10)
	if got := a.Union(Rect{}); got != a {
		t.Fatalf("union with empty = %+v, want %+v", got, a)
	}
	if got := (Rect{}).Union(a); got != a {
		t.Fatalf("empty union rect = %+v, want %+v", got, a)
	}
}

func TestRectIntersect(t *testing.T) {
	a := RectFromLTWH(0, 0, 10, 10)
	b := RectFromLTWH(5, 5, 10, 10)
	got := a.Intersect(b)
	want := Rect{Left: 5, Top: 5, Right: 10, Bottom: 10}
	if got != want {
		t.Fatalf("intersect = %+v, want %+v", got, want)
	}

	c := RectFromLTWH(100, 100, 5, 5)
	if !a.Intersect(c).IsEmpty() {
		t.Fatal("disjoint rects must intersect to empty")
	}
}

func TestRectContains(t *testing.T) {
	r := RectFromLTWH(0, 0, 10, 10)
	if !r.Contains(Offset{X: 5, Y: 5}) {
		t.Fatal("expected interior point to be contained")
	}
	if r.Contains(Offset{X: 10, Y: 5}) {
		t.Fatal("right edge is exclusive")
	}
}

func TestRectInset(t *testing.T) {
	r := RectFromLTWH(0, 0, 10, 10).Inset(2)
	want := Rect{Left: 2, Top: 2, Right: 8, Bottom: 8}
	if r != want {
		t.Fatalf("inset = %+v, want %+v", r, want)
	}
}

func TestColorLerp(t *testing.T) {
	mid := ColorBlack.Lerp(ColorWhite, 0.5)
	r, g, b, a := mid.Components()
	if a != 0xFF {
		t.Fatalf("alpha = %d, want 255", a)
	}
	for _, v := range []uint8{r, g, b} {
		if v < 0x7F || v > 0x81 {
			t.Fatalf("midpoint component = %d, want ~128", v)
		}
	}
	if ColorRed.Lerp(ColorBlue, 0) != ColorRed {
		t.Fatal("t=0 must return the receiver")
	}
	if ColorRed.Lerp(ColorBlue, 1) != ColorBlue {
		t.Fatal("t=1 must return the target")
	}
}

func TestGradientColorAt(t *testing.T) {
	g := NewLinearGradient(Offset{}, Offset{X: 100}, []GradientStop{
		{Position: 0, Color: ColorBlack},
		{Position: 1, Color: ColorWhite},
	})
	if !g.IsValid() {
		t.Fatal("expected valid gradient")
	}
	if g.ColorAt(0) != ColorBlack || g.ColorAt(1) != ColorWhite {
		t.Fatal("endpoint colors must match stops")
	}
	r, _, _, _ := g.ColorAt(0.5).Components()
	if r < 0x7F || r > 0x81 {
		t.Fatalf("midpoint red = %d, want ~128", r)
	}
}

func TestGradientInvalid(t *testing.T) {
	if (&Gradient{}).IsValid() {
		t.Fatal("zero gradient must be invalid")
	}
	oneStop := NewLinearGradient(Offset{}, Offset{X: 1}, []GradientStop{{Position: 0, Color: ColorRed}})
	if oneStop.IsValid() {
		t.Fatal("single-stop gradient must be invalid")
	}
	zeroRadius := NewRadialGradient(Offset{}, 0, []GradientStop{
		{Position: 0, Color: ColorRed},
		{Position: 1, Color: ColorBlue},
	})
	if zeroRadius.IsValid() {
		t.Fatal("zero-radius radial gradient must be invalid")
	}
}

func TestDashPatternIsValid(t *testing.T) {
	cases := []struct {
		name      string
		intervals []float64
		want      bool
	}{
		{"nil", nil, false},
		{"odd count", []float64{4, 2, 1}, false},
		{"zero interval", []float64{4, 0}, false},
		{"valid", []float64{4, 2}, true},
	}
	for _, tc := range cases {
		d := &DashPattern{Intervals: tc.intervals}
		if got := d.IsValid(); got != tc.want {
			t.Errorf("%s: IsValid = %v, want %v", tc.name, got, tc.want)
		}
	}
}
