package colorpick

import "testing"

func TestColorAtOffset(t *testing.T) {
	stops := sortStops([]ColorStop{Stop(0, Black), Stop(1, White)})
	tests := []struct {
		t    float64
		want straight
	}{
		{-1, straight{0, 0, 0, 255}},
		{0, straight{0, 0, 0, 255}},
		{0.5, straight{128, 128, 128, 255}},
		{1, straight{255, 255, 255, 255}},
		{2, straight{255, 255, 255, 255}},
	}
	for _, tt := range tests {
		if got := colorAtOffset(stops, tt.t); got != tt.want {
			t.Errorf("colorAtOffset(%v) = %v, want %v", tt.t, got, tt.want)
		}
	}
}

func TestColorAtOffsetEmpty(t *testing.T) {
	if got := colorAtOffset(nil, 0.5); got != (straight{}) {
		t.Errorf("colorAtOffset(nil) = %v, want zero", got)
	}
}

func TestColorAtOffsetHardEdge(t *testing.T) {
	sorted := sortStops(LuminanceStops)

	if got, want := colorAtOffset(sorted, 0.5), (straight{255, 255, 255, 0}); got != want {
		t.Errorf("colorAtOffset(0.5) = %v, want %v", got, want)
	}
	if got, want := colorAtOffset(sorted, 0.25), (straight{255, 255, 255, 128}); got != want {
		t.Errorf("colorAtOffset(0.25) = %v, want %v", got, want)
	}
	if got, want := colorAtOffset(sorted, 0.75), (straight{0, 0, 0, 128}); got != want {
		t.Errorf("colorAtOffset(0.75) = %v, want %v", got, want)
	}
	// Just past the edge the color is black, not a white/black mix.
	if got := colorAtOffset(sorted, 0.5001); got.r != 0 || got.g != 0 || got.b != 0 {
		t.Errorf("colorAtOffset(0.5001) = %v, want black", got)
	}
}

func TestSortStopsStable(t *testing.T) {
	in := []ColorStop{
		Stop(1, Blue),
		Stop(0.5, Red),
		Stop(0, Black),
		Stop(0.5, Green),
	}
	got := sortStops(in)
	want := []Color{Black, Red, Green, Blue}
	for i, s := range got {
		if s.Color != want[i] {
			t.Errorf("sortStops()[%d] = %v, want %v", i, s.Color, want[i])
		}
	}
	if in[0].Color != Blue {
		t.Error("sortStops() modified its input")
	}
}

func TestGradientRampHitsStops(t *testing.T) {
	ramp := gradientRamp(HueStops, 101)
	tests := []struct {
		i    int
		want Color
	}{
		{0, Red},
		{17, Yellow},
		{34, Green},
		{51, Cyan},
		{68, Blue},
		{85, Magenta},
		{100, Red},
	}
	for _, tt := range tests {
		s := ramp[tt.i]
		got := RGB(s.r, s.g, s.b)
		if got != tt.want || s.a != 255 {
			t.Errorf("ramp[%d] = %v (alpha %d), want %v opaque", tt.i, got, s.a, tt.want)
		}
	}
}

func TestGradientRampSinglePixel(t *testing.T) {
	ramp := gradientRamp(HueStops, 1)
	if len(ramp) != 1 || RGB(ramp[0].r, ramp[0].g, ramp[0].b) != Red {
		t.Errorf("gradientRamp(n=1) = %v, want [red]", ramp)
	}
}
