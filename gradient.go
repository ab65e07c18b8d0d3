package colorpick

import (
	"sort"

	"github.com/gogpu/colorpick/internal/blend"
)

// ColorStop represents a color at a specific position in a gradient.
type ColorStop struct {
	Offset float64 // Position in gradient, 0.0 to 1.0
	Color  Color   // Straight (non-premultiplied) color
	Alpha  float64 // Opacity, 0.0 to 1.0
}

// Stop creates an opaque color stop.
func Stop(offset float64, c Color) ColorStop {
	return ColorStop{Offset: offset, Color: c, Alpha: 1}
}

// StopAlpha creates a color stop with the given opacity.
func StopAlpha(offset float64, c Color, alpha float64) ColorStop {
	return ColorStop{Offset: offset, Color: c, Alpha: alpha}
}

// sortStops returns a copy of stops ordered by offset.
// The sort is stable: stops sharing an offset keep their relative order,
// which is what turns a duplicated offset into a hard edge.
func sortStops(stops []ColorStop) []ColorStop {
	sorted := make([]ColorStop, len(stops))
	copy(sorted, stops)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Offset < sorted[j].Offset
	})
	return sorted
}

// straight is a non-premultiplied RGBA8 value.
type straight struct {
	r, g, b, a byte
}

func stopStraight(s ColorStop) straight {
	return straight{r: s.Color.R, g: s.Color.G, b: s.Color.B, a: blend.Unit(s.Alpha)}
}

// colorAtOffset returns the gradient color at t for pre-sorted stops.
//
// Outside the stop range the nearest end stop is used. A t that falls
// exactly on several coincident stops takes the first of them.
func colorAtOffset(sorted []ColorStop, t float64) straight {
	if len(sorted) == 0 {
		return straight{}
	}
	if t <= sorted[0].Offset {
		return stopStraight(sorted[0])
	}
	last := sorted[len(sorted)-1]
	if t >= last.Offset {
		return stopStraight(last)
	}

	idx := sort.Search(len(sorted), func(i int) bool {
		return sorted[i].Offset >= t
	})
	s1 := sorted[idx-1]
	s2 := sorted[idx]
	if s2.Offset == t {
		return stopStraight(s2)
	}

	u := (t - s1.Offset) / (s2.Offset - s1.Offset)
	return straight{
		r: lerpByte(s1.Color.R, s2.Color.R, u),
		g: lerpByte(s1.Color.G, s2.Color.G, u),
		b: lerpByte(s1.Color.B, s2.Color.B, u),
		a: blend.Unit(s1.Alpha + (s2.Alpha-s1.Alpha)*u),
	}
}

func lerpByte(a, b uint8, t float64) uint8 {
	v := float64(a) + (float64(b)-float64(a))*t
	return uint8(v + 0.5)
}

// gradientRamp evaluates the gradient once per pixel index along an axis
// of n pixels. Index i maps to offset i/(n-1), so the first and last
// index land exactly on the end stops.
func gradientRamp(stops []ColorStop, n int) []straight {
	sorted := sortStops(stops)
	ramp := make([]straight, n)
	for i := range ramp {
		t := 0.0
		if n > 1 {
			t = float64(i) / float64(n-1)
		}
		ramp[i] = colorAtOffset(sorted, t)
	}
	return ramp
}
