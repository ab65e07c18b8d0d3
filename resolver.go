package colorpick

import "fmt"

// Locate returns the position of the first pixel, in row-major order,
// whose RGB equals target. pixels is a row-major buffer of the given width.
//
// When no pixel matches, Locate returns the origin and false. Gradient
// rounding means not every color is present in a field, so callers must
// accept the indicator landing at (0, 0).
func Locate(pixels []Color, width int, target Color) (Position, bool) {
	if width <= 0 {
		return Position{}, false
	}
	for i, c := range pixels {
		if c == target {
			return Position{X: float64(i % width), Y: float64(i / width)}, true
		}
	}
	return Position{}, false
}

// LocateIn is Locate over the full content of s.
func LocateIn(s Surface, target Color) (Position, bool) {
	return Locate(s.ReadAll(), s.Width(), target)
}

// SampleAt returns the color under p after clamping each coordinate into
// the surface and flooring it to a pixel index.
//
// SampleAt panics if the surface rejects the clamped coordinate; that can
// only happen when a Surface implementation disagrees with its own size.
func SampleAt(s Surface, p Position) Color {
	x, y := p.Clamp(s.Width(), s.Height())
	c, err := s.SamplePixel(x, y)
	if err != nil {
		panic(fmt.Sprintf("colorpick: sampling clamped position (%d, %d): %v", x, y, err))
	}
	return c
}
