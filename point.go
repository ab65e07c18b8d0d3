package colorpick

import "math"

// Position is a point in surface pixel space.
// Coordinates are real-valued while dragging and floored when sampling.
type Position struct {
	X, Y float64
}

// Pos is a convenience function to create a Position.
func Pos(x, y float64) Position {
	return Position{X: x, Y: y}
}

// Add returns the sum of two positions.
func (p Position) Add(q Position) Position {
	return Position{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two positions.
func (p Position) Sub(q Position) Position {
	return Position{X: p.X - q.X, Y: p.Y - q.Y}
}

// In reports whether p lies in the closed rectangle [0, width] × [0, height].
func (p Position) In(width, height int) bool {
	return p.X >= 0 && p.Y >= 0 && p.X <= float64(width) && p.Y <= float64(height)
}

// Clamp floors p to integer pixel coordinates inside [0, width) × [0, height).
// Each axis is clamped independently.
func (p Position) Clamp(width, height int) (x, y int) {
	return clampIndex(p.X, width), clampIndex(p.Y, height)
}

// ClampTo limits p to [0, width-1] × [0, height-1] without rounding.
func (p Position) ClampTo(width, height int) Position {
	return Position{X: clampCoord(p.X, width), Y: clampCoord(p.Y, height)}
}

func clampCoord(v float64, n int) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if hi := float64(n - 1); v > hi {
		return hi
	}
	return v
}

func clampIndex(v float64, n int) int {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v >= float64(n) {
		return n - 1
	}
	return int(v)
}

// DefaultIndicatorRadius is the radius of the indicator outline in pixels.
const DefaultIndicatorRadius = 7

// Indicator is the circular marker showing the selected position.
type Indicator struct {
	Center Position
	Radius float64
}

// Anchor returns the top-left corner of the indicator's bounding square.
// The indicator is drawn centered on the pointer, so the anchor is the
// pointer position minus the radius on both axes.
func (in Indicator) Anchor() Position {
	return Position{X: in.Center.X - in.Radius, Y: in.Center.Y - in.Radius}
}
