package colorpick

import "errors"

// Common errors returned by surfaces.
var (
	// ErrOutOfRange is returned when a pixel coordinate lies outside the surface.
	ErrOutOfRange = errors.New("colorpick: pixel out of range")

	// ErrInvalidDimensions is returned when width or height is not positive.
	ErrInvalidDimensions = errors.New("colorpick: invalid dimensions")

	// ErrSizeMismatch is returned when two surfaces of different sizes are combined.
	ErrSizeMismatch = errors.New("colorpick: surface size mismatch")
)

// Axis selects the direction a linear gradient runs along.
type Axis uint8

const (
	// AxisHorizontal varies the gradient from the left column to the right column.
	AxisHorizontal Axis = iota
	// AxisVertical varies the gradient from the top row to the bottom row.
	AxisVertical
)

// String returns the axis name for debugging.
func (a Axis) String() string {
	switch a {
	case AxisHorizontal:
		return "Horizontal"
	case AxisVertical:
		return "Vertical"
	default:
		return "Unknown"
	}
}

// Surface is a fixed-size mutable pixel canvas.
//
// Surfaces are NOT thread-safe. A Surface is owned by a single Controller,
// which serializes access.
type Surface interface {
	// Width returns the surface width in pixels.
	Width() int

	// Height returns the surface height in pixels.
	Height() int

	// PaintLinearGradient overwrites every pixel with a linear gradient
	// running along axis. Stop offsets must be non-decreasing in [0, 1].
	PaintLinearGradient(axis Axis, stops []ColorStop)

	// CompositeOver blends a linear gradient over the existing content
	// using source-over compositing.
	CompositeOver(axis Axis, stops []ColorStop)

	// StrokeCircle draws a one-pixel aliased circle outline.
	// Pixels other than the outline are left untouched.
	StrokeCircle(center Position, radius float64, c Color)

	// SamplePixel returns the color at (x, y), ignoring alpha.
	// Coordinates outside the surface return an error wrapping ErrOutOfRange.
	SamplePixel(x, y int) (Color, error)

	// ReadAll returns every pixel in row-major order.
	ReadAll() []Color
}
