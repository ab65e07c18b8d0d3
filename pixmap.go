package colorpick

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/colorpick/internal/blend"
	"github.com/gogpu/colorpick/internal/parallel"
	"github.com/gogpu/colorpick/internal/raster"
)

// Pixmap is a CPU Surface backed by a premultiplied RGBA8 buffer.
type Pixmap struct {
	width  int
	height int
	data   []uint8 // premultiplied RGBA, 4 bytes per pixel, row-major
}

var _ Surface = (*Pixmap)(nil)

// NewPixmap creates a new transparent pixmap with the given dimensions.
func NewPixmap(width, height int) (*Pixmap, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: width=%d, height=%d", ErrInvalidDimensions, width, height)
	}
	return &Pixmap{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}, nil
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int {
	return p.width
}

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int {
	return p.height
}

// Data returns the raw pixel data (premultiplied RGBA).
func (p *Pixmap) Data() []uint8 {
	return p.data
}

// Format reports the GPU texture format matching Data.
func (p *Pixmap) Format() gputypes.TextureFormat {
	return gputypes.TextureFormatRGBA8Unorm
}

// PaintLinearGradient implements Surface.
func (p *Pixmap) PaintLinearGradient(axis Axis, stops []ColorStop) {
	p.applyGradient(axis, stops, blend.Source)
}

// CompositeOver implements Surface.
func (p *Pixmap) CompositeOver(axis Axis, stops []ColorStop) {
	p.applyGradient(axis, stops, blend.SourceOver)
}

func (p *Pixmap) applyGradient(axis Axis, stops []ColorStop, op func(dst []byte, r, g, b, a byte)) {
	n := p.width
	if axis == AxisVertical {
		n = p.height
	}
	ramp := gradientRamp(stops, n)

	// Rows are independent, so bands can be painted concurrently without
	// changing a single output byte.
	parallel.Rows(p.height, 0, func(lo, hi int) {
		for y := lo; y < hi; y++ {
			row := p.data[y*p.width*4 : (y+1)*p.width*4]
			if axis == AxisVertical {
				s := ramp[y]
				for x := 0; x < p.width; x++ {
					op(row[x*4:x*4+4], s.r, s.g, s.b, s.a)
				}
				continue
			}
			for x := 0; x < p.width; x++ {
				s := ramp[x]
				op(row[x*4:x*4+4], s.r, s.g, s.b, s.a)
			}
		}
	})
}

// StrokeCircle implements Surface. The outline is opaque and aliased;
// pixels falling outside the pixmap are clipped.
func (p *Pixmap) StrokeCircle(center Position, radius float64, c Color) {
	raster.CircleOutline(center.X, center.Y, radius, func(x, y int) {
		if x < 0 || x >= p.width || y < 0 || y >= p.height {
			return
		}
		i := (y*p.width + x) * 4
		p.data[i+0] = c.R
		p.data[i+1] = c.G
		p.data[i+2] = c.B
		p.data[i+3] = 255
	})
}

// SamplePixel implements Surface.
func (p *Pixmap) SamplePixel(x, y int) (Color, error) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return Color{}, fmt.Errorf("%w: (%d, %d) not in %dx%d", ErrOutOfRange, x, y, p.width, p.height)
	}
	i := (y*p.width + x) * 4
	return Color{R: p.data[i+0], G: p.data[i+1], B: p.data[i+2]}, nil
}

// ReadAll implements Surface.
func (p *Pixmap) ReadAll() []Color {
	out := make([]Color, p.width*p.height)
	for i := range out {
		j := i * 4
		out[i] = Color{R: p.data[j+0], G: p.data[j+1], B: p.data[j+2]}
	}
	return out
}

// CopyFrom replaces the pixmap content with src's.
func (p *Pixmap) CopyFrom(src *Pixmap) error {
	if src.width != p.width || src.height != p.height {
		return fmt.Errorf("%w: %dx%d into %dx%d", ErrSizeMismatch, src.width, src.height, p.width, p.height)
	}
	copy(p.data, src.data)
	return nil
}

// Clone returns a deep copy of the pixmap.
func (p *Pixmap) Clone() *Pixmap {
	data := make([]uint8, len(p.data))
	copy(data, p.data)
	return &Pixmap{width: p.width, height: p.height, data: data}
}

// FillCircle fills a disc with an opaque color. Pixels whose center lies
// inside the radius are covered.
func (p *Pixmap) FillCircle(center Position, radius float64, c Color) {
	r2 := radius * radius
	minY := max(0, int(math.Floor(center.Y-radius)))
	maxY := min(p.height-1, int(math.Ceil(center.Y+radius)))
	minX := max(0, int(math.Floor(center.X-radius)))
	maxX := min(p.width-1, int(math.Ceil(center.X+radius)))
	for y := minY; y <= maxY; y++ {
		dy := float64(y) + 0.5 - center.Y
		for x := minX; x <= maxX; x++ {
			dx := float64(x) + 0.5 - center.X
			if dx*dx+dy*dy <= r2 {
				i := (y*p.width + x) * 4
				p.data[i+0], p.data[i+1], p.data[i+2], p.data[i+3] = c.R, c.G, c.B, 255
			}
		}
	}
}

// Clear fills the entire pixmap with an opaque color.
func (p *Pixmap) Clear(c Color) {
	for i := 0; i < len(p.data); i += 4 {
		p.data[i+0] = c.R
		p.data[i+1] = c.G
		p.data[i+2] = c.B
		p.data[i+3] = 255
	}
}

// ToImage converts the pixmap to an image.RGBA.
func (p *Pixmap) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, p.width, p.height))
	copy(img.Pix, p.data)
	return img
}

// rgbaView returns an *image.RGBA sharing the pixmap's memory, so that
// image/draw based code can paint into it directly.
func (p *Pixmap) rgbaView() *image.RGBA {
	return &image.RGBA{
		Pix:    p.data,
		Stride: p.width * 4,
		Rect:   image.Rect(0, 0, p.width, p.height),
	}
}

// SavePNG saves the pixmap to a PNG file.
func (p *Pixmap) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	return png.Encode(f, p.ToImage())
}

// At implements the image.Image interface.
func (p *Pixmap) At(x, y int) color.Color {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return color.RGBA{}
	}
	i := (y*p.width + x) * 4
	return color.RGBA{R: p.data[i+0], G: p.data[i+1], B: p.data[i+2], A: p.data[i+3]}
}

// Bounds implements the image.Image interface.
func (p *Pixmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.width, p.height)
}

// ColorModel implements the image.Image interface.
func (p *Pixmap) ColorModel() color.Model {
	return color.RGBAModel
}
