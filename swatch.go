package colorpick

import (
	"fmt"
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// DefaultSwatchSize is the diameter of the selected-color disc in pixels.
const DefaultSwatchSize = 50

const (
	swatchLabelSize   = 12 // font size in points at 72 DPI
	swatchLabelHeight = 18
	swatchMinWidth    = 64
)

var (
	swatchBackground = White
	swatchBorder     = RGB(204, 204, 204)
)

// Swatch renders the currently selected color as a disc with a thin
// border and its "#rrggbb" label underneath.
//
// Swatch is NOT safe for concurrent use; a Picker updates it from its
// field controller's change notification.
type Swatch struct {
	size  int
	color Color
	pix   *Pixmap
	face  font.Face
	valid bool
}

// NewSwatch creates a swatch whose disc has the given diameter.
// Label glyphs come from the Go Regular font.
func NewSwatch(size int) (*Swatch, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: swatch size=%d", ErrInvalidDimensions, size)
	}

	f, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("colorpick: failed to parse swatch font: %w", err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    swatchLabelSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("colorpick: failed to create swatch face: %w", err)
	}

	pix, err := NewPixmap(max(size, swatchMinWidth), size+swatchLabelHeight)
	if err != nil {
		_ = face.Close()
		return nil, err
	}

	return &Swatch{size: size, pix: pix, face: face}, nil
}

// SetColor updates the swatch and re-renders it if the color changed.
// It reports whether a render happened.
func (s *Swatch) SetColor(c Color) bool {
	if s.valid && c == s.color {
		return false
	}
	s.color = c
	s.render()
	s.valid = true
	return true
}

// Color returns the color currently shown.
func (s *Swatch) Color() Color {
	return s.color
}

// Pixmap returns the rendered swatch. It is overwritten by the next SetColor.
func (s *Swatch) Pixmap() *Pixmap {
	return s.pix
}

// Close releases the font face. Close is idempotent.
func (s *Swatch) Close() error {
	if s.face == nil {
		return nil
	}
	err := s.face.Close()
	s.face = nil
	return err
}

func (s *Swatch) render() {
	s.pix.Clear(swatchBackground)

	center := Pos(float64(s.pix.Width())/2, float64(s.size)/2)
	r := float64(s.size)/2 - 1
	s.pix.FillCircle(center, r, s.color)
	s.pix.StrokeCircle(center, r, swatchBorder)
	s.pix.StrokeCircle(center, r-1, swatchBorder)

	if s.face == nil {
		return
	}
	label := s.color.Hex()
	adv := font.MeasureString(s.face, label)
	x := (s.pix.Width() - adv.Ceil()) / 2
	d := &font.Drawer{
		Dst:  s.pix.rgbaView(),
		Src:  image.NewUniform(color.Black),
		Face: s.face,
		Dot:  fixed.P(x, s.size+swatchLabelHeight-4),
	}
	d.DrawString(label)
}
