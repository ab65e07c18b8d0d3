package colorpick

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// DefaultHex is the color used when an initial color is absent or malformed.
const DefaultHex = "#2d37f6"

// DefaultColor is DefaultHex decoded. It is spelled out rather than parsed
// so that decoding never has to fall back twice.
var DefaultColor = Color{R: 0x2d, G: 0x37, B: 0xf6}

// ErrInvalidHex is returned by ParseHex for strings that are not
// six hexadecimal digits with an optional '#' prefix.
var ErrInvalidHex = errors.New("colorpick: invalid hex color")

// Color is an opaque 8-bit RGB color.
// Colors are comparable with ==.
type Color struct {
	R, G, B uint8
}

// RGB creates a color from 8-bit channels.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// RGBA implements the color.Color interface. The color is always opaque.
func (c Color) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R) * 0x101
	g = uint32(c.G) * 0x101
	b = uint32(c.B) * 0x101
	a = 0xffff
	return
}

// NRGBA returns the color as an opaque color.NRGBA.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: 255}
}

// Hex returns the lowercase "#rrggbb" form of the color.
func (c Color) Hex() string {
	return c.colorful().Hex()
}

// String implements fmt.Stringer.
func (c Color) String() string {
	return c.Hex()
}

func (c Color) colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
}

// ParseHex parses a color of the form "rrggbb" or "#rrggbb".
// Hex digits are case-insensitive. Short forms such as "#fff" are rejected.
func ParseHex(s string) (Color, error) {
	digits := s
	if digits != "" && digits[0] == '#' {
		digits = digits[1:]
	}
	if len(digits) != 6 || !isHexDigits(digits) {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidHex, s)
	}

	cf, err := colorful.Hex("#" + digits)
	if err != nil {
		return Color{}, fmt.Errorf("%w: %v", ErrInvalidHex, err)
	}
	r, g, b := cf.RGB255()
	return Color{R: r, G: g, B: b}, nil
}

// Decode parses s like ParseHex and falls back to DefaultColor when s is
// empty or malformed. It never fails.
func Decode(s string) Color {
	c, err := ParseHex(s)
	if err != nil {
		if s != "" {
			Logger().Warn("colorpick: falling back to default color",
				"input", s, "default", DefaultHex, "err", err)
		}
		return DefaultColor
	}
	return c
}

// Encode returns the "#rrggbb" form of c. Decode(Encode(c)) == c for every c.
func Encode(c Color) string {
	return c.Hex()
}

// FromColor converts any color.Color to Color, dropping alpha after
// un-premultiplying. Fully transparent colors map to black.
func FromColor(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	if n.A == 0 {
		return Color{}
	}
	return Color{R: n.R, G: n.G, B: n.B}
}

func isHexDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case '0' <= c && c <= '9':
		case 'a' <= c && c <= 'f':
		case 'A' <= c && c <= 'F':
		default:
			return false
		}
	}
	return true
}

// Common colors
var (
	Black   = RGB(0, 0, 0)
	White   = RGB(255, 255, 255)
	Red     = RGB(255, 0, 0)
	Green   = RGB(0, 255, 0)
	Blue    = RGB(0, 0, 255)
	Yellow  = RGB(255, 255, 0)
	Cyan    = RGB(0, 255, 255)
	Magenta = RGB(255, 0, 255)
)
