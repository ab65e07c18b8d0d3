package colorpick

import (
	"fmt"

	"github.com/gogpu/colorpick/internal/cache"
)

// SurfaceKind selects what a Renderer paints.
type SurfaceKind uint8

const (
	// KindField is the 2D hue + luminance field.
	KindField SurfaceKind = iota
	// KindHueStrip is the 1D hue strip used to pre-select a hue.
	KindHueStrip
)

// String returns the kind name for debugging.
func (k SurfaceKind) String() string {
	switch k {
	case KindField:
		return "Field"
	case KindHueStrip:
		return "HueStrip"
	default:
		return "Unknown"
	}
}

// HueStops is the horizontal hue pass. The last stop closes the loop on
// the same red as the first.
var HueStops = []ColorStop{
	Stop(0, Red),
	Stop(0.17, Yellow),
	Stop(0.34, Green),
	Stop(0.51, Cyan),
	Stop(0.68, Blue),
	Stop(0.85, Magenta),
	Stop(1, Red),
}

// LuminanceStops is the vertical overlay composited over the hue pass.
// The two stops at 0.5 produce a hard edge at the vertical midline.
var LuminanceStops = []ColorStop{
	StopAlpha(0, White, 1),
	StopAlpha(0.5, White, 0),
	StopAlpha(0.5, Black, 0),
	StopAlpha(1, Black, 1),
}

// Renderer paints the procedural color field.
// Painting is deterministic: equal dimensions give byte-identical pixels.
type Renderer struct {
	kind SurfaceKind
}

// NewRenderer creates a renderer for the given surface kind.
func NewRenderer(kind SurfaceKind) *Renderer {
	return &Renderer{kind: kind}
}

// Kind returns the surface kind this renderer paints.
func (r *Renderer) Kind() SurfaceKind {
	return r.kind
}

// Paint overwrites s with the field. The hue pass always runs first; the
// luminance overlay is composited over it for KindField only.
func (r *Renderer) Paint(s Surface) {
	s.PaintLinearGradient(AxisHorizontal, HueStops)
	if r.kind == KindField {
		s.CompositeOver(AxisVertical, LuminanceStops)
	}
}

// fieldCacheSize bounds the number of distinct rendered fields kept.
const fieldCacheSize = 16

type fieldKey struct {
	kind          SurfaceKind
	width, height int
}

// fields memoizes rendered surfaces. Painting is deterministic, so a
// cached field is byte-identical to a fresh one.
var fields = cache.New[fieldKey, *Pixmap](fieldCacheSize)

// Render returns a new pixmap of the given size holding the painted field.
// Fields are cached by kind and size; every call returns its own copy.
func (r *Renderer) Render(width, height int) (*Pixmap, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: width=%d, height=%d", ErrInvalidDimensions, width, height)
	}

	key := fieldKey{kind: r.kind, width: width, height: height}
	painted := false
	pm := fields.GetOrCreate(key, func() *Pixmap {
		pm, _ := NewPixmap(width, height)
		r.Paint(pm)
		painted = true
		return pm
	})
	if painted {
		st := fields.Stats()
		Logger().Debug("colorpick: field rendered",
			"kind", r.kind, "width", width, "height", height,
			"cached", st.Len, "hits", st.Hits, "misses", st.Misses, "evictions", st.Evictions)
	}
	return pm.Clone(), nil
}

// FieldCacheStats reports how the field cache has been used since start.
func FieldCacheStats() cache.Stats {
	return fields.Stats()
}

// ResetFieldCache drops every cached field. Counters are kept.
func ResetFieldCache() {
	fields.Clear()
}
