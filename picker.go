package colorpick

import (
	"errors"
	"sync"

	"github.com/gogpu/gpucontext"
)

// Default picker geometry.
const (
	DefaultFieldWidth  = 300
	DefaultFieldHeight = 300
	DefaultStripHeight = 15

	// StripGap is the vertical space between the field and the hue strip
	// in host coordinates.
	StripGap = 10
)

// SyncPolicy controls whether the hue strip influences the field.
type SyncPolicy uint8

const (
	// SyncNone keeps the strip and field indicators independent.
	SyncNone SyncPolicy = iota
	// SyncStripToField moves the field indicator to the strip's relative
	// column whenever the strip selection changes, keeping its row.
	SyncStripToField
)

// String returns the policy name for debugging.
func (s SyncPolicy) String() string {
	switch s {
	case SyncNone:
		return "None"
	case SyncStripToField:
		return "StripToField"
	default:
		return "Unknown"
	}
}

// PickerOption configures a Picker during creation.
type PickerOption func(*pickerOptions)

type pickerOptions struct {
	initial     string
	fieldWidth  int
	fieldHeight int
	stripHeight int // 0 disables the hue strip
	sync        SyncPolicy
	radius      float64
	swatchSize  int
	onChange    func(Color)
	onFrame     func(SurfaceKind, *Pixmap)
}

func defaultPickerOptions() pickerOptions {
	return pickerOptions{
		fieldWidth:  DefaultFieldWidth,
		fieldHeight: DefaultFieldHeight,
		radius:      DefaultIndicatorRadius,
		swatchSize:  DefaultSwatchSize,
	}
}

// WithInitialColor sets the hex color the field indicator starts on.
// Empty or malformed values fall back to DefaultColor.
func WithInitialColor(hex string) PickerOption {
	return func(o *pickerOptions) {
		o.initial = hex
	}
}

// WithFieldSize sets the field dimensions in pixels.
func WithFieldSize(width, height int) PickerOption {
	return func(o *pickerOptions) {
		o.fieldWidth = width
		o.fieldHeight = height
	}
}

// WithHueStrip adds a hue strip of the given height below the field.
// The strip is as wide as the field.
func WithHueStrip(height int) PickerOption {
	return func(o *pickerOptions) {
		o.stripHeight = height
	}
}

// WithSyncPolicy sets how strip selections affect the field.
func WithSyncPolicy(s SyncPolicy) PickerOption {
	return func(o *pickerOptions) {
		o.sync = s
	}
}

// WithPickerIndicatorRadius sets the indicator radius on every surface.
func WithPickerIndicatorRadius(r float64) PickerOption {
	return func(o *pickerOptions) {
		if r > 0 {
			o.radius = r
		}
	}
}

// WithSwatchSize sets the swatch disc diameter.
func WithSwatchSize(size int) PickerOption {
	return func(o *pickerOptions) {
		o.swatchSize = size
	}
}

// WithOnColorChange registers the notification fired whenever the
// selected field color changes through interaction.
func WithOnColorChange(fn func(Color)) PickerOption {
	return func(o *pickerOptions) {
		o.onChange = fn
	}
}

// WithFrameHook registers a hook receiving every redrawn frame along with
// the kind of surface it belongs to.
func WithFrameHook(fn func(SurfaceKind, *Pixmap)) PickerOption {
	return func(o *pickerOptions) {
		o.onFrame = fn
	}
}

// Picker is a complete color picker: a field, an optional hue strip and a
// swatch showing the selected color.
//
// The field sits at the host origin; the strip, when present, sits
// StripGap pixels below it. Every pointer event is offered to each
// surface, which applies its own bounds check.
type Picker struct {
	field *Controller
	strip *Controller

	mu     sync.Mutex // guards swatch
	swatch *Swatch

	opts pickerOptions
	subs []*Subscription
}

// NewPicker creates a picker and places its indicators from the initial color.
func NewPicker(opts ...PickerOption) (*Picker, error) {
	o := defaultPickerOptions()
	for _, opt := range opts {
		opt(&o)
	}

	swatch, err := NewSwatch(o.swatchSize)
	if err != nil {
		return nil, err
	}
	p := &Picker{swatch: swatch, opts: o}

	p.field, err = NewController(KindField, o.fieldWidth, o.fieldHeight,
		WithIndicatorRadius(o.radius),
		WithOnChange(p.fieldChanged),
		WithOnFrame(p.frameHook(KindField)),
	)
	if err != nil {
		_ = swatch.Close()
		return nil, err
	}

	if o.stripHeight > 0 {
		p.strip, err = NewController(KindHueStrip, o.fieldWidth, o.stripHeight,
			WithIndicatorRadius(o.radius),
			WithOrigin(Pos(0, float64(o.fieldHeight+StripGap))),
			WithOnFrame(p.frameHook(KindHueStrip)),
			withOnCommit(p.stripCommitted),
		)
		if err != nil {
			_ = p.field.Close()
			_ = swatch.Close()
			return nil, err
		}
	}

	c := p.field.Init(o.initial)
	if p.strip != nil {
		p.strip.Init(o.initial)
	}
	p.mu.Lock()
	p.swatch.SetColor(c)
	p.mu.Unlock()
	return p, nil
}

// Field returns the field controller.
func (p *Picker) Field() *Controller {
	return p.field
}

// Strip returns the hue strip controller, or nil without a strip.
func (p *Picker) Strip() *Controller {
	return p.strip
}

// Color returns the selected field color.
func (p *Picker) Color() Color {
	return p.field.Color()
}

// Hue returns the color under the strip indicator, or false without a strip.
func (p *Picker) Hue() (Color, bool) {
	if p.strip == nil {
		return Color{}, false
	}
	return p.strip.Color(), true
}

// SyncPolicy returns the configured sync policy.
func (p *Picker) SyncPolicy() SyncPolicy {
	return p.opts.sync
}

// Swatch returns a copy of the rendered swatch.
func (p *Picker) Swatch() *Pixmap {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.swatch.Pixmap().Clone()
}

// SwatchColor returns the color the swatch currently shows.
func (p *Picker) SwatchColor() Color {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.swatch.Color()
}

// HandlePointer offers ev to every surface.
func (p *Picker) HandlePointer(ev gpucontext.PointerEvent) {
	p.field.HandlePointer(ev)
	if p.strip != nil {
		p.strip.HandlePointer(ev)
	}
}

// Attach subscribes the picker to src.
func (p *Picker) Attach(src gpucontext.PointerEventSource) *Subscription {
	sub := Subscribe(src, p.HandlePointer)
	p.mu.Lock()
	p.subs = append(p.subs, sub)
	p.mu.Unlock()
	return sub
}

// Close detaches subscriptions and releases the controllers and swatch.
func (p *Picker) Close() error {
	p.mu.Lock()
	for _, sub := range p.subs {
		_ = sub.Close()
	}
	p.subs = nil
	p.mu.Unlock()

	var errs []error
	errs = append(errs, p.field.Close())
	if p.strip != nil {
		errs = append(errs, p.strip.Close())
	}
	p.mu.Lock()
	errs = append(errs, p.swatch.Close())
	p.mu.Unlock()
	return errors.Join(errs...)
}

func (p *Picker) fieldChanged(c Color) {
	p.mu.Lock()
	p.swatch.SetColor(c)
	p.mu.Unlock()

	if p.opts.onChange != nil {
		p.opts.onChange(c)
	}
}

// stripCommitted runs while the strip controller is locked; it only
// touches the field controller.
func (p *Picker) stripCommitted(in Indicator, _ Color) {
	if p.opts.sync != SyncStripToField {
		return
	}
	sw, _ := p.strip.Size()
	fw, _ := p.field.Size()
	x := 0.0
	if sw > 1 {
		x = in.Center.X / float64(sw-1) * float64(fw-1)
	}
	y := p.field.Indicator().Center.Y
	p.field.SetCenter(Pos(x, y))
}

func (p *Picker) frameHook(kind SurfaceKind) func(*Pixmap) {
	return func(pm *Pixmap) {
		if p.opts.onFrame != nil {
			p.opts.onFrame(kind, pm)
		}
	}
}
