package colorpick

import (
	"sync"

	"github.com/gogpu/gpucontext"
)

// State is the pointer state of a Controller.
type State uint8

const (
	// StateIdle means no drag is in progress.
	StateIdle State = iota
	// StateDragging means the primary button went down inside the surface
	// and the pointer has not left it since.
	StateDragging
)

// String returns the state name for debugging.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateDragging:
		return "Dragging"
	default:
		return "Unknown"
	}
}

// Controller owns one surface, its indicator and its pointer state, and
// keeps the rendered frame and the resolved color consistent with the
// indicator position.
//
// Transitions:
//
//	Idle     --down in bounds-->  Dragging  (move indicator, redraw, resample, notify)
//	Dragging --move in bounds-->  Dragging  (move indicator, redraw, resample, notify)
//	Dragging --move outside-->    Idle      (nothing else changes)
//	Dragging --up / cancel-->     Idle      (no redraw)
//
// Everything else is a no-op. Bounds are [0, width] × [0, height] in
// surface coordinates.
//
// Controller is safe for concurrent use: events are handled one at a time,
// each running to completion (redraw, resample, notify) before the next.
// Hooks run while the controller is locked and must not call back into it.
type Controller struct {
	mu sync.Mutex

	renderer *Renderer
	width    int
	height   int

	// field is the rendered gradient, painted once. Dimensions never
	// change, so it stays valid for the controller's lifetime.
	field *Pixmap
	// frame is field plus the indicator outline.
	frame *Pixmap

	indicator Indicator
	state     State
	color     Color

	opts   controllerOptions
	subs   []*Subscription
	closed bool
}

// NewController renders a surface of the given kind and size and places
// the indicator at the origin. Call Init to place it from a color.
func NewController(kind SurfaceKind, width, height int, opts ...ControllerOption) (*Controller, error) {
	o := defaultControllerOptions()
	for _, opt := range opts {
		opt(&o)
	}

	r := NewRenderer(kind)
	field, err := r.Render(width, height)
	if err != nil {
		return nil, err
	}

	c := &Controller{
		renderer:  r,
		width:     width,
		height:    height,
		field:     field,
		frame:     field.Clone(),
		indicator: Indicator{Radius: o.radius},
		opts:      o,
	}
	c.redraw()
	c.color = SampleAt(c.field, c.indicator.Center)
	return c, nil
}

// Init places the indicator on the first field pixel matching the decoded
// initial color and resamples. Malformed or empty input uses DefaultColor;
// a color absent from the field puts the indicator at the origin.
//
// Init does not fire the change notification. It returns the resolved color.
func (c *Controller) Init(initialHex string) Color {
	target := Decode(initialHex)

	c.mu.Lock()
	defer c.mu.Unlock()

	pos, ok := LocateIn(c.field, target)
	if !ok {
		Logger().Debug("colorpick: color not present in field, using origin",
			"kind", c.renderer.Kind(), "color", target.Hex())
	}
	c.place(pos)
	c.emitFrame()
	return c.color
}

// Kind returns the kind of surface this controller renders.
func (c *Controller) Kind() SurfaceKind {
	return c.renderer.Kind()
}

// Size returns the surface dimensions.
func (c *Controller) Size() (width, height int) {
	return c.width, c.height
}

// Origin returns the host-space offset of the surface.
func (c *Controller) Origin() Position {
	return c.opts.origin
}

// State returns the current pointer state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Indicator returns the current indicator.
func (c *Controller) Indicator() Indicator {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.indicator
}

// Color returns the color last sampled at the indicator center.
func (c *Controller) Color() Color {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.color
}

// Frame returns a copy of the current frame.
func (c *Controller) Frame() *Pixmap {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.frame.Clone()
}

// Field returns a copy of the rendered field without the indicator.
func (c *Controller) Field() *Pixmap {
	return c.field.Clone()
}

// PointerDown handles a primary button press at p in surface coordinates.
// It reports whether the indicator moved. A press outside the surface
// leaves the controller Idle, even if a drag was in progress.
func (c *Controller) PointerDown(p Position) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return false
	}
	if !p.In(c.width, c.height) {
		c.setState(StateIdle)
		return false
	}
	c.commit(p)
	c.setState(StateDragging)
	return true
}

// PointerMove handles pointer movement to p in surface coordinates.
// It reports whether the indicator moved. Moving outside the surface
// while dragging ends the drag and leaves the indicator where it was.
func (c *Controller) PointerMove(p Position) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed || c.state != StateDragging {
		return false
	}
	if !p.In(c.width, c.height) {
		Logger().Debug("colorpick: pointer left surface, drag aborted",
			"kind", c.renderer.Kind(), "x", p.X, "y", p.Y)
		c.setState(StateIdle)
		return false
	}
	c.commit(p)
	return true
}

// PointerUp handles a primary button release. Nothing is redrawn.
func (c *Controller) PointerUp() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.setState(StateIdle)
}

// Cancel ends any drag, as when the platform cancels the pointer.
func (c *Controller) Cancel() {
	c.PointerUp()
}

// SetCenter moves the indicator to p (clamped into the surface),
// redraws, resamples and notifies, without touching the pointer state.
func (c *Controller) SetCenter(p Position) Color {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.closed {
		c.commit(p)
	}
	return c.color
}

// HandlePointer routes a gpucontext pointer event, translating host
// coordinates by the controller origin. Only the primary pointer and the
// left button are considered.
func (c *Controller) HandlePointer(ev gpucontext.PointerEvent) {
	if !ev.IsPrimary {
		return
	}
	p := Pos(ev.X, ev.Y).Sub(c.opts.origin)

	switch ev.Type {
	case gpucontext.PointerDown:
		if ev.Button == gpucontext.ButtonLeft {
			c.PointerDown(p)
		}
	case gpucontext.PointerMove:
		c.PointerMove(p)
	case gpucontext.PointerUp:
		if ev.Button == gpucontext.ButtonLeft {
			c.PointerUp()
		}
	case gpucontext.PointerCancel:
		c.Cancel()
	}
}

// Attach subscribes the controller to src. The subscription is closed by
// the returned Subscription's Close or by the controller's Close.
func (c *Controller) Attach(src gpucontext.PointerEventSource) *Subscription {
	sub := Subscribe(src, c.HandlePointer)

	c.mu.Lock()
	c.subs = append(c.subs, sub)
	c.mu.Unlock()
	return sub
}

// Close detaches every subscription and ignores further events.
// Close is idempotent.
func (c *Controller) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil
	}
	c.closed = true
	for _, sub := range c.subs {
		_ = sub.Close()
	}
	c.subs = nil
	c.state = StateIdle
	return nil
}

// commit moves the indicator, redraws and resamples, then notifies.
func (c *Controller) commit(p Position) {
	c.place(p)
	c.emitFrame()
	if c.opts.onChange != nil {
		c.opts.onChange(c.color)
	}
	if c.opts.onCommit != nil {
		c.opts.onCommit(c.indicator, c.color)
	}
}

// place moves the indicator center to p clamped into the surface,
// redraws the frame and resamples the color.
func (c *Controller) place(p Position) {
	c.indicator.Center = p.ClampTo(c.width, c.height)
	c.redraw()
	c.color = SampleAt(c.field, c.indicator.Center)
}

// redraw rebuilds the frame from the cached field and the indicator.
func (c *Controller) redraw() {
	_ = c.frame.CopyFrom(c.field)
	c.frame.StrokeCircle(c.indicator.Center, c.indicator.Radius, c.opts.indicatorColor)
}

func (c *Controller) emitFrame() {
	if c.opts.onFrame != nil {
		c.opts.onFrame(c.frame)
	}
}

func (c *Controller) setState(s State) {
	if c.state == s {
		return
	}
	Logger().Debug("colorpick: pointer state", "kind", c.renderer.Kind(), "from", c.state, "to", s)
	c.state = s
	if c.opts.onState != nil {
		c.opts.onState(s)
	}
}
