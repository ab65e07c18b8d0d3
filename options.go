package colorpick

// ControllerOption configures a Controller during creation.
//
// Example:
//
//	c, err := colorpick.NewController(colorpick.KindField, 300, 300,
//	    colorpick.WithIndicatorRadius(9),
//	    colorpick.WithOnChange(func(c colorpick.Color) { fmt.Println(c) }))
type ControllerOption func(*controllerOptions)

// controllerOptions holds optional configuration for Controller creation.
type controllerOptions struct {
	radius         float64
	origin         Position
	indicatorColor Color
	onChange       func(Color)
	onFrame        func(*Pixmap)
	onState        func(State)
	onCommit       func(Indicator, Color)
}

// defaultControllerOptions returns the default controller options.
func defaultControllerOptions() controllerOptions {
	return controllerOptions{
		radius:         DefaultIndicatorRadius,
		indicatorColor: Black,
	}
}

// WithIndicatorRadius sets the indicator outline radius in pixels.
// Non-positive values are ignored.
func WithIndicatorRadius(r float64) ControllerOption {
	return func(o *controllerOptions) {
		if r > 0 {
			o.radius = r
		}
	}
}

// WithOrigin sets where the surface's top-left pixel sits in host
// coordinates. Pointer events delivered through HandlePointer are
// translated by this offset.
func WithOrigin(p Position) ControllerOption {
	return func(o *controllerOptions) {
		o.origin = p
	}
}

// WithIndicatorColor sets the indicator outline color.
func WithIndicatorColor(c Color) ControllerOption {
	return func(o *controllerOptions) {
		o.indicatorColor = c
	}
}

// WithOnChange registers the color change notification. It fires after
// every pointer-down and every accepted drag move, with the newly sampled
// color.
func WithOnChange(fn func(Color)) ControllerOption {
	return func(o *controllerOptions) {
		o.onChange = fn
	}
}

// WithOnFrame registers a hook receiving the frame after every redraw.
// The pixmap is only valid for the duration of the call.
func WithOnFrame(fn func(*Pixmap)) ControllerOption {
	return func(o *controllerOptions) {
		o.onFrame = fn
	}
}

// WithOnStateChange registers a hook called on Idle/Dragging transitions.
func WithOnStateChange(fn func(State)) ControllerOption {
	return func(o *controllerOptions) {
		o.onState = fn
	}
}

// withOnCommit registers a hook receiving the indicator and color after
// every committed move. Pickers use it to link surfaces.
func withOnCommit(fn func(Indicator, Color)) ControllerOption {
	return func(o *controllerOptions) {
		o.onCommit = fn
	}
}
