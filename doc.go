// Package colorpick provides a self-contained color picker engine for Go.
//
// # Overview
//
// colorpick renders a procedural color field, tracks a circular indicator
// on it and resolves the color under the indicator as the user clicks and
// drags. Rendering happens on the CPU into a premultiplied RGBA8 Pixmap that
// a host can upload to a GPU texture (see integration/gpuhost).
//
// # Quick Start
//
//	import "github.com/gogpu/colorpick"
//
//	p, err := colorpick.NewPicker(
//	    colorpick.WithInitialColor("#2d37f6"),
//	    colorpick.WithOnColorChange(func(c colorpick.Color) {
//	        fmt.Println("picked", c)
//	    }))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer p.Close()
//
//	// Feed pointer events from a gogpu app, or call the controller directly.
//	p.Attach(app.EventSource().(gpucontext.PointerEventSource))
//
// # The Field
//
// The field is two gradient passes: a horizontal hue sweep
// (red, yellow, green, cyan, blue, magenta, red) and a vertical overlay
// composited over it that fades from opaque white at the top to
// transparent at the midline, then from transparent to opaque black at
// the bottom. The overlay has a hard edge at the midline. Painting is
// deterministic: equal sizes give byte-identical pixels.
//
// A hue strip (KindHueStrip) is the horizontal pass alone.
//
// # Interaction
//
// Controller is a two-state machine (Idle, Dragging). A primary press
// inside the surface moves the indicator, redraws, resamples and notifies;
// drag moves do the same; leaving the surface while dragging ends the drag
// with nothing else changed. Colors are sampled from the field layer, so
// the indicator outline never affects the result.
//
// # Colors
//
// Color is an opaque 8-bit RGB triple. ParseHex and Decode accept
// "rrggbb" with an optional '#', case-insensitive; Encode produces
// lowercase "#rrggbb". Decode never fails: malformed input becomes
// DefaultColor.
//
// # Logging
//
// colorpick is silent by default. Use SetLogger to route its log/slog
// output.
//
// # Architecture
//
// The library is organized into:
//   - Public API: Color, Pixmap, Renderer, Controller, Picker, Swatch
//   - Internal: blend (compositing), raster (circle outlines)
//   - Integration: integration/gpuhost (texture upload, cursor, clipboard)
//   - Command: cmd/colorpick (render a picker to PNG)
package colorpick
