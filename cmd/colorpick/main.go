// Command colorpick renders a color picker, optionally presses it at a
// point, and saves the result as PNG.
package main

import (
	"flag"
	"image"
	"image/draw"
	"image/png"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/gpucontext"

	"github.com/gogpu/colorpick"
)

func main() {
	var (
		width   = flag.Int("width", colorpick.DefaultFieldWidth, "field width")
		height  = flag.Int("height", colorpick.DefaultFieldHeight, "field height")
		strip   = flag.Int("strip", 0, "hue strip height, 0 for none")
		hex     = flag.String("color", colorpick.DefaultHex, "initial color")
		x       = flag.Float64("x", -1, "press x in host coordinates, negative for none")
		y       = flag.Float64("y", -1, "press y in host coordinates, negative for none")
		radius  = flag.Float64("radius", colorpick.DefaultIndicatorRadius, "indicator radius")
		sync    = flag.Bool("sync", false, "move the field indicator with the hue strip")
		output  = flag.String("output", "colorpick.png", "output file")
		swatch  = flag.String("swatch", "", "swatch output file, empty for none")
		verbose = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	if *verbose {
		colorpick.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	opts := []colorpick.PickerOption{
		colorpick.WithInitialColor(*hex),
		colorpick.WithFieldSize(*width, *height),
		colorpick.WithPickerIndicatorRadius(*radius),
		colorpick.WithOnColorChange(func(c colorpick.Color) {
			log.Printf("Selected %s", c)
		}),
	}
	if *strip > 0 {
		opts = append(opts, colorpick.WithHueStrip(*strip))
	}
	if *sync {
		opts = append(opts, colorpick.WithSyncPolicy(colorpick.SyncStripToField))
	}

	p, err := colorpick.NewPicker(opts...)
	if err != nil {
		log.Fatalf("Failed to create picker: %v", err)
	}
	defer func() {
		_ = p.Close()
	}()

	if *x >= 0 && *y >= 0 {
		press(p, *x, *y)
	}

	if err := savePNG(*output, compose(p)); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}
	log.Printf("Picker saved to %s, color %s\n", *output, p.Color())

	if *swatch != "" {
		if err := p.Swatch().SavePNG(*swatch); err != nil {
			log.Fatalf("Failed to save swatch: %v", err)
		}
		log.Printf("Swatch saved to %s\n", *swatch)
	}
}

// press delivers a primary click at (x, y) as a host would.
func press(p *colorpick.Picker, x, y float64) {
	ev := gpucontext.PointerEvent{
		Type:      gpucontext.PointerDown,
		X:         x,
		Y:         y,
		IsPrimary: true,
		Button:    gpucontext.ButtonLeft,
	}
	p.HandlePointer(ev)
	ev.Type = gpucontext.PointerUp
	p.HandlePointer(ev)
}

// compose lays the field and, when present, the hue strip out in host
// coordinates on a white background.
func compose(p *colorpick.Picker) image.Image {
	field := p.Field().Frame()
	bounds := field.Bounds()

	var stripFrame *colorpick.Pixmap
	var stripAt image.Point
	if s := p.Strip(); s != nil {
		stripFrame = s.Frame()
		o := s.Origin()
		stripAt = image.Pt(int(o.X), int(o.Y))
		bounds = bounds.Union(stripFrame.Bounds().Add(stripAt))
	}

	dst := image.NewRGBA(bounds)
	draw.Draw(dst, bounds, image.White, image.Point{}, draw.Src)
	draw.Draw(dst, field.Bounds(), field.ToImage(), image.Point{}, draw.Src)
	if stripFrame != nil {
		draw.Draw(dst, stripFrame.Bounds().Add(stripAt), stripFrame.ToImage(), image.Point{}, draw.Src)
	}
	return dst
}

func savePNG(path string, img image.Image) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
