package colorpick

import (
	"errors"
	"image/color"
	"os"
	"path/filepath"
	"testing"
)

func TestNewPixmapInvalid(t *testing.T) {
	for _, d := range []struct{ w, h int }{{0, 10}, {10, 0}, {-1, 5}, {0, 0}} {
		if _, err := NewPixmap(d.w, d.h); !errors.Is(err, ErrInvalidDimensions) {
			t.Errorf("NewPixmap(%d, %d) error = %v, want ErrInvalidDimensions", d.w, d.h, err)
		}
	}
}

func mustPixmap(t *testing.T, w, h int) *Pixmap {
	t.Helper()
	pm, err := NewPixmap(w, h)
	if err != nil {
		t.Fatalf("NewPixmap(%d, %d) error = %v", w, h, err)
	}
	return pm
}

func TestSamplePixel(t *testing.T) {
	pm := mustPixmap(t, 4, 3)
	pm.Clear(Cyan)

	got, err := pm.SamplePixel(3, 2)
	if err != nil {
		t.Fatalf("SamplePixel(3, 2) error = %v", err)
	}
	if got != Cyan {
		t.Errorf("SamplePixel(3, 2) = %v, want %v", got, Cyan)
	}

	for _, p := range []struct{ x, y int }{{-1, 0}, {0, -1}, {4, 0}, {0, 3}, {100, 100}} {
		if _, err := pm.SamplePixel(p.x, p.y); !errors.Is(err, ErrOutOfRange) {
			t.Errorf("SamplePixel(%d, %d) error = %v, want ErrOutOfRange", p.x, p.y, err)
		}
	}
}

func TestPaintLinearGradientHorizontal(t *testing.T) {
	pm := mustPixmap(t, 3, 2)
	pm.PaintLinearGradient(AxisHorizontal, []ColorStop{Stop(0, Black), Stop(1, White)})

	want := []Color{Black, RGB(128, 128, 128), White}
	for y := 0; y < 2; y++ {
		for x, w := range want {
			if got, _ := pm.SamplePixel(x, y); got != w {
				t.Errorf("SamplePixel(%d, %d) = %v, want %v", x, y, got, w)
			}
		}
	}
}

func TestCompositeOverVertical(t *testing.T) {
	pm := mustPixmap(t, 2, 3)
	pm.Clear(Red)
	pm.CompositeOver(AxisVertical, []ColorStop{
		StopAlpha(0, Blue, 0),
		StopAlpha(1, Blue, 1),
	})

	tests := []struct {
		y    int
		want Color
	}{
		{0, Red},
		{1, RGB(127, 0, 128)},
		{2, Blue},
	}
	for _, tt := range tests {
		if got, _ := pm.SamplePixel(1, tt.y); got != tt.want {
			t.Errorf("row %d = %v, want %v", tt.y, got, tt.want)
		}
	}
	// Compositing opaque content stays opaque.
	for i := 3; i < len(pm.Data()); i += 4 {
		if pm.Data()[i] != 255 {
			t.Fatalf("alpha at byte %d = %d, want 255", i, pm.Data()[i])
		}
	}
}

func TestStrokeCircleLeavesCenter(t *testing.T) {
	pm := mustPixmap(t, 40, 40)
	pm.Clear(White)
	pm.StrokeCircle(Pos(20, 20), 7, Black)

	if got, _ := pm.SamplePixel(20, 20); got != White {
		t.Errorf("center = %v, want %v", got, White)
	}
	if got, _ := pm.SamplePixel(27, 20); got != Black {
		t.Errorf("outline at (27, 20) = %v, want %v", got, Black)
	}
	if got, _ := pm.SamplePixel(0, 0); got != White {
		t.Errorf("corner = %v, want %v", got, White)
	}
}

func TestStrokeCircleClipped(t *testing.T) {
	pm := mustPixmap(t, 10, 10)
	pm.Clear(White)
	// Must not panic when the outline leaves the pixmap.
	pm.StrokeCircle(Pos(0, 0), 7, Black)
	pm.StrokeCircle(Pos(9, 9), 30, Black)
	if got, _ := pm.SamplePixel(7, 0); got != Black {
		t.Errorf("outline at (7, 0) = %v, want %v", got, Black)
	}
}

func TestCopyFrom(t *testing.T) {
	src := mustPixmap(t, 5, 5)
	src.Clear(Magenta)
	dst := mustPixmap(t, 5, 5)

	if err := dst.CopyFrom(src); err != nil {
		t.Fatalf("CopyFrom() error = %v", err)
	}
	if got, _ := dst.SamplePixel(4, 4); got != Magenta {
		t.Errorf("after CopyFrom = %v, want %v", got, Magenta)
	}

	other := mustPixmap(t, 5, 6)
	if err := other.CopyFrom(src); !errors.Is(err, ErrSizeMismatch) {
		t.Errorf("CopyFrom() error = %v, want ErrSizeMismatch", err)
	}
}

func TestCloneIsDeep(t *testing.T) {
	pm := mustPixmap(t, 2, 2)
	pm.Clear(Green)
	c := pm.Clone()
	pm.Clear(Red)
	if got, _ := c.SamplePixel(0, 0); got != Green {
		t.Errorf("clone = %v, want %v", got, Green)
	}
}

func TestReadAllRowMajor(t *testing.T) {
	pm := mustPixmap(t, 3, 2)
	pm.PaintLinearGradient(AxisVertical, []ColorStop{Stop(0, Red), Stop(1, Blue)})
	all := pm.ReadAll()
	if len(all) != 6 {
		t.Fatalf("len(ReadAll()) = %d, want 6", len(all))
	}
	if all[2] != Red || all[3] != Blue {
		t.Errorf("ReadAll() = %v, want rows [red..., blue...]", all)
	}
}

func TestFillCircle(t *testing.T) {
	pm := mustPixmap(t, 20, 20)
	pm.Clear(White)
	pm.FillCircle(Pos(10, 10), 4, Red)

	if got, _ := pm.SamplePixel(10, 10); got != Red {
		t.Errorf("center = %v, want %v", got, Red)
	}
	if got, _ := pm.SamplePixel(2, 2); got != White {
		t.Errorf("outside = %v, want %v", got, White)
	}
}

func TestPixmapImage(t *testing.T) {
	pm := mustPixmap(t, 3, 3)
	pm.Clear(Yellow)

	if got := pm.Bounds().Dx(); got != 3 {
		t.Errorf("Bounds().Dx() = %d, want 3", got)
	}
	if got := pm.At(1, 1); got != (color.RGBA{R: 255, G: 255, A: 255}) {
		t.Errorf("At(1, 1) = %v, want opaque yellow", got)
	}
	if got := pm.At(5, 5); got != (color.RGBA{}) {
		t.Errorf("At(5, 5) = %v, want transparent", got)
	}
	img := pm.ToImage()
	if FromColor(img.At(2, 2)) != Yellow {
		t.Errorf("ToImage().At(2, 2) = %v, want %v", img.At(2, 2), Yellow)
	}
}

func TestSavePNG(t *testing.T) {
	pm := mustPixmap(t, 4, 4)
	pm.Clear(Blue)
	path := filepath.Join(t.TempDir(), "out.png")
	if err := pm.SavePNG(path); err != nil {
		t.Fatalf("SavePNG() error = %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Stat() error = %v", err)
	}
	if info.Size() == 0 {
		t.Error("SavePNG() wrote an empty file")
	}
}
