package viewer

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"gioui.org/f32"
	"gioui.org/io/key"
	"gioui.org/io/pointer"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	"gonum.org/v1/gonum/floats/scalar"

	"github.com/OpenTraceLab/rotview/internal/config"
	"github.com/OpenTraceLab/rotview/pkg/display"
	"github.com/OpenTraceLab/rotview/pkg/geom"
)

func newController(t *testing.T) (*Controller, *display.Shell) {
	t.Helper()
	cfg := config.Default()
	shell := display.New(display.Options{ScreenWidth: 400, ScreenHeight: 400, SnapStep: cfg.Rotate.SnapStep})
	shell.SetImage(200, 200) // pivot at (100, 100)
	return NewController(shell, cfg, nil), shell
}

func TestPrimaryDragPans(t *testing.T) {
	c, shell := newController(t)
	c.Press(geom.Pt(10, 10), pointer.ButtonPrimary)
	if c.Gesture() != GesturePan {
		t.Fatalf("gesture = %v, want pan", c.Gesture())
	}
	changed, err := c.Drag(geom.Pt(30, 5), false)
	if err != nil || !changed {
		t.Fatalf("Drag() = %v, %v", changed, err)
	}
	if off := shell.ViewportOffset(); off != geom.Pt(-20, 5) {
		t.Errorf("offset = %v, want (-20, 5)", off)
	}
	c.Release()
	if changed, _ := c.Drag(geom.Pt(50, 50), false); changed {
		t.Errorf("Drag() after Release changed the view")
	}
}

func TestSecondaryDragRotates(t *testing.T) {
	c, shell := newController(t)
	if err := shell.RotateTo(10); err != nil {
		t.Fatal(err)
	}
	c.Press(geom.Pt(200, 100), pointer.ButtonSecondary)
	if c.Gesture() != GestureRotate {
		t.Fatalf("gesture = %v, want rotate", c.Gesture())
	}
	if _, err := c.Drag(geom.Pt(100, 200), false); err != nil {
		t.Fatalf("Drag() returned error: %v", err)
	}
	if !scalar.EqualWithinAbs(shell.Angle(), 100, 1e-9) {
		t.Errorf("angle = %v, want 100", shell.Angle())
	}
}

func TestShiftDragSnaps(t *testing.T) {
	c, shell := newController(t)
	c.Press(geom.Pt(200, 100), pointer.ButtonSecondary)
	// 37 degrees clockwise from the pivot's x axis
	_, err := c.Pointer(pointer.Event{
		Kind:      pointer.Drag,
		Position:  f32.Pt(100+100*0.7986355, 100+100*0.6018150),
		Buttons:   pointer.ButtonSecondary,
		Modifiers: key.ModShift,
	})
	if err != nil {
		t.Fatalf("Pointer() returned error: %v", err)
	}
	if shell.Angle() != 30 {
		t.Errorf("angle = %v, want 30", shell.Angle())
	}
}

func TestScrollZooms(t *testing.T) {
	c, shell := newController(t)
	before := shell.ScreenToImage(geom.Pt(50, 60))
	if !c.Scroll(geom.Pt(50, 60), 1) {
		t.Fatalf("Scroll() reported no change")
	}
	if !scalar.EqualWithinAbs(shell.Scale(), 1.1, 1e-12) {
		t.Errorf("scale = %v, want 1.1", shell.Scale())
	}
	after := shell.ScreenToImage(geom.Pt(50, 60))
	if !scalar.EqualWithinAbs(before.X, after.X, 1e-9) || !scalar.EqualWithinAbs(before.Y, after.Y, 1e-9) {
		t.Errorf("point under cursor moved from %v to %v", before, after)
	}
	if c.Scroll(geom.Pt(0, 0), 0) {
		t.Errorf("Scroll(0) reported a change")
	}
}

func TestKeys(t *testing.T) {
	c, shell := newController(t)

	if _, err := c.Key("R", 0); err != nil {
		t.Fatal(err)
	}
	if shell.Angle() != 15 {
		t.Errorf("after R angle = %v, want 15", shell.Angle())
	}
	c.Key("R", key.ModShift)
	c.Key("R", key.ModShift)
	if shell.Angle() != 345 {
		t.Errorf("after Shift+R twice angle = %v, want 345", shell.Angle())
	}
	c.Key("0", 0)
	if shell.Angle() != 0 || shell.Rotation().DragAngle() != 0 {
		t.Errorf("after 0 angle = %v drag = %v, want 0", shell.Angle(), shell.Rotation().DragAngle())
	}

	c.Key("F", 0)
	if shell.Scale() != 2 {
		t.Errorf("after F scale = %v, want 2", shell.Scale())
	}

	for _, name := range []key.Name{"Q", key.NameEscape} {
		if quit, _ := c.Key(name, 0); !quit {
			t.Errorf("Key(%q) did not quit", name)
		}
	}
}

func TestImageTransform(t *testing.T) {
	_, shell := newController(t)
	shell.SetScale(2)
	shell.SetOffset(10, -4)
	got := ImageTransform(shell).Transform(f32.Pt(3, 5))
	if got != f32.Pt(-4, 14) {
		t.Errorf("ImageTransform maps (3, 5) to %v, want (-4, 14)", got)
	}
}

func TestLoadImage(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 7, 3))
	for y := 0; y < 3; y++ {
		for x := 0; x < 7; x++ {
			img.Set(x, y, color.RGBA{R: uint8(30 * x), G: uint8(80 * y), B: 40, A: 255})
		}
	}
	dir := t.TempDir()

	encoders := map[string]func(f *os.File) error{
		"png":  func(f *os.File) error { return png.Encode(f, img) },
		"bmp":  func(f *os.File) error { return bmp.Encode(f, img) },
		"tiff": func(f *os.File) error { return tiff.Encode(f, img, nil) },
	}
	for format, encode := range encoders {
		path := filepath.Join(dir, "img."+format)
		f, err := os.Create(path)
		if err != nil {
			t.Fatal(err)
		}
		if err := encode(f); err != nil {
			t.Fatal(err)
		}
		f.Close()

		got, gotFormat, err := LoadImage(path)
		if err != nil {
			t.Errorf("LoadImage(%s) returned error: %v", format, err)
			continue
		}
		if gotFormat != format {
			t.Errorf("LoadImage(%s) format = %q", format, gotFormat)
		}
		if got.Bounds() != img.Bounds() {
			t.Errorf("LoadImage(%s) bounds = %v, want %v", format, got.Bounds(), img.Bounds())
		}
	}
}

func TestLoadImageErrors(t *testing.T) {
	if _, _, err := LoadImage(filepath.Join(t.TempDir(), "missing.png")); err == nil {
		t.Errorf("LoadImage() of a missing file returned no error")
	}
	path := filepath.Join(t.TempDir(), "junk.png")
	os.WriteFile(path, []byte("not an image"), 0644)
	if _, _, err := LoadImage(path); err == nil {
		t.Errorf("LoadImage() of junk returned no error")
	}
}
