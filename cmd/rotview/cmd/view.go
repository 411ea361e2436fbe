package cmd

import (
	"fmt"
	"image"
	"image/color"
	"os"

	"gioui.org/app"
	"gioui.org/io/event"
	"gioui.org/io/key"
	"gioui.org/io/pointer"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/rotview/internal/viewer"
	"github.com/OpenTraceLab/rotview/pkg/display"
)

var colorBackground = color.NRGBA{R: 0x30, G: 0x30, B: 0x30, A: 0xff}

var viewCmd = &cobra.Command{
	Use:   "view <image>",
	Short: "View an image in the interactive rotating viewer",
	Long: `Opens an image (PNG, JPEG, GIF, BMP, TIFF or WebP) in a Gio-based viewer
that rotates around the center of the displayed image.

Controls:
  Left Drag          - Pan
  Right Drag         - Rotate (hold Shift to snap to the grid)
  R / Shift+R        - Rotate by the key step
  0                  - Reset rotation
  Scroll Wheel       - Zoom in/out
  F                  - Fit image to window
  Q / Escape         - Quit`,
	Args: cobra.ExactArgs(1),
	RunE: runView,
}

func init() {
	rootCmd.AddCommand(viewCmd)
}

func runView(cmd *cobra.Command, args []string) error {
	filename := args[0]

	img, format, err := viewer.LoadImage(filename)
	if err != nil {
		return err
	}
	b := img.Bounds()
	fmt.Printf("Loaded %s image %dx%d: %s\n", format, b.Dx(), b.Dy(), filename)

	go func() {
		w := new(app.Window)
		w.Option(app.Title("rotview - " + filename))
		w.Option(app.Size(unit.Dp(cfg.Viewer.Width), unit.Dp(cfg.Viewer.Height)))

		if err := runViewerWindow(w, img); err != nil {
			logger.Error("viewer failed", "error", err)
			os.Exit(1)
		}
		os.Exit(0)
	}()
	app.Main()
	return nil
}

func runViewerWindow(w *app.Window, img image.Image) error {
	shell := newShell()
	shell.SetImage(img.Bounds().Dx(), img.Bounds().Dy())
	shell.OnInvalidate(w.Invalidate)

	ctrl := viewer.NewController(shell, cfg, logger)

	imgOp := paint.NewImageOp(img)
	imgOp.Filter = paint.FilterLinear

	var ops op.Ops
	fitted := false

	for {
		switch e := w.Event().(type) {
		case app.DestroyEvent:
			return e.Err

		case app.FrameEvent:
			ops.Reset()

			gtx := layout.Context{
				Ops:         &ops,
				Constraints: layout.Exact(e.Size),
				Metric:      e.Metric,
				Now:         e.Now,
				Source:      e.Source,
			}

			shell.Resize(e.Size.X, e.Size.Y)
			if !fitted {
				shell.Fit()
				fitted = true
			}

			quit, err := handleViewerInput(gtx, ctrl)
			if err != nil {
				return err
			}
			if quit {
				return nil
			}

			drawView(gtx, shell, ctrl, imgOp)
			e.Frame(&ops)
		}
	}
}

// handleViewerInput drains key and pointer events into ctrl
func handleViewerInput(gtx layout.Context, ctrl *viewer.Controller) (bool, error) {
	quit := false

	for {
		ev, ok := gtx.Event(
			key.Filter{Name: "R", Optional: key.ModShift},
			key.Filter{Name: "0"},
			key.Filter{Name: "F"},
			key.Filter{Name: "Q"},
			key.Filter{Name: key.NameEscape},
		)
		if !ok {
			break
		}
		if ke, ok := ev.(key.Event); ok && ke.State == key.Press {
			q, err := ctrl.Key(ke.Name, ke.Modifiers)
			if err != nil {
				return false, err
			}
			quit = quit || q
		}
	}

	for {
		ev, ok := gtx.Event(pointer.Filter{
			Target:  ctrl,
			Kinds:   pointer.Press | pointer.Drag | pointer.Release | pointer.Cancel | pointer.Scroll,
			ScrollY: pointer.ScrollRange{Min: -100, Max: 100},
		})
		if !ok {
			break
		}
		if pe, ok := ev.(pointer.Event); ok {
			if _, err := ctrl.Pointer(pe); err != nil {
				return false, err
			}
		}
	}

	return quit, nil
}

// drawView paints the image placed by the shell's offset and scale, then
// turned by its forward rotation
func drawView(gtx layout.Context, shell *display.Shell, ctrl *viewer.Controller, imgOp paint.ImageOp) {
	paint.Fill(gtx.Ops, colorBackground)

	area := clip.Rect{Max: gtx.Constraints.Max}.Push(gtx.Ops)
	event.Op(gtx.Ops, ctrl)

	rot := op.Affine(shell.Transform().Forward().F32()).Push(gtx.Ops)
	place := op.Affine(viewer.ImageTransform(shell)).Push(gtx.Ops)
	bounds := clip.Rect{Max: imgOp.Size()}.Push(gtx.Ops)

	imgOp.Add(gtx.Ops)
	paint.PaintOp{}.Add(gtx.Ops)

	bounds.Pop()
	place.Pop()
	rot.Pop()
	area.Pop()
}
