// Package viewer turns window input into display.Shell operations and
// loads the images the viewer shows.
package viewer

import (
	"log/slog"

	"gioui.org/f32"
	"gioui.org/io/key"
	"gioui.org/io/pointer"

	"github.com/OpenTraceLab/rotview/internal/config"
	"github.com/OpenTraceLab/rotview/pkg/display"
	"github.com/OpenTraceLab/rotview/pkg/geom"
)

// Gesture is the pointer gesture in progress
type Gesture int

const (
	GestureNone Gesture = iota
	GesturePan
	GestureRotate
)

func (g Gesture) String() string {
	switch g {
	case GesturePan:
		return "pan"
	case GestureRotate:
		return "rotate"
	default:
		return "none"
	}
}

// Controller maps pointer and key input onto a shell.
//
// Primary drag pans, secondary drag rotates around the pivot (Shift snaps
// to the shell's grid), scroll zooms at the pointer. Keys: R and Shift+R
// rotate by the key step, 0 resets, F fits, Q and Escape quit.
type Controller struct {
	shell    *display.Shell
	keyStep  float64
	zoomStep float64
	logger   *slog.Logger

	gesture Gesture
	last    geom.Point
}

// NewController creates a controller for shell using the viewer and rotate
// settings from cfg
func NewController(shell *display.Shell, cfg *config.Config, logger *slog.Logger) *Controller {
	if logger == nil {
		logger = slog.Default()
	}
	return &Controller{
		shell:    shell,
		keyStep:  cfg.Rotate.KeyStep,
		zoomStep: cfg.Viewer.ZoomStep,
		logger:   logger,
	}
}

// Gesture returns the gesture in progress
func (c *Controller) Gesture() Gesture {
	return c.gesture
}

// Pointer handles one pointer event. It reports whether the view changed.
func (c *Controller) Pointer(e pointer.Event) (bool, error) {
	pos := geom.FromF32(e.Position)
	switch e.Kind {
	case pointer.Press:
		return c.Press(pos, e.Buttons), nil
	case pointer.Drag:
		return c.Drag(pos, e.Modifiers.Contain(key.ModShift))
	case pointer.Release, pointer.Cancel:
		c.Release()
		return false, nil
	case pointer.Scroll:
		return c.Scroll(pos, float64(e.Scroll.Y)), nil
	}
	return false, nil
}

// Press starts a pan with the primary button or a rotation with the
// secondary one
func (c *Controller) Press(pos geom.Point, buttons pointer.Buttons) bool {
	switch {
	case buttons.Contain(pointer.ButtonPrimary):
		c.gesture = GesturePan
	case buttons.Contain(pointer.ButtonSecondary):
		c.gesture = GestureRotate
		c.shell.BeginDrag()
	default:
		return false
	}
	c.last = pos
	c.logger.Debug("gesture started", "gesture", c.gesture, "x", pos.X, "y", pos.Y)
	return false
}

// Drag continues the current gesture to pos
func (c *Controller) Drag(pos geom.Point, constrain bool) (bool, error) {
	last := c.last
	c.last = pos
	switch c.gesture {
	case GesturePan:
		c.shell.Pan(pos.X-last.X, pos.Y-last.Y)
		return true, nil
	case GestureRotate:
		if err := c.shell.RotateByDrag(last.X, last.Y, pos.X, pos.Y, constrain); err != nil {
			return false, err
		}
		return true, nil
	}
	return false, nil
}

// Release ends the current gesture
func (c *Controller) Release() {
	c.gesture = GestureNone
}

// Scroll zooms around pos; positive dy zooms in
func (c *Controller) Scroll(pos geom.Point, dy float64) bool {
	factor := 1.0 + dy*c.zoomStep
	if factor <= 0 || dy == 0 {
		return false
	}
	c.shell.ZoomAt(pos.X, pos.Y, factor)
	return true
}

// Key handles a key press. quit is set when the window should close.
func (c *Controller) Key(name key.Name, mods key.Modifiers) (quit bool, err error) {
	switch name {
	case key.NameEscape, "Q":
		return true, nil
	case "R":
		step := c.keyStep
		if mods.Contain(key.ModShift) {
			step = -step
		}
		return false, c.shell.Rotate(step)
	case "0":
		return false, c.shell.ResetRotation()
	case "F":
		c.shell.Fit()
	}
	return false, nil
}

// ImageTransform maps image pixels to unrotated screen space: scale, then
// shift by the scroll offset
func ImageTransform(shell *display.Shell) f32.Affine2D {
	off := shell.ViewportOffset()
	s := float32(shell.Scale())
	return f32.Affine2D{}.
		Scale(f32.Point{}, f32.Pt(s, s)).
		Offset(f32.Pt(float32(-off.X), float32(-off.Y)))
}
