package rotate

import (
	"errors"
	"log/slog"

	"github.com/OpenTraceLab/rotview/pkg/geom"
)

// ErrDetached is returned by State methods that need a Viewport when none
// is attached.
var ErrDetached = errors.New("rotate: state is not attached to a viewport")

// Viewport is what a State needs from the display that owns it.
type Viewport interface {
	// ImageExtent returns the displayed image size in viewport pixels.
	// ok is false when no image is attached.
	ImageExtent() (width, height int, ok bool)
	// ViewportOffset returns the current scroll offset
	ViewportOffset() geom.Point
	// NotifyRotated tells observers the angle changed
	NotifyRotated()
	// InvalidateFullRedraw schedules a repaint of the whole viewport
	InvalidateFullRedraw()
}

// State holds the rotation of one viewport.
type State struct {
	view      Viewport
	angle     float64
	drag      DragTracker
	dragDelta float64
	transform Transform
	snapStep  int
	logger    *slog.Logger
}

// Option configures a State
type Option func(*State)

// WithSnapStep sets the constrain grid used by RotateByDrag, in degrees
func WithSnapStep(step int) Option {
	return func(s *State) {
		s.snapStep = step
	}
}

// WithLogger sets the logger used for debug output
func WithLogger(logger *slog.Logger) Option {
	return func(s *State) {
		s.logger = logger
	}
}

// New creates an unrotated State bound to view. A nil view gives a
// detached State; attach one with Attach before rotating.
func New(view Viewport, opts ...Option) *State {
	s := &State{
		view:     view,
		snapStep: DefaultSnapStep,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	return s
}

// Attach binds the State to view
func (s *State) Attach(view Viewport) {
	s.view = view
}

// Angle returns the current rotation in degrees, in [0, 360)
func (s *State) Angle() float64 {
	return s.angle
}

// DragAngle returns the angle accumulated by drags, in [0, 360)
func (s *State) DragAngle() float64 {
	return s.drag.Angle()
}

// DragDelta returns the delta in degrees swept by the last RotateByDrag
// step, 0 after ResetDrag.
func (s *State) DragDelta() float64 {
	return s.dragDelta
}

// ResetDrag seeds the drag accumulator, normally with Angle() when a drag
// gesture begins.
func (s *State) ResetDrag(angle float64) {
	s.drag.Reset(angle)
	s.dragDelta = 0
}

// SnapStep returns the constrain grid in degrees
func (s *State) SnapStep() int {
	return s.snapStep
}

// Transform returns the cached transform pair. It is only as fresh as the
// last RefreshTransform call.
func (s *State) Transform() Transform {
	return s.transform
}

// Rotate turns the view by delta degrees
func (s *State) Rotate(delta float64) error {
	if s.view == nil {
		return ErrDetached
	}
	return s.RotateTo(s.angle + delta)
}

// RotateTo sets the view angle to value degrees, normalized
func (s *State) RotateTo(value float64) error {
	if s.view == nil {
		return ErrDetached
	}

	s.angle = Normalize(value)
	s.logger.Debug("rotated", "angle", s.angle)

	s.view.NotifyRotated()
	s.view.InvalidateFullRedraw()
	return nil
}

// RotateByDrag rotates by the angle the pointer swept around the pivot
// going from (lastX, lastY) to (curX, curY). With constrain set, the
// accumulated drag angle is truncated to the snap grid before it is
// applied; the accumulator itself keeps the unsnapped value.
func (s *State) RotateByDrag(lastX, lastY, curX, curY float64, constrain bool) error {
	if s.view == nil {
		return ErrDetached
	}

	pivot := s.pivot()
	delta := s.drag.Step(pivot, geom.Pt(lastX, lastY), geom.Pt(curX, curY))
	s.dragDelta = delta

	target := s.drag.Angle()
	if constrain {
		target = Snap(target, s.snapStep)
	}
	s.logger.Debug("drag",
		"pivot_x", pivot.X,
		"pivot_y", pivot.Y,
		"delta", delta,
		"drag_angle", s.drag.Angle(),
		"constrain", constrain,
	)
	return s.RotateTo(target)
}

// RefreshTransform rebuilds the cached transform from the current angle,
// offset and image size. It becomes Identity when the angle is 0 or no
// image is attached.
func (s *State) RefreshTransform() error {
	if s.view == nil {
		return ErrDetached
	}

	width, height, ok := s.view.ImageExtent()
	if s.angle == 0 || !ok {
		s.transform = Identity
		return nil
	}

	pivot := Pivot(s.view.ViewportOffset(), width, height)
	s.transform = Build(pivot, s.angle)
	return nil
}

// MapBoundsForward maps r from unrotated to displayed coordinates and
// returns the enclosing axis-aligned box.
func (s *State) MapBoundsForward(r geom.Rect) geom.Rect {
	return MapForward(s.transform, r)
}

// MapBoundsInverse maps r from displayed back to unrotated coordinates and
// returns the enclosing axis-aligned box.
func (s *State) MapBoundsInverse(r geom.Rect) geom.Rect {
	return MapInverse(s.transform, r)
}

// pivot uses a zero extent when no image is attached
func (s *State) pivot() geom.Point {
	width, height, ok := s.view.ImageExtent()
	if !ok {
		width, height = 0, 0
	}
	return Pivot(s.view.ViewportOffset(), width, height)
}
