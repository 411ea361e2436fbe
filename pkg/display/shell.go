// Package display provides a headless viewport onto an image: scroll
// offset, zoom, screen size and the rotation state that depends on them.
package display

import (
	"log/slog"
	"math"

	"github.com/google/uuid"

	"github.com/OpenTraceLab/rotview/pkg/geom"
	"github.com/OpenTraceLab/rotview/pkg/rotate"
)

// Image describes the attached image in image pixels
type Image struct {
	Width  int
	Height int
}

// Options configures a new Shell
type Options struct {
	ScreenWidth  int
	ScreenHeight int
	MinScale     float64 // 0 = DefaultMinScale
	MaxScale     float64 // 0 = DefaultMaxScale
	SnapStep     int     // 0 = rotate.DefaultSnapStep
	Logger       *slog.Logger
}

// Zoom limits used when Options leaves them unset
const (
	DefaultMinScale = 0.05
	DefaultMaxScale = 64.0
)

// Shell is a viewport onto an image.
//
// The image's top-left corner is drawn at -Offset on screen, scaled by
// Scale. Any change to offset, scale or image refreshes the rotation
// transform, since the pivot moves with them.
type Shell struct {
	ID uuid.UUID

	// Scroll offset in screen pixels
	offset geom.Point

	// Zoom level (1.0 = one screen pixel per image pixel)
	scale    float64
	minScale float64
	maxScale float64

	// Screen dimensions (pixels)
	screenWidth  int
	screenHeight int

	image    Image
	hasImage bool

	rotation *rotate.State

	rotatedHooks    []func(angle float64)
	invalidateHooks []func()
	invalidations   int

	logger *slog.Logger
}

// New creates a shell with no image attached
func New(opts Options) *Shell {
	s := &Shell{
		ID:           uuid.New(),
		scale:        1.0,
		minScale:     opts.MinScale,
		maxScale:     opts.MaxScale,
		screenWidth:  opts.ScreenWidth,
		screenHeight: opts.ScreenHeight,
	}
	if s.minScale <= 0 {
		s.minScale = DefaultMinScale
	}
	if s.maxScale <= 0 {
		s.maxScale = DefaultMaxScale
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	s.logger = logger.With("display", s.ID.String())

	snap := opts.SnapStep
	if snap == 0 {
		snap = rotate.DefaultSnapStep
	}
	s.rotation = rotate.New(s, rotate.WithSnapStep(snap), rotate.WithLogger(s.logger))
	return s
}

// Rotation returns the shell's rotation state
func (s *Shell) Rotation() *rotate.State {
	return s.rotation
}

// ImageExtent returns the scaled image size. It implements rotate.Viewport.
func (s *Shell) ImageExtent() (width, height int, ok bool) {
	if !s.hasImage {
		return 0, 0, false
	}
	return int(math.Floor(float64(s.image.Width) * s.scale)),
		int(math.Floor(float64(s.image.Height) * s.scale)), true
}

// ViewportOffset implements rotate.Viewport
func (s *Shell) ViewportOffset() geom.Point {
	return s.offset
}

// NotifyRotated implements rotate.Viewport. It rebuilds the transform
// before the OnRotated hooks run, so they see the new one.
func (s *Shell) NotifyRotated() {
	s.refresh()
	angle := s.rotation.Angle()
	for _, fn := range s.rotatedHooks {
		fn(angle)
	}
}

// InvalidateFullRedraw implements rotate.Viewport
func (s *Shell) InvalidateFullRedraw() {
	s.invalidations++
	for _, fn := range s.invalidateHooks {
		fn()
	}
}

// OnRotated registers fn to run after every angle change
func (s *Shell) OnRotated(fn func(angle float64)) {
	s.rotatedHooks = append(s.rotatedHooks, fn)
}

// OnInvalidate registers fn to run when the whole view needs repainting
func (s *Shell) OnInvalidate(fn func()) {
	s.invalidateHooks = append(s.invalidateHooks, fn)
}

// Invalidations returns how many full redraws have been requested
func (s *Shell) Invalidations() int {
	return s.invalidations
}

// Image returns the attached image and whether there is one
func (s *Shell) Image() (Image, bool) {
	return s.image, s.hasImage
}

// Scale returns the zoom level
func (s *Shell) Scale() float64 {
	return s.scale
}

// ScreenSize returns the viewport size in pixels
func (s *Shell) ScreenSize() (width, height int) {
	return s.screenWidth, s.screenHeight
}

// Angle returns the current rotation in degrees
func (s *Shell) Angle() float64 {
	return s.rotation.Angle()
}

// Transform returns the current rotation transform
func (s *Shell) Transform() rotate.Transform {
	return s.rotation.Transform()
}
