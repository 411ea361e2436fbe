package display

import (
	"math"

	"github.com/OpenTraceLab/rotview/pkg/geom"
	"github.com/OpenTraceLab/rotview/pkg/rotate"
)

// SetImage attaches an image of the given size, keeping offset and scale
func (s *Shell) SetImage(width, height int) {
	s.image = Image{Width: width, Height: height}
	s.hasImage = true
	s.logger.Debug("image attached", "width", width, "height", height)
	s.changed()
}

// DetachImage removes the image. The rotation angle is kept but the
// transform becomes the identity until an image is attached again.
func (s *Shell) DetachImage() {
	s.image = Image{}
	s.hasImage = false
	s.logger.Debug("image detached")
	s.changed()
}

// SetOffset sets the scroll offset
func (s *Shell) SetOffset(x, y float64) {
	s.offset = geom.Pt(x, y)
	s.changed()
}

// Pan moves the image by the given screen pixel delta
func (s *Shell) Pan(dx, dy float64) {
	s.offset.X -= dx
	s.offset.Y -= dy
	s.changed()
}

// SetScale sets the zoom level, clamped to the shell's limits
func (s *Shell) SetScale(scale float64) {
	s.scale = clamp(scale, s.minScale, s.maxScale)
	s.changed()
}

// ZoomAt zooms by factor keeping the image point under (screenX, screenY)
// in place. factor > 1 zooms in.
//
// The pivot moves with the scaled extent, so the new offset o solves
// screen = -o + c + R(img*scale - c), where c is the new half extent and
// R the rotation's linear part.
func (s *Shell) ZoomAt(screenX, screenY, factor float64) {
	img := s.ScreenToImage(geom.Pt(screenX, screenY))

	s.scale = clamp(s.scale*factor, s.minScale, s.maxScale)

	w, h, _ := s.ImageExtent()
	c := geom.Pt(float64(w/2), float64(h/2))
	lin := rotate.IdentityAffine()
	if s.hasImage && s.rotation.Angle() != 0 {
		lin = rotate.Rotation(rotate.Radians(s.rotation.Angle()))
	}
	v := lin.Apply(geom.Pt(img.X*s.scale-c.X, img.Y*s.scale-c.Y))

	s.offset = c.Add(v).Sub(geom.Pt(screenX, screenY))
	s.changed()
}

// Resize updates the viewport size when the window changes
func (s *Shell) Resize(width, height int) {
	if width == s.screenWidth && height == s.screenHeight {
		return
	}
	s.screenWidth = width
	s.screenHeight = height
	s.changed()
}

// Center scrolls so the image sits in the middle of the screen
func (s *Shell) Center() {
	w, h, ok := s.ImageExtent()
	if !ok {
		return
	}
	s.offset.X = -float64(s.screenWidth-w) / 2.0
	s.offset.Y = -float64(s.screenHeight-h) / 2.0
	s.changed()
}

// Fit zooms so the whole image fits the screen and centers it
func (s *Shell) Fit() {
	if !s.hasImage || s.image.Width <= 0 || s.image.Height <= 0 {
		return
	}
	if s.screenWidth <= 0 || s.screenHeight <= 0 {
		return
	}
	scaleX := float64(s.screenWidth) / float64(s.image.Width)
	scaleY := float64(s.screenHeight) / float64(s.image.Height)
	s.scale = clamp(math.Min(scaleX, scaleY), s.minScale, s.maxScale)
	s.Center()
}

// ImageToScreen converts image pixel coordinates to displayed screen
// coordinates, rotation included.
func (s *Shell) ImageToScreen(p geom.Point) geom.Point {
	u := geom.Pt(p.X*s.scale-s.offset.X, p.Y*s.scale-s.offset.Y)
	return s.rotation.Transform().Forward().Apply(u)
}

// ScreenToImage converts displayed screen coordinates to image pixels
func (s *Shell) ScreenToImage(p geom.Point) geom.Point {
	u := s.rotation.Transform().Inverse().Apply(p)
	return geom.Pt((u.X+s.offset.X)/s.scale, (u.Y+s.offset.Y)/s.scale)
}

// VisibleImageBounds returns the part of the image plane that the screen
// can show, in image pixels. With rotation the screen is re-enclosed in an
// axis-aligned box, so the result may exceed what is actually visible.
func (s *Shell) VisibleImageBounds() geom.Rect {
	screen := geom.R(0, 0, float64(s.screenWidth), float64(s.screenHeight))
	u := s.rotation.MapBoundsInverse(screen)
	return geom.R(
		(u.X1+s.offset.X)/s.scale, (u.Y1+s.offset.Y)/s.scale,
		(u.X2+s.offset.X)/s.scale, (u.Y2+s.offset.Y)/s.scale,
	)
}

// changed refreshes the transform after pivot-affecting state moved and
// schedules a repaint
func (s *Shell) changed() {
	s.refresh()
	s.InvalidateFullRedraw()
}

func (s *Shell) refresh() {
	if err := s.rotation.RefreshTransform(); err != nil {
		s.logger.Error("refresh transform", "error", err)
	}
}

// clamp restricts a value to a range
func clamp(x, min, max float64) float64 {
	if x < min {
		return min
	}
	if x > max {
		return max
	}
	return x
}
