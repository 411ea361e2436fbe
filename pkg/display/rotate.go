package display

// Rotate turns the view by delta degrees
func (s *Shell) Rotate(delta float64) error {
	return s.rotation.Rotate(delta)
}

// RotateTo sets the view angle in degrees
func (s *Shell) RotateTo(angle float64) error {
	return s.rotation.RotateTo(angle)
}

// BeginDrag starts a rotation drag from the current angle
func (s *Shell) BeginDrag() {
	s.rotation.ResetDrag(s.rotation.Angle())
}

// RotateByDrag applies one pointer move of a rotation drag. Positions are
// screen pixels.
func (s *Shell) RotateByDrag(lastX, lastY, curX, curY float64, constrain bool) error {
	return s.rotation.RotateByDrag(lastX, lastY, curX, curY, constrain)
}

// ResetRotation returns the view to 0 degrees
func (s *Shell) ResetRotation() error {
	if err := s.rotation.RotateTo(0); err != nil {
		return err
	}
	s.BeginDrag()
	return nil
}
