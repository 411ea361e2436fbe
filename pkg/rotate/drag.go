package rotate

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/OpenTraceLab/rotview/pkg/geom"
)

// DragTracker accumulates the angle swept by a pointer circling a pivot.
// The zero value starts at 0 degrees.
type DragTracker struct {
	angle float64
}

// Angle returns the accumulated angle in [0, 360)
func (d *DragTracker) Angle() float64 {
	return d.angle
}

// Reset sets the accumulated angle, normalized
func (d *DragTracker) Reset(angle float64) {
	d.angle = Normalize(angle)
}

// Step adds the angle between last and cur, as seen from pivot, to the
// accumulated angle and returns that delta in degrees.
//
// Screen y grows downward; the vectors are taken with y flipped so that
// atan2 works in the usual y-up sense. Moving the pointer clockwise on
// screen yields a positive delta.
func (d *DragTracker) Step(pivot, last, cur geom.Point) float64 {
	delta := Degrees(ShortestAngularDelta(pointerAngle(pivot, cur), pointerAngle(pivot, last)))
	d.angle = Normalize(d.angle + delta)
	return delta
}

// pointerAngle is the polar angle of pos around pivot in y-up space
func pointerAngle(pivot, pos geom.Point) float64 {
	v := r2.Sub(pos.Vec(), pivot.Vec())
	return math.Atan2(-v.Y, v.X)
}

// ShortestAngularDelta returns angle2-angle1 for two atan2 results,
// corrected across the ±π seam so that the delta takes the short way
// around. The result lies in (-π, π]; opposite vectors give +π.
func ShortestAngularDelta(angle1, angle2 float64) float64 {
	delta := angle2 - angle1
	if delta > math.Pi || delta < -math.Pi {
		if angle1 < 0 {
			angle1 += 2 * math.Pi
		} else {
			angle1 -= 2 * math.Pi
		}
		delta = angle2 - angle1
	}
	if delta <= -math.Pi {
		delta = math.Pi
	}
	return delta
}
