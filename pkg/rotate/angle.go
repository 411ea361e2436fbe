package rotate

import "math"

// DefaultSnapStep is the constrain grid for drag rotation, in degrees.
const DefaultSnapStep = 15

// reduceLimit bounds how far outside [0, 360) Normalize walks by whole
// turns. Anything further out is reduced with math.Mod first; repeated
// subtraction stops making progress once 360 is below the float's ulp.
const reduceLimit = 360 * 64

// Normalize returns angle reduced into [0, 360).
// NaN and infinities are returned unchanged.
func Normalize(angle float64) float64 {
	if math.IsNaN(angle) || math.IsInf(angle, 0) {
		return angle
	}
	if angle <= -reduceLimit || angle >= reduceLimit {
		angle = math.Mod(angle, 360)
	}
	for angle < 0 {
		angle += 360
	}
	for angle >= 360 {
		angle -= 360
	}
	// -0 compares equal to 0 but prints as "-0"
	if angle == 0 {
		return 0
	}
	return angle
}

// Snap truncates angle to a multiple of step degrees.
// The angle is truncated to whole degrees first, so 37.9 snaps to 30 with
// the default step. A step <= 0 disables snapping.
func Snap(angle float64, step int) float64 {
	if step <= 0 {
		return angle
	}
	return float64(int(angle) / step * step)
}

// Radians converts degrees to radians
func Radians(degrees float64) float64 {
	return degrees / 180.0 * math.Pi
}

// Degrees converts radians to degrees
func Degrees(radians float64) float64 {
	return radians * 180.0 / math.Pi
}
