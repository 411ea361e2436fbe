package rotate

import (
	"fmt"
	"math"

	"gioui.org/f32"

	"github.com/OpenTraceLab/rotview/pkg/geom"
)

// Affine is a 2D affine map
//
//	x' = XX*x + XY*y + X0
//	y' = YX*x + YY*y + Y0
//
// The zero value is not the identity; use IdentityAffine.
type Affine struct {
	XX, YX float64
	XY, YY float64
	X0, Y0 float64
}

// singularDet is the smallest determinant Invert accepts
const singularDet = 1e-10

// IdentityAffine returns the identity map
func IdentityAffine() Affine {
	return Affine{XX: 1, YY: 1}
}

// Translation returns a map that shifts points by (dx, dy)
func Translation(dx, dy float64) Affine {
	return Affine{XX: 1, YY: 1, X0: dx, Y0: dy}
}

// Rotation returns a rotation by radians about the origin.
// In a y-down coordinate system a positive angle turns clockwise.
func Rotation(radians float64) Affine {
	sin, cos := math.Sincos(radians)
	return Affine{
		XX: cos, YX: sin,
		XY: -sin, YY: cos,
	}
}

// Mul returns the composition a∘b: b is applied first, then a.
func (a Affine) Mul(b Affine) Affine {
	return Affine{
		XX: a.XX*b.XX + a.XY*b.YX,
		YX: a.YX*b.XX + a.YY*b.YX,
		XY: a.XX*b.XY + a.XY*b.YY,
		YY: a.YX*b.XY + a.YY*b.YY,
		X0: a.XX*b.X0 + a.XY*b.Y0 + a.X0,
		Y0: a.YX*b.X0 + a.YY*b.Y0 + a.Y0,
	}
}

// Det returns the determinant of the linear part
func (a Affine) Det() float64 {
	return a.XX*a.YY - a.XY*a.YX
}

// Invert returns the exact inverse of a.
// It reports false if the matrix is singular.
func (a Affine) Invert() (Affine, bool) {
	det := a.Det()
	if math.Abs(det) < singularDet {
		return Affine{}, false
	}
	inv := 1.0 / det
	return Affine{
		XX: a.YY * inv,
		YX: -a.YX * inv,
		XY: -a.XY * inv,
		YY: a.XX * inv,
		X0: (a.XY*a.Y0 - a.YY*a.X0) * inv,
		Y0: (a.YX*a.X0 - a.XX*a.Y0) * inv,
	}, true
}

// Apply maps a point through a
func (a Affine) Apply(p geom.Point) geom.Point {
	return geom.Point{
		X: a.XX*p.X + a.XY*p.Y + a.X0,
		Y: a.YX*p.X + a.YY*p.Y + a.Y0,
	}
}

// F32 converts a to a gio transform for op.Affine
func (a Affine) F32() f32.Affine2D {
	return f32.NewAffine2D(
		float32(a.XX), float32(a.XY), float32(a.X0),
		float32(a.YX), float32(a.YY), float32(a.Y0),
	)
}

func (a Affine) String() string {
	return fmt.Sprintf("[%.6f %.6f %.6f; %.6f %.6f %.6f]",
		a.XX, a.XY, a.X0, a.YX, a.YY, a.Y0)
}
