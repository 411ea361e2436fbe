package rotate

import "github.com/OpenTraceLab/rotview/pkg/geom"

// Kind tells the two shapes of a Transform apart
type Kind uint8

const (
	// KindIdentity maps every point to itself
	KindIdentity Kind = iota
	// KindRotated carries a forward rotation and its inverse
	KindRotated
)

func (k Kind) String() string {
	switch k {
	case KindIdentity:
		return "identity"
	case KindRotated:
		return "rotated"
	default:
		return "unknown"
	}
}

// Transform is either the identity or a rotation about a pivot together
// with its inverse. The zero value is the identity.
type Transform struct {
	kind    Kind
	pivot   geom.Point
	angle   float64
	forward Affine
	inverse Affine
}

// Identity is the no-op transform
var Identity = Transform{}

// Kind returns which variant t holds
func (t Transform) Kind() Kind {
	return t.kind
}

// IsIdentity reports whether t is the no-op transform
func (t Transform) IsIdentity() bool {
	return t.kind == KindIdentity
}

// Pivot returns the rotation center, or the origin for Identity
func (t Transform) Pivot() geom.Point {
	return t.pivot
}

// Angle returns the rotation angle in degrees, 0 for Identity
func (t Transform) Angle() float64 {
	return t.angle
}

// Forward maps unrotated image coordinates to displayed coordinates.
// For Identity it returns the identity matrix.
func (t Transform) Forward() Affine {
	if t.kind == KindIdentity {
		return IdentityAffine()
	}
	return t.forward
}

// Inverse maps displayed coordinates back to unrotated coordinates.
// For Identity it returns the identity matrix.
func (t Transform) Inverse() Affine {
	if t.kind == KindIdentity {
		return IdentityAffine()
	}
	return t.inverse
}

// Matrices returns the forward/inverse pair and true, or false for Identity
func (t Transform) Matrices() (forward, inverse Affine, ok bool) {
	if t.kind == KindIdentity {
		return Affine{}, Affine{}, false
	}
	return t.forward, t.inverse, true
}

// Build returns the rotation by degrees about pivot. An angle that
// normalizes to exactly 0 yields Identity.
func Build(pivot geom.Point, degrees float64) Transform {
	degrees = Normalize(degrees)
	if degrees == 0 {
		return Identity
	}

	forward := Translation(pivot.X, pivot.Y).
		Mul(Rotation(Radians(degrees))).
		Mul(Translation(-pivot.X, -pivot.Y))

	inverse, ok := forward.Invert()
	if !ok {
		// det of a pure rotation is 1
		panic("rotate: rotation matrix is singular")
	}

	return Transform{
		kind:    KindRotated,
		pivot:   pivot,
		angle:   degrees,
		forward: forward,
		inverse: inverse,
	}
}

// Pivot returns the logical center of the viewport: the middle of the
// scaled image shifted by the scroll offset. The extent is halved with
// integer division.
func Pivot(offset geom.Point, width, height int) geom.Point {
	return geom.Point{
		X: -offset.X + float64(width/2),
		Y: -offset.Y + float64(height/2),
	}
}
