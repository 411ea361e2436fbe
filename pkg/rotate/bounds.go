package rotate

import "github.com/OpenTraceLab/rotview/pkg/geom"

// MapForward returns the axis-aligned bounding box of r after mapping its
// four corners through the forward matrix of t. Identity returns r as is.
func MapForward(t Transform, r geom.Rect) geom.Rect {
	if t.IsIdentity() {
		return r
	}
	return mapCorners(t.forward, r)
}

// MapInverse is MapForward through the inverse matrix
func MapInverse(t Transform, r geom.Rect) geom.Rect {
	if t.IsIdentity() {
		return r
	}
	return mapCorners(t.inverse, r)
}

func mapCorners(m Affine, r geom.Rect) geom.Rect {
	c := r.Corners()
	for i := range c {
		c[i] = m.Apply(c[i])
	}
	return geom.Enclose(c[:]...)
}
