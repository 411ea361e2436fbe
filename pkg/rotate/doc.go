// Package rotate maintains the rotation state of an image viewport.
//
// A State tracks the current view angle in degrees, keeps the matching
// forward/inverse affine pair anchored at the viewport's logical center,
// and turns pointer drags around that center into angle changes.
//
// # Overview
//
//   - Normalize: reduces any angle into [0, 360)
//   - Build: rotation about a pivot plus its exact inverse, as a Transform
//   - MapForward / MapInverse: bounding box of a rectangle's four mapped corners
//   - DragTracker: accumulates the angle swept by successive pointer positions
//   - State: composes the above behind Rotate, RotateTo, RotateByDrag,
//     RefreshTransform and the bounds mappers
//
// # Usage
//
//	st := rotate.New(view) // view implements rotate.Viewport
//	st.RotateTo(30)
//	st.RefreshTransform()
//	r := st.MapBoundsForward(geom.R(0, 0, 100, 50))
//
// The transform is not refreshed by the rotate calls. The owner calls
// RefreshTransform whenever the angle, the viewport offset or the image
// size changes, so panning and zooming reuse the same code path.
//
// # Threading
//
// State is not safe for concurrent mutation. It is meant to be owned by the
// goroutine that owns the viewport. Transform is a value, so a reader holding
// one always sees a forward/inverse pair that belongs together.
//
// # Constrained drags
//
// With constrain set, RotateByDrag snaps the accumulated drag angle down to
// the snap grid (15 degrees by default) using integer truncation: 37 and 44
// both become 30. It does not round to the nearest step.
package rotate
