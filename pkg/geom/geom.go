// Package geom holds the small value types shared by the rotation core and
// the display shell: points and axis-aligned rectangles in viewport pixels.
package geom

import (
	"math"

	"gioui.org/f32"
	"gonum.org/v1/gonum/spatial/r2"
)

// Point represents a position in viewport pixel space
type Point struct {
	X float64
	Y float64
}

// Pt is shorthand for Point{X: x, Y: y}
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns p+q
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p-q
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Vec converts the point to a gonum vector
func (p Point) Vec() r2.Vec {
	return r2.Vec{X: p.X, Y: p.Y}
}

// F32 converts the point to a gio point
func (p Point) F32() f32.Point {
	return f32.Pt(float32(p.X), float32(p.Y))
}

// FromF32 converts a gio pointer position to a Point
func FromF32(p f32.Point) Point {
	return Point{X: float64(p.X), Y: float64(p.Y)}
}

// Rect is an axis-aligned box given by two opposite corners.
// Nothing forces X1 <= X2 or Y1 <= Y2; use Canon when that matters.
type Rect struct {
	X1, Y1 float64
	X2, Y2 float64
}

// R is shorthand for Rect{x1, y1, x2, y2}
func R(x1, y1, x2, y2 float64) Rect {
	return Rect{X1: x1, Y1: y1, X2: x2, Y2: y2}
}

// Corners returns the four corners in the order
// (x1,y1), (x1,y2), (x2,y1), (x2,y2).
func (r Rect) Corners() [4]Point {
	return [4]Point{
		{X: r.X1, Y: r.Y1},
		{X: r.X1, Y: r.Y2},
		{X: r.X2, Y: r.Y1},
		{X: r.X2, Y: r.Y2},
	}
}

// Canon returns the same box with X1 <= X2 and Y1 <= Y2
func (r Rect) Canon() Rect {
	return Rect{
		X1: math.Min(r.X1, r.X2),
		Y1: math.Min(r.Y1, r.Y2),
		X2: math.Max(r.X1, r.X2),
		Y2: math.Max(r.Y1, r.Y2),
	}
}

// Width returns the width of the box
func (r Rect) Width() float64 {
	return math.Abs(r.X2 - r.X1)
}

// Height returns the height of the box
func (r Rect) Height() float64 {
	return math.Abs(r.Y2 - r.Y1)
}

// Center returns the center point of the box
func (r Rect) Center() Point {
	return Point{
		X: (r.X1 + r.X2) / 2.0,
		Y: (r.Y1 + r.Y2) / 2.0,
	}
}

// Contains reports whether other lies within r, allowing tol of slack on
// every edge. Both boxes are canonicalized first.
func (r Rect) Contains(other Rect, tol float64) bool {
	a, b := r.Canon(), other.Canon()
	return b.X1 >= a.X1-tol && b.Y1 >= a.Y1-tol &&
		b.X2 <= a.X2+tol && b.Y2 <= a.Y2+tol
}

// Enclose returns the smallest canonical box containing every point.
// It returns the zero Rect for an empty slice.
func Enclose(pts ...Point) Rect {
	if len(pts) == 0 {
		return Rect{}
	}
	r := Rect{X1: pts[0].X, Y1: pts[0].Y, X2: pts[0].X, Y2: pts[0].Y}
	for _, p := range pts[1:] {
		if p.X < r.X1 {
			r.X1 = p.X
		}
		if p.Y < r.Y1 {
			r.Y1 = p.Y
		}
		if p.X > r.X2 {
			r.X2 = p.X
		}
		if p.Y > r.Y2 {
			r.Y2 = p.Y
		}
	}
	return r
}
