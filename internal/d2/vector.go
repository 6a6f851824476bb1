package d2

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Planar vector helpers shared by the root and render packages.

// EqualWithin tests vector equality within an absolute tolerance on
// each component.
func EqualWithin(a, b r2.Vec, tol float64) bool {
	return math.Abs(a.X-b.X) <= tol && math.Abs(a.Y-b.Y) <= tol
}

// Cross returns the z component of the cross product a×b.
func Cross(a, b r2.Vec) float64 {
	return a.X*b.Y - a.Y*b.X
}

// SignedArea returns the shoelace area of the closed polygon described
// by vertex, positive when the winding is counter-clockwise.
func SignedArea(vertex []r2.Vec) float64 {
	n := len(vertex)
	if n < 3 {
		return 0
	}
	var sum float64
	for i, v := range vertex {
		w := vertex[(i+1)%n]
		sum += v.X*w.Y - w.X*v.Y
	}
	return sum / 2
}

// MinElem return a vector with the minimum components of two vectors.
func MinElem(a, b r2.Vec) r2.Vec {
	return r2.Vec{X: math.Min(a.X, b.X), Y: math.Min(a.Y, b.Y)}
}

// MaxElem return a vector with the maximum components of two vectors.
func MaxElem(a, b r2.Vec) r2.Vec {
	return r2.Vec{X: math.Max(a.X, b.X), Y: math.Max(a.Y, b.Y)}
}
