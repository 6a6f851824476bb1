package d3

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// R3 helpers for planar loops embedded in 3D space.

// EqualWithin tests vector equality within an absolute tolerance on
// each component.
func EqualWithin(a, b r3.Vec, tol float64) bool {
	return math.Abs(a.X-b.X) <= tol &&
		math.Abs(a.Y-b.Y) <= tol &&
		math.Abs(a.Z-b.Z) <= tol
}

// SignedAreaAbout returns the area of the closed planar polygon vertex,
// signed about the unit normal n: positive when the polygon winds
// counter-clockwise by the right-hand rule.
func SignedAreaAbout(vertex []r3.Vec, n r3.Vec) float64 {
	m := len(vertex)
	if m < 3 {
		return 0
	}
	var sum r3.Vec
	for i, v := range vertex {
		sum = r3.Add(sum, r3.Cross(v, vertex[(i+1)%m]))
	}
	return 0.5 * r3.Dot(sum, n)
}

// BoxCorners returns the 8 corner points of b, the usual reduction of a
// subtractor element to a point cloud.
func BoxCorners(b r3.Box) [8]r3.Vec {
	return [8]r3.Vec{
		{X: b.Min.X, Y: b.Min.Y, Z: b.Min.Z},
		{X: b.Max.X, Y: b.Min.Y, Z: b.Min.Z},
		{X: b.Min.X, Y: b.Max.Y, Z: b.Min.Z},
		{X: b.Max.X, Y: b.Max.Y, Z: b.Min.Z},
		{X: b.Min.X, Y: b.Min.Y, Z: b.Max.Z},
		{X: b.Max.X, Y: b.Min.Y, Z: b.Max.Z},
		{X: b.Min.X, Y: b.Max.Y, Z: b.Max.Z},
		{X: b.Max.X, Y: b.Max.Y, Z: b.Max.Z},
	}
}
