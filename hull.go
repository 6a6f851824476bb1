package planeclip

import (
	"sort"

	"github.com/qleary/planeclip/internal/d2"
	"gonum.org/v1/gonum/spatial/r2"
)

// ConvexHull returns the convex hull of points in counter-clockwise
// order using the monotone chain algorithm. Collinear boundary points
// are discarded. Degenerate input (fewer than 3 distinct points, or all
// points collinear) yields a hull with fewer than 3 vertices; callers
// must treat that as "no usable region" and skip it.
func ConvexHull(points []r2.Vec) []r2.Vec {
	if len(points) < 3 {
		return append([]r2.Vec{}, points...)
	}
	pts := make([]r2.Vec, len(points))
	copy(pts, points)
	sort.Slice(pts, func(i, j int) bool {
		if pts[i].X != pts[j].X {
			return pts[i].X < pts[j].X
		}
		return pts[i].Y < pts[j].Y
	})

	// Lower hull, then upper hull over the same backing slice. A vertex
	// is discarded while the last three points fail to make a strict
	// counter-clockwise turn.
	hull := make([]r2.Vec, 0, len(pts)+1)
	for _, p := range pts {
		for len(hull) >= 2 && turn(hull[len(hull)-2], hull[len(hull)-1], p) <= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, p)
	}
	lower := len(hull) + 1
	for i := len(pts) - 2; i >= 0; i-- {
		p := pts[i]
		for len(hull) >= lower && turn(hull[len(hull)-2], hull[len(hull)-1], p) <= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, p)
	}
	// Last point repeats the first.
	return hull[:len(hull)-1]
}

// turn is positive when a→b→c turns counter-clockwise.
func turn(a, b, c r2.Vec) float64 {
	return d2.Cross(r2.Sub(b, a), r2.Sub(c, b))
}
