package planeclip

import (
	"math"

	"github.com/qleary/planeclip/internal/d2"
	"gonum.org/v1/gonum/spatial/r2"
)

// Offset displaces every vertex of poly by the signed distance: positive
// grows the polygon, negative shrinks it, independent of winding. The
// construction is a per-vertex miter: both edges adjacent to a vertex
// are displaced along their outward normals and the displaced lines
// intersected. Edges that are parallel within epsilon fall back to the
// midpoint of the two displaced anchor points.
//
// This is a miter join, not a true buffer. Very sharp concave corners
// can throw the miter point far from the original vertex.
func Offset(poly Polygon, distance float64) Polygon {
	n := len(poly)
	if n < 3 || distance == 0 {
		return append(Polygon{}, poly...)
	}
	// The shoelace sign decides which perpendicular points outward.
	clockwise := d2.SignedArea(poly) < 0
	mag := math.Abs(distance)

	out := make(Polygon, n)
	for i := range poly {
		prev := poly[(i+n-1)%n]
		v := poly[i]
		next := poly[(i+1)%n]

		d0 := r2.Unit(r2.Sub(v, prev))
		d1 := r2.Unit(r2.Sub(next, v))
		a0 := r2.Add(v, r2.Scale(mag, outwardNormal(d0, clockwise, distance)))
		a1 := r2.Add(v, r2.Scale(mag, outwardNormal(d1, clockwise, distance)))

		p, ok := lineIntersect(a0, d0, a1, d1)
		if !ok {
			p = r2.Scale(0.5, r2.Add(a0, a1))
		}
		out[i] = p
	}
	return out
}

// outwardNormal returns the unit perpendicular of edge direction d that
// points out of the polygon, flipped again when shrinking.
func outwardNormal(d r2.Vec, clockwise bool, distance float64) r2.Vec {
	n := r2.Vec{X: d.Y, Y: -d.X}
	if clockwise {
		n = r2.Scale(-1, n)
	}
	if distance < 0 {
		n = r2.Scale(-1, n)
	}
	return n
}

// lineIntersect intersects the lines a+t·da and b+s·db parametrically.
// ok is false when the directions are parallel within epsilon.
func lineIntersect(a, da, b, db r2.Vec) (p r2.Vec, ok bool) {
	den := d2.Cross(da, db)
	if math.Abs(den) < epsilonParallel {
		return r2.Vec{}, false
	}
	t := d2.Cross(r2.Sub(b, a), db) / den
	return r2.Add(a, r2.Scale(t, da)), true
}
