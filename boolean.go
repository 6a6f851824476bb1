package planeclip

import (
	clipper "github.com/ctessum/go.clipper"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/qleary/planeclip/internal/d2"
)

// Polygon is an ordered sequence of 2D vertices, implicitly closed (the
// last vertex connects back to the first). No simplicity invariant is
// enforced: self-intersecting input is resolved by the active fill rule.
type Polygon []r2.Vec

// PolygonSet is a possibly multiply-connected planar region made of one
// or more contours. Contour winding encodes outer boundary versus hole
// under the active fill rule.
type PolygonSet []Polygon

// Op selects the boolean operation performed by Combine.
type Op int

const (
	OpUnion Op = iota
	OpIntersection
	OpDifference
)

// FillRule resolves overlapping and self-intersecting contours into a
// definite inside/outside region.
type FillRule int

const (
	NonZero FillRule = iota
	EvenOdd
)

func (o Op) clipType() clipper.ClipType {
	switch o {
	case OpIntersection:
		return clipper.CtIntersection
	case OpDifference:
		return clipper.CtDifference
	}
	return clipper.CtUnion
}

func (r FillRule) fillType() clipper.PolyFillType {
	if r == EvenOdd {
		return clipper.PftEvenOdd
	}
	return clipper.PftNonZero
}

// Combine performs op between subject and clip under fillRule. All
// coordinates are scaled by Scale into the boolean engine's integer
// domain and rescaled on return.
//
// An empty result is a valid outcome, not an error: a difference with no
// remainder returns a nil set. Malformed input (self-intersecting or
// zero-area contours) degrades to whatever the fill-rule arithmetic
// produces; contours that come back with fewer than 3 vertices are
// filtered out here.
func Combine(subject, clip PolygonSet, op Op, fillRule FillRule) PolygonSet {
	c := clipper.NewClipper(clipper.IoNone)
	c.AddPaths(toPaths(subject), clipper.PtSubject, true)
	c.AddPaths(toPaths(clip), clipper.PtClip, true)
	solution, ok := c.Execute1(op.clipType(), fillRule.fillType(), fillRule.fillType())
	if !ok {
		return nil
	}
	return fromPaths(solution)
}

// Union merges every contour of set into a single region under fillRule.
func Union(set PolygonSet, fillRule FillRule) PolygonSet {
	return Combine(set, nil, OpUnion, fillRule)
}

// Area returns the polygon's signed area by the shoelace formula,
// positive for counter-clockwise winding.
func (p Polygon) Area() float64 {
	return d2.SignedArea(p)
}

// Contains reports whether pt lies inside or on the boundary of the
// polygon, resolved at Scale precision.
func (p Polygon) Contains(pt r2.Vec) bool {
	return clipper.PointInPolygon(scalePoint(pt), toPath(p)) != 0
}

// Area returns the total signed area of the set. Holes wound opposite
// to their outer contour contribute negatively.
func (s PolygonSet) Area() float64 {
	var sum float64
	for _, p := range s {
		sum += p.Area()
	}
	return sum
}

// Bounds returns the bounding box enclosing every contour of the set.
func (s PolygonSet) Bounds() r2.Box {
	var bb r2.Box
	first := true
	for _, poly := range s {
		for _, v := range poly {
			if first {
				bb = r2.Box{Min: v, Max: v}
				first = false
				continue
			}
			bb.Min = d2.MinElem(bb.Min, v)
			bb.Max = d2.MaxElem(bb.Max, v)
		}
	}
	return bb
}

func scalePoint(p r2.Vec) *clipper.IntPoint {
	return &clipper.IntPoint{
		X: clipper.Round(p.X * Scale),
		Y: clipper.Round(p.Y * Scale),
	}
}

func toPath(poly Polygon) clipper.Path {
	path := make(clipper.Path, len(poly))
	for i, p := range poly {
		path[i] = scalePoint(p)
	}
	return path
}

func toPaths(set PolygonSet) clipper.Paths {
	paths := make(clipper.Paths, 0, len(set))
	for _, poly := range set {
		if len(poly) < 3 {
			continue
		}
		paths = append(paths, toPath(poly))
	}
	return paths
}

func fromPaths(paths clipper.Paths) PolygonSet {
	if len(paths) == 0 {
		return nil
	}
	set := make(PolygonSet, 0, len(paths))
	for _, path := range paths {
		if len(path) < 3 {
			continue
		}
		poly := make(Polygon, len(path))
		for i, ip := range path {
			poly[i] = r2.Vec{X: float64(ip.X) / Scale, Y: float64(ip.Y) / Scale}
		}
		set = append(set, poly)
	}
	return set
}
