// Package planeclip subtracts the projected outlines of 3D elements from
// planar boundary regions.
//
// A region lives on a plane described by an orthonormal Frame. Each
// subtractor element is reduced to a 3D point cloud (typically the 8
// corners of its bounding box), projected onto the plane, and replaced by
// the convex hull of its footprint. The hulls are merged into a single
// region with a polygon boolean union, optionally grown or shrunk by a
// miter offset, and subtracted from each target region. Surviving
// contours are lifted back to world space as cleaned, closed boundary
// loops.
//
// All polygon boolean arithmetic runs in a fixed-precision integer domain
// (see Scale) for numerical robustness.
package planeclip

import (
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/qleary/planeclip/internal/d3"
)

// BoxCorners reduces a bounding box to its 8 corner points, the usual
// cutter representation consumed by Subtract.
func BoxCorners(b r3.Box) []r3.Vec {
	c := d3.BoxCorners(b)
	return c[:]
}

// Subtract runs the full pipeline once: project, hull and union the
// cutter point clouds, offset the union by distance (positive grows,
// negative shrinks, zero skips the offset pass) and subtract the result
// from every region.
//
// It returns one slice of loops per input region, in order. An empty
// slice is a valid outcome meaning the region was consumed entirely or
// collapsed below 3 vertices after cleaning; callers should skip such
// regions rather than treat them as failures. Output loops wind
// counter-clockwise about frame.Normal.
func Subtract(frame Frame, regions, cutters [][]r3.Vec, distance float64) [][]Loop {
	clip := cutterOutline(frame, cutters, distance)
	out := make([][]Loop, len(regions))
	for i, region := range regions {
		out[i] = subtractRegion(frame, region, clip)
	}
	return out
}

// cutterOutline reduces the cutter point clouds to a single offset
// region in frame coordinates. Cutters whose footprint degenerates to
// fewer than 3 hull vertices contribute nothing.
func cutterOutline(frame Frame, cutters [][]r3.Vec, distance float64) PolygonSet {
	var hulls PolygonSet
	for _, pts := range cutters {
		local := make([]r2.Vec, len(pts))
		for i, p := range pts {
			local[i] = frame.ToLocal(frame.Project(p))
		}
		hull := ConvexHull(local)
		if len(hull) < 3 {
			continue
		}
		hulls = append(hulls, hull)
	}
	if len(hulls) == 0 {
		return nil
	}
	merged := Union(hulls, NonZero)
	if distance == 0 {
		return merged
	}
	grown := make(PolygonSet, len(merged))
	for i, poly := range merged {
		grown[i] = Offset(poly, distance)
	}
	return grown
}

// subtractRegion clips a single region against the cutter outline and
// lifts the remainder back to world space.
func subtractRegion(frame Frame, region []r3.Vec, clip PolygonSet) []Loop {
	local := make(Polygon, len(region))
	for i, p := range region {
		local[i] = frame.ToLocal(frame.Project(p))
	}
	remain := Combine(PolygonSet{local}, clip, OpDifference, NonZero)
	loops := make([]Loop, 0, len(remain))
	for _, poly := range remain {
		world := make([]r3.Vec, len(poly))
		for i, p := range poly {
			world[i] = frame.ToWorld(p)
		}
		loop, ok := CleanLoop(world, frame.Normal, DefaultDedupeTolerance)
		if !ok {
			continue
		}
		loops = append(loops, loop)
	}
	return loops
}
