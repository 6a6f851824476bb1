package planeclip

import (
	"math"

	"github.com/qleary/planeclip/internal/d3"
	"gonum.org/v1/gonum/spatial/r3"
)

// Loop is a closed planar boundary in world space. Vertices are stored
// in order and the last vertex connects back to the first. Loops built
// by this package wind counter-clockwise about the normal of the frame
// that produced them (positive signed area under the right-hand rule);
// verify this against the winding your destination API expects before
// handing loops over.
type Loop []r3.Vec

// Segments returns the loop's edges as ordered start/end pairs,
// including the closing edge back to the first vertex.
func (l Loop) Segments() [][2]r3.Vec {
	segs := make([][2]r3.Vec, len(l))
	for i := range l {
		segs[i] = [2]r3.Vec{l[i], l[(i+1)%len(l)]}
	}
	return segs
}

// Area returns the loop's signed area about the unit normal n, positive
// when the loop winds counter-clockwise by the right-hand rule.
func (l Loop) Area(n r3.Vec) float64 {
	return d3.SignedAreaAbout(l, n)
}

// CleanLoop rebuilds a closed loop from pts, assumed planar with unit
// normal. Consecutive points closer than dedupeTol collapse to one
// (pass 0 for DefaultDedupeTolerance), vertices whose adjacent edges
// are nearly collinear are dropped, and the result is reversed if
// needed so that it winds counter-clockwise about normal.
//
// ok is false when fewer than 3 vertices survive. That is the expected
// outcome for sliver regions, not an error; callers skip the region.
func CleanLoop(pts []r3.Vec, normal r3.Vec, dedupeTol float64) (loop Loop, ok bool) {
	if dedupeTol <= 0 {
		dedupeTol = DefaultDedupeTolerance
	}

	kept := make([]r3.Vec, 0, len(pts))
	for _, p := range pts {
		if len(kept) > 0 && d3.EqualWithin(kept[len(kept)-1], p, dedupeTol) {
			continue
		}
		kept = append(kept, p)
	}
	// The closing edge can hide one more duplicate.
	for len(kept) > 1 && d3.EqualWithin(kept[0], kept[len(kept)-1], dedupeTol) {
		kept = kept[:len(kept)-1]
	}
	n := len(kept)
	if n < 3 {
		return nil, false
	}

	loop = make(Loop, 0, n)
	for i := 0; i < n; i++ {
		in := r3.Unit(r3.Sub(kept[i], kept[(i+n-1)%n]))
		out := r3.Unit(r3.Sub(kept[(i+1)%n], kept[i]))
		if math.Abs(r3.Dot(in, out)) > collinearDot {
			// Vertex does not meaningfully change direction.
			continue
		}
		loop = append(loop, kept[i])
	}
	if len(loop) < 3 {
		return nil, false
	}

	if d3.SignedAreaAbout(loop, normal) < 0 {
		for i, j := 0, len(loop)-1; i < j; i, j = i+1, j-1 {
			loop[i], loop[j] = loop[j], loop[i]
		}
	}
	return loop, true
}
