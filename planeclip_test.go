package planeclip_test

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/qleary/planeclip"
)

// sideFrame looks along +X: local x maps to world y, local y to world z.
func sideFrame(t testing.TB) planeclip.Frame {
	return mustFrame(t, r3.Vec{X: 5, Y: 3, Z: 2}, r3.Vec{Y: 1}, r3.Vec{Z: 1})
}

// localQuad returns the world corners of an axis-aligned rectangle given
// in frame coordinates.
func localQuad(f planeclip.Frame, x0, y0, x1, y1 float64) []r3.Vec {
	return []r3.Vec{
		f.ToWorld(r2.Vec{X: x0, Y: y0}),
		f.ToWorld(r2.Vec{X: x1, Y: y0}),
		f.ToWorld(r2.Vec{X: x1, Y: y1}),
		f.ToWorld(r2.Vec{X: x0, Y: y1}),
	}
}

// cutterBox builds a world box whose footprint on f is the given local
// rectangle, extruded one unit along the frame normal.
func cutterBox(f planeclip.Frame, x0, y0, x1, y1 float64) []r3.Vec {
	lo := f.ToWorld(r2.Vec{X: x0, Y: y0})
	hi := r3.Add(f.ToWorld(r2.Vec{X: x1, Y: y1}), f.Normal)
	return planeclip.BoxCorners(r3.Box{Min: lo, Max: hi})
}

func toLocal(f planeclip.Frame, loop planeclip.Loop) planeclip.Polygon {
	poly := make(planeclip.Polygon, len(loop))
	for i, p := range loop {
		poly[i] = f.ToLocal(p)
	}
	return poly
}

func TestSubtractLShape(t *testing.T) {
	f := sideFrame(t)
	region := localQuad(f, 0, 0, 1, 1)
	cutter := cutterBox(f, 0.5, 0.5, 1.5, 1.5)

	loops := planeclip.Subtract(f, [][]r3.Vec{region}, [][]r3.Vec{cutter}, 0)
	if len(loops) != 1 || len(loops[0]) != 1 {
		t.Fatalf("got %d regions / %v loops, want 1 region with 1 loop", len(loops), loops)
	}
	loop := loops[0][0]
	if a := loop.Area(f.Normal); math.Abs(a-0.75) > tol {
		t.Errorf("loop area = %v, want 0.75", a)
	}
	want := planeclip.Polygon{
		{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 0.5},
		{X: 0.5, Y: 0.5}, {X: 0.5, Y: 1}, {X: 0, Y: 1},
	}
	if got := toLocal(f, loop); !cyclicEqual(got, want, tol) {
		t.Errorf("loop = %v, want L-shape %v", got, want)
	}
}

func TestSubtractWithOffset(t *testing.T) {
	f := sideFrame(t)
	region := localQuad(f, 0, 0, 1, 1)
	cutter := cutterBox(f, 0.5, 0.5, 1.5, 1.5)

	// Growing the cutter footprint by 0.25 leaves 1 - 0.75² of the
	// region: corners are orthogonal, so the miter offset is exact.
	loops := planeclip.Subtract(f, [][]r3.Vec{region}, [][]r3.Vec{cutter}, 0.25)
	if len(loops[0]) != 1 {
		t.Fatalf("got %v loops, want 1", loops[0])
	}
	if a := loops[0][0].Area(f.Normal); math.Abs(a-0.4375) > tol {
		t.Errorf("remainder area = %v, want 0.4375", a)
	}
}

func TestSubtractNoCutters(t *testing.T) {
	f := sideFrame(t)
	region := localQuad(f, 0, 0, 2, 1)
	loops := planeclip.Subtract(f, [][]r3.Vec{region}, nil, 0)
	if len(loops[0]) != 1 {
		t.Fatalf("got %v loops, want region back unchanged", loops[0])
	}
	if a := loops[0][0].Area(f.Normal); math.Abs(a-2) > tol {
		t.Errorf("area = %v, want 2", a)
	}
}

func TestSubtractConsumesRegion(t *testing.T) {
	f := sideFrame(t)
	region := localQuad(f, 0, 0, 1, 1)
	cutter := cutterBox(f, -1, -1, 2, 2)
	loops := planeclip.Subtract(f, [][]r3.Vec{region}, [][]r3.Vec{cutter}, 0)
	if len(loops[0]) != 0 {
		t.Errorf("covered region returned loops %v, want none", loops[0])
	}
}

func TestSubtractMultipleRegionsAndCutters(t *testing.T) {
	f := sideFrame(t)
	regions := [][]r3.Vec{
		localQuad(f, 0, 0, 1, 1),
		localQuad(f, 3, 0, 4, 1), // untouched by any cutter
	}
	cutters := [][]r3.Vec{
		cutterBox(f, -0.5, 0.25, 0.25, 0.75),
		cutterBox(f, 0.75, 0.25, 1.5, 0.75),
	}
	loops := planeclip.Subtract(f, regions, cutters, 0)
	if len(loops) != 2 {
		t.Fatalf("got %d region results, want 2", len(loops))
	}
	var area float64
	for _, l := range loops[0] {
		area += l.Area(f.Normal)
	}
	// Each cutter bites a 0.25x0.5 notch out of opposite sides.
	if want := 1 - 2*0.25*0.5; math.Abs(area-want) > tol {
		t.Errorf("first region remainder area = %v, want %v", area, want)
	}
	if len(loops[1]) != 1 {
		t.Fatalf("second region: got %v loops, want 1", loops[1])
	}
	if a := loops[1][0].Area(f.Normal); math.Abs(a-1) > tol {
		t.Errorf("second region area = %v, want 1", a)
	}
}

func TestSubtractDegenerateCutter(t *testing.T) {
	f := sideFrame(t)
	region := localQuad(f, 0, 0, 1, 1)
	// All cutter points project onto one line: no usable footprint.
	flat := []r3.Vec{
		f.ToWorld(r2.Vec{X: 0.2, Y: 0.2}),
		f.ToWorld(r2.Vec{X: 0.8, Y: 0.8}),
		r3.Add(f.ToWorld(r2.Vec{X: 0.5, Y: 0.5}), f.Normal),
	}
	loops := planeclip.Subtract(f, [][]r3.Vec{region}, [][]r3.Vec{flat}, 0)
	if len(loops[0]) != 1 {
		t.Fatalf("got %v loops, want untouched region", loops[0])
	}
	if a := loops[0][0].Area(f.Normal); math.Abs(a-1) > tol {
		t.Errorf("area = %v, want 1", a)
	}
}
