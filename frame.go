package planeclip

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// Frame is an orthonormal basis defining a planar 2D coordinate system
// embedded in 3D space. Right, Up and Normal are unit vectors with
// Normal = Right × Up.
type Frame struct {
	Origin r3.Vec
	Right  r3.Vec
	Up     r3.Vec
	Normal r3.Vec
}

var (
	errFrameBasis = errors.New("planeclip: frame basis is not orthonormal")
	errZeroNormal = errors.New("planeclip: zero-length plane normal")
)

// NewFrame returns the frame spanned by right and up at origin. The
// normal is computed as right × up. Errors if right and up are not unit
// length or not perpendicular.
func NewFrame(origin, right, up r3.Vec) (Frame, error) {
	if math.Abs(r3.Norm(right)-1) > tolerance ||
		math.Abs(r3.Norm(up)-1) > tolerance ||
		math.Abs(r3.Dot(right, up)) > tolerance {
		return Frame{}, errFrameBasis
	}
	return Frame{
		Origin: origin,
		Right:  right,
		Up:     up,
		Normal: r3.Cross(right, up),
	}, nil
}

// FrameFromNormal builds a frame on the plane through origin with the
// given normal, which need not be unit length. The in-plane basis is
// chosen deterministically: the world axis least aligned with the normal
// is projected onto the plane and becomes Right.
func FrameFromNormal(origin, normal r3.Vec) (Frame, error) {
	n := r3.Norm(normal)
	if n == 0 {
		return Frame{}, errZeroNormal
	}
	nrm := r3.Scale(1/n, normal)
	seed := r3.Vec{X: 1}
	ax, ay, az := math.Abs(nrm.X), math.Abs(nrm.Y), math.Abs(nrm.Z)
	switch {
	case ay <= ax && ay <= az:
		seed = r3.Vec{Y: 1}
	case az <= ax && az <= ay:
		seed = r3.Vec{Z: 1}
	}
	right := r3.Unit(r3.Sub(seed, r3.Scale(r3.Dot(seed, nrm), nrm)))
	return Frame{
		Origin: origin,
		Right:  right,
		Up:     r3.Cross(nrm, right),
		Normal: nrm,
	}, nil
}

// Project returns the orthogonal projection of p onto the frame's plane.
func (f Frame) Project(p r3.Vec) r3.Vec {
	d := r3.Dot(r3.Sub(p, f.Origin), f.Normal)
	return r3.Sub(p, r3.Scale(d, f.Normal))
}

// ToLocal maps a point lying on the frame's plane to frame coordinates.
// Points off the plane lose their normal component silently; project
// first if that matters.
func (f Frame) ToLocal(p r3.Vec) r2.Vec {
	v := r3.Sub(p, f.Origin)
	return r2.Vec{X: r3.Dot(v, f.Right), Y: r3.Dot(v, f.Up)}
}

// ToWorld maps a frame coordinate back to world space. ToWorld and
// ToLocal are exact inverses for points on the plane, up to
// floating-point precision.
func (f Frame) ToWorld(p r2.Vec) r3.Vec {
	return r3.Add(f.Origin, r3.Add(r3.Scale(p.X, f.Right), r3.Scale(p.Y, f.Up)))
}
