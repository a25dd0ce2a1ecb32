// Copyright © 2024 Galvanized Logic Inc.

package geom

// Vector3 performs 3 element vector math needed for beam tracing.
// Ported in spirit from vu/math/lin.V3: pointer-receiver methods that
// write into and return the receiver, so call chains avoid allocating a
// fresh vector per operation.

import "math"

// Vector3 is a 3 element vector. This can also be used as a point.
type Vector3 struct {
	X float64
	Y float64
	Z float64
}

// NewVector3 returns a new zero vector.
func NewVector3() *Vector3 { return &Vector3{} }

// NewVector3S returns a new vector set to the given values.
func NewVector3S(x, y, z float64) *Vector3 { return &Vector3{x, y, z} }

// Eq (==) returns true if each element in v has the same value as a.
func (v *Vector3) Eq(a *Vector3) bool { return v.X == a.X && v.Y == a.Y && v.Z == a.Z }

// Set (=, copy) sets v to have the same values as a. Returns v.
func (v *Vector3) Set(a *Vector3) *Vector3 {
	v.X, v.Y, v.Z = a.X, a.Y, a.Z
	return v
}

// SetS (=) sets the vector elements to the given values. Returns v.
func (v *Vector3) SetS(x, y, z float64) *Vector3 {
	v.X, v.Y, v.Z = x, y, z
	return v
}

// Neg (-) sets v to the negative of a. Returns v.
func (v *Vector3) Neg(a *Vector3) *Vector3 {
	v.X, v.Y, v.Z = -a.X, -a.Y, -a.Z
	return v
}

// Add (+) sets v = a + b. Returns v.
func (v *Vector3) Add(a, b *Vector3) *Vector3 {
	v.X, v.Y, v.Z = a.X+b.X, a.Y+b.Y, a.Z+b.Z
	return v
}

// Sub (-) sets v = a - b. Returns v.
func (v *Vector3) Sub(a, b *Vector3) *Vector3 {
	v.X, v.Y, v.Z = a.X-b.X, a.Y-b.Y, a.Z-b.Z
	return v
}

// Scale sets v = a * s. Returns v.
func (v *Vector3) Scale(a *Vector3, s float64) *Vector3 {
	v.X, v.Y, v.Z = a.X*s, a.Y*s, a.Z*s
	return v
}

// Dot returns the dot product of v and a.
func (v *Vector3) Dot(a *Vector3) float64 { return v.X*a.X + v.Y*a.Y + v.Z*a.Z }

// Len returns the length (magnitude) of v.
func (v *Vector3) Len() float64 { return math.Sqrt(v.Dot(v)) }

// LenSqr returns the squared length of v. Cheaper than Len when only
// relative magnitude matters.
func (v *Vector3) LenSqr() float64 { return v.Dot(v) }

// Dist returns the distance between v and a.
func (v *Vector3) Dist(a *Vector3) float64 { return math.Sqrt(v.DistSqr(a)) }

// DistSqr returns the squared distance between v and a.
func (v *Vector3) DistSqr(a *Vector3) float64 {
	dx, dy, dz := v.X-a.X, v.Y-a.Y, v.Z-a.Z
	return dx*dx + dy*dy + dz*dz
}

// Cross sets v to the cross product of a and b. Returns v.
func (v *Vector3) Cross(a, b *Vector3) *Vector3 {
	v.X, v.Y, v.Z = a.Y*b.Z-a.Z*b.Y, a.Z*b.X-a.X*b.Z, a.X*b.Y-a.Y*b.X
	return v
}

// Unit normalizes v in place and returns v. A vector whose length is
// below tol.RayParallel (effectively zero) is left as the zero vector
// rather than dividing by a near-zero length.
func (v *Vector3) Unit(tol Tolerances) *Vector3 {
	length := v.Len()
	if length < tol.RayParallel {
		v.X, v.Y, v.Z = 0, 0, 0
		return v
	}
	v.X, v.Y, v.Z = v.X/length, v.Y/length, v.Z/length
	return v
}

// Lerp sets v to the linear interpolation between a and b by fraction.
// Returns v.
func (v *Vector3) Lerp(a, b *Vector3, fraction float64) *Vector3 {
	v.X = (b.X-a.X)*fraction + a.X
	v.Y = (b.Y-a.Y)*fraction + a.Y
	v.Z = (b.Z-a.Z)*fraction + a.Z
	return v
}
