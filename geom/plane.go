package geom

import "math"

// Plane is the equation a·x + b·y + c·z + d = 0 with (a,b,c) a unit
// normal. SignedDistance(p) is a·px+b·py+c·pz+d: positive in front of the
// plane (the side the normal points to), negative behind.
type Plane struct {
	A, B, C, D float64
}

// NewPlane builds a plane from raw coefficients. The normal is not
// renormalized; callers constructing planes from already-unit normals
// (the common case) avoid a needless sqrt.
func NewPlane(a, b, c, d float64) Plane { return Plane{a, b, c, d} }

// PlaneFromPoints builds the plane through three points, with a unit
// normal given by (p1-p0) x (p2-p0), normalized.
func PlaneFromPoints(p0, p1, p2 *Vector3, tol Tolerances) Plane {
	e1 := NewVector3().Sub(p1, p0)
	e2 := NewVector3().Sub(p2, p0)
	n := NewVector3().Cross(e1, e2).Unit(tol)
	d := -n.Dot(p0)
	return Plane{n.X, n.Y, n.Z, d}
}

// Normal returns the plane's normal vector (a,b,c).
func (p Plane) Normal() Vector3 { return Vector3{p.X(), p.Y(), p.Z()} }

// X, Y, Z expose the normal components under names that read naturally
// next to Vector3's fields when building one from the other.
func (p Plane) X() float64 { return p.A }
func (p Plane) Y() float64 { return p.B }
func (p Plane) Z() float64 { return p.C }

// SignedDistance returns a·px+b·py+c·pz+d for point v.
func (p Plane) SignedDistance(v *Vector3) float64 { return p.A*v.X + p.B*v.Y + p.C*v.Z + p.D }

// Flip returns the plane with every coefficient negated: same surface,
// opposite front/back orientation.
func (p Plane) Flip() Plane { return Plane{-p.A, -p.B, -p.C, -p.D} }

// MirrorPoint returns v mirrored across the plane: p - 2*sd(p)*n.
func (p Plane) MirrorPoint(v *Vector3) Vector3 {
	n := p.Normal()
	sd := p.SignedDistance(v)
	out := NewVector3().Scale(&n, -2*sd)
	out.Add(out, v)
	return *out
}

// RayPlaneIntersect intersects the ray (origin, dir) with the plane.
// dir is expected to already be a unit vector. Returns the parametric t
// and ok=true, or ok=false if the ray is parallel to the plane
// (|n·dir| < tol.RayParallel).
func RayPlaneIntersect(origin, dir *Vector3, p Plane, tol Tolerances) (t float64, ok bool) {
	n := p.Normal()
	denom := n.Dot(dir)
	if math.Abs(denom) < tol.RayParallel {
		return 0, false
	}
	t = -p.SignedDistance(origin) / denom
	return t, true
}

// MirrorPlaneAcrossPlane reconstructs src mirrored across mirror by
// mirroring three non-collinear points of src and rebuilding the plane
// through them. This is the propagation primitive the fail-plane cache
// (trace package) could use to push a mid-walk failure through the
// remaining reflectors by mirroring; the as-built solver only detects
// fail planes at leaves (see trace/cache.go), so this function exists as
// the spec's own described "latent infrastructure" and is exercised only
// by its round-trip test.
func MirrorPlaneAcrossPlane(src, mirror Plane, tol Tolerances) Plane {
	n := src.Normal()
	p0, p1 := NewVector3(), NewVector3()
	n.Plane(p1, p0) // two vectors perpendicular to n, in the src plane's direction space.

	origin := NewVector3().Scale(&n, -src.D) // a point on src: n*(-d) since |n|=1.
	a := NewVector3().Add(origin, p0)
	b := NewVector3().Add(origin, p1)

	ma := mirror.MirrorPoint(origin)
	mb := mirror.MirrorPoint(a)
	mc := mirror.MirrorPoint(b)
	return PlaneFromPoints(&ma, &mb, &mc, tol)
}

// Plane generates two vectors p and q perpendicular to unit vector v (and
// to each other), spanning the plane through the origin with normal v.
// Used by MirrorPlaneAcrossPlane to recover two extra points on a plane
// given only its equation. Ported from vu/math/lin.V3.Plane, itself based
// on Bullet's btVector3::btPlaneSpace1.
func (v *Vector3) Plane(p, q *Vector3) {
	sqrt12 := 0.7071067811865475244008443621048490
	if math.Abs(v.Z) > sqrt12 {
		a := v.Y*v.Y + v.Z*v.Z
		k := 1 / math.Sqrt(a)
		p.X, p.Y, p.Z = 0, -v.Z*k, v.Y*k
		q.X, q.Y, q.Z = a*k, -v.X*p.Z, v.X*p.Y
	} else {
		a := v.X*v.X + v.Y*v.Y
		k := 1 / math.Sqrt(a)
		p.X, p.Y, p.Z = -v.Y*k, v.X*k, 0
		q.X, q.Y, q.Z = -v.Z*p.Y, v.Z*p.X, a*k
	}
}
