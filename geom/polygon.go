package geom

import (
	"fmt"
	"math"
)

// Polygon is an ordered sequence of coplanar vertices in counter-clockwise
// order viewed from the front (the side its Plane's normal points to).
// Assumed convex. Material is an optional descriptive tag carried through
// clipping and splitting unchanged.
type Polygon struct {
	Vertices []Vector3
	Plane    Plane
	Material string
}

// NewPolygon builds and validates a polygon from its vertices, computing
// the plane with Newell's method (robust for any coplanar, convex vertex
// ordering, not just the first three). Returns an error for fewer than 3
// vertices, non-coplanar vertices, or zero area.
func NewPolygon(vertices []Vector3, material string, tol Tolerances) (Polygon, error) {
	if len(vertices) < 3 {
		return Polygon{}, fmt.Errorf("geom: polygon needs at least 3 vertices, got %d", len(vertices))
	}
	plane := newellPlane(vertices, tol)
	for i, v := range vertices {
		v := v
		if math.Abs(plane.SignedDistance(&v)) >= tol.Coplanarity {
			return Polygon{}, fmt.Errorf("geom: vertex %d is not coplanar (distance >= %g)", i, tol.Coplanarity)
		}
	}
	poly := Polygon{Vertices: append([]Vector3{}, vertices...), Plane: plane, Material: material}
	if poly.Area() < tol.MinApertureArea {
		return Polygon{}, fmt.Errorf("geom: polygon has zero area")
	}
	return poly, nil
}

// newellPlane computes a polygon's plane equation from all of its
// vertices using Newell's method, which stays accurate even when the
// first three vertices happen to be near-collinear.
func newellPlane(vertices []Vector3, tol Tolerances) Plane {
	var normal, centroid Vector3
	n := len(vertices)
	for i := 0; i < n; i++ {
		cur := vertices[i]
		next := vertices[(i+1)%n]
		normal.X += (cur.Y - next.Y) * (cur.Z + next.Z)
		normal.Y += (cur.Z - next.Z) * (cur.X + next.X)
		normal.Z += (cur.X - next.X) * (cur.Y + next.Y)
		centroid.X += cur.X
		centroid.Y += cur.Y
		centroid.Z += cur.Z
	}
	normal.Unit(tol)
	centroid.Scale(&centroid, 1.0/float64(n))
	d := -normal.Dot(&centroid)
	return Plane{normal.X, normal.Y, normal.Z, d}
}

// Validate checks an already-constructed Polygon against the same rules
// NewPolygon enforces, against its own cached Plane rather than
// recomputing one, so a polygon built as a struct literal can be checked
// as strictly as one built by NewPolygon.
func Validate(poly *Polygon, tol Tolerances) error {
	if len(poly.Vertices) < 3 {
		return fmt.Errorf("geom: polygon needs at least 3 vertices, got %d", len(poly.Vertices))
	}
	normal := poly.Plane.Normal()
	if math.Abs(normal.Len()-1) >= tol.NormalUnit {
		return fmt.Errorf("geom: polygon plane normal is not unit length")
	}
	for i := range poly.Vertices {
		if math.Abs(poly.Plane.SignedDistance(&poly.Vertices[i])) >= tol.Coplanarity {
			return fmt.Errorf("geom: vertex %d is not coplanar (distance >= %g)", i, tol.Coplanarity)
		}
	}
	if poly.Area() < tol.MinApertureArea {
		return fmt.Errorf("geom: polygon has zero area")
	}
	return nil
}

// Centroid returns the arithmetic mean of the polygon's vertices. Exact
// for convex polygons when used as the aperture centroid in boundary
// plane construction (beam.buildBoundaryPlanes).
func (p *Polygon) Centroid() Vector3 {
	var c Vector3
	for i := range p.Vertices {
		c.X += p.Vertices[i].X
		c.Y += p.Vertices[i].Y
		c.Z += p.Vertices[i].Z
	}
	n := float64(len(p.Vertices))
	c.Scale(&c, 1/n)
	return c
}

// Area returns the polygon's area via a triangle fan from vertex 0.
func (p *Polygon) Area() float64 {
	if len(p.Vertices) < 3 {
		return 0
	}
	var sum Vector3
	v0 := p.Vertices[0]
	for i := 1; i+1 < len(p.Vertices); i++ {
		e1 := NewVector3().Sub(&p.Vertices[i], &v0)
		e2 := NewVector3().Sub(&p.Vertices[i+1], &v0)
		cross := NewVector3().Cross(e1, e2)
		sum.Add(&sum, cross)
	}
	return 0.5 * sum.Len()
}

// Side classifies a polygon (or a single point) relative to a plane.
type Side int

const (
	Front Side = iota
	Back
	Coplanar
	Spanning
)

// classifyPoint classifies a single point against a plane using
// tol.PlaneClassify as the coplanar band.
func classifyPoint(v *Vector3, pl Plane, tol Tolerances) Side {
	sd := pl.SignedDistance(v)
	switch {
	case sd > tol.PlaneClassify:
		return Front
	case sd < -tol.PlaneClassify:
		return Back
	default:
		return Coplanar
	}
}

// ClassifyPolygonVsPlane classifies an entire polygon against a plane by
// tallying each vertex's classification: Front/Back if every vertex
// agrees, Coplanar if every vertex is within the coplanar band, Spanning
// if vertices fall on both sides.
func ClassifyPolygonVsPlane(poly *Polygon, pl Plane, tol Tolerances) Side {
	numFront, numBack := 0, 0
	for i := range poly.Vertices {
		switch classifyPoint(&poly.Vertices[i], pl, tol) {
		case Front:
			numFront++
		case Back:
			numBack++
		}
	}
	switch {
	case numFront == 0 && numBack == 0:
		return Coplanar
	case numBack == 0:
		return Front
	case numFront == 0:
		return Back
	default:
		return Spanning
	}
}

// SplitPolygon splits poly by plane pl, returning the front piece and/or
// back piece (either may be nil if poly lies entirely on one side once
// split, which ClassifyPolygonVsPlane's caller should usually have
// avoided by only calling SplitPolygon on Spanning polygons). Edge
// crossings are interpolated with t = -sd(a)/(sd(b)-sd(a)), clamped to
// (0,1).
func SplitPolygon(poly *Polygon, pl Plane, tol Tolerances) (front, back *Polygon) {
	var frontVerts, backVerts []Vector3
	n := len(poly.Vertices)
	for i := 0; i < n; i++ {
		a := poly.Vertices[i]
		b := poly.Vertices[(i+1)%n]
		sideA := classifyPoint(&a, pl, tol)
		sideB := classifyPoint(&b, pl, tol)

		if sideA != Back {
			frontVerts = append(frontVerts, a)
		}
		if sideA != Front {
			backVerts = append(backVerts, a)
		}
		if (sideA == Front && sideB == Back) || (sideA == Back && sideB == Front) {
			sdA, sdB := pl.SignedDistance(&a), pl.SignedDistance(&b)
			t := -sdA / (sdB - sdA)
			if t < 0 {
				t = 0
			} else if t > 1 {
				t = 1
			}
			var cross Vector3
			cross.Lerp(&a, &b, t)
			frontVerts = append(frontVerts, cross)
			backVerts = append(backVerts, cross)
		}
	}
	if len(frontVerts) >= 3 {
		f := &Polygon{Vertices: frontVerts, Plane: poly.Plane, Material: poly.Material}
		front = f
	}
	if len(backVerts) >= 3 {
		b := &Polygon{Vertices: backVerts, Plane: poly.Plane, Material: poly.Material}
		back = b
	}
	return front, back
}

// Hit is a ray-polygon (or ray-BSP) intersection result.
type Hit struct {
	T     float64
	Point Vector3
}

// RayPolygonIntersect intersects the ray (origin, dir) -- dir already
// unit length -- with poly: first against poly's plane, then tests the
// hit point for polygon membership via the consistent-sign rule on cross
// products against each edge.
func RayPolygonIntersect(origin, dir *Vector3, poly *Polygon, tol Tolerances) (Hit, bool) {
	t, ok := RayPlaneIntersect(origin, dir, poly.Plane, tol)
	if !ok {
		return Hit{}, false
	}
	point := NewVector3().Scale(dir, t)
	point.Add(point, origin)

	normal := poly.Plane.Normal()
	n := len(poly.Vertices)
	sign := 0.0
	for i := 0; i < n; i++ {
		a := poly.Vertices[i]
		b := poly.Vertices[(i+1)%n]
		edge := NewVector3().Sub(&b, &a)
		toPoint := NewVector3().Sub(point, &a)
		cross := NewVector3().Cross(edge, toPoint)
		s := cross.Dot(&normal)
		switch {
		case s < -tol.PlaneClassify:
			if sign > 0 {
				return Hit{}, false
			}
			sign = -1
		case s > tol.PlaneClassify:
			if sign < 0 {
				return Hit{}, false
			}
			sign = 1
		}
	}
	return Hit{T: t, Point: *point}, true
}

// QuickRejectOutside reports whether poly is entirely outside the convex
// region bounded by planes (i.e. every vertex is behind some single plane
// in the list). Used to cheaply skip a reflector before attempting the
// more expensive Sutherland-Hodgman clip.
func QuickRejectOutside(poly *Polygon, planes []Plane, tol Tolerances) bool {
	for _, pl := range planes {
		allBehind := true
		for i := range poly.Vertices {
			if pl.SignedDistance(&poly.Vertices[i]) >= -tol.PlaneClassify {
				allBehind = false
				break
			}
		}
		if allBehind {
			return true
		}
	}
	return false
}
