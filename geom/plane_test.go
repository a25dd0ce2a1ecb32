package geom

import "testing"

func TestPlaneFromPoints(t *testing.T) {
	tol := DefaultTolerances()
	p0 := NewVector3S(0, 0, 0)
	p1 := NewVector3S(1, 0, 0)
	p2 := NewVector3S(0, 1, 0)
	pl := PlaneFromPoints(p0, p1, p2, tol)
	n := pl.Normal()
	if diff := n.Z - 1; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("normal = %v, want (0,0,1)", n)
	}
}

func TestPlaneSignedDistance(t *testing.T) {
	pl := NewPlane(0, 0, 1, 0) // z = 0 plane, normal +z.
	above := NewVector3S(0, 0, 5)
	below := NewVector3S(0, 0, -5)
	if pl.SignedDistance(above) <= 0 {
		t.Errorf("point above plane should have positive distance")
	}
	if pl.SignedDistance(below) >= 0 {
		t.Errorf("point below plane should have negative distance")
	}
}

func TestPlaneFlip(t *testing.T) {
	pl := NewPlane(0, 0, 1, -2)
	flipped := pl.Flip()
	p := NewVector3S(0, 0, 5)
	if pl.SignedDistance(p) != -flipped.SignedDistance(p) {
		t.Errorf("Flip should negate signed distance")
	}
}

func TestPlaneMirrorPoint(t *testing.T) {
	pl := NewPlane(0, 0, 1, 0) // z=0 plane.
	p := NewVector3S(1, 2, 5)
	mirrored := pl.MirrorPoint(p)
	want := NewVector3S(1, 2, -5)
	if !mirrored.Eq(want) {
		t.Errorf("MirrorPoint(%v) = %v, want %v", p, mirrored, want)
	}
}

func TestRayPlaneIntersect(t *testing.T) {
	tol := DefaultTolerances()
	pl := NewPlane(0, 0, 1, 0)
	origin := NewVector3S(0, 0, 10)
	dir := NewVector3S(0, 0, -1)
	tVal, ok := RayPlaneIntersect(origin, dir, pl, tol)
	if !ok {
		t.Fatalf("expected intersection")
	}
	if tVal != 10 {
		t.Errorf("t = %v, want 10", tVal)
	}
}

func TestRayPlaneIntersectParallel(t *testing.T) {
	tol := DefaultTolerances()
	pl := NewPlane(0, 0, 1, 0)
	origin := NewVector3S(0, 0, 10)
	dir := NewVector3S(1, 0, 0)
	_, ok := RayPlaneIntersect(origin, dir, pl, tol)
	if ok {
		t.Errorf("expected no intersection for parallel ray")
	}
}

func TestMirrorPlaneAcrossPlaneRoundTrip(t *testing.T) {
	tol := DefaultTolerances()
	src := NewPlane(1, 0, 0, -3) // x = 3 plane.
	mirror := NewPlane(1, 0, 0, 0) // x = 0 plane.

	mirrored := MirrorPlaneAcrossPlane(src, mirror, tol)

	// Mirroring x=3 across x=0 should produce x=-3, i.e. normal (1,0,0), d=3 or (-1,0,0), d=-3.
	p := NewVector3S(-3, 5, 7)
	if diff := mirrored.SignedDistance(p); diff > 1e-6 || diff < -1e-6 {
		t.Errorf("mirrored plane should pass through x=-3, got signed distance %v", diff)
	}

	// Round trip: mirroring back across the same plane should recover src.
	back := MirrorPlaneAcrossPlane(mirrored, mirror, tol)
	p0 := NewVector3S(3, 1, 1)
	if diff := back.SignedDistance(p0); diff > 1e-6 || diff < -1e-6 {
		t.Errorf("round-tripped plane should pass back through x=3, got signed distance %v", diff)
	}
}
