package bsp

import (
	"testing"

	"github.com/10log/beamtrace3d/geom"
)

func TestRayTraceHitsRightWall(t *testing.T) {
	tol := geom.DefaultTolerances()
	walls := shoeboxWalls(t, tol)
	tree := Build(walls, tol)

	origin := geom.NewVector3S(1, 1, 1)
	dir := geom.NewVector3S(1, 0, 0)
	hit, poly, ok := RayTrace(tree, origin, dir, -1, tol)
	if !ok {
		t.Fatalf("expected a hit")
	}
	if poly.Polygon.Material != "right" {
		t.Errorf("hit material = %q, want right", poly.Polygon.Material)
	}
	if diff := hit.T - 1; diff > 1e-6 || diff < -1e-6 {
		t.Errorf("hit.T = %v, want 1", hit.T)
	}
}

func TestRayTraceExcludesOriginPolygon(t *testing.T) {
	tol := geom.DefaultTolerances()
	walls := shoeboxWalls(t, tol)
	tree := Build(walls, tol)

	// Cast from a point exactly on the floor plane, straight down, and
	// exclude the floor's own ID so it isn't re-detected as the hit.
	origin := geom.NewVector3S(1, 0, 1)
	dir := geom.NewVector3S(0, -1, 0)
	_, _, ok := RayTrace(tree, origin, dir, 0, tol)
	if ok {
		t.Errorf("expected no hit once the floor below is excluded and the ray points away from all geometry")
	}
}

func TestRayTraceMissesWhenOutsideBounds(t *testing.T) {
	tol := geom.DefaultTolerances()
	walls := shoeboxWalls(t, tol)
	tree := Build(walls, tol)

	origin := geom.NewVector3S(10, 10, 10)
	dir := geom.NewVector3S(1, 1, 1)
	dir.Unit(tol)
	_, _, ok := RayTrace(tree, origin, dir, -1, tol)
	if ok {
		t.Errorf("expected no hit firing away from the box")
	}
}

func TestRayTraceNearestOfMultipleCandidates(t *testing.T) {
	tol := geom.DefaultTolerances()
	walls := shoeboxWalls(t, tol)
	tree := Build(walls, tol)

	// From center heading toward the front wall (z=2); should not
	// erroneously report the back wall (z=0) behind the origin.
	origin := geom.NewVector3S(1, 1, 1)
	dir := geom.NewVector3S(0, 0, 1)
	hit, poly, ok := RayTrace(tree, origin, dir, -1, tol)
	if !ok {
		t.Fatalf("expected a hit")
	}
	if poly.Polygon.Material != "front" {
		t.Errorf("hit material = %q, want front", poly.Polygon.Material)
	}
	if diff := hit.T - 1; diff > 1e-6 || diff < -1e-6 {
		t.Errorf("hit.T = %v, want 1", hit.T)
	}
}
