package bsp

import (
	"testing"

	"github.com/10log/beamtrace3d/geom"
)

func mustPoly(t *testing.T, verts []geom.Vector3, material string, tol geom.Tolerances) geom.Polygon {
	t.Helper()
	p, err := geom.NewPolygon(verts, material, tol)
	if err != nil {
		t.Fatalf("NewPolygon: %v", err)
	}
	return p
}

func shoeboxWalls(t *testing.T, tol geom.Tolerances) []IndexedPolygon {
	t.Helper()
	// Inward-facing normals: interior spans [0,2]x[0,2]x[0,2].
	floor := mustPoly(t, []geom.Vector3{{0, 0, 0}, {0, 0, 2}, {2, 0, 2}, {2, 0, 0}}, "floor", tol)
	ceiling := mustPoly(t, []geom.Vector3{{0, 2, 0}, {2, 2, 0}, {2, 2, 2}, {0, 2, 2}}, "ceiling", tol)
	left := mustPoly(t, []geom.Vector3{{0, 0, 0}, {0, 2, 0}, {0, 2, 2}, {0, 0, 2}}, "left", tol)
	right := mustPoly(t, []geom.Vector3{{2, 0, 0}, {2, 0, 2}, {2, 2, 2}, {2, 2, 0}}, "right", tol)
	back := mustPoly(t, []geom.Vector3{{0, 0, 0}, {2, 0, 0}, {2, 2, 0}, {0, 2, 0}}, "back", tol)
	front := mustPoly(t, []geom.Vector3{{0, 0, 2}, {0, 2, 2}, {2, 2, 2}, {2, 0, 2}}, "front", tol)

	polys := []geom.Polygon{floor, ceiling, left, right, back, front}
	out := make([]IndexedPolygon, len(polys))
	for i, p := range polys {
		out[i] = IndexedPolygon{Polygon: p, ID: i}
	}
	return out
}

func TestBuildLeafForSinglePolygon(t *testing.T) {
	tol := geom.DefaultTolerances()
	poly := mustPoly(t, []geom.Vector3{{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0}}, "", tol)
	tree := Build([]IndexedPolygon{{Polygon: poly, ID: 0}}, tol)
	if !tree.IsLeaf() {
		t.Errorf("expected a single polygon to produce a leaf node")
	}
	if len(tree.Leaf) != 1 {
		t.Errorf("leaf should contain the one polygon")
	}
}

func TestBuildShoeboxProducesInteriorNodes(t *testing.T) {
	tol := geom.DefaultTolerances()
	walls := shoeboxWalls(t, tol)
	tree := Build(walls, tol)
	if tree.IsLeaf() {
		t.Errorf("expected a 6-wall box to produce interior splits, got a leaf")
	}
}

func TestChooseSplitterSamplesWithinBounds(t *testing.T) {
	tol := geom.DefaultTolerances()
	walls := shoeboxWalls(t, tol)
	idx := chooseSplitter(walls, tol)
	if idx < 0 || idx >= len(walls) {
		t.Fatalf("chooseSplitter returned out-of-range index %d", idx)
	}
}
