package bsp

import (
	"math"

	"github.com/10log/beamtrace3d/geom"
)

// RayTrace finds the nearest polygon the ray (origin, dir) hits, walking
// the tree near-side first so the first hit found at an interior node is
// always the globally nearest one. excludePolyID lets the solver cast a
// ray starting exactly on a known polygon (the last reflector) without
// that polygon re-reporting itself as the nearest hit.
func RayTrace(root *Node, origin, dir *geom.Vector3, excludePolyID int, tol geom.Tolerances) (geom.Hit, *IndexedPolygon, bool) {
	return RayTraceRange(root, origin, dir, 0, math.Inf(1), excludePolyID, tol)
}

// RayTraceRange is RayTrace restricted to hits with t in [tMin, tMax]: the
// form the path validator (trace package) uses to test a segment between
// two known points for an occluder, excluding the polygon the segment
// starts on.
func RayTraceRange(root *Node, origin, dir *geom.Vector3, tMin, tMax float64, excludePolyID int, tol geom.Tolerances) (geom.Hit, *IndexedPolygon, bool) {
	if root == nil {
		return geom.Hit{}, nil, false
	}
	return rayTraceRange(root, origin, dir, tMin, tMax, excludePolyID, tol)
}

func rayTraceRange(node *Node, origin, dir *geom.Vector3, tMin, tMax float64, excludePolyID int, tol geom.Tolerances) (geom.Hit, *IndexedPolygon, bool) {
	if node.IsLeaf() {
		return nearestHit(node.Leaf, origin, dir, tMin, tMax, excludePolyID, tol)
	}

	sd := node.Splitter.SignedDistance(origin)
	nearChild, farChild := node.Front, node.Back
	if sd < 0 {
		nearChild, farChild = node.Back, node.Front
	}

	tSplit, ok := geom.RayPlaneIntersect(origin, dir, node.Splitter, tol)
	if !ok {
		// Ray runs parallel to the splitter: it never leaves the side
		// origin started on.
		if nearChild != nil {
			if hit, poly, found := rayTraceRange(nearChild, origin, dir, tMin, tMax, excludePolyID, tol); found {
				return hit, poly, found
			}
		}
		return nearestHit(node.Coplanar, origin, dir, tMin, tMax, excludePolyID, tol)
	}

	if tSplit >= 0 && tSplit <= tMin {
		if farChild != nil {
			return rayTraceRange(farChild, origin, dir, tMin, tMax, excludePolyID, tol)
		}
		return geom.Hit{}, nil, false
	}
	if tSplit < 0 || tSplit >= tMax {
		if nearChild != nil {
			return rayTraceRange(nearChild, origin, dir, tMin, tMax, excludePolyID, tol)
		}
		return geom.Hit{}, nil, false
	}

	if nearChild != nil {
		if hit, poly, found := rayTraceRange(nearChild, origin, dir, tMin, tSplit, excludePolyID, tol); found {
			return hit, poly, found
		}
	}
	if hit, poly, found := nearestHit(node.Coplanar, origin, dir, tSplit-tol.PlaneClassify, tSplit+tol.PlaneClassify, excludePolyID, tol); found {
		return hit, poly, found
	}
	if farChild != nil {
		return rayTraceRange(farChild, origin, dir, tSplit, tMax, excludePolyID, tol)
	}
	return geom.Hit{}, nil, false
}

// nearestHit tests ray (origin, dir) against every polygon in polys whose
// ID isn't excludePolyID, returning the one with smallest t in [tMin,tMax].
func nearestHit(polys []IndexedPolygon, origin, dir *geom.Vector3, tMin, tMax float64, excludePolyID int, tol geom.Tolerances) (geom.Hit, *IndexedPolygon, bool) {
	var best geom.Hit
	var bestPoly *IndexedPolygon
	found := false
	for i := range polys {
		if polys[i].ID == excludePolyID {
			continue
		}
		hit, ok := geom.RayPolygonIntersect(origin, dir, &polys[i].Polygon, tol)
		if !ok || hit.T < tMin || hit.T > tMax {
			continue
		}
		if !found || hit.T < best.T {
			best, bestPoly, found = hit, &polys[i], true
		}
	}
	return best, bestPoly, found
}
