package trace

import (
	"github.com/10log/beamtrace3d/beam"
	"github.com/10log/beamtrace3d/bsp"
	"github.com/10log/beamtrace3d/geom"
)

// validateDirect implements the order-0 path: a single BSP ray from
// listener to source, rejected if anything hits strictly before the
// source.
func validateDirect(listener, source geom.Vector3, bspTree *bsp.Node, tol geom.Tolerances, ctx *queryMetrics) (Path, bool) {
	dist := listener.Dist(&source)
	dir := geom.NewVector3().Sub(&source, &listener)
	dir.Unit(tol)

	if !occluded(bspTree, &listener, dir, tol.DistanceOffset, dist-tol.DistanceOffset, -1, tol, ctx) {
		return Path{Points: []PathPoint{{Position: listener}, {Position: source}}}, true
	}
	return Path{}, false
}

// validatePath walks from the listener to node's virtual source,
// reflecting off node's own polygon, then node.Parent's, and so on up to
// the root, finishing with a leg to the real source. node may be a
// beam-tree leaf (full reflection order) or any intermediate node with
// an aperture (an early-terminated lower-order path).
func validatePath(listener, source geom.Vector3, node *beam.Node, bspTree *bsp.Node, polys []geom.Polygon, tol geom.Tolerances, ctx *queryMetrics) (Path, bool) {
	points := []PathPoint{{Position: listener}}
	currentPoint := listener
	currentNode := node
	prevPolyID := -1

	for currentNode.ReflectingID != -1 {
		dir := geom.NewVector3().Sub(&currentNode.VirtualSource, &currentPoint)
		dir.Unit(tol)
		if dir.Eq(&geom.Vector3{}) {
			return Path{}, false
		}

		poly := &polys[currentNode.ReflectingID]
		hit, ok := geom.RayPolygonIntersect(&currentPoint, dir, poly, tol)
		if !ok || hit.T < 0 {
			return Path{}, false
		}

		if occluded(bspTree, &currentPoint, dir, tol.DistanceOffset, hit.T-tol.DistanceOffset, prevPolyID, tol, ctx) {
			return Path{}, false
		}

		id := currentNode.ReflectingID
		points = append(points, PathPoint{Position: hit.Point, PolygonID: &id})
		currentPoint = hit.Point
		prevPolyID = currentNode.ReflectingID
		currentNode = currentNode.Parent
	}

	dist := currentPoint.Dist(&source)
	dir := geom.NewVector3().Sub(&source, &currentPoint)
	dir.Unit(tol)
	if occluded(bspTree, &currentPoint, dir, tol.DistanceOffset, dist-tol.DistanceOffset, prevPolyID, tol, ctx) {
		return Path{}, false
	}

	points = append(points, PathPoint{Position: source})
	return Path{Points: points}, true
}

// occluded casts a bounded BSP ray and reports whether anything blocks
// [tMin, tMax]. A degenerate (empty or inverted) range is trivially
// unoccluded -- the two endpoints coincide closely enough that no
// occluder could fit between them.
func occluded(bspTree *bsp.Node, origin, dir *geom.Vector3, tMin, tMax float64, excludePolyID int, tol geom.Tolerances, ctx *queryMetrics) bool {
	if tMax <= tMin {
		return false
	}
	ctx.raycastCount++
	_, _, hit := bsp.RayTraceRange(bspTree, origin, dir, tMin, tMax, excludePolyID, tol)
	return hit
}
