package trace

import (
	"math"

	"github.com/10log/beamtrace3d/beam"
	"github.com/10log/beamtrace3d/geom"
)

// checkFailPlaneCache reports whether node carries a fail plane and, if
// so, whether listener is still on its invalid (negative) side. A true
// second return without the first means the cache is stale and must be
// discarded by the caller before re-validating.
func checkFailPlaneCache(node *beam.Node, listener *geom.Vector3) (stillInvalid, hasCache bool) {
	if node.FailPlane == nil {
		return false, false
	}
	return node.FailPlane.SignedDistance(listener) < 0, true
}

// computeFailPlane caches the plane that explains why listener failed to
// validate against leaf node: prefer the reflecting polygon's own plane
// (oriented so the node's virtual source is in front) if listener falls
// behind it; otherwise scan the node's boundary planes -- edge planes
// first, then the aperture plane -- for the first one that classifies
// listener strictly behind.
func computeFailPlane(node *beam.Node, listener geom.Vector3, reflectingPoly *geom.Polygon, tol geom.Tolerances) {
	oriented := reflectingPoly.Plane
	if oriented.SignedDistance(&node.VirtualSource) < 0 {
		oriented = oriented.Flip()
	}
	if oriented.SignedDistance(&listener) < 0 {
		node.FailPlane = &oriented
		node.FailKind = beam.FailPolygon
		return
	}

	for i, bp := range node.BoundaryPlanes {
		if bp.SignedDistance(&listener) < -tol.PlaneClassify {
			plane := bp
			node.FailPlane = &plane
			if i == len(node.BoundaryPlanes)-1 {
				node.FailKind = beam.FailAperture
			} else {
				node.FailKind = beam.FailEdge
			}
			return
		}
	}
}

// failPlaneMargin returns |signedDistance(listener, node.FailPlane)|,
// used by skip-sphere construction to size the new sphere's radius.
func failPlaneMargin(node *beam.Node, listener geom.Vector3) float64 {
	return math.Abs(node.FailPlane.SignedDistance(&listener))
}
