package beam

import "github.com/10log/beamtrace3d/geom"

// buildBoundaryPlanes builds the cone of planes a listener must stay
// inside (all signed distances >= -eps) to legitimately see virtualSource
// through aperture: one plane per aperture edge through virtualSource,
// oriented so the aperture's own centroid is in front, plus the
// aperture's own plane oriented so virtualSource is behind it.
func buildBoundaryPlanes(virtualSource geom.Vector3, aperture *geom.Polygon, tol geom.Tolerances) []geom.Plane {
	centroid := aperture.Centroid()
	n := len(aperture.Vertices)
	planes := make([]geom.Plane, 0, n+1)

	for i := 0; i < n; i++ {
		a := aperture.Vertices[i]
		b := aperture.Vertices[(i+1)%n]
		pl := geom.PlaneFromPoints(&virtualSource, &a, &b, tol)
		if pl.SignedDistance(&centroid) < 0 {
			pl = pl.Flip()
		}
		planes = append(planes, pl)
	}

	aperturePlane := aperture.Plane
	if aperturePlane.SignedDistance(&virtualSource) > 0 {
		aperturePlane = aperturePlane.Flip()
	}
	planes = append(planes, aperturePlane)
	return planes
}
