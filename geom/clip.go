package geom

// ClipPolygon clips poly against every plane in planes (Sutherland-
// Hodgman), keeping the region in front of (or coplanar with) each plane
// in turn. Returns nil once the working polygon empties out against any
// plane. Used to compute a child beam's aperture: reflector ∩ parent
// beam's boundary planes (beam.buildSubtree).
func ClipPolygon(poly *Polygon, planes []Plane, tol Tolerances) *Polygon {
	vertices := append([]Vector3{}, poly.Vertices...)

	for _, pl := range planes {
		if len(vertices) == 0 {
			return nil
		}
		var out []Vector3
		n := len(vertices)
		start := vertices[n-1]
		startIn := classifyPoint(&start, pl, tol) != Back
		for i := 0; i < n; i++ {
			end := vertices[i]
			endIn := classifyPoint(&end, pl, tol) != Back

			switch {
			case startIn && endIn:
				out = append(out, end)
			case startIn && !endIn:
				if cross, ok := planeEdgeIntersection(pl, start, end, tol); ok {
					out = append(out, cross)
				}
			case !startIn && endIn:
				if cross, ok := planeEdgeIntersection(pl, start, end, tol); ok {
					out = append(out, cross)
				}
				out = append(out, end)
			}
			start, startIn = end, endIn
		}
		vertices = out
	}

	if len(vertices) < 3 {
		return nil
	}
	return &Polygon{Vertices: vertices, Plane: poly.Plane, Material: poly.Material}
}

// planeEdgeIntersection finds where edge (start,end) crosses plane pl.
func planeEdgeIntersection(pl Plane, start, end Vector3, tol Tolerances) (Vector3, bool) {
	edge := NewVector3().Sub(&end, &start)
	n := pl.Normal()
	denom := n.Dot(edge)
	if denom == 0 {
		return Vector3{}, false
	}
	t := -pl.SignedDistance(&start) / denom
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	var out Vector3
	out.Lerp(&start, &end, t)
	return out, true
}
