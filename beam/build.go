package beam

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/10log/beamtrace3d/geom"
)

// Build constructs the beam tree for polys (the solver's full, ordered
// polygon list, indices doubling as polygon IDs) and source, down to
// maxReflectionOrder. The root's first-order children -- one per
// source-facing polygon -- are computed concurrently since each only
// reads the shared, immutable polys slice; every deeper level is built
// serially by buildSubtree, and the leaf list is flattened afterward in
// polygon-index order so construction order never depends on goroutine
// scheduling.
func Build(polys []geom.Polygon, source geom.Vector3, maxReflectionOrder int, tol geom.Tolerances) (*Tree, error) {
	if maxReflectionOrder < 0 {
		return nil, fmt.Errorf("beam: maxReflectionOrder must be >= 0, got %d", maxReflectionOrder)
	}

	root := &Node{VirtualSource: source, ReflectingID: -1}
	tree := &Tree{Root: root}
	if maxReflectionOrder == 0 {
		return tree, nil
	}

	firstOrder := make([]*Node, len(polys))
	g, _ := errgroup.WithContext(context.Background())
	for i := range polys {
		i := i
		g.Go(func() error {
			if !facesPoint(&polys[i], &root.VirtualSource) {
				return nil
			}
			aperture := polys[i]
			firstOrder[i] = newBeamNode(root, i, &aperture, tol)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for _, child := range firstOrder {
		if child != nil {
			root.Children = append(root.Children, child)
		}
	}
	for _, child := range root.Children {
		buildSubtree(child, polys, maxReflectionOrder, tol)
	}

	tree.Leaves = collectLeaves(root)
	return tree, nil
}

// buildSubtree recurses one reflection order deeper: forbid immediate
// re-reflection off node's own polygon, quick-reject reflectors entirely
// outside node's boundary cone, skip reflectors back-facing node's
// virtual source, clip the survivor against the boundary cone, and
// reject a vanishingly small resulting aperture.
func buildSubtree(node *Node, polys []geom.Polygon, maxReflectionOrder int, tol geom.Tolerances) {
	if node.Depth >= maxReflectionOrder {
		return
	}
	for i := range polys {
		if i == node.ReflectingID {
			continue
		}
		q := &polys[i]
		if geom.QuickRejectOutside(q, node.BoundaryPlanes, tol) {
			continue
		}
		if !facesPoint(q, &node.VirtualSource) {
			continue
		}
		clipped := geom.ClipPolygon(q, node.BoundaryPlanes, tol)
		if clipped == nil {
			continue
		}
		if clipped.Area() < tol.MinApertureArea {
			continue
		}
		node.Children = append(node.Children, newBeamNode(node, i, clipped, tol))
	}
	for _, child := range node.Children {
		buildSubtree(child, polys, maxReflectionOrder, tol)
	}
}

// facesPoint reports whether poly's normal points toward point from
// poly's centroid: normal . (point - centroid) > 0.
func facesPoint(poly *geom.Polygon, point *geom.Vector3) bool {
	centroid := poly.Centroid()
	toPoint := geom.NewVector3().Sub(point, &centroid)
	normal := poly.Plane.Normal()
	return normal.Dot(toPoint) > 0
}

// newBeamNode mirrors parent's virtual source through aperture's plane
// to build the child's virtual source, then derives its boundary planes.
func newBeamNode(parent *Node, reflectingID int, aperture *geom.Polygon, tol geom.Tolerances) *Node {
	vs := aperture.Plane.MirrorPoint(&parent.VirtualSource)
	node := &Node{
		VirtualSource: vs,
		ReflectingID:  reflectingID,
		Aperture:      aperture,
		Parent:        parent,
		Depth:         parent.Depth + 1,
	}
	node.BoundaryPlanes = buildBoundaryPlanes(vs, aperture, tol)
	return node
}

// collectLeaves flattens the tree into a stable, contiguous leaf slice
// in deterministic (polygon-index-ordered) traversal order.
func collectLeaves(node *Node) []*Node {
	if len(node.Children) == 0 {
		if node.ReflectingID != -1 {
			return []*Node{node}
		}
		return nil
	}
	var leaves []*Node
	for _, child := range node.Children {
		leaves = append(leaves, collectLeaves(child)...)
	}
	return leaves
}
