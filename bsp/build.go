package bsp

import (
	"github.com/10log/beamtrace3d/geom"
)

// maxSplitterCandidates caps how many polygons are sampled when choosing
// a node's splitter, trading tree quality for construction time on large
// polygon counts.
const maxSplitterCandidates = 10

// Build constructs a BSP tree over polys. Construction happens once per
// Solver; queries against the result never mutate it.
func Build(polys []IndexedPolygon, tol geom.Tolerances) *Node {
	return buildNode(polys, tol)
}

// buildNode recursively partitions polys. A node with fewer than two
// polygons, or whose chosen splitter leaves nothing on either side (every
// remaining polygon coplanar with it), becomes a leaf.
func buildNode(polys []IndexedPolygon, tol geom.Tolerances) *Node {
	if len(polys) <= 1 {
		return &Node{Leaf: polys}
	}

	splitterIdx := chooseSplitter(polys, tol)
	splitter := polys[splitterIdx].Polygon.Plane

	var coplanar, front, back []IndexedPolygon
	for _, ip := range polys {
		switch geom.ClassifyPolygonVsPlane(&ip.Polygon, splitter, tol) {
		case geom.Front:
			front = append(front, ip)
		case geom.Back:
			back = append(back, ip)
		case geom.Coplanar:
			coplanar = append(coplanar, ip)
		case geom.Spanning:
			fp, bp := geom.SplitPolygon(&ip.Polygon, splitter, tol)
			if fp != nil {
				front = append(front, IndexedPolygon{Polygon: *fp, ID: ip.ID})
			}
			if bp != nil {
				back = append(back, IndexedPolygon{Polygon: *bp, ID: ip.ID})
			}
		}
	}

	if len(front) == 0 && len(back) == 0 {
		// Every polygon turned out coplanar with the chosen splitter;
		// there is nothing left to divide.
		return &Node{Leaf: coplanar}
	}

	node := &Node{Splitter: splitter, Coplanar: coplanar}
	if len(front) > 0 {
		node.Front = buildNode(front, tol)
	}
	if len(back) > 0 {
		node.Back = buildNode(back, tol)
	}
	return node
}

// chooseSplitter samples up to maxSplitterCandidates polygons from polys
// and picks the one minimizing 8*splits + |front-back|: splits are
// weighted heavily since each one fragments geometry and grows the tree,
// while the remaining term keeps the two subtrees roughly balanced.
func chooseSplitter(polys []IndexedPolygon, tol geom.Tolerances) int {
	n := len(polys)
	step := 1
	if n > maxSplitterCandidates {
		step = (n + maxSplitterCandidates - 1) / maxSplitterCandidates
	}

	best, bestCost := 0, -1
	for i := 0; i < n; i += step {
		candidate := polys[i].Polygon.Plane
		var numFront, numBack, numSplit int
		for j, ip := range polys {
			if j == i {
				continue
			}
			switch geom.ClassifyPolygonVsPlane(&ip.Polygon, candidate, tol) {
			case geom.Front:
				numFront++
			case geom.Back:
				numBack++
			case geom.Spanning:
				numSplit++
			}
		}
		diff := numFront - numBack
		if diff < 0 {
			diff = -diff
		}
		cost := 8*numSplit + diff
		if bestCost < 0 || cost < bestCost {
			best, bestCost = i, cost
		}
	}
	return best
}
