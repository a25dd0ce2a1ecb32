package bsp

import "github.com/10log/beamtrace3d/geom"

// IndexedPolygon pairs a polygon with a stable ID. IDs let RayTrace
// exclude the polygon a ray originates on; fragments produced by
// splitting keep the ID of the polygon they came from.
type IndexedPolygon struct {
	Polygon geom.Polygon
	ID      int
}

// Node is a BSP tree node. A leaf carries no splitter and holds every
// polygon bucketed there (at most one polygon, or several that are all
// coplanar with each other); an interior node carries a Splitter plane, the
// polygons lying exactly in that plane (Coplanar), and a Front/Back
// subtree.
type Node struct {
	Splitter geom.Plane
	Coplanar []IndexedPolygon
	Front    *Node
	Back     *Node
	Leaf     []IndexedPolygon
}

// IsLeaf reports whether n has no Front/Back children.
func (n *Node) IsLeaf() bool { return n.Front == nil && n.Back == nil }
