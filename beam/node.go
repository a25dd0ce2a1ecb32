package beam

import "github.com/10log/beamtrace3d/geom"

// FailKind tags why a listener failed to see a leaf's virtual source: by
// the reflecting polygon's own plane, by one of the beam's edge planes,
// or by its aperture plane. A tagged variant is all the dispatch this
// needs; no interface/polymorphism is warranted.
type FailKind int

const (
	FailNone FailKind = iota
	FailPolygon
	FailEdge
	FailAperture
)

// Node is a beam-tree node. The root has ReflectingID -1, a VirtualSource
// equal to the real source, and no Aperture/BoundaryPlanes. Every other
// node reflects off polygon ReflectingID: VirtualSource is the real
// source mirrored through the chain of reflector planes down to this
// node, Aperture is the reflector clipped to the parent beam, and
// BoundaryPlanes bound the cone a listener must be inside to see this
// virtual source through that aperture.
//
// FailPlane/FailKind are mutated by the solver's fail-plane cache
// (trace package), not by Build; they start zero-valued on every node.
type Node struct {
	VirtualSource  geom.Vector3
	ReflectingID   int
	Aperture       *geom.Polygon
	BoundaryPlanes []geom.Plane
	Parent         *Node
	Children       []*Node
	Depth          int

	FailPlane *geom.Plane
	FailKind  FailKind
}

// IsLeaf reports whether n has no children and isn't the root (root has
// ReflectingID -1 and is never itself a candidate path).
func (n *Node) IsLeaf() bool { return len(n.Children) == 0 && n.ReflectingID != -1 }

// Tree is the full beam tree plus its leaves flattened into a stable,
// contiguous slice -- the representation trace's buildBuckets partitions.
type Tree struct {
	Root   *Node
	Leaves []*Node
}
