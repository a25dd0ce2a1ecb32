package trace

import (
	"github.com/10log/beamtrace3d/beam"
	"github.com/10log/beamtrace3d/geom"
)

// BeamView is a read-only snapshot of one beam-tree node's geometry, for
// callers that want to render the beam tree. It is never produced for
// the root (which has no aperture).
type BeamView struct {
	VirtualSource    geom.Vector3
	ApertureVertices []geom.Vector3
	ReflectionOrder  int
	PolygonID        int
}

// collectBeamViews walks every non-root node up to maxOrder (<= 0
// meaning no limit) and appends a BeamView per node with an aperture.
func collectBeamViews(node *beam.Node, maxOrder int, out []BeamView) []BeamView {
	if node.ReflectingID != -1 && (maxOrder <= 0 || node.Depth <= maxOrder) {
		out = append(out, BeamView{
			VirtualSource:    node.VirtualSource,
			ApertureVertices: append([]geom.Vector3{}, node.Aperture.Vertices...),
			ReflectionOrder:  node.Depth,
			PolygonID:        node.ReflectingID,
		})
	}
	if maxOrder > 0 && node.Depth >= maxOrder {
		return out
	}
	for _, child := range node.Children {
		out = collectBeamViews(child, maxOrder, out)
	}
	return out
}
