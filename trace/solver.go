package trace

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/google/uuid"

	"github.com/10log/beamtrace3d/beam"
	"github.com/10log/beamtrace3d/bsp"
	"github.com/10log/beamtrace3d/geom"
)

// Solver owns one geometry's BSP tree and beam tree and answers listener
// queries against them. A Solver is single-threaded and cooperative:
// GetPaths is synchronous, and no method may be called concurrently on
// the same Solver. Construction is the only expensive step; queries
// reuse the cache carried on the beam tree's nodes and buckets.
type Solver struct {
	id     uuid.UUID
	logger *slog.Logger

	polys    []geom.Polygon
	source   geom.Vector3
	config   Config
	tol      geom.Tolerances
	bspTree  *bsp.Node
	beamTree *beam.Tree
	buckets  []*Bucket

	// intermediateNodes are non-leaf beam-tree nodes with an aperture:
	// early-terminated lower-order reflections the leaf-only bucket
	// pipeline would otherwise never attempt.
	intermediateNodes []*beam.Node

	lastMetrics Metrics
}

// NewSolver validates polygons and config, builds the BSP tree and beam
// tree, and partitions the beam tree's leaves into skip-sphere buckets.
// Construction-time failures are returned as errors; nothing past this
// point ever fails.
func NewSolver(polygons []geom.Polygon, source geom.Vector3, config Config) (*Solver, error) {
	if err := config.validate(); err != nil {
		return nil, err
	}
	tol := geom.DefaultTolerances()
	for i := range polygons {
		if err := validateInputPolygon(&polygons[i], tol); err != nil {
			return nil, fmt.Errorf("trace: polygon %d: %w", i, err)
		}
	}

	id := uuid.New()
	logger := slog.Default().With("solver", id.String())

	indexed := make([]bsp.IndexedPolygon, len(polygons))
	for i, p := range polygons {
		indexed[i] = bsp.IndexedPolygon{Polygon: p, ID: i}
	}
	bspTree := bsp.Build(indexed, tol)

	beamTree, err := beam.Build(polygons, source, config.MaxReflectionOrder, tol)
	if err != nil {
		return nil, fmt.Errorf("trace: %w", err)
	}

	buckets := buildBuckets(beamTree.Leaves, config.BucketSize)

	s := &Solver{
		id:                id,
		logger:            logger,
		polys:             polygons,
		source:            source,
		config:            config,
		tol:               tol,
		bspTree:           bspTree,
		beamTree:          beamTree,
		buckets:           buckets,
		intermediateNodes: collectIntermediateNodes(beamTree.Root),
	}
	logger.Debug("solver constructed",
		"polygons", len(polygons),
		"leaves", len(beamTree.Leaves),
		"buckets", len(buckets),
		"intermediateNodes", len(s.intermediateNodes),
	)
	return s, nil
}

// validateInputPolygon checks a caller-supplied polygon's vertex count,
// coplanarity, and area against its own cached plane -- built
// independently of geom.Validate so the trace package can return its
// own distinguishable sentinel errors.
func validateInputPolygon(p *geom.Polygon, tol geom.Tolerances) error {
	if len(p.Vertices) < 3 {
		return ErrTooFewVertices
	}
	for i := range p.Vertices {
		if math.Abs(p.Plane.SignedDistance(&p.Vertices[i])) >= tol.Coplanarity {
			return ErrNonCoplanar
		}
	}
	if p.Area() < tol.MinApertureArea {
		return ErrDegenerateArea
	}
	return nil
}

// collectIntermediateNodes returns every non-leaf node with an aperture,
// in deterministic tree order, computed once at construction time since
// beam-tree topology never changes after Build.
func collectIntermediateNodes(node *beam.Node) []*beam.Node {
	var out []*beam.Node
	if node.ReflectingID != -1 && len(node.Children) > 0 {
		out = append(out, node)
	}
	for _, child := range node.Children {
		out = append(out, collectIntermediateNodes(child)...)
	}
	return out
}

// GetPaths returns every valid, unoccluded reflection path from source
// to listener: the direct path (if unoccluded), every intermediate-order
// path terminated early in the beam tree, and every leaf whose full
// validation succeeds. Leaves that a fail plane or their bucket's skip
// sphere still rules out are not validated again.
func (s *Solver) GetPaths(listener geom.Vector3) []Path {
	ctx := &queryMetrics{}
	var paths []Path

	if path, ok := validateDirect(listener, s.source, s.bspTree, s.tol, ctx); ok {
		paths = append(paths, path)
	}

	for _, node := range s.intermediateNodes {
		if path, ok := validatePath(listener, s.source, node, s.bspTree, s.polys, s.tol, ctx); ok {
			paths = append(paths, path)
		}
	}

	bucketsSkipped := 0
	validate := func(node *beam.Node) (Path, bool) {
		return validatePath(listener, s.source, node, s.bspTree, s.polys, s.tol, ctx)
	}
	for _, b := range s.buckets {
		found, skipped := processBucket(b, listener, s.polys, s.tol, ctx, validate)
		if skipped {
			bucketsSkipped++
			continue
		}
		paths = append(paths, found...)
	}

	s.lastMetrics = Metrics{
		TotalLeafNodes:       len(s.beamTree.Leaves),
		BucketsTotal:         len(s.buckets),
		BucketsSkipped:       bucketsSkipped,
		BucketsChecked:       len(s.buckets) - bucketsSkipped,
		FailPlaneCacheHits:   ctx.failPlaneCacheHits,
		FailPlaneCacheMisses: ctx.failPlaneCacheMisses,
		RaycastCount:         ctx.raycastCount,
		SkipSphereCount:      s.countActiveSkipSpheres(),
		ValidPathCount:       len(paths),
	}
	s.logger.Debug("getPaths", "validPaths", len(paths), "raycasts", ctx.raycastCount)
	return paths
}

func (s *Solver) countActiveSkipSpheres() int {
	count := 0
	for _, b := range s.buckets {
		if b.SkipSphere != nil {
			count++
		}
	}
	return count
}

// GetDetailedPaths is GetPaths enriched with per-segment and
// per-reflection geometry, using Config's SpeedOfSound and
// GrazingThresholdDegrees.
func (s *Solver) GetDetailedPaths(listener geom.Vector3) []DetailedPath {
	return s.GetDetailedPathsAtSpeed(listener, s.config.SpeedOfSound)
}

// GetDetailedPathsAtSpeed is GetDetailedPaths with an overridden speed
// of sound for arrival-time computation.
func (s *Solver) GetDetailedPathsAtSpeed(listener geom.Vector3, speedOfSound float64) []DetailedPath {
	paths := s.GetPaths(listener)
	detailed := make([]DetailedPath, len(paths))
	for i, p := range paths {
		detailed[i] = buildDetailedPath(p, s.polys, speedOfSound, s.config.GrazingThresholdDegrees)
	}
	return detailed
}

// GetMetrics returns a snapshot reflecting the most recent GetPaths (or
// GetDetailedPaths) call.
func (s *Solver) GetMetrics() Metrics { return s.lastMetrics }

// ClearCache erases every leaf's fail plane and every bucket's skip
// sphere without altering tree topology.
func (s *Solver) ClearCache() {
	for _, leaf := range s.beamTree.Leaves {
		leaf.FailPlane = nil
		leaf.FailKind = beam.FailNone
	}
	for _, b := range s.buckets {
		b.SkipSphere = nil
	}
}

// GetLeafNodeCount returns the number of leaves in the beam tree.
func (s *Solver) GetLeafNodeCount() int { return len(s.beamTree.Leaves) }

// GetMaxReflectionOrder returns the solver's configured K.
func (s *Solver) GetMaxReflectionOrder() int { return s.config.MaxReflectionOrder }

// GetSourcePosition returns the real source position the Solver was built with.
func (s *Solver) GetSourcePosition() geom.Vector3 { return s.source }

// GetBeamsForVisualization returns a read-only view of every beam-tree
// node with an aperture, up to maxOrder (0 means no limit).
func (s *Solver) GetBeamsForVisualization(maxOrder int) []BeamView {
	return collectBeamViews(s.beamTree.Root, maxOrder, nil)
}
