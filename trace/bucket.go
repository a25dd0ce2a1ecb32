package trace

import (
	"github.com/10log/beamtrace3d/beam"
	"github.com/10log/beamtrace3d/geom"
)

// SkipSphere is an open ball around a past listener position inside
// which every leaf in its bucket is guaranteed still to fail.
type SkipSphere struct {
	Center geom.Vector3
	Radius float64
}

// Bucket groups a contiguous run of the beam tree's flattened leaf list.
// Leaves is a sub-slice of that flat list, not a copy, so fail-plane
// state lives on the beam.Node values themselves; the skip sphere lives
// on the Bucket.
type Bucket struct {
	ID         int
	Leaves     []*beam.Node
	SkipSphere *SkipSphere
}

// buildBuckets partitions leaves into contiguous runs of size bucketSize
// (the last one possibly shorter).
func buildBuckets(leaves []*beam.Node, bucketSize int) []*Bucket {
	var buckets []*Bucket
	for i := 0; i < len(leaves); i += bucketSize {
		end := i + bucketSize
		if end > len(leaves) {
			end = len(leaves)
		}
		buckets = append(buckets, &Bucket{ID: len(buckets), Leaves: leaves[i:end]})
	}
	return buckets
}

// processBucket runs the cache-then-validate pipeline over every leaf in
// b. It returns the valid paths found and whether the bucket was
// skipped outright via its skip sphere.
func processBucket(b *Bucket, listener geom.Vector3, polys []geom.Polygon, tol geom.Tolerances, ctx *queryMetrics, validate func(node *beam.Node) (Path, bool)) (paths []Path, skipped bool) {
	if b.SkipSphere != nil {
		if listener.Dist(&b.SkipSphere.Center) < b.SkipSphere.Radius {
			return nil, true
		}
		b.SkipSphere = nil
		for _, leaf := range b.Leaves {
			leaf.FailPlane = nil
			leaf.FailKind = beam.FailNone
		}
	}

	allFailed := true
	allHaveFailPlanes := true
	haveMargin := false
	var minMargin float64

	for _, leaf := range b.Leaves {
		if stillInvalid, hasCache := checkFailPlaneCache(leaf, &listener); hasCache {
			if stillInvalid {
				ctx.failPlaneCacheHits++
				margin := failPlaneMargin(leaf, listener)
				if !haveMargin || margin < minMargin {
					minMargin, haveMargin = margin, true
				}
				continue
			}
			leaf.FailPlane = nil
			leaf.FailKind = beam.FailNone
		}

		ctx.failPlaneCacheMisses++
		path, ok := validate(leaf)
		if ok {
			allFailed = false
			paths = append(paths, path)
			continue
		}

		computeFailPlane(leaf, listener, &polys[leaf.ReflectingID], tol)
		if leaf.FailPlane == nil {
			allHaveFailPlanes = false
			continue
		}
		margin := failPlaneMargin(leaf, listener)
		if !haveMargin || margin < minMargin {
			minMargin, haveMargin = margin, true
		}
	}

	if allFailed && allHaveFailPlanes && haveMargin && minMargin > 1e-10 {
		b.SkipSphere = &SkipSphere{Center: listener, Radius: minMargin}
	}
	return paths, false
}
