// Copyright © 2024 Galvanized Logic Inc.

// Package trace is the solver orchestration layer of the beam-tracing
// engine: it owns a geometry's BSP tree and beam tree, and for each
// listener query walks candidate beams leaf-to-root (and intermediate
// nodes with an aperture) validating unoccluded, specular paths against
// the real source.
//
// Package trace is provided as part of the beamtrace3d accelerated
// beam-tracing engine, implementing Laine, Siltanen, Lokki & Savioja's
// "Accelerated beam tracing algorithm" (2009).
//
//	geom/            : vector/plane/polygon kernel.
//	bsp/              : BSP tree build + first-hit ray query.
//	beam/             : image-source tree build.
//	trace/config.go   : Config, validated at construction.
//	trace/solver.go   : Solver lifecycle (New, GetPaths, ClearCache, ...).
//	trace/validate.go : listener -> leaf -> source walk.
//	trace/cache.go    : fail-plane detection and cache check.
//	trace/bucket.go   : skip-sphere buckets over the leaf list.
//	trace/path.go     : reflection path and detailed-path types.
//	trace/metrics.go  : per-call metrics snapshot.
//	trace/visual.go   : read-only beam geometry view.
package trace
