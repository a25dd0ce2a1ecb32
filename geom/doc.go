// Copyright © 2024 Galvanized Logic Inc.

// Package geom provides the vector, plane, and convex-polygon kernel used
// by the beam-tracing engine. It is the lowest layer: every higher
// package (bsp, beam, trace) builds on the numerically stable primitives
// defined here and shares a single family of epsilons (Tolerances) so
// that plane-classification, ray-parallel, and area-pruning decisions
// stay consistent across the whole engine.
//
// Package geom is provided as part of the beamtrace3d acoustic
// beam-tracing engine.
package geom

// Design Notes:
//
// 1) Vector3 methods take pointer receivers, write their result into the
//    receiver, and return the receiver so calls can chain. This avoids
//    allocating a new Vector3 per operation in the hot paths (BSP/beam
//    construction and per-listener-query validation).
//
// 2) Polygon, Plane, and clipping operate at a higher level and build new
//    slices/values rather than mutate in place, since their inputs are
//    shared (a polygon may be split or clipped many times from many
//    callers) and must not be corrupted by one caller's result.
//
// 3) Every epsilon lives in Tolerances. Do not sprinkle literals.
