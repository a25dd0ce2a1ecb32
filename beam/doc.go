// Copyright © 2024 Galvanized Logic Inc.

// Package beam builds the beam tree: the image-source tree whose nodes
// carry a mirrored source position and a convex polyhedral cone (the
// beam) bounding the region of space that can see that image through the
// chain of reflectors leading to it.
//
// Construction is one-shot and happens once per trace.Solver; the tree's
// topology is never changed once Build returns, and only the per-node
// FailPlane/FailKind fields are mutated afterward, by the trace package's
// fail-plane cache. The first-order fan out (one child per polygon facing
// the root source) runs concurrently via golang.org/x/sync/errgroup,
// since each branch only reads the shared, immutable polygon list; every deeper
// level is built serially, both because the branching factor drops off
// quickly past first order and because query-time determinism (spec
// requires stable path ordering) is easiest to reason about when only
// the outermost fan-out is concurrent.
package beam
