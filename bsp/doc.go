// Copyright © 2024 Galvanized Logic Inc.

// Package bsp builds and queries a binary space partition over a set of
// indexed polygons. It is the acceleration structure both the beam tree
// builder (package beam) and the direct-path visibility check (package
// trace) use for first-hit ray queries, so construction happens once per
// Solver and queries stay read-only afterward.
//
// Design notes:
//
//  1. Splitter selection samples up to 10 candidate polygons per node and
//     picks the one minimizing 8*splits + |front-back|, matching the
//     balance-vs-fragmentation heuristic common to BSP compilers (see
//     chooseSplitter).
//  2. Coplanar polygons are bucketed with the splitter itself rather than
//     pushed to one side, so a query crossing that node's plane can test
//     every polygon that actually lies in it.
//  3. RayTrace excludes a caller-supplied polygon ID so the solver can
//     cast a ray from a point lying exactly on a polygon without
//     re-detecting that same polygon as the nearest hit.
package bsp
