// SPDX-License-Identifier: MIT

// Package builder assembles deterministic int-vertex graph fixtures for tests,
// benchmarks and examples.
//
// What:
//
//   - BuildGraph / BuildWeighted run Constructors in order over a fresh
//     *graph.Graph[int] or *graph.WeightedGraph[int].
//   - Topologies: Path, Cycle, Star, Wheel, Complete, Grid, RandomSparse.
//   - Each Constructor appends its own vertices, labelled by their index, so
//     several constructors compose into a disconnected union.
//
// Options:
//
//   - WithSeed / WithRand: RNG for RandomSparse and random weights.
//   - WithWeightFn, WithConstantWeight, WithUniformWeight: edge weight policy,
//     observed by BuildWeighted only.
//
// Option constructors panic on meaningless input. Constructors never panic;
// they return ErrTooFewVertices, ErrInvalidProbability or ErrNeedRandSource
// wrapped with context, and BuildGraph rejects a nil Constructor with
// ErrConstructFailed.
//
// Determinism: same options, seed and constructor order give identical graphs,
// down to adjacency-list order.
package builder
