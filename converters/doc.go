// SPDX-License-Identifier: MIT

// Package converters exports lvsearch graphs to gonum/graph so that gonum's
// algorithm suite (shortest paths, spanning trees, topology, community
// detection, …) can run on the same data.
//
// Mapping
//
//   - Vertex index i becomes simple.Node(i); every vertex is added, isolated
//     ones included.
//   - Self-loops are dropped (gonum simple graphs reject them).
//   - Parallel edges collapse into one gonum edge; for weighted graphs the
//     minimum weight is kept.
//
// Vertex values are not carried over; use the node ID as the index into
// Graph.Vertices().
package converters
