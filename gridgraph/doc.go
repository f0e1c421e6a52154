// SPDX-License-Identifier: MIT

// Package gridgraph treats a 2D grid of integer cells as an implicit graph,
// so that the generic search and graph packages can run over it.
//
// What:
//
//   - GridGraph wraps a rectangular [][]int grid with a tunable LandThreshold.
//   - Successors / Neighbors expose the grid as closures for package search.
//   - ShortestPath (BFS) and CheapestPath (A* with cell values as entry cost).
//   - ToGraph / LandGraph materialize a *graph.Graph[Point].
//   - ConnectedComponents finds islands of land cells.
//   - ExpandIsland computes the fewest water conversions joining two islands.
//
// Complexity:
//
//   - ConnectedComponents: O(W×H×d), Memory: O(W×H)    (d = 4 or 8).
//   - ShortestPath:        O(W×H×d).
//   - CheapestPath:        O(W×H×d × log(W×H)).
//   - ExpandIsland:        O(W×H×d × log(W×H)).
//
// Options:
//
//   - GridOptions.LandThreshold: minimum value considered "land".
//   - GridOptions.Conn: Conn4 (4-neighbors) or Conn8 (8-neighbors).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrOutOfBounds: a point lies outside the grid.
//   - ErrNotLand: a path endpoint is water.
//   - ErrNegativeCost: CheapestPath on a grid with negative land values.
//   - ErrComponentIndex: requested component index out of range.
//   - ErrNoPath: endpoints are not connected.
package gridgraph
