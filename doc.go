// SPDX-License-Identifier: MIT

// Package lvsearch is an in-memory toolkit of generic search and graph
// algorithms, parameterized over any comparable state or vertex type.
//
// Subpackages:
//
//	frontier/     Stack, Queue and PriorityQueue containers
//	search/       search-tree Node, DFS, BFS, A* and UniformCost over callbacks
//	graph/        index-addressed Graph / WeightedGraph, components, groups, cliques
//	mst/          Prim and Kruskal minimum spanning trees
//	gridgraph/    2D grids as implicit graphs: islands, shortest and cheapest paths
//	builder/      deterministic int-vertex fixtures for tests and benchmarks
//	converters/   export to gonum graphs
//
// Quick start:
//
//	g := graph.New("a", "b", "c")
//	_ = g.AddEdgeByVertices("a", "b")
//	groups := g.ConnectedGroups() // [[a b] [c]]
//
//	node, err := search.BFS(start, isGoal, successors)
//	if errors.Is(err, search.ErrNoSolution) { ... }
//	path := node.Path()
//
// Everything is single-threaded and synchronous; algorithms report through
// return values and optional hooks, never through logging.
package lvsearch
