// SPDX-License-Identifier: MIT

// Package mst computes minimum spanning trees of graph.WeightedGraph values.
//
// What & Why
//
//   - A spanning tree of a connected undirected graph is an acyclic edge subset
//     that connects every vertex; a minimum spanning tree (MST) has the least
//     total weight among them. For n vertices it has exactly n-1 edges.
//   - Uses: cheapest network/cabling layouts, clustering by cutting heavy
//     edges, lower bounds for tour problems.
//
// Algorithms Provided
//
//   - Prim(g, start): grows one tree from start using a frontier.PriorityQueue
//     of candidate edges ordered by weight. On a disconnected graph it returns
//     the spanning tree of start's component only.
//     Time O(E log E), memory O(V + E).
//
//   - Kruskal(g): sorts all edges by weight and merges components with a
//     disjoint-set (union by rank, path compression). Returns a spanning forest
//     covering every component.
//     Time O(E log E), memory O(V + E).
//
// Edges are returned in the order they were added to the tree, oriented from
// the tree side to the newly reached vertex (Prim) or as stored (Kruskal).
// Self-loops never enter a tree.
//
// Errors
//
//   - ErrStartOutOfRange: Prim's start is not a valid vertex index ("no result").
package mst
