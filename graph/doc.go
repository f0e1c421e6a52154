// SPDX-License-Identifier: MIT

// Package graph provides an index-addressed, append-only, undirected
// adjacency-list graph over arbitrary comparable vertex values, with
// connected-component analysis and maximum-clique search.
//
// What
//
//   - Graph[V]:         vertices []V plus one adjacency list of Edge per vertex.
//   - WeightedGraph[V]: the same representation with WeightedEdge (consumed by mst).
//   - AddEdge(u, v) inserts (u,v) into u's list and (v,u) into v's list, so
//     every stored edge has its mirror. A self-loop therefore appears twice in
//     its vertex's list.
//   - ComponentOf / ConnectedComponents: goal-less BFS from one vertex.
//   - ConnectedGroups: partition of all vertices into components, largest first.
//   - Search / LongestConnectedComponent: explicit-stack clique growth with a
//     memo of already-seen candidate sets, returning a maximum clique.
//   - HasCycle: forest test; self-loops and parallel edges count as cycles.
//
// Vertex identity
//
//	Vertices are addressed by index; the index returned by AddVertex is the
//	handle. AddVertex never deduplicates, so two vertices may hold the same
//	value. Value-based helpers (IndexOf, AddEdgeByVertices, NeighborsForVertex,
//	ConnectedComponents) require the value to be unique and fail with
//	ErrAmbiguousVertex otherwise, or ErrVertexNotFound when it is absent.
//
// Guarantees
//
//   - len(edges) == len(vertices) at all times.
//   - every stored edge's endpoints are valid indices.
//   - vertices and edges are only appended, never removed.
//
// Errors
//
//   - ErrVertexNotFound    value lookup found no vertex.
//   - ErrAmbiguousVertex   value lookup found more than one vertex.
//   - ErrIndexOutOfRange   an edge endpoint index is invalid.
//   - ErrBadWeight         a weight is NaN.
//
// Index accessors (VertexAt, EdgesForIndex, NeighborsForIndex, ComponentOf,
// Search) panic on an invalid index, like slice indexing.
//
// Concurrency
//
//	No internal locking. Concurrent reads are safe; any mutation requires
//	external synchronization.
//
// Complexity (V = |vertices|, E = |edges|)
//
//   - AddVertex, AddEdge:            O(1) amortized.
//   - IndexOf, AddEdgeByVertices:    O(V).
//   - ComponentOf:                   O(V + E).
//   - ConnectedGroups, HasCycle:     O((V + E) + V log V).
//   - Search:                        exponential in the worst case; the memo
//     bounds the work to the number of distinct cliques grown from the start.
package graph
