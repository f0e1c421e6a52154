// SPDX-License-Identifier: MIT

package graph

// Graph is an unweighted undirected graph over vertex values of type V.
type Graph[V comparable] struct {
	adjacency[V, Edge]
}

// New returns a graph holding vertices at indices 0..len(vertices)-1 and no edges.
func New[V comparable](vertices ...V) *Graph[V] {
	return &Graph[V]{adjacency: newAdjacency[V, Edge](vertices)}
}

// AddEdge connects the vertices at indices u and v.
// Returns ErrIndexOutOfRange if either index is invalid; the graph is unchanged then.
func (g *Graph[V]) AddEdge(u, v int) error {
	return g.insert(Edge{U: u, V: v})
}

// AddEdgeByVertices connects the vertices holding values u and v.
// Both values must be present exactly once (ErrVertexNotFound, ErrAmbiguousVertex).
func (g *Graph[V]) AddEdgeByVertices(u, v V) error {
	ui, vi, err := g.resolve(u, v)
	if err != nil {
		return err
	}

	return g.AddEdge(ui, vi)
}
