// SPDX-License-Identifier: MIT

package graph

import (
	"fmt"
	"math"
)

// WeightedGraph is an undirected graph whose edges carry a float64 weight.
type WeightedGraph[V comparable] struct {
	adjacency[V, WeightedEdge]
}

// NewWeighted returns a weighted graph holding vertices and no edges.
func NewWeighted[V comparable](vertices ...V) *WeightedGraph[V] {
	return &WeightedGraph[V]{adjacency: newAdjacency[V, WeightedEdge](vertices)}
}

// AddEdge connects the vertices at indices u and v with the given weight.
// Returns ErrIndexOutOfRange for invalid indices and ErrBadWeight for NaN.
func (g *WeightedGraph[V]) AddEdge(u, v int, weight float64) error {
	if math.IsNaN(weight) {
		return fmt.Errorf("%w: edge %d-%d", ErrBadWeight, u, v)
	}

	return g.insert(WeightedEdge{U: u, V: v, Weight: weight})
}

// AddEdgeByVertices connects the vertices holding values u and v.
// Both values must be present exactly once.
func (g *WeightedGraph[V]) AddEdgeByVertices(u, v V, weight float64) error {
	ui, vi, err := g.resolve(u, v)
	if err != nil {
		return err
	}

	return g.AddEdge(ui, vi, weight)
}

// NeighborsForIndexWithWeights returns the neighbors of vertex i together with
// the weight of the connecting edge, in insertion order.
func (g *WeightedGraph[V]) NeighborsForIndexWithWeights(i int) []Neighbor[V] {
	out := make([]Neighbor[V], len(g.edges[i]))
	for k, e := range g.edges[i] {
		out[k] = Neighbor[V]{Index: e.V, Vertex: g.vertices[e.V], Weight: e.Weight}
	}

	return out
}

// NeighborsForVertexWithWeights is NeighborsForIndexWithWeights for the vertex holding v.
func (g *WeightedGraph[V]) NeighborsForVertexWithWeights(v V) ([]Neighbor[V], error) {
	i, err := g.IndexOf(v)
	if err != nil {
		return nil, err
	}

	return g.NeighborsForIndexWithWeights(i), nil
}

// Unweighted returns a Graph with the same vertices and adjacency lists,
// weights dropped.
func (g *WeightedGraph[V]) Unweighted() *Graph[V] {
	out := New(g.vertices...)
	for u, es := range g.edges {
		list := make([]Edge, len(es))
		for k, e := range es {
			list[k] = Edge{U: e.U, V: e.V}
		}
		out.edges[u] = list
	}

	return out
}
