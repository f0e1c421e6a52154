// SPDX-License-Identifier: MIT

package graph

import (
	"fmt"
	"strings"
)

// adjacency is the vertex list plus per-vertex edge lists shared by Graph and
// WeightedGraph. Its exported methods are promoted to both.
type adjacency[V comparable, E edge[E]] struct {
	vertices []V
	edges    [][]E
}

func newAdjacency[V comparable, E edge[E]](vertices []V) adjacency[V, E] {
	a := adjacency[V, E]{
		vertices: make([]V, 0, len(vertices)),
		edges:    make([][]E, 0, len(vertices)),
	}
	for _, v := range vertices {
		a.AddVertex(v)
	}

	return a
}

// AddVertex appends v with an empty adjacency list and returns its index.
// Values are not deduplicated.
func (a *adjacency[V, E]) AddVertex(v V) int {
	a.vertices = append(a.vertices, v)
	a.edges = append(a.edges, nil)

	return len(a.vertices) - 1
}

// insert stores e in its source list and the mirrored edge in its target list.
func (a *adjacency[V, E]) insert(e E) error {
	u, v := e.Endpoints()
	if err := a.checkIndex(u); err != nil {
		return err
	}
	if err := a.checkIndex(v); err != nil {
		return err
	}
	a.edges[u] = append(a.edges[u], e)
	a.edges[v] = append(a.edges[v], e.Reversed())

	return nil
}

func (a *adjacency[V, E]) checkIndex(i int) error {
	if i < 0 || i >= len(a.vertices) {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrIndexOutOfRange, i, len(a.vertices))
	}
	return nil
}

// IndexOf returns the index of the single vertex holding v.
// Returns ErrVertexNotFound if none does and ErrAmbiguousVertex if several do.
func (a *adjacency[V, E]) IndexOf(v V) (int, error) {
	idx := -1
	for i, x := range a.vertices {
		if x != v {
			continue
		}
		if idx >= 0 {
			return -1, fmt.Errorf("%w: %v at indices %d and %d", ErrAmbiguousVertex, v, idx, i)
		}
		idx = i
	}
	if idx < 0 {
		return -1, fmt.Errorf("%w: %v", ErrVertexNotFound, v)
	}

	return idx, nil
}

// resolve maps two vertex values to their indices.
func (a *adjacency[V, E]) resolve(u, v V) (int, int, error) {
	ui, err := a.IndexOf(u)
	if err != nil {
		return -1, -1, err
	}
	vi, err := a.IndexOf(v)
	if err != nil {
		return -1, -1, err
	}

	return ui, vi, nil
}

// VertexCount returns the number of vertices.
func (a *adjacency[V, E]) VertexCount() int { return len(a.vertices) }

// EdgeCount returns the number of undirected edges (each mirrored pair counts once).
func (a *adjacency[V, E]) EdgeCount() int {
	total := 0
	for _, es := range a.edges {
		total += len(es)
	}

	return total / 2
}

// VertexAt returns the value of the vertex at index i.
func (a *adjacency[V, E]) VertexAt(i int) V { return a.vertices[i] }

// Vertices returns a copy of the vertex values in index order.
func (a *adjacency[V, E]) Vertices() []V {
	return append([]V(nil), a.vertices...)
}

// EdgesForIndex returns a copy of the adjacency list of vertex i.
func (a *adjacency[V, E]) EdgesForIndex(i int) []E {
	return append([]E(nil), a.edges[i]...)
}

// NeighborIndices returns the target index of every edge leaving vertex i,
// in insertion order. Parallel edges yield repeated indices.
func (a *adjacency[V, E]) NeighborIndices(i int) []int {
	out := make([]int, len(a.edges[i]))
	for k, e := range a.edges[i] {
		_, out[k] = e.Endpoints()
	}

	return out
}

// NeighborsForIndex returns the values of the vertices adjacent to vertex i.
func (a *adjacency[V, E]) NeighborsForIndex(i int) []V {
	out := make([]V, len(a.edges[i]))
	for k, e := range a.edges[i] {
		_, v := e.Endpoints()
		out[k] = a.vertices[v]
	}

	return out
}

// NeighborsForVertex returns the values adjacent to the vertex holding v.
func (a *adjacency[V, E]) NeighborsForVertex(v V) ([]V, error) {
	i, err := a.IndexOf(v)
	if err != nil {
		return nil, err
	}

	return a.NeighborsForIndex(i), nil
}

// String renders one "value -> [neighbors]" line per vertex.
func (a *adjacency[V, E]) String() string {
	var sb strings.Builder
	for i, v := range a.vertices {
		fmt.Fprintf(&sb, "%v -> %v\n", v, a.NeighborsForIndex(i))
	}

	return sb.String()
}
