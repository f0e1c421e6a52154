// SPDX-License-Identifier: MIT

package graph

import "errors"

// Sentinel errors for graph operations.
var (
	// ErrVertexNotFound indicates a vertex value is absent from the graph.
	ErrVertexNotFound = errors.New("graph: vertex not found")

	// ErrAmbiguousVertex indicates a vertex value is held by more than one vertex,
	// so a value-based lookup cannot pick an index.
	ErrAmbiguousVertex = errors.New("graph: vertex value is not unique")

	// ErrIndexOutOfRange indicates an edge endpoint is not a valid vertex index.
	ErrIndexOutOfRange = errors.New("graph: vertex index out of range")

	// ErrBadWeight indicates an edge weight is NaN.
	ErrBadWeight = errors.New("graph: edge weight is NaN")
)

// Edge is one direction of an undirected connection between the vertices at
// indices U and V.
type Edge struct {
	U, V int
}

// Endpoints returns (U, V).
func (e Edge) Endpoints() (u, v int) { return e.U, e.V }

// Reversed returns the mirrored edge (V, U).
func (e Edge) Reversed() Edge { return Edge{U: e.V, V: e.U} }

// WeightedEdge is an Edge carrying a weight. Weighted edges order by Weight.
type WeightedEdge struct {
	U, V   int
	Weight float64
}

// Endpoints returns (U, V).
func (e WeightedEdge) Endpoints() (u, v int) { return e.U, e.V }

// Reversed returns the mirrored edge (V, U) with the same weight.
func (e WeightedEdge) Reversed() WeightedEdge {
	return WeightedEdge{U: e.V, V: e.U, Weight: e.Weight}
}

// Less orders weighted edges by weight ascending.
func (e WeightedEdge) Less(other WeightedEdge) bool { return e.Weight < other.Weight }

// Neighbor is an adjacent vertex as seen from a WeightedGraph vertex.
type Neighbor[V comparable] struct {
	Index  int
	Vertex V
	Weight float64
}

// edge is the constraint satisfied by Edge and WeightedEdge.
type edge[E any] interface {
	Endpoints() (u, v int)
	Reversed() E
}
