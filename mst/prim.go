// SPDX-License-Identifier: MIT

package mst

import (
	"fmt"

	"github.com/katalvlaran/lvsearch/frontier"
	"github.com/katalvlaran/lvsearch/graph"
)

// Prim computes a minimum spanning tree of the component containing vertex
// index start.
//
// Steps:
//  1. Validate start (ErrStartOutOfRange otherwise).
//  2. Visit start: mark it and push its edges to unvisited vertices.
//  3. Pop the lightest edge; if its target is visited, discard it. Otherwise
//     append it to the result and visit the target.
//  4. Stop when the queue is empty.
//
// For a connected graph with n vertices the result has n-1 edges.
func Prim[V comparable](g *graph.WeightedGraph[V], start int) ([]graph.WeightedEdge, error) {
	n := g.VertexCount()
	if start < 0 || start >= n {
		return nil, fmt.Errorf("%w: %d not in [0,%d)", ErrStartOutOfRange, start, n)
	}

	visited := make([]bool, n)
	result := make([]graph.WeightedEdge, 0, n-1)
	pq := frontier.NewPriorityQueue(graph.WeightedEdge.Less)

	visit := func(u int) {
		visited[u] = true
		for _, e := range g.EdgesForIndex(u) {
			if !visited[e.V] {
				pq.Push(e)
			}
		}
	}

	visit(start)
	for !pq.Empty() {
		e := pq.Pop()
		if visited[e.V] {
			continue
		}
		result = append(result, e)
		visit(e.V)
	}

	return result, nil
}
