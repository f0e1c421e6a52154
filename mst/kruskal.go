// SPDX-License-Identifier: MIT

package mst

import (
	"cmp"
	"slices"

	"github.com/katalvlaran/lvsearch/graph"
)

// Kruskal computes a minimum spanning forest of g: one minimum spanning tree
// per connected component. Equal weights keep adjacency order (stable sort),
// so the result is deterministic.
func Kruskal[V comparable](g *graph.WeightedGraph[V]) []graph.WeightedEdge {
	n := g.VertexCount()

	// Collect each undirected edge once (from its lower endpoint), skipping loops.
	var edges []graph.WeightedEdge
	for u := 0; u < n; u++ {
		for _, e := range g.EdgesForIndex(u) {
			if e.U < e.V {
				edges = append(edges, e)
			}
		}
	}
	slices.SortStableFunc(edges, func(a, b graph.WeightedEdge) int {
		return cmp.Compare(a.Weight, b.Weight)
	})

	ds := newDisjointSet(n)
	forest := make([]graph.WeightedEdge, 0, max(n-1, 0))
	for _, e := range edges {
		if ds.union(e.U, e.V) {
			forest = append(forest, e)
			if len(forest) == n-1 {
				break
			}
		}
	}

	return forest
}

// disjointSet is union-find with union by rank and path compression.
type disjointSet struct {
	parent []int
	rank   []int
}

func newDisjointSet(n int) *disjointSet {
	ds := &disjointSet{parent: make([]int, n), rank: make([]int, n)}
	for i := range ds.parent {
		ds.parent[i] = i
	}
	return ds
}

func (ds *disjointSet) find(u int) int {
	for ds.parent[u] != u {
		ds.parent[u] = ds.parent[ds.parent[u]]
		u = ds.parent[u]
	}
	return u
}

// union merges the sets of u and v and reports whether they were distinct.
func (ds *disjointSet) union(u, v int) bool {
	ru, rv := ds.find(u), ds.find(v)
	if ru == rv {
		return false
	}
	switch {
	case ds.rank[ru] < ds.rank[rv]:
		ds.parent[ru] = rv
	case ds.rank[ru] > ds.rank[rv]:
		ds.parent[rv] = ru
	default:
		ds.parent[rv] = ru
		ds.rank[ru]++
	}
	return true
}
