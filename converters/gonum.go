// SPDX-License-Identifier: MIT

package converters

import (
	"math"

	"github.com/katalvlaran/lvsearch/graph"
	"gonum.org/v1/gonum/graph/simple"
)

// ToGonum converts g into a gonum undirected graph.
// Complexity: O(V + E).
func ToGonum[V comparable](g *graph.Graph[V]) *simple.UndirectedGraph {
	out := simple.NewUndirectedGraph()
	n := g.VertexCount()
	for i := 0; i < n; i++ {
		out.AddNode(simple.Node(i))
	}
	for u := 0; u < n; u++ {
		for _, v := range g.NeighborIndices(u) {
			if u == v || out.HasEdgeBetween(int64(u), int64(v)) {
				continue
			}
			out.SetEdge(simple.Edge{F: simple.Node(u), T: simple.Node(v)})
		}
	}

	return out
}

// ToGonumWeighted converts g into a gonum weighted undirected graph whose
// self weight is 0 and absent-edge weight is +Inf, the convention expected by
// gonum's path package.
// Complexity: O(V + E).
func ToGonumWeighted[V comparable](g *graph.WeightedGraph[V]) *simple.WeightedUndirectedGraph {
	out := simple.NewWeightedUndirectedGraph(0, math.Inf(1))
	n := g.VertexCount()
	for i := 0; i < n; i++ {
		out.AddNode(simple.Node(i))
	}
	for u := 0; u < n; u++ {
		for _, nb := range g.NeighborsForIndexWithWeights(u) {
			if u == nb.Index {
				continue
			}
			if w, ok := out.Weight(int64(u), int64(nb.Index)); ok && w <= nb.Weight {
				continue
			}
			out.SetWeightedEdge(simple.WeightedEdge{F: simple.Node(u), T: simple.Node(nb.Index), W: nb.Weight})
		}
	}

	return out
}
