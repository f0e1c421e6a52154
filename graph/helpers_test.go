package graph_test

import (
	"math"

	"github.com/katalvlaran/lvsearch/graph"
)

func nan() float64 { return math.NaN() }

// puzzleGraph builds vertices 0..6 connected by 0-2, 1-1, 2-3, 2-4, 3-4, 4-6, 5-6.
func puzzleGraph() *graph.Graph[int] {
	g := graph.New(0, 1, 2, 3, 4, 5, 6)
	for _, e := range [][2]int{{0, 2}, {1, 1}, {2, 3}, {2, 4}, {3, 4}, {4, 6}, {5, 6}} {
		if err := g.AddEdgeByVertices(e[0], e[1]); err != nil {
			panic(err)
		}
	}
	return g
}
