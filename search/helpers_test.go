package search_test

import (
	"math/rand"

	"github.com/katalvlaran/lvsearch/graph"
)

// point is a grid coordinate used as a search state.
type point struct{ x, y int }

// mazeSuccessors returns a successor function over the open cells ('.') of
// rows, moving in the four cardinal directions.
func mazeSuccessors(rows []string) func(point) []point {
	return func(p point) []point {
		var out []point
		for _, d := range [4]point{{0, -1}, {1, 0}, {0, 1}, {-1, 0}} {
			n := point{p.x + d.x, p.y + d.y}
			if n.y < 0 || n.y >= len(rows) || n.x < 0 || n.x >= len(rows[n.y]) {
				continue
			}
			if rows[n.y][n.x] == '#' {
				continue
			}
			out = append(out, n)
		}
		return out
	}
}

func manhattan(a, b point) float64 {
	dx, dy := a.x-b.x, a.y-b.y
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	return float64(dx + dy)
}

// randomGraph builds a simple undirected graph (no loops, no parallel edges)
// on n vertices where each pair is connected with probability p and weighted
// uniformly in [1, 10).
func randomGraph(r *rand.Rand, n int, p float64) *graph.WeightedGraph[int] {
	g := graph.NewWeighted[int]()
	for i := 0; i < n; i++ {
		g.AddVertex(i)
	}
	for u := 0; u < n; u++ {
		for v := u + 1; v < n; v++ {
			if r.Float64() < p {
				if err := g.AddEdge(u, v, 1+9*r.Float64()); err != nil {
					panic(err)
				}
			}
		}
	}
	return g
}

// hop is a search state over a weighted graph: the current vertex and the
// vertex it was entered from, so that cost(hop) can return the edge weight.
type hop struct{ at, from int }

func hopSuccessors(g *graph.WeightedGraph[int]) func(hop) []hop {
	return func(h hop) []hop {
		nbrs := g.NeighborIndices(h.at)
		out := make([]hop, len(nbrs))
		for i, v := range nbrs {
			out[i] = hop{at: v, from: h.at}
		}
		return out
	}
}

func hopCost(g *graph.WeightedGraph[int]) func(hop) float64 {
	return func(h hop) float64 {
		for _, nb := range g.NeighborsForIndexWithWeights(h.from) {
			if nb.Index == h.at {
				return nb.Weight
			}
		}
		panic("hopCost: no edge")
	}
}

// unitDistances computes hop distances from src by repeated relaxation,
// independently of BFS.
func unitDistances(g *graph.Graph[int], src int) map[int]int {
	dist := map[int]int{src: 0}
	for changed := true; changed; {
		changed = false
		for u := 0; u < g.VertexCount(); u++ {
			du, ok := dist[u]
			if !ok {
				continue
			}
			for _, v := range g.NeighborIndices(u) {
				if dv, ok := dist[v]; !ok || du+1 < dv {
					dist[v] = du + 1
					changed = true
				}
			}
		}
	}
	return dist
}

// cheapestSimplePath enumerates every simple path from src to dst and returns
// the minimum total weight (+Inf when unreachable).
func cheapestSimplePath(g *graph.WeightedGraph[int], src, dst int) float64 {
	best := inf
	onPath := make([]bool, g.VertexCount())
	var walk func(u int, acc float64)
	walk = func(u int, acc float64) {
		if u == dst {
			if acc < best {
				best = acc
			}
			return
		}
		onPath[u] = true
		for _, nb := range g.NeighborsForIndexWithWeights(u) {
			if !onPath[nb.Index] {
				walk(nb.Index, acc+nb.Weight)
			}
		}
		onPath[u] = false
	}
	walk(src, 0)
	return best
}
