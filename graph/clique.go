// SPDX-License-Identifier: MIT

package graph

import (
	"slices"
	"strconv"

	"github.com/katalvlaran/lvsearch/frontier"
)

// Search grows cliques (sets of mutually adjacent vertices) from the singleton
// {i} and returns the largest one found, as ascending vertex indices.
//
// It is a backtracking search on an explicit stack: a candidate set is
// extended by every vertex adjacent to all of its members, and candidate sets
// already seen (keyed by their sorted index tuple) are not processed again.
// Self-loops and parallel edges are ignored.
func (a *adjacency[V, E]) Search(i int) []int {
	_ = a.vertices[i]

	cs := newCliqueSearcher(a)
	return cs.grow(i, nil)
}

// LongestConnectedComponent runs Search from every vertex and returns the
// values of the largest clique in the graph (members in index order).
// Ties keep the clique found first. Returns nil for an empty graph.
func (a *adjacency[V, E]) LongestConnectedComponent() []V {
	if len(a.vertices) == 0 {
		return nil
	}
	cs := newCliqueSearcher(a)
	var best []int
	for i := range a.vertices {
		// a vertex with fewer than len(best)-1 neighbors cannot beat best
		if len(cs.nbrs[i])+1 <= len(best) {
			continue
		}
		best = cs.grow(i, best)
	}

	return a.valuesOf(best)
}

// cliqueSearcher holds the simple-graph view of an adjacency and the memo of
// candidate sets shared by every start vertex.
type cliqueSearcher struct {
	nbrs [][]int // sorted, deduplicated, no self
	seen map[string]struct{}
}

func newCliqueSearcher[V comparable, E edge[E]](a *adjacency[V, E]) *cliqueSearcher {
	nbrs := make([][]int, len(a.vertices))
	for u := range a.vertices {
		list := a.NeighborIndices(u)
		list = slices.DeleteFunc(list, func(v int) bool { return v == u })
		slices.Sort(list)
		nbrs[u] = slices.Compact(list)
	}

	return &cliqueSearcher{nbrs: nbrs, seen: make(map[string]struct{})}
}

func (cs *cliqueSearcher) adjacent(u, v int) bool {
	_, ok := slices.BinarySearch(cs.nbrs[u], v)
	return ok
}

// grow explores every clique containing start and returns the largest of them
// and best (best wins ties).
func (cs *cliqueSearcher) grow(start int, best []int) []int {
	if best == nil {
		best = []int{start}
	}
	stack := frontier.NewStack[[]int](0)
	root := []int{start}
	cs.seen[cliqueKey(root)] = struct{}{}
	stack.Push(root)

	for !stack.Empty() {
		current := stack.Pop()
		if len(current) > len(best) {
			best = current
		}
		// every extension must be adjacent to start
		for _, cand := range cs.nbrs[start] {
			pos, member := slices.BinarySearch(current, cand)
			if member || !cs.adjacentToAll(cand, current) {
				continue
			}
			next := slices.Insert(slices.Clone(current), pos, cand)
			key := cliqueKey(next)
			if _, ok := cs.seen[key]; ok {
				continue
			}
			cs.seen[key] = struct{}{}
			stack.Push(next)
		}
	}

	return best
}

func (cs *cliqueSearcher) adjacentToAll(v int, set []int) bool {
	for _, u := range set {
		if !cs.adjacent(u, v) {
			return false
		}
	}
	return true
}

// cliqueKey renders a sorted index tuple as "i,j,k".
func cliqueKey(set []int) string {
	buf := make([]byte, 0, len(set)*4)
	for k, v := range set {
		if k > 0 {
			buf = append(buf, ',')
		}
		buf = strconv.AppendInt(buf, int64(v), 10)
	}

	return string(buf)
}
