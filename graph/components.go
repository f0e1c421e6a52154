// SPDX-License-Identifier: MIT

package graph

import (
	"cmp"
	"slices"

	"github.com/katalvlaran/lvsearch/frontier"
	"github.com/tidwall/btree"
)

// ComponentOf returns the indices of every vertex reachable from vertex i
// (i included) in BFS discovery order. It is BFS without a goal test.
// Complexity: O(V + E).
func (a *adjacency[V, E]) ComponentOf(i int) []int {
	_ = a.vertices[i] // index contract: panic like slice access

	seen := make([]bool, len(a.vertices))
	seen[i] = true
	order := []int{i}
	q := frontier.NewQueue[int](len(a.vertices))
	q.Push(i)
	for !q.Empty() {
		u := q.Pop()
		for _, e := range a.edges[u] {
			_, v := e.Endpoints()
			if seen[v] {
				continue
			}
			seen[v] = true
			order = append(order, v)
			q.Push(v)
		}
	}

	return order
}

// ConnectedComponents returns the set of vertex values in the connected
// component of the vertex holding v. Calling it twice on an unmodified graph
// yields equal sets.
func (a *adjacency[V, E]) ConnectedComponents(v V) (map[V]struct{}, error) {
	i, err := a.IndexOf(v)
	if err != nil {
		return nil, err
	}
	comp := a.ComponentOf(i)
	set := make(map[V]struct{}, len(comp))
	for _, idx := range comp {
		set[a.vertices[idx]] = struct{}{}
	}

	return set, nil
}

// ConnectedGroupIndices partitions all vertex indices into connected
// components. Each group is sorted ascending; groups are ordered by size
// descending, and equal-size groups by their smallest index.
//
// The unassigned pool is an ordered set popped by minimum, so the result is
// deterministic for a given graph.
func (a *adjacency[V, E]) ConnectedGroupIndices() [][]int {
	var pool btree.Set[int]
	for i := range a.vertices {
		pool.Insert(i)
	}

	var groups [][]int
	for pool.Len() > 0 {
		start, _ := pool.PopMin()
		comp := a.ComponentOf(start)
		for _, idx := range comp {
			pool.Delete(idx)
		}
		slices.Sort(comp)
		groups = append(groups, comp)
	}
	slices.SortStableFunc(groups, func(x, y []int) int {
		return cmp.Compare(len(y), len(x))
	})

	return groups
}

// ConnectedGroups is ConnectedGroupIndices mapped to vertex values.
// The union of all groups is the vertex list and the groups are pairwise disjoint.
func (a *adjacency[V, E]) ConnectedGroups() [][]V {
	idxGroups := a.ConnectedGroupIndices()
	groups := make([][]V, len(idxGroups))
	for g, idxs := range idxGroups {
		groups[g] = a.valuesOf(idxs)
	}

	return groups
}

func (a *adjacency[V, E]) valuesOf(idxs []int) []V {
	out := make([]V, len(idxs))
	for k, i := range idxs {
		out[k] = a.vertices[i]
	}

	return out
}
