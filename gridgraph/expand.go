// SPDX-License-Identifier: MIT

package gridgraph

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvsearch/search"
)

// ExpandIsland finds a minimum-conversion path of water cells joining
// component srcComp to component dstComp, as numbered by ConnectedComponents.
// Each converted water cell costs 1; stepping onto land is free.
//
// The returned path starts at the last land cell of srcComp it leaves from
// and ends at the first cell of dstComp it reaches. cost is the number of
// water cells on it. srcComp == dstComp yields a single-cell path of cost 0.
//
// Behavior:
//  1. Validate component indices.
//  2. Uniform-cost search from any srcComp cell. Every srcComp cell is
//     reachable at cost 0, so this equals a multi-source search.
//  3. Stop when any dstComp cell is reached.
//  4. Trim the zero-cost prefix inside srcComp.
//
// Complexity: O(W·H·d·log(W·H)), Memory: O(W·H).
func (gg *GridGraph) ExpandIsland(srcComp, dstComp int, opts ...search.Option) (path []Point, cost int, err error) {
	comps := gg.ConnectedComponents()
	if srcComp < 0 || srcComp >= len(comps) || dstComp < 0 || dstComp >= len(comps) {
		return nil, 0, ErrComponentIndex
	}
	srcSet := pointSet(comps[srcComp])
	dstSet := pointSet(comps[dstComp])

	step := func(p Point) float64 {
		if gg.IsLand(p) {
			return 0
		}
		return 1
	}
	isDst := func(p Point) bool {
		_, ok := dstSet[p]
		return ok
	}

	node, err := search.UniformCost(comps[srcComp][0], isDst, gg.Neighbors, step, opts...)
	if errors.Is(err, search.ErrNoSolution) {
		return nil, 0, ErrNoPath
	}
	if err != nil {
		return nil, 0, fmt.Errorf("gridgraph: expand island %d->%d: %w", srcComp, dstComp, err)
	}

	path = node.Path()
	start := 0
	for i, p := range path {
		if _, ok := srcSet[p]; ok {
			start = i
		}
	}

	return path[start:], int(node.Cost()), nil
}

func pointSet(ps []Point) map[Point]struct{} {
	set := make(map[Point]struct{}, len(ps))
	for _, p := range ps {
		set[p] = struct{}{}
	}

	return set
}
