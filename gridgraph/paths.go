// SPDX-License-Identifier: MIT

package gridgraph

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvsearch/search"
)

// ShortestPath returns a path of land cells from -> to with the fewest steps,
// both endpoints included. It runs search.BFS over Successors; opts are
// passed through (context, expansion limit, hooks).
func (gg *GridGraph) ShortestPath(from, to Point, opts ...search.Option) ([]Point, error) {
	if err := gg.checkEndpoints(from, to); err != nil {
		return nil, err
	}
	node, err := search.BFS(from, func(p Point) bool { return p == to }, gg.Successors, opts...)
	if err != nil {
		return nil, gg.pathError(from, to, err)
	}

	return node.Path(), nil
}

// CheapestPath returns the land path from -> to minimizing the sum of the
// values of the cells entered (the start cell is free), together with that sum.
//
// It runs search.AStar with the smallest land value times the Manhattan
// (Conn4) or Chebyshev (Conn8) distance as heuristic. That never exceeds the
// true remaining cost, so the result is optimal.
//
// Returns ErrNegativeCost when any land cell is negative: adjacent negative
// cells would form a negative cycle.
func (gg *GridGraph) CheapestPath(from, to Point, opts ...search.Option) ([]Point, float64, error) {
	if err := gg.checkEndpoints(from, to); err != nil {
		return nil, 0, err
	}
	if gg.negativeLand {
		return nil, 0, ErrNegativeCost
	}
	dist := Manhattan
	if gg.Conn == Conn8 {
		dist = Chebyshev
	}
	heuristic := func(p Point) float64 { return gg.minStep * float64(dist(p, to)) }
	cost := func(p Point) float64 { return float64(gg.Value(p)) }

	node, err := search.AStar(from, func(p Point) bool { return p == to }, gg.Successors, heuristic, cost, opts...)
	if err != nil {
		return nil, 0, gg.pathError(from, to, err)
	}

	return node.Path(), node.Cost(), nil
}

func (gg *GridGraph) checkEndpoints(from, to Point) error {
	for _, p := range []Point{from, to} {
		if !gg.InBounds(p) {
			return fmt.Errorf("%w: %v", ErrOutOfBounds, p)
		}
		if !gg.IsLand(p) {
			return fmt.Errorf("%w: %v", ErrNotLand, p)
		}
	}

	return nil
}

func (gg *GridGraph) pathError(from, to Point, err error) error {
	if errors.Is(err, search.ErrNoSolution) {
		return fmt.Errorf("%w: %v -> %v", ErrNoPath, from, to)
	}

	return fmt.Errorf("gridgraph: path %v -> %v: %w", from, to, err)
}
