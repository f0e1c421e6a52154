// SPDX-License-Identifier: MIT

package search

import "github.com/katalvlaran/lvsearch/frontier"

// AStar runs A* best-first search from initial until goalTest succeeds.
//
//   - heuristic(s) estimates the remaining cost from s to a goal.
//   - cost(s) is the incremental cost of moving into s from its predecessor.
//
// The frontier is a min-heap on cost + heuristic. explored maps every state to
// the cheapest cost-so-far seen; a successor is pushed only when unexplored or
// strictly cheaper than before. Superseded heap entries are not removed: they
// are popped and expanded again later, which is safe because none of their
// successors can improve on the recorded costs.
//
// With non-negative costs and an admissible heuristic the returned node's Cost
// is optimal. Returns ErrNoSolution when the goal is unreachable; other errors
// as for DFS.
func AStar[T comparable](
	initial T,
	goalTest func(T) bool,
	successors func(T) []T,
	heuristic func(T) float64,
	cost func(T) float64,
	opts ...Option,
) (*Node[T], error) {
	if goalTest == nil || successors == nil || heuristic == nil || cost == nil {
		return nil, ErrNilCallback
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	run := budget{ctx: o.Ctx, limit: o.MaxExpansions}

	pq := frontier.NewPriorityQueue(func(a, b *Node[T]) bool { return a.Less(b) })
	pq.Push(NewNode[T](initial, nil, 0, heuristic(initial)))
	explored := map[T]float64{initial: 0}

	for !pq.Empty() {
		if err = run.spend(); err != nil {
			return nil, err
		}

		current := pq.Pop()
		o.OnExpand(current.depth)
		if goalTest(current.state) {
			return current, nil
		}

		for _, next := range successors(current.state) {
			newCost := current.cost + cost(next)
			if best, seen := explored[next]; seen && best <= newCost {
				continue
			}
			explored[next] = newCost
			pq.Push(NewNode(next, current, newCost, heuristic(next)))
		}
	}

	return nil, ErrNoSolution
}

// UniformCost is AStar with a zero heuristic, i.e. Dijkstra's algorithm over
// an implicit state space.
func UniformCost[T comparable](
	initial T,
	goalTest func(T) bool,
	successors func(T) []T,
	cost func(T) float64,
	opts ...Option,
) (*Node[T], error) {
	return AStar(initial, goalTest, successors, func(T) float64 { return 0 }, cost, opts...)
}
