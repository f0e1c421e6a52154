// SPDX-License-Identifier: MIT

package search

import "github.com/katalvlaran/lvsearch/frontier"

// BFS runs breadth-first search from initial until goalTest succeeds.
//
// The frontier is a FIFO queue, so all nodes at distance k are expanded before
// any node at distance k+1. Together with marking states explored at discovery
// time this makes the first goal found one at minimum edge distance from initial.
//
// Errors are the same as for DFS.
func BFS[T comparable](initial T, goalTest func(T) bool, successors func(T) []T, opts ...Option) (*Node[T], error) {
	w, err := newWalker[T](frontier.NewQueue[*Node[T]](0), initial, goalTest, successors, opts)
	if err != nil {
		return nil, err
	}

	return w.run()
}

// Explore returns every state reachable from initial (initial included) in
// BFS discovery order. Returns nil if successors is nil.
func Explore[T comparable](initial T, successors func(T) []T) []T {
	if successors == nil {
		return nil
	}
	order := []T{initial}
	seen := map[T]struct{}{initial: {}}
	q := frontier.NewQueue[T](0)
	q.Push(initial)
	for !q.Empty() {
		cur := q.Pop()
		for _, next := range successors(cur) {
			if _, ok := seen[next]; ok {
				continue
			}
			seen[next] = struct{}{}
			order = append(order, next)
			q.Push(next)
		}
	}

	return order
}
