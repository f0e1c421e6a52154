// SPDX-License-Identifier: MIT

package search

import "github.com/katalvlaran/lvsearch/frontier"

// DFS runs depth-first search from initial until goalTest succeeds.
//
// The frontier is a LIFO stack seeded with the root node; successors are
// marked explored when discovered, so every reachable state is visited at
// most once. The returned path is not necessarily the shortest one.
//
// Returns the goal node, or ErrNoSolution when the goal is unreachable,
// ErrNilCallback / ErrOptionViolation for invalid input, and ctx.Err() or
// ErrExpansionLimit when the search is cut short.
func DFS[T comparable](initial T, goalTest func(T) bool, successors func(T) []T, opts ...Option) (*Node[T], error) {
	w, err := newWalker[T](frontier.NewStack[*Node[T]](0), initial, goalTest, successors, opts)
	if err != nil {
		return nil, err
	}

	return w.run()
}
