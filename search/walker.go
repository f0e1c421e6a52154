// SPDX-License-Identifier: MIT

package search

import "github.com/katalvlaran/lvsearch/frontier"

// nodeFrontier is the subset of frontier.Stack / frontier.Queue the
// uninformed walker needs; the choice of container fixes the visit order.
type nodeFrontier[T any] interface {
	Push(*Node[T])
	Pop() *Node[T]
	Empty() bool
}

var (
	_ nodeFrontier[int] = (*frontier.Stack[*Node[int]])(nil)
	_ nodeFrontier[int] = (*frontier.Queue[*Node[int]])(nil)
)

// walker encapsulates mutable DFS/BFS state.
type walker[T comparable] struct {
	goalTest   func(T) bool
	successors func(T) []T
	opts       Options
	budget     budget
	frontier   nodeFrontier[T]
	explored   map[T]struct{}
}

// newWalker validates callbacks and options and seeds the frontier with initial.
func newWalker[T comparable](
	f nodeFrontier[T],
	initial T,
	goalTest func(T) bool,
	successors func(T) []T,
	opts []Option,
) (*walker[T], error) {
	if goalTest == nil || successors == nil {
		return nil, ErrNilCallback
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	w := &walker[T]{
		goalTest:   goalTest,
		successors: successors,
		opts:       o,
		budget:     budget{ctx: o.Ctx, limit: o.MaxExpansions},
		frontier:   f,
		explored:   map[T]struct{}{initial: {}},
	}
	w.frontier.Push(NewNode[T](initial, nil, 0, 0))

	return w, nil
}

// run pops nodes until a goal is found, the frontier is exhausted,
// or the budget is spent.
func (w *walker[T]) run() (*Node[T], error) {
	for !w.frontier.Empty() {
		if err := w.budget.spend(); err != nil {
			return nil, err
		}

		current := w.frontier.Pop()
		w.opts.OnExpand(current.depth)
		if w.goalTest(current.state) {
			return current, nil
		}

		for _, next := range w.successors(current.state) {
			if _, seen := w.explored[next]; seen {
				continue
			}
			w.explored[next] = struct{}{}
			w.frontier.Push(NewNode(next, current, 0, 0))
		}
	}

	return nil, ErrNoSolution
}
