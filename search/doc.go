// SPDX-License-Identifier: MIT

// Package search provides generic uninformed and informed state-space search:
// depth-first (DFS), breadth-first (BFS) and A* best-first search (AStar),
// all parameterized over an opaque comparable state type and driven by
// caller-supplied callbacks.
//
// What
//
//   - DFS(initial, goalTest, successors, opts...)
//   - BFS(initial, goalTest, successors, opts...)
//   - AStar(initial, goalTest, successors, heuristic, cost, opts...)
//   - UniformCost(initial, goalTest, successors, cost, opts...)  (A* with h ≡ 0)
//   - Explore(initial, successors)                              (goal-less BFS)
//
// Every search returns the goal *Node[T]; NodeToPath (or Node.Path) walks the
// parent links back to the initial state and returns the path initial → goal.
//
// Guarantees
//
//   - DFS and BFS visit every reachable state at most once: a state is marked
//     explored when it is discovered, not when it is dequeued.
//   - BFS returns a goal at minimum edge distance from initial.
//   - DFS returns some goal; its path length depends on exploration order.
//   - AStar returns an optimal-cost goal when cost is non-negative and
//     heuristic is admissible. A state may be pushed several times with
//     different costs; superseded heap entries are re-processed on pop rather
//     than removed (no decrease-key).
//
// Callbacks
//
//	successors must be a pure function of its state. cost(s) is the incremental
//	cost of moving into s from its predecessor; heuristic(s) estimates the
//	remaining cost from s to the nearest goal.
//
// Options
//
//   - WithContext(ctx):      cancellation, checked once per expansion.
//   - WithMaxExpansions(n):  stop after n expansions with ErrExpansionLimit (n>0).
//   - WithOnExpand(fn):      hook invoked with the depth of every expanded node.
//
// Errors
//
//   - ErrNoSolution       the frontier was exhausted without reaching a goal.
//   - ErrNilCallback      a required callback is nil.
//   - ErrOptionViolation  an invalid Option was supplied.
//   - ErrExpansionLimit   the WithMaxExpansions budget was spent.
//   - ctx.Err()           the context passed via WithContext was cancelled.
//
// Complexity
//
//   - DFS/BFS: O(S + T) time, O(S) memory for S reachable states and T successor
//     calls' output.
//   - AStar:   O(T log T) time, O(S + T) memory; stale heap entries are bounded
//     by the number of successors generated.
//
// Concurrency
//
//	Each call allocates its own frontier and explored set; there is no shared
//	state. Callbacks are invoked synchronously from the calling goroutine.
package search
