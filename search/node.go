// SPDX-License-Identifier: MIT

package search

// Node is an immutable search-tree node: a state, a link to the node it was
// discovered from, the accumulated path cost and a heuristic estimate.
// Nodes only point backwards, so the parent chain of any node ends at the
// root node (the initial state) whose parent is nil.
type Node[T any] struct {
	state     T
	parent    *Node[T]
	cost      float64
	heuristic float64
	depth     int
}

// NewNode creates a node for state discovered from parent (nil for the root).
func NewNode[T any](state T, parent *Node[T], cost, heuristic float64) *Node[T] {
	n := &Node[T]{state: state, parent: parent, cost: cost, heuristic: heuristic}
	if parent != nil {
		n.depth = parent.depth + 1
	}

	return n
}

// State returns the node's state.
func (n *Node[T]) State() T { return n.state }

// Parent returns the node this one was discovered from, or nil for the root.
func (n *Node[T]) Parent() *Node[T] { return n.parent }

// Cost returns the accumulated path cost from the root (0 when unused).
func (n *Node[T]) Cost() float64 { return n.cost }

// Heuristic returns the estimated remaining cost (0 when unused).
func (n *Node[T]) Heuristic() float64 { return n.heuristic }

// Priority returns cost + heuristic, the key used by AStar's priority queue.
func (n *Node[T]) Priority() float64 { return n.cost + n.heuristic }

// Depth returns the number of parent links between n and the root.
func (n *Node[T]) Depth() int { return n.depth }

// Less orders nodes by cost + heuristic ascending.
func (n *Node[T]) Less(other *Node[T]) bool {
	return n.Priority() < other.Priority()
}

// Path returns the states from the root to n inclusive.
func (n *Node[T]) Path() []T { return NodeToPath(n) }

// NodeToPath walks parent links from node to the root and returns the states
// in root → node order. Returns nil for a nil node. O(depth).
func NodeToPath[T any](node *Node[T]) []T {
	if node == nil {
		return nil
	}
	path := make([]T, node.depth+1)
	for cur, i := node, node.depth; cur != nil; cur, i = cur.parent, i-1 {
		path[i] = cur.state
	}

	return path
}
