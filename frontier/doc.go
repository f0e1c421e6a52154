// SPDX-License-Identifier: MIT

// Package frontier provides the minimal generic containers used as search
// frontiers by lvsearch: a LIFO Stack, a FIFO Queue and a binary-heap
// PriorityQueue.
//
// What
//
//   - Stack[T]:         Push / Pop in last-in first-out order.
//   - Queue[T]:         Push / Pop in first-in first-out order.
//   - PriorityQueue[T]: Pop returns the minimum element under a caller-supplied
//     less function. Ties are broken arbitrarily (no stable order).
//
// Contract
//
//	Popping or peeking an empty container is a programmer error and panics.
//	Callers check Empty() first; the search loops in package search do.
//
// Complexity
//
//   - Stack, Queue: O(1) amortized Push/Pop.
//   - PriorityQueue: O(log n) Push/Pop, O(1) Peek.
//
// None of the containers is safe for concurrent use.
package frontier
