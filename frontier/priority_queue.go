// SPDX-License-Identifier: MIT

package frontier

import "container/heap"

// PriorityQueue is a binary min-heap ordered by a caller-supplied less function.
// Pop always returns an element e such that no remaining element x has less(x, e).
type PriorityQueue[T any] struct {
	h itemHeap[T]
}

// NewPriorityQueue returns an empty queue ordered by less.
// Panics if less is nil.
func NewPriorityQueue[T any](less func(a, b T) bool) *PriorityQueue[T] {
	if less == nil {
		panic("frontier: NewPriorityQueue(nil)")
	}
	return &PriorityQueue[T]{h: itemHeap[T]{less: less}}
}

// Push inserts item. Complexity: O(log n).
func (pq *PriorityQueue[T]) Push(item T) {
	heap.Push(&pq.h, item)
}

// Pop removes and returns the minimum item. Panics if the queue is empty.
// Complexity: O(log n).
func (pq *PriorityQueue[T]) Pop() T {
	return heap.Pop(&pq.h).(T)
}

// Peek returns the minimum item without removing it. Panics if the queue is empty.
func (pq *PriorityQueue[T]) Peek() T {
	return pq.h.items[0]
}

// Empty reports whether the queue holds no items.
func (pq *PriorityQueue[T]) Empty() bool { return len(pq.h.items) == 0 }

// Len returns the number of queued items.
func (pq *PriorityQueue[T]) Len() int { return len(pq.h.items) }

// itemHeap implements heap.Interface over a slice of T.
type itemHeap[T any] struct {
	items []T
	less  func(a, b T) bool
}

func (h itemHeap[T]) Len() int           { return len(h.items) }
func (h itemHeap[T]) Less(i, j int) bool { return h.less(h.items[i], h.items[j]) }
func (h itemHeap[T]) Swap(i, j int)      { h.items[i], h.items[j] = h.items[j], h.items[i] }

func (h *itemHeap[T]) Push(x any) { h.items = append(h.items, x.(T)) }

func (h *itemHeap[T]) Pop() any {
	old := h.items
	n := len(old)
	item := old[n-1]
	var zero T
	old[n-1] = zero
	h.items = old[:n-1]

	return item
}
