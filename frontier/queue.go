// SPDX-License-Identifier: MIT

package frontier

// Queue is a FIFO container backed by a slice with a moving head.
// The zero value is an empty queue ready to use.
type Queue[T any] struct {
	items []T
	head  int
}

// NewQueue returns an empty queue with room for capacity items.
func NewQueue[T any](capacity int) *Queue[T] {
	if capacity < 0 {
		capacity = 0
	}
	return &Queue[T]{items: make([]T, 0, capacity)}
}

// Push appends item to the back of the queue.
func (q *Queue[T]) Push(item T) {
	// Reclaim the consumed prefix once it dominates the backing array.
	if q.head > 0 && q.head*2 >= len(q.items) {
		n := copy(q.items, q.items[q.head:])
		clear(q.items[n:])
		q.items = q.items[:n]
		q.head = 0
	}
	q.items = append(q.items, item)
}

// Pop removes and returns the oldest item. Panics if the queue is empty.
func (q *Queue[T]) Pop() T {
	if q.head >= len(q.items) {
		panic("frontier: Pop on empty Queue")
	}
	item := q.items[q.head]
	var zero T
	q.items[q.head] = zero
	q.head++
	if q.head == len(q.items) {
		q.items = q.items[:0]
		q.head = 0
	}

	return item
}

// Peek returns the oldest item without removing it. Panics if the queue is empty.
func (q *Queue[T]) Peek() T {
	if q.head >= len(q.items) {
		panic("frontier: Peek on empty Queue")
	}
	return q.items[q.head]
}

// Empty reports whether the queue holds no items.
func (q *Queue[T]) Empty() bool { return q.head >= len(q.items) }

// Len returns the number of queued items.
func (q *Queue[T]) Len() int { return len(q.items) - q.head }
