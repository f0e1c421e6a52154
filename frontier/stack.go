// SPDX-License-Identifier: MIT

package frontier

// Stack is a LIFO container. The zero value is an empty stack ready to use.
type Stack[T any] struct {
	items []T
}

// NewStack returns an empty stack with room for capacity items.
func NewStack[T any](capacity int) *Stack[T] {
	if capacity < 0 {
		capacity = 0
	}
	return &Stack[T]{items: make([]T, 0, capacity)}
}

// Push places item on top of the stack.
func (s *Stack[T]) Push(item T) {
	s.items = append(s.items, item)
}

// Pop removes and returns the most recently pushed item.
// Panics if the stack is empty.
func (s *Stack[T]) Pop() T {
	n := len(s.items) - 1
	item := s.items[n]
	var zero T
	s.items[n] = zero // release reference for the GC
	s.items = s.items[:n]

	return item
}

// Peek returns the top item without removing it. Panics if the stack is empty.
func (s *Stack[T]) Peek() T {
	return s.items[len(s.items)-1]
}

// Empty reports whether the stack holds no items.
func (s *Stack[T]) Empty() bool { return len(s.items) == 0 }

// Len returns the number of items on the stack.
func (s *Stack[T]) Len() int { return len(s.items) }
