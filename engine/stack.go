package engine

import "errors"

// ErrEmptyStack is returned when popping or peeking an empty Stack.
// Pile checks emptiness before touching its stack, so seeing this error
// outside the engine package means a bug.
var ErrEmptyStack = errors.New("engine: empty stack")

// Stack is a LIFO of T. The top is the last element of items.
type Stack[T any] struct {
	items []T
}

// NewStack returns an empty stack with room for capacity items
func NewStack[T any](capacity int) *Stack[T] {
	return &Stack[T]{items: make([]T, 0, capacity)}
}

// Push adds x on top
func (s *Stack[T]) Push(x T) {
	s.items = append(s.items, x)
}

// Pop removes and returns the top item
func (s *Stack[T]) Pop() (T, error) {
	var zero T
	if len(s.items) == 0 {
		return zero, ErrEmptyStack
	}
	idx := len(s.items) - 1
	x := s.items[idx]
	s.items[idx] = zero
	s.items = s.items[:idx]
	return x, nil
}

// Peek returns the top item without removing it
func (s *Stack[T]) Peek() (T, error) {
	if len(s.items) == 0 {
		var zero T
		return zero, ErrEmptyStack
	}
	return s.items[len(s.items)-1], nil
}

// IsEmpty reports whether the stack holds no items
func (s *Stack[T]) IsEmpty() bool {
	return len(s.items) == 0
}

// Size returns the number of items
func (s *Stack[T]) Size() int {
	return len(s.items)
}

// Items returns a bottom-to-top copy of the stack contents
func (s *Stack[T]) Items() []T {
	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}
