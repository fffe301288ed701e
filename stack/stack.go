// Package stack provides a LIFO stack layered over chain.Chain.
//
// Push and Pop work at the head of the chain in O(1). Pop on an empty stack
// returns false instead of failing: an empty stack is an expected state, not
// a misuse.
package stack

import "github.com/katalvlaran/lvlath-containers/chain"

// Stack is a last-in-first-out collection. The zero value is an empty stack.
type Stack[T any] struct {
	items chain.Chain[T]
}

// New returns an empty stack.
func New[T any]() *Stack[T] { return &Stack[T]{} }

// Push places v on top of the stack.
func (s *Stack[T]) Push(v T) { s.items.AddToHead(v) }

// Pop removes and returns the top value; ok is false if the stack is empty.
func (s *Stack[T]) Pop() (v T, ok bool) {
	v, err := s.items.RemoveFromHead()
	if err != nil {
		return v, false
	}

	return v, true
}

// Peek returns the top value without removing it; ok is false if empty.
func (s *Stack[T]) Peek() (v T, ok bool) {
	top := s.items.Head()
	if top == nil {
		return v, false
	}

	return top.Value, true
}

// Len returns the number of values on the stack.
func (s *Stack[T]) Len() int { return s.items.Len() }
