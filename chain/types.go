// Package chain declares Chain, Node and the sentinel errors of the package.
package chain

import "errors"

// Sentinel errors for chain operations.
var (
	// ErrEmptyChain is returned when removing from a chain with no nodes.
	ErrEmptyChain = errors.New("chain: chain is empty")

	// ErrNilNode is returned when a nil node pointer is passed.
	ErrNilNode = errors.New("chain: node is nil")

	// ErrForeignNode is returned when a node is not linked into the chain
	// the operation was invoked on (another chain's node, or a removed one).
	ErrForeignNode = errors.New("chain: node does not belong to this chain")
)

// Node is a single element of a Chain.
//
// next is the forward link that makes up the chain's backbone; prev is a
// back-reference used only for reverse walks and splicing.
type Node[T any] struct {
	// Value is the payload carried by this node.
	Value T

	next  *Node[T]
	prev  *Node[T]
	owner *Chain[T] // nil once detached
}

// Next returns the following node, or nil at the tail or once detached.
func (n *Node[T]) Next() *Node[T] {
	if n == nil {
		return nil
	}

	return n.next
}

// Prev returns the preceding node, or nil at the head or once detached.
func (n *Node[T]) Prev() *Node[T] {
	if n == nil {
		return nil
	}

	return n.prev
}

// Chain is a doubly-linked list of Nodes.
// The zero value is an empty chain.
type Chain[T any] struct {
	head   *Node[T]
	tail   *Node[T]
	length int
}

// New returns a chain holding seed in order, head first.
// With no seed it returns an empty chain.
// Complexity: O(len(seed)).
func New[T any](seed ...T) *Chain[T] {
	c := &Chain[T]{}
	for _, v := range seed {
		c.AddToTail(v)
	}

	return c
}

// Len returns the number of nodes. O(1).
func (c *Chain[T]) Len() int { return c.length }

// Head returns the first node, or nil if the chain is empty.
func (c *Chain[T]) Head() *Node[T] { return c.head }

// Tail returns the last node, or nil if the chain is empty.
func (c *Chain[T]) Tail() *Node[T] { return c.tail }
