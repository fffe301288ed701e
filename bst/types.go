// Package bst declares Tree, Node, Order, Walk options and sentinel errors.
package bst

import (
	"errors"
	"fmt"

	"golang.org/x/exp/constraints"
)

// Sentinel errors for tree operations.
var (
	// ErrEmptyTree is returned by queries that need at least one node.
	ErrEmptyTree = errors.New("bst: tree is empty")

	// ErrTreeNil is returned if a nil tree pointer is passed to Walk.
	ErrTreeNil = errors.New("bst: tree is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bst: invalid option supplied")

	// ErrUnknownOrder is returned when Walk is given an undefined Order.
	ErrUnknownOrder = errors.New("bst: unknown traversal order")
)

// Node is a single tree node. Every value in the left subtree is strictly
// less than Value; every value in the right subtree is greater or equal.
type Node[T any] struct {
	// Value is the payload, immutable once inserted.
	Value T

	left  *Node[T]
	right *Node[T]
}

// Left returns the left child, or nil.
func (n *Node[T]) Left() *Node[T] {
	if n == nil {
		return nil
	}

	return n.left
}

// Right returns the right child, or nil.
func (n *Node[T]) Right() *Node[T] {
	if n == nil {
		return nil
	}

	return n.right
}

// Tree is a binary search tree. Create one with New or NewFunc.
type Tree[T any] struct {
	root *Node[T]
	cmp  func(a, b T) int
	size int
}

// New returns an empty tree ordered by the natural order of T.
func New[T constraints.Ordered]() *Tree[T] {
	return &Tree[T]{cmp: compareOrdered[T]}
}

// NewFunc returns an empty tree ordered by cmp, which must return a negative
// number when a < b, zero when a == b and a positive number when a > b.
// cmp must be non-nil and define a total order.
func NewFunc[T any](cmp func(a, b T) int) *Tree[T] {
	return &Tree[T]{cmp: cmp}
}

func compareOrdered[T constraints.Ordered](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Order selects a traversal order for Walk.
type Order int

const (
	PreOrder     Order = iota // node, left, right
	InOrder                   // left, node, right
	PostOrder                 // left, right, node
	BreadthFirst              // level by level, left to right
	DepthFirst                // iterative pre-order with an explicit stack
)

// String implements fmt.Stringer.
func (o Order) String() string {
	switch o {
	case PreOrder:
		return "pre-order"
	case InOrder:
		return "in-order"
	case PostOrder:
		return "post-order"
	case BreadthFirst:
		return "breadth-first"
	case DepthFirst:
		return "depth-first"
	default:
		return fmt.Sprintf("Order(%d)", int(o))
	}
}

// Option configures Walk via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation by Walk.
type Option[T any] func(*WalkOptions[T])

// WalkOptions holds the hooks and limits of a Walk.
type WalkOptions[T any] struct {
	// OnVisit is called for each emitted value with its depth (root = 0).
	// Returning an error aborts the walk and Walk returns it wrapped.
	OnVisit func(v T, depth int) error

	// MaxDepth, if > 0, stops descending below this depth.
	// A value of 0 disables the limit.
	MaxDepth int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns WalkOptions with a no-op OnVisit and no depth limit.
func DefaultOptions[T any]() WalkOptions[T] {
	return WalkOptions[T]{
		OnVisit:  func(T, int) error { return nil },
		MaxDepth: 0,
	}
}

// WithOnVisit registers a callback run for every emitted value.
func WithOnVisit[T any](fn func(v T, depth int) error) Option[T] {
	return func(o *WalkOptions[T]) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth limits the walk to nodes at depth <= d.
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth[T any](d int) Option[T] {
	return func(o *WalkOptions[T]) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WalkResult holds the outcome of a Walk:
//   - Order: values in emission order.
//   - Depth: Depth[i] is the depth of the node that produced Order[i].
type WalkResult[T any] struct {
	Order []T
	Depth []int
}
