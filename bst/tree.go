package bst

import "fmt"

// Insert adds v to the tree. An empty tree gets v as its root; otherwise the
// descent goes left while v is smaller than the current node and right when
// it is greater or equal, and v is grafted as a new leaf.
// Complexity: O(h) time, O(1) memory.
func (t *Tree[T]) Insert(v T) {
	n := &Node[T]{Value: v}
	t.size++
	if t.root == nil {
		t.root = n
		return
	}
	for cur := t.root; ; {
		if t.cmp(v, cur.Value) < 0 {
			if cur.left == nil {
				cur.left = n
				return
			}
			cur = cur.left
		} else {
			if cur.right == nil {
				cur.right = n
				return
			}
			cur = cur.right
		}
	}
}

// Contains reports whether a value comparing equal to target was inserted.
// An empty tree contains nothing.
// Complexity: O(h).
func (t *Tree[T]) Contains(target T) bool {
	for cur := t.root; cur != nil; {
		c := t.cmp(target, cur.Value)
		switch {
		case c == 0:
			return true
		case c < 0:
			cur = cur.left
		default:
			cur = cur.right
		}
	}

	return false
}

// Max returns the largest value, found at the end of the rightmost path.
// With duplicates, the most recently inserted copy is returned.
// Returns ErrEmptyTree if the tree has no root.
func (t *Tree[T]) Max() (T, error) {
	if t.root == nil {
		var zero T
		return zero, ErrEmptyTree
	}
	cur := t.root
	for cur.right != nil {
		cur = cur.right
	}

	return cur.Value, nil
}

// Min returns the smallest value, found at the end of the leftmost path.
// Returns ErrEmptyTree if the tree has no root.
func (t *Tree[T]) Min() (T, error) {
	if t.root == nil {
		var zero T
		return zero, ErrEmptyTree
	}
	cur := t.root
	for cur.left != nil {
		cur = cur.left
	}

	return cur.Value, nil
}

// Len returns the number of inserted values, duplicates included.
func (t *Tree[T]) Len() int { return t.size }

// Empty reports whether the tree has no root.
func (t *Tree[T]) Empty() bool { return t.root == nil }

// Root returns the root node, or nil for an empty tree.
func (t *Tree[T]) Root() *Node[T] { return t.root }

// Height returns the number of levels: 0 for an empty tree, 1 for a
// singleton, n for a tree built from n sorted values.
// Complexity: O(n) time, O(width) memory.
func (t *Tree[T]) Height() int {
	if t.root == nil {
		return 0
	}
	levels := 0
	level := []*Node[T]{t.root}
	for len(level) > 0 {
		levels++
		next := make([]*Node[T], 0, 2*len(level))
		for _, n := range level {
			if n.left != nil {
				next = append(next, n.left)
			}
			if n.right != nil {
				next = append(next, n.right)
			}
		}
		level = next
	}

	return levels
}

// ForEach calls fn with every value in pre-order (node, left, right).
// The walk is iterative. The first error returned by fn stops it, leaving
// the remaining nodes unvisited, and is returned wrapped.
func (t *Tree[T]) ForEach(fn func(v T) error) error {
	var err error
	depthFirst(t.root, func(n *Node[T], _ int) bool {
		if e := fn(n.Value); e != nil {
			err = fmt.Errorf("bst: visitor failed at %v: %w", n.Value, e)
			return false
		}
		return true
	})

	return err
}
