// Package bst provides a generic, unbalanced binary search tree with ordered
// insertion, membership tests, extremum lookup and five traversal orders.
//
// What
//
//   - Tree[T]: an explicit optional root (nil = empty tree), a three-way
//     comparator and a node count. New uses natural order for any
//     constraints.Ordered type; NewFunc accepts any total order.
//   - Insert: values smaller than a node go left; values greater than OR
//     EQUAL go right. Duplicates are therefore grouped in right subtrees and
//     InOrder emits them in insertion order.
//   - Contains, Max, Min, Len, Empty, Height.
//   - ForEach: pre-order visitor; the first visitor error aborts the walk.
//   - Lazy iterators (iter.Seq): PreOrder, InOrder, PostOrder, BreadthFirst,
//     DepthFirst.
//   - Walk: hooked traversal in any Order with depth reporting and a depth
//     limit, configured with functional options.
//
// Traversal orders
//
//	       5
//	      / \
//	     3   8
//	    /
//	   1
//
//	PreOrder     (node, left, right)   5 3 1 8
//	InOrder      (left, node, right)   1 3 5 8
//	PostOrder    (left, right, node)   1 3 8 5
//	BreadthFirst (level by level)      5 3 8 1
//	DepthFirst   (explicit stack)      5 3 1 8   == PreOrder
//
// Stack usage
//
//	The tree is not self-balancing, so sorted input degrades it to a list of
//	depth n. Insert, Contains, Max, Min, Height, ForEach, BreadthFirst and
//	DepthFirst are iterative and use O(1) call stack regardless of shape.
//	PreOrder, InOrder and PostOrder recurse, using call stack proportional to
//	the tree height; prefer DepthFirst for degenerate trees.
//
// Complexity (n = nodes, h = height)
//
//   - Insert, Contains, Max, Min: O(h) time, O(1) memory.
//   - Traversals: O(n) time; O(h) memory for depth-first orders, O(width)
//     for BreadthFirst.
//
// Errors
//
//   - ErrEmptyTree        Max/Min on a tree with no root.
//   - ErrTreeNil          Walk on a nil *Tree.
//   - ErrOptionViolation  invalid Walk option (negative max depth).
//   - ErrUnknownOrder     Walk with an Order outside the defined set.
//   - Wrapped visitor errors from ForEach and WithOnVisit.
//
// A Tree is not safe for concurrent use; serialize access externally.
package bst
