package bst

import "iter"

// visitFn receives a node and its depth; returning false stops the walk.
type visitFn[T any] func(n *Node[T], depth int) bool

// cursor carries the visit callback and depth limit through a recursive walk.
type cursor[T any] struct {
	yield    visitFn[T]
	maxDepth int // 0: unlimited
}

// descend reports whether children of a node at depth may be visited.
func (c *cursor[T]) descend(depth int) bool {
	return c.maxDepth == 0 || depth < c.maxDepth
}

func (c *cursor[T]) preOrder(n *Node[T], depth int) bool {
	if n == nil {
		return true
	}
	if !c.yield(n, depth) {
		return false
	}
	if !c.descend(depth) {
		return true
	}

	return c.preOrder(n.left, depth+1) && c.preOrder(n.right, depth+1)
}

func (c *cursor[T]) inOrder(n *Node[T], depth int) bool {
	if n == nil {
		return true
	}
	deeper := c.descend(depth)
	if deeper && !c.inOrder(n.left, depth+1) {
		return false
	}
	if !c.yield(n, depth) {
		return false
	}
	if !deeper {
		return true
	}

	return c.inOrder(n.right, depth+1)
}

func (c *cursor[T]) postOrder(n *Node[T], depth int) bool {
	if n == nil {
		return true
	}
	if c.descend(depth) {
		if !c.postOrder(n.left, depth+1) || !c.postOrder(n.right, depth+1) {
			return false
		}
	}

	return c.yield(n, depth)
}

// queueItem pairs a node with its depth for the explicit queue and stack.
type queueItem[T any] struct {
	node  *Node[T]
	depth int
}

// breadthFirst visits level by level using a FIFO queue seeded with root.
func (c *cursor[T]) breadthFirst(root *Node[T]) {
	if root == nil {
		return
	}
	queue := []queueItem[T]{{node: root}}
	for len(queue) > 0 {
		item := queue[0]
		queue[0] = queueItem[T]{}
		queue = queue[1:]
		if !c.yield(item.node, item.depth) {
			return
		}
		if !c.descend(item.depth) {
			continue
		}
		if item.node.left != nil {
			queue = append(queue, queueItem[T]{node: item.node.left, depth: item.depth + 1})
		}
		if item.node.right != nil {
			queue = append(queue, queueItem[T]{node: item.node.right, depth: item.depth + 1})
		}
	}
}

// depthFirst visits in pre-order using a LIFO stack. The right child is
// pushed before the left one so the left subtree is popped first.
func (c *cursor[T]) depthFirst(root *Node[T]) {
	if root == nil {
		return
	}
	stack := []queueItem[T]{{node: root}}
	for len(stack) > 0 {
		item := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !c.yield(item.node, item.depth) {
			return
		}
		if !c.descend(item.depth) {
			continue
		}
		if item.node.right != nil {
			stack = append(stack, queueItem[T]{node: item.node.right, depth: item.depth + 1})
		}
		if item.node.left != nil {
			stack = append(stack, queueItem[T]{node: item.node.left, depth: item.depth + 1})
		}
	}
}

// depthFirst is the unlimited iterative pre-order walk used by ForEach.
func depthFirst[T any](root *Node[T], yield func(n *Node[T], depth int) bool) {
	(&cursor[T]{yield: yield}).depthFirst(root)
}

// values adapts a node walk to an iterator over values.
func values[T any](walk func(c *cursor[T])) iter.Seq[T] {
	return func(yield func(T) bool) {
		walk(&cursor[T]{yield: func(n *Node[T], _ int) bool { return yield(n.Value) }})
	}
}

// PreOrder returns an iterator over the values in (node, left, right) order.
// It recurses; stack use grows with the tree height.
func (t *Tree[T]) PreOrder() iter.Seq[T] {
	return values(func(c *cursor[T]) { c.preOrder(t.root, 0) })
}

// InOrder returns an iterator over the values in ascending order
// (left, node, right). Equal values appear in insertion order.
// It recurses; stack use grows with the tree height.
func (t *Tree[T]) InOrder() iter.Seq[T] {
	return values(func(c *cursor[T]) { c.inOrder(t.root, 0) })
}

// PostOrder returns an iterator over the values in (left, right, node) order.
// It recurses; stack use grows with the tree height.
func (t *Tree[T]) PostOrder() iter.Seq[T] {
	return values(func(c *cursor[T]) { c.postOrder(t.root, 0) })
}

// BreadthFirst returns an iterator over the values level by level, left to
// right within a level, starting at the root.
func (t *Tree[T]) BreadthFirst() iter.Seq[T] {
	return values(func(c *cursor[T]) { c.breadthFirst(t.root) })
}

// DepthFirst returns an iterator over the values in pre-order, computed
// without recursion. Its order always equals PreOrder's.
func (t *Tree[T]) DepthFirst() iter.Seq[T] {
	return values(func(c *cursor[T]) { c.depthFirst(t.root) })
}
