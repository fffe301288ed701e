package bst

import "fmt"

// Walk traverses t in the given order, applying any number of Options, and
// collects the emitted values with their depths.
// Walking an empty tree returns an empty result.
// Returns ErrTreeNil for a nil tree, ErrOptionViolation for bad options,
// ErrUnknownOrder for an undefined order, or the wrapped OnVisit error. On a
// hook error the partial result collected so far is returned with it.
func Walk[T any](t *Tree[T], order Order, opts ...Option[T]) (*WalkResult[T], error) {
	if t == nil {
		return nil, ErrTreeNil
	}
	o := DefaultOptions[T]()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	res := &WalkResult[T]{
		Order: make([]T, 0, t.size),
		Depth: make([]int, 0, t.size),
	}
	var hookErr error
	c := &cursor[T]{
		maxDepth: o.MaxDepth,
		yield: func(n *Node[T], depth int) bool {
			res.Order = append(res.Order, n.Value)
			res.Depth = append(res.Depth, depth)
			if err := o.OnVisit(n.Value, depth); err != nil {
				hookErr = fmt.Errorf("bst: OnVisit error at %v (%s): %w", n.Value, order, err)
				return false
			}
			return true
		},
	}

	switch order {
	case PreOrder:
		c.preOrder(t.root, 0)
	case InOrder:
		c.inOrder(t.root, 0)
	case PostOrder:
		c.postOrder(t.root, 0)
	case BreadthFirst:
		c.breadthFirst(t.root)
	case DepthFirst:
		c.depthFirst(t.root)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownOrder, order)
	}

	return res, hookErr
}
