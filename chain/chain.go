package chain

// AddToHead wraps v in a new node and links it before the current head.
// On an empty chain the node becomes both head and tail.
// Returns the new node so it can later be moved, spliced against or deleted.
// Complexity: O(1).
func (c *Chain[T]) AddToHead(v T) *Node[T] {
	n := &Node[T]{Value: v}
	c.pushFront(n)

	return n
}

// AddToTail wraps v in a new node and links it after the current tail.
// Complexity: O(1).
func (c *Chain[T]) AddToTail(v T) *Node[T] {
	n := &Node[T]{Value: v}
	c.pushBack(n)

	return n
}

// RemoveFromHead detaches the head node and returns its value.
// The next node is promoted to head; removing the only node empties the chain.
// Returns ErrEmptyChain if there is nothing to remove.
// Complexity: O(1).
func (c *Chain[T]) RemoveFromHead() (T, error) {
	if c.head == nil {
		var zero T
		return zero, ErrEmptyChain
	}
	n := c.head
	c.unlink(n)

	return n.Value, nil
}

// RemoveFromTail detaches the tail node and returns its value.
// Returns ErrEmptyChain if there is nothing to remove.
// Complexity: O(1).
func (c *Chain[T]) RemoveFromTail() (T, error) {
	if c.tail == nil {
		var zero T
		return zero, ErrEmptyChain
	}
	n := c.tail
	c.unlink(n)

	return n.Value, nil
}

// InsertAfter splices a new node holding v directly after at.
// If at is the tail, the new node becomes the tail.
// Returns ErrNilNode or ErrForeignNode if at is not linked into c.
// Complexity: O(1).
func (c *Chain[T]) InsertAfter(at *Node[T], v T) (*Node[T], error) {
	if err := c.owns(at); err != nil {
		return nil, err
	}
	n := &Node[T]{Value: v, owner: c, prev: at, next: at.next}
	if at.next != nil {
		at.next.prev = n
	} else {
		c.tail = n
	}
	at.next = n
	c.length++

	return n, nil
}

// InsertBefore splices a new node holding v directly before at.
// If at is the head, the new node becomes the head.
// Returns ErrNilNode or ErrForeignNode if at is not linked into c.
// Complexity: O(1).
func (c *Chain[T]) InsertBefore(at *Node[T], v T) (*Node[T], error) {
	if err := c.owns(at); err != nil {
		return nil, err
	}
	n := &Node[T]{Value: v, owner: c, prev: at.prev, next: at}
	if at.prev != nil {
		at.prev.next = n
	} else {
		c.head = n
	}
	at.prev = n
	c.length++

	return n, nil
}

// MoveToFront relocates n to the head of the chain.
// It is a no-op when n already is the head. The node keeps its identity and
// every other node keeps its relative order.
// Complexity: O(1).
func (c *Chain[T]) MoveToFront(n *Node[T]) error {
	if err := c.owns(n); err != nil {
		return err
	}
	if c.head == n {
		return nil
	}
	c.unlink(n)
	c.pushFront(n)

	return nil
}

// MoveToEnd relocates n to the tail of the chain.
// It is a no-op when n already is the tail.
// Complexity: O(1).
func (c *Chain[T]) MoveToEnd(n *Node[T]) error {
	if err := c.owns(n); err != nil {
		return err
	}
	if c.tail == n {
		return nil
	}
	c.unlink(n)
	c.pushBack(n)

	return nil
}

// Delete detaches n from the chain, patching head and tail when n was
// either of them. After Delete, n belongs to no chain: passing it to any
// operation again yields ErrForeignNode.
// Complexity: O(1).
func (c *Chain[T]) Delete(n *Node[T]) error {
	if err := c.owns(n); err != nil {
		return err
	}
	c.unlink(n)

	return nil
}

// owns reports whether n is currently linked into c.
func (c *Chain[T]) owns(n *Node[T]) error {
	if n == nil {
		return ErrNilNode
	}
	if n.owner != c {
		return ErrForeignNode
	}

	return nil
}

// pushFront links a detached node in front of the head.
func (c *Chain[T]) pushFront(n *Node[T]) {
	n.owner = c
	n.prev = nil
	n.next = c.head
	if c.head != nil {
		c.head.prev = n
	} else {
		c.tail = n
	}
	c.head = n
	c.length++
}

// pushBack links a detached node after the tail.
func (c *Chain[T]) pushBack(n *Node[T]) {
	n.owner = c
	n.next = nil
	n.prev = c.tail
	if c.tail != nil {
		c.tail.next = n
	} else {
		c.head = n
	}
	c.tail = n
	c.length++
}

// unlink removes n from its neighbors and clears its links.
// A missing neighbor means n was an end, so head or tail moves instead;
// for a sole node both become nil.
func (c *Chain[T]) unlink(n *Node[T]) {
	if n.prev != nil {
		n.prev.next = n.next
	} else {
		c.head = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	} else {
		c.tail = n.prev
	}
	n.prev, n.next, n.owner = nil, nil, nil
	c.length--
}
