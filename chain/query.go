package chain

import (
	"iter"

	"golang.org/x/exp/constraints"
)

// Max returns the largest value in c by natural order, scanning from head.
// The boolean is false for an empty chain: "no maximum" is a normal answer
// for a possibly-empty list, not an error.
// Complexity: O(n).
func Max[T constraints.Ordered](c *Chain[T]) (T, bool) {
	return c.MaxFunc(func(a, b T) int {
		switch {
		case a < b:
			return -1
		case a > b:
			return 1
		default:
			return 0
		}
	})
}

// MaxFunc is like Max but orders values with cmp, which must return a
// negative number when a < b, zero when equal and a positive number when a > b.
// On ties the value nearest the head wins.
func (c *Chain[T]) MaxFunc(cmp func(a, b T) int) (T, bool) {
	if c.head == nil {
		var zero T
		return zero, false
	}
	best := c.head.Value
	for n := c.head.next; n != nil; n = n.next {
		if cmp(n.Value, best) > 0 {
			best = n.Value
		}
	}

	return best, true
}

// All returns an iterator over the values from head to tail.
// Mutating the chain while ranging is undefined.
func (c *Chain[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := c.head; n != nil; n = n.next {
			if !yield(n.Value) {
				return
			}
		}
	}
}

// Backward returns an iterator over the values from tail to head.
func (c *Chain[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := c.tail; n != nil; n = n.prev {
			if !yield(n.Value) {
				return
			}
		}
	}
}

// Values returns a snapshot of the values from head to tail.
func (c *Chain[T]) Values() []T {
	out := make([]T, 0, c.length)
	for n := c.head; n != nil; n = n.next {
		out = append(out, n.Value)
	}

	return out
}
