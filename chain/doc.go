// Package chain provides a generic doubly-linked list with O(1) mutation at
// both ends, O(1) splicing next to a known node, and O(1) relocation of an
// existing node to either end.
//
// What
//
//   - Chain[T]: head, tail and an O(1) length counter. The zero value is an
//     empty chain ready to use.
//   - Node[T]: one element. Value is exported; links are reached through
//     Next and Prev so callers cannot break the chain by hand.
//   - Mutation: AddToHead, AddToTail, RemoveFromHead, RemoveFromTail,
//     InsertAfter, InsertBefore, MoveToFront, MoveToEnd, Delete.
//   - Queries: Len, Head, Tail, Max, MaxFunc, All, Backward, Values.
//
// Why
//
//   - Recency lists (LRU caches) need "touch" in O(1): MoveToFront.
//   - Work queues and deques need O(1) push/pop at either end.
//
// Ownership
//
//	Every node remembers the chain it is linked into. Operations that take a
//	*Node reject nodes that belong to another chain, or that were already
//	removed, with ErrForeignNode instead of silently corrupting both lists.
//	A node keeps its identity when moved: MoveToFront(n) leaves Head() == n.
//
// Invariants (hold after every call, on every exit path)
//
//   - head.Prev() == nil, tail.Next() == nil
//   - n.Next().Prev() == n for every node with a successor
//   - Len() == nodes walked from Head() == nodes walked back from Tail()
//
// Complexity
//
//   - Time:   O(1) for every operation except Max/MaxFunc/Values/iteration, O(n).
//   - Memory: O(n).
//
// Errors
//
//   - ErrEmptyChain   RemoveFromHead/RemoveFromTail on an empty chain.
//   - ErrNilNode      a nil *Node was passed.
//   - ErrForeignNode  the node is not linked into this chain.
//
// A Chain is not safe for concurrent use; serialize access externally.
package chain
