// Package lvlath is the root of lvlath-containers: small, generic, pointer-based
// containers with explicit invariants and iterative traversals.
//
// What is inside
//
//	chain/: doubly-linked list: O(1) push/pop at both ends, splicing next to a
//	        known node, MoveToFront/MoveToEnd, ownership-checked node handles
//	bst/:   unbalanced binary search tree: Insert, Contains, Max/Min, ForEach,
//	        PreOrder/InOrder/PostOrder/BreadthFirst/DepthFirst iterators and a
//	        hooked Walk with depth limits
//	stack/: LIFO stack layered over chain
//
// Quick ASCII example:
//
//	chain:  nil ← A ⇄ B ⇄ C → nil       MoveToEnd(A) ⇒ B ⇄ C ⇄ A
//
//	bst:        5
//	          / \        InOrder      1 3 5 8
//	         3   8       BreadthFirst 5 3 8 1
//	        /
//	        1
//
// None of the containers is safe for concurrent use; each instance is meant to
// be owned by one goroutine or guarded by the caller.
//
// Runnable demos live in examples/:
//
//	go run ./examples
package lvlath
