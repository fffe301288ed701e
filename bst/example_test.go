package bst_test

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/lvlath-containers/bst"
)

// ExampleTree_InOrder builds the tree
//
//	    5
//	   / \
//	  3   8
//	 /
//	1
//
// and prints it in sorted and in level order.
func ExampleTree_InOrder() {
	t := bst.New[int]()
	for _, v := range []int{5, 3, 8, 1} {
		t.Insert(v)
	}

	fmt.Println(slices.Collect(t.InOrder()))
	fmt.Println(slices.Collect(t.BreadthFirst()))
	top, _ := t.Max()
	fmt.Println(top)

	// Output:
	// [1 3 5 8]
	// [5 3 8 1]
	// 8
}

// ExampleWalk prints each value with its depth, down to depth 1.
func ExampleWalk() {
	t := bst.New[string]()
	for _, v := range []string{"m", "f", "t", "a", "z"} {
		t.Insert(v)
	}

	res, err := bst.Walk(t, bst.PreOrder, bst.WithMaxDepth[string](1))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for i, v := range res.Order {
		fmt.Println(res.Depth[i], v)
	}

	// Output:
	// 0 m
	// 1 f
	// 1 t
}
